package coerce

import (
	"encoding"
	"errors"
	"net"
	"net/netip"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/simonhull/promptly/input"
	"github.com/simonhull/promptly/prompt"
)

// StringKind accepts any non-empty text as is.
var StringKind = Kind[string]{
	Name:  "string",
	Parse: func(s string) (string, error) { return s, nil },
}

// BoolKind accepts true/yes/y and false/no/n in any case. Its default hint
// is "(Y/n)" or "(y/N)".
var BoolKind = Kind[bool]{
	Name:  "bool",
	Parse: ParseBool,
	Hint:  BoolHint,
}

// ParseBool maps yes/no style answers onto a bool.
func ParseBool(s string) (bool, error) {
	switch v := strings.ToLower(s); v {
	case "true", "yes", "y":
		return true, nil
	case "false", "no", "n":
		return false, nil
	default:
		return false, &ParseError{Input: v, Type: "bool"}
	}
}

// BoolHint shows which answer an empty line selects.
func BoolHint(def bool) string {
	if def {
		return "(Y/n)"
	}
	return "(y/N)"
}

// Path is a filesystem path read from the user.
type Path string

func (p Path) String() string {
	return string(p)
}

// PathKind expands a leading "~" and reads through the path-completing source.
var PathKind = Kind[Path]{
	Name:  "path",
	Parse: ParsePath,
	Paths: true,
}

// ParsePath expands a leading "~" segment to HOME. It never fails.
func ParsePath(s string) (Path, error) {
	return Path(input.ExpandHome(s)), nil
}

// Char is a single character read from the user. It is distinct from rune,
// which is an integer type and would be parsed as a number.
type Char rune

func (c Char) String() string {
	return string(rune(c))
}

var errNotOneChar = errors.New("want a single character")

// CharKind accepts exactly one character. Surrounding whitespace is trimmed
// before parsing, so a space cannot be entered.
var CharKind = Kind[Char]{
	Name: "char",
	Parse: func(s string) (Char, error) {
		if !utf8.ValidString(s) || utf8.RuneCountInString(s) != 1 {
			return 0, &ParseError{Input: s, Type: "char", Err: errNotOneChar}
		}
		r, _ := utf8.DecodeRuneInString(s)
		return Char(r), nil
	},
}

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type float interface {
	~float32 | ~float64
}

// Signed builds a base-10 Kind for a signed integer type.
func Signed[T signed](name string) Kind[T] {
	bits := reflect.TypeFor[T]().Bits()
	return Kind[T]{
		Name: name,
		Parse: func(s string) (T, error) {
			n, err := strconv.ParseInt(s, 10, bits)
			if err != nil {
				return 0, parseError(s, name, err)
			}
			return T(n), nil
		},
	}
}

// Unsigned builds a base-10 Kind for an unsigned integer type.
func Unsigned[T unsigned](name string) Kind[T] {
	bits := reflect.TypeFor[T]().Bits()
	return Kind[T]{
		Name: name,
		Parse: func(s string) (T, error) {
			n, err := strconv.ParseUint(s, 10, bits)
			if err != nil {
				return 0, parseError(s, name, err)
			}
			return T(n), nil
		},
	}
}

// Float builds a Kind for a floating point type.
func Float[T float](name string) Kind[T] {
	bits := reflect.TypeFor[T]().Bits()
	return Kind[T]{
		Name: name,
		Parse: func(s string) (T, error) {
			f, err := strconv.ParseFloat(s, bits)
			if err != nil {
				return 0, parseError(s, name, err)
			}
			return T(f), nil
		},
	}
}

var errInvalidIP = errors.New("invalid IP address")

// IPKind parses IPv4 and IPv6 addresses into net.IP.
var IPKind = Kind[net.IP]{
	Name: "ip",
	Parse: func(s string) (net.IP, error) {
		ip := net.ParseIP(s)
		if ip == nil {
			return nil, &ParseError{Input: s, Type: "ip", Err: errInvalidIP}
		}
		return ip, nil
	},
}

// AddrKind parses addresses into netip.Addr.
var AddrKind = Kind[netip.Addr]{
	Name: "addr",
	Parse: func(s string) (netip.Addr, error) {
		a, err := netip.ParseAddr(s)
		if err != nil {
			return netip.Addr{}, &ParseError{Input: s, Type: "addr", Err: errInvalidIP}
		}
		return a, nil
	},
}

// AddrPortKind parses "ip:port" and "[ipv6]:port".
var AddrPortKind = Kind[netip.AddrPort]{
	Name: "addrport",
	Parse: func(s string) (netip.AddrPort, error) {
		ap, err := netip.ParseAddrPort(s)
		if err != nil {
			return netip.AddrPort{}, &ParseError{Input: s, Type: "addrport", Err: errors.New("want ip:port")}
		}
		return ap, nil
	},
}

// URLKind accepts absolute URLs only.
var URLKind = Kind[*url.URL]{
	Name: "url",
	Parse: func(s string) (*url.URL, error) {
		u, err := url.Parse(s)
		if err != nil {
			var urlErr *url.Error
			if errors.As(err, &urlErr) {
				err = urlErr.Err
			}
			return nil, &ParseError{Input: s, Type: "url", Err: err}
		}
		if u.Scheme == "" {
			return nil, &ParseError{Input: s, Type: "url", Err: errors.New("relative URL without a base")}
		}
		return u, nil
	},
}

// DurationKind parses Go durations such as "90s" or "1h30m".
var DurationKind = Kind[time.Duration]{
	Name: "duration",
	Parse: func(s string) (time.Duration, error) {
		d, err := time.ParseDuration(s)
		if err != nil {
			return 0, &ParseError{Input: s, Type: "duration", Err: errors.New("want a value like 90s or 1h30m")}
		}
		return d, nil
	},
}

// textKind builds a Kind for any T whose pointer implements
// encoding.TextUnmarshaler.
func textKind[T any]() (Kind[T], bool) {
	if _, ok := any(new(T)).(encoding.TextUnmarshaler); !ok {
		return Kind[T]{}, false
	}

	name := reflect.TypeFor[T]().String()
	return Kind[T]{
		Name: name,
		Parse: func(s string) (T, error) {
			var v T
			if err := any(&v).(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
				return v, &ParseError{Input: s, Type: name, Err: err}
			}
			return v, nil
		},
		Hint: func(def T) string {
			if m, ok := any(def).(encoding.TextMarshaler); ok {
				if text, err := m.MarshalText(); err == nil {
					return "(default=" + string(text) + ")"
				}
			}
			return prompt.DefaultHint(def)
		},
	}, true
}
