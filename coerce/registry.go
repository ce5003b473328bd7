package coerce

import (
	"errors"
	"fmt"
	"net"
	"net/netip"
	"net/url"
	"reflect"
	"sort"
	"sync"
	"time"
)

// ErrUnsupported is returned when no Kind is known for a type.
var ErrUnsupported = errors.New("unsupported prompt type")

// Registry maps Go types to the Kinds that coerce input into them.
// Types without an entry fall back to encoding.TextUnmarshaler.
type Registry struct {
	mu    sync.RWMutex
	kinds map[reflect.Type]any
	names map[string]reflect.Type
}

// NewRegistry creates a registry holding the builtin kinds.
func NewRegistry() *Registry {
	r := &Registry{
		kinds: make(map[reflect.Type]any),
		names: make(map[string]reflect.Type),
	}
	registerBuiltins(r)
	return r
}

func registerBuiltins(r *Registry) {
	RegisterIn(r, StringKind)
	RegisterIn(r, BoolKind)
	RegisterIn(r, PathKind)
	RegisterIn(r, CharKind)

	RegisterIn(r, Signed[int]("int"))
	RegisterIn(r, Signed[int8]("int8"))
	RegisterIn(r, Signed[int16]("int16"))
	RegisterIn(r, Signed[int32]("int32"))
	RegisterIn(r, Signed[int64]("int64"))
	RegisterIn(r, Unsigned[uint]("uint"))
	RegisterIn(r, Unsigned[uint8]("uint8"))
	RegisterIn(r, Unsigned[uint16]("uint16"))
	RegisterIn(r, Unsigned[uint32]("uint32"))
	RegisterIn(r, Unsigned[uint64]("uint64"))
	RegisterIn(r, Float[float32]("float32"))
	RegisterIn(r, Float[float64]("float64"))

	RegisterIn[net.IP](r, IPKind)
	RegisterIn[netip.Addr](r, AddrKind)
	RegisterIn[netip.AddrPort](r, AddrPortKind)
	RegisterIn[*url.URL](r, URLKind)
	RegisterIn[time.Duration](r, DurationKind)
}

// RegisterIn adds or replaces the Kind for T in r.
func RegisterIn[T any](r *Registry, k Kind[T]) {
	t := reflect.TypeFor[T]()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.kinds[t] = k
	if k.Name != "" {
		r.names[k.Name] = t
	}
}

// LookupIn returns the Kind for T in r.
func LookupIn[T any](r *Registry) (Kind[T], error) {
	t := reflect.TypeFor[T]()

	r.mu.RLock()
	k, ok := r.kinds[t]
	r.mu.RUnlock()

	if ok {
		return k.(Kind[T]), nil
	}
	if k, ok := textKind[T](); ok {
		return k, nil
	}
	return Kind[T]{}, fmt.Errorf("%w: %s", ErrUnsupported, t)
}

// ByName returns the registered kind with the given name.
func (r *Registry) ByName(name string) (Any, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.names[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, name)
	}
	return r.kinds[t].(Any), nil
}

// Names lists the names of all registered kinds, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.names))
	for n := range r.names {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by Register and Lookup.
func Default() *Registry {
	return defaultRegistry
}

// Register adds or replaces the Kind for T in the default registry.
func Register[T any](k Kind[T]) {
	RegisterIn(defaultRegistry, k)
}

// Lookup returns the Kind for T from the default registry.
func Lookup[T any]() (Kind[T], error) {
	return LookupIn[T](defaultRegistry)
}

// Names lists the kinds in the default registry.
func Names() []string {
	return defaultRegistry.Names()
}
