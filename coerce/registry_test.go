package coerce

import (
	"errors"
	"net/netip"
	"strings"
	"testing"

	"github.com/simonhull/promptly/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_Builtins(t *testing.T) {
	k, err := Lookup[int]()
	require.NoError(t, err)
	assert.Equal(t, "int", k.Name)

	b, err := Lookup[bool]()
	require.NoError(t, err)
	assert.Equal(t, "(Y/n)", b.HintFor(true))

	p, err := Lookup[Path]()
	require.NoError(t, err)
	assert.True(t, p.Paths)
}

// level implements encoding.TextUnmarshaler but is never registered.
type level int

func (l *level) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "low":
		*l = 1
	case "high":
		*l = 2
	default:
		return errors.New("want low or high")
	}
	return nil
}

func (l level) MarshalText() ([]byte, error) {
	if l == 2 {
		return []byte("high"), nil
	}
	return []byte("low"), nil
}

func TestLookup_TextUnmarshalerFallback(t *testing.T) {
	k, err := Lookup[level]()
	require.NoError(t, err)

	te := testutil.NewEngine(t, "medium", "HIGH")
	v, err := k.Required(te.Engine, "Priority")
	require.NoError(t, err)

	assert.Equal(t, level(2), v)
	assert.Contains(t, te.Diagnostics.String(), "Could not parse medium as coerce.level: want low or high.")
	assert.Equal(t, "(default=low)", k.HintFor(level(1)))
}

func TestLookup_StdlibTextUnmarshaler(t *testing.T) {
	k, err := Lookup[netip.Prefix]()
	require.NoError(t, err)

	v, err := k.Parse("10.0.0.0/8")
	require.NoError(t, err)
	assert.Equal(t, netip.MustParsePrefix("10.0.0.0/8"), v)
}

func TestLookup_Unsupported(t *testing.T) {
	_, err := Lookup[struct{ A int }]()
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = Lookup[chan int]()
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestRegistry_IsolatedFromDefault(t *testing.T) {
	r := NewRegistry()
	RegisterIn(r, Kind[level]{
		Name:  "level",
		Parse: func(string) (level, error) { return 7, nil },
	})

	k, err := LookupIn[level](r)
	require.NoError(t, err)
	v, _ := k.Parse("anything")
	assert.Equal(t, level(7), v)

	assert.Contains(t, r.Names(), "level")
	assert.NotContains(t, Names(), "level")
}

func TestRegistry_Replace(t *testing.T) {
	r := NewRegistry()
	RegisterIn(r, Kind[string]{
		Name:  "string",
		Parse: func(s string) (string, error) { return strings.ToUpper(s), nil },
	})

	k, err := LookupIn[string](r)
	require.NoError(t, err)
	v, _ := k.Parse("shout")
	assert.Equal(t, "SHOUT", v)
}

func TestRegistry_ByName(t *testing.T) {
	k, err := Default().ByName("int")
	require.NoError(t, err)
	assert.Equal(t, "int", k.KindName())

	te := testutil.NewEngine(t, "x", "12")
	v, err := k.AskRequired(te.Engine, "Count")
	require.NoError(t, err)
	assert.Equal(t, 12, v)

	_, err = Default().ByName("complex128")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestRegistry_ByNameOptional(t *testing.T) {
	k, err := Default().ByName("path")
	require.NoError(t, err)

	te := testutil.NewEngine(t)
	te.Paths.Lines = []string{""}

	v, ok, err := k.AskOptional(te.Engine, "Photo")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, Path(""), v)
}

func TestNames(t *testing.T) {
	names := Names()

	for _, want := range []string{"bool", "char", "int", "path", "string", "url", "duration", "addrport"} {
		assert.Contains(t, names, want)
	}
	assert.IsNonDecreasing(t, names)
}
