package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type color string

func (c color) String() string { return string(c) }

func TestRegistryResolve(t *testing.T) {
	r := NewRegistry(color("none"), color("red"), color("green"), color("blue"))

	for _, id := range []string{"red", "green", "blue"} {
		assert.Equal(t, color(id), r.Resolve(id))
	}

	for _, id := range []string{"", "RED", " red", "purple", "some-future-color-v9"} {
		assert.Equal(t, color("none"), r.Resolve(id), "id %q", id)
	}
}

func TestRegistryResolveIsIdempotent(t *testing.T) {
	for _, id := range []string{"resolve", "nope", ""} {
		assert.Equal(t, Strategies.Resolve(id), Strategies.Resolve(id))
	}
}

func TestRegistryOrderDoesNotChangeResolution(t *testing.T) {
	forward := NewRegistry(StrategyDefault, Strategies.Values()...)

	values := Strategies.Values()
	for i, j := 0, len(values)-1; i < j; i, j = i+1, j-1 {
		values[i], values[j] = values[j], values[i]
	}
	reversed := NewRegistry(StrategyDefault, values...)

	for _, id := range append(Strategies.Strings(), "", "garbage") {
		assert.Equal(t, forward.Resolve(id), reversed.Resolve(id), "id %q", id)
	}
}

func TestRegistryFirstDeclaredWins(t *testing.T) {
	r := NewRegistry(numbered{"x", 0}, numbered{"dup", 1}, numbered{"dup", 2})
	assert.Equal(t, 1, r.Resolve("dup").n)
	assert.Len(t, r.Values(), 2)
}

type numbered struct {
	s string
	n int
}

func (c numbered) String() string { return c.s }

func TestRegistryLookup(t *testing.T) {
	v, ok := FastForwardModes.Lookup("NO_FF")
	require.True(t, ok)
	assert.Equal(t, NoFastForward, v)

	v, ok = FastForwardModes.Lookup("no_ff")
	assert.False(t, ok)
	assert.Equal(t, FastForward, v)
}

func TestRegistryValuesAreCopies(t *testing.T) {
	values := Strategies.Values()
	values[0] = StrategyOurs
	assert.Equal(t, StrategyDefault, Strategies.Values()[0])
}

func TestRegistryOptions(t *testing.T) {
	opts := Strategies.Options()
	require.Len(t, opts, 7)
	for i, want := range []string{"default", "resolve", "recursive", "octopus", "ours", "subtree", "recursive_theirs"} {
		assert.Equal(t, Option{Label: want, Value: want}, opts[i])
	}
	assert.Equal(t, []string{"FF", "FF_ONLY", "NO_FF"}, FastForwardModes.Strings())
}

func TestRegistryDefaults(t *testing.T) {
	assert.Equal(t, StrategyDefault, Strategies.Default())
	assert.Equal(t, FastForward, FastForwardModes.Default())
}
