package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfigDefaults pins the deterministic defaults.
func TestConfigDefaults(t *testing.T) {
	cfg := newBuilderConfig()
	assert.Equal(t, "7", cfg.idFn(7))
	assert.Nil(t, cfg.rng, "no RNG unless seeded")
	assert.Equal(t, DefaultEdgeWeight, cfg.weight())
	assert.False(t, cfg.directed)
}

// TestIDSchemeOptions verifies that ID scheme options apply in order.
func TestIDSchemeOptions(t *testing.T) {
	assert.Equal(t, "A", newBuilderConfig(WithSymbolIDs()).idFn(0))
	assert.Equal(t, "AB", newBuilderConfig(WithExcelColumnIDs()).idFn(27))
	assert.Equal(t, "v3", newBuilderConfig(WithPrefixIDs("v")).idFn(3))
	assert.Equal(t, "3", newBuilderConfig(WithSymbolIDs(), WithIDScheme(DefaultIDFn)).idFn(3), "last option wins")

	assert.Panics(t, func() { WithIDScheme(nil) })
}

// TestRNGOptions verifies WithRand, WithSeed and their reproducibility.
func TestRNGOptions(t *testing.T) {
	exp := rand.New(rand.NewSource(123))
	assert.Same(t, exp, newBuilderConfig(WithRand(exp)).rng)
	assert.Panics(t, func() { WithRand(nil) })

	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	require.NotNil(t, a.rng)
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())
}

// TestWeightFnOptions verifies that weight options override in order.
func TestWeightFnOptions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	cfgConst := newBuilderConfig(WithConstantWeight(9))
	assert.Equal(t, 9.0, cfgConst.weightFn(nil))
	assert.Equal(t, 9.0, cfgConst.weightFn(rng))

	cfgOverride := newBuilderConfig(WithConstantWeight(1), WithUniformWeight(2, 4))
	w := cfgOverride.weightFn(rng)
	assert.GreaterOrEqual(t, w, 2.0)
	assert.Less(t, w, 4.0)

	assert.Panics(t, func() { WithWeightFn(nil) })
}

// TestNilOptionIgnored checks that a nil BuilderOption is skipped.
func TestNilOptionIgnored(t *testing.T) {
	cfg := newBuilderConfig(nil, WithDirected())
	assert.True(t, cfg.directed)
}
