// Package mmrtesting generates deterministic accumulator content for tests
// in the other packages. Seeding the generator fixes every leaf, so
// expected roots and proofs are stable from run to run.
package mmrtesting

import (
	"fmt"
	"hash"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/cairnlog/cairn/mmr"
)

type TestConfig struct {
	// Seed fixes the generated data. It is normal to force it to some
	// constant so the data is the same from run to run.
	Seed int64
	// LabelPrefix tags generated leaves so interleaved test data is
	// distinguishable in failure output.
	LabelPrefix string
}

type TestContext struct {
	T   *testing.T
	Cfg TestConfig
	rng *rand.Rand
}

func NewTestContext(t *testing.T, cfg TestConfig) *TestContext {
	if cfg.LabelPrefix == "" {
		cfg.LabelPrefix = t.Name()
	}
	return &TestContext{
		T:   t,
		Cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// GenerateLeaves returns n distinct leaf data blobs. Each carries the label
// prefix, its ordinal and a seeded uuid.
func (c *TestContext) GenerateLeaves(n int) [][]byte {
	leaves := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		id, err := uuid.NewRandomFromReader(c.rng)
		require.NoError(c.T, err)
		leaves = append(leaves, []byte(fmt.Sprintf("%s/%d/%s", c.Cfg.LabelPrefix, i, id)))
	}
	return leaves
}

// BuildMMR appends n generated leaves to a fresh engine over store and
// returns the engine, its authority, the leaf data and the position each
// leaf landed at.
func (c *TestContext) BuildMMR(
	store mmr.NodeStore, hasher hash.Hash, n int,
) (*mmr.MMR, *mmr.Authority, [][]byte, []uint64) {
	m, auth, err := mmr.New(store, hasher)
	require.NoError(c.T, err)

	leaves := c.GenerateLeaves(n)
	positions := make([]uint64, 0, n)
	for _, leaf := range leaves {
		positions = append(positions, m.Size()+1)
		require.NoError(c.T, m.AppendLeaves(auth, leaf))
	}
	return m, auth, leaves, positions
}
