package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfind/cache"
	"github.com/katalvlaran/wayfind/maze"
)

var sampleSolution = &cache.Solution{
	Actions:  []maze.Direction{maze.West, maze.West, maze.South},
	Cost:     3,
	Expanded: 11,
}

// runStoreContract exercises the behavior every Store must share.
func runStoreContract(t *testing.T, s cache.Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, "absent")
	assert.ErrorIs(t, err, cache.ErrMiss)

	assert.ErrorIs(t, s.Put(ctx, "k", nil), cache.ErrNilSolution)

	require.NoError(t, s.Put(ctx, "k", sampleSolution))
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, sampleSolution.Actions, got.Actions)
	assert.Equal(t, sampleSolution.Cost, got.Cost)
	assert.Equal(t, sampleSolution.Expanded, got.Expanded)

	// overwrite wins
	require.NoError(t, s.Put(ctx, "k", &cache.Solution{Cost: 9}))
	got, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 9.0, got.Cost)
}

func TestMemory_Contract(t *testing.T) {
	runStoreContract(t, cache.NewMemory(16))
}

func TestMemory_EvictsOldestWhenFull(t *testing.T) {
	ctx := context.Background()
	m := cache.NewMemory(2)

	require.NoError(t, m.Put(ctx, "a", sampleSolution))
	require.NoError(t, m.Put(ctx, "b", sampleSolution))
	require.NoError(t, m.Put(ctx, "c", sampleSolution))

	assert.Equal(t, 2, m.Len())
	_, err := m.Get(ctx, "a")
	assert.ErrorIs(t, err, cache.ErrMiss, "oldest entry must be evicted")
	_, err = m.Get(ctx, "c")
	assert.NoError(t, err)
}

func TestRedis_Contract(t *testing.T) {
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})

	runStoreContract(t, cache.NewRedis(client))
}

func TestRedis_PrefixAndTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	ctx := context.Background()

	s := cache.NewRedis(client, cache.WithPrefix("test:"), cache.WithTTL(time.Minute))
	require.NoError(t, s.Put(ctx, "k", sampleSolution))

	require.True(t, mr.Exists("test:k"), "key must carry the configured prefix")

	// past the TTL the entry expires
	mr.FastForward(2 * time.Minute)
	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, cache.ErrMiss)
}

func TestKey_Canonical(t *testing.T) {
	rows := []string{"%%%", "%P%", "%%%"}
	goal := &maze.Position{X: 1, Y: 1}

	k1 := cache.Key(rows, "position", "bfs", "", goal)
	k2 := cache.Key(rows, "position", "bfs", "", &maze.Position{X: 1, Y: 1})
	assert.Equal(t, k1, k2, "equal requests must collide")
	assert.Len(t, k1, 64, "hex-encoded SHA-256")

	assert.NotEqual(t, k1, cache.Key(rows, "position", "dfs", "", goal))
	assert.NotEqual(t, k1, cache.Key(rows, "food", "bfs", "", goal))
	assert.NotEqual(t, k1, cache.Key(rows, "position", "bfs", "", nil))
	assert.NotEqual(t, k1, cache.Key([]string{"%%%", "% %", "%P%"}, "position", "bfs", "", goal))
}
