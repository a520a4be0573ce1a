package difficulty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TavernCrawl_Go/internal/catalog"
	"github.com/osse101/TavernCrawl_Go/internal/domain"
	"github.com/osse101/TavernCrawl_Go/internal/random"
)

func TestNew_Variants(t *testing.T) {
	cat := catalog.Default()

	easy, err := New(domain.DifficultyEasy, cat)
	require.NoError(t, err)
	assert.IsType(t, &Easy{}, easy)

	middle, err := New(domain.DifficultyMiddle, cat)
	require.NoError(t, err)
	assert.IsType(t, &Middle{}, middle)

	hard, err := New(domain.DifficultyHard, cat)
	require.NoError(t, err)
	assert.IsType(t, &Hard{}, hard)
	assert.Equal(t, domain.DifficultyHard, hard.Difficulty())
}

func TestNew_Unknown(t *testing.T) {
	_, err := New("extreme", catalog.Default())
	assert.Error(t, err)
}

func TestGenerate_NonEmptySubsetOfCatalog(t *testing.T) {
	cat := catalog.Default()

	for _, d := range domain.Difficulties {
		strategy, err := New(d, cat)
		require.NoError(t, err)
		tier := cat.Tiers[d]

		for seed := int64(1); seed <= 200; seed++ {
			rng := random.New(seed)

			items := strategy.GenerateItems(rng)
			assert.GreaterOrEqual(t, len(items), 1)
			assert.LessOrEqual(t, len(items), len(tier.Items))
			assertSubset(t, tier.Items, items)

			mobs := strategy.GenerateMobs(rng)
			assert.GreaterOrEqual(t, len(mobs), 1)
			assert.LessOrEqual(t, len(mobs), len(tier.Mobs))
			assertSubset(t, tier.Mobs, mobs)
		}
	}
}

func TestGenerate_CoversAllSizes(t *testing.T) {
	strategy, err := New(domain.DifficultyEasy, catalog.Default())
	require.NoError(t, err)

	sizes := make(map[int]bool)
	for seed := int64(1); seed <= 200; seed++ {
		sizes[len(strategy.GenerateItems(random.New(seed)))] = true
	}

	assert.Equal(t, map[int]bool{1: true, 2: true, 3: true}, sizes)
}

func TestGenerate_Deterministic(t *testing.T) {
	strategy, err := New(domain.DifficultyMiddle, catalog.Default())
	require.NoError(t, err)

	a := strategy.GenerateItems(random.New(99))
	b := strategy.GenerateItems(random.New(99))

	assert.Equal(t, a, b)
}

func TestSample_DoesNotAliasCatalog(t *testing.T) {
	src := []int{1, 2, 3}
	out := sample(random.New(1), src)
	out[0] = 100

	assert.Equal(t, []int{1, 2, 3}, src)
}

func TestSample_Empty(t *testing.T) {
	assert.Empty(t, sample(random.New(1), []int{}))
}

func assertSubset[T comparable](t *testing.T, catalog, got []T) {
	t.Helper()
	seen := make(map[T]bool)
	for _, v := range got {
		assert.Contains(t, catalog, v)
		assert.False(t, seen[v], "sampled without replacement")
		seen[v] = true
	}
}
