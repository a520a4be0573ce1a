// Package difficulty ties each difficulty tier to its content catalog and
// draws the random content pools a game uses for a session.
package difficulty

import (
	"fmt"
	"math/rand"

	"github.com/osse101/TavernCrawl_Go/internal/catalog"
	"github.com/osse101/TavernCrawl_Go/internal/domain"
)

// Strategy generates the content pools for one difficulty tier
type Strategy interface {
	Difficulty() domain.Difficulty
	GenerateItems(rng *rand.Rand) []domain.Item
	GenerateMobs(rng *rand.Rand) []domain.Mob
}

// tierStrategy is shared by every variant; only the catalog tier differs
type tierStrategy struct {
	difficulty domain.Difficulty
	tier       *catalog.Tier
}

func (s *tierStrategy) Difficulty() domain.Difficulty {
	return s.difficulty
}

func (s *tierStrategy) GenerateItems(rng *rand.Rand) []domain.Item {
	return sample(rng, s.tier.Items)
}

func (s *tierStrategy) GenerateMobs(rng *rand.Rand) []domain.Mob {
	return sample(rng, s.tier.Mobs)
}

// Easy is the lowest tier
type Easy struct{ tierStrategy }

// Middle is the intermediate tier
type Middle struct{ tierStrategy }

// Hard is the highest tier
type Hard struct{ tierStrategy }

// New returns the strategy variant for d backed by the catalog's tier
func New(d domain.Difficulty, cat *catalog.Catalog) (Strategy, error) {
	tier, err := cat.Tier(d)
	if err != nil {
		return nil, err
	}
	base := tierStrategy{difficulty: d, tier: tier}

	switch d {
	case domain.DifficultyEasy:
		return &Easy{base}, nil
	case domain.DifficultyMiddle:
		return &Middle{base}, nil
	case domain.DifficultyHard:
		return &Hard{base}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDifficulty, d)
	}
}

// sample draws a random subset of size 1..len(catalog) without replacement.
// The result never aliases the catalog slice.
func sample[T any](rng *rand.Rand, catalog []T) []T {
	if len(catalog) == 0 {
		return []T{}
	}
	size := rng.Intn(len(catalog)) + 1
	perm := rng.Perm(len(catalog))

	out := make([]T, 0, size)
	for _, idx := range perm[:size] {
		out = append(out, catalog[idx])
	}
	return out
}
