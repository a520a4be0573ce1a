package game

import (
	"fmt"
	"math/rand"

	"github.com/osse101/TavernCrawl_Go/internal/catalog"
	"github.com/osse101/TavernCrawl_Go/internal/difficulty"
	"github.com/osse101/TavernCrawl_Go/internal/domain"
	"github.com/osse101/TavernCrawl_Go/internal/logger"
)

// Game holds the session's content: the active difficulty and the item and
// mob pools drawn from it. Every random decision goes through one PRNG so a
// fixed seed replays a session exactly.
type Game struct {
	catalog    *catalog.Catalog
	rng        *rand.Rand
	strategy   difficulty.Strategy
	itemPool   []domain.Item
	mobPool    []domain.Mob
	generated  bool
	nextItemID int
}

// New creates a game with no difficulty selected
func New(cat *catalog.Catalog, rng *rand.Rand) *Game {
	return &Game{
		catalog:    cat,
		rng:        rng,
		itemPool:   make([]domain.Item, 0),
		mobPool:    make([]domain.Mob, 0),
		nextItemID: FirstInstanceID,
	}
}

// SetDifficulty selects the content tier. Unknown names return
// domain.ErrInvalidDifficulty and leave the game untouched. Changing the
// difficulty clears any generated pools.
func (g *Game) SetDifficulty(name string) error {
	d, err := domain.ParseDifficulty(name)
	if err != nil {
		return err
	}
	strategy, err := difficulty.New(d, g.catalog)
	if err != nil {
		return err
	}

	if g.strategy == nil || g.strategy.Difficulty() != d {
		g.itemPool = make([]domain.Item, 0)
		g.mobPool = make([]domain.Mob, 0)
		g.generated = false
	}
	g.strategy = strategy

	logger.Debug(LogMsgDifficultySet, "difficulty", d)
	return nil
}

// Difficulty returns the selected difficulty, if any
func (g *Game) Difficulty() (domain.Difficulty, bool) {
	if g.strategy == nil {
		return "", false
	}
	return g.strategy.Difficulty(), true
}

// GenerateWorld draws the item and mob pools from the active strategy. Pools
// are drawn once; later calls keep them.
func (g *Game) GenerateWorld() error {
	if g.strategy == nil {
		return fmt.Errorf("%w: choose easy, middle or hard first", domain.ErrDifficultyNotSet)
	}
	if g.generated {
		logger.Debug(LogMsgWorldRegenerate)
		return nil
	}

	g.itemPool = g.strategy.GenerateItems(g.rng)
	g.mobPool = g.strategy.GenerateMobs(g.rng)
	g.generated = true

	logger.Info(LogMsgWorldGenerated,
		"difficulty", g.strategy.Difficulty(),
		"items", len(g.itemPool),
		"mobs", len(g.mobPool))
	return nil
}

// ItemPool returns a copy of the generated item pool
func (g *Game) ItemPool() []domain.Item {
	out := make([]domain.Item, len(g.itemPool))
	copy(out, g.itemPool)
	return out
}

// MobPool returns a copy of the generated mob pool
func (g *Game) MobPool() []domain.Mob {
	out := make([]domain.Mob, len(g.mobPool))
	copy(out, g.mobPool)
	return out
}

// Drinks returns the tavern menu
func (g *Game) Drinks() []domain.Drink {
	out := make([]domain.Drink, len(g.catalog.Drinks))
	copy(out, g.catalog.Drinks)
	return out
}

// NewItemID hands out the next item instance ID
func (g *Game) NewItemID() int {
	id := g.nextItemID
	g.nextItemID++
	return id
}

// DrawMob picks a mob uniformly from the pool. The returned mob is a copy,
// so combat never damages the pool entry.
func (g *Game) DrawMob() (domain.Mob, error) {
	if len(g.mobPool) == 0 {
		return domain.Mob{}, domain.ErrEmptyMobPool
	}
	return g.mobPool[g.rng.Intn(len(g.mobPool))], nil
}

// DrawItem picks an item uniformly from the pool and issues it with a fresh instance ID
func (g *Game) DrawItem() (domain.Item, error) {
	if len(g.itemPool) == 0 {
		return domain.Item{}, domain.ErrEmptyItemPool
	}
	item := g.itemPool[g.rng.Intn(len(g.itemPool))]
	return item.WithID(g.NewItemID()), nil
}

// Chance returns true with probability p
func (g *Game) Chance(p float64) bool {
	return g.rng.Float64() < p
}
