package action

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TavernCrawl_Go/internal/catalog"
	"github.com/osse101/TavernCrawl_Go/internal/combat"
	"github.com/osse101/TavernCrawl_Go/internal/domain"
	"github.com/osse101/TavernCrawl_Go/internal/game"
	"github.com/osse101/TavernCrawl_Go/internal/prompt"
	"github.com/osse101/TavernCrawl_Go/internal/random"
)

var testDrinks = []domain.Drink{
	{ID: 1, Name: "Ale", Health: 5, Price: 10},
	{ID: 2, Name: "Dragon Elixir", Health: 10, Attack: 2, Defense: 2, Price: 60},
}

// singleTierCatalog gives every tier exactly one item and one mob so draws are fixed
func singleTierCatalog(item domain.Item, mob domain.Mob) *catalog.Catalog {
	tier := &catalog.Tier{Items: []domain.Item{item}, Mobs: []domain.Mob{mob}}
	return &catalog.Catalog{
		Version: "test",
		Drinks:  testDrinks,
		Tiers: map[domain.Difficulty]*catalog.Tier{
			domain.DifficultyEasy:   tier,
			domain.DifficultyMiddle: tier,
			domain.DifficultyHard:   tier,
		},
	}
}

func newGeneratedGame(t *testing.T, item domain.Item, mob domain.Mob) *game.Game {
	t.Helper()
	g := game.New(singleTierCatalog(item, mob), random.New(7))
	require.NoError(t, g.SetDifficulty("easy"))
	require.NoError(t, g.GenerateWorld())
	return g
}

type harness struct {
	deps *Deps
	bus  *MockBus
	out  *bytes.Buffer
}

func newHarness(fleeChance float64, tokens ...string) *harness {
	bus := new(MockBus)
	bus.On("Publish", mock.Anything, mock.Anything).Return(nil)
	out := &bytes.Buffer{}
	return &harness{
		deps: &Deps{
			Console:    prompt.NewConsole(prompt.NewScriptInput(tokens...), prompt.NewWriterOutput(out)),
			Bus:        bus,
			Resolver:   combat.NewResolver(bus, 0),
			FleeChance: fleeChance,
		},
		bus: bus,
		out: out,
	}
}
