package catalog

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/osse101/TavernCrawl_Go/internal/domain"
)

//go:embed data/*.json
var embedded embed.FS

// Catalog is the full content definition: the tavern menu plus the fixed
// item and mob lists for every difficulty tier
type Catalog struct {
	Version     string                      `json:"version"`
	Description string                      `json:"description,omitempty"`
	Drinks      []domain.Drink              `json:"drinks"`
	Tiers       map[domain.Difficulty]*Tier `json:"tiers"`
}

// Tier is the content owned by one difficulty
type Tier struct {
	Items []domain.Item `json:"items"`
	Mobs  []domain.Mob  `json:"mobs"`
}

// Tier returns the content for a difficulty
func (c *Catalog) Tier(d domain.Difficulty) (*Tier, error) {
	tier, ok := c.Tiers[d]
	if !ok || tier == nil {
		return nil, fmt.Errorf(ErrFmtUnknownDifficulty, domain.ErrInvalidCatalog, d)
	}
	return tier, nil
}

// Default returns the embedded catalog. It panics if the embedded file is
// broken, which can only happen at build time.
func Default() *Catalog {
	data, err := embedded.ReadFile("data/" + DefaultCatalogFileName)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog missing: %v", err))
	}
	cat, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog invalid: %v", err))
	}
	return cat
}

// Parse decodes and semantically validates catalog JSON. Schema validation
// happens in the Loader.
func Parse(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}
	if err := Validate(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Validate checks a catalog for errors the schema cannot express:
// unique IDs, every tier present, and content scaling with difficulty. Sizes
// are checked again here so catalogs built in code obey the same shape.
func Validate(cat *Catalog) error {
	if cat == nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidCatalog, ErrMsgCatalogNil)
	}
	if len(cat.Drinks) != DrinkCount {
		return fmt.Errorf(ErrFmtDrinkCount, domain.ErrInvalidCatalog, DrinkCount, len(cat.Drinks))
	}

	ids := make(map[int]bool)
	for i, drink := range cat.Drinks {
		if drink.Name == "" {
			return fmt.Errorf(ErrFmtEmptyName, domain.ErrInvalidCatalog, "drink", i)
		}
		if drink.Price < 0 {
			return fmt.Errorf(ErrFmtNegativePrice, domain.ErrInvalidCatalog, drink.Name)
		}
		if ids[drink.ID] {
			return fmt.Errorf(ErrFmtDuplicateID, domain.ErrInvalidCatalog, drink.ID)
		}
		ids[drink.ID] = true
	}

	for _, d := range domain.Difficulties {
		tier, ok := cat.Tiers[d]
		if !ok || tier == nil {
			return fmt.Errorf(ErrFmtMissingTier, domain.ErrInvalidCatalog, d)
		}
		if len(tier.Items) != TierItemCount || len(tier.Mobs) != TierMobCount {
			return fmt.Errorf(ErrFmtTierSize, domain.ErrInvalidCatalog, d,
				TierItemCount, TierMobCount, len(tier.Items), len(tier.Mobs))
		}
		for i, item := range tier.Items {
			if item.Name == "" {
				return fmt.Errorf(ErrFmtEmptyName, domain.ErrInvalidCatalog, "item", i)
			}
			if ids[item.ID] {
				return fmt.Errorf(ErrFmtDuplicateID, domain.ErrInvalidCatalog, item.ID)
			}
			ids[item.ID] = true
		}
		for i, mob := range tier.Mobs {
			if mob.Name == "" {
				return fmt.Errorf(ErrFmtEmptyName, domain.ErrInvalidCatalog, "mob", i)
			}
			if !mob.IsAlive() {
				return fmt.Errorf(ErrFmtMobNotAlive, domain.ErrInvalidCatalog, mob.Name)
			}
		}
	}

	return validateScaling(cat)
}

// validateScaling requires each tier's strongest item and mob to beat the tier below
func validateScaling(cat *Catalog) error {
	for i := 1; i < len(domain.Difficulties); i++ {
		lower, upper := domain.Difficulties[i-1], domain.Difficulties[i]
		lowItems, upItems := maxItemPower(cat.Tiers[lower].Items), maxItemPower(cat.Tiers[upper].Items)
		if upItems <= lowItems {
			return fmt.Errorf(ErrFmtTierNotScaled, domain.ErrInvalidCatalog, upper, "item", upItems, lower, lowItems)
		}
		lowMobs, upMobs := maxMobPower(cat.Tiers[lower].Mobs), maxMobPower(cat.Tiers[upper].Mobs)
		if upMobs <= lowMobs {
			return fmt.Errorf(ErrFmtTierNotScaled, domain.ErrInvalidCatalog, upper, "mob", upMobs, lower, lowMobs)
		}
	}
	return nil
}

func maxItemPower(items []domain.Item) int {
	best := 0
	for i, item := range items {
		p := item.Health + item.Attack + item.Defense
		if i == 0 || p > best {
			best = p
		}
	}
	return best
}

func maxMobPower(mobs []domain.Mob) int {
	best := 0
	for i, mob := range mobs {
		p := mob.Health + mob.Attack + mob.Defense
		if i == 0 || p > best {
			best = p
		}
	}
	return best
}
