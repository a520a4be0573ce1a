package character

import (
	"fmt"

	"github.com/osse101/TavernCrawl_Go/internal/domain"
)

// Character is the player. It owns its inventory and equipment; attack,
// defense and health are derived on every read from the base values plus
// whatever is currently equipped.
type Character struct {
	name          string
	baseHealth    int
	baseAttack    int
	baseDefense   int
	currentHealth int
	inventory     *Inventory
	equipped      []domain.Item
}

// New creates a character at full health with an empty inventory
func New(name string, baseHealth, baseAttack, baseDefense, startingMoney int) *Character {
	return &Character{
		name:          name,
		baseHealth:    baseHealth,
		baseAttack:    baseAttack,
		baseDefense:   baseDefense,
		currentHealth: baseHealth,
		inventory:     NewInventory(startingMoney),
		equipped:      make([]domain.Item, 0),
	}
}

// Name returns the character's name
func (c *Character) Name() string {
	return c.name
}

// Inventory returns the character's inventory
func (c *Character) Inventory() *Inventory {
	return c.inventory
}

// Equipped returns a copy of the equipped items in equip order
func (c *Character) Equipped() []domain.Item {
	out := make([]domain.Item, len(c.equipped))
	copy(out, c.equipped)
	return out
}

// Health returns the health baseline plus equipment health
func (c *Character) Health() int {
	return c.currentHealth + c.equipmentStats().Health
}

// Attack returns base attack plus equipment attack
func (c *Character) Attack() int {
	return c.baseAttack + c.equipmentStats().Attack
}

// Defense returns base defense plus equipment defense
func (c *Character) Defense() int {
	return c.baseDefense + c.equipmentStats().Defense
}

// BaseHealth returns the health the character was created with
func (c *Character) BaseHealth() int {
	return c.baseHealth
}

// Stats returns the derived stat line
func (c *Character) Stats() domain.StatLine {
	return domain.StatLine{Health: c.Health(), Attack: c.Attack(), Defense: c.Defense()}
}

// SetHealth sets the health baseline. Equipment health is still added on read.
func (c *Character) SetHealth(value int) {
	c.currentHealth = value
}

// TakeDamage lowers the health baseline by exactly amount
func (c *Character) TakeDamage(amount int) {
	c.currentHealth -= amount
}

// IsDefeated reports whether derived health has reached zero
func (c *Character) IsDefeated() bool {
	return c.Health() <= 0
}

// Equip moves the first inventory item with the given ID into equipment
func (c *Character) Equip(id int) (domain.Item, error) {
	item, ok := c.inventory.take(id)
	if !ok {
		return domain.Item{}, fmt.Errorf("%w: no item %d in inventory", domain.ErrItemNotFound, id)
	}
	c.equipped = append(c.equipped, item)
	return item, nil
}

// Unequip moves the first equipped item with the given ID back into the inventory
func (c *Character) Unequip(id int) (domain.Item, error) {
	idx := findItem(c.equipped, id)
	if idx < 0 {
		return domain.Item{}, fmt.Errorf("%w: no item %d equipped", domain.ErrItemNotFound, id)
	}
	item := c.equipped[idx]
	c.equipped = append(c.equipped[:idx], c.equipped[idx+1:]...)
	c.inventory.AddItem(item)
	return item, nil
}

func (c *Character) equipmentStats() domain.StatLine {
	var total domain.StatLine
	for _, item := range c.equipped {
		total = total.Add(item.Stats())
	}
	return total
}
