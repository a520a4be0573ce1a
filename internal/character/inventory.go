package character

import (
	"fmt"

	"github.com/osse101/TavernCrawl_Go/internal/domain"
)

// Inventory holds a character's carried items, in acquisition order, and money.
// Money never drops below zero.
type Inventory struct {
	items []domain.Item
	money int
}

// NewInventory creates an inventory with a starting balance
func NewInventory(money int) *Inventory {
	if money < 0 {
		money = 0
	}
	return &Inventory{
		items: make([]domain.Item, 0),
		money: money,
	}
}

// AddItem appends an item. Items sharing a name are kept as separate entries.
func (inv *Inventory) AddItem(item domain.Item) {
	inv.items = append(inv.items, item)
}

// AddMoney changes the balance by amount. Negative amounts are allowed so
// penalty items can drain money, but the balance is floored at zero.
func (inv *Inventory) AddMoney(amount int) {
	inv.money += amount
	if inv.money < 0 {
		inv.money = 0
	}
}

// RemoveMoney spends amount if the balance covers it.
// On failure the balance is untouched and the error wraps domain.ErrInsufficientFunds.
func (inv *Inventory) RemoveMoney(amount int) (bool, error) {
	if amount < 0 {
		return false, fmt.Errorf("%w: cannot spend %d", domain.ErrInvalidAmount, amount)
	}
	if amount > inv.money {
		return false, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientFunds, amount, inv.money)
	}
	inv.money -= amount
	return true, nil
}

// Money returns the current balance
func (inv *Inventory) Money() int {
	return inv.money
}

// Len returns the number of carried items
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Items returns a copy of the carried items in acquisition order
func (inv *Inventory) Items() []domain.Item {
	out := make([]domain.Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// Summary maps item names to their stats. When several items share a name the
// later one wins, so this is a reporting view only.
func (inv *Inventory) Summary() map[string]domain.StatLine {
	summary := make(map[string]domain.StatLine, len(inv.items))
	for _, item := range inv.items {
		summary[item.Name] = item.Stats()
	}
	return summary
}

// take removes and returns the first item with the given ID
func (inv *Inventory) take(id int) (domain.Item, bool) {
	idx := findItem(inv.items, id)
	if idx < 0 {
		return domain.Item{}, false
	}
	item := inv.items[idx]
	inv.items = append(inv.items[:idx], inv.items[idx+1:]...)
	return item, true
}

// findItem returns the index of the first item with the given ID, or -1
func findItem(items []domain.Item, id int) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
