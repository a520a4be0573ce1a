package domain

// StatLine is the (health, attack, defense) triple used for item and character summaries
type StatLine struct {
	Health  int `json:"health"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
}

// Add returns the component-wise sum of two stat lines
func (s StatLine) Add(o StatLine) StatLine {
	return StatLine{
		Health:  s.Health + o.Health,
		Attack:  s.Attack + o.Attack,
		Defense: s.Defense + o.Defense,
	}
}

// Item represents a piece of equipment. Items are plain values that are moved
// between a character's inventory and equipment, never shared between them.
type Item struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Health  int    `json:"health,omitempty"`
	Attack  int    `json:"attack,omitempty"`
	Defense int    `json:"defense,omitempty"`
}

// Stats returns the item's contribution to derived character stats
func (i Item) Stats() StatLine {
	return StatLine{Health: i.Health, Attack: i.Attack, Defense: i.Defense}
}

// WithID returns a copy of the item carrying a new instance ID
func (i Item) WithID(id int) Item {
	i.ID = id
	return i
}

// Drink is a tavern menu entry. It is converted into an Item on purchase;
// the price is consumed and not carried over.
type Drink struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Health  int    `json:"health,omitempty"`
	Attack  int    `json:"attack,omitempty"`
	Defense int    `json:"defense,omitempty"`
	Price   int    `json:"price"`
}

// ToItem converts the drink into an inventory item with the given instance ID
func (d Drink) ToItem(id int) Item {
	return Item{
		ID:      id,
		Name:    d.Name,
		Health:  d.Health,
		Attack:  d.Attack,
		Defense: d.Defense,
	}
}

// Mob is a dungeon monster. Only Health changes during combat.
type Mob struct {
	Name    string `json:"name"`
	Health  int    `json:"health"`
	Attack  int    `json:"attack"`
	Defense int    `json:"defense,omitempty"`
}

// IsAlive reports whether the mob can still fight
func (m Mob) IsAlive() bool {
	return m.Health > 0
}
