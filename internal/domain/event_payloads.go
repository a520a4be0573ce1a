package domain

// DrinkPurchasedPayload is the event payload for drink.purchased events
type DrinkPurchasedPayload struct {
	Character  string `json:"character"`
	DrinkName  string `json:"drink_name"`
	Price      int    `json:"price"`
	MoneyAfter int    `json:"money_after"`
	ItemID     int    `json:"item_id"`
}

// PurchaseRejectedPayload is the event payload for purchase.rejected events
type PurchaseRejectedPayload struct {
	Character string `json:"character"`
	DrinkName string `json:"drink_name"`
	Price     int    `json:"price"`
	Money     int    `json:"money"`
}

// CombatResolvedPayload is the event payload for combat.resolved events
type CombatResolvedPayload struct {
	Character       string `json:"character"`
	MobName         string `json:"mob_name"`
	Outcome         string `json:"outcome"`
	Rounds          int    `json:"rounds"`
	CharacterHealth int    `json:"character_health"`
	MobHealth       int    `json:"mob_health"`
}

// LootGrantedPayload is the event payload for loot.granted events
type LootGrantedPayload struct {
	Character string `json:"character"`
	ItemName  string `json:"item_name"`
	ItemID    int    `json:"item_id"`
	MobName   string `json:"mob_name"`
}

// FleeAttemptedPayload is the event payload for flee.attempted events
type FleeAttemptedPayload struct {
	Character string `json:"character"`
	MobName   string `json:"mob_name"`
	Escaped   bool   `json:"escaped"`
}

// EquipmentChangedPayload is the event payload for item.equipped and item.unequipped events
type EquipmentChangedPayload struct {
	Character string `json:"character"`
	ItemID    int    `json:"item_id"`
	ItemName  string `json:"item_name"`
}

// SessionEndedPayload is the event payload for session.ended events
type SessionEndedPayload struct {
	SessionID string `json:"session_id"`
	Character string `json:"character"`
	Turns     int    `json:"turns"`
	Defeated  bool   `json:"defeated"`
	Reason    string `json:"reason"`
}
