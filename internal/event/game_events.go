package event

import "github.com/osse101/TavernCrawl_Go/internal/domain"

// Type-safe constructors for the game's domain events

func newEvent(t string, payload interface{}) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(t),
		Payload: payload,
	}
}

// NewDrinkPurchasedEvent creates a drink.purchased event
func NewDrinkPurchasedEvent(p domain.DrinkPurchasedPayload) Event {
	return newEvent(domain.EventTypeDrinkPurchased, p)
}

// NewPurchaseRejectedEvent creates a purchase.rejected event
func NewPurchaseRejectedEvent(p domain.PurchaseRejectedPayload) Event {
	return newEvent(domain.EventTypePurchaseRejected, p)
}

// NewCombatResolvedEvent creates a combat.resolved event
func NewCombatResolvedEvent(p domain.CombatResolvedPayload) Event {
	return newEvent(domain.EventTypeCombatResolved, p)
}

// NewLootGrantedEvent creates a loot.granted event
func NewLootGrantedEvent(p domain.LootGrantedPayload) Event {
	return newEvent(domain.EventTypeLootGranted, p)
}

// NewFleeAttemptedEvent creates a flee.attempted event
func NewFleeAttemptedEvent(p domain.FleeAttemptedPayload) Event {
	return newEvent(domain.EventTypeFleeAttempted, p)
}

// NewItemEquippedEvent creates an item.equipped event
func NewItemEquippedEvent(p domain.EquipmentChangedPayload) Event {
	return newEvent(domain.EventTypeItemEquipped, p)
}

// NewItemUnequippedEvent creates an item.unequipped event
func NewItemUnequippedEvent(p domain.EquipmentChangedPayload) Event {
	return newEvent(domain.EventTypeItemUnequipped, p)
}

// NewSessionEndedEvent creates a session.ended event
func NewSessionEndedEvent(p domain.SessionEndedPayload) Event {
	return newEvent(domain.EventTypeSessionEnded, p)
}
