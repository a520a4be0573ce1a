package domain

// Event type constants used for event bus subscriptions and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "drink.purchased")
const (
	// EventTypeDrinkPurchased is published when the tavern grants a drink
	EventTypeDrinkPurchased = "drink.purchased"

	// EventTypePurchaseRejected is published when a drink costs more than the character holds
	EventTypePurchaseRejected = "purchase.rejected"

	// EventTypeCombatResolved is published when a fight ends
	EventTypeCombatResolved = "combat.resolved"

	// EventTypeLootGranted is published when a victory grants an item
	EventTypeLootGranted = "loot.granted"

	// EventTypeFleeAttempted is published for every flee roll
	EventTypeFleeAttempted = "flee.attempted"

	// EventTypeItemEquipped is published when an item moves from inventory to equipment
	EventTypeItemEquipped = "item.equipped"

	// EventTypeItemUnequipped is published when an item moves from equipment to inventory
	EventTypeItemUnequipped = "item.unequipped"

	// EventTypeSessionEnded is published once when a session finishes
	EventTypeSessionEnded = "session.ended"
)

// Session end reasons carried by SessionEndedPayload.Reason
const (
	SessionEndReasonQuit        = "quit"
	SessionEndReasonDefeated    = "defeated"
	SessionEndReasonInputClosed = "input_closed"
	SessionEndReasonCancelled   = "cancelled"
)
