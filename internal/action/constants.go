package action

// Action names shown in the main menu
const (
	NameTavern    = "Tavern"
	NameDungeon   = "Dungeon"
	NameInventory = "Check Inventory"
)

// Menu titles and options
const (
	TitleTavern    = "The Tavern"
	TitleEncounter = "Encounter"
	TitleInventory = "Inventory"
	OptionLeave    = "Leave"
	OptionAttack   = "Attack"
	OptionFlee     = "Flee"
	OptionEquip    = "Equip"
	OptionUnequip  = "Unequip"
	OptionBack     = "Back"
	LabelItemID    = "Item ID"
)

// DefaultFleeChance is the probability that a flee attempt succeeds
const DefaultFleeChance = 0.5

// Player-facing messages
const (
	MsgMoney            = "Gold: %d"
	MsgDrinkLine        = "%s - %d gold (%s)"
	MsgNotEnoughMoney   = "Not enough money for %s (costs %d, you have %d)."
	MsgDrinkPurchased   = "You drink the %s. Gold left: %d"
	MsgNoMobs           = "The dungeon is quiet. Nothing to fight."
	MsgMobAppears       = "A %s appears! (health %d, attack %d, defense %d)"
	MsgFleeEscaped      = "You slip away from the %s."
	MsgFleeCaught       = "The %s blocks your escape!"
	MsgRoundHit         = "Round %d: you hit the %s for %d (%s health %d)"
	MsgRoundTaken       = "Round %d: the %s hits you for %d (your health %d)"
	MsgVictory          = "You defeated the %s!"
	MsgLoot             = "You found %s [%d] (%s)."
	MsgNoLoot           = "The %s carried nothing."
	MsgDefeat           = "You were defeated by the %s."
	MsgStalemate        = "Neither of you can land a blow. The %s loses interest."
	MsgStats            = "Health %d | Attack %d | Defense %d"
	MsgInventoryHeading = "Carried:"
	MsgEquipmentHeading = "Equipped:"
	MsgNothing          = "  (nothing)"
	MsgItemLine         = "  [%d] %s (%s)"
	MsgEquipped         = "Equipped %s."
	MsgUnequipped       = "Unequipped %s."
	MsgNotCarried       = "You are not carrying an item with ID %d."
	MsgNotEquipped      = "You have no item with ID %d equipped."
	MsgNoStats          = "no bonus"
)

// Log messages
const (
	LogMsgPublishEventFailed = "Failed to publish game event"
	LogMsgDrinkPurchased     = "Drink purchased"
	LogMsgPurchaseRejected   = "Purchase rejected"
	LogMsgEncounterStarted   = "Encounter started"
	LogMsgFleeAttempted      = "Flee attempted"
	LogMsgLootGranted        = "Loot granted"
	LogMsgEquipmentChanged   = "Equipment changed"
)
