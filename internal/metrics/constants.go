package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every metric the collector registers
const Namespace = "tavern"

// Event metric names
const (
	MetricNameEventsPublished     = "events_published_total"
	MetricNameEventDecodeFailures = "event_decode_failures_total"
)

// Game metric names
const (
	MetricNameDrinksPurchased   = "drinks_purchased_total"
	MetricNamePurchasesRejected = "purchases_rejected_total"
	MetricNameMoneySpent        = "money_spent_total"
	MetricNameFights            = "fights_total"
	MetricNameFightRounds       = "fight_rounds"
	MetricNameLootGranted       = "loot_granted_total"
	MetricNameFleeAttempts      = "flee_attempts_total"
	MetricNameEquipmentChanges  = "equipment_changes_total"
	MetricNameSessionsEnded     = "sessions_ended_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// Event metric help text
const (
	HelpTextEventsPublished     = "Total number of game events observed"
	HelpTextEventDecodeFailures = "Total number of events whose payload could not be decoded"
)

// Game metric help text
const (
	HelpTextDrinksPurchased   = "Total number of drinks bought at the tavern"
	HelpTextPurchasesRejected = "Total number of purchases rejected for lack of money"
	HelpTextMoneySpent        = "Total money spent at the tavern"
	HelpTextFights            = "Total number of fights by outcome"
	HelpTextFightRounds       = "Number of rounds per fight"
	HelpTextLootGranted       = "Total number of items granted as loot"
	HelpTextFleeAttempts      = "Total number of flee attempts by result"
	HelpTextEquipmentChanges  = "Total number of equip and unequip operations"
	HelpTextSessionsEnded     = "Total number of sessions ended by reason"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelType    = "type"
	LabelDrink   = "drink"
	LabelItem    = "item"
	LabelOutcome = "outcome"
	LabelResult  = "result"
	LabelAction  = "action"
	LabelReason  = "reason"
)

// Label values
const (
	ResultEscaped = "escaped"
	ResultCaught  = "caught"
	ActionEquip   = "equip"
	ActionUnequip = "unequip"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// FightRoundBuckets spans one-hit kills up to fights that hit the round cap
var FightRoundBuckets = []float64{1, 2, 3, 5, 8, 13, 21, 50, 100, 1000}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadUndecodable = "Event payload could not be decoded"
	LogMsgMetricsRecorded         = "Metrics recorded for event"
)
