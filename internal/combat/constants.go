package combat

// DefaultMaxRounds caps a fight in which neither side can make progress
const DefaultMaxRounds = 1000

// Log messages
const (
	LogMsgFightStarted       = "Fight started"
	LogMsgRoundResolved      = "Round resolved"
	LogMsgFightResolved      = "Fight resolved"
	LogMsgFightStalemate     = "Fight hit the round cap"
	LogMsgPublishEventFailed = "Failed to publish combat event"
)
