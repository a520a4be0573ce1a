package game

// FirstInstanceID is the first ID handed to granted items. Catalog template
// IDs stay below it so instances never collide with templates.
const FirstInstanceID = 1000

// Log messages
const (
	LogMsgDifficultySet   = "Difficulty set"
	LogMsgWorldGenerated  = "World generated"
	LogMsgWorldRegenerate = "World already generated, keeping pools"
)
