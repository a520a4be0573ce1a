package session

// Menu titles and labels
const (
	TitleBanner     = "Tavern Crawl"
	TitleMainMenu   = "Main Menu"
	TitleGameOver   = "Game Over"
	OptionQuit      = "Quit"
	LabelName       = "Enter your name"
	LabelDifficulty = "Choose a difficulty (easy, middle, hard)"
)

// Player-facing messages
const (
	MsgWelcome           = "Welcome, %s!"
	MsgInvalidDifficulty = "%q is not a difficulty. Pick easy, middle or hard."
	MsgWorldReady        = "The %s dungeon awaits: %d kinds of foe, %d kinds of treasure."
	MsgFarewell          = "Farewell, %s."
	MsgFinalStats        = "%s | Health %d | Attack %d | Defense %d | Gold %d | Items %d | Turns %d"
	MsgDefeated          = "%s has fallen."
)

// Log messages
const (
	LogMsgSessionStarted     = "Session started"
	LogMsgDifficultyRejected = "Difficulty rejected"
	LogMsgActionStarted      = "Action started"
	LogMsgSessionEnded       = "Session ended"
	LogMsgPublishEventFailed = "Failed to publish session event"
)
