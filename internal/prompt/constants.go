package prompt

// Console markers
const (
	markerInfo    = "ℹ "
	markerSuccess = "✓ "
	markerWarning = "⚠ "
	markerError   = "✗ "
	promptCursor  = "> "
)

// Console messages
const (
	MsgInvalidChoice = "Invalid choice, try again."
	MsgEmptyName     = "A name is required."
	MsgNotANumber    = "%q is not a number."
)
