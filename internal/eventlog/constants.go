package eventlog

// Log messages - service events
const (
	LogMsgEventPayloadUndecodable = "Event payload could not be decoded, skipping journal entry"
	LogMsgFailedToLogEvent        = "Failed to write journal entry"
	LogMsgEventLogged             = "Journal entry written"
)

// Log messages - prune job
const (
	LogMsgPruneJobStarting  = "Starting journal prune job"
	LogMsgPruneJobFailed    = "Journal prune failed"
	LogMsgPruneJobCompleted = "Journal prune completed"
)

// Log field keys - structured logging fields
const (
	LogFieldType         = "type"
	LogFieldSessionID    = "session_id"
	LogFieldError        = "error"
	LogFieldKeep         = "keep"
	LogFieldDuration     = "duration"
	LogFieldDeletedCount = "deletedCount"
)

// DefaultMaxEntries is how many journal entries survive a prune by default
const DefaultMaxEntries = 500
