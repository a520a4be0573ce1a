package event

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

// LogMsgHandlerErrorFormat formats the aggregate error returned when handlers fail
const LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
