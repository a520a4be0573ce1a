package eventlog

import (
	"context"
	"time"
)

// Entry is one journaled game event
type Entry struct {
	ID        int64                  `json:"id"`
	EventType string                 `json:"event_type"`
	SessionID string                 `json:"session_id,omitempty"`
	Payload   map[string]interface{} `json:"payload"`
	CreatedAt time.Time              `json:"created_at"`
}

// Filter narrows journal queries. Zero values match everything.
type Filter struct {
	EventType string
	SessionID string
	Limit     int
}

// Repository defines the interface for journal storage
type Repository interface {
	// LogEvent appends an entry
	LogEvent(ctx context.Context, eventType, sessionID string, payload map[string]interface{}) error

	// GetEvents returns entries matching filter, oldest first
	GetEvents(ctx context.Context, filter Filter) ([]Entry, error)

	// Prune drops the oldest entries so at most keep remain
	Prune(ctx context.Context, keep int) (int64, error)
}
