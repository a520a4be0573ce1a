// Package eventlog journals every game event of a session so the run can be
// reviewed or exported afterwards.
package eventlog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/osse101/TavernCrawl_Go/internal/domain"
	"github.com/osse101/TavernCrawl_Go/internal/event"
	"github.com/osse101/TavernCrawl_Go/internal/logger"
)

// Service handles journal business logic
type Service interface {
	// Subscribe registers the journal to listen to all game events
	Subscribe(bus event.Bus) error

	// Entries returns journaled events matching filter
	Entries(ctx context.Context, filter Filter) ([]Entry, error)

	// Prune keeps only the newest keep entries
	Prune(ctx context.Context, keep int) (int64, error)

	// Export writes every entry to w as JSON lines
	Export(ctx context.Context, w io.Writer) error
}

type service struct {
	repo Repository
}

// NewService creates a new journal service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Subscribe registers event handlers for all event types
func (s *service) Subscribe(bus event.Bus) error {
	eventTypes := []event.Type{
		domain.EventTypeDrinkPurchased,
		domain.EventTypePurchaseRejected,
		domain.EventTypeCombatResolved,
		domain.EventTypeLootGranted,
		domain.EventTypeFleeAttempted,
		domain.EventTypeItemEquipped,
		domain.EventTypeItemUnequipped,
		domain.EventTypeSessionEnded,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}

	return nil
}

// handleEvent flattens the payload and appends it to the journal
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[map[string]interface{}](evt.Payload)
	if err != nil {
		log.Debug(LogMsgEventPayloadUndecodable, LogFieldType, evt.Type, LogFieldError, err)
		return nil
	}

	sessionID, _ := logger.SessionIDFromContext(ctx)
	if err := s.repo.LogEvent(ctx, string(evt.Type), sessionID, payload); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldSessionID, sessionID)
	return nil
}

func (s *service) Entries(ctx context.Context, filter Filter) ([]Entry, error) {
	return s.repo.GetEvents(ctx, filter)
}

func (s *service) Prune(ctx context.Context, keep int) (int64, error) {
	return s.repo.Prune(ctx, keep)
}

func (s *service) Export(ctx context.Context, w io.Writer) error {
	entries, err := s.repo.GetEvents(ctx, Filter{})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	for _, e := range entries {
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("failed to export journal entry %d: %w", e.ID, err)
		}
	}
	return nil
}
