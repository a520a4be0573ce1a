package action

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/TavernCrawl_Go/internal/domain"
	"github.com/osse101/TavernCrawl_Go/internal/event"
)

// MockBus is a mock implementation of event.Bus
type MockBus struct {
	mock.Mock
}

func (m *MockBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}

// published returns the types of every event passed to Publish, in order
func (m *MockBus) published() []event.Type {
	types := make([]event.Type, 0, len(m.Calls))
	for _, call := range m.Calls {
		if call.Method != "Publish" {
			continue
		}
		types = append(types, call.Arguments.Get(1).(event.Event).Type)
	}
	return types
}

// payloadOf returns the payload of the first published event of type t
func (m *MockBus) payloadOf(t event.Type) interface{} {
	for _, call := range m.Calls {
		if call.Method != "Publish" {
			continue
		}
		if evt := call.Arguments.Get(1).(event.Event); evt.Type == t {
			return evt.Payload
		}
	}
	return nil
}

func eventForTest() event.Event {
	return event.NewSessionEndedEvent(domain.SessionEndedPayload{Reason: domain.SessionEndReasonQuit})
}
