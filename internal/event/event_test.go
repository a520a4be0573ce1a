package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TavernCrawl_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		assert.Equal(t, eventType, event.Type)
		assert.Equal(t, "payload", event.Payload)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType, Payload: "payload"})

	require.NoError(t, err)
	assert.True(t, handled, "handler was not called")
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	var order []int

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error { order = append(order, 1); return nil })
	bus.Subscribe(eventType, func(ctx context.Context, event Event) error { order = append(order, 2); return nil })

	require.NoError(t, bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType}))
	assert.Equal(t, []int{1, 2}, order)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: "nobody"}))
}

func TestMemoryBus_HandlerErrorsAggregated(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("failing")
	called := 0

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error { called++; return errors.New("boom") })
	bus.Subscribe(eventType, func(ctx context.Context, event Event) error { called++; return nil })

	err := bus.Publish(context.Background(), Event{Type: eventType})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "encountered 1 errors")
	assert.Equal(t, 2, called, "later handlers still run after a failure")
}

func TestGameEventConstructors(t *testing.T) {
	evt := NewLootGrantedEvent(domain.LootGrantedPayload{Character: "Hero", ItemName: "Sword", ItemID: 1000})

	assert.Equal(t, Type(domain.EventTypeLootGranted), evt.Type)
	assert.Equal(t, EventSchemaVersion, evt.Version)

	payload, err := DecodePayload[domain.LootGrantedPayload](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, "Sword", payload.ItemName)
}

func TestDecodePayload_FromMap(t *testing.T) {
	raw := map[string]interface{}{"character": "Hero", "mob_name": "Rat", "escaped": true}

	payload, err := DecodePayload[domain.FleeAttemptedPayload](raw)

	require.NoError(t, err)
	assert.Equal(t, domain.FleeAttemptedPayload{Character: "Hero", MobName: "Rat", Escaped: true}, payload)
}
