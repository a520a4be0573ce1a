package eventlog

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TavernCrawl_Go/internal/domain"
	"github.com/osse101/TavernCrawl_Go/internal/event"
	"github.com/osse101/TavernCrawl_Go/internal/logger"
)

// MockEventBus is a mock implementation of event.Bus
type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockEventBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}

func TestService_Subscribe(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	mockBus := new(MockEventBus)

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
	for _, et := range eventTypes {
		mockBus.On("Subscribe", et, mock.Anything).Return()
	}

	err := service.Subscribe(mockBus)
	assert.NoError(t, err)
	mockBus.AssertExpectations(t)
}

func TestService_HandleEvent(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo).(*service)
	ctx := logger.WithSessionID(context.Background(), "session-1")

	evt := event.NewLootGrantedEvent(domain.LootGrantedPayload{Character: "Aria", ItemName: "Iron Sword", ItemID: 1000})
	expected := map[string]interface{}{
		"character": "Aria",
		"item_name": "Iron Sword",
		"item_id":   float64(1000),
		"mob_name":  "",
	}
	mockRepo.On("LogEvent", ctx, domain.EventTypeLootGranted, "session-1", expected).Return(nil)

	err := svc.handleEvent(ctx, evt)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_HandleEvent_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo).(*service)
	mockRepo.On("LogEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("disk full"))

	err := svc.handleEvent(context.Background(), event.NewFleeAttemptedEvent(domain.FleeAttemptedPayload{Escaped: true}))
	assert.EqualError(t, err, "disk full")
}

func TestService_HandleEvent_UndecodablePayloadSkipped(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo).(*service)

	err := svc.handleEvent(context.Background(), event.Event{Type: domain.EventTypeCombatResolved, Payload: func() {}})
	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "LogEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_JournalsThroughBus(t *testing.T) {
	repo := NewMemoryRepository(0)
	svc := NewService(repo)
	bus := event.NewMemoryBus()
	require.NoError(t, svc.Subscribe(bus))
	ctx := logger.WithSessionID(context.Background(), "abc")

	require.NoError(t, bus.Publish(ctx, event.NewDrinkPurchasedEvent(domain.DrinkPurchasedPayload{DrinkName: "Ale", Price: 10})))
	require.NoError(t, bus.Publish(ctx, event.NewCombatResolvedEvent(domain.CombatResolvedPayload{MobName: "Rat", Outcome: "character_won"})))

	entries, err := svc.Entries(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.EventTypeDrinkPurchased, entries[0].EventType)
	assert.Equal(t, "abc", entries[0].SessionID)
	assert.Equal(t, "Ale", entries[0].Payload["drink_name"])
	assert.Equal(t, domain.EventTypeCombatResolved, entries[1].EventType)

	var buf bytes.Buffer
	require.NoError(t, svc.Export(ctx, &buf))

	scanner := bufio.NewScanner(&buf)
	var lines []Entry
	for scanner.Scan() {
		var e Entry
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
		lines = append(lines, e)
	}
	require.Len(t, lines, 2)
	assert.Equal(t, int64(1), lines[0].ID)
	assert.Equal(t, "Rat", lines[1].Payload["mob_name"])
}

func TestService_JournalStaysBoundedDuringSession(t *testing.T) {
	svc := NewService(NewMemoryRepository(3))
	bus := event.NewMemoryBus()
	require.NoError(t, svc.Subscribe(bus))
	ctx := logger.WithSessionID(context.Background(), "abc")

	for i := 0; i < 10; i++ {
		require.NoError(t, bus.Publish(ctx, event.NewLootGrantedEvent(domain.LootGrantedPayload{ItemName: "Sword"})))
	}

	entries, err := svc.Entries(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, int64(8), entries[0].ID)
	assert.Equal(t, int64(10), entries[2].ID)
}

func TestService_Prune(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("Prune", ctx, 10).Return(int64(5), nil)

	count, err := service.Prune(ctx, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), count)
	mockRepo.AssertExpectations(t)
}
