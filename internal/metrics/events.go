package metrics

import (
	"context"

	"github.com/osse101/TavernCrawl_Go/internal/domain"
	"github.com/osse101/TavernCrawl_Go/internal/event"
	"github.com/osse101/TavernCrawl_Go/internal/logger"
)

// Register subscribes the collector to every game event
func (c *Collector) Register(bus event.Bus) error {
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
		bus.Subscribe(eventType, c.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics. Undecodable payloads are
// counted and skipped; metrics never fail the publisher.
func (c *Collector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	c.EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case domain.EventTypeDrinkPurchased:
		var p domain.DrinkPurchasedPayload
		if p, err = event.DecodePayload[domain.DrinkPurchasedPayload](evt.Payload); err == nil {
			c.DrinksPurchased.WithLabelValues(p.DrinkName).Inc()
			c.MoneySpent.Add(float64(p.Price))
		}

	case domain.EventTypePurchaseRejected:
		var p domain.PurchaseRejectedPayload
		if p, err = event.DecodePayload[domain.PurchaseRejectedPayload](evt.Payload); err == nil {
			c.PurchasesRejected.WithLabelValues(p.DrinkName).Inc()
		}

	case domain.EventTypeCombatResolved:
		var p domain.CombatResolvedPayload
		if p, err = event.DecodePayload[domain.CombatResolvedPayload](evt.Payload); err == nil {
			c.Fights.WithLabelValues(p.Outcome).Inc()
			c.FightRounds.Observe(float64(p.Rounds))
		}

	case domain.EventTypeLootGranted:
		var p domain.LootGrantedPayload
		if p, err = event.DecodePayload[domain.LootGrantedPayload](evt.Payload); err == nil {
			c.LootGranted.WithLabelValues(p.ItemName).Inc()
		}

	case domain.EventTypeFleeAttempted:
		var p domain.FleeAttemptedPayload
		if p, err = event.DecodePayload[domain.FleeAttemptedPayload](evt.Payload); err == nil {
			result := ResultCaught
			if p.Escaped {
				result = ResultEscaped
			}
			c.FleeAttempts.WithLabelValues(result).Inc()
		}

	case domain.EventTypeItemEquipped:
		c.EquipmentChanges.WithLabelValues(ActionEquip).Inc()

	case domain.EventTypeItemUnequipped:
		c.EquipmentChanges.WithLabelValues(ActionUnequip).Inc()

	case domain.EventTypeSessionEnded:
		var p domain.SessionEndedPayload
		if p, err = event.DecodePayload[domain.SessionEndedPayload](evt.Payload); err == nil {
			c.SessionsEnded.WithLabelValues(p.Reason).Inc()
		}
	}

	if err != nil {
		c.EventDecodeFailures.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadUndecodable, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
