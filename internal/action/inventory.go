package action

import (
	"context"
	"errors"

	"github.com/osse101/TavernCrawl_Go/internal/character"
	"github.com/osse101/TavernCrawl_Go/internal/domain"
	"github.com/osse101/TavernCrawl_Go/internal/event"
	"github.com/osse101/TavernCrawl_Go/internal/game"
	"github.com/osse101/TavernCrawl_Go/internal/logger"
)

const (
	choiceEquip = iota
	choiceUnequip
	choiceBack
)

// CheckInventory shows stats, money, carried items and equipment, and lets
// the player equip or unequip by item ID until they choose Back.
func CheckInventory(ctx context.Context, deps *Deps, ch *character.Character, _ *game.Game) (*character.Character, error) {
	con := deps.Console

	for {
		showInventory(deps, ch)

		idx, err := con.Choose(ctx, TitleInventory, []string{OptionEquip, OptionUnequip, OptionBack})
		if err != nil {
			return ch, err
		}
		if idx == choiceBack {
			return ch, nil
		}

		id, err := con.ReadInt(ctx, LabelItemID)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidMenuChoice) {
				continue
			}
			return ch, err
		}

		if idx == choiceEquip {
			changeEquipment(ctx, deps, ch, id, ch.Equip, MsgEquipped, MsgNotCarried, event.NewItemEquippedEvent)
		} else {
			changeEquipment(ctx, deps, ch, id, ch.Unequip, MsgUnequipped, MsgNotEquipped, event.NewItemUnequippedEvent)
		}
	}
}

func changeEquipment(
	ctx context.Context,
	deps *Deps,
	ch *character.Character,
	id int,
	move func(int) (domain.Item, error),
	successMsg, missingMsg string,
	newEvent func(domain.EquipmentChangedPayload) event.Event,
) {
	item, err := move(id)
	if err != nil {
		deps.Console.Error(missingMsg, id)
		return
	}

	deps.Console.Success(successMsg, item.Name)
	evt := newEvent(domain.EquipmentChangedPayload{
		Character: ch.Name(),
		ItemID:    item.ID,
		ItemName:  item.Name,
	})
	logger.FromContext(ctx).Info(LogMsgEquipmentChanged, "type", evt.Type, "item_id", item.ID)
	deps.publish(ctx, evt)
}

func showInventory(deps *Deps, ch *character.Character) {
	con := deps.Console
	con.Header(TitleInventory)
	con.Line(MsgStats, ch.Health(), ch.Attack(), ch.Defense())
	con.Line(MsgMoney, ch.Inventory().Money())

	con.Line(MsgInventoryHeading)
	listItems(deps, ch.Inventory().Items())
	con.Line(MsgEquipmentHeading)
	listItems(deps, ch.Equipped())
}

func listItems(deps *Deps, items []domain.Item) {
	if len(items) == 0 {
		deps.Console.Line(MsgNothing)
		return
	}
	for _, item := range items {
		deps.Console.Line(MsgItemLine, item.ID, item.Name, describeStats(item.Stats()))
	}
}
