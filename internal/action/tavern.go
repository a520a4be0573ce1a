package action

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/TavernCrawl_Go/internal/character"
	"github.com/osse101/TavernCrawl_Go/internal/domain"
	"github.com/osse101/TavernCrawl_Go/internal/event"
	"github.com/osse101/TavernCrawl_Go/internal/game"
	"github.com/osse101/TavernCrawl_Go/internal/logger"
)

// Tavern sells one drink per visit. A bought drink becomes an inventory item
// with a fresh instance ID; a drink the character cannot afford grants nothing.
func Tavern(ctx context.Context, deps *Deps, ch *character.Character, g *game.Game) (*character.Character, error) {
	log := logger.FromContext(ctx)
	con := deps.Console
	inv := ch.Inventory()

	drinks := g.Drinks()
	options := make([]string, 0, len(drinks)+1)
	keys := make([]string, 0, len(drinks)+1)
	for _, d := range drinks {
		options = append(options, fmt.Sprintf(MsgDrinkLine, d.Name, d.Price, describeStats(d.ToItem(0).Stats())))
		keys = append(keys, d.Name)
	}
	options = append(options, OptionLeave)
	keys = append(keys, OptionLeave)

	con.Info(MsgMoney, inv.Money())
	idx, err := con.ChooseKeyed(ctx, TitleTavern, options, keys)
	if err != nil {
		return ch, err
	}
	if idx == len(drinks) {
		return ch, nil
	}

	drink := drinks[idx]
	if _, err := inv.RemoveMoney(drink.Price); err != nil {
		if !errors.Is(err, domain.ErrInsufficientFunds) {
			return ch, err
		}
		con.Error(MsgNotEnoughMoney, drink.Name, drink.Price, inv.Money())
		log.Info(LogMsgPurchaseRejected, "drink", drink.Name, "price", drink.Price, "money", inv.Money())
		deps.publish(ctx, event.NewPurchaseRejectedEvent(domain.PurchaseRejectedPayload{
			Character: ch.Name(),
			DrinkName: drink.Name,
			Price:     drink.Price,
			Money:     inv.Money(),
		}))
		return ch, nil
	}

	item := drink.ToItem(g.NewItemID())
	inv.AddItem(item)
	con.Success(MsgDrinkPurchased, drink.Name, inv.Money())
	log.Info(LogMsgDrinkPurchased, "drink", drink.Name, "item_id", item.ID, "money", inv.Money())
	deps.publish(ctx, event.NewDrinkPurchasedEvent(domain.DrinkPurchasedPayload{
		Character:  ch.Name(),
		DrinkName:  drink.Name,
		Price:      drink.Price,
		MoneyAfter: inv.Money(),
		ItemID:     item.ID,
	}))

	return ch, nil
}
