package action

import (
	"context"
	"errors"

	"github.com/osse101/TavernCrawl_Go/internal/character"
	"github.com/osse101/TavernCrawl_Go/internal/combat"
	"github.com/osse101/TavernCrawl_Go/internal/domain"
	"github.com/osse101/TavernCrawl_Go/internal/event"
	"github.com/osse101/TavernCrawl_Go/internal/game"
	"github.com/osse101/TavernCrawl_Go/internal/logger"
)

// Dungeon draws one mob and lets the player attack or try to flee.
// A failed flee forces the fight. Victory grants one item from the pool;
// defeat leaves the character with health at or below zero.
func Dungeon(ctx context.Context, deps *Deps, ch *character.Character, g *game.Game) (*character.Character, error) {
	log := logger.FromContext(ctx)
	con := deps.Console

	mob, err := g.DrawMob()
	if err != nil {
		if errors.Is(err, domain.ErrEmptyMobPool) {
			con.Warning(MsgNoMobs)
			return ch, nil
		}
		return ch, err
	}

	log.Debug(LogMsgEncounterStarted, "mob", mob.Name)
	con.Info(MsgMobAppears, mob.Name, mob.Health, mob.Attack, mob.Defense)

	idx, err := con.Choose(ctx, TitleEncounter, []string{OptionAttack, OptionFlee})
	if err != nil {
		return ch, err
	}

	if idx == 1 {
		escaped := g.Chance(deps.FleeChance)
		log.Info(LogMsgFleeAttempted, "mob", mob.Name, "escaped", escaped)
		deps.publish(ctx, event.NewFleeAttemptedEvent(domain.FleeAttemptedPayload{
			Character: ch.Name(),
			MobName:   mob.Name,
			Escaped:   escaped,
		}))
		if escaped {
			con.Success(MsgFleeEscaped, mob.Name)
			return ch, nil
		}
		con.Warning(MsgFleeCaught, mob.Name)
	}

	return fight(ctx, deps, ch, g, &mob)
}

func fight(ctx context.Context, deps *Deps, ch *character.Character, g *game.Game, mob *domain.Mob) (*character.Character, error) {
	con := deps.Console

	result := deps.resolver().Fight(ctx, ch, mob)
	for _, r := range result.Rounds {
		con.Line(MsgRoundHit, r.Number, mob.Name, r.DamageDealt, mob.Name, r.MobHealth)
		if r.MobHealth > 0 {
			con.Line(MsgRoundTaken, r.Number, mob.Name, r.DamageTaken, r.CharacterHealth)
		}
	}

	switch result.Outcome {
	case combat.OutcomeCharacterWon:
		con.Success(MsgVictory, mob.Name)
		grantLoot(ctx, deps, ch, g, mob)
	case combat.OutcomeMobWon:
		con.Error(MsgDefeat, mob.Name)
	case combat.OutcomeStalemate:
		con.Warning(MsgStalemate, mob.Name)
	}

	return ch, nil
}

func grantLoot(ctx context.Context, deps *Deps, ch *character.Character, g *game.Game, mob *domain.Mob) {
	item, err := g.DrawItem()
	if err != nil {
		deps.Console.Info(MsgNoLoot, mob.Name)
		return
	}

	ch.Inventory().AddItem(item)
	deps.Console.Success(MsgLoot, item.Name, item.ID, describeStats(item.Stats()))
	logger.FromContext(ctx).Info(LogMsgLootGranted, "item", item.Name, "item_id", item.ID, "mob", mob.Name)
	deps.publish(ctx, event.NewLootGrantedEvent(domain.LootGrantedPayload{
		Character: ch.Name(),
		ItemName:  item.Name,
		ItemID:    item.ID,
		MobName:   mob.Name,
	}))
}
