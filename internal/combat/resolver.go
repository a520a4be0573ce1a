// Package combat resolves fights between the character and a mob.
//
// A fight is a deterministic loop: the character strikes first with its
// derived attack; if the mob survives it strikes back. Defense is not
// consumed and there is no minimum damage.
package combat

import (
	"context"

	"github.com/osse101/TavernCrawl_Go/internal/character"
	"github.com/osse101/TavernCrawl_Go/internal/domain"
	"github.com/osse101/TavernCrawl_Go/internal/event"
	"github.com/osse101/TavernCrawl_Go/internal/logger"
)

// Outcome is how a fight ended
type Outcome string

const (
	OutcomeCharacterWon Outcome = "character_won"
	OutcomeMobWon       Outcome = "mob_won"
	OutcomeStalemate    Outcome = "stalemate"
)

// Round records one exchange. DamageTaken is zero when the mob died before striking back.
type Round struct {
	Number          int `json:"number"`
	DamageDealt     int `json:"damage_dealt"`
	DamageTaken     int `json:"damage_taken"`
	MobHealth       int `json:"mob_health"`
	CharacterHealth int `json:"character_health"`
}

// Result is the fight journal
type Result struct {
	MobName string  `json:"mob_name"`
	Outcome Outcome `json:"outcome"`
	Rounds  []Round `json:"rounds"`
}

// CharacterWon reports whether the mob was defeated
func (r *Result) CharacterWon() bool {
	return r.Outcome == OutcomeCharacterWon
}

// Resolver runs fights and announces their outcome on the event bus
type Resolver struct {
	bus       event.Bus
	maxRounds int
}

// NewResolver creates a Resolver. bus may be nil; maxRounds <= 0 uses DefaultMaxRounds.
// The cap only ends fights where neither side can lose health.
func NewResolver(bus event.Bus, maxRounds int) *Resolver {
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	return &Resolver{bus: bus, maxRounds: maxRounds}
}

// Fight runs the turn loop until one side drops to zero health or below.
// The mob's Health and the character's health baseline are mutated in place.
// When both attacks are zero or negative the fight ends as a stalemate after
// the round cap.
func (r *Resolver) Fight(ctx context.Context, ch *character.Character, mob *domain.Mob) *Result {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgFightStarted,
		"character", ch.Name(), "health", ch.Health(), "attack", ch.Attack(),
		"mob", mob.Name, "mob_health", mob.Health, "mob_attack", mob.Attack)

	result := resolve(ch, mob, r.maxRounds)
	for _, round := range result.Rounds {
		log.Debug(LogMsgRoundResolved,
			"round", round.Number,
			"dealt", round.DamageDealt,
			"taken", round.DamageTaken,
			"mob_health", round.MobHealth,
			"character_health", round.CharacterHealth)
	}

	if result.Outcome == OutcomeStalemate {
		log.Warn(LogMsgFightStalemate, "mob", mob.Name, "rounds", len(result.Rounds))
	}
	log.Info(LogMsgFightResolved,
		"mob", mob.Name,
		"outcome", result.Outcome,
		"rounds", len(result.Rounds),
		"character_health", ch.Health(),
		"mob_health", mob.Health)

	if r.bus != nil {
		evt := event.NewCombatResolvedEvent(domain.CombatResolvedPayload{
			Character:       ch.Name(),
			MobName:         mob.Name,
			Outcome:         string(result.Outcome),
			Rounds:          len(result.Rounds),
			CharacterHealth: ch.Health(),
			MobHealth:       mob.Health,
		})
		if err := r.bus.Publish(ctx, evt); err != nil {
			log.Warn(LogMsgPublishEventFailed, "error", err)
		}
	}

	return result
}

func resolve(ch *character.Character, mob *domain.Mob, maxRounds int) *Result {
	result := &Result{MobName: mob.Name, Rounds: make([]Round, 0)}
	stalemate := false
	// Attacks are fixed for the whole fight, so this is known up front.
	stuck := ch.Attack() <= 0 && mob.Attack <= 0

	for n := 1; ch.Health() > 0 && mob.Health > 0; n++ {
		if stuck && n > maxRounds {
			stalemate = true
			break
		}

		dealt := ch.Attack()
		mob.Health -= dealt
		round := Round{Number: n, DamageDealt: dealt}

		if mob.Health > 0 {
			ch.TakeDamage(mob.Attack)
			round.DamageTaken = mob.Attack
		}

		round.MobHealth = mob.Health
		round.CharacterHealth = ch.Health()
		result.Rounds = append(result.Rounds, round)
	}

	switch {
	case stalemate:
		result.Outcome = OutcomeStalemate
	case mob.Health <= 0:
		result.Outcome = OutcomeCharacterWon
	default:
		result.Outcome = OutcomeMobWon
	}
	return result
}
