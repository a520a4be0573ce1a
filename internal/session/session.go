// Package session drives one game from name entry to quit or defeat.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/osse101/TavernCrawl_Go/internal/action"
	"github.com/osse101/TavernCrawl_Go/internal/character"
	"github.com/osse101/TavernCrawl_Go/internal/domain"
	"github.com/osse101/TavernCrawl_Go/internal/event"
	"github.com/osse101/TavernCrawl_Go/internal/game"
	"github.com/osse101/TavernCrawl_Go/internal/logger"
	"github.com/osse101/TavernCrawl_Go/internal/prompt"
)

// Settings are the starting values for a new character
type Settings struct {
	BaseHealth    int
	BaseAttack    int
	BaseDefense   int
	StartingMoney int
}

// Deps wires a session together
type Deps struct {
	Settings Settings
	Game     *game.Game
	Actions  *action.Deps
	Registry *action.Registry
}

// Report summarizes a finished session
type Report struct {
	SessionID  string            `json:"session_id"`
	Character  string            `json:"character"`
	Difficulty domain.Difficulty `json:"difficulty,omitempty"`
	Stats      domain.StatLine   `json:"stats"`
	Money      int               `json:"money"`
	Items      int               `json:"items"`
	Equipped   int               `json:"equipped"`
	Defeated   bool              `json:"defeated"`
	Turns      int               `json:"turns"`
	Reason     string            `json:"reason"`
}

// Run plays one session. Input exhaustion ends the session cleanly with
// reason input_closed; context cancellation returns the report together
// with the context error. Any other error aborts the session.
func Run(ctx context.Context, deps *Deps) (*Report, error) {
	if deps.Registry == nil {
		deps.Registry = action.DefaultRegistry()
	}

	sessionID := logger.GenerateSessionID()
	ctx = logger.WithSessionID(ctx, sessionID)
	log := logger.FromContext(ctx)
	con := deps.Actions.Console

	report := &Report{SessionID: sessionID}

	con.Header(TitleBanner)
	name, err := con.ReadName(ctx, LabelName)
	if err != nil {
		return finish(ctx, deps, report, nil, err)
	}
	report.Character = name

	s := deps.Settings
	ch := character.New(name, s.BaseHealth, s.BaseAttack, s.BaseDefense, s.StartingMoney)
	con.Success(MsgWelcome, prompt.Title(name))
	log.Info(LogMsgSessionStarted, "character", name)

	if err := chooseDifficulty(ctx, con, deps.Game); err != nil {
		return finish(ctx, deps, report, ch, err)
	}
	if err := deps.Game.GenerateWorld(); err != nil {
		return nil, fmt.Errorf("failed to generate world: %w", err)
	}
	if d, ok := deps.Game.Difficulty(); ok {
		report.Difficulty = d
		con.Info(MsgWorldReady, d, len(deps.Game.MobPool()), len(deps.Game.ItemPool()))
	}

	ch, err = mainLoop(ctx, deps, ch, report)
	return finish(ctx, deps, report, ch, err)
}

func chooseDifficulty(ctx context.Context, con *prompt.Console, g *game.Game) error {
	for {
		choice, err := con.ReadName(ctx, LabelDifficulty)
		if err != nil {
			return err
		}
		err = g.SetDifficulty(choice)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrInvalidDifficulty) {
			return err
		}
		con.Error(MsgInvalidDifficulty, choice)
		logger.FromContext(ctx).Debug(LogMsgDifficultyRejected, "input", choice)
	}
}

func mainLoop(ctx context.Context, deps *Deps, ch *character.Character, report *Report) (*character.Character, error) {
	log := logger.FromContext(ctx)
	con := deps.Actions.Console
	actions := deps.Registry.List()
	options := append(deps.Registry.Names(), OptionQuit)

	for {
		idx, err := con.Choose(ctx, TitleMainMenu, options)
		if err != nil {
			return ch, err
		}
		if idx == len(actions) {
			report.Reason = domain.SessionEndReasonQuit
			return ch, nil
		}

		a := actions[idx]
		log.Debug(LogMsgActionStarted, "action", a.Name, "turn", report.Turns+1)
		ch, err = a.Run(ctx, deps.Actions, ch, deps.Game)
		report.Turns++
		if err != nil {
			return ch, err
		}
		if ch.IsDefeated() {
			report.Reason = domain.SessionEndReasonDefeated
			return ch, nil
		}
	}
}

// finish fills in the report, prints the closing screen and announces the end
func finish(ctx context.Context, deps *Deps, report *Report, ch *character.Character, err error) (*Report, error) {
	log := logger.FromContext(ctx)
	con := deps.Actions.Console

	var retErr error
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		report.Reason = domain.SessionEndReasonInputClosed
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		report.Reason = domain.SessionEndReasonCancelled
		retErr = err
	default:
		return nil, err
	}

	if ch != nil {
		report.Stats = ch.Stats()
		report.Money = ch.Inventory().Money()
		report.Items = ch.Inventory().Len()
		report.Equipped = len(ch.Equipped())
		report.Defeated = ch.IsDefeated()

		con.Header(TitleGameOver)
		if report.Defeated {
			con.Error(MsgDefeated, prompt.Title(ch.Name()))
		}
		con.Line(MsgFinalStats, prompt.Title(ch.Name()), report.Stats.Health, report.Stats.Attack,
			report.Stats.Defense, report.Money, report.Items, report.Turns)
		con.Line(MsgFarewell, prompt.Title(ch.Name()))
	}

	log.Info(LogMsgSessionEnded,
		"character", report.Character,
		"reason", report.Reason,
		"turns", report.Turns,
		"defeated", report.Defeated)

	if bus := deps.Actions.Bus; bus != nil {
		evt := event.NewSessionEndedEvent(domain.SessionEndedPayload{
			SessionID: report.SessionID,
			Character: report.Character,
			Turns:     report.Turns,
			Defeated:  report.Defeated,
			Reason:    report.Reason,
		})
		// cancelled ctx still carries the session id for handlers
		if pubErr := bus.Publish(context.WithoutCancel(ctx), evt); pubErr != nil {
			log.Warn(LogMsgPublishEventFailed, "error", pubErr)
		}
	}

	return report, retErr
}
