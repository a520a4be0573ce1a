// Package action implements the main-menu actions. Every action takes the
// character and game, mutates them in place and hands the character back.
package action

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/TavernCrawl_Go/internal/character"
	"github.com/osse101/TavernCrawl_Go/internal/combat"
	"github.com/osse101/TavernCrawl_Go/internal/domain"
	"github.com/osse101/TavernCrawl_Go/internal/event"
	"github.com/osse101/TavernCrawl_Go/internal/game"
	"github.com/osse101/TavernCrawl_Go/internal/logger"
	"github.com/osse101/TavernCrawl_Go/internal/prompt"
)

// Deps is what actions need beyond the character and game
type Deps struct {
	Console    *prompt.Console
	Bus        event.Bus
	Resolver   *combat.Resolver
	FleeChance float64
}

// Func is the signature shared by all actions. Errors are reserved for input
// failures; game outcomes such as defeat are reflected in the character.
type Func func(ctx context.Context, deps *Deps, ch *character.Character, g *game.Game) (*character.Character, error)

// Action is a named menu entry
type Action struct {
	Name string
	Run  Func
}

// Registry keeps actions in menu order
type Registry struct {
	actions []Action
}

// NewRegistry creates a registry holding actions in the given order
func NewRegistry(actions ...Action) *Registry {
	r := &Registry{}
	for _, a := range actions {
		r.Register(a)
	}
	return r
}

// DefaultRegistry returns the standard main menu: Tavern, Dungeon, Check Inventory
func DefaultRegistry() *Registry {
	return NewRegistry(
		Action{Name: NameTavern, Run: Tavern},
		Action{Name: NameDungeon, Run: Dungeon},
		Action{Name: NameInventory, Run: CheckInventory},
	)
}

// Register appends an action
func (r *Registry) Register(a Action) {
	r.actions = append(r.actions, a)
}

// List returns the actions in menu order
func (r *Registry) List() []Action {
	out := make([]Action, len(r.actions))
	copy(out, r.actions)
	return out
}

// Names returns the menu labels in order
func (r *Registry) Names() []string {
	names := make([]string, len(r.actions))
	for i, a := range r.actions {
		names[i] = a.Name
	}
	return names
}

// Len returns the number of registered actions
func (r *Registry) Len() int {
	return len(r.actions)
}

func (d *Deps) publish(ctx context.Context, evt event.Event) {
	if d.Bus == nil {
		return
	}
	if err := d.Bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishEventFailed, "type", evt.Type, "error", err)
	}
}

func (d *Deps) resolver() *combat.Resolver {
	if d.Resolver == nil {
		d.Resolver = combat.NewResolver(d.Bus, combat.DefaultMaxRounds)
	}
	return d.Resolver
}

// describeStats renders the non-zero parts of a stat line, e.g. "+5 health, +2 attack"
func describeStats(s domain.StatLine) string {
	parts := make([]string, 0, 3)
	if s.Health != 0 {
		parts = append(parts, fmt.Sprintf("%+d health", s.Health))
	}
	if s.Attack != 0 {
		parts = append(parts, fmt.Sprintf("%+d attack", s.Attack))
	}
	if s.Defense != 0 {
		parts = append(parts, fmt.Sprintf("%+d defense", s.Defense))
	}
	if len(parts) == 0 {
		return MsgNoStats
	}
	return strings.Join(parts, ", ")
}
