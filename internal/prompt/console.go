package prompt

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/TavernCrawl_Go/internal/domain"
)

// Console pairs an Input with an Output and offers menu helpers
type Console struct {
	In  Input
	Out Output
}

// NewConsole creates a Console
func NewConsole(in Input, out Output) *Console {
	return &Console{In: in, Out: out}
}

// Title returns s in title case for display
func Title(s string) string {
	return cases.Title(language.English).String(s)
}

// UI helpers

func (c *Console) Header(title string) {
	c.Out.Printf("\n=== %s ===\n", title)
}

func (c *Console) Info(format string, args ...any) {
	c.Out.Printf(markerInfo+format+"\n", args...)
}

func (c *Console) Success(format string, args ...any) {
	c.Out.Printf(markerSuccess+format+"\n", args...)
}

func (c *Console) Warning(format string, args ...any) {
	c.Out.Printf(markerWarning+format+"\n", args...)
}

func (c *Console) Error(format string, args ...any) {
	c.Out.Printf(markerError+format+"\n", args...)
}

// Line writes a plain line
func (c *Console) Line(format string, args ...any) {
	c.Out.Printf(format+"\n", args...)
}

// Choose shows a numbered menu and returns the 0-based index of the selection.
// A selection is either the option number or its label (case-insensitive).
// Anything else redisplays the menu. Input errors are returned as-is.
func (c *Console) Choose(ctx context.Context, title string, options []string) (int, error) {
	return c.ChooseKeyed(ctx, title, options, nil)
}

// ChooseKeyed is Choose with a short key per option, such as a drink name,
// accepted alongside the number and the full label. keys may be shorter
// than options; missing keys are ignored.
func (c *Console) ChooseKeyed(ctx context.Context, title string, options, keys []string) (int, error) {
	for {
		c.Header(title)
		for i, opt := range options {
			c.Out.Printf("  %d) %s\n", i+1, opt)
		}
		c.Out.Printf(promptCursor)

		tok, err := c.In.ReadToken(ctx)
		if err != nil {
			return 0, err
		}

		idx, err := parseChoice(tok, options, keys)
		if err == nil {
			return idx, nil
		}
		c.Warning(MsgInvalidChoice)
	}
}

// ReadInt reads one integer. A non-numeric token yields ErrInvalidMenuChoice.
func (c *Console) ReadInt(ctx context.Context, label string) (int, error) {
	c.Out.Printf("%s: ", label)
	tok, err := c.In.ReadToken(ctx)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		c.Warning(MsgNotANumber, tok)
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidMenuChoice, tok)
	}
	return n, nil
}

// ReadName reads until a non-empty token arrives
func (c *Console) ReadName(ctx context.Context, label string) (string, error) {
	for {
		c.Out.Printf("%s: ", label)
		tok, err := c.In.ReadToken(ctx)
		if err != nil {
			return "", err
		}
		if tok != "" {
			return tok, nil
		}
		c.Warning(MsgEmptyName)
	}
}

func parseChoice(tok string, options, keys []string) (int, error) {
	if n, err := strconv.Atoi(tok); err == nil {
		if n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		return 0, fmt.Errorf("%w: %d out of range", domain.ErrInvalidMenuChoice, n)
	}
	if tok == "" {
		return 0, fmt.Errorf("%w: empty choice", domain.ErrInvalidMenuChoice)
	}
	for i, opt := range options {
		if strings.EqualFold(tok, opt) {
			return i, nil
		}
		if i < len(keys) && keys[i] != "" && strings.EqualFold(tok, keys[i]) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", domain.ErrInvalidMenuChoice, tok)
}
