// Package prompt is the terminal front end of the game: a token source,
// an output sink and the menu helpers built on top of them.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Input yields one trimmed line of player input at a time.
// Implementations return io.EOF once no more input will arrive.
type Input interface {
	ReadToken(ctx context.Context) (string, error)
}

// Output receives formatted game text
type Output interface {
	Printf(format string, args ...any)
}

// LineInput reads newline-delimited tokens from a reader
type LineInput struct {
	scanner *bufio.Scanner
}

// NewLineInput wraps r, typically os.Stdin
func NewLineInput(r io.Reader) *LineInput {
	return &LineInput{scanner: bufio.NewScanner(r)}
}

// ReadToken returns the next line with surrounding whitespace removed
func (l *LineInput) ReadToken(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if l.scanner.Scan() {
		return strings.TrimSpace(l.scanner.Text()), nil
	}
	if err := l.scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return "", io.EOF
}

// ScriptInput replays a fixed list of tokens. Used by tests and demo runs.
type ScriptInput struct {
	mu     sync.Mutex
	tokens []string
	pos    int
}

// NewScriptInput creates a ScriptInput over tokens
func NewScriptInput(tokens ...string) *ScriptInput {
	return &ScriptInput{tokens: tokens}
}

// ReadToken returns the next scripted token, or io.EOF when exhausted
func (s *ScriptInput) ReadToken(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pos >= len(s.tokens) {
		return "", io.EOF
	}
	tok := s.tokens[s.pos]
	s.pos++
	return strings.TrimSpace(tok), nil
}

// Remaining reports how many tokens have not been consumed
func (s *ScriptInput) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens) - s.pos
}

// WriterOutput writes game text to an io.Writer
type WriterOutput struct {
	w io.Writer
}

// NewWriterOutput wraps w, typically os.Stdout
func NewWriterOutput(w io.Writer) *WriterOutput {
	return &WriterOutput{w: w}
}

// Printf formats and writes. Write errors are dropped; there is nowhere to report them.
func (o *WriterOutput) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.w, format, args...)
}
