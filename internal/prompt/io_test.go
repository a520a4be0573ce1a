package prompt

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineInput(t *testing.T) {
	in := NewLineInput(strings.NewReader("  Aria \n2\n\n"))
	ctx := context.Background()

	for _, expected := range []string{"Aria", "2", ""} {
		tok, err := in.ReadToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, expected, tok)
	}

	_, err := in.ReadToken(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestScriptInput(t *testing.T) {
	in := NewScriptInput("a", "b")
	ctx := context.Background()

	assert.Equal(t, 2, in.Remaining())
	tok, err := in.ReadToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", tok)
	assert.Equal(t, 1, in.Remaining())

	_, err = in.ReadToken(ctx)
	require.NoError(t, err)
	_, err = in.ReadToken(ctx)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 0, in.Remaining())
}
