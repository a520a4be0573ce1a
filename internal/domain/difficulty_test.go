package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input    string
		expected Difficulty
		wantErr  bool
	}{
		{"easy", DifficultyEasy, false},
		{"middle", DifficultyMiddle, false},
		{"hard", DifficultyHard, false},
		{"EASY", "", true},
		{"Middle", "", true},
		{" hard ", "", true},
		{"extreme", "", true},
		{"medium", "", true},
		{"", "", true},
		{"1", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := ParseDifficulty(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidDifficulty)
				assert.Contains(t, err.Error(), ErrMsgInvalidDifficulty)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d)
		})
	}
}
