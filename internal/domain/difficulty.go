package domain

import "fmt"

// Difficulty selects which tier of content a game generates
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMiddle Difficulty = "middle"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists every tier in ascending order
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMiddle, DifficultyHard}

// ParseDifficulty accepts exactly "easy", "middle" or "hard"
func ParseDifficulty(name string) (Difficulty, error) {
	d := Difficulty(name)
	switch d {
	case DifficultyEasy, DifficultyMiddle, DifficultyHard:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, name)
	}
}
