package search

import (
	"fmt"
	"strings"

	"github.com/lgbarn/gochess/internal/errors"
)

// Difficulty selects how hard the computer opponent plays.
type Difficulty int

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
)

var difficultyNames = map[Difficulty]string{
	Easy:   "easy",
	Medium: "medium",
	Hard:   "hard",
}

// String returns the lower-case name of the difficulty.
func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// Depth returns the search depth in plies. Easy skips search entirely but
// still reports depth 1.
func (d Difficulty) Depth() int {
	switch d {
	case Medium:
		return 2
	case Hard:
		return 3
	default:
		return 1
	}
}

// Next cycles easy, medium, hard and back to easy.
func (d Difficulty) Next() Difficulty {
	if d >= Hard || d < Easy {
		return Easy
	}
	return d + 1
}

// Valid reports whether d is one of the defined difficulties.
func (d Difficulty) Valid() bool {
	_, ok := difficultyNames[d]
	return ok
}

// ParseDifficulty parses "easy", "medium" or "hard" in any case.
func ParseDifficulty(name string) (Difficulty, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for d, n := range difficultyNames {
		if n == lower {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q: %w", name, errors.ErrInvalidConfig)
}
