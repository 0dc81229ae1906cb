package game

import "strings"

// Difficulty is the skill level a game is pitched at.
type Difficulty string

// Difficulty levels.
const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Difficulties lists the known levels from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{Beginner, Intermediate, Advanced}
}

// IsValid checks if the difficulty is one of the supported values.
func (d Difficulty) IsValid() bool {
	return d == Beginner || d == Intermediate || d == Advanced
}

// ParseDifficulty normalizes s and reports whether it names a known level.
func ParseDifficulty(s string) (Difficulty, bool) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	return d, d.IsValid()
}
