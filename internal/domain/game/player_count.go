package game

import "fmt"

// PlayerCount is the supported cast size of a game.
type PlayerCount struct {
	Min     int
	Max     int
	Optimal int
}

// Validate checks 0 < Min <= Optimal <= Max.
func (p PlayerCount) Validate() error {
	if p.Min <= 0 {
		return fmt.Errorf("player count min must be positive, got %d", p.Min)
	}
	if p.Min > p.Max {
		return fmt.Errorf("player count min %d exceeds max %d", p.Min, p.Max)
	}
	if p.Optimal < p.Min || p.Optimal > p.Max {
		return fmt.Errorf("player count optimal %d outside [%d, %d]", p.Optimal, p.Min, p.Max)
	}
	return nil
}

// String renders the range for display, e.g. "4-10 (best 6)".
func (p PlayerCount) String() string {
	if p.Min == p.Max {
		return fmt.Sprintf("%d", p.Min)
	}
	return fmt.Sprintf("%d-%d (best %d)", p.Min, p.Max, p.Optimal)
}
