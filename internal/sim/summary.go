package sim

import "github.com/udisondev/battlesim/internal/battle"

// Summary aggregates the verdicts of a batch.
type Summary struct {
	Battles    int
	PlayerWins int
	EnemyWins  int
	Draws      int
	AvgTurns   float64
}

// Summarize folds outcomes into a Summary.
func Summarize(outcomes []Outcome) Summary {
	var s Summary
	turns := 0
	for _, o := range outcomes {
		s.Battles++
		turns += o.Turns
		switch o.Verdict {
		case battle.PlayerWins:
			s.PlayerWins++
		case battle.EnemyWins:
			s.EnemyWins++
		case battle.Draw:
			s.Draws++
		}
	}
	if s.Battles > 0 {
		s.AvgTurns = float64(turns) / float64(s.Battles)
	}
	return s
}

// PlayerWinRate returns the share of battles the player side won.
func (s Summary) PlayerWinRate() float64 {
	if s.Battles == 0 {
		return 0
	}
	return float64(s.PlayerWins) / float64(s.Battles)
}
