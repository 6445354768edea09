package game

// EvaluateScoreDifference is the zero-sum relative score: computer minus human.
// Scores are only ever changed by moves, so the same formula serves terminal
// and cutoff states.
func EvaluateScoreDifference(s GameState) int {
	return s.ComputerScore - s.HumanScore
}

// Outcome is the result of a finished game.
type Outcome int

const (
	Draw Outcome = iota
	ComputerWins
	HumanWins
)

// OutcomeOf compares the final scores of s.
func OutcomeOf(s GameState) Outcome {
	switch {
	case s.ComputerScore > s.HumanScore:
		return ComputerWins
	case s.HumanScore > s.ComputerScore:
		return HumanWins
	default:
		return Draw
	}
}

func (o Outcome) String() string {
	switch o {
	case ComputerWins:
		return "computer"
	case HumanWins:
		return "human"
	default:
		return "draw"
	}
}

// Message is the end-of-game line shown to the human.
func (o Outcome) Message() string {
	switch o {
	case ComputerWins:
		return "Computer wins!"
	case HumanWins:
		return "You win!"
	default:
		return "It's a draw!"
	}
}
