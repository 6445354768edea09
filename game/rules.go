package game

// LegalMoves returns the divisors that evenly divide number, in ascending order.
// An empty result means the mover cannot play.
func LegalMoves(number int) []Move {
	if number <= 0 {
		return nil
	}
	moves := make([]Move, 0, len(Divisors))
	for _, d := range Divisors {
		if number%int(d) == 0 {
			moves = append(moves, d)
		}
	}
	return moves
}

// HasLegalMove reports whether any divisor applies to number.
func HasLegalMove(number int) bool {
	if number <= 0 {
		return false
	}
	for _, d := range Divisors {
		if number%int(d) == 0 {
			return true
		}
	}
	return false
}

// IsLegal reports whether move evenly divides number.
func IsLegal(number int, move Move) bool {
	for _, m := range LegalMoves(number) {
		if m == move {
			return true
		}
	}
	return false
}

// Apply divides the number by move and returns the successor state.
//
// Scoring depends only on the parity of the new number, whoever moved: an
// even result costs the computer a point (never below zero), an odd result
// gives the human a point.
func Apply(state GameState, move Move) (GameState, error) {
	if !IsLegal(state.Number, move) {
		return state, &IllegalMoveError{Number: state.Number, Move: move}
	}

	next := GameState{
		Number:        state.Number / int(move),
		HumanScore:    state.HumanScore,
		ComputerScore: state.ComputerScore,
		Turn:          state.Turn.Opponent(),
	}
	if next.Number%2 == 0 {
		next.ComputerScore = max(0, next.ComputerScore-1)
	} else {
		next.HumanScore++
	}
	return next, nil
}

// IsTerminal reports whether the game is over: the number reached the
// threshold, or nobody can divide it. Divisibility does not depend on the
// mover, so one check covers both players.
func IsTerminal(state GameState) bool {
	return state.Number <= TerminalThreshold || !HasLegalMove(state.Number)
}
