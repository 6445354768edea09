package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// startStep is the least common multiple of every divisor, so a start number
// leaves all three moves open.
const startStep = 12

// RandomStart picks a number in [lo, hi] divisible by 2, 3 and 4, uniformly
// among the candidates, and returns a fresh game with first to move.
func RandomStart(rng *rand.Rand, lo, hi int, first Player) (GameState, error) {
	if lo > hi {
		return GameState{}, fmt.Errorf("invalid start range [%d, %d]", lo, hi)
	}
	low := (max(lo, 1) + startStep - 1) / startStep * startStep
	high := hi / startStep * startStep
	if low > high || high <= TerminalThreshold {
		return GameState{}, fmt.Errorf("no start number in [%d, %d] is divisible by 2, 3 and 4", lo, hi)
	}
	low = max(low, (TerminalThreshold/startStep+1)*startStep)

	candidates := (high-low)/startStep + 1
	number := low + startStep*rng.Intn(candidates)
	return NewGameState(number, first), nil
}
