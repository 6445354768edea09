package engine

import (
	"errors"
	"fmt"

	"divgame/experiments/metrics"
	"divgame/game"
)

var (
	ErrGameOver  = errors.New("game is over")
	ErrOutOfTurn = errors.New("move out of turn")
)

// Entry is one applied move in the session's move log.
type Entry struct {
	Step    int
	Actor   game.Player
	Move    game.Move
	State   game.GameState // After the move
	Metrics metrics.SearchMetric
}

func (e Entry) String() string {
	actor := "Player"
	if e.Actor == game.Computer {
		actor = "Computer"
	}
	return fmt.Sprintf("%s divided by %d, result: %d | Human: %d, Computer: %d",
		actor, int(e.Move), e.State.Number, e.State.HumanScore, e.State.ComputerScore)
}

// Turn reports what happened on one turn. Entry is nil when the mover passed
// or the game ended without a move.
type Turn struct {
	Entry   *Entry
	Skipped bool
	Over    bool
}
