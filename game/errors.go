package game

import (
	"errors"
	"fmt"
)

var ErrIllegalMove = errors.New("illegal move")

// IllegalMoveError is returned by Apply for a divisor that does not evenly
// divide the current number. The caller's state is unchanged.
type IllegalMoveError struct {
	Number int
	Move   Move
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move: %d is not divisible by %d", e.Number, int(e.Move))
}

func (e *IllegalMoveError) Is(target error) bool {
	return target == ErrIllegalMove
}
