package 围碁

import (
	"fmt"

	"github.com/gorgonia/godash/game"
)

// IllegalMoveError is returned when a move is suicide.
type IllegalMoveError game.Move

func (err IllegalMoveError) Error() string {
	return fmt.Sprintf("Unable to make %v: illegal move", game.Move(err))
}

// OccupiedError is returned when a move targets a point that already holds a stone.
type OccupiedError game.Move

func (err OccupiedError) Error() string {
	return fmt.Sprintf("Unable to make %v: there is already a stone there", game.Move(err))
}

// ValidationError is returned for malformed boards and mismatched arguments.
type ValidationError struct {
	Msg string
}

func (err *ValidationError) Error() string { return err.Msg }

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
