package types

import (
	"errors"
	"fmt"
)

// RejectReason is the machine-readable cause of a rejected engine call.
type RejectReason int

const (
	ReasonNone RejectReason = iota
	ReasonOutOfBounds
	ReasonOccupied
	ReasonNoFlips
	ReasonNotInProgress
	ReasonAlreadyStarted
	ReasonMovesAvailable
	ReasonInvalidConfig
)

func (r RejectReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonOutOfBounds:
		return "position out of bounds"
	case ReasonOccupied:
		return "cell occupied"
	case ReasonNoFlips:
		return "no disks to flip"
	case ReasonNotInProgress:
		return "game not in progress"
	case ReasonAlreadyStarted:
		return "game already started"
	case ReasonMovesAvailable:
		return "moves still available"
	case ReasonInvalidConfig:
		return "invalid configuration"
	default:
		return fmt.Sprintf("RejectReason(%d)", int(r))
	}
}

// OutOfBoundsError is returned for positions outside the grid.
type OutOfBoundsError struct {
	Pos  Position
	Size int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("position %s is out of range (0-%d)", e.Pos, e.Size-1)
}

// IllegalMoveError is returned when a disk cannot be placed at Pos.
type IllegalMoveError struct {
	Pos    Position
	Reason RejectReason
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move at %s: %s", e.Pos, e.Reason)
}

// InvalidStateError is returned when an operation is not permitted in the
// engine's current state.
type InvalidStateError struct {
	Op     string
	Status GameStatus
	Reason RejectReason
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s rejected while game %s: %s", e.Op, e.Status, e.Reason)
}

// InvalidConfigError is returned for unusable game settings.
type InvalidConfigError struct {
	Field string
	Msg   string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// ReasonOf extracts the rejection reason carried by err, or ReasonNone.
func ReasonOf(err error) RejectReason {
	var (
		oob   *OutOfBoundsError
		move  *IllegalMoveError
		state *InvalidStateError
		cfg   *InvalidConfigError
	)
	switch {
	case err == nil:
		return ReasonNone
	case errors.As(err, &oob):
		return ReasonOutOfBounds
	case errors.As(err, &move):
		return move.Reason
	case errors.As(err, &state):
		return state.Reason
	case errors.As(err, &cfg):
		return ReasonInvalidConfig
	default:
		return ReasonNone
	}
}
