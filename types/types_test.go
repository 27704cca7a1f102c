package types

import (
	"fmt"
	"testing"
)

func TestDiskColorOpponent(t *testing.T) {
	if Black.Opponent() != White {
		t.Errorf("Black.Opponent() = %v, want White", Black.Opponent())
	}
	if White.Opponent() != Black {
		t.Errorf("White.Opponent() = %v, want Black", White.Opponent())
	}
}

func TestDiskFlipKeepsIdentity(t *testing.T) {
	d := NewDisk(Black)
	d.Position = Position{Row: 2, Col: 3}
	ref := d
	d.Flip()
	if ref.Color != White {
		t.Errorf("flipped disk color = %v, want White", ref.Color)
	}
	if ref.Position != (Position{Row: 2, Col: 3}) {
		t.Errorf("flip moved disk to %v", ref.Position)
	}
}

func TestGameStatusTerminal(t *testing.T) {
	tests := []struct {
		status GameStatus
		want   bool
	}{
		{NotStarted, false},
		{InProgress, false},
		{Won, true},
		{Drawn, true},
	}
	for _, tt := range tests {
		if got := tt.status.Terminal(); got != tt.want {
			t.Errorf("%v.Terminal() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestReasonOf(t *testing.T) {
	tests := []struct {
		err  error
		want RejectReason
	}{
		{nil, ReasonNone},
		{&OutOfBoundsError{Pos: Position{Row: 9, Col: 0}, Size: 8}, ReasonOutOfBounds},
		{&IllegalMoveError{Reason: ReasonOccupied}, ReasonOccupied},
		{&IllegalMoveError{Reason: ReasonNoFlips}, ReasonNoFlips},
		{&InvalidStateError{Op: "SkipTurn", Reason: ReasonMovesAvailable}, ReasonMovesAvailable},
		{fmt.Errorf("wrapped: %w", &InvalidStateError{Reason: ReasonNotInProgress}), ReasonNotInProgress},
		{&InvalidConfigError{Field: "board size", Msg: "odd"}, ReasonInvalidConfig},
		{fmt.Errorf("plain"), ReasonNone},
	}
	for _, tt := range tests {
		if got := ReasonOf(tt.err); got != tt.want {
			t.Errorf("ReasonOf(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestBoardStateIsLegal(t *testing.T) {
	s := &BoardState{LegalMoves: []Position{{Row: 2, Col: 3}, {Row: 5, Col: 4}}}
	if !s.IsLegal(Position{Row: 5, Col: 4}) {
		t.Error("(5,4) should be legal")
	}
	if s.IsLegal(Position{Row: 0, Col: 0}) {
		t.Error("(0,0) should not be legal")
	}
}
