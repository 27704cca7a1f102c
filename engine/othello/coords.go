package othello

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"othello-n/types"
)

// Algebraic coordinate system:
// - Columns: a-z (left to right)
// - Rows: 1-26 (top to bottom)
// - Example: d3 is row 2, col 3
//
// Console coordinate system (what players type):
// - "row col", both one-based, separated by whitespace
// - Example: "3 4" is row 2, col 3

// PosToNotation converts a zero-based position to algebraic notation.
// (0, 0) -> a1, (2, 3) -> d3, (7, 7) -> h8
func PosToNotation(pos types.Position) string {
	return fmt.Sprintf("%c%d", 'a'+rune(pos.Col), pos.Row+1)
}

// NotationToPos converts algebraic notation such as "d3" or "D3" to a
// zero-based position on a board of the given size.
func NotationToPos(s string, size int) (types.Position, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if len(s) < 2 {
		return types.Position{}, fmt.Errorf("invalid square: %q", s)
	}

	col := int(s[0]) - 'a'
	if col < 0 || col >= size {
		return types.Position{}, fmt.Errorf("invalid column in square: %q", s)
	}

	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return types.Position{}, fmt.Errorf("invalid row in square: %q", s)
	}
	if row < 1 || row > size {
		return types.Position{}, fmt.Errorf("square out of bounds: %q", s)
	}

	return types.Position{Row: row - 1, Col: col}, nil
}

var (
	ErrRowColFields = errors.New("please enter two numbers separated by space")
	ErrRowColNumber = errors.New("please enter valid numbers")
)

// ParseRowCol parses console input of the form "row col" with one-based
// numbers. Values outside the board are returned as they are so that the
// engine reports them.
func ParseRowCol(s string) (types.Position, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return types.Position{}, ErrRowColFields
	}
	row, err := strconv.Atoi(parts[0])
	if err != nil {
		return types.Position{}, fmt.Errorf("%w: %q", ErrRowColNumber, parts[0])
	}
	col, err := strconv.Atoi(parts[1])
	if err != nil {
		return types.Position{}, fmt.Errorf("%w: %q", ErrRowColNumber, parts[1])
	}
	return types.Position{Row: row - 1, Col: col - 1}, nil
}

// PosToRowCol formats a position the way ParseRowCol reads it.
func PosToRowCol(pos types.Position) string {
	return fmt.Sprintf("(%d, %d)", pos.Row+1, pos.Col+1)
}
