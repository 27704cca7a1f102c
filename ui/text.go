package ui

import (
	"fmt"
	"strconv"
	"strings"

	"othello-n/types"
)

// RenderText draws the board as plain text with one-based row and column
// headers. Empty cells are '.', black disks 'B' and white disks 'W'.
func RenderText(state *types.BoardState) string {
	size := state.Size()
	w := len(strconv.Itoa(size))

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", w+1))
	for col := 1; col <= size; col++ {
		if col > 1 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%*d", w, col)
	}
	sb.WriteByte('\n')

	for row := 0; row < size; row++ {
		fmt.Fprintf(&sb, "%*d ", w, row+1)
		for col := 0; col < size; col++ {
			fmt.Fprintf(&sb, "%*c ", w, diskChar(types.DiskColor(state.Board[row][col])))
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	return sb.String()
}

// RenderScores formats the running score line.
func RenderScores(state *types.BoardState) string {
	return fmt.Sprintf("Current Scores - Black: %d, White: %d", state.BlackScore, state.WhiteScore)
}

func diskChar(c types.DiskColor) rune {
	switch c {
	case types.Black:
		return 'B'
	case types.White:
		return 'W'
	default:
		return '.'
	}
}
