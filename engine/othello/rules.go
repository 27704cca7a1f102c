package othello

import (
	"othello-n/board"
	"othello-n/types"
)

// directions are the eight king-move unit vectors.
var directions = [8]types.Position{
	{Row: -1, Col: -1}, {Row: -1, Col: 0}, {Row: -1, Col: 1},
	{Row: 0, Col: -1}, {Row: 0, Col: 1},
	{Row: 1, Col: -1}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
}

// line is a direction from a candidate cell along which the mover
// sandwiches opponent disks, with the disks that would be flipped.
type line struct {
	dir   types.Position
	flips []types.Position
}

// walk returns every qualifying line for a disk of color placed at pos.
// Legality checks and move application both go through here.
// An occupied or off-board pos has no lines.
func walk(b *board.Board, pos types.Position, color types.DiskColor) []line {
	start, err := b.CellAt(pos)
	if err != nil || !start.Empty() {
		return nil
	}

	opponent := color.Opponent()
	var lines []line
	for _, dir := range directions {
		var flips []types.Position
		closed := false
		for p := pos.Add(dir); ; p = p.Add(dir) {
			c, err := b.CellAt(p)
			if err != nil || c.Empty() {
				break
			}
			if c.Holds(opponent) {
				flips = append(flips, p)
				continue
			}
			closed = true
			break
		}
		if closed && len(flips) > 0 {
			lines = append(lines, line{dir: dir, flips: flips})
		}
	}
	return lines
}

// isLegal reports whether color may place a disk at pos.
func isLegal(b *board.Board, pos types.Position, color types.DiskColor) bool {
	return len(walk(b, pos, color)) > 0
}

// legalMoves scans the board in row-major order.
func legalMoves(b *board.Board, color types.DiskColor) []types.Position {
	var moves []types.Position
	for row := 0; row < b.Size(); row++ {
		for col := 0; col < b.Size(); col++ {
			pos := types.Position{Row: row, Col: col}
			if isLegal(b, pos, color) {
				moves = append(moves, pos)
			}
		}
	}
	return moves
}

// hasMoves returns true if color has at least one legal move.
func hasMoves(b *board.Board, color types.DiskColor) bool {
	for row := 0; row < b.Size(); row++ {
		for col := 0; col < b.Size(); col++ {
			if isLegal(b, types.Position{Row: row, Col: col}, color) {
				return true
			}
		}
	}
	return false
}
