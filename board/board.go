// Package board implements the Othello grid: cells, disks and indexed access.
// It holds no turn logic.
package board

import (
	"fmt"

	"othello-n/types"
)

const (
	MinSize     = 4
	MaxSize     = 26 // one column letter per file
	DefaultSize = 8
)

// Cell is a single square of the board. Its position is fixed; only the disk
// occupancy changes.
type Cell struct {
	pos  types.Position
	Disk *types.Disk
}

// Position returns the cell's coordinate.
func (c *Cell) Position() types.Position {
	return c.pos
}

// Empty returns true if no disk occupies the cell.
func (c *Cell) Empty() bool {
	return c.Disk == nil
}

// Holds returns true if the cell holds a disk of the given color.
func (c *Cell) Holds(color types.DiskColor) bool {
	return c.Disk != nil && c.Disk.Color == color
}

// Board is a size x size grid of cells.
type Board struct {
	size  int
	cells [][]*Cell
}

// ValidateSize checks that size is an even edge length the engine supports.
func ValidateSize(size int) error {
	if size < MinSize || size > MaxSize {
		return &types.InvalidConfigError{
			Field: "board size",
			Msg:   fmt.Sprintf("%d is outside %d-%d", size, MinSize, MaxSize),
		}
	}
	if size%2 != 0 {
		return &types.InvalidConfigError{
			Field: "board size",
			Msg:   fmt.Sprintf("%d is odd, the opening needs a center square", size),
		}
	}
	return nil
}

// New allocates an empty board.
func New(size int) (*Board, error) {
	if err := ValidateSize(size); err != nil {
		return nil, err
	}
	cells := make([][]*Cell, size)
	for row := range cells {
		cells[row] = make([]*Cell, size)
		for col := range cells[row] {
			cells[row][col] = &Cell{pos: types.Position{Row: row, Col: col}}
		}
	}
	return &Board{size: size, cells: cells}, nil
}

// Size returns the edge length of the board.
func (b *Board) Size() int {
	return b.size
}

// Contains reports whether pos lies on the board.
func (b *Board) Contains(pos types.Position) bool {
	return pos.Row >= 0 && pos.Row < b.size && pos.Col >= 0 && pos.Col < b.size
}

// CellAt returns the cell at pos.
func (b *Board) CellAt(pos types.Position) (*Cell, error) {
	if !b.Contains(pos) {
		return nil, &types.OutOfBoundsError{Pos: pos, Size: b.size}
	}
	return b.cells[pos.Row][pos.Col], nil
}

// PlaceDisk puts disk on the cell at pos, replacing whatever was there.
// Callers check emptiness first.
func (b *Board) PlaceDisk(pos types.Position, disk *types.Disk) error {
	cell, err := b.CellAt(pos)
	if err != nil {
		return err
	}
	disk.Position = pos
	cell.Disk = disk
	return nil
}

// Count returns the number of disks of the given color.
func (b *Board) Count(color types.DiskColor) int {
	n := 0
	b.each(func(c *Cell) {
		if c.Holds(color) {
			n++
		}
	})
	return n
}

// EmptyCount returns the number of unoccupied cells.
func (b *Board) EmptyCount() int {
	n := 0
	b.each(func(c *Cell) {
		if c.Empty() {
			n++
		}
	})
	return n
}

// Grid returns a copy of the occupancy as Grid[row][col] with
// 0=empty, 1=black, 2=white.
func (b *Board) Grid() [][]int {
	grid := make([][]int, b.size)
	for row := range grid {
		grid[row] = make([]int, b.size)
		for col, c := range b.cells[row] {
			if c.Disk != nil {
				grid[row][col] = int(c.Disk.Color)
			}
		}
	}
	return grid
}

// each visits cells in row-major order.
func (b *Board) each(fn func(*Cell)) {
	for _, row := range b.cells {
		for _, c := range row {
			fn(c)
		}
	}
}
