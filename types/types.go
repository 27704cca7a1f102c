// Package types contains shared data structures for othello-n.
package types

import "fmt"

// DiskColor is the color of a disk. The values match the BoardState grid
// encoding, where 0 marks an empty cell.
type DiskColor int

const (
	Black DiskColor = 1
	White DiskColor = 2
)

// Opponent returns the other color.
func (c DiskColor) Opponent() DiskColor {
	if c == Black {
		return White
	}
	return Black
}

// Valid reports whether c is Black or White.
func (c DiskColor) Valid() bool {
	return c == Black || c == White
}

func (c DiskColor) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return fmt.Sprintf("DiskColor(%d)", int(c))
	}
}

// Position is a zero-based (row, col) coordinate on the board.
type Position struct {
	Row int
	Col int
}

// Add returns the position offset by d.
func (p Position) Add(d Position) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Disk is a single playing piece. It is owned by the cell it sits in and is
// flipped in place.
type Disk struct {
	Color    DiskColor
	Position Position
}

// NewDisk creates an unplaced disk of the given color.
func NewDisk(color DiskColor) *Disk {
	return &Disk{Color: color}
}

// Flip turns the disk over to the opposite color.
func (d *Disk) Flip() {
	d.Color = d.Color.Opponent()
}

// Player is one of the two participants of a game.
type Player struct {
	Name  string
	Color DiskColor
}

func (p Player) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Color)
}

// GameStatus is the engine's top-level state.
type GameStatus int

const (
	NotStarted GameStatus = iota
	InProgress
	Won
	Drawn
)

// Terminal returns true once the game has been decided.
func (s GameStatus) Terminal() bool {
	return s == Won || s == Drawn
}

func (s GameStatus) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Drawn:
		return "drawn"
	default:
		return fmt.Sprintf("GameStatus(%d)", int(s))
	}
}

// BoardState is a snapshot of a game for renderers.
// Board is indexed as Board[row][col] where 0=empty, 1=black, 2=white.
type BoardState struct {
	GameID       string
	MoveNumber   int
	PlayerToMove DiskColor
	Status       GameStatus
	Board        [][]int
	LegalMoves   []Position
	BlackScore   int
	WhiteScore   int
	Outcome      string
	LastMove     Position // {-1, -1} when no disk has been placed yet
}

// Finished returns true if the game is over.
func (b *BoardState) Finished() bool {
	return b.Status.Terminal()
}

// Size returns the board edge length.
func (b *BoardState) Size() int {
	return len(b.Board)
}

// IsLegal reports whether pos is among the snapshot's legal moves.
func (b *BoardState) IsLegal(pos Position) bool {
	for _, m := range b.LegalMoves {
		if m == pos {
			return true
		}
	}
	return false
}

// TurnEvent describes the effect of an accepted move or skip. The
// presentation layer reads it after each engine call instead of registering
// callbacks.
type TurnEvent struct {
	Player  Player
	Placed  *Position // nil when the turn was skipped
	Flipped []Position
	Skipped bool

	// Next is the player to move after the event. NextMustSkip is set when
	// that player has no legal move and has to call SkipTurn.
	Next         Player
	NextMustSkip bool

	// AutoSkipped is set when the engine passed on behalf of a player with
	// no legal moves.
	AutoSkipped bool

	Status GameStatus
	Winner *Player
}
