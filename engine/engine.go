// Package engine defines the interface for Othello game engines.
package engine

import (
	"strings"

	"othello-n/board"
	"othello-n/types"
)

// GameEngine is the rules engine consumed by the presentation layer.
// All coordinates are zero-based.
type GameEngine interface {
	// StartGame sets up the opening position. It fails if the game has
	// already been started.
	StartGame() error

	// CurrentPlayer returns the player to move.
	CurrentPlayer() types.Player

	// Players returns the black and white players.
	Players() (types.Player, types.Player)

	// LegalMoves returns the current player's legal moves in row-major order.
	LegalMoves() []types.Position

	// SubmitMove places a disk for the current player.
	// A rejected move leaves the game untouched.
	SubmitMove(row, col int) (*types.TurnEvent, error)

	// SkipTurn passes the current player's turn. Only allowed when the
	// current player has no legal move.
	SkipTurn() (*types.TurnEvent, error)

	// Score returns the number of disks of the given color on the board.
	Score(color types.DiskColor) int

	// Status returns the game status.
	Status() types.GameStatus

	// Winner returns the winning player. The bool is false unless the game
	// has been won.
	Winner() (types.Player, bool)

	// BoardState returns a snapshot of the game for rendering.
	BoardState() *types.BoardState

	// ID returns the game's session identifier.
	ID() string
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	BoardSize int    // even, 4-26
	BlackName string // moves first
	WhiteName string
	AutoPass  bool // engine passes for a player left without moves
}

const (
	DefaultBlackName = "Player 1"
	DefaultWhiteName = "Player 2"
)

// DefaultConfig returns the standard 8x8 configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		BoardSize: board.DefaultSize,
		BlackName: DefaultBlackName,
		WhiteName: DefaultWhiteName,
	}
}

// Validate checks the configuration.
func (c GameConfig) Validate() error {
	return board.ValidateSize(c.BoardSize)
}

// Players returns the black and white players. Blank names fall back to the
// defaults.
func (c GameConfig) Players() (types.Player, types.Player) {
	black := strings.TrimSpace(c.BlackName)
	if black == "" {
		black = DefaultBlackName
	}
	white := strings.TrimSpace(c.WhiteName)
	if white == "" {
		white = DefaultWhiteName
	}
	return types.Player{Name: black, Color: types.Black}, types.Player{Name: white, Color: types.White}
}
