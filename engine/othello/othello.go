// Package othello implements the GameEngine interface with the Othello rules.
package othello

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"othello-n/board"
	"othello-n/engine"
	"othello-n/types"
)

var _ engine.GameEngine = (*Engine)(nil)

// Engine owns the board, the two players and the turn state of one game.
// It is not safe for concurrent use.
type Engine struct {
	id       string
	size     int
	autoPass bool
	log      *zap.Logger

	board      *board.Board
	players    [2]types.Player // black, white
	current    int             // index into players
	status     types.GameStatus
	winner     *types.Player
	moveNumber int
	lastMove   types.Position
}

// New creates an engine for the given players. black must play Black and
// white must play White. A nil logger disables logging.
func New(cfg engine.GameConfig, black, white types.Player, log *zap.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if black.Color != types.Black || white.Color != types.White {
		return nil, &types.InvalidConfigError{
			Field: "players",
			Msg:   fmt.Sprintf("want one black and one white player, got %s and %s", black.Color, white.Color),
		}
	}
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.NewString()
	return &Engine{
		id:       id,
		size:     cfg.BoardSize,
		autoPass: cfg.AutoPass,
		log:      log.With(zap.String("game", id)),
		players:  [2]types.Player{black, white},
		status:   types.NotStarted,
		lastMove: types.Position{Row: -1, Col: -1},
	}, nil
}

// NewFromConfig creates an engine with the players named in cfg.
func NewFromConfig(cfg engine.GameConfig, log *zap.Logger) (*Engine, error) {
	black, white := cfg.Players()
	return New(cfg, black, white, log)
}

// StartGame places the four opening disks and hands the first turn to Black.
func (e *Engine) StartGame() error {
	if e.status != types.NotStarted {
		return &types.InvalidStateError{Op: "StartGame", Status: e.status, Reason: types.ReasonAlreadyStarted}
	}

	b, err := board.New(e.size)
	if err != nil {
		return fmt.Errorf("failed to allocate board: %w", err)
	}

	mid := e.size / 2
	opening := []struct {
		pos   types.Position
		color types.DiskColor
	}{
		{types.Position{Row: mid - 1, Col: mid - 1}, types.White},
		{types.Position{Row: mid - 1, Col: mid}, types.Black},
		{types.Position{Row: mid, Col: mid - 1}, types.Black},
		{types.Position{Row: mid, Col: mid}, types.White},
	}
	for _, d := range opening {
		if err := b.PlaceDisk(d.pos, types.NewDisk(d.color)); err != nil {
			return fmt.Errorf("failed to place opening disk: %w", err)
		}
	}

	e.board = b
	e.current = 0
	e.status = types.InProgress
	e.log.Info("game started",
		zap.Int("size", e.size),
		zap.String("black", e.players[0].Name),
		zap.String("white", e.players[1].Name))
	return nil
}

// ID returns the game's session identifier.
func (e *Engine) ID() string {
	return e.id
}

// CurrentPlayer returns the player to move.
func (e *Engine) CurrentPlayer() types.Player {
	return e.players[e.current]
}

// Players returns the black and white players.
func (e *Engine) Players() (types.Player, types.Player) {
	return e.players[0], e.players[1]
}

// Status returns the game status.
func (e *Engine) Status() types.GameStatus {
	return e.status
}

// LegalMoves returns the current player's legal moves in row-major order.
func (e *Engine) LegalMoves() []types.Position {
	return e.LegalMovesFor(e.players[e.current].Color)
}

// LegalMovesFor returns the legal moves for color in row-major order.
func (e *Engine) LegalMovesFor(color types.DiskColor) []types.Position {
	if e.board == nil {
		return nil
	}
	return legalMoves(e.board, color)
}

// Score returns the number of disks of the given color.
func (e *Engine) Score(color types.DiskColor) int {
	if e.board == nil {
		return 0
	}
	return e.board.Count(color)
}

// Winner returns the winning player once the game is won.
func (e *Engine) Winner() (types.Player, bool) {
	if e.status != types.Won || e.winner == nil {
		return types.Player{}, false
	}
	return *e.winner, true
}

// BoardState returns a deep-copied snapshot of the game.
func (e *Engine) BoardState() *types.BoardState {
	state := &types.BoardState{
		GameID:       e.id,
		MoveNumber:   e.moveNumber,
		PlayerToMove: e.players[e.current].Color,
		Status:       e.status,
		LastMove:     e.lastMove,
		Outcome:      e.outcome(),
	}
	if e.board == nil {
		state.Board = make([][]int, e.size)
		for i := range state.Board {
			state.Board[i] = make([]int, e.size)
		}
		return state
	}
	state.Board = e.board.Grid()
	state.BlackScore = e.board.Count(types.Black)
	state.WhiteScore = e.board.Count(types.White)
	if e.status == types.InProgress {
		state.LegalMoves = e.LegalMoves()
	}
	return state
}

// outcome describes the result of a finished game.
func (e *Engine) outcome() string {
	black, white := e.Score(types.Black), e.Score(types.White)
	switch e.status {
	case types.Won:
		return fmt.Sprintf("%s wins %d-%d", e.winner, max(black, white), min(black, white))
	case types.Drawn:
		return fmt.Sprintf("Draw %d-%d", black, white)
	default:
		return ""
	}
}

func (e *Engine) playerByColor(color types.DiskColor) types.Player {
	if e.players[0].Color == color {
		return e.players[0]
	}
	return e.players[1]
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
