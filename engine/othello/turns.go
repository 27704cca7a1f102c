package othello

import (
	"fmt"

	"go.uber.org/zap"

	"othello-n/types"
)

// SubmitMove places a disk for the current player at (row, col), flips the
// sandwiched disks and passes the turn. A rejected move changes nothing.
func (e *Engine) SubmitMove(row, col int) (*types.TurnEvent, error) {
	pos := types.Position{Row: row, Col: col}

	if e.status != types.InProgress {
		return nil, e.reject(&types.InvalidStateError{Op: "SubmitMove", Status: e.status, Reason: types.ReasonNotInProgress})
	}

	cell, err := e.board.CellAt(pos)
	if err != nil {
		return nil, e.reject(err)
	}
	if !cell.Empty() {
		return nil, e.reject(&types.IllegalMoveError{Pos: pos, Reason: types.ReasonOccupied})
	}

	mover := e.players[e.current]
	lines := walk(e.board, pos, mover.Color)
	if len(lines) == 0 {
		return nil, e.reject(&types.IllegalMoveError{Pos: pos, Reason: types.ReasonNoFlips})
	}

	if err := e.board.PlaceDisk(pos, types.NewDisk(mover.Color)); err != nil {
		return nil, fmt.Errorf("failed to place disk: %w", err)
	}

	var flipped []types.Position
	for _, l := range lines {
		for _, p := range l.flips {
			c, err := e.board.CellAt(p)
			if err != nil {
				return nil, fmt.Errorf("failed to flip disk: %w", err)
			}
			c.Disk.Flip()
			flipped = append(flipped, p)
		}
	}

	e.moveNumber++
	e.lastMove = pos
	e.log.Debug("move accepted",
		zap.Stringer("player", mover),
		zap.String("pos", PosToNotation(pos)),
		zap.Int("flipped", len(flipped)))

	placed := pos
	ev := &types.TurnEvent{Player: mover, Placed: &placed, Flipped: flipped}
	e.advance(ev)
	return ev, nil
}

// SkipTurn passes the turn of a current player who has no legal move.
func (e *Engine) SkipTurn() (*types.TurnEvent, error) {
	if e.status != types.InProgress {
		return nil, e.reject(&types.InvalidStateError{Op: "SkipTurn", Status: e.status, Reason: types.ReasonNotInProgress})
	}

	mover := e.players[e.current]
	if hasMoves(e.board, mover.Color) {
		return nil, e.reject(&types.InvalidStateError{Op: "SkipTurn", Status: e.status, Reason: types.ReasonMovesAvailable})
	}

	e.moveNumber++
	e.log.Debug("turn skipped", zap.Stringer("player", mover))

	ev := &types.TurnEvent{Player: mover, Skipped: true}
	e.advance(ev)
	return ev, nil
}

// advance hands the turn to the other player and ends the game when neither
// player can move.
func (e *Engine) advance(ev *types.TurnEvent) {
	e.current = 1 - e.current
	for {
		next := e.players[e.current]
		if hasMoves(e.board, next.Color) {
			break
		}
		if !hasMoves(e.board, next.Color.Opponent()) {
			e.finishGame()
			break
		}
		if !e.autoPass {
			ev.NextMustSkip = true
			break
		}
		e.log.Debug("turn skipped automatically", zap.Stringer("player", next))
		ev.AutoSkipped = true
		e.moveNumber++
		e.current = 1 - e.current
	}

	ev.Next = e.players[e.current]
	ev.Status = e.status
	if e.winner != nil {
		w := *e.winner
		ev.Winner = &w
	}
}

// finishGame decides the result from the final disk counts.
func (e *Engine) finishGame() {
	black, white := e.Score(types.Black), e.Score(types.White)
	switch {
	case black > white:
		w := e.playerByColor(types.Black)
		e.winner = &w
		e.status = types.Won
	case white > black:
		w := e.playerByColor(types.White)
		e.winner = &w
		e.status = types.Won
	default:
		e.status = types.Drawn
	}
	e.log.Info("game finished",
		zap.Int("black", black),
		zap.Int("white", white),
		zap.String("outcome", e.outcome()))
}

// reject logs a refused operation and returns err unchanged.
func (e *Engine) reject(err error) error {
	e.log.Debug("rejected", zap.Error(err), zap.Stringer("reason", types.ReasonOf(err)))
	return err
}
