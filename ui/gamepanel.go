package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"othello-n/engine"
	"othello-n/types"
)

// GameInfoPanel displays players, scores and the game status alongside the board.
type GameInfoPanel struct {
	box        *tview.TextView
	boardState *types.BoardState
	black      types.Player
	white      types.Player
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetBoardState updates the panel with current board state.
func (p *GameInfoPanel) SetBoardState(state *types.BoardState, eng engine.GameEngine) {
	p.boardState = state
	if eng != nil {
		p.black, p.white = eng.Players()
	}
	p.refresh()
}

// refresh updates the panel text.
func (p *GameInfoPanel) refresh() {
	if p.boardState == nil || p.boardState.Size() == 0 {
		p.box.SetText("")
		return
	}
	s := p.boardState

	text := "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("[white]Board:[-:-:-] %dx%d\n", s.Size(), s.Size())
	text += fmt.Sprintf("[white]Move:[-:-:-]  %d\n", s.MoveNumber)
	if len(s.GameID) >= 8 {
		text += fmt.Sprintf("[dimgray]%s[-]\n", s.GameID[:8])
	}

	text += "\n[white::b]Score[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += p.playerLine(p.black, types.Black, s.BlackScore)
	text += p.playerLine(p.white, types.White, s.WhiteScore)

	if s.Finished() {
		text += "\n[yellow::b]Game Over[-:-:-]\n"
		text += fmt.Sprintf("%s\n", s.Outcome)
	} else {
		text += fmt.Sprintf("\n[dimgray]%d legal moves[-]\n", len(s.LegalMoves))
	}

	p.box.SetText(text)
}

func (p *GameInfoPanel) playerLine(player types.Player, color types.DiskColor, score int) string {
	marker := " "
	if !p.boardState.Finished() && p.boardState.PlayerToMove == color {
		marker = "[yellow]>[-]"
	}
	name := player.Name
	if name == "" {
		name = color.String()
	}
	stone := "[white]●[-]"
	if color == types.White {
		stone = "[white]○[-]"
	}
	return fmt.Sprintf("%s%s %-14s %2d\n", marker, stone, tview.Escape(name), score)
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *BoardUI, hint *tview.TextView) *tview.Flex {
	infoPanel := NewGameInfoPanel()
	board.infoPanel = infoPanel

	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false)

	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(boardRow, 0, 1, true)
	mainFlex.AddItem(hint, 2, 0, false)

	return mainFlex
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form *tview.Flex, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)
	centered.AddItem(form, maxWidth, 0, true)
	centered.AddItem(nil, 0, 1, false)

	return centered
}
