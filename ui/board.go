// Package ui specifies custom controls for tview to play Othello in the terminal.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"othello-n/config"
	"othello-n/engine"
	"othello-n/engine/othello"
	"othello-n/types"
)

type BoardUI struct {
	Box        *tview.Box
	BoardState *types.BoardState
	hint       *tview.TextView
	cfg        *config.Config
	selRow     int
	selCol     int
	message    string
	eng        engine.GameEngine
	styles     []tcell.Color
	infoPanel  *GameInfoPanel
}

func (g *BoardUI) SelectedTile() *types.Position {
	if g.selRow == -1 && g.selCol == -1 {
		return nil
	}
	return &types.Position{Row: g.selRow, Col: g.selCol}
}

// MoveSelection moves the cursor by the given number of rows and columns.
// The first call places the cursor on the last move, or the board center.
func (g *BoardUI) MoveSelection(dRow, dCol int) {
	if g.BoardState.Finished() {
		g.ResetSelection()
		return
	}
	if g.SelectedTile() == nil {
		g.selRow = g.BoardState.LastMove.Row
		g.selCol = g.BoardState.LastMove.Col
		if g.SelectedTile() == nil {
			g.selRow = g.BoardState.Size() / 2
			g.selCol = g.BoardState.Size() / 2
		}
		return
	}
	if g.selRow+dRow < 0 || g.selRow+dRow >= g.BoardState.Size() {
		return
	}
	if g.selCol+dCol < 0 || g.selCol+dCol >= g.BoardState.Size() {
		return
	}
	g.selRow += dRow
	g.selCol += dCol
}

func (g *BoardUI) ResetSelection() {
	g.selRow = -1
	g.selCol = -1
}

func NewBoard(c *config.Config, hint *tview.TextView) *BoardUI {
	ui := &BoardUI{
		Box:        tview.NewBox(),
		BoardState: &types.BoardState{},
		hint:       hint,
		selRow:     -1,
		selCol:     -1,
	}
	ui.SetConfig(c)
	ui.Box.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		size := ui.BoardState.Size()
		if size == 0 {
			return x, y, 1, 1
		}
		theme := ui.cfg.Theme
		for row := 0; row < size; row++ {
			for col := 0; col < size; col++ {
				pos := types.Position{Row: row, Col: col}

				bg := ui.styles[0]
				if (row+col)%2 == 1 {
					bg = ui.styles[1]
				}
				if row == ui.selRow && col == ui.selCol && theme.DrawCursorBackground {
					bg = ui.styles[7]
				} else if pos == ui.BoardState.LastMove && theme.DrawLastPlayedBackground {
					bg = ui.styles[8]
				}

				var drawRune rune
				var fg tcell.Color
				switch types.DiskColor(ui.BoardState.Board[row][col]) {
				case types.Black:
					drawRune, fg = theme.Symbols.BlackDisk, ui.styles[2]
				case types.White:
					drawRune, fg = theme.Symbols.WhiteDisk, ui.styles[3]
				default:
					drawRune, fg = theme.Symbols.EmptyCell, ui.styles[4]
					if theme.ShowLegalMoves && ui.BoardState.IsLegal(pos) {
						drawRune, fg = theme.Symbols.LegalMove, ui.styles[5]
					}
					if row == ui.selRow && col == ui.selCol && !theme.DrawCursorBackground {
						drawRune, fg = theme.Symbols.Cursor, ui.styles[6]
					}
				}
				drawCell(screen, tcell.StyleDefault.Background(bg).Foreground(fg), drawRune, row, col, x+3, y)
			}
		}
		drawCoordinates(screen, x, y, ui)
		return x, y, size*2 + 3, size + 1
	})
	return ui
}

// ConnectEngine starts a game on the given engine and shows it.
func (g *BoardUI) ConnectEngine(e engine.GameEngine) error {
	if err := e.StartGame(); err != nil {
		return err
	}
	g.eng = e
	g.message = ""
	g.ResetSelection()
	g.BoardState = e.BoardState()
	g.refreshHint()
	return nil
}

// PlayMove submits a move for the player to move.
func (g *BoardUI) PlayMove(row, col int) {
	if g.eng == nil || g.BoardState.Finished() {
		return
	}
	ev, err := g.eng.SubmitMove(row, col)
	if err != nil {
		g.message = describeRejection(err)
	} else {
		g.message = describeEvent(ev)
	}
	g.sync()
}

// Pass skips the turn of a player without legal moves.
func (g *BoardUI) Pass() {
	if g.eng == nil || g.BoardState.Finished() {
		return
	}
	ev, err := g.eng.SkipTurn()
	if err != nil {
		g.message = describeRejection(err)
	} else {
		g.message = describeEvent(ev)
	}
	g.sync()
}

func (g *BoardUI) sync() {
	g.BoardState = g.eng.BoardState()
	if g.BoardState.Finished() {
		g.ResetSelection()
	}
	g.refreshHint()
}

func (g *BoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),        // 0
		tcell.PaletteColor(c.Theme.Colors.BoardColorAlt),     // 1
		tcell.PaletteColor(c.Theme.Colors.BlackColor),        // 2
		tcell.PaletteColor(c.Theme.Colors.WhiteColor),        // 3
		tcell.PaletteColor(c.Theme.Colors.LineColor),         // 4
		tcell.PaletteColor(c.Theme.Colors.HintColor),         // 5
		tcell.PaletteColor(c.Theme.Colors.CursorColorFG),     // 6
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),     // 7
		tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG), // 8
	}
	g.cfg = c
}

func (g *BoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.SetBoardState(g.BoardState, g.eng)
	}

	var statusLine, controlsLine string
	if g.BoardState.Finished() {
		statusLine = fmt.Sprintf("  Game over: %s", g.BoardState.Outcome)
		controlsLine = "   q · return to menu"
	} else {
		statusLine = "  " + g.message
		if g.message == "" && g.eng != nil {
			statusLine = fmt.Sprintf("  %s to move", g.eng.CurrentPlayer())
		}
		controlsLine = "   hjkl/↑↓←→ move   ⏎ play   p pass   q quit"
	}
	g.hint.SetText(statusLine + "\n" + controlsLine)
}

// IsFinished returns true if the game is over.
func (g *BoardUI) IsFinished() bool {
	return g.BoardState.Finished()
}

func describeEvent(ev *types.TurnEvent) string {
	switch {
	case ev.Status.Terminal():
		return "No valid moves for both players. Game over!"
	case ev.AutoSkipped:
		return fmt.Sprintf("%s had no valid moves and passed. %s to move", ev.Next.Color.Opponent(), ev.Next)
	case ev.NextMustSkip:
		return fmt.Sprintf("%s has no valid moves, press p to pass", ev.Next)
	case ev.Skipped:
		return fmt.Sprintf("%s passed. %s to move", ev.Player.Name, ev.Next)
	default:
		return fmt.Sprintf("%s played %s, flipped %d. %s to move", ev.Player.Name, othello.PosToNotation(*ev.Placed), len(ev.Flipped), ev.Next)
	}
}

func describeRejection(err error) string {
	switch types.ReasonOf(err) {
	case types.ReasonOccupied, types.ReasonNoFlips, types.ReasonOutOfBounds:
		return "Invalid move. Please choose from the available moves."
	case types.ReasonMovesAvailable:
		return "You still have moves available."
	default:
		return err.Error()
	}
}

// drawCell draws a board cell (2 characters wide).
func drawCell(s tcell.Screen, c tcell.Style, r rune, row, col, l, t int) {
	s.SetContent(l+col*2, t+row, r, nil, c)
	s.SetContent(l+col*2+1, t+row, ' ', nil, c)
}

func drawCoordinates(s tcell.Screen, x, y int, ui *BoardUI) {
	size := ui.BoardState.Size()
	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(ui.styles[7])

	for col := 0; col < size; col++ {
		st := style
		if col == ui.selCol {
			st = highlight
		}
		s.SetContent(x+3+col*2, y+size, rune('a'+col), nil, st)
		s.SetContent(x+3+col*2+1, y+size, ' ', nil, st)
	}

	for row := 0; row < size; row++ {
		st := style
		if row == ui.selRow {
			st = highlight
		}
		num := row + 1
		tens := ' '
		if num >= 10 {
			tens = rune('0' + num/10)
		}
		s.SetContent(x, y+row, tens, nil, st)
		s.SetContent(x+1, y+row, rune('0'+num%10), nil, st)
	}
}
