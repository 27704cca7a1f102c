package ui

import (
	"strings"
	"testing"

	"github.com/rivo/tview"

	"othello-n/config"
	"othello-n/engine"
	"othello-n/engine/othello"
	"othello-n/types"
)

func newTestBoard(t *testing.T) (*BoardUI, *tview.TextView, *tview.Flex) {
	t.Helper()
	cfg := config.DefaultConfig
	hint := tview.NewTextView()
	b := NewBoard(&cfg, hint)
	layout := CreateGameLayout(b, hint)

	e, err := othello.NewFromConfig(engine.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	if err := b.ConnectEngine(e); err != nil {
		t.Fatalf("ConnectEngine: %v", err)
	}
	return b, hint, layout
}

func TestBoardUIPlayMove(t *testing.T) {
	b, hint, _ := newTestBoard(t)

	if got := hint.GetText(true); !strings.Contains(got, "Player 1 (Black) to move") {
		t.Errorf("hint = %q", got)
	}

	b.MoveSelection(0, 0)
	if sel := b.SelectedTile(); sel == nil || *sel != (types.Position{Row: 4, Col: 4}) {
		t.Fatalf("first selection = %v, want board center", sel)
	}
	b.MoveSelection(-2, -1)
	sel := b.SelectedTile()
	b.PlayMove(sel.Row, sel.Col)

	if b.BoardState.BlackScore != 4 || b.BoardState.WhiteScore != 1 {
		t.Errorf("score = %d-%d, want 4-1", b.BoardState.BlackScore, b.BoardState.WhiteScore)
	}
	want := "Player 1 played d3, flipped 1. Player 2 (White) to move"
	if got := hint.GetText(true); !strings.Contains(got, want) {
		t.Errorf("hint = %q, want %q", got, want)
	}
}

func TestBoardUIRejections(t *testing.T) {
	b, hint, _ := newTestBoard(t)

	b.PlayMove(0, 0)
	if got := hint.GetText(true); !strings.Contains(got, "Invalid move. Please choose from the available moves.") {
		t.Errorf("hint after illegal move = %q", got)
	}
	b.Pass()
	if got := hint.GetText(true); !strings.Contains(got, "You still have moves available.") {
		t.Errorf("hint after pass = %q", got)
	}
	if b.BoardState.MoveNumber != 0 {
		t.Errorf("MoveNumber = %d after rejections, want 0", b.BoardState.MoveNumber)
	}
}

func TestBoardUISelectionBounds(t *testing.T) {
	b, _, _ := newTestBoard(t)
	b.MoveSelection(0, 0)
	b.MoveSelection(-4, -4)
	b.MoveSelection(-1, 0)
	b.MoveSelection(0, -1)
	if sel := b.SelectedTile(); *sel != (types.Position{Row: 0, Col: 0}) {
		t.Errorf("selection = %v, want a1", sel)
	}
	b.ResetSelection()
	if b.SelectedTile() != nil {
		t.Error("ResetSelection should clear the cursor")
	}
}

func TestGameInfoPanel(t *testing.T) {
	b, _, _ := newTestBoard(t)
	text := b.infoPanel.Box().GetText(true)
	for _, want := range []string{"Game Info", "Board: 8x8", "Player 1", "Player 2", "4 legal moves"} {
		if !strings.Contains(text, want) {
			t.Errorf("panel missing %q:\n%s", want, text)
		}
	}
}

func TestDescribeEvent(t *testing.T) {
	black := types.Player{Name: "Ann", Color: types.Black}
	white := types.Player{Name: "Bob", Color: types.White}
	placed := types.Position{Row: 2, Col: 3}

	tests := []struct {
		ev   types.TurnEvent
		want string
	}{
		{types.TurnEvent{Player: black, Placed: &placed, Flipped: make([]types.Position, 2), Next: white, Status: types.InProgress},
			"Ann played d3, flipped 2. Bob (White) to move"},
		{types.TurnEvent{Player: black, Placed: &placed, Next: white, NextMustSkip: true, Status: types.InProgress},
			"Bob (White) has no valid moves, press p to pass"},
		{types.TurnEvent{Player: black, Placed: &placed, Next: black, AutoSkipped: true, Status: types.InProgress},
			"White had no valid moves and passed. Ann (Black) to move"},
		{types.TurnEvent{Player: white, Skipped: true, Next: black, Status: types.InProgress},
			"Bob passed. Ann (Black) to move"},
		{types.TurnEvent{Player: black, Placed: &placed, Status: types.Won, Winner: &black},
			"No valid moves for both players. Game over!"},
	}
	for _, tt := range tests {
		if got := describeEvent(&tt.ev); got != tt.want {
			t.Errorf("describeEvent() = %q, want %q", got, tt.want)
		}
	}
}
