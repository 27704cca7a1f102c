package ui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"othello-n/engine"
	"othello-n/engine/othello"
	"othello-n/types"
)

func newConsoleEngine(t *testing.T, cfg engine.GameConfig) *othello.Engine {
	t.Helper()
	e, err := othello.NewFromConfig(cfg, nil)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	return e
}

func TestPromptPlayers(t *testing.T) {
	tests := []struct {
		input        string
		black, white string
	}{
		{"Ann\nBob\n", "Ann", "Bob"},
		{"\n  \n", "Player 1", "Player 2"},
		{"  Cy  \n\n", "Cy", "Player 2"},
	}
	for _, tt := range tests {
		var out strings.Builder
		c := NewConsole(strings.NewReader(tt.input), &out)
		cfg, err := c.PromptPlayers(engine.DefaultConfig())
		if err != nil {
			t.Errorf("PromptPlayers(%q): %v", tt.input, err)
			continue
		}
		black, white := cfg.Players()
		if black.Name != tt.black || white.Name != tt.white {
			t.Errorf("PromptPlayers(%q) = %q, %q, want %q, %q", tt.input, black.Name, white.Name, tt.black, tt.white)
		}
	}

	c := NewConsole(strings.NewReader("Ann\n"), &strings.Builder{})
	if _, err := c.PromptPlayers(engine.DefaultConfig()); !errors.Is(err, ErrInputClosed) {
		t.Errorf("PromptPlayers with short input = %v, want ErrInputClosed", err)
	}
}

func TestConsoleInputErrors(t *testing.T) {
	input := strings.Join([]string{
		"",      // blank
		"3",     // one number
		"a b",   // not numbers
		"1 1",   // empty but flips nothing
		"4 4",   // occupied
		"9 9",   // off the board
		"3 4",   // accepted
	}, "\n") + "\n"

	var out strings.Builder
	c := NewConsole(strings.NewReader(input), &out)
	err := c.Play(newConsoleEngine(t, engine.DefaultConfig()))
	if !errors.Is(err, ErrInputClosed) {
		t.Fatalf("Play() = %v, want ErrInputClosed", err)
	}

	got := out.String()
	for _, want := range []string{
		"Starting Othello Game!",
		"Current Player: Player 1 (Black)",
		"Current Scores - Black: 2, White: 2",
		"Available moves: \n(3, 4)\n(4, 3)\n(5, 6)\n(6, 5)\n",
		"Invalid input. Please try again.",
		"Please enter two numbers separated by space.",
		"Please enter valid numbers.",
		"Player 1 places Disk at (3, 4)",
		"Flipped Disk at (4, 4) to Black",
		"Current Player: Player 2 (White)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if n := strings.Count(got, "Invalid move. Please choose from the available moves."); n != 3 {
		t.Errorf("invalid move message printed %d times, want 3", n)
	}
}

// scriptGame plays a game taking the first legal move each turn and returns
// the console input that reproduces it along with the finished engine.
func scriptGame(t *testing.T, cfg engine.GameConfig) (string, *othello.Engine) {
	t.Helper()
	e := newConsoleEngine(t, cfg)
	if err := e.StartGame(); err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	var sb strings.Builder
	for i := 0; !e.Status().Terminal(); i++ {
		if i > 4*cfg.BoardSize*cfg.BoardSize {
			t.Fatal("game did not finish")
		}
		moves := e.LegalMoves()
		if len(moves) == 0 {
			if _, err := e.SkipTurn(); err != nil {
				t.Fatalf("SkipTurn: %v", err)
			}
			continue
		}
		if _, err := e.SubmitMove(moves[0].Row, moves[0].Col); err != nil {
			t.Fatalf("SubmitMove(%v): %v", moves[0], err)
		}
		fmt.Fprintf(&sb, "%d %d\n", moves[0].Row+1, moves[0].Col+1)
	}
	return sb.String(), e
}

func TestConsoleFullGame(t *testing.T) {
	for _, size := range []int{4, 6, 8} {
		for _, autoPass := range []bool{false, true} {
			cfg := engine.DefaultConfig()
			cfg.BoardSize = size
			cfg.AutoPass = autoPass
			input, scripted := scriptGame(t, cfg)

			var out strings.Builder
			c := NewConsole(strings.NewReader(input), &out)
			played := newConsoleEngine(t, cfg)
			if err := c.Play(played); err != nil {
				t.Fatalf("size %d: Play() = %v", size, err)
			}

			if played.Status() != scripted.Status() {
				t.Errorf("size %d: status %v, want %v", size, played.Status(), scripted.Status())
			}
			got := out.String()
			score := fmt.Sprintf("Final Score - Black: %d, White: %d\n",
				scripted.Score(types.Black), scripted.Score(types.White))
			if !strings.Contains(got, "\nFinal Board:\n"+RenderText(scripted.BoardState())) {
				t.Errorf("size %d: final board missing", size)
			}
			if !strings.Contains(got, score) {
				t.Errorf("size %d: output missing %q", size, score)
			}

			result := "The game is a draw!\n"
			if w, ok := scripted.Winner(); ok {
				result = fmt.Sprintf("%s (%s) wins!\n", w.Name, w.Color)
			}
			if !strings.HasSuffix(got, result) {
				t.Errorf("size %d: output ends %q, want %q", size, got[len(got)-40:], result)
			}
		}
	}
}
