package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"othello-n/engine"
	"othello-n/engine/othello"
	"othello-n/types"
)

// ErrInputClosed is returned when the input ends before the game does.
var ErrInputClosed = errors.New("input closed before the game finished")

// Console plays a game over line-based text input and output.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

func (c *Console) printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// PromptPlayers asks for both player names. Blank answers keep the names in cfg.
func (c *Console) PromptPlayers(cfg engine.GameConfig) (engine.GameConfig, error) {
	black, white := cfg.Players()

	c.printf("Enter %s (Black) name: ", black.Name)
	name, ok := c.readLine()
	if !ok {
		return cfg, ErrInputClosed
	}
	if name != "" {
		cfg.BlackName = name
	}

	c.printf("Enter %s (White) name: ", white.Name)
	name, ok = c.readLine()
	if !ok {
		return cfg, ErrInputClosed
	}
	if name != "" {
		cfg.WhiteName = name
	}
	return cfg, nil
}

// Play starts the game on eng and runs it to the end.
func (c *Console) Play(eng engine.GameEngine) error {
	c.printf("\nStarting Othello Game!\n")
	c.printf("How to play: Enter your move as 'row column' (e.g., '3 4' for row 3, column 4)\n\n")

	if err := eng.StartGame(); err != nil {
		return err
	}

	for !eng.Status().Terminal() {
		state := eng.BoardState()
		c.printf("Current Player: %s\n", eng.CurrentPlayer())
		c.printf("%s%s\n", RenderText(state), RenderScores(state))

		if len(state.LegalMoves) == 0 {
			c.printf("%s has no valid moves. Switching player.\n", eng.CurrentPlayer().Name)
			ev, err := eng.SkipTurn()
			if err != nil {
				return err
			}
			if ev.Status.Terminal() {
				c.printf("No valid moves for both players. Game over!\n")
			}
			continue
		}

		c.printf("Available moves: \n")
		for _, m := range state.LegalMoves {
			c.printf("%s\n", othello.PosToRowCol(m))
		}
		if err := c.readMove(eng); err != nil {
			return err
		}
	}

	c.printFinal(eng)
	return nil
}

// readMove prompts until the current player enters an accepted move.
func (c *Console) readMove(eng engine.GameEngine) error {
	for {
		c.printf("Enter your move (row column, e.g., '3 4'): ")
		line, ok := c.readLine()
		if !ok {
			return ErrInputClosed
		}
		if line == "" {
			c.printf("Invalid input. Please try again.\n")
			continue
		}

		pos, err := othello.ParseRowCol(line)
		switch {
		case errors.Is(err, othello.ErrRowColFields):
			c.printf("Please enter two numbers separated by space.\n")
			continue
		case err != nil:
			c.printf("Please enter valid numbers.\n")
			continue
		}

		ev, err := eng.SubmitMove(pos.Row, pos.Col)
		if err != nil {
			switch types.ReasonOf(err) {
			case types.ReasonOutOfBounds, types.ReasonOccupied, types.ReasonNoFlips:
				c.printf("Invalid move. Please choose from the available moves.\n")
				continue
			default:
				return err
			}
		}
		c.printEvent(eng, ev)
		return nil
	}
}

func (c *Console) printEvent(eng engine.GameEngine, ev *types.TurnEvent) {
	c.printf("%s places Disk at %s\n", ev.Player.Name, othello.PosToRowCol(*ev.Placed))
	for _, p := range ev.Flipped {
		c.printf("Flipped Disk at %s to %s\n", othello.PosToRowCol(p), ev.Player.Color)
	}
	switch {
	case ev.Status.Terminal():
		c.printf("No valid moves for both players. Game over!\n")
	case ev.AutoSkipped:
		skipped, _ := eng.Players()
		if ev.Player.Color == types.Black {
			_, skipped = eng.Players()
		}
		c.printf("%s has no valid moves. Switching player.\n", skipped.Name)
	}
}

func (c *Console) printFinal(eng engine.GameEngine) {
	state := eng.BoardState()
	c.printf("\nFinal Board:\n%s", RenderText(state))
	c.printf("Final Score - Black: %d, White: %d\n", state.BlackScore, state.WhiteScore)
	if winner, ok := eng.Winner(); ok {
		c.printf("%s (%s) wins!\n", winner.Name, winner.Color)
	} else {
		c.printf("The game is a draw!\n")
	}
}
