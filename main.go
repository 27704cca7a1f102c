// othello-n is a terminal application to play Othello on an N x N board.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"othello-n/config"
	"othello-n/engine"
	"othello-n/engine/othello"
	"othello-n/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagConfig     = flag.String("config", "", "Path to a config file (.json or .yaml)")
	flagBoardSize  = flag.Int("size", 0, "Board size (even, 4-26)")
	flagBlack      = flag.String("black", "", "Name of the black player")
	flagWhite      = flag.String("white", "", "Name of the white player")
	flagAutoPass   = flag.Bool("autopass", false, "Pass automatically for a player without moves")
	flagQuickStart = flag.Bool("play", false, "Start game immediately with defaults")
	flagPlain      = flag.Bool("plain", false, "Play in plain text on stdin/stdout")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.BoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config
var logger *zap.Logger

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("othello-n %s\n", Version)
		return
	}

	var err error
	if *flagConfig != "" {
		cfg, err = config.Load(*flagConfig)
	} else {
		cfg, err = config.InitConfig()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	logger, err = cfg.Log.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *flagPlain {
		if err := playPlain(buildGameConfigFromFlags()); err != nil {
			logger.Error("console game ended", zap.Error(err))
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			logger.Sync()
			os.Exit(1)
		}
		return
	}

	quickStart := *flagQuickStart || *flagBoardSize > 0 || *flagBlack != "" || *flagWhite != "" || *flagAutoPass

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ● othello-n ")

	// Game view setup
	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewBoard(cfg, gameHint)

	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			if gameBoard.SelectedTile() != nil {
				gameBoard.ResetSelection()
			} else {
				rootPage.SwitchToPage("setup")
			}
			return nil
		}
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveSelection(-1, 0)
		case tcell.KeyDown:
			gameBoard.MoveSelection(1, 0)
		case tcell.KeyLeft:
			gameBoard.MoveSelection(0, -1)
		case tcell.KeyRight:
			gameBoard.MoveSelection(0, 1)
		case tcell.KeyEnter:
			selTile := gameBoard.SelectedTile()
			if selTile == nil {
				return nil
			}
			gameBoard.PlayMove(selTile.Row, selTile.Col)
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				gameBoard.MoveSelection(0, -1)
			case 'j':
				gameBoard.MoveSelection(1, 0)
			case 'k':
				gameBoard.MoveSelection(-1, 0)
			case 'l':
				gameBoard.MoveSelection(0, 1)
			case 'p':
				gameBoard.Pass()
			}
		}
		return event
	})

	setupUI := ui.NewGameSetup(cfg,
		func(gameCfg engine.GameConfig) {
			startGame(gameCfg)
		},
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)

	colorConfig := ui.NewColorConfig(cfg, func() {
		gameBoard.SetConfig(cfg)
		rootPage.SwitchToPage("setup")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			gameBoard.SetConfig(cfg)
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI.Form(), 60), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if quickStart {
		startGame(buildGameConfigFromFlags())
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		logger.Error("ui stopped", zap.Error(err))
		panic(err)
	}
}

// startGame creates an engine for gameCfg and shows its board.
func startGame(gameCfg engine.GameConfig) {
	eng, err := othello.NewFromConfig(gameCfg, logger)
	if err == nil {
		err = gameBoard.ConnectEngine(eng)
	}
	if err != nil {
		logger.Warn("failed to start game", zap.Error(err))
		modal := tview.NewModal().
			SetText(fmt.Sprintf("Failed to start game:\n%s", err.Error())).
			AddButtons([]string{"OK"}).
			SetDoneFunc(func(buttonIndex int, buttonLabel string) {
				rootPage.RemovePage("error")
				rootPage.SwitchToPage("setup")
			})
		rootPage.AddPage("error", modal, true, true)
		return
	}
	rootPage.SwitchToPage("gameview")
}

// playPlain runs a game over stdin and stdout.
func playPlain(gameCfg engine.GameConfig) error {
	console := ui.NewConsole(os.Stdin, os.Stdout)
	fmt.Println("Welcome to Othello Game!")

	if *flagBlack == "" && *flagWhite == "" {
		var err error
		if gameCfg, err = console.PromptPlayers(gameCfg); err != nil {
			return err
		}
	}

	eng, err := othello.NewFromConfig(gameCfg, logger)
	if err != nil {
		return err
	}
	return console.Play(eng)
}

// buildGameConfigFromFlags creates a GameConfig from the config file
// defaults and command-line flags.
func buildGameConfigFromFlags() engine.GameConfig {
	gameCfg := cfg.GameConfig()

	if *flagBoardSize > 0 {
		gameCfg.BoardSize = *flagBoardSize
	}
	if *flagBlack != "" {
		gameCfg.BlackName = *flagBlack
	}
	if *flagWhite != "" {
		gameCfg.WhiteName = *flagWhite
	}
	if *flagAutoPass {
		gameCfg.AutoPass = true
	}

	return gameCfg
}
