package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"othello-n/config"
	"othello-n/engine"
)

// SetupBoardSizes are the sizes offered in the setup form.
var SetupBoardSizes = []int{4, 6, 8, 10, 12}

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	onStart  func(engine.GameConfig)
	onCancel func()
	onColors func()

	gameCfg engine.GameConfig
}

// NewGameSetup creates a new game setup form seeded from the configured defaults.
func NewGameSetup(c *config.Config, onStart func(engine.GameConfig), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:  onStart,
		onCancel: onCancel,
		onColors: onColors,
		gameCfg:  c.GameConfig(),
	}

	sizes := make([]string, len(SetupBoardSizes))
	initial := 0
	for i, size := range SetupBoardSizes {
		sizes[i] = fmt.Sprintf("%dx%d", size, size)
		if size == setup.gameCfg.BoardSize {
			initial = i
		}
	}

	form := tview.NewForm()

	form.AddDropDown("Board Size", sizes, initial, func(option string, index int) {
		if index >= 0 && index < len(SetupBoardSizes) {
			setup.gameCfg.BoardSize = SetupBoardSizes[index]
		}
	})

	form.AddInputField("Black", setup.gameCfg.BlackName, 20, nil, func(text string) {
		setup.gameCfg.BlackName = text
	})

	form.AddInputField("White", setup.gameCfg.WhiteName, 20, nil, func(text string) {
		setup.gameCfg.WhiteName = text
	})

	form.AddCheckbox("Auto Pass", setup.gameCfg.AutoPass, func(checked bool) {
		setup.gameCfg.AutoPass = checked
	})

	form.AddButton("Start Game", func() {
		onStart(setup.GameConfig())
	})

	form.AddButton("Board Color", func() {
		if onColors != nil {
			onColors()
		}
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetBorderColor(MenuColors.Border)
	form.SetTitleColor(MenuColors.Title)
	form.SetLabelColor(MenuColors.Label)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Arrow keys: change dropdown  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// GameConfig returns the configuration currently entered in the form.
func (s *GameSetupUI) GameConfig() engine.GameConfig {
	return s.gameCfg
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
