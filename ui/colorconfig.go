package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"othello-n/config"
	"othello-n/types"
)

// ColorConfigUI lets the player pick the felt and hint colors with a live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func()

	felt        int
	hint        int
	editingHint bool
}

type feltColor struct {
	name      string
	main, alt int
}

type paletteColor struct {
	code int
	name string
}

// Felt colors come in pairs so the board keeps its checkered look.
var feltColors = []feltColor{
	{"Tournament Green", 28, 29},
	{"Forest", 22, 23},
	{"Moss", 64, 65},
	{"Pine", 29, 30},
	{"Teal", 30, 31},
	{"Ocean", 24, 25},
	{"Navy", 17, 18},
	{"Plum", 53, 54},
	{"Wine", 52, 88},
	{"Walnut", 94, 130},
	{"Slate", 238, 239},
	{"Charcoal", 235, 236},
}

var hintColors = []paletteColor{
	{120, "Light Green"},
	{156, "Pale Green"},
	{228, "Light Gold"},
	{214, "Orange"},
	{117, "Sky Blue"},
	{183, "Lavender"},
	{217, "Pink"},
	{250, "Gray"},
}

// NewColorConfig creates a new color configuration screen.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:    cfg,
		onDone: onDone,
		hint:   cfg.Theme.Colors.HintColor,
	}
	cc.felt = cc.feltIndex(cfg.Theme.Colors.BoardColor)

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)
	cc.colorList.SetBorderColor(MenuColors.Border)
	cc.colorList.SetSelectedBackgroundColor(MenuColors.Selected)
	cc.populateColorList()

	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if cc.editingHint {
			if index >= 0 && index < len(hintColors) {
				cc.hint = hintColors[index].code
			}
		} else if index >= 0 && index < len(feltColors) {
			cc.felt = index
		}
	})

	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if cc.editingHint {
			cc.cfg.Theme.Colors.HintColor = cc.hint
			cc.editingHint = false
			cc.populateColorList()
			cc.save()
			return
		}
		cc.cfg.Theme.Colors.BoardColor = feltColors[cc.felt].main
		cc.cfg.Theme.Colors.BoardColorAlt = feltColors[cc.felt].alt
		cc.save()
		onDone()
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetBorderColor(MenuColors.Border)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetTitleColor(MenuColors.Title)
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 32, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

// feltIndex finds the felt whose main color matches code, falling back to the first entry.
func (cc *ColorConfigUI) feltIndex(code int) int {
	for i, f := range feltColors {
		if f.main == code {
			return i
		}
	}
	return 0
}

// save writes the theme out. A read-only config directory only loses persistence.
func (cc *ColorConfigUI) save() {
	if err := cc.cfg.Save(); err != nil {
		cc.preview.SetTitle(" Board Preview (not saved) ")
	}
}

func (cc *ColorConfigUI) populateColorList() {
	// Adding the first item fires the changed func, so remember the selection.
	felt, hint := cc.felt, cc.hint
	cc.colorList.Clear()

	if cc.editingHint {
		cc.colorList.SetTitle(" Hint Color (Tab: felt) ")
		for i, c := range hintColors {
			cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
				tcell.PaletteColor(c.code).Hex(), c.name, c.code),
				"", rune('a'+i), nil)
		}
		for i, c := range hintColors {
			if c.code == hint {
				cc.colorList.SetCurrentItem(i)
			}
		}
		cc.hint = hint
		return
	}

	cc.colorList.SetTitle(" Felt Color (Tab: hints) ")
	for i, f := range feltColors {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]██[#%06x]██[-] %s",
			tcell.PaletteColor(f.main).Hex(), tcell.PaletteColor(f.alt).Hex(), f.name),
			"", rune('a'+i), nil)
	}
	cc.colorList.SetCurrentItem(felt)
	cc.felt = felt
}

// previewBoard is the position after black opens at c2 on a 6x6 board.
var previewBoard = [6]string{
	"......",
	"..B...",
	"..BB..",
	"..BW..",
	"......",
	"......",
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	size := len(previewBoard)
	if width < size*2+6 || height < size+4 {
		return x, y, width, height
	}

	felt := feltColors[cc.felt]
	colors := cc.cfg.Theme.Colors
	symbols := cc.cfg.Theme.Symbols
	startX, startY := x+2, y+1

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			bg := tcell.PaletteColor(felt.main)
			if (row+col)%2 == 1 {
				bg = tcell.PaletteColor(felt.alt)
			}
			style := tcell.StyleDefault.Background(bg)

			r := symbols.EmptyCell
			style = style.Foreground(tcell.PaletteColor(colors.LineColor))
			switch previewBoard[row][col] {
			case 'B':
				r = symbols.BlackDisk
				style = style.Foreground(tcell.PaletteColor(colors.BlackColor))
			case 'W':
				r = symbols.WhiteDisk
				style = style.Foreground(tcell.PaletteColor(colors.WhiteColor))
			default:
				if previewLegal(row, col) {
					r = symbols.LegalMove
					style = style.Foreground(tcell.PaletteColor(cc.hint))
				}
			}
			drawCell(screen, style, r, row, col, startX, startY)
		}
	}

	info := fmt.Sprintf("Felt: %s  Hint: %d", felt.name, cc.hint)
	for i, ch := range info {
		if startX+i < x+width-1 {
			screen.SetContent(startX+i, startY+size+1, ch, nil, tcell.StyleDefault.Foreground(MenuColors.Hint))
		}
	}

	return x, y, width, height
}

// previewLegal marks white's replies to the preview opening.
func previewLegal(row, col int) bool {
	p := types.Position{Row: row, Col: col}
	for _, legal := range []types.Position{{Row: 1, Col: 1}, {Row: 3, Col: 1}, {Row: 1, Col: 3}} {
		if p == legal {
			return true
		}
	}
	return false
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between felt and hint color editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingHint = !cc.editingHint
	cc.populateColorList()
}
