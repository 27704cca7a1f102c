package ui

import "github.com/gdamore/tcell/v2"

// MenuColors is the palette shared by the setup and color screens.
var MenuColors = struct {
	Border     tcell.Color
	Title      tcell.Color
	Label      tcell.Color
	Hint       tcell.Color
	Selected   tcell.Color
	ButtonBG   tcell.Color
	ButtonText tcell.Color
}{
	Border:     tcell.PaletteColor(65),  // sage
	Title:      tcell.PaletteColor(255), // bright white
	Label:      tcell.PaletteColor(250), // light gray
	Hint:       tcell.PaletteColor(245), // dim gray
	Selected:   tcell.PaletteColor(29),  // felt green
	ButtonBG:   tcell.PaletteColor(22),
	ButtonText: tcell.PaletteColor(255),
}
