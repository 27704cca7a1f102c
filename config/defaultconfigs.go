package config

import (
	"othello-n/board"
	"othello-n/engine"
)

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: true,
		ShowLegalMoves:           true,
		Colors: ConfigColors{
			BoardColor:        28,
			BoardColorAlt:     29,
			BlackColor:        232,
			WhiteColor:        255,
			LineColor:         22,
			HintColor:         120,
			CursorColorFG:     2,
			CursorColorBG:     4,
			LastPlayedColorBG: 136,
		},
		Symbols: ConfigSymbols{
			BlackDisk: '●',
			WhiteDisk: '●',
			EmptyCell: '·',
			LegalMove: '◦',
			Cursor:    '+',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameDefaults{
			BoardSize: board.DefaultSize,
			BlackName: engine.DefaultBlackName,
			WhiteName: engine.DefaultWhiteName,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
