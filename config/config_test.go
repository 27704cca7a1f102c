package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	gc := cfg.GameConfig()
	if gc.BoardSize != 8 || gc.BlackName != "Player 1" || gc.WhiteName != "Player 2" || gc.AutoPass {
		t.Errorf("GameConfig() = %+v", gc)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"control symbol", func(c *Config) { c.Theme.Symbols.BlackDisk = '\n' }},
		{"C1 symbol", func(c *Config) { c.Theme.Symbols.LegalMove = 130 }},
		{"odd board", func(c *Config) { c.Game.BoardSize = 9 }},
		{"tiny board", func(c *Config) { c.Game.BoardSize = 2 }},
		{"log level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig
		tt.modify(&cfg)
		err := cfg.Validate()
		var invalid *InvalidConfig
		if !errors.As(err, &invalid) {
			t.Errorf("%s: Validate() = %v, want InvalidConfig", tt.name, err)
		}
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeTempConfig(t, "config.json", `{
  "game": {"board_size": 6, "black_name": "Ann", "auto_pass": true},
  "theme": {"show_legal_moves": false, "symbols": {"black": 66}}
}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Game.BoardSize != 6 || cfg.Game.BlackName != "Ann" || !cfg.Game.AutoPass {
		t.Errorf("game = %+v", cfg.Game)
	}
	if cfg.Game.WhiteName != "Player 2" {
		t.Errorf("WhiteName = %q, default should survive", cfg.Game.WhiteName)
	}
	if cfg.Theme.ShowLegalMoves {
		t.Error("ShowLegalMoves should be false")
	}
	if cfg.Theme.Symbols.BlackDisk != 'B' {
		t.Errorf("BlackDisk = %q, want 'B'", cfg.Theme.Symbols.BlackDisk)
	}
	if cfg.Theme.Symbols.WhiteDisk != DefaultTheme.Symbols.WhiteDisk {
		t.Error("unset symbols should keep defaults")
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", `
game:
  board_size: 10
  white_name: Bob
theme:
  symbols:
    black: "X"
    white: 79
  colors:
    board: 22
log:
  path: /tmp/othello.log
  level: debug
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Game.BoardSize != 10 || cfg.Game.WhiteName != "Bob" || cfg.Game.BlackName != "Player 1" {
		t.Errorf("game = %+v", cfg.Game)
	}
	if cfg.Theme.Symbols.BlackDisk != 'X' || cfg.Theme.Symbols.WhiteDisk != 'O' {
		t.Errorf("symbols = %+v", cfg.Theme.Symbols)
	}
	if cfg.Theme.Colors.BoardColor != 22 {
		t.Errorf("BoardColor = %d, want 22", cfg.Theme.Colors.BoardColor)
	}
	if cfg.Log.Path != "/tmp/othello.log" || cfg.Log.Level != "debug" {
		t.Errorf("log = %+v", cfg.Log)
	}
}

func TestLoadRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name, content string
	}{
		{"broken.json", `{"game": `},
		{"broken.yaml", "game: [1, 2"},
		{"odd.yaml", "game:\n  board_size: 7\n"},
		{"type.yaml", "game:\n  board_size: big\n"},
	}
	for _, tt := range tests {
		path := writeTempConfig(t, tt.name, tt.content)
		_, err := Load(path)
		var invalid *InvalidConfig
		if !errors.As(err, &invalid) {
			t.Errorf("Load(%s) error = %v, want InvalidConfig", tt.name, err)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.json"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := DefaultConfig
	cfg.Game.BlackName = "Ann"
	cfg.Theme.Symbols.Cursor = '#'
	if err := saveCfgFile(path, &cfg, 0644); err != nil {
		t.Fatalf("saveCfgFile: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *loaded != cfg {
		t.Errorf("loaded %+v, want %+v", *loaded, cfg)
	}
}

func TestNewLogger(t *testing.T) {
	nop, err := LogConfig{}.NewLogger()
	if err != nil || nop == nil {
		t.Fatalf("NewLogger() without path = %v, %v", nop, err)
	}

	path := filepath.Join(t.TempDir(), "debug.log")
	logger, err := LogConfig{Path: path, Level: "debug"}.NewLogger()
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	logger.Debug("hello")
	logger.Sync()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}

	if _, err := (LogConfig{Path: path, Level: "loud"}).NewLogger(); err == nil {
		t.Error("expected error for unknown level")
	}
}
