package engine

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.BoardSize != 8 {
		t.Errorf("BoardSize = %d, want 8", cfg.BoardSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		size    int
		wantErr bool
	}{
		{8, false},
		{6, false},
		{9, true},
		{30, true},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.BoardSize = tt.size
		err := cfg.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(size=%d) error = %v, wantErr %v", tt.size, err, tt.wantErr)
		}
	}
}

func TestPlayers(t *testing.T) {
	tests := []struct {
		black, white         string
		wantBlack, wantWhite string
	}{
		{"Ann", "Bob", "Ann", "Bob"},
		{"", "Bob", "Player 1", "Bob"},
		{"  ", "\t", "Player 1", "Player 2"},
		{" Ann ", "Bob", "Ann", "Bob"},
	}
	for _, tt := range tests {
		cfg := GameConfig{BoardSize: 8, BlackName: tt.black, WhiteName: tt.white}
		b, w := cfg.Players()
		if b.Name != tt.wantBlack || w.Name != tt.wantWhite {
			t.Errorf("Players(%q, %q) = %q, %q, want %q, %q", tt.black, tt.white, b.Name, w.Name, tt.wantBlack, tt.wantWhite)
		}
		if b.Color == w.Color {
			t.Errorf("players share color %v", b.Color)
		}
	}
}
