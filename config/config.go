package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/adrg/xdg"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v2"

	"othello-n/board"
	"othello-n/engine"
)

var (
	cfgFile     = "othello-n/config.json"
	yamlCfgFile = "othello-n/config.yaml"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor        int `json:"board"`
	BoardColorAlt     int `json:"board_alt"`
	BlackColor        int `json:"black"`
	WhiteColor        int `json:"white"`
	LineColor         int `json:"line"`
	HintColor         int `json:"hint"`
	CursorColorFG     int `json:"cursor_fg"`
	CursorColorBG     int `json:"cursor_bg"`
	LastPlayedColorBG int `json:"last_played_bg"`
}

type ConfigSymbols struct {
	BlackDisk rune `json:"black"`
	WhiteDisk rune `json:"white"`
	EmptyCell rune `json:"empty"`
	LegalMove rune `json:"legal_move"`
	Cursor    rune `json:"cursor"`
}

type Theme struct {
	DrawCursorBackground     bool          `json:"draw_cursor_bg"`
	DrawLastPlayedBackground bool          `json:"draw_last_played_bg"`
	ShowLegalMoves           bool          `json:"show_legal_moves"`
	Colors                   ConfigColors  `json:"colors"`
	Symbols                  ConfigSymbols `json:"symbols"`
}

// GameDefaults holds the settings a new game starts from.
type GameDefaults struct {
	BoardSize int    `json:"board_size"`
	BlackName string `json:"black_name"`
	WhiteName string `json:"white_name"`
	AutoPass  bool   `json:"auto_pass"`
}

// LogConfig controls the debug log. An empty path disables logging.
type LogConfig struct {
	Path  string `json:"path"`
	Level string `json:"level"`
}

type Config struct {
	Theme Theme        `json:"theme"`
	Game  GameDefaults `json:"game"`
	Log   LogConfig    `json:"log"`
}

// InitConfig loads the user's config file if there is one, preferring
// config.json over config.yaml, and falls back to the defaults.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	if absPath, err := xdg.SearchConfigFile(cfgFile); err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	} else if absPath, err := xdg.SearchConfigFile(yamlCfgFile); err == nil {
		if err := readYAMLCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Load reads the config file at path on top of the defaults. Files ending
// in .yaml or .yml are read as YAML, everything else as JSON.
func Load(path string) (*Config, error) {
	config := DefaultConfig
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = readYAMLCfgFile(path, &config)
	default:
		err = readCfgFile(path, &config)
	}
	if err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	s := c.Theme.Symbols
	for _, r := range []rune{s.BlackDisk, s.WhiteDisk, s.EmptyCell, s.LegalMove, s.Cursor} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if err := board.ValidateSize(c.Game.BoardSize); err != nil {
		return &InvalidConfig{err.Error()}
	}
	if c.Log.Level != "" {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
			return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.Log.Level)}
		}
	}
	return nil
}

// GameConfig returns the engine configuration for a new game.
func (c *Config) GameConfig() engine.GameConfig {
	return engine.GameConfig{
		BoardSize: c.Game.BoardSize,
		BlackName: c.Game.BlackName,
		WhiteName: c.Game.WhiteName,
		AutoPass:  c.Game.AutoPass,
	}
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to locate config file: %w", err)
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %s", filepath.Base(filePath), err)}
	}
	return nil
}

// readYAMLCfgFile decodes YAML through a generic map so the json struct tags
// serve both formats.
func readYAMLCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	var raw map[interface{}]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %s", filepath.Base(filePath), err)}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		DecodeHook:       runeHook,
		WeaklyTypedInput: true,
		Result:           a,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(stringKeys(raw)); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %s", filepath.Base(filePath), err)}
	}
	return nil
}

// runeHook lets YAML spell symbols as one-character strings.
func runeHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Int32 {
		return data, nil
	}
	s := data.(string)
	if utf8.RuneCountInString(s) != 1 {
		return data, nil
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// stringKeys converts yaml.v2's map[interface{}]interface{} nodes into
// map[string]interface{}.
func stringKeys(v interface{}) interface{} {
	switch t := v.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = stringKeys(val)
		}
		return m
	case []interface{}:
		for i := range t {
			t[i] = stringKeys(t[i])
		}
		return t
	default:
		return v
	}
}
