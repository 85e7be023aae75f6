package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"dungeongen/pkg/game/dungeon"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Mode != dungeon.SeparateRooms || cfg.MaxRooms != 5 || cfg.Width != 25 || cfg.Height != 25 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.TileSize != 32 {
		t.Errorf("TileSize = %d, want 32", cfg.TileSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(map[string]string{
		"DUNGEON_SEED":        "42",
		"DUNGEON_MODE":        "grid",
		"DUNGEON_ROOMS":       "9",
		"DUNGEON_ROOM_WIDTH":  "7",
		"DUNGEON_DOORS":       "false",
		"DUNGEON_LOCK_CHANCE": "30",
		"DUNGEON_RENDERER":    "Plain",
		"DUNGEON_INTERACTIVE": "1",
		"OTHER_SEED":          "ignored",
	})
	if err != nil {
		t.Fatalf("ApplyEnv error: %v", err)
	}
	if cfg.Seed != 42 || cfg.Mode != dungeon.Grid || cfg.MaxRooms != 9 || cfg.MaxRoomWidth != 7 {
		t.Errorf("values not applied: %+v", cfg)
	}
	if cfg.Doors || cfg.LockChance != 30 || cfg.Renderer != RendererPlain || !cfg.Interactive {
		t.Errorf("values not applied: %+v", cfg)
	}
}

func TestApplyEnv_BadValue(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(map[string]string{"DUNGEON_ROOMS": "many"})
	if !errors.Is(err, ErrInvalidValue) {
		t.Errorf("error = %v, want %v", err, ErrInvalidValue)
	}
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "DUNGEON_WIDTH=40\nDUNGEON_HEIGHT=30\n"
	if err := os.WriteFile(envFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DUNGEON_HEIGHT", "35")

	cfg, err := Load(envFile)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Width != 40 {
		t.Errorf("Width = %d, want 40 from .env", cfg.Width)
	}
	if cfg.Height != 35 {
		t.Errorf("Height = %d, want 35 from the environment", cfg.Height)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.BindFlags(fs)
	if err := fs.Parse([]string{"-height", "50", "-mode", "basement"}); err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.Height != 50 || cfg.Mode != dungeon.Basement {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if cfg.Width != 40 {
		t.Errorf("Width = %d, unset flag must keep the loaded value", cfg.Width)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing .env should not fail: %v", err)
	}
}

func TestBindFlags_BadMode(t *testing.T) {
	cfg := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(discard{})
	cfg.BindFlags(fs)
	if err := fs.Parse([]string{"-mode", "cavern"}); err == nil {
		t.Error("expected an error for an unknown mode")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"renderer", func(c *Config) { c.Renderer = "opengl" }, ErrUnknownRenderer},
		{"tile size", func(c *Config) { c.TileSize = 0 }, ErrInvalidTileSize},
		{"negative lock chance", func(c *Config) { c.LockChance = -1 }, ErrInvalidLockChance},
		{"lock chance over 100", func(c *Config) { c.LockChance = 101 }, ErrInvalidLockChance},
		{"mode", func(c *Config) { c.Mode = dungeon.Mode(12) }, dungeon.ErrUnknownMode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidate_DefaultsForEveryMode(t *testing.T) {
	for _, mode := range dungeon.AllModes() {
		cfg := Default()
		cfg.Mode = mode
		if err := cfg.Validate(); err != nil {
			t.Errorf("%v: Validate() = %v", mode, err)
		}
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Renderer = "opengl"
	cfg.TileSize = -4

	err := cfg.Validate()
	if !errors.Is(err, ErrUnknownRenderer) || !errors.Is(err, ErrInvalidTileSize) {
		t.Errorf("Validate() = %v, want both renderer and tile size errors", err)
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
