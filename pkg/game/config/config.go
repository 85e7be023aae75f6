// Package config holds the generator settings and loads them from, in rising
// precedence: built-in defaults, a .env file, DUNGEON_* environment variables
// and command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"dungeongen/pkg/game/dungeon"
)

// EnvPrefix is the prefix of every environment variable read by Load
const EnvPrefix = "DUNGEON_"

// Renderer names
const (
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
	RendererPlain  = "plain"
)

// Validation failures
var (
	ErrInvalidValue      = errors.New("invalid configuration value")
	ErrUnknownRenderer   = errors.New("unknown renderer")
	ErrInvalidTileSize   = errors.New("tile size must be positive")
	ErrInvalidLockChance = errors.New("lock chance must be between 0 and 100")
)

// Config is the full set of generator settings
type Config struct {
	Seed int64 // 0 picks a seed from the clock
	Mode dungeon.Mode

	MaxRooms      int
	Width         int
	Height        int
	MaxRoomWidth  int
	MaxRoomHeight int

	Doors      bool
	Items      bool
	Keys       bool
	LockChance int

	Renderer    string
	Interactive bool
	TileSize    int
	DumpPath    string
	HTMLPath    string
	Locale      string
}

// Default returns the built-in settings: a small separate-rooms layout
func Default() Config {
	return Config{
		Mode:          dungeon.SeparateRooms,
		MaxRooms:      5,
		Width:         25,
		Height:        25,
		MaxRoomWidth:  4,
		MaxRoomHeight: 4,
		Doors:         true,
		Items:         true,
		Keys:          true,
		Renderer:      RendererTUI,
		TileSize:      32,
		Locale:        "en_GB",
	}
}

// Load returns the defaults overlaid with envFile (if it exists) and then
// with the process environment. Flags are applied separately with BindFlags.
func Load(envFile string) (Config, error) {
	cfg := Default()

	vars, err := ReadEnvFile(envFile)
	if err != nil {
		return cfg, err
	}
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(key, EnvPrefix) {
			vars[key] = value
		}
	}

	if err := cfg.ApplyEnv(vars); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ReadEnvFile parses a .env file. A missing file yields an empty map.
func ReadEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}
	vars, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return vars, nil
}

// ApplyEnv overrides settings from DUNGEON_* variables. Unknown keys are ignored.
func (c *Config) ApplyEnv(vars map[string]string) error {
	for key, value := range vars {
		name, ok := strings.CutPrefix(key, EnvPrefix)
		if !ok {
			continue
		}
		if err := c.set(name, strings.TrimSpace(value)); err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, key, value, err)
		}
	}
	return nil
}

func (c *Config) set(name, value string) error {
	var err error
	switch name {
	case "SEED":
		c.Seed, err = strconv.ParseInt(value, 10, 64)
	case "MODE":
		c.Mode, err = dungeon.ParseMode(value)
	case "ROOMS":
		c.MaxRooms, err = strconv.Atoi(value)
	case "WIDTH":
		c.Width, err = strconv.Atoi(value)
	case "HEIGHT":
		c.Height, err = strconv.Atoi(value)
	case "ROOM_WIDTH":
		c.MaxRoomWidth, err = strconv.Atoi(value)
	case "ROOM_HEIGHT":
		c.MaxRoomHeight, err = strconv.Atoi(value)
	case "DOORS":
		c.Doors, err = strconv.ParseBool(value)
	case "ITEMS":
		c.Items, err = strconv.ParseBool(value)
	case "KEYS":
		c.Keys, err = strconv.ParseBool(value)
	case "LOCK_CHANCE":
		c.LockChance, err = strconv.Atoi(value)
	case "RENDERER":
		c.Renderer = strings.ToLower(value)
	case "INTERACTIVE":
		c.Interactive, err = strconv.ParseBool(value)
	case "TILE_SIZE":
		c.TileSize, err = strconv.Atoi(value)
	case "DUMP":
		c.DumpPath = value
	case "HTML":
		c.HTMLPath = value
	case "LOCALE":
		c.Locale = value
	}
	return err
}

// modeValue adapts dungeon.Mode to flag.Value
type modeValue struct {
	mode *dungeon.Mode
}

func (m modeValue) String() string {
	if m.mode == nil {
		return ""
	}
	return m.mode.String()
}

func (m modeValue) Set(s string) error {
	mode, err := dungeon.ParseMode(s)
	if err != nil {
		return err
	}
	*m.mode = mode
	return nil
}

// BindFlags registers a flag for every setting, using the current values as defaults
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 = time based)")
	fs.Var(modeValue{&c.Mode}, "mode", "room layout: basement, separate, grid or tree")
	fs.IntVar(&c.MaxRooms, "rooms", c.MaxRooms, "maximum number of rooms")
	fs.IntVar(&c.Width, "width", c.Width, "dungeon width in tiles")
	fs.IntVar(&c.Height, "height", c.Height, "dungeon height in tiles")
	fs.IntVar(&c.MaxRoomWidth, "room-width", c.MaxRoomWidth, "maximum room width")
	fs.IntVar(&c.MaxRoomHeight, "room-height", c.MaxRoomHeight, "maximum room height")
	fs.BoolVar(&c.Doors, "doors", c.Doors, "add doors to corridors")
	fs.BoolVar(&c.Items, "items", c.Items, "add items to rooms")
	fs.BoolVar(&c.Keys, "keys", c.Keys, "add one key per door")
	fs.IntVar(&c.LockChance, "lock-chance", c.LockChance, "percent chance a door is locked")
	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "output: tui, ebiten or plain")
	fs.BoolVar(&c.Interactive, "interactive", c.Interactive, "keep the tui open: r regenerates, q quits")
	fs.IntVar(&c.TileSize, "tile", c.TileSize, "tile size in pixels for the ebiten viewer")
	fs.StringVar(&c.DumpPath, "dump", c.DumpPath, "write a debug dump of the layout to this file")
	fs.StringVar(&c.HTMLPath, "html", c.HTMLPath, "write an HTML snapshot of the map to this file")
	fs.StringVar(&c.Locale, "locale", c.Locale, "language for labels")
}

// Validate checks the settings the generator itself does not check. Every
// failing setting is reported.
func (c Config) Validate() error {
	var errs []error
	switch c.Renderer {
	case RendererTUI, RendererEbiten, RendererPlain:
	default:
		errs = append(errs, fmt.Errorf("renderer: %w: %q", ErrUnknownRenderer, c.Renderer))
	}
	if c.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("tile size: %w: %d", ErrInvalidTileSize, c.TileSize))
	}
	if c.LockChance < 0 || c.LockChance > 100 {
		errs = append(errs, fmt.Errorf("lock chance: %w: %d", ErrInvalidLockChance, c.LockChance))
	}
	if !c.Mode.Valid() {
		errs = append(errs, fmt.Errorf("mode: %w: %d", dungeon.ErrUnknownMode, int(c.Mode)))
	}
	return errors.Join(errs...)
}

// DoorOptions returns the door settings for the generator
func (c Config) DoorOptions() dungeon.DoorOptions {
	return dungeon.DoorOptions{LockChance: c.LockChance}
}
