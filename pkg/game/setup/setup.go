// Package setup runs the whole generation pipeline from a configuration:
// layout, doors, items, then rasterization.
package setup

import (
	"errors"
	"fmt"

	"dungeongen/pkg/engine/random"
	"dungeongen/pkg/game/config"
	"dungeongen/pkg/game/dungeon"
	"dungeongen/pkg/game/dungeonmap"
	"dungeongen/pkg/game/renderer"
)

// ErrInvalidMap is returned when rasterization leaves a tile that must not
// appear in a finished map
var ErrInvalidMap = errors.New("invalid map")

// Result holds one generated dungeon and its map
type Result struct {
	Seed    int64
	Mode    dungeon.Mode
	Dungeon *dungeon.Dungeon
	Map     *dungeonmap.Map

	// DoorsSkipped is set when doors were requested but the layout has a single room
	DoorsSkipped bool
}

// PickSeed returns seed, or a clock-based seed when it is zero
func PickSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return random.NewFromTime().Seed()
}

// Build generates a layout and rasterizes it. Both stages draw from one
// source seeded with seed, so the same settings and seed give the same map.
func Build(cfg config.Config, seed int64) (*Result, error) {
	src := random.New(seed)

	d := dungeon.New(src)
	d.SetDoorOptions(cfg.DoorOptions())

	if _, err := d.Generate(cfg.MaxRooms, cfg.Mode, cfg.Width, cfg.Height, cfg.MaxRoomWidth, cfg.MaxRoomHeight); err != nil {
		return nil, err
	}

	res := &Result{Seed: seed, Mode: cfg.Mode, Dungeon: d}

	if cfg.Doors {
		err := d.AddDoors()
		switch {
		case errors.Is(err, dungeon.ErrSingleRoomLayout):
			res.DoorsSkipped = true
		case err != nil:
			return nil, err
		}
	}

	if cfg.Items {
		d.AddItems(cfg.Keys)
	}

	res.Map = dungeonmap.New(cfg.Width, cfg.Height, src)
	if msg := res.Map.CreateMap(d).Validate(); msg != "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMap, msg)
	}

	return res, nil
}

// Scene returns what the renderers draw for this result
func (r *Result) Scene() renderer.Scene {
	return renderer.NewScene(r.Seed, r.Mode, r.Dungeon, r.Map)
}
