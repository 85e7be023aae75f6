package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/leonelquinteros/gotext"

	"dungeongen/pkg/game/config"
	"dungeongen/pkg/game/devtools"
	"dungeongen/pkg/game/renderer"
	"dungeongen/pkg/game/renderer/ebiten"
	"dungeongen/pkg/game/renderer/tui"
	"dungeongen/pkg/game/setup"
)

func initGettext(locale string) {
	gotext.Configure("locales", locale, "default")
}

// build runs the pipeline and logs what came out
func build(cfg config.Config, seed int64) (*setup.Result, error) {
	res, err := setup.Build(cfg, seed)
	if err != nil {
		return nil, err
	}

	d := res.Dungeon
	if res.DoorsSkipped {
		log.Printf("Skipping doors: only one room was placed")
	}
	log.Printf("Generated %s layout with seed %d: %d rooms, %d corridors, %d doors, %d items",
		res.Mode, res.Seed, d.RoomsNumber(), d.CorridorsNumber(), d.DoorsNumber(), len(d.Items()))
	if dropped := res.Map.Stats().DroppedItems; dropped > 0 {
		log.Printf("%d items found no free cell", dropped)
	}

	return res, nil
}

func newRenderer(cfg config.Config) renderer.Renderer {
	regenerate := func() (renderer.Scene, error) {
		res, err := build(cfg, setup.PickSeed(0))
		if err != nil {
			return renderer.Scene{}, err
		}
		return res.Scene(), nil
	}

	switch cfg.Renderer {
	case config.RendererEbiten:
		return ebiten.New(cfg.TileSize, regenerate)
	case config.RendererPlain:
		return tui.NewPlain(os.Stdout)
	default:
		if cfg.Interactive {
			return tui.NewInteractive(os.Stdout, os.Stdin, regenerate)
		}
		return tui.New(os.Stdout)
	}
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Cannot load configuration: %v", err)
	}

	quiet := flag.Bool("quiet", false, "suppress log output")
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()

	if *quiet {
		log.SetOutput(io.Discard)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	initGettext(cfg.Locale)

	res, err := build(cfg, setup.PickSeed(cfg.Seed))
	if err != nil {
		log.Fatalf("Cannot generate dungeon: %v", err)
	}

	scene := res.Scene()

	if cfg.DumpPath != "" {
		path, err := devtools.DumpMapToFile(cfg.DumpPath, devtools.DumpMeta{Seed: res.Seed, Mode: res.Mode}, res.Dungeon, res.Map)
		if err != nil {
			log.Fatalf("Cannot write dump: %v", err)
		}
		log.Printf("Dump written to %s", path)
	}

	if cfg.HTMLPath != "" {
		if err := devtools.SaveScreenshotHTML(cfg.HTMLPath, scene); err != nil {
			log.Fatalf("Cannot write HTML snapshot: %v", err)
		}
		log.Printf("HTML snapshot written to %s", cfg.HTMLPath)
	}

	renderer.SetRenderer(newRenderer(cfg))
	renderer.Init()
	if err := renderer.Render(scene); err != nil {
		log.Fatalf("Cannot render dungeon: %v", err)
	}
}
