package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/bossrush/internal/application/game"
	"github.com/younwookim/bossrush/internal/application/scene/playing"
	"github.com/younwookim/bossrush/internal/infrastructure/config"
)

// Window size; the arena is scaled down to fit
const windowScale = 0.5

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Load encounter.yaml from this directory instead of the built-in config")
	seedFlag := flag.Int64("seed", 0, "RNG seed for the first encounter (0 = time based)")
	watch := flag.Bool("watch", false, "Reload the config on edits (requires -config)")
	flag.Parse()

	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	cfg, err := loader.LoadEncounter()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Printf("Config loaded from %s", loader.BasePath())

	var reloads <-chan *config.EncounterConfig
	if *watch {
		if *configDir == "" {
			log.Fatalf("-watch requires -config")
		}
		ch, stop, err := watchConfig(loader, *configDir)
		if err != nil {
			log.Fatalf("Failed to watch config: %v", err)
		}
		defer stop()
		reloads = ch
	}

	seed := seedFrom(*seedFlag, time.Now())
	log.Printf("Seed: %d", seed)

	g := game.New(playing.New(cfg, seed, reloads), int(cfg.Arena.Width), int(cfg.Arena.Height))

	// Set up ebiten
	ebiten.SetWindowSize(int(cfg.Arena.Width*windowScale), int(cfg.Arena.Height*windowScale))
	ebiten.SetWindowTitle("Boss Rush")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Timing.TickRate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// newLoader reads from dir when set, otherwise from the embedded configs
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded configs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// seedFrom returns flagSeed, or a time-based seed when it is zero
func seedFrom(flagSeed int64, now time.Time) int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return now.UnixNano()
}
