package main

import (
	"log"

	"github.com/younwookim/bossrush/internal/infrastructure/config"
)

// watchConfig reloads the encounter config whenever a YAML file in dir changes.
// Invalid edits are logged and skipped. stop closes the watcher.
func watchConfig(loader *config.Loader, dir string) (<-chan *config.EncounterConfig, func(), error) {
	w, err := config.NewWatcher(dir)
	if err != nil {
		return nil, nil, err
	}

	out := make(chan *config.EncounterConfig, 1)
	go func() {
		defer close(out)
		for {
			select {
			case path, ok := <-w.Events:
				if !ok {
					return
				}
				cfg, err := loader.LoadEncounter()
				if err != nil {
					log.Printf("Ignoring config change in %s: %v", path, err)
					continue
				}
				log.Printf("Config changed: %s", path)
				deliver(out, cfg)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("Config watcher error: %v", err)
			}
		}
	}()

	stop := func() {
		if err := w.Close(); err != nil {
			log.Printf("Failed to close config watcher: %v", err)
		}
	}
	return out, stop, nil
}

// deliver replaces any undelivered config with cfg so the scene only sees the newest
func deliver(out chan *config.EncounterConfig, cfg *config.EncounterConfig) {
	for {
		select {
		case out <- cfg:
			return
		default:
		}
		select {
		case <-out:
		default:
		}
	}
}
