package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/bossrush/internal/infrastructure/config"
)

func TestNewLoader_Embedded(t *testing.T) {
	loader, err := newLoader("")
	require.NoError(t, err)

	cfg, err := loader.LoadEncounter()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg, "embedded encounter matches the built-in defaults")
}

func TestNewLoader_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.EncounterFile), []byte("boss:\n  maxHealth: 3000\n"), 0o644))

	loader, err := newLoader(dir)
	require.NoError(t, err)

	cfg, err := loader.LoadEncounter()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Boss.MaxHealth)
	assert.Equal(t, 2400.0, cfg.Arena.Width, "unset keys keep defaults")
}

func TestSeedFrom(t *testing.T) {
	now := time.Unix(0, 987654321)

	assert.Equal(t, int64(42), seedFrom(42, now))
	assert.Equal(t, int64(987654321), seedFrom(0, now))
}

func TestDeliver_KeepsNewest(t *testing.T) {
	out := make(chan *config.EncounterConfig, 1)
	first, second := config.Default(), config.Default()

	deliver(out, first)
	deliver(out, second)

	assert.Same(t, second, <-out)
	assert.Empty(t, out)
}

func TestWatchConfig(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, config.EncounterFile)
	require.NoError(t, os.WriteFile(target, []byte("boss:\n  maxHealth: 6000\n"), 0o644))

	ch, stop, err := watchConfig(config.NewLoader(dir), dir)
	require.NoError(t, err)
	defer stop()

	require.NoError(t, os.WriteFile(target, []byte("boss:\n  maxHealth: 4500\n"), 0o644))

	select {
	case cfg := <-ch:
		require.NotNil(t, cfg)
		assert.Equal(t, 4500, cfg.Boss.MaxHealth)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after editing the config")
	}
}
