package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadEncounter(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadEncounter()
	require.NoError(t, err)

	assert.Equal(t, 2400.0, cfg.Arena.Width)
	assert.Equal(t, 1200.0, cfg.Arena.Height)
	assert.Equal(t, 60, cfg.Timing.TickRate)
	assert.Equal(t, 5, cfg.Timing.MaxTicksPerFrame)
	assert.Equal(t, 3, cfg.Player.StartHealth)
	assert.Equal(t, 90, cfg.Player.InvulnerabilityTicks)
	assert.Len(t, cfg.Player.Weapon.FanAngles, 5)
	assert.Equal(t, 6000, cfg.Boss.MaxHealth)
	assert.Equal(t, 4000, cfg.Boss.PhaseTwoHealth)
	assert.Equal(t, 2000, cfg.Boss.PhaseThreeHealth)
	assert.Equal(t, 6, cfg.Hazards.Mine.Cap)
	assert.Equal(t, 4, cfg.Hazards.LaserArm.Cap)
	assert.Equal(t, math.Pi/3, cfg.Hazards.LaserArm.HalfArc, "60 degrees, bit for bit")
}

func TestLoader_EmbeddedMatchesDefault(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadEncounter()
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg, "shipped encounter.yaml should describe the built-in encounter")
}

func TestLoader_PartialFileKeepsDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		EncounterFile: &fstest.MapFile{Data: []byte("boss:\n  maxHealth: 8000\n  phaseTwoHealth: 5000\n")},
	}
	loader := NewFSLoader(fsys, "mem")

	cfg, err := loader.LoadEncounter()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Boss.MaxHealth)
	assert.Equal(t, 5000, cfg.Boss.PhaseTwoHealth)
	assert.Equal(t, 2000, cfg.Boss.PhaseThreeHealth, "unspecified key keeps default")
	assert.Equal(t, 2400.0, cfg.Arena.Width)
	assert.Equal(t, "mem", loader.BasePath())
}

func TestLoader_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		loader := NewFSLoader(fstest.MapFS{}, "mem")
		_, err := loader.LoadEncounter()
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		loader := NewFSLoader(fstest.MapFS{
			EncounterFile: &fstest.MapFile{Data: []byte("arena: [1, 2")},
		}, "mem")
		_, err := loader.LoadEncounter()
		assert.Error(t, err)
	})

	t.Run("fails validation", func(t *testing.T) {
		loader := NewFSLoader(fstest.MapFS{
			EncounterFile: &fstest.MapFile{Data: []byte("boss:\n  phaseThreeHealth: 5000\n")},
		}, "mem")
		_, err := loader.LoadEncounter()
		assert.ErrorIs(t, err, ErrInvalid)
	})
}

func TestEncounterConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *EncounterConfig)
	}{
		{"zero arena", func(c *EncounterConfig) { c.Arena.Width = 0 }},
		{"negative bullet margin", func(c *EncounterConfig) { c.Arena.BulletMargin = -1 }},
		{"zero tick rate", func(c *EncounterConfig) { c.Timing.TickRate = 0 }},
		{"zero frame cap", func(c *EncounterConfig) { c.Timing.MaxTicksPerFrame = 0 }},
		{"no health", func(c *EncounterConfig) { c.Player.StartHealth = 0 }},
		{"no fan", func(c *EncounterConfig) { c.Player.Weapon.FanAngles = nil }},
		{"thresholds inverted", func(c *EncounterConfig) { c.Boss.PhaseTwoHealth = 1000 }},
		{"chance above one", func(c *EncounterConfig) { c.Hazards.Mine.Chance = 1.5 }},
		{"negative chance", func(c *EncounterConfig) { c.Pickups.DropChance = -0.1 }},
		{"zero cap", func(c *EncounterConfig) { c.Hazards.StrikeLine.Cap = 0 }},
		{"mine life inverted", func(c *EncounterConfig) { c.Hazards.Mine.MinLifeTicks = 400 }},
	}

	require.NoError(t, Default().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestTimingConfig_TickSeconds(t *testing.T) {
	assert.InDelta(t, 1.0/60.0, Default().Timing.TickSeconds(), 1e-12)
}

func TestWatcher_ReportsYAMLWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	target := filepath.Join(dir, EncounterFile)
	require.NoError(t, os.WriteFile(target, []byte("arena: {}\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, target, name)
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for yaml write")
	}
}

func TestWatcher_MissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
