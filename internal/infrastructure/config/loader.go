package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// EncounterFile is the file name the loader reads
const EncounterFile = "encounter.yaml"

// Loader loads encounter configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the path the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadEncounter loads encounter.yaml on top of Default.
// Keys missing from the file keep their built-in values.
func (l *Loader) LoadEncounter() (*EncounterConfig, error) {
	data, err := fs.ReadFile(l.fsys, EncounterFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", EncounterFile, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", EncounterFile, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EncounterFile, err)
	}

	return cfg, nil
}

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Validate checks the invariants the simulation relies on
func (c *EncounterConfig) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena must have a positive size", ErrInvalid)
	case c.Arena.BulletMargin < 0:
		return fmt.Errorf("%w: arena.bulletMargin must not be negative", ErrInvalid)
	case c.Timing.TickRate <= 0:
		return fmt.Errorf("%w: timing.tickRate must be positive", ErrInvalid)
	case c.Timing.MaxTicksPerFrame <= 0:
		return fmt.Errorf("%w: timing.maxTicksPerFrame must be positive", ErrInvalid)
	case c.Player.StartHealth <= 0:
		return fmt.Errorf("%w: player.startHealth must be positive", ErrInvalid)
	case len(c.Player.Weapon.FanAngles) == 0:
		return fmt.Errorf("%w: player.weapon.fanAngles is empty", ErrInvalid)
	case c.Boss.MaxHealth <= 0:
		return fmt.Errorf("%w: boss.maxHealth must be positive", ErrInvalid)
	case !(c.Boss.PhaseThreeHealth < c.Boss.PhaseTwoHealth && c.Boss.PhaseTwoHealth < c.Boss.MaxHealth):
		return fmt.Errorf("%w: boss phase thresholds must satisfy phaseThree < phaseTwo < max", ErrInvalid)
	case c.Boss.PatternSwitchDelay <= 0 || c.Boss.BaseFireRate <= 0:
		return fmt.Errorf("%w: boss pattern timing must be positive", ErrInvalid)
	case c.Hazards.Mine.MinLifeTicks > c.Hazards.Mine.MaxLifeTicks:
		return fmt.Errorf("%w: hazards.mine life range is inverted", ErrInvalid)
	}

	chances := map[string]float64{
		"boss.comboChance":          c.Boss.ComboChance,
		"hazards.strikeLine.chance": c.Hazards.StrikeLine.Chance,
		"hazards.mine.chance":       c.Hazards.Mine.Chance,
		"hazards.orb.chance":        c.Hazards.Orb.Chance,
		"hazards.orb.nudgeChance":   c.Hazards.Orb.NudgeChance,
		"hazards.laserArm.chance":   c.Hazards.LaserArm.Chance,
		"pickups.dropChance":        c.Pickups.DropChance,
	}
	for key, p := range chances {
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: %s must be within [0, 1], got %v", ErrInvalid, key, p)
		}
	}

	caps := map[string]int{
		"hazards.strikeLine.cap": c.Hazards.StrikeLine.Cap,
		"hazards.mine.cap":       c.Hazards.Mine.Cap,
		"hazards.laserArm.cap":   c.Hazards.LaserArm.Cap,
	}
	for key, n := range caps {
		if n <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalid, key)
		}
	}

	return nil
}

// TickSeconds returns the fixed tick duration in seconds
func (t TimingConfig) TickSeconds() float64 {
	return 1.0 / float64(t.TickRate)
}
