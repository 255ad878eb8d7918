package encounter

import (
	"time"

	"github.com/younwookim/bossrush/internal/domain/entity"
)

// Snapshot is a read-only copy of the encounter for renderers and the HUD.
// Mutating it never affects the simulation.
type Snapshot struct {
	Tick    int
	Seed    int64
	Outcome entity.Outcome
	Paused  bool
	Alpha   float64 // fraction of a tick waiting in the stepper

	Player entity.Player
	Boss   entity.Boss

	PlayerBullets []entity.PlayerBullet
	EnemyBullets  []entity.EnemyBullet
	Missiles      []entity.HomingMissile
	Orbs          []entity.BigOrb
	StrikeLines   []entity.StrikeLine
	Mines         []entity.Mine
	LaserArms     []entity.LaserArm
	Pickups       []entity.Pickup
	Beam          *entity.Beam

	Stats           entity.Stats
	Score           int
	BeamCooldown    int
	MissileCooldown int
	Elapsed         time.Duration
}

// Snapshot copies the current state
func (e *Encounter) Snapshot() Snapshot {
	w := e.world
	now := e.clock()

	s := Snapshot{
		Tick:    e.tick,
		Seed:    e.seed,
		Outcome: e.outcome,
		Paused:  e.paused,
		Alpha:   e.stepper.Alpha(),

		Player: *w.Player,
		Boss:   *w.Boss,

		PlayerBullets: values(w.PlayerBullets),
		EnemyBullets:  values(w.EnemyBullets),
		Missiles:      values(w.Missiles),
		Orbs:          values(w.Orbs),
		StrikeLines:   values(w.StrikeLines),
		Mines:         values(w.Mines),
		LaserArms:     values(w.LaserArms),
		Pickups:       values(w.Pickups),

		Stats:           *e.stats,
		Score:           e.stats.Score(weightsFor(e.config), e.outcome == entity.OutcomeVictory, now),
		BeamCooldown:    w.Player.BeamCooldown,
		MissileCooldown: w.Player.MissileCooldown,
		Elapsed:         e.stats.Elapsed(now),
	}

	if w.Boss.Combo != nil {
		combo := *w.Boss.Combo
		combo.Steps = append([]entity.ComboStep(nil), combo.Steps...)
		s.Boss.Combo = &combo
	}
	if w.Beam != nil {
		beam := *w.Beam
		s.Beam = &beam
	}
	return s
}

func values[T any](items []*T) []T {
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = *it
	}
	return out
}
