package system

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/bossrush/internal/domain/entity"
	"github.com/younwookim/bossrush/internal/domain/geom"
	"github.com/younwookim/bossrush/internal/ecs"
	"github.com/younwookim/bossrush/internal/infrastructure/config"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func createTestEncounterConfig() *config.EncounterConfig {
	return config.Default()
}

func createTestWorld(cfg *config.EncounterConfig) *ecs.World {
	return ecs.NewWorld(ecs.Limits{
		Width:         cfg.Arena.Width,
		Height:        cfg.Arena.Height,
		BulletMargin:  cfg.Arena.BulletMargin,
		StrikeLineCap: cfg.Hazards.StrikeLine.Cap,
		MineCap:       cfg.Hazards.Mine.Cap,
		LaserArmCap:   cfg.Hazards.LaserArm.Cap,
	})
}

func TestPlayerController_NewPlayer(t *testing.T) {
	pc := NewPlayerController(createTestEncounterConfig())

	p := pc.NewPlayer()

	assert.Equal(t, geom.V(1200, 1020), p.Pos)
	assert.Equal(t, 3, p.Health)
	assert.Equal(t, 2.0, p.HitboxRadius)
}

func TestPlayerController_Move(t *testing.T) {
	pc := NewPlayerController(createTestEncounterConfig())

	tests := []struct {
		name         string
		start        geom.Vec
		axisX, axisY int
		want         geom.Vec
	}{
		{"idle", geom.V(500, 500), 0, 0, geom.V(500, 500)},
		{"right", geom.V(500, 500), 1, 0, geom.V(510, 500)},
		{"up", geom.V(500, 500), 0, -1, geom.V(500, 490)},
		{"diagonal normalised", geom.V(500, 500), 1, 1, geom.V(500+10/math.Sqrt2, 500+10/math.Sqrt2)},
		{"oversized axis", geom.V(500, 500), 5, 0, geom.V(510, 500)},
		{"clamped left", geom.V(12, 500), -1, 0, geom.V(8, 500)},
		{"clamped bottom", geom.V(500, 1190), 0, 1, geom.V(500, 1192)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pc.NewPlayer()
			p.Pos = tt.start
			pc.Move(p, tt.axisX, tt.axisY)
			assert.InDelta(t, tt.want.X, p.Pos.X, 1e-9)
			assert.InDelta(t, tt.want.Y, p.Pos.Y, 1e-9)
		})
	}
}

func TestPlayerController_StandardWeapon(t *testing.T) {
	cfg := createTestEncounterConfig()
	pc := NewPlayerController(cfg)
	w := createTestWorld(cfg)
	p := pc.NewPlayer()
	stats := &entity.Stats{}

	for i := 0; i < 5; i++ {
		pc.HandleFire(w, p, stats, nil)
	}
	assert.Equal(t, 0, w.Count(ecs.KindPlayerBullet))

	pc.HandleFire(w, p, stats, nil)
	require.Equal(t, 5, w.Count(ecs.KindPlayerBullet))
	assert.Equal(t, 5, stats.ShotsFired)
	assert.Equal(t, 0, p.FireCounter)

	center := w.PlayerBullets[0]
	assert.Equal(t, p.Nose(), center.Pos)
	assert.InDelta(t, 0, center.Vel.X, 1e-9)
	assert.InDelta(t, -15, center.Vel.Y, 1e-9)

	left := w.PlayerBullets[1]
	assert.InDelta(t, math.Sin(-0.18)*15, left.Vel.X, 1e-9)
}

func TestPlayerController_ToggleFire(t *testing.T) {
	cfg := createTestEncounterConfig()
	pc := NewPlayerController(cfg)
	w := createTestWorld(cfg)
	p := pc.NewPlayer()
	stats := &entity.Stats{}

	pc.HandleFire(w, p, stats, []Intent{ToggleFireIntent{}})
	assert.False(t, p.FireEnabled)

	for i := 0; i < 30; i++ {
		pc.HandleFire(w, p, stats, nil)
	}
	assert.Equal(t, 0, w.Count(ecs.KindPlayerBullet), "disabled weapon never fires")

	pc.HandleFire(w, p, stats, []Intent{ToggleFireIntent{}})
	assert.Equal(t, 5, w.Count(ecs.KindPlayerBullet), "counter kept running while disabled")
}

func TestPlayerController_Beam(t *testing.T) {
	cfg := createTestEncounterConfig()
	pc := NewPlayerController(cfg)
	w := createTestWorld(cfg)
	p := pc.NewPlayer()
	p.FireEnabled = false
	stats := &entity.Stats{}

	pc.HandleFire(w, p, stats, []Intent{BeamIntent{}})
	require.NotNil(t, w.Beam)
	assert.Equal(t, p.Pos.X, w.Beam.X)
	assert.Equal(t, 200, w.Beam.Damage)
	assert.Equal(t, 479, p.BeamCooldown)
	assert.Equal(t, 1, stats.BeamsFired)

	first := w.Beam
	pc.HandleFire(w, p, stats, []Intent{BeamIntent{}})
	assert.Same(t, first, w.Beam, "no second beam")
	assert.Equal(t, 1, stats.BeamsFired)

	w.Beam = nil
	pc.HandleFire(w, p, stats, []Intent{BeamIntent{}})
	assert.Nil(t, w.Beam, "still on cooldown")
}

func TestPlayerController_Missiles(t *testing.T) {
	cfg := createTestEncounterConfig()
	pc := NewPlayerController(cfg)
	w := createTestWorld(cfg)
	w.Boss = entity.NewBoss(w.NewEntity(), geom.V(1200, 180), 15, 6000)
	p := pc.NewPlayer()
	p.FireEnabled = false
	stats := &entity.Stats{}

	pc.HandleFire(w, p, stats, []Intent{MissileIntent{}})

	require.Equal(t, 6, w.Count(ecs.KindMissile))
	for i, m := range w.Missiles {
		assert.InDelta(t, p.Pos.X-20+float64(i)*8, m.Pos.X, 1e-9)
		assert.Equal(t, p.Pos.Y-10, m.Pos.Y)
		assert.Equal(t, w.Boss.ID, m.Target)
	}
	assert.Equal(t, 6, stats.MissilesFired)
	assert.Equal(t, 179, p.MissileCooldown)

	pc.HandleFire(w, p, stats, []Intent{MissileIntent{}})
	assert.Equal(t, 6, w.Count(ecs.KindMissile), "on cooldown")
}

func TestPlayerController_Update_CountsImmunityDown(t *testing.T) {
	pc := NewPlayerController(createTestEncounterConfig())
	p := pc.NewPlayer()
	p.TakeHit(2, 2)

	pc.Update(p, MoveIntent{AxisX: 1})
	assert.True(t, p.Invulnerable)
	pc.Update(p, MoveIntent{AxisX: 1})
	assert.False(t, p.Invulnerable)
	assert.Equal(t, 1220.0, p.Pos.X)
}
