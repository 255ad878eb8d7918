package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/bossrush/internal/domain/entity"
	"github.com/younwookim/bossrush/internal/domain/geom"
	"github.com/younwookim/bossrush/internal/ecs"
	"github.com/younwookim/bossrush/internal/infrastructure/config"
)

func createTestBoss(cfg *config.EncounterConfig) (*BossController, *ecs.World, *entity.Boss, *[]Event) {
	bc := NewBossController(cfg, testRNG())
	events := &[]Event{}
	bc.OnEvent = func(e Event) { *events = append(*events, e) }

	w := createTestWorld(cfg)
	b := bc.NewBoss(w.NewEntity())
	w.Boss = b
	return bc, w, b, events
}

func TestBossController_NewBoss(t *testing.T) {
	_, _, b, _ := createTestBoss(createTestEncounterConfig())

	assert.Equal(t, geom.V(1200, 180), b.Pos)
	assert.Equal(t, 6000, b.Health)
	assert.Equal(t, entity.PhaseOne, b.Phase)
	assert.Equal(t, entity.PatternCircular, b.Pattern)
	assert.Equal(t, 9.0, b.BulletSpeed)
	assert.Equal(t, 30.0, b.FireRate)
}

func TestBossController_PatternSchedule(t *testing.T) {
	bc, w, b, _ := createTestBoss(createTestEncounterConfig())
	player := geom.V(1200, 1020)

	want := func(tick int) entity.Pattern {
		switch {
		case tick <= 120:
			return entity.PatternCircular
		case tick <= 240:
			return entity.PatternTargeted
		case tick <= 360:
			return entity.PatternFan
		default:
			return entity.PatternCircular
		}
	}

	for tick := 1; tick <= 400; tick++ {
		bc.Update(w, b, player)
		require.Equal(t, want(tick), b.Pattern, "tick %d", tick)
	}
}

func TestBossController_FireRate(t *testing.T) {
	bc, _, _, _ := createTestBoss(createTestEncounterConfig())

	assert.Equal(t, 30.0, bc.fireRate(entity.PhaseOne, entity.PatternCircular))
	assert.Equal(t, 22.5, bc.fireRate(entity.PhaseTwo, entity.PatternTargeted))
	assert.InDelta(t, 8.0, bc.fireRate(entity.PhaseThree, entity.PatternFan), 1e-9)
}

func TestBossController_CircularVolley(t *testing.T) {
	bc, w, b, _ := createTestBoss(createTestEncounterConfig())
	player := geom.V(1200, 1020)

	for i := 0; i < 29; i++ {
		bc.Update(w, b, player)
	}
	assert.Equal(t, 0, w.Count(ecs.KindEnemyBullet))

	bc.Update(w, b, player)
	require.Equal(t, 20, w.Count(ecs.KindEnemyBullet), "15 + 5 per phase")
	for _, eb := range w.EnemyBullets {
		assert.InDelta(t, 9.0, eb.Vel.Len(), 1e-9)
		assert.Equal(t, entity.ColorDarkRed, eb.Color)
	}
	assert.Equal(t, 0, b.FireCounter)
}

func TestBossController_FanVolley(t *testing.T) {
	bc, w, b, _ := createTestBoss(createTestEncounterConfig())
	player := geom.V(1200, 1020)

	bc.fireFan(w, b, player)

	require.Equal(t, 7, w.Count(ecs.KindEnemyBullet))
	center := w.EnemyBullets[3]
	assert.InDelta(t, player.Sub(b.Pos).Angle(), center.Vel.Angle(), 1e-9)
	assert.InDelta(t, 13.5, center.Vel.Len(), 1e-9)

	spread := w.EnemyBullets[6].Vel.Angle() - w.EnemyBullets[0].Vel.Angle()
	assert.InDelta(t, fanSpread, spread, 1e-9)
}

func TestBossController_TargetedVolley(t *testing.T) {
	cfg := createTestEncounterConfig()
	player := geom.V(1500, 1020)

	t.Run("phase one fires a single aimed bullet", func(t *testing.T) {
		bc, w, b, _ := createTestBoss(cfg)

		bc.fireTargeted(w, b, player)

		require.Equal(t, 1, w.Count(ecs.KindEnemyBullet))
		eb := w.EnemyBullets[0]
		assert.InDelta(t, player.Sub(b.Pos).Angle(), eb.Vel.Angle(), 1e-9)
		assert.InDelta(t, 10.8, eb.Vel.Len(), 1e-9)
		assert.Equal(t, 0, w.Count(ecs.KindOrb), "no orbs outside phase two")
	})

	t.Run("phase two launches orbs while fewer than two are live", func(t *testing.T) {
		bc, w, b, _ := createTestBoss(cfg)
		b.Phase = entity.PhaseTwo
		b.BulletSpeed = bc.bulletSpeed(entity.PhaseTwo)

		bc.fireTargeted(w, b, player)
		assert.Equal(t, 1, w.Count(ecs.KindOrb))
		bc.fireTargeted(w, b, player)
		assert.Equal(t, 2, w.Count(ecs.KindOrb))

		bc.fireTargeted(w, b, player)
		assert.Equal(t, 2, w.Count(ecs.KindOrb), "two live orbs block another")
		assert.Equal(t, 3, w.Count(ecs.KindEnemyBullet), "the bullet still fires")
		for _, eb := range w.EnemyBullets {
			assert.InDelta(t, 12.6*1.2, eb.Vel.Len(), 1e-9)
		}
		for _, o := range w.Orbs {
			assert.Equal(t, b.Pos, o.Pos)
			assert.Equal(t, cfg.Hazards.Orb.LifeTicks, o.Life)
		}
	})

	t.Run("scheduled in the second pattern window", func(t *testing.T) {
		bc, w, b, _ := createTestBoss(cfg)

		for tick := 1; tick <= 120; tick++ {
			bc.Update(w, b, player)
		}
		before := w.Count(ecs.KindEnemyBullet)

		// targeted rate is 45 ticks; the counter restarted on the circular volley at tick 120
		for tick := 121; tick <= 165; tick++ {
			bc.Update(w, b, player)
		}
		require.Equal(t, entity.PatternTargeted, b.Pattern)
		assert.Equal(t, before+1, w.Count(ecs.KindEnemyBullet))
	})
}

func TestBossController_PhaseTransition(t *testing.T) {
	bc, w, b, events := createTestBoss(createTestEncounterConfig())
	player := geom.V(1200, 1020)

	bc.Update(w, b, player)
	x := b.Pos.X
	b.Health = 4000
	bc.Update(w, b, player)

	assert.Equal(t, entity.PhaseTwo, b.Phase)
	assert.InDelta(t, 12.6, b.BulletSpeed, 1e-9)
	assert.Equal(t, entity.ColorDarkOrange, b.Color)
	assert.Equal(t, x, b.InitialX)
	assert.Equal(t, 1, b.WaveTime, "wave timer restarted")

	require.Len(t, *events, 1)
	e := (*events)[0]
	assert.Equal(t, EventPhaseTransition, e.Kind)
	assert.Equal(t, 30, e.Particles)
	assert.Equal(t, 12.0, e.Intensity)

	b.Health = 6000
	bc.Update(w, b, player)
	assert.Equal(t, entity.PhaseTwo, b.Phase, "phase never goes back")
	assert.Len(t, *events, 1)
}

func TestBossController_SkipToPhaseThree(t *testing.T) {
	bc, w, b, events := createTestBoss(createTestEncounterConfig())

	b.Health = 1500
	bc.Update(w, b, geom.V(1200, 1020))

	assert.Equal(t, entity.PhaseThree, b.Phase)
	assert.Equal(t, entity.ColorPurple, b.Color)
	require.Len(t, *events, 1)
	assert.Equal(t, 60, (*events)[0].Particles)
	assert.Equal(t, 18.0, (*events)[0].Intensity)
}

func TestBossController_AltitudeStaysInBand(t *testing.T) {
	cfg := createTestEncounterConfig()
	bc, w, b, _ := createTestBoss(cfg)
	b.Health = 3000

	for i := 0; i < 600; i++ {
		bc.Update(w, b, geom.V(1200, 1020))
		assert.GreaterOrEqual(t, b.TargetY, cfg.Arena.Height*0.08)
		assert.LessOrEqual(t, b.TargetY, cfg.Arena.Height*0.35)
	}
}

func TestBossController_PhaseTwoHazards(t *testing.T) {
	cfg := createTestEncounterConfig()
	cfg.Hazards.StrikeLine.Chance = 1
	cfg.Hazards.Mine.Chance = 1
	cfg.Hazards.Orb.Chance = 1
	bc, w, b, _ := createTestBoss(cfg)
	b.Health = 3000

	for i := 0; i < 20; i++ {
		bc.Update(w, b, geom.V(1200, 1020))
	}

	assert.Equal(t, 2, w.Count(ecs.KindStrikeLine))
	assert.Equal(t, 3, w.Count(ecs.KindMine))
	assert.Equal(t, 3, w.Count(ecs.KindOrb))

	for _, sl := range w.StrikeLines {
		horizontal := sl.A.Y == sl.B.Y
		if horizontal {
			assert.Equal(t, 50.0, sl.A.X)
			assert.Equal(t, 2350.0, sl.B.X)
		} else {
			assert.Equal(t, 50.0, sl.A.Y)
			assert.Equal(t, 1160.0, sl.B.Y)
		}
		assert.True(t, sl.Telegraphing())
	}
	for _, m := range w.Mines {
		assert.GreaterOrEqual(t, m.Life, 180)
		assert.LessOrEqual(t, m.Life, 300)
		assert.GreaterOrEqual(t, m.Pos.Y, 1200*0.45)
	}
}

func TestBossController_Combo(t *testing.T) {
	cfg := createTestEncounterConfig()
	cfg.Boss.ComboChance = 1
	cfg.Boss.BaseFireRate = 1e9
	cfg.Hazards.LaserArm.Chance = 0
	bc, w, b, _ := createTestBoss(cfg)
	b.Health = 1000
	player := geom.V(1200, 1020)

	for i := 0; i < 13; i++ {
		bc.Update(w, b, player)
	}
	assert.Equal(t, 0, w.Count(ecs.KindEnemyBullet))

	bc.Update(w, b, player)
	assert.Equal(t, 7, w.Count(ecs.KindEnemyBullet), "fan step")

	for i := 0; i < 14; i++ {
		bc.Update(w, b, player)
	}
	assert.Equal(t, 7+30, w.Count(ecs.KindEnemyBullet), "burst step")
	assert.Nil(t, b.Combo, "combo ends after its last step")
}

func TestBossController_LaserArms(t *testing.T) {
	cfg := createTestEncounterConfig()
	cfg.Hazards.LaserArm.Chance = 1
	cfg.Boss.ComboChance = 0
	bc, w, b, _ := createTestBoss(cfg)
	b.Health = 1000
	player := geom.V(1200, 1020)

	for i := 0; i < 5; i++ {
		bc.Update(w, b, player)
	}

	require.Equal(t, 2, w.Count(ecs.KindLaserArm))
	arm := w.LaserArms[0]
	assert.Equal(t, b.ID, arm.Owner)
	assert.InDelta(t, 1080.0, arm.Reach, 1e-9)
	assert.True(t, arm.Telegraphing())
}

func TestBossController_HitFlash(t *testing.T) {
	bc, w, b, _ := createTestBoss(createTestEncounterConfig())
	b.TakeDamage(10, 8)

	bc.Update(w, b, geom.V(1200, 1020))
	assert.Equal(t, 7, b.HitFlash)
}
