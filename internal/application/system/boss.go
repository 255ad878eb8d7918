package system

import (
	"math"
	"math/rand"

	"github.com/younwookim/bossrush/internal/domain/entity"
	"github.com/younwookim/bossrush/internal/domain/geom"
	"github.com/younwookim/bossrush/internal/ecs"
	"github.com/younwookim/bossrush/internal/infrastructure/config"
)

// Movement shape per phase
const (
	phaseTwoAmpScale  = 1.7
	phaseTwoFreqScale = 1.6
	phaseTwoWobble    = 60.0
	phaseTwoWobbleHz  = 0.07
	phaseTwoEase      = 0.08

	phaseThreeWidth     = 0.45 // of arena width
	phaseThreeFreqScale = 1.5
	phaseThreeEaseX     = 0.08
	phaseThreeEaseY     = 0.13

	altitudeMin = 0.08 // of arena height
	altitudeMax = 0.35
)

// Fire pattern shape
const (
	circularBase     = 15
	circularPerPhase = 5
	targetedSpeed    = 1.2
	targetedRate     = 1.5
	fanBullets       = 7
	fanSpread        = math.Pi / 3
	fanSpeed         = 1.5
	fanRate          = 0.8
)

// Hazard placement margins
const (
	hazardInset        = 50.0
	strikeBottomMargin = 40.0
)

// BossController drives boss phases, movement, fire patterns and hazard spawns
type BossController struct {
	config *config.EncounterConfig
	rng    *rand.Rand

	// Event callback
	OnEvent func(Event)
}

// NewBossController creates a boss controller drawing randomness from rng
func NewBossController(cfg *config.EncounterConfig, rng *rand.Rand) *BossController {
	return &BossController{config: cfg, rng: rng}
}

// NewBoss creates the boss at its start position
func (c *BossController) NewBoss(id entity.EntityID) *entity.Boss {
	bc := c.config.Boss
	pos := geom.V(c.config.Arena.Width*bc.StartX, c.config.Arena.Height*bc.StartY)
	b := entity.NewBoss(id, pos, bc.Radius, bc.MaxHealth)
	b.BulletSpeed = c.bulletSpeed(b.Phase)
	b.FireRate = c.fireRate(b.Phase, b.Pattern)
	return b
}

// Update runs the boss step of a tick. It may spawn into w.
func (c *BossController) Update(w *ecs.World, b *entity.Boss, player geom.Vec) {
	c.updatePhase(b)
	c.move(b)

	b.PatternTimer++
	if b.PatternTimer > c.config.Boss.PatternSwitchDelay {
		b.Pattern = b.Pattern.Next()
		b.PatternTimer = 1
	}
	b.FireRate = c.fireRate(b.Phase, b.Pattern)

	b.FireCounter++
	if float64(b.FireCounter) >= b.FireRate {
		c.firePattern(w, b, player)
		b.FireCounter = 0
	}

	switch b.Phase {
	case entity.PhaseTwo:
		c.phaseTwoExtras(w, b, player)
	case entity.PhaseThree:
		c.phaseThreeExtras(w, b, player)
	}

	if b.HitFlash > 0 {
		b.HitFlash--
	}
}

// updatePhase moves the boss to a later phase when health crosses a threshold.
// Phases never go back.
func (c *BossController) updatePhase(b *entity.Boss) {
	bc := c.config.Boss
	next := entity.PhaseFor(b.Health, bc.PhaseTwoHealth, bc.PhaseThreeHealth)
	if next <= b.Phase {
		return
	}

	b.Phase = next
	b.BulletSpeed = c.bulletSpeed(next)
	b.Color = entity.PhaseColor(next)
	b.InitialX = b.Pos.X
	b.WaveTime = 0

	particles, intensity := 30, 12.0
	if next == entity.PhaseThree {
		particles, intensity = 60, 18.0
	}
	c.emit(Event{
		Kind:      EventPhaseTransition,
		Pos:       b.Pos,
		Phase:     next,
		Particles: particles,
		Intensity: intensity,
		Color:     b.Color,
	})
}

func (c *BossController) move(b *entity.Boss) {
	bc := c.config.Boss
	width, height := c.config.Arena.Width, c.config.Arena.Height
	b.WaveTime++
	t := float64(b.WaveTime)

	switch b.Phase {
	case entity.PhaseOne:
		b.Pos.X = b.InitialX + math.Sin(t*bc.Frequency)*bc.Amplitude
		b.Pos.Y = height * bc.StartY
	case entity.PhaseTwo:
		b.Pos.X = b.InitialX +
			math.Sin(t*bc.Frequency*phaseTwoFreqScale)*bc.Amplitude*phaseTwoAmpScale +
			math.Sin(t*phaseTwoWobbleHz)*phaseTwoWobble
		c.retarget(b, 60, 60)
		b.Pos.Y += (b.TargetY - b.Pos.Y) * phaseTwoEase
	default:
		chaos := math.Sin(t*0.13)*60 + math.Sin(t*0.23)*40
		targetX := width/2 + math.Sin(t*bc.Frequency*phaseThreeFreqScale)*width*phaseThreeWidth + chaos
		b.Pos.X += (targetX - b.Pos.X) * phaseThreeEaseX
		c.retarget(b, 40, 40)
		b.Pos.Y += (b.TargetY - b.Pos.Y) * phaseThreeEaseY
	}
}

// retarget picks a new altitude when the vertical timer runs out
func (c *BossController) retarget(b *entity.Boss, base, spread int) {
	if b.VerticalTimer > 0 {
		b.VerticalTimer--
		return
	}
	height := c.config.Arena.Height
	b.TargetY = height*altitudeMin + c.rng.Float64()*height*(altitudeMax-altitudeMin)
	b.VerticalTimer = base + int(c.rng.Float64()*float64(spread))
}

func (c *BossController) bulletSpeed(p entity.Phase) float64 {
	bc := c.config.Boss
	return bc.BaseBulletSpeed * (1 + float64(p-1)*bc.BulletSpeedPerPhase)
}

func (c *BossController) fireRate(p entity.Phase, pattern entity.Pattern) float64 {
	rate := c.config.Boss.BaseFireRate / float64(p)
	switch pattern {
	case entity.PatternTargeted:
		rate *= targetedRate
	case entity.PatternFan:
		rate *= fanRate
	}
	return rate
}

func (c *BossController) firePattern(w *ecs.World, b *entity.Boss, player geom.Vec) {
	switch b.Pattern {
	case entity.PatternCircular:
		c.fireCircular(w, b)
	case entity.PatternTargeted:
		c.fireTargeted(w, b, player)
	case entity.PatternFan:
		c.fireFan(w, b, player)
	}
}

func (c *BossController) fireCircular(w *ecs.World, b *entity.Boss) {
	n := circularBase + circularPerPhase*int(b.Phase)
	for i := 0; i < n; i++ {
		angle := float64(i) / float64(n) * 2 * math.Pi
		c.spawnBullet(w, b, angle, b.BulletSpeed)
	}
}

func (c *BossController) fireTargeted(w *ecs.World, b *entity.Boss, player geom.Vec) {
	c.spawnBullet(w, b, player.Sub(b.Pos).Angle(), b.BulletSpeed*targetedSpeed)

	if b.Phase == entity.PhaseTwo && w.Count(ecs.KindOrb) < c.config.Hazards.Orb.TargetedMaxLive {
		c.spawnOrb(w, b, player)
	}
}

func (c *BossController) fireFan(w *ecs.World, b *entity.Boss, player geom.Vec) {
	center := player.Sub(b.Pos).Angle()
	step := fanSpread / (fanBullets - 1)
	for i := 0; i < fanBullets; i++ {
		offset := float64(i-fanBullets/2) * step
		c.spawnBullet(w, b, center+offset, b.BulletSpeed*fanSpeed)
	}
}

func (c *BossController) spawnBullet(w *ecs.World, b *entity.Boss, angle, speed float64) {
	w.SpawnEnemyBullet(entity.EnemyBullet{
		Pos:    b.Pos,
		Vel:    geom.FromAngle(angle, speed),
		Radius: c.config.Boss.BulletRadius,
		Color:  b.Color,
	})
}

func (c *BossController) spawnOrb(w *ecs.World, b *entity.Boss, player geom.Vec) {
	oc := c.config.Hazards.Orb
	angle := player.Sub(b.Pos).Angle() + (c.rng.Float64()*2-1)*oc.Spread
	w.SpawnOrb(entity.BigOrb{
		Pos:         b.Pos,
		Vel:         geom.FromAngle(angle, oc.Speed),
		Radius:      oc.Radius,
		BaseRadius:  oc.Radius,
		MaxSpeed:    oc.MaxSpeed,
		NudgeChance: oc.NudgeChance,
		Life:        oc.LifeTicks,
		MaxLife:     oc.LifeTicks,
	})
}

func (c *BossController) phaseTwoExtras(w *ecs.World, b *entity.Boss, player geom.Vec) {
	hz := c.config.Hazards
	width, height := c.config.Arena.Width, c.config.Arena.Height

	if c.rng.Float64() < hz.StrikeLine.Chance && w.Count(ecs.KindStrikeLine) < hz.StrikeLine.MaxLive {
		var a, z geom.Vec
		if c.rng.Float64() < 0.5 {
			y := height * (0.12 + c.rng.Float64()*0.2)
			a, z = geom.V(hazardInset, y), geom.V(width-hazardInset, y)
		} else {
			x := width * (0.15 + c.rng.Float64()*0.7)
			a, z = geom.V(x, hazardInset), geom.V(x, height-strikeBottomMargin)
		}
		w.SpawnStrikeLine(entity.StrikeLine{
			A:     a,
			B:     z,
			Timer: entity.NewTimer(hz.StrikeLine.TelegraphTicks, hz.StrikeLine.ActiveTicks),
		})
	}

	if c.rng.Float64() < hz.Mine.Chance && w.Count(ecs.KindMine) < hz.Mine.MaxLive {
		pos := geom.V(
			hazardInset+c.rng.Float64()*(width-2*hazardInset),
			height*(0.45+c.rng.Float64()*0.45),
		)
		life := hz.Mine.MinLifeTicks + int(c.rng.Float64()*float64(hz.Mine.MaxLifeTicks-hz.Mine.MinLifeTicks))
		w.SpawnMine(entity.Mine{Pos: pos, Radius: hz.Mine.Radius, Life: life, MaxLife: life})
	}

	if c.rng.Float64() < hz.Orb.Chance && w.Count(ecs.KindOrb) < hz.Orb.MaxLive {
		c.spawnOrb(w, b, player)
	}
}

func (c *BossController) phaseThreeExtras(w *ecs.World, b *entity.Boss, player geom.Vec) {
	bc := c.config.Boss

	if b.Combo == nil && c.rng.Float64() < bc.ComboChance {
		b.Combo = &entity.Combo{Steps: []entity.ComboStep{entity.ComboFan, entity.ComboBurst}}
	}
	if b.Combo != nil {
		b.Combo.Timer++
		if b.Combo.Timer >= bc.ComboStepDelay {
			switch b.Combo.Steps[b.Combo.Index] {
			case entity.ComboFan:
				c.fireFan(w, b, player)
			case entity.ComboBurst:
				c.fireCircular(w, b)
			}
			b.Combo.Index++
			b.Combo.Timer = 0
			if b.Combo.Done() {
				b.Combo = nil
			}
		}
	}

	la := c.config.Hazards.LaserArm
	if c.rng.Float64() < la.Chance && w.Count(ecs.KindLaserArm) < la.MaxLive {
		reach := math.Max(c.config.Arena.Width, c.config.Arena.Height) * la.ReachFactor
		w.SpawnLaserArm(entity.LaserArm{
			Owner:        b.ID,
			Center:       b.Pos,
			Heading:      player.Sub(b.Pos).Angle(),
			HalfArc:      la.HalfArc,
			AngularSpeed: la.AngularSpeed,
			Reach:        reach,
			Timer:        entity.NewTimer(la.TelegraphTicks, la.ActiveTicks),
		})
	}
}

func (c *BossController) emit(e Event) {
	if c.OnEvent != nil {
		c.OnEvent(e)
	}
}
