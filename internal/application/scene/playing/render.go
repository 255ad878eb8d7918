package playing

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/bossrush/internal/application/encounter"
	"github.com/younwookim/bossrush/internal/domain/entity"
	"github.com/younwookim/bossrush/internal/domain/geom"
	"golang.org/x/image/colornames"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{12, 12, 24, 255}
	colorPlayer     = colornames.Deepskyblue
	colorHitbox     = colornames.Red
	colorShot       = colornames.Gold
	colorMissile    = colornames.Lightcoral
	colorBeam       = colornames.Cyan
	colorPickup     = colornames.Limegreen
	colorTelegraph  = colornames.Lightgrey
	colorStrike     = colornames.Red
	colorLaser      = colornames.Violet
	colorSpark      = colornames.White
	colorPlayerHit  = colornames.Tomato
	colorHealthBG   = color.RGBA{60, 60, 60, 255}
	colorHealthFG   = colornames.Limegreen
	colorBossHealth = colornames.Crimson
)

// colorFor resolves a simulation color tag to a palette color
func colorFor(tag entity.ColorTag) color.RGBA {
	if c, ok := colornames.Map[string(tag)]; ok {
		return c
	}
	return colornames.White
}

// fade scales a color by alpha in [0, 1], premultiplied
func fade(c color.RGBA, alpha float64) color.RGBA {
	alpha = geom.Clamp(alpha, 0, 1)
	return color.RGBA{
		uint8(float64(c.R) * alpha),
		uint8(float64(c.G) * alpha),
		uint8(float64(c.B) * alpha),
		uint8(float64(c.A) * alpha),
	}
}

// view maps arena coordinates to the screen, with screen shake
type view struct {
	dx, dy float64
}

func (v view) pt(p geom.Vec) (float32, float32) {
	return float32(p.X + v.dx), float32(p.Y + v.dy)
}

// lead returns how far into the next tick moving shots are drawn.
// Frozen frames draw the simulated positions.
func lead(s *encounter.Snapshot) float64 {
	if s.Paused || s.Outcome != entity.OutcomeInProgress {
		return 0
	}
	return s.Alpha
}

// ahead extrapolates pos along vel by a fraction of a tick
func ahead(pos, vel geom.Vec, alpha float64) geom.Vec {
	return pos.Add(vel.Scale(alpha))
}

func (p *Playing) drawWorld(screen *ebiten.Image, v view, s *encounter.Snapshot) {
	alpha := lead(s)

	p.drawBeam(screen, v, s)
	p.drawStrikeLines(screen, v, s.StrikeLines)
	p.drawLaserArms(screen, v, s.LaserArms)

	for _, m := range s.Mines {
		x, y := v.pt(m.Pos)
		// blink faster as the fuse runs down
		pulse := 0.6 + 0.4*math.Sin(float64(m.Age)*(0.1+0.4*(1-m.LifeFraction())))
		vector.DrawFilledCircle(screen, x, y, float32(m.Radius), fade(colorFor(entity.ColorOrange), pulse), true)
		vector.StrokeCircle(screen, x, y, float32(m.Radius+4), 2, colorFor(entity.ColorOrange), true)
	}
	for _, o := range s.Orbs {
		x, y := v.pt(o.Pos)
		vector.DrawFilledCircle(screen, x, y, float32(o.Radius), fade(colorFor(entity.ColorMagenta), 0.35+0.4*o.LifeFraction()), true)
		vector.StrokeCircle(screen, x, y, float32(o.Radius), 2, colorFor(entity.ColorMagenta), true)
	}
	for _, pk := range s.Pickups {
		p.drawPickup(screen, v, pk)
	}
	for _, b := range s.PlayerBullets {
		x, y := v.pt(ahead(b.Pos, b.Vel, alpha))
		vector.DrawFilledCircle(screen, x, y, float32(b.Radius), colorShot, true)
	}
	for _, m := range s.Missiles {
		head := ahead(m.Pos, m.Vel, alpha)
		tail := head.Sub(m.Vel.Norm().Scale(12))
		x0, y0 := v.pt(tail)
		x1, y1 := v.pt(head)
		vector.StrokeLine(screen, x0, y0, x1, y1, 3, colorMissile, true)
	}
	for _, b := range s.EnemyBullets {
		x, y := v.pt(ahead(b.Pos, b.Vel, alpha))
		vector.DrawFilledCircle(screen, x, y, float32(b.Radius), colorFor(b.Color), true)
	}

	if s.Boss.IsAlive() {
		p.drawBoss(screen, v, &s.Boss)
	}
	p.drawPlayer(screen, v, s)
}

func (p *Playing) drawBeam(screen *ebiten.Image, v view, s *encounter.Snapshot) {
	if s.Beam == nil {
		return
	}
	b := s.Beam
	x, _ := v.pt(geom.V(b.X-b.Width/2, 0))
	_, bottom := v.pt(s.Player.Pos)
	alpha := 0.3 + 0.7*b.LifeFraction()
	vector.DrawFilledRect(screen, x, 0, float32(b.Width), bottom, fade(colorBeam, alpha), true)
	vector.DrawFilledRect(screen, x+float32(b.Width)/3, 0, float32(b.Width)/3, bottom, fade(colorSpark, alpha), true)
}

func (p *Playing) drawStrikeLines(screen *ebiten.Image, v view, lines []entity.StrikeLine) {
	for _, sl := range lines {
		if sl.Telegraphing() {
			drawDashed(screen, v, sl.A, sl.B, 2, fade(colorTelegraph, 0.3+0.7*sl.LifeFraction()))
			continue
		}
		x0, y0 := v.pt(sl.A)
		x1, y1 := v.pt(sl.B)
		vector.StrokeLine(screen, x0, y0, x1, y1, 8, fade(colorStrike, 0.4+0.6*sl.LifeFraction()), true)
	}
}

func (p *Playing) drawLaserArms(screen *ebiten.Image, v view, arms []entity.LaserArm) {
	for _, la := range arms {
		left := la.Heading - la.HalfArc
		right := la.Heading + la.HalfArc
		edgeL := la.Center.Add(geom.FromAngle(left, la.Reach))
		edgeR := la.Center.Add(geom.FromAngle(right, la.Reach))

		if la.Telegraphing() {
			c := fade(colorTelegraph, 0.3+0.7*la.LifeFraction())
			drawDashed(screen, v, la.Center, edgeL, 2, c)
			drawDashed(screen, v, la.Center, edgeR, 2, c)
			drawArc(screen, v, la.Center, la.Reach, left, right, 2, c)
			continue
		}

		c := fade(colorLaser, 0.25+0.5*la.LifeFraction())
		cx, cy := v.pt(la.Center)
		const rays = 24
		for i := 0; i <= rays; i++ {
			a := left + (right-left)*float64(i)/rays
			x, y := v.pt(la.Center.Add(geom.FromAngle(a, la.Reach)))
			vector.StrokeLine(screen, cx, cy, x, y, 4, c, true)
		}
		drawArc(screen, v, la.Center, la.Reach, left, right, 3, colorLaser)
	}
}

func (p *Playing) drawPickup(screen *ebiten.Image, v view, pk entity.Pickup) {
	x, y := v.pt(pk.Pos)
	r := float32(pk.Radius)
	c := colorPickup
	// blink out during the last quarter of life
	if pk.LifeFraction() < 0.25 && (pk.Life/6)%2 == 0 {
		c = fade(c, 0.3)
	}
	vector.StrokeCircle(screen, x, y, r, 2, c, true)
	vector.StrokeLine(screen, x-r/2, y, x+r/2, y, 3, c, true)
	vector.StrokeLine(screen, x, y-r/2, x, y+r/2, 3, c, true)
}

func (p *Playing) drawBoss(screen *ebiten.Image, v view, b *entity.Boss) {
	x, y := v.pt(b.Pos)
	c := colorFor(b.Color)
	if b.HitFlash > 0 {
		c = colorSpark
	}
	vector.DrawFilledCircle(screen, x, y, float32(b.Radius), c, true)

	ring := b.Radius + 10
	vector.StrokeCircle(screen, x, y, float32(ring), 2, colorHealthBG, true)
	frac := b.HealthFraction()
	if frac > 0 {
		start := -math.Pi / 2
		drawArc(screen, v, b.Pos, ring, start, start+2*math.Pi*frac, 4, colorBossHealth)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, v view, s *encounter.Snapshot) {
	pl := &s.Player
	x, y := v.pt(pl.Pos)

	// Flash when invulnerable
	visible := !pl.Invulnerable || (s.Tick/4)%2 == 0
	if visible {
		vector.DrawFilledCircle(screen, x, y, float32(pl.Radius), colorPlayer, true)
	}
	if pl.HitEffectTimer > 0 {
		glow := float64(pl.HitEffectTimer) / float64(p.encounter.Config().Player.HitEffectTicks)
		vector.StrokeCircle(screen, x, y, float32(pl.Radius)+6, 2, fade(colorPlayerHit, glow), true)
	}
	vector.DrawFilledCircle(screen, x, y, float32(pl.HitboxRadius), colorHitbox, true)
}

// drawDashed strokes a dashed segment from a to b
func drawDashed(screen *ebiten.Image, v view, a, b geom.Vec, width float32, c color.Color) {
	for _, seg := range dashes(a, b, 18, 12) {
		x0, y0 := v.pt(seg[0])
		x1, y1 := v.pt(seg[1])
		vector.StrokeLine(screen, x0, y0, x1, y1, width, c, true)
	}
}

// dashes splits a..b into dash segments of length on separated by gaps of length off
func dashes(a, b geom.Vec, on, off float64) [][2]geom.Vec {
	d := b.Sub(a)
	total := d.Len()
	if total == 0 || on <= 0 {
		return nil
	}
	dir := d.Scale(1 / total)

	var segs [][2]geom.Vec
	for t := 0.0; t < total; t += on + off {
		end := math.Min(t+on, total)
		segs = append(segs, [2]geom.Vec{a.Add(dir.Scale(t)), a.Add(dir.Scale(end))})
	}
	return segs
}

// drawArc strokes an arc of radius r around center from angle a0 to a1
func drawArc(screen *ebiten.Image, v view, center geom.Vec, r, a0, a1 float64, width float32, c color.Color) {
	steps := int(math.Ceil(math.Abs(a1-a0) / 0.05))
	if steps < 1 {
		steps = 1
	}
	prev := center.Add(geom.FromAngle(a0, r))
	for i := 1; i <= steps; i++ {
		next := center.Add(geom.FromAngle(a0+(a1-a0)*float64(i)/float64(steps), r))
		x0, y0 := v.pt(prev)
		x1, y1 := v.pt(next)
		vector.StrokeLine(screen, x0, y0, x1, y1, width, c, true)
		prev = next
	}
}
