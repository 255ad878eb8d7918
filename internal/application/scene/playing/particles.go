package playing

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/bossrush/internal/domain/geom"
)

const (
	particleLife = 40 // frames
	particleDrag = 0.94
	maxParticles = 600
)

// particle is a purely cosmetic spark; it never touches the simulation
type particle struct {
	pos, vel geom.Vec
	life     int
	color    color.RGBA
}

// burst spawns n sparks around at, moving up to speed px per frame
func (p *Playing) burst(at geom.Vec, n int, speed float64, c color.RGBA) {
	for i := 0; i < n; i++ {
		angle := p.fxRNG.Float64() * 2 * math.Pi
		s := speed * (0.3 + 0.7*p.fxRNG.Float64())
		p.particles = append(p.particles, particle{
			pos:   at,
			vel:   geom.FromAngle(angle, s),
			life:  particleLife,
			color: c,
		})
	}
	if over := len(p.particles) - maxParticles; over > 0 {
		p.particles = append(p.particles[:0], p.particles[over:]...)
	}
}

func (p *Playing) updateParticles() {
	n := 0
	for _, pt := range p.particles {
		pt.life--
		if pt.life <= 0 {
			continue
		}
		pt.pos = pt.pos.Add(pt.vel)
		pt.vel = pt.vel.Scale(particleDrag)
		p.particles[n] = pt
		n++
	}
	p.particles = p.particles[:n]
}

func (p *Playing) drawParticles(screen *ebiten.Image, v view) {
	for _, pt := range p.particles {
		x, y := v.pt(pt.pos)
		c := fade(pt.color, float64(pt.life)/particleLife)
		vector.DrawFilledCircle(screen, x, y, 3, c, true)
	}
}
