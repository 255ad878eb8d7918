package playing

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/bossrush/internal/application/encounter"
	"github.com/younwookim/bossrush/internal/domain/entity"
	"golang.org/x/image/colornames"
)

const (
	hudScale    = 2.5
	titleScale  = 6.0
	lineSpacing = 16 // unscaled pixels
	controls    = "WASD/Arrows: Move | Y: Toggle fire | I: Beam | U: Missiles | P/Esc: Pause"
)

func (p *Playing) drawText(screen *ebiten.Image, s string, x, y, scale float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = lineSpacing
	text.Draw(screen, s, p.face, op)
}

// drawCentered draws s centered horizontally on the screen
func (p *Playing) drawCentered(screen *ebiten.Image, s string, y, scale float64, c color.Color) {
	w, _ := text.Measure(longestLine(s), p.face, lineSpacing)
	p.drawText(screen, s, (float64(p.screenW)-w*scale)/2, y, scale, c)
}

func longestLine(s string) string {
	longest := ""
	for _, line := range strings.Split(s, "\n") {
		if len(line) > len(longest) {
			longest = line
		}
	}
	return longest
}

func (p *Playing) drawHUD(screen *ebiten.Image, s *encounter.Snapshot) {
	// Boss health bar
	barX, barY := 40.0, 20.0
	barW, barH := float64(p.screenW)-80, 16.0
	vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barW), float32(barH), colorHealthBG, false)
	vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barW*s.Boss.HealthFraction()), float32(barH), colorFor(s.Boss.Color), false)
	p.drawText(screen, fmt.Sprintf("BOSS  %d / %d  PHASE %d", s.Boss.Health/entity.ScaleFactor, s.Boss.MaxHealth/entity.ScaleFactor, s.Boss.Phase),
		barX, barY+barH+6, hudScale, colornames.White)

	// Player status, bottom left
	y := float64(p.screenH) - 150
	for i := 0; i < s.Player.Health; i++ {
		vector.DrawFilledCircle(screen, float32(50+i*30), float32(y), 10, colorHealthFG, true)
	}
	tick := p.encounter.Config().Timing.TickSeconds()
	fire := "ON"
	if !s.Player.FireEnabled {
		fire = "OFF"
	}
	status := fmt.Sprintf("SCORE %d\nTIME  %s\nFIRE  %s\nBEAM  %s\nMSL   %s",
		s.Score, formatElapsed(s.Elapsed), fire, cooldownLabel(s.BeamCooldown, tick), cooldownLabel(s.MissileCooldown, tick))
	p.drawText(screen, status, 40, y+20, hudScale, colornames.White)

	p.drawText(screen, controls, float64(p.screenW)-float64(len(controls))*7*hudScale-40, float64(p.screenH)-50, hudScale, colornames.Gray)
}

func cooldownLabel(ticks int, tickSeconds float64) string {
	if ticks <= 0 {
		return "READY"
	}
	return fmt.Sprintf("%.1fs", float64(ticks)*tickSeconds)
}

func formatElapsed(d time.Duration) string {
	d = d.Truncate(100 * time.Millisecond)
	m := int(d / time.Minute)
	s := (d % time.Minute).Seconds()
	return fmt.Sprintf("%d:%04.1f", m, s)
}

// drawBanner shows the latest phase announcement, fading out
func (p *Playing) drawBanner(screen *ebiten.Image) {
	if p.bannerTTL <= 0 {
		return
	}
	alpha := float64(p.bannerTTL) / bannerFrames
	p.drawCentered(screen, p.banner, float64(p.screenH)/3, titleScale, fade(colornames.White, alpha))
}

func (p *Playing) dim(screen *ebiten.Image, c color.RGBA) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), c, false)
}

func (p *Playing) drawReadyOverlay(screen *ebiten.Image) {
	p.dim(screen, color.RGBA{0, 0, 0, 128})
	p.drawCentered(screen, "BOSS RUSH", float64(p.screenH)/2-140, titleScale, colornames.White)
	p.drawCentered(screen, "Press SPACE to start", float64(p.screenH)/2, hudScale*1.5, colornames.Lightgrey)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	// Semi-transparent overlay
	p.dim(screen, color.RGBA{0, 0, 0, 128})
	p.drawCentered(screen, "PAUSED", float64(p.screenH)/2-100, titleScale, colornames.White)
	p.drawCentered(screen, "Press P or ESC to resume", float64(p.screenH)/2+20, hudScale*1.5, colornames.Lightgrey)
}

func (p *Playing) drawResultOverlay(screen *ebiten.Image, s *encounter.Snapshot) {
	title, tint := "VICTORY", color.RGBA{0, 40, 0, 180}
	if s.Outcome == entity.OutcomeDefeat {
		title, tint = "DEFEAT", color.RGBA{100, 0, 0, 180}
	}
	p.dim(screen, tint)
	p.drawCentered(screen, title, float64(p.screenH)/2-300, titleScale, colornames.White)
	p.drawCentered(screen, resultLines(s), float64(p.screenH)/2-150, hudScale*1.2, colornames.White)
	p.drawCentered(screen, "Press SPACE to fight again", float64(p.screenH)/2+260, hudScale*1.5, colornames.Lightgrey)
}

// resultLines formats the stats screen
func resultLines(s *encounter.Snapshot) string {
	st := s.Stats
	lines := []string{
		fmt.Sprintf("Time          %s", formatElapsed(s.Elapsed)),
		fmt.Sprintf("Shots fired   %d", st.ShotsFired),
		fmt.Sprintf("Missiles      %d", st.MissilesFired),
		fmt.Sprintf("Beams         %d", st.BeamsFired),
		fmt.Sprintf("Bullet hits   %d", st.BulletHits),
		fmt.Sprintf("Missile hits  %d", st.MissileHits),
		fmt.Sprintf("Beam hits     %d", st.BeamHits),
		fmt.Sprintf("Hits taken    %d", st.HitsTaken),
		fmt.Sprintf("Accuracy      %.1f%%", st.Accuracy()*100),
		fmt.Sprintf("Score         %d", s.Score),
		fmt.Sprintf("Seed          %d", s.Seed),
	}
	return strings.Join(lines, "\n")
}
