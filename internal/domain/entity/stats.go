package entity

import (
	"math"
	"time"
)

// ScoreWeights are the displayed point values used by Stats.Score
type ScoreWeights struct {
	BulletHit      int
	MissileHit     int
	BeamHit        int
	HitPenalty     int
	TimeBonusStart int
	TimeBonusDecay int // per whole second
	VictoryBonus   int
}

// Stats records what happened during one encounter
type Stats struct {
	ShotsFired    int
	MissilesFired int
	BeamsFired    int

	BulletHits  int
	MissileHits int
	BeamHits    int
	HitsTaken   int

	Start time.Time
	End   time.Time // zero until the encounter resolves
}

// NewStats starts a ledger at start
func NewStats(start time.Time) *Stats {
	return &Stats{Start: start}
}

// Finish freezes the elapsed time. Later calls are ignored.
func (s *Stats) Finish(end time.Time) {
	if s.End.IsZero() {
		s.End = end
	}
}

// Elapsed returns wall time since Start, frozen at End once set
func (s *Stats) Elapsed(now time.Time) time.Duration {
	if s.Start.IsZero() {
		return 0
	}
	end := now
	if !s.End.IsZero() {
		end = s.End
	}
	if end.Before(s.Start) {
		return 0
	}
	return end.Sub(s.Start)
}

// BossHits returns the total number of hits landed on the boss
func (s *Stats) BossHits() int {
	return s.BulletHits + s.MissileHits + s.BeamHits
}

// Accuracy returns boss hits per projectile fired in [0, 1]
func (s *Stats) Accuracy() float64 {
	fired := s.ShotsFired + s.MissilesFired + s.BeamsFired
	if fired == 0 {
		return 0
	}
	return math.Min(1, float64(s.BossHits())/float64(fired))
}

// Score returns the displayed score, never negative.
// A victory adds a time bonus that shrinks each whole second, plus a flat bonus.
func (s *Stats) Score(w ScoreWeights, victory bool, now time.Time) int {
	score := s.BulletHits*w.BulletHit +
		s.MissileHits*w.MissileHit +
		s.BeamHits*w.BeamHit -
		s.HitsTaken*w.HitPenalty

	if victory {
		secs := int(math.Floor(s.Elapsed(now).Seconds()))
		bonus := w.TimeBonusStart - w.TimeBonusDecay*secs
		if bonus < 0 {
			bonus = 0
		}
		score += bonus + w.VictoryBonus
	}

	if score < 0 {
		return 0
	}
	return score
}
