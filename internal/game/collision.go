package game

import (
	"math"

	"github.com/tmolnar/rockfall/internal/geom"
)

// resolveCollisions runs the per-frame collision pass after all entities
// have moved: projectile hits first, then craft-versus-rock, then pruning.
func (s *Session) resolveCollisions() {
	s.resolveProjectileHits()
	s.resolveCraftHits()

	s.Bullets = pruneBullets(s.Bullets)
	s.Rocks = pruneRocks(s.Rocks)
}

// resolveProjectileHits matches each live rock, in collection order, against
// the first live projectile overlapping it. Both die on a match and the
// rock's fragments join the field, so a projectile destroys at most one rock
// per frame and a spent projectile is invisible to later rocks.
func (s *Session) resolveProjectileHits() {
	var born []*Rock
	for _, r := range s.Rocks {
		if !r.Alive() {
			continue
		}
		for _, b := range s.Bullets {
			if !b.Alive() {
				continue
			}
			if geom.CirclesOverlap(r.Pos, r.Radius, b.Pos, s.cfg.BulletRadius) {
				s.Score += rockScore(r)
				b.Kill()
				born = append(born, r.Fragment(&s.cfg, s.variants[r.Variant], s.rng)...)
				s.sounds.Explode.Play()
				break
			}
		}
	}
	s.Rocks = append(s.Rocks, born...)
}

// rockScore values a rock by its collision radius, with a floor so even the
// smallest fragment pays out.
func rockScore(r *Rock) int {
	score := int(math.Floor(r.Radius))
	if score < 10 {
		score = 10
	}
	return score
}

// resolveCraftHits checks the craft against every live rock. The whole pass
// is skipped while the invulnerability window runs; the first overlap kills
// the craft and ends the pass. Rocks survive ramming the craft.
func (s *Session) resolveCraftHits() {
	if s.Craft.Invuln > 0 {
		return
	}
	for _, r := range s.Rocks {
		if !r.Alive() {
			continue
		}
		if geom.CirclesOverlap(s.Craft.Pos, s.Craft.Radius, r.Pos, r.Radius) {
			s.killCraft()
			break
		}
	}
}

// killCraft spends a life. When no lives remain the session ends; otherwise
// the craft resets to center, which re-arms its invulnerability and prevents
// an immediate re-death chain.
func (s *Session) killCraft() {
	s.Lives--
	s.sounds.Death.Play()
	if s.Lives < 0 {
		s.Lives = 0
		s.Craft.Alive = false
		s.Phase = PhaseGameOver
		return
	}
	s.Craft.Reset(&s.cfg)
}

func pruneBullets(bullets []*Projectile) []*Projectile {
	kept := bullets[:0]
	for _, b := range bullets {
		if b.Alive() {
			kept = append(kept, b)
		}
	}
	return kept
}

func pruneRocks(rocks []*Rock) []*Rock {
	kept := rocks[:0]
	for _, r := range rocks {
		if r.Alive() {
			kept = append(kept, r)
		}
	}
	return kept
}
