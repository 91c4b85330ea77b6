package game

import "github.com/tmolnar/rockfall/internal/geom"

// Projectile is a bullet fired by the craft. It lives for a fixed time and
// is destroyed on expiry or on hitting a rock.
type Projectile struct {
	Pos  geom.Vec2
	Vel  geom.Vec2 // pixels/second
	Age  float64   // seconds since fired
	dead bool
}

// NewProjectile creates a projectile at pos traveling with vel.
func NewProjectile(pos, vel geom.Vec2) *Projectile {
	return &Projectile{Pos: pos, Vel: vel}
}

// Alive reports whether the projectile is still live.
func (p *Projectile) Alive() bool {
	return !p.dead
}

// Kill marks the projectile for removal.
func (p *Projectile) Kill() {
	p.dead = true
}

// Update advances the projectile by dt seconds. Age always advances; once it
// exceeds the lifetime the projectile dies without moving further, so a
// single oversized dt expires it cleanly.
func (p *Projectile) Update(cfg *Config, dt float64) {
	p.Age += dt
	if p.Age > cfg.BulletLifetime {
		p.dead = true
		return
	}
	p.Pos = geom.Wrap(p.Pos.Add(p.Vel.Scale(dt)), cfg.FieldWidth, cfg.FieldHeight)
}
