package game

import (
	"math"
	"math/rand"

	"github.com/tmolnar/rockfall/internal/audio"
	"github.com/tmolnar/rockfall/internal/geom"
)

// Input is the per-frame discrete input snapshot consumed by the session.
// Multiple flags may be set in the same frame.
type Input struct {
	Left       bool
	Right      bool
	Thrust     bool
	Fire       bool
	Hyperspace bool

	// Menu and screen-transition actions.
	Up    bool
	Down  bool
	Enter bool
}

// Craft is the player ship. One instance exists per session; death resets it
// in place rather than replacing it.
type Craft struct {
	Pos       geom.Vec2
	Vel       geom.Vec2
	Angle     float64 // facing in degrees; -90 points up
	Cooldown  float64 // seconds until the next shot is allowed
	Invuln    float64 // seconds of collision protection remaining
	Alive     bool
	Thrusting bool // set each frame, for the renderer's tail flame

	Radius   float64 // collision radius from sprite width
	noseDist float64 // center-to-nose distance, where bullets spawn

	shoot audio.Sound
}

// NewCraft creates the session's craft. The shoot sound is owned by the
// craft because firing is the only place it triggers.
func NewCraft(cfg *Config, shoot audio.Sound) *Craft {
	c := &Craft{
		Radius:   0.5 * cfg.CraftWidth * cfg.CraftCollisionScale,
		noseDist: 0.5 * cfg.CraftHeight * 0.95,
		shoot:    shoot,
	}
	c.Reset(cfg)
	return c
}

// Reset repositions the craft at the field center facing up, at rest, with a
// fresh invulnerability window. Used at session start and after each death.
func (c *Craft) Reset(cfg *Config) {
	c.Pos = geom.Vec2{X: cfg.FieldWidth / 2, Y: cfg.FieldHeight / 2}
	c.Vel = geom.Vec2{}
	c.Angle = -90
	c.Cooldown = 0
	c.Invuln = cfg.InvulnTime
	c.Alive = true
}

// Forward returns the unit vector of the craft's facing.
func (c *Craft) Forward() geom.Vec2 {
	return geom.FromAngle(c.Angle * math.Pi / 180)
}

// NosePos returns the world position of the craft's nose.
func (c *Craft) NosePos() geom.Vec2 {
	return c.Pos.Add(c.Forward().Scale(c.noseDist))
}

// Update advances rotation, thrust and drift physics by dt seconds and ticks
// down the fire and invulnerability timers.
//
// Damping is continuous (vel *= 1-(1-friction)*dt), not a per-frame multiply,
// so the decay rate does not depend on frame rate.
func (c *Craft) Update(cfg *Config, dt float64, in Input) {
	if in.Left {
		c.Angle -= cfg.TurnSpeed * dt
	}
	if in.Right {
		c.Angle += cfg.TurnSpeed * dt
	}

	c.Thrusting = in.Thrust
	if c.Thrusting {
		c.Vel = c.Vel.Add(c.Forward().Scale(cfg.Thrust * dt))
	}

	c.Vel = c.Vel.Scale(1.0 - (1.0-cfg.Friction)*dt)
	c.Pos = geom.Wrap(c.Pos.Add(c.Vel.Scale(dt)), cfg.FieldWidth, cfg.FieldHeight)

	c.Cooldown = math.Max(0, c.Cooldown-dt)
	c.Invuln = math.Max(0, c.Invuln-dt)
}

// Fire returns a new projectile, or nil while the cooldown is running or
// liveBullets has reached the cap. Both gates are silent no-ops. The bullet
// spawns just past the nose and inherits the craft's velocity on top of its
// own muzzle speed.
func (c *Craft) Fire(cfg *Config, liveBullets int) *Projectile {
	if c.Cooldown > 0 || liveBullets >= cfg.MaxBullets {
		return nil
	}
	fwd := c.Forward()
	muzzle := c.NosePos().Add(fwd.Scale(cfg.MuzzleOffset))
	vel := fwd.Scale(cfg.BulletSpeed).Add(c.Vel)

	c.Cooldown = cfg.FireCooldown
	c.shoot.Play()
	return NewProjectile(muzzle, vel)
}

// Hyperspace teleports the craft to a uniformly random field position, kills
// its momentum and grants the short jump protection window. There is no safe
// landing check; jumping into a rock is the player's gamble.
func (c *Craft) Hyperspace(cfg *Config, rng *rand.Rand) {
	c.Pos = geom.Vec2{
		X: rng.Float64() * cfg.FieldWidth,
		Y: rng.Float64() * cfg.FieldHeight,
	}
	c.Vel = geom.Vec2{}
	c.Invuln = cfg.HyperInvulnTime
}
