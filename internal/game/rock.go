package game

import (
	"math"
	"math/rand"

	"github.com/tmolnar/rockfall/internal/geom"
)

// Rock is a drifting rock body. It integrates position and rotation each
// frame and, when struck, fragments into smaller rocks until too small to
// split. Scale is immutable after construction; fragmentation builds new
// instances instead of shrinking the parent.
type Rock struct {
	Pos      geom.Vec2
	Vel      geom.Vec2 // pixels/second
	Scale    float64   // size multiplier applied to the variant sprite
	Rotation float64   // degrees, kept in [0, 360)
	SpinRate float64   // degrees/second, sign is direction
	Variant  int       // index into the variant table, for rendering
	Radius   float64   // collision radius, derived once from scaled width

	dead bool
}

// NewRock creates a rock from a sprite variant. The collision radius is half
// the scaled sprite width shrunk by the collision-scale constant, computed
// here and never again. Initial rotation is randomized per instance.
func NewRock(cfg *Config, v RockVariant, variant int, pos, vel geom.Vec2, scale, spin float64, rng *rand.Rand) *Rock {
	return &Rock{
		Pos:      pos,
		Vel:      vel,
		Scale:    scale,
		Rotation: rng.Float64() * 360,
		SpinRate: spin,
		Variant:  variant,
		Radius:   0.5 * v.Width * scale * cfg.RockCollisionScale,
	}
}

// Alive reports whether the rock is still live.
func (r *Rock) Alive() bool {
	return !r.dead
}

// Kill marks the rock for removal.
func (r *Rock) Kill() {
	r.dead = true
}

// Update advances position and spin by dt seconds, wrapping both the
// playfield position and the rotation angle.
func (r *Rock) Update(cfg *Config, dt float64) {
	r.Pos = geom.Wrap(r.Pos.Add(r.Vel.Scale(dt)), cfg.FieldWidth, cfg.FieldHeight)
	r.Rotation = math.Mod(r.Rotation+r.SpinRate*dt, 360)
	if r.Rotation < 0 {
		r.Rotation += 360
	}
}

// Fragment destroys the rock and returns its pieces. A rock whose children
// would fall below the minimum scale shatters completely and returns none.
// Each piece keeps the parent's position and variant, inherits the parent's
// velocity plus a randomly directed kick, and spins faster than freshly
// spawned rocks do.
func (r *Rock) Fragment(cfg *Config, v RockVariant, rng *rand.Rand) []*Rock {
	r.dead = true

	childScale := r.Scale * cfg.FragmentScale
	if childScale < cfg.ScaleMin {
		return nil
	}

	count := cfg.FragmentMin + rng.Intn(cfg.FragmentMax-cfg.FragmentMin+1)
	pieces := make([]*Rock, 0, count)
	for i := 0; i < count; i++ {
		ang := rng.Float64() * 2 * math.Pi
		speed := cfg.RockSpeedMin + rng.Float64()*(cfg.RockSpeedMax-cfg.RockSpeedMin)
		kick := geom.FromAngle(ang).Scale(speed)
		spin := (rng.Float64()*2 - 1) * cfg.FragmentSpinMax
		pieces = append(pieces, NewRock(cfg, v, r.Variant, r.Pos, r.Vel.Add(kick), childScale, spin, rng))
	}
	return pieces
}
