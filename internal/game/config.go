// Package game implements the simulation core: entity physics, rock
// fragmentation, collision resolution, wave spawning and the session state
// machine. The package has no rendering, input or audio-device knowledge;
// it consumes per-frame input flags and a delta time, and exposes read-only
// snapshots for display.
package game

// Config holds every gameplay tunable. A Config is built once (normally via
// DefaultConfig) and passed into the session; nothing in the package mutates
// it, so sessions with different configs can coexist.
type Config struct {
	// Playfield dimensions in pixels. Positions wrap at these bounds.
	FieldWidth  float64
	FieldHeight float64

	// Projectiles.
	BulletSpeed    float64 // pixels/second, added to craft velocity
	BulletLifetime float64 // seconds before a projectile expires
	BulletRadius   float64 // collision radius; projectiles are near-points
	MaxBullets     int     // concurrent live projectile cap
	FireCooldown   float64 // seconds between shots
	MuzzleOffset   float64 // pixels past the craft nose where bullets spawn

	// Craft.
	TurnSpeed           float64 // degrees/second
	Thrust              float64 // pixels/second^2
	Friction            float64 // continuous damping constant, 1 = frictionless
	CraftCollisionScale float64 // fraction of half sprite width used as radius
	CraftWidth          float64 // craft sprite width in pixels
	CraftHeight         float64 // craft sprite height in pixels
	InvulnTime          float64 // seconds of protection after reset
	HyperInvulnTime     float64 // shorter protection after a hyperspace jump
	InitialLives        int

	// Rocks.
	RockSpeedMin       float64 // pixels/second
	RockSpeedMax       float64
	RockCollisionScale float64 // fraction of scaled half-width used as radius
	FragmentMin        int     // inclusive fragment count range
	FragmentMax        int
	FragmentScale      float64 // child scale = parent scale * FragmentScale
	ScaleMin           float64 // below this a rock is too small to split
	FragmentSpinMax    float64 // fragment spin drawn from [-max, max] deg/s

	// Wave spawning.
	WaveBaseCount    int     // rocks in wave n = WaveBaseCount + n
	SpawnScaleMin    float64 // fresh rock scale range
	SpawnScaleMax    float64
	SpawnSpinMax     float64 // spawn spin drawn from [-max, max] deg/s
	SpawnClearance   float64 // minimum distance from the craft, pixels
	SpawnMaxAttempts int     // rejection sampling cap; last sample wins after

	// Presentation hints exported with snapshots.
	BlinkHz float64 // invulnerability blink frequency

	// Menu.
	VolumeStep float64 // volume slider change per keypress
}

// DefaultConfig returns the shipped game tuning.
func DefaultConfig() Config {
	return Config{
		FieldWidth:  960,
		FieldHeight: 640,

		BulletSpeed:    520.0,
		BulletLifetime: 1.2,
		BulletRadius:   2.0,
		MaxBullets:     5,
		FireCooldown:   0.18,
		MuzzleOffset:   6.0,

		TurnSpeed:           220.0,
		Thrust:              300.0,
		Friction:            0.9,
		CraftCollisionScale: 0.75,
		CraftWidth:          56,
		CraftHeight:         56,
		InvulnTime:          2.0,
		HyperInvulnTime:     0.8,
		InitialLives:        3,

		RockSpeedMin:       60.0,
		RockSpeedMax:       160.0,
		RockCollisionScale: 0.85,
		FragmentMin:        2,
		FragmentMax:        3,
		FragmentScale:      0.6,
		ScaleMin:           0.45,
		FragmentSpinMax:    120.0,

		WaveBaseCount:    3,
		SpawnScaleMin:    0.8,
		SpawnScaleMax:    1.0,
		SpawnSpinMax:     60.0,
		SpawnClearance:   140.0,
		SpawnMaxAttempts: 100,

		BlinkHz: 10.0,

		VolumeStep: 0.05,
	}
}
