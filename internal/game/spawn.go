package game

import (
	"math"
	"math/rand"

	"github.com/tmolnar/rockfall/internal/geom"
)

// rollWave builds the rocks for one wave: WaveBaseCount + wave of them, each
// with a random sprite variant, a spawn-range scale, and a position kept
// clear of the craft. Placement uses rejection sampling with a hard attempt
// cap; if the cap runs out the last sample is used, so the loop always
// terminates even on a pathologically small field.
func rollWave(cfg *Config, variants []RockVariant, avoid geom.Vec2, wave int, rng *rand.Rand) []*Rock {
	count := cfg.WaveBaseCount + wave
	rocks := make([]*Rock, 0, count)

	for i := 0; i < count; i++ {
		variant := rng.Intn(len(variants))
		v := variants[variant]
		scale := cfg.SpawnScaleMin + rng.Float64()*(cfg.SpawnScaleMax-cfg.SpawnScaleMin)
		radius := 0.5 * v.Width * scale * cfg.RockCollisionScale

		var pos geom.Vec2
		for attempt := 0; attempt < cfg.SpawnMaxAttempts; attempt++ {
			pos = geom.Vec2{
				X: rng.Float64() * cfg.FieldWidth,
				Y: rng.Float64() * cfg.FieldHeight,
			}
			if !geom.CirclesOverlap(pos, radius, avoid, cfg.SpawnClearance) {
				break
			}
		}

		ang := rng.Float64() * 2 * math.Pi
		speed := cfg.RockSpeedMin + rng.Float64()*(cfg.RockSpeedMax-cfg.RockSpeedMin)
		vel := geom.FromAngle(ang).Scale(speed)
		spin := (rng.Float64()*2 - 1) * cfg.SpawnSpinMax

		rocks = append(rocks, NewRock(cfg, v, variant, pos, vel, scale, spin, rng))
	}
	return rocks
}
