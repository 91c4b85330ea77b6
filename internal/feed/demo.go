package feed

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/tmolnar/rockfall/internal/audio"
	"github.com/tmolnar/rockfall/internal/game"
)

const demoTickRate = 30
const demoTickTime = time.Second / demoTickRate

// RunDemo drives an attract-mode session and broadcasts it to the feed until
// the context is cancelled. The pilot is scripted: it starts games, weaves,
// thrusts in bursts and fires continuously, which keeps the field lively for
// spectators without any real input.
func RunDemo(ctx context.Context, f *Feed) {
	session := game.NewSession(game.DefaultConfig(), game.DefaultVariants(), audio.NopBank(),
		rand.New(rand.NewSource(time.Now().UnixNano())))

	ticker := time.NewTicker(demoTickTime)
	defer ticker.Stop()

	elapsed := 0.0
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			elapsed += dt

			session.Advance(dt, demoInput(session, elapsed))
			f.Broadcast(session.Snapshot())
		}
	}
}

// demoInput scripts the attract-mode pilot for the given session time.
func demoInput(s *game.Session, elapsed float64) game.Input {
	if s.Phase != game.PhasePlaying {
		return game.Input{Enter: true}
	}

	// Slow sinusoidal weave, thrust in bursts, trigger held down.
	weave := math.Sin(elapsed * 0.7)
	return game.Input{
		Left:   weave < -0.3,
		Right:  weave > 0.3,
		Thrust: math.Mod(elapsed, 2.5) < 0.9,
		Fire:   true,
	}
}
