// Package loop runs the interactive game: it pumps terminal input into the
// simulation one frame at a time and renders the result.
package loop

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"github.com/tmolnar/rockfall/internal/audio"
	"github.com/tmolnar/rockfall/internal/draw"
	"github.com/tmolnar/rockfall/internal/game"
	"github.com/tmolnar/rockfall/internal/input"
)

const targetFPS = 60
const targetFrameTime = time.Second / targetFPS

// Options configures a game run.
type Options struct {
	// TermSize reports terminal dimensions; defaults to reading stdout.
	TermSize draw.TermSizeFunc
	// Sounds is the audio bank; a zero value plays silently.
	Sounds *audio.Bank
}

// Run drives the standard input -> advance -> draw cycle until the player
// quits or the input stream closes.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	sizeFunc := opts.TermSize
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}
	sounds := audio.NopBank()
	if opts.Sounds != nil {
		sounds = *opts.Sounds
	}

	cfg := game.DefaultConfig()
	session := game.NewSession(cfg, game.DefaultVariants(), sounds,
		rand.New(rand.NewSource(time.Now().UnixNano())))

	stream := input.StartStream(r)
	out := bufio.NewWriterSize(w, 1<<15)

	draw.HideCursor(out)
	defer func() {
		draw.ClearScreen(out)
		draw.ShowCursor(out)
		out.Flush()
	}()

	termW, termH, err := sizeFunc()
	if err != nil {
		return err
	}
	canvas := draw.NewCanvas(termW, termH, cfg.FieldWidth, cfg.FieldHeight)

	lastTime := time.Now()
	for {
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart

		in := input.ReadInput(stream)
		if in.Quit {
			return nil
		}

		session.Advance(dt, game.Input{
			Left:       in.Left,
			Right:      in.Right,
			Thrust:     in.Up,
			Fire:       in.Fire,
			Hyperspace: in.Hyperspace,
			Up:         in.Up,
			Down:       in.Down,
			Enter:      in.Enter,
		})

		// Track terminal resizes.
		if tw, th, err := sizeFunc(); err == nil {
			canvas.Resize(tw, th)
		}

		if err := drawFrame(session, canvas, out); err != nil {
			return err
		}
		if err := out.Flush(); err != nil {
			return err
		}

		if elapsed := time.Since(frameStart); elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}
}
