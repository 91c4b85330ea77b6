// Package input turns a raw terminal byte stream into per-frame boolean
// action flags. Terminals deliver key presses as bytes with auto-repeat, not
// up/down events, so each key's last-seen time is tracked and a key counts
// as held while it was seen within a short window. That lets chords like
// rotate+thrust+fire read as simultaneous flags.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Input is the decoded state for one frame. Any combination of flags may be
// set at once.
type Input struct {
	Quit       bool
	Left       bool
	Right      bool
	Up         bool // thrust in play, selection up in the menu
	Down       bool
	Fire       bool // space
	Hyperspace bool // h
	Enter      bool
	Escape     bool
}

// keyState tracks the last time each key was seen.
type keyState struct {
	quit       time.Time
	left       time.Time
	right      time.Time
	up         time.Time
	down       time.Time
	fire       time.Time
	hyperspace time.Time
	enter      time.Time
	escape     time.Time
}

// Stream delivers input bytes via a channel and tracks key state between
// reads.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and feeds the stream.
// The goroutine exits when the reader does.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all pending bytes without blocking, updates the key state
// and returns the current frame's flags.
func ReadInput(s *Stream) Input {
	now := time.Now()
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequences: ESC [ <code> for arrow keys.
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
				i += 2
				continue
			case 'B':
				s.state.down = now
				i += 2
				continue
			case 'C':
				s.state.right = now
				i += 2
				continue
			case 'D':
				s.state.left = now
				i += 2
				continue
			}
		}

		applyByte(&s.state, b, now)
	}

	return Input{
		Quit:       now.Sub(s.state.quit) < keyHoldDuration,
		Left:       now.Sub(s.state.left) < keyHoldDuration,
		Right:      now.Sub(s.state.right) < keyHoldDuration,
		Up:         now.Sub(s.state.up) < keyHoldDuration,
		Down:       now.Sub(s.state.down) < keyHoldDuration,
		Fire:       now.Sub(s.state.fire) < keyHoldDuration,
		Hyperspace: now.Sub(s.state.hyperspace) < keyHoldDuration,
		Enter:      now.Sub(s.state.enter) < keyHoldDuration,
		Escape:     now.Sub(s.state.escape) < keyHoldDuration,
	}
}

// applyByte records a single key byte.
func applyByte(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		state.quit = now
	case 'a', 'A':
		state.left = now
	case 'd', 'D':
		state.right = now
	case 'w', 'W':
		state.up = now
	case 's', 'S':
		state.down = now
	case 'h', 'H':
		state.hyperspace = now
	case ' ':
		state.fire = now
	case '\n', '\r':
		state.enter = now
	case '\x1b':
		state.escape = now
	}
}
