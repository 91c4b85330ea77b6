package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

// feed builds a stream whose channel already holds the given bytes and is
// closed, so ReadInput drains deterministically without a reader goroutine.
func feed(bytes ...byte) *Stream {
	s := &Stream{ch: make(chan byte, len(bytes))}
	for _, b := range bytes {
		s.ch <- b
	}
	close(s.ch)
	return s
}

func TestReadInputLetterKeys(t *testing.T) {
	tests := []struct {
		name string
		b    byte
		get  func(Input) bool
	}{
		{"left", 'a', func(in Input) bool { return in.Left }},
		{"right", 'd', func(in Input) bool { return in.Right }},
		{"up", 'w', func(in Input) bool { return in.Up }},
		{"down", 's', func(in Input) bool { return in.Down }},
		{"fire", ' ', func(in Input) bool { return in.Fire }},
		{"hyperspace", 'h', func(in Input) bool { return in.Hyperspace }},
		{"enter", '\r', func(in Input) bool { return in.Enter }},
		{"quit", 'q', func(in Input) bool { return in.Quit }},
		{"upper case", 'D', func(in Input) bool { return in.Right }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := ReadInput(feed(tt.b))
			if !tt.get(in) {
				t.Errorf("byte %q did not set its flag: %+v", tt.b, in)
			}
		})
	}
}

func TestReadInputChord(t *testing.T) {
	in := ReadInput(feed('a', 'w', ' '))
	if !in.Left || !in.Up || !in.Fire {
		t.Errorf("chord lost flags: %+v", in)
	}
	if in.Right || in.Quit {
		t.Errorf("chord set unrelated flags: %+v", in)
	}
}

func TestReadInputArrowSequences(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		get  func(Input) bool
	}{
		{"arrow up", "\x1b[A", func(in Input) bool { return in.Up }},
		{"arrow down", "\x1b[B", func(in Input) bool { return in.Down }},
		{"arrow right", "\x1b[C", func(in Input) bool { return in.Right }},
		{"arrow left", "\x1b[D", func(in Input) bool { return in.Left }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := ReadInput(feed([]byte(tt.seq)...))
			if !tt.get(in) {
				t.Errorf("sequence %q did not set its flag: %+v", tt.seq, in)
			}
			if in.Escape {
				t.Error("arrow sequence leaked an escape press")
			}
		})
	}
}

func TestReadInputBareEscape(t *testing.T) {
	in := ReadInput(feed('\x1b'))
	if !in.Escape {
		t.Error("bare escape byte not recognized")
	}
}

func TestHoldWindowExpires(t *testing.T) {
	s := feed('a')
	if in := ReadInput(s); !in.Left {
		t.Fatal("key press not registered")
	}
	time.Sleep(keyHoldDuration + 10*time.Millisecond)
	if in := ReadInput(s); in.Left {
		t.Error("key still held after the hold window elapsed")
	}
}

func TestHoldPersistsWithinWindow(t *testing.T) {
	s := feed('a')
	ReadInput(s)
	// No sleep: the immediately following frame still sees the key.
	if in := ReadInput(s); !in.Left {
		t.Error("key released before the hold window elapsed")
	}
}

func TestEmptyStream(t *testing.T) {
	if in := ReadInput(feed()); in != (Input{}) {
		t.Errorf("flags set with no input: %+v", in)
	}
}

func TestStartStreamDeliversBytes(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("a")))

	deadline := time.After(time.Second)
	for {
		if in := ReadInput(s); in.Left {
			return
		}
		select {
		case <-deadline:
			t.Fatal("byte never arrived from the reader goroutine")
		case <-time.After(time.Millisecond):
		}
	}
}
