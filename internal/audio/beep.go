package audio

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// WaveType selects an oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Open initializes the speaker and returns a bank of synthesized sounds.
// If the audio device cannot be opened the returned bank is silent and the
// error says why; the game plays on either way.
func Open() (Bank, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(60*time.Millisecond)); err != nil {
		return NopBank(), err
	}
	return Bank{
		Shoot: newEffect(func() beep.Streamer {
			return tone(WaveSquare, 880, 240, 90*time.Millisecond, 2*time.Millisecond, 40*time.Millisecond)
		}),
		Explode: newEffect(func() beep.Streamer {
			return tone(WaveNoise, 0, 0, 350*time.Millisecond, 5*time.Millisecond, 250*time.Millisecond)
		}),
		Death: newEffect(func() beep.Streamer {
			return tone(WaveSaw, 220, 40, 600*time.Millisecond, 10*time.Millisecond, 300*time.Millisecond)
		}),
		Music: newMusic(),
	}, nil
}

// effect is a one-shot synthesized sound. Each Play builds a fresh streamer
// chain with the current volume baked in, so playback never races SetVolume.
type effect struct {
	mu     sync.Mutex
	volume float64
	make   func() beep.Streamer
}

func newEffect(make func() beep.Streamer) *effect {
	return &effect{volume: 1.0, make: make}
}

func (e *effect) Play() {
	e.mu.Lock()
	vol := e.volume
	e.mu.Unlock()
	if vol <= 0 {
		return
	}
	speaker.Play(&effects.Volume{
		Streamer: e.make(),
		Base:     2,
		Volume:   math.Log2(vol),
	})
}

func (e *effect) SetVolume(v float64) {
	e.mu.Lock()
	e.volume = clampGain(v)
	e.mu.Unlock()
}

// music is the looping background pad. Play starts it once; SetVolume
// adjusts the live stream under the speaker lock.
type music struct {
	vol  *effects.Volume
	once sync.Once
}

func newMusic() *music {
	return &music{
		vol: &effects.Volume{
			Streamer: &pad{},
			Base:     2,
			Volume:   0,
		},
	}
}

func (m *music) Play() {
	m.once.Do(func() {
		speaker.Play(m.vol)
	})
}

func (m *music) SetVolume(v float64) {
	v = clampGain(v)
	speaker.Lock()
	if v <= 0 {
		m.vol.Silent = true
	} else {
		m.vol.Silent = false
		m.vol.Volume = math.Log2(v)
	}
	speaker.Unlock()
}

// toneStreamer renders one oscillator burst with a linear frequency sweep
// and an attack/release envelope.
type toneStreamer struct {
	wave     WaveType
	from, to float64 // Hz at start and end of the burst
	phase    float64
	pos      int
	total    int
	attack   int
	release  int
}

// tone builds a finite streamer: wave shape, frequency sweep from->to over
// dur, with the given attack and release ramps.
func tone(wave WaveType, from, to float64, dur, attack, release time.Duration) beep.Streamer {
	return &toneStreamer{
		wave:    wave,
		from:    from,
		to:      to,
		total:   sampleRate.N(dur),
		attack:  sampleRate.N(attack),
		release: sampleRate.N(release),
	}
}

func (t *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		progress := float64(t.pos) / float64(t.total)
		freq := t.from + (t.to-t.from)*progress

		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			if t.phase < 0.5 {
				val = 0.6
			} else {
				val = -0.6
			}
		case WaveSaw:
			val = 2.0 * (t.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		val *= t.envelope()

		samples[i][0] = val
		samples[i][1] = val

		t.phase += freq / float64(sampleRate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *toneStreamer) Err() error { return nil }

// envelope returns the attack/release gain for the current sample.
func (t *toneStreamer) envelope() float64 {
	if t.attack > 0 && t.pos < t.attack {
		return float64(t.pos) / float64(t.attack)
	}
	if t.release > 0 && t.pos >= t.total-t.release {
		return float64(t.total-t.pos) / float64(t.release)
	}
	return 1.0
}

// pad is an endless two-voice drone with a slow amplitude swell, used as the
// background track. It never returns false, so it loops for the process
// lifetime; the mixer keeps pulling it.
type pad struct {
	pos    int
	phaseA float64
	phaseB float64
}

func (p *pad) Stream(samples [][2]float64) (n int, ok bool) {
	const (
		freqA   = 55.0
		freqB   = 82.41
		swellHz = 0.1
	)
	for i := range samples {
		swell := 0.55 + 0.45*math.Sin(2*math.Pi*swellHz*float64(p.pos)/float64(sampleRate))
		val := 0.18 * swell * (math.Sin(2*math.Pi*p.phaseA) + 0.7*math.Sin(2*math.Pi*p.phaseB))

		samples[i][0] = val
		samples[i][1] = val

		p.phaseA += freqA / float64(sampleRate)
		p.phaseA -= math.Floor(p.phaseA)
		p.phaseB += freqB / float64(sampleRate)
		p.phaseB -= math.Floor(p.phaseB)
		p.pos++
	}
	return len(samples), true
}

func (p *pad) Err() error { return nil }

func clampGain(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
