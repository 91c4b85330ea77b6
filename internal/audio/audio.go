// Package audio provides the sound capability the simulation triggers into.
// The core only ever sees the Sound interface; whether a real speaker is
// behind it is decided here, and a missing audio device degrades to no-ops
// without the game noticing.
package audio

// Sound is a fire-and-forget audio trigger with a volume control.
type Sound interface {
	// Play starts one playback of the sound. Never blocks, never fails.
	Play()
	// SetVolume sets the gain in [0, 1]. Values outside the range are clamped.
	SetVolume(v float64)
}

// NopSound is the stand-in used when audio is unavailable.
type NopSound struct{}

func (NopSound) Play()             {}
func (NopSound) SetVolume(float64) {}

// Bank bundles the sounds the game triggers. Music is a looping track that
// starts on the first Play and only reacts to SetVolume afterwards.
type Bank struct {
	Shoot   Sound
	Explode Sound
	Death   Sound
	Music   Sound
}

// NopBank returns a bank of silent sounds.
func NopBank() Bank {
	return Bank{
		Shoot:   NopSound{},
		Explode: NopSound{},
		Death:   NopSound{},
		Music:   NopSound{},
	}
}
