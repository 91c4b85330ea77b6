package game

import (
	"math/rand"

	"github.com/tmolnar/rockfall/internal/audio"
)

// Phase is the session's top-level state.
type Phase int

const (
	PhaseMenu     Phase = iota // title screen with volume sliders
	PhasePlaying               // active simulation
	PhaseGameOver              // lives exhausted, waiting for restart
)

// Menu slider indices.
const (
	MenuMusicVolume = iota
	MenuSFXVolume
	menuItemCount
)

// Session owns one complete game: the craft, all live rocks and projectiles,
// score/lives/wave counters and the phase machine driving them. It advances
// exactly one frame per Advance call and is not safe for concurrent use;
// callers that share a session across goroutines must serialize access.
type Session struct {
	cfg      Config
	variants []RockVariant
	sounds   audio.Bank
	rng      *rand.Rand

	Craft   *Craft
	Rocks   []*Rock
	Bullets []*Projectile

	Score int
	Lives int
	Wave  int
	Phase Phase

	// Menu state.
	MenuIndex   int
	MusicVolume float64
	SFXVolume   float64

	musicStarted bool
}

// NewSession creates a session in the menu phase. The rng is the single
// random source for placement, fragmentation kicks and spins; sounds may be
// a NopBank.
func NewSession(cfg Config, variants []RockVariant, sounds audio.Bank, rng *rand.Rand) *Session {
	s := &Session{
		cfg:         cfg,
		variants:    variants,
		sounds:      sounds,
		rng:         rng,
		Lives:       cfg.InitialLives,
		Phase:       PhaseMenu,
		MusicVolume: 0.6,
		SFXVolume:   0.9,
	}
	s.Craft = NewCraft(&cfg, sounds.Shoot)
	s.applyVolumes()
	return s
}

// Config returns the session's immutable tuning.
func (s *Session) Config() Config {
	return s.cfg
}

// Variants returns the rock sprite table, for renderers.
func (s *Session) Variants() []RockVariant {
	return s.variants
}

// Advance steps the session by one frame. dt is the externally supplied
// frame delta in seconds; the simulation is correct for variable dt,
// including spikes large enough to expire projectiles in one step.
func (s *Session) Advance(dt float64, in Input) {
	switch s.Phase {
	case PhaseMenu:
		s.advanceMenu(in)
	case PhasePlaying:
		s.advancePlaying(dt, in)
	case PhaseGameOver:
		if in.Enter {
			s.Start()
		}
	}
}

// Start begins a fresh game: counters cleared, entity collections emptied,
// craft reset, wave 1 spawned. Valid from any phase.
func (s *Session) Start() {
	s.Score = 0
	s.Lives = s.cfg.InitialLives
	s.Wave = 0
	s.Rocks = s.Rocks[:0]
	s.Bullets = s.Bullets[:0]
	s.Craft.Reset(&s.cfg)
	s.Phase = PhasePlaying
	s.spawnWave()

	if !s.musicStarted {
		s.sounds.Music.Play()
		s.musicStarted = true
	}
}

// advanceMenu handles slider navigation and the start action.
func (s *Session) advanceMenu(in Input) {
	switch {
	case in.Up:
		s.MenuIndex = (s.MenuIndex - 1 + menuItemCount) % menuItemCount
	case in.Down:
		s.MenuIndex = (s.MenuIndex + 1) % menuItemCount
	case in.Left:
		s.adjustVolume(-s.cfg.VolumeStep)
	case in.Right:
		s.adjustVolume(s.cfg.VolumeStep)
	case in.Enter:
		s.Start()
	}
}

// adjustVolume moves the selected slider and pushes the result into the
// audio bank.
func (s *Session) adjustVolume(delta float64) {
	if s.MenuIndex == MenuMusicVolume {
		s.MusicVolume = clamp01(s.MusicVolume + delta)
	} else {
		s.SFXVolume = clamp01(s.SFXVolume + delta)
	}
	s.applyVolumes()
}

func (s *Session) applyVolumes() {
	s.sounds.Music.SetVolume(s.MusicVolume)
	s.sounds.Shoot.SetVolume(s.SFXVolume)
	s.sounds.Explode.SetVolume(s.SFXVolume)
	s.sounds.Death.SetVolume(s.SFXVolume)
}

// advancePlaying runs one simulation frame: craft physics and actions, then
// entity integration, then collision resolution, then wave refill.
func (s *Session) advancePlaying(dt float64, in Input) {
	s.Craft.Update(&s.cfg, dt, in)

	if in.Fire {
		if p := s.Craft.Fire(&s.cfg, len(s.Bullets)); p != nil {
			s.Bullets = append(s.Bullets, p)
		}
	}
	if in.Hyperspace {
		s.Craft.Hyperspace(&s.cfg, s.rng)
	}

	for _, b := range s.Bullets {
		b.Update(&s.cfg, dt)
	}
	for _, r := range s.Rocks {
		r.Update(&s.cfg, dt)
	}

	s.resolveCollisions()

	if s.Phase == PhasePlaying && len(s.Rocks) == 0 {
		s.spawnWave()
	}
}

// spawnWave advances the wave counter and fills the field with new rocks
// placed clear of the craft.
func (s *Session) spawnWave() {
	s.Wave++
	s.Rocks = append(s.Rocks, rollWave(&s.cfg, s.variants, s.Craft.Pos, s.Wave, s.rng)...)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
