package game

import (
	"math"
	"testing"

	"github.com/tmolnar/rockfall/internal/geom"
)

func TestSessionStartsInMenu(t *testing.T) {
	s := testSession(10)

	if s.Phase != PhaseMenu {
		t.Errorf("phase = %v, want menu", s.Phase)
	}
	if len(s.Rocks) != 0 || len(s.Bullets) != 0 {
		t.Error("entities exist before the game starts")
	}

	// Simulation input is inert in the menu.
	s.Advance(0.016, Input{Thrust: true, Fire: true})
	if len(s.Bullets) != 0 {
		t.Error("fired a projectile from the menu")
	}
}

func TestEnterStartsGame(t *testing.T) {
	s := testSession(11)

	s.Advance(0.016, Input{Enter: true})

	if s.Phase != PhasePlaying {
		t.Fatalf("phase = %v, want playing", s.Phase)
	}
	if s.Wave != 1 {
		t.Errorf("wave = %d, want 1", s.Wave)
	}
	if len(s.Rocks) != s.cfg.WaveBaseCount+1 {
		t.Errorf("%d rocks in wave 1, want %d", len(s.Rocks), s.cfg.WaveBaseCount+1)
	}
	if s.Score != 0 || s.Lives != s.cfg.InitialLives {
		t.Errorf("score=%d lives=%d at start", s.Score, s.Lives)
	}
	if s.Craft.Invuln != s.cfg.InvulnTime {
		t.Error("craft spawned without its grace window")
	}
}

func TestWaveRefillOnClearField(t *testing.T) {
	s := testSession(12)
	s.Start()

	s.Rocks = s.Rocks[:0]
	s.Advance(0.016, Input{})

	if s.Wave != 2 {
		t.Errorf("wave = %d after clearing the field, want 2", s.Wave)
	}
	if len(s.Rocks) != s.cfg.WaveBaseCount+2 {
		t.Errorf("%d rocks in wave 2, want %d", len(s.Rocks), s.cfg.WaveBaseCount+2)
	}
}

func TestFinalDeathFrameSpawnsNoWave(t *testing.T) {
	s := testSession(13)
	s.Start()
	s.Lives = 0
	s.Craft.Invuln = 0

	// Park a rock on the craft. The death frame must flip to game over
	// without touching the wave counter.
	s.Rocks = s.Rocks[:0]
	s.Rocks = append(s.Rocks,
		NewRock(&s.cfg, s.variants[0], 0, s.Craft.Pos, geom.Vec2{}, 1.0, 0, s.rng))
	s.Craft.Vel = geom.Vec2{}

	s.Advance(0.001, Input{})

	if s.Phase != PhaseGameOver {
		t.Fatalf("phase = %v, want game over", s.Phase)
	}
	if s.Wave != 1 {
		t.Errorf("wave = %d after the final death, want 1", s.Wave)
	}
}

func TestGameOverRestart(t *testing.T) {
	s := testSession(14)
	s.Start()
	s.Score = 500
	s.Lives = 0
	s.Phase = PhaseGameOver

	s.Advance(0.016, Input{})
	if s.Phase != PhaseGameOver {
		t.Fatal("game over screen advanced without enter")
	}

	s.Advance(0.016, Input{Enter: true})

	if s.Phase != PhasePlaying {
		t.Fatalf("phase = %v after restart, want playing", s.Phase)
	}
	if s.Score != 0 || s.Lives != s.cfg.InitialLives || s.Wave != 1 {
		t.Errorf("restart kept old state: score=%d lives=%d wave=%d", s.Score, s.Lives, s.Wave)
	}
}

func TestMenuNavigationWraps(t *testing.T) {
	s := testSession(15)

	if s.MenuIndex != MenuMusicVolume {
		t.Fatalf("initial selection = %d", s.MenuIndex)
	}
	s.Advance(0.016, Input{Down: true})
	if s.MenuIndex != MenuSFXVolume {
		t.Errorf("selection = %d after down, want %d", s.MenuIndex, MenuSFXVolume)
	}
	s.Advance(0.016, Input{Down: true})
	if s.MenuIndex != MenuMusicVolume {
		t.Errorf("selection = %d, want wrap to %d", s.MenuIndex, MenuMusicVolume)
	}
	s.Advance(0.016, Input{Up: true})
	if s.MenuIndex != MenuSFXVolume {
		t.Errorf("selection = %d after up from top, want wrap to %d", s.MenuIndex, MenuSFXVolume)
	}
}

func TestMenuVolumeSliders(t *testing.T) {
	s := testSession(16)

	start := s.MusicVolume
	s.Advance(0.016, Input{Right: true})
	if math.Abs(s.MusicVolume-(start+s.cfg.VolumeStep)) > 1e-9 {
		t.Errorf("music volume = %v, want %v", s.MusicVolume, start+s.cfg.VolumeStep)
	}
	s.Advance(0.016, Input{Left: true})
	if math.Abs(s.MusicVolume-start) > 1e-9 {
		t.Errorf("music volume = %v after undo, want %v", s.MusicVolume, start)
	}

	// Clamp at both ends.
	for i := 0; i < 30; i++ {
		s.Advance(0.016, Input{Right: true})
	}
	if s.MusicVolume != 1 {
		t.Errorf("music volume = %v, want clamp at 1", s.MusicVolume)
	}
	for i := 0; i < 30; i++ {
		s.Advance(0.016, Input{Left: true})
	}
	if s.MusicVolume != 0 {
		t.Errorf("music volume = %v, want clamp at 0", s.MusicVolume)
	}

	// The second slider moves independently.
	s.Advance(0.016, Input{Down: true})
	sfx := s.SFXVolume
	s.Advance(0.016, Input{Left: true})
	if math.Abs(s.SFXVolume-(sfx-s.cfg.VolumeStep)) > 1e-9 {
		t.Errorf("sfx volume = %v, want %v", s.SFXVolume, sfx-s.cfg.VolumeStep)
	}
	if s.MusicVolume != 0 {
		t.Error("sfx slider moved the music volume")
	}
}
