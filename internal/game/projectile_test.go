package game

import (
	"math"
	"testing"

	"github.com/tmolnar/rockfall/internal/geom"
)

func TestProjectileMoves(t *testing.T) {
	cfg := DefaultConfig()
	p := NewProjectile(geom.Vec2{X: 100, Y: 100}, geom.Vec2{X: 200, Y: -100})

	p.Update(&cfg, 0.1)

	if !p.Alive() {
		t.Fatal("projectile died inside its lifetime")
	}
	if math.Abs(p.Pos.X-120) > 1e-9 || math.Abs(p.Pos.Y-90) > 1e-9 {
		t.Errorf("position = %v, want {120 90}", p.Pos)
	}
	if math.Abs(p.Age-0.1) > 1e-9 {
		t.Errorf("age = %v, want 0.1", p.Age)
	}
}

func TestProjectileWraps(t *testing.T) {
	cfg := DefaultConfig()
	p := NewProjectile(geom.Vec2{X: cfg.FieldWidth - 1, Y: 1}, geom.Vec2{X: 100, Y: -100})

	p.Update(&cfg, 0.1)

	if p.Pos.X < 0 || p.Pos.X >= cfg.FieldWidth || p.Pos.Y < 0 || p.Pos.Y >= cfg.FieldHeight {
		t.Errorf("position %v escaped the field", p.Pos)
	}
}

func TestProjectileLifetime(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("expires past lifetime", func(t *testing.T) {
		p := NewProjectile(geom.Vec2{}, geom.Vec2{X: 100})
		for i := 0; i < 4; i++ { // 4 * 0.4s = 1.6s > 1.2s
			p.Update(&cfg, 0.4)
		}
		if p.Alive() {
			t.Error("projectile alive after exceeding lifetime")
		}
	})

	t.Run("survives under lifetime", func(t *testing.T) {
		p := NewProjectile(geom.Vec2{}, geom.Vec2{X: 100})
		for i := 0; i < 10; i++ { // 1.0s total
			p.Update(&cfg, 0.1)
		}
		if !p.Alive() {
			t.Error("projectile dead before lifetime elapsed")
		}
	})

	t.Run("single large dt expires immediately", func(t *testing.T) {
		p := NewProjectile(geom.Vec2{X: 5, Y: 5}, geom.Vec2{X: 1000})
		p.Update(&cfg, 10)
		if p.Alive() {
			t.Error("projectile survived a dt spike past its lifetime")
		}
		if p.Pos.X != 5 {
			t.Error("expired projectile should not move")
		}
	})
}

func TestProjectileKill(t *testing.T) {
	p := NewProjectile(geom.Vec2{}, geom.Vec2{})
	if !p.Alive() {
		t.Fatal("new projectile not alive")
	}
	p.Kill()
	if p.Alive() {
		t.Error("killed projectile still alive")
	}
}
