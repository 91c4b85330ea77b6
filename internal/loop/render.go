package loop

import (
	"io"
	"math"

	"github.com/tmolnar/rockfall/internal/draw"
	"github.com/tmolnar/rockfall/internal/game"
)

// drawFrame clears the screen, draws the simulation to the canvas and
// overlays the phase-appropriate text on top.
func drawFrame(session *game.Session, canvas *draw.Canvas, w io.Writer) error {
	snap := session.Snapshot()
	cfg := session.Config()

	draw.ClearScreen(w)
	canvas.Clear()

	switch snap.Phase {
	case game.PhaseMenu:
		drawMenuScreen(w, canvas, snap)
		return nil
	case game.PhaseGameOver:
		drawGameOverScreen(w, canvas, snap)
		return nil
	}

	for _, r := range snap.Rocks {
		drawRock(canvas, session.Variants()[r.Variant], r)
	}
	for _, b := range snap.Bullets {
		canvas.SetFloat(b.X, b.Y)
	}
	drawCraft(canvas, &cfg, snap.Craft)

	if err := canvas.Render(w); err != nil {
		return err
	}
	drawHUD(w, canvas, snap)
	return nil
}

// shouldRenderBlink gates drawing at the given frequency while protection
// time remains, producing the invulnerability blink.
func shouldRenderBlink(remaining, frequency float64) bool {
	if remaining <= 0 {
		return true
	}
	phase := int(remaining * frequency)
	return phase%2 != 0
}

// drawCraft renders the ship triangle and, while thrusting, the tail flame.
func drawCraft(canvas *draw.Canvas, cfg *game.Config, c game.CraftView) {
	if !c.Alive || !shouldRenderBlink(c.Invuln, cfg.BlinkHz) {
		return
	}

	rad := c.Angle * math.Pi / 180
	size := cfg.CraftWidth / 2

	nose := draw.Point{
		X: c.X + math.Cos(rad)*size,
		Y: c.Y + math.Sin(rad)*size,
	}
	left := draw.Point{
		X: c.X + math.Cos(rad+2.5)*size*0.7,
		Y: c.Y + math.Sin(rad+2.5)*size*0.7,
	}
	right := draw.Point{
		X: c.X + math.Cos(rad-2.5)*size*0.7,
		Y: c.Y + math.Sin(rad-2.5)*size*0.7,
	}
	canvas.DrawPolygon([]draw.Point{nose, left, right}, true)

	if c.Thrusting {
		drawFlame(canvas, c, rad, size)
	}
}

// drawFlame renders the thrust exhaust behind the craft tail.
func drawFlame(canvas *draw.Canvas, c game.CraftView, rad, size float64) {
	const flameLen = 18.0
	const flameWidth = 10.0

	tailX := c.X - math.Cos(rad)*size*0.9
	tailY := c.Y - math.Sin(rad)*size*0.9
	sideX, sideY := -math.Sin(rad), math.Cos(rad)

	tip := draw.Point{X: tailX - math.Cos(rad)*flameLen, Y: tailY - math.Sin(rad)*flameLen}
	baseL := draw.Point{X: tailX - sideX*flameWidth, Y: tailY - sideY*flameWidth}
	baseR := draw.Point{X: tailX + sideX*flameWidth, Y: tailY + sideY*flameWidth}

	canvas.DrawPolygon([]draw.Point{tip, baseL, baseR}, false)
}

// drawRock renders a rock as its variant's irregular outline, spun to the
// rock's current rotation and sized by its scale.
func drawRock(canvas *draw.Canvas, v game.RockVariant, r game.RockView) {
	n := len(v.Profile)
	points := canvas.BorrowPoints(n)

	halfWidth := 0.5 * v.Width * r.Scale
	base := r.Rotation * math.Pi / 180
	for i, dist := range v.Profile {
		vertAngle := base + float64(i)*2*math.Pi/float64(n)
		points[i] = draw.Point{
			X: r.X + math.Cos(vertAngle)*dist*halfWidth,
			Y: r.Y + math.Sin(vertAngle)*dist*halfWidth,
		}
	}
	canvas.DrawPolygon(points, false)
}
