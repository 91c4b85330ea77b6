package game

// Snapshot is the read-only per-frame view exposed to renderers and the
// spectator feed. It copies everything a display layer needs so it can be
// handed across goroutines or encoded without touching live session state.
// Field tags keep the msgpack wire form compact.
type Snapshot struct {
	Phase Phase `msgpack:"ph"`
	Score int   `msgpack:"sc"`
	Lives int   `msgpack:"lv"`
	Wave  int   `msgpack:"wv"`

	FieldWidth  float64 `msgpack:"fw"`
	FieldHeight float64 `msgpack:"fh"`

	Craft   CraftView    `msgpack:"cr"`
	Rocks   []RockView   `msgpack:"ro"`
	Bullets []BulletView `msgpack:"bu"`

	// Menu state, shown only during the menu phase.
	MenuIndex   int     `msgpack:"mi"`
	MusicVolume float64 `msgpack:"mv"`
	SFXVolume   float64 `msgpack:"sv"`
}

// CraftView is the craft as a renderer sees it. Invuln drives blink timing.
type CraftView struct {
	X         float64 `msgpack:"x"`
	Y         float64 `msgpack:"y"`
	Angle     float64 `msgpack:"a"`
	Thrusting bool    `msgpack:"t"`
	Invuln    float64 `msgpack:"i"`
	Alive     bool    `msgpack:"al"`
}

// RockView carries the pose a renderer needs to draw one rock.
type RockView struct {
	X        float64 `msgpack:"x"`
	Y        float64 `msgpack:"y"`
	Rotation float64 `msgpack:"r"`
	Scale    float64 `msgpack:"s"`
	Radius   float64 `msgpack:"cr"`
	Variant  int     `msgpack:"v"`
}

// BulletView is a projectile position.
type BulletView struct {
	X float64 `msgpack:"x"`
	Y float64 `msgpack:"y"`
}

// Snapshot captures the current frame.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:       s.Phase,
		Score:       s.Score,
		Lives:       s.Lives,
		Wave:        s.Wave,
		FieldWidth:  s.cfg.FieldWidth,
		FieldHeight: s.cfg.FieldHeight,
		Craft: CraftView{
			X:         s.Craft.Pos.X,
			Y:         s.Craft.Pos.Y,
			Angle:     s.Craft.Angle,
			Thrusting: s.Craft.Thrusting,
			Invuln:    s.Craft.Invuln,
			Alive:     s.Craft.Alive,
		},
		MenuIndex:   s.MenuIndex,
		MusicVolume: s.MusicVolume,
		SFXVolume:   s.SFXVolume,
	}

	snap.Rocks = make([]RockView, 0, len(s.Rocks))
	for _, r := range s.Rocks {
		snap.Rocks = append(snap.Rocks, RockView{
			X:        r.Pos.X,
			Y:        r.Pos.Y,
			Rotation: r.Rotation,
			Scale:    r.Scale,
			Radius:   r.Radius,
			Variant:  r.Variant,
		})
	}

	snap.Bullets = make([]BulletView, 0, len(s.Bullets))
	for _, b := range s.Bullets {
		snap.Bullets = append(snap.Bullets, BulletView{X: b.Pos.X, Y: b.Pos.Y})
	}

	return snap
}
