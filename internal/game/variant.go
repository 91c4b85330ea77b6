package game

// RockVariant describes one rock sprite: its pixel dimensions, used to size
// the collision circle at construction, and an outline profile (vertex
// distances as fractions of the half-width) used by renderers to draw an
// irregular silhouette. The simulation only reads Width.
type RockVariant struct {
	Name    string
	Width   float64 // sprite width in pixels
	Height  float64 // sprite height in pixels
	Profile []float64
}

// DefaultVariants mirrors the three shipped rock sprites. Profiles stay in
// the 0.7-1.0 band so the collision circle remains a fair approximation of
// the drawn outline.
func DefaultVariants() []RockVariant {
	return []RockVariant{
		{
			Name:    "rock1",
			Width:   128,
			Height:  128,
			Profile: []float64{1.0, 0.82, 0.95, 0.74, 0.9, 0.8, 1.0, 0.7, 0.88, 0.78},
		},
		{
			Name:    "rock2",
			Width:   112,
			Height:  104,
			Profile: []float64{0.9, 1.0, 0.72, 0.85, 0.95, 0.7, 0.92, 0.8, 0.75},
		},
		{
			Name:    "rock3",
			Width:   96,
			Height:  96,
			Profile: []float64{0.8, 0.95, 1.0, 0.78, 0.7, 0.9, 0.84, 0.97},
		},
	}
}
