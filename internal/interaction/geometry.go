package interaction

import "github.com/jwdomes/mushland-game/internal/engine"

// Point is a pointer position in renderer coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned bounding rectangle. Edges are inclusive.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Zone binds a habitat to its on-screen drop rectangle.
type Zone struct {
	Habitat engine.Habitat `json:"habitat"`
	Bounds  Rect           `json:"bounds"`
}
