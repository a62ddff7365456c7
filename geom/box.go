package geom

import (
	"github.com/tsujio/game-util/mathutil"
)

// Box is an axis-aligned rectangle whose origin is its top-left corner.
type Box struct {
	X, Y, W, H float64
}

func NewBox(pos *mathutil.Vector2D, w, h float64) Box {
	return Box{X: pos.X, Y: pos.Y, W: w, H: h}
}

func (b Box) Right() float64 {
	return b.X + b.W
}

func (b Box) Bottom() float64 {
	return b.Y + b.H
}

func (b Box) Center() *mathutil.Vector2D {
	return mathutil.NewVector2D(b.X+b.W/2, b.Y+b.H/2)
}

// Translate shifts the box. World-space boxes are moved into screen space
// with Translate(-scrollOffset, 0).
func (b Box) Translate(dx, dy float64) Box {
	b.X += dx
	b.Y += dy
	return b
}

// Overlaps reports whether the interiors of a and b intersect. Boxes that
// only share an edge do not overlap.
func (b Box) Overlaps(o Box) bool {
	return b.X < o.Right() && o.X < b.Right() &&
		b.Y < o.Bottom() && o.Y < b.Bottom()
}

// Within reports whether the box lies (at least partly) inside the
// rectangle [0,w]x[0,h] grown by margin on every side.
func (b Box) Within(w, h, margin float64) bool {
	return b.Right() > -margin && b.X < w+margin &&
		b.Bottom() > -margin && b.Y < h+margin
}
