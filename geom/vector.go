package geom

import (
	"github.com/tsujio/game-util/mathutil"
)

// Aim returns a velocity of the given speed pointing from -> to.
// ok is false when both points coincide.
func Aim(from, to *mathutil.Vector2D, speed float64) (v mathutil.Vector2D, ok bool) {
	d := to.Sub(from)
	if d.Norm() == 0 {
		return mathutil.Vector2D{}, false
	}
	return *d.Normalize().Mul(speed), true
}

// Step integrates one Euler step.
func Step(pos, vel *mathutil.Vector2D) mathutil.Vector2D {
	return *pos.Add(vel)
}
