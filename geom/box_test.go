package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsujio/game-util/mathutil"
)

func TestBoxOverlaps(t *testing.T) {
	a := Box{X: 0, Y: 0, W: 10, H: 10}

	cases := []struct {
		name string
		b    Box
		want bool
	}{
		{"inside", Box{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Box{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching edge", Box{X: 10, Y: 0, W: 5, H: 5}, false},
		{"apart", Box{X: 20, Y: 20, W: 5, H: 5}, false},
		{"below", Box{X: 0, Y: 11, W: 10, H: 10}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, a.Overlaps(c.b))
			assert.Equal(t, c.want, c.b.Overlaps(a), "overlap must be symmetric")
		})
	}
}

func TestBoxTranslateToScreenSpace(t *testing.T) {
	world := Box{X: 1050, Y: 40, W: 10, H: 10}
	screen := world.Translate(-1000, 0)
	assert.Equal(t, Box{X: 50, Y: 40, W: 10, H: 10}, screen)
	assert.True(t, screen.Overlaps(Box{X: 55, Y: 45, W: 2, H: 2}))
}

func TestBoxWithin(t *testing.T) {
	assert.True(t, Box{X: 790, Y: 10, W: 20, H: 20}.Within(800, 600, 0))
	assert.False(t, Box{X: 820, Y: 10, W: 20, H: 20}.Within(800, 600, 0))
	assert.True(t, Box{X: 820, Y: 10, W: 20, H: 20}.Within(800, 600, 50))
	assert.False(t, Box{X: 10, Y: -40, W: 20, H: 20}.Within(800, 600, 10))
}

func TestAim(t *testing.T) {
	v, ok := Aim(mathutil.NewVector2D(0, 0), mathutil.NewVector2D(3, 4), 10)
	assert.True(t, ok)
	assert.InDelta(t, 6, v.X, 1e-9)
	assert.InDelta(t, 8, v.Y, 1e-9)

	_, ok = Aim(mathutil.NewVector2D(5, 5), mathutil.NewVector2D(5, 5), 10)
	assert.False(t, ok)
}

func TestStep(t *testing.T) {
	p := Step(mathutil.NewVector2D(1, 2), mathutil.NewVector2D(0.5, -1))
	assert.Equal(t, 1.5, p.X)
	assert.Equal(t, 1.0, p.Y)
	assert.False(t, math.IsNaN(p.X))
}
