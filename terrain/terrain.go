// Package terrain generates the three parallax ground layers. Heights are a
// pure function of world x, so segments generated at different times join
// without seams.
package terrain

import (
	"math"

	"github.com/samber/lo"
)

type Layer int

const (
	Background Layer = iota
	Middle
	Foreground
)

const (
	// Step is the horizontal distance between two samples.
	Step      = 10.0
	seedScale = 0.001
)

type Point struct {
	X, Y float64
}

type wave struct {
	amp, freq float64
}

type profile struct {
	base  float64 // fraction of screen height
	waves []wave
}

var profiles = map[Layer]profile{
	Background: {base: 0.55, waves: []wave{{60, 1.3}, {25, 3.7}}},
	Middle:     {base: 0.72, waves: []wave{{50, 0.8}, {30, 2.9}, {12, 7.1}}},
	Foreground: {base: 0.88, waves: []wave{{25, 1.9}, {10, 5.3}}},
}

// Layers holds the samples of every layer, each sorted ascending by x.
type Layers struct {
	Background []Point
	Middle     []Point
	Foreground []Point
}

func (ls *Layers) Get(l Layer) []Point {
	switch l {
	case Background:
		return ls.Background
	case Foreground:
		return ls.Foreground
	default:
		return ls.Middle
	}
}

func (ls *Layers) set(l Layer, ps []Point) {
	switch l {
	case Background:
		ls.Background = ps
	case Foreground:
		ls.Foreground = ps
	default:
		ls.Middle = ps
	}
}

func (ls Layers) Clone() Layers {
	return Layers{
		Background: append([]Point(nil), ls.Background...),
		Middle:     append([]Point(nil), ls.Middle...),
		Foreground: append([]Point(nil), ls.Foreground...),
	}
}

type Generator struct {
	screenHeight float64
}

func NewGenerator(screenHeight float64) *Generator {
	return &Generator{screenHeight: screenHeight}
}

// Height is the ground y of layer l at world x.
func (g *Generator) Height(l Layer, x float64) float64 {
	p := profiles[l]
	seed := x * seedScale
	return g.screenHeight*p.base + lo.SumBy(p.waves, func(w wave) float64 {
		return w.amp * math.Sin(seed*w.freq)
	})
}

// GenerateSegment samples width/Step points of every layer starting at startX.
func (g *Generator) GenerateSegment(startX, width float64) Layers {
	n := int(width / Step)
	var seg Layers
	for _, l := range []Layer{Background, Middle, Foreground} {
		l := l
		seg.set(l, lo.Times(n, func(i int) Point {
			x := startX + float64(i)*Step
			return Point{X: x, Y: g.Height(l, x)}
		}))
	}
	return seg
}

// Extend appends segments until the middle layer reaches past horizon. It
// returns the extended layers and the x range [from, to) that was added.
// An empty layer set starts at the Step-aligned x at or before origin.
func (g *Generator) Extend(ls Layers, origin, horizon, segmentWidth float64) (out Layers, from, to float64) {
	out = ls
	if len(out.Middle) > 0 {
		from = out.Middle[len(out.Middle)-1].X + Step
	} else {
		from = math.Floor(origin/Step) * Step
	}
	to = from
	for to <= horizon {
		seg := g.GenerateSegment(to, segmentWidth)
		if len(seg.Middle) == 0 {
			break
		}
		out.Background = append(out.Background, seg.Background...)
		out.Middle = append(out.Middle, seg.Middle...)
		out.Foreground = append(out.Foreground, seg.Foreground...)
		to = out.Middle[len(out.Middle)-1].X + Step
	}
	return out, from, to
}

// NeedsExtension reports whether the furthest middle sample is within
// horizon.
func NeedsExtension(ls Layers, horizon float64) bool {
	return len(ls.Middle) == 0 || ls.Middle[len(ls.Middle)-1].X < horizon
}

// Trim discards samples left of minX.
func Trim(ls Layers, minX float64) Layers {
	keep := func(p Point, _ int) bool { return p.X >= minX }
	return Layers{
		Background: lo.Filter(ls.Background, keep),
		Middle:     lo.Filter(ls.Middle, keep),
		Foreground: lo.Filter(ls.Foreground, keep),
	}
}

// Nearest returns the sample closest to x.
func Nearest(ps []Point, x float64) (Point, bool) {
	if len(ps) == 0 {
		return Point{}, false
	}
	return lo.MinBy(ps, func(a, b Point) bool {
		return math.Abs(a.X-x) < math.Abs(b.X-x)
	}), true
}

// Between returns the samples with from <= x <= to.
func Between(ps []Point, from, to float64) []Point {
	return lo.Filter(ps, func(p Point, _ int) bool {
		return p.X >= from && p.X <= to
	})
}

// GroundAt is the y of the sample nearest to x, or the layer's
// generated height when no samples exist.
func (g *Generator) GroundAt(ls Layers, l Layer, x float64) float64 {
	if p, ok := Nearest(ls.Get(l), x); ok {
		return p.Y
	}
	return g.Height(l, x)
}
