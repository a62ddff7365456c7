package terrain

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func TestGenerateSegmentIsDeterministic(t *testing.T) {
	g := NewGenerator(600)
	a := g.GenerateSegment(1234, 800)
	b := NewGenerator(600).GenerateSegment(1234, 800)

	require.Len(t, a.Middle, 80)
	assert.Equal(t, a, b)
}

func TestOverlappingSegmentsHaveNoSeam(t *testing.T) {
	g := NewGenerator(600)
	a := g.GenerateSegment(0, 800)
	b := g.GenerateSegment(400, 800)

	for _, l := range []Layer{Background, Middle, Foreground} {
		// sample 40 of a is x=400, sample 0 of b
		assert.Equal(t, a.Get(l)[40], b.Get(l)[0], "layer %d", l)
	}
}

func TestLayersUseDistinctProfiles(t *testing.T) {
	g := NewGenerator(600)
	bg := g.Height(Background, 0)
	mid := g.Height(Middle, 0)
	fg := g.Height(Foreground, 0)
	assert.Less(t, bg, mid)
	assert.Less(t, mid, fg)
}

func TestExtendKeepsSamplesSorted(t *testing.T) {
	g := NewGenerator(600)
	ls, from, to := g.Extend(Layers{}, 0, 1600, 800)

	assert.Equal(t, 0.0, from)
	assert.Greater(t, to, 1600.0)
	assert.False(t, NeedsExtension(ls, 1600))

	ls, from2, _ := g.Extend(ls, 0, 3200, 800)
	assert.Equal(t, to, from2)

	for _, l := range []Layer{Background, Middle, Foreground} {
		ps := ls.Get(l)
		assert.True(t, sort.SliceIsSorted(ps, func(i, j int) bool { return ps[i].X < ps[j].X }))
		for i := 1; i < len(ps); i++ {
			assert.InDelta(t, Step, ps[i].X-ps[i-1].X, 1e-9)
		}
	}
}

func TestTrimDropsSamplesBehind(t *testing.T) {
	g := NewGenerator(600)
	ls, _, _ := g.Extend(Layers{}, 0, 1600, 800)
	trimmed := Trim(ls, 500)

	require.NotEmpty(t, trimmed.Middle)
	assert.Equal(t, 500.0, trimmed.Middle[0].X)
	assert.Equal(t, 500.0, trimmed.Background[0].X)
	assert.Equal(t, 500.0, trimmed.Foreground[0].X)
	// the input is left untouched
	assert.Equal(t, 0.0, ls.Middle[0].X)
}

func TestNearest(t *testing.T) {
	ps := []Point{{0, 1}, {10, 2}, {20, 3}}
	p, ok := Nearest(ps, 14)
	require.True(t, ok)
	assert.Equal(t, Point{10, 2}, p)

	_, ok = Nearest(nil, 14)
	assert.False(t, ok)
}

func TestGroundAtFallsBackToProfile(t *testing.T) {
	g := NewGenerator(600)
	assert.Equal(t, g.Height(Middle, 123), g.GroundAt(Layers{}, Middle, 123))
}

func TestPlaceTreesSnapsToForeground(t *testing.T) {
	g := NewGenerator(600)
	ls := g.GenerateSegment(0, 4000)
	trees := PlaceTrees(ls.Foreground, 0, 4000, testRNG())

	require.NotEmpty(t, trees)
	for i, tr := range trees {
		p, ok := Nearest(ls.Foreground, tr.X+tr.W/2)
		require.True(t, ok)
		assert.Equal(t, p.Y-TreeHeight, tr.Y)
		if i > 0 {
			gap := tr.X - trees[i-1].X
			assert.GreaterOrEqual(t, gap, treeStride-Step)
			assert.LessOrEqual(t, gap, treeStride+treeNoise+Step)
		}
	}
}

func TestTrimTrees(t *testing.T) {
	trees := []Tree{{X: 0, W: 20}, {X: 90, W: 20}, {X: 300, W: 20}}
	assert.Equal(t, []Tree{{X: 90, W: 20}, {X: 300, W: 20}}, TrimTrees(trees, 100))
}
