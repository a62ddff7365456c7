package terrain

import (
	"math/rand"

	"github.com/samber/lo"
)

const (
	TreeWidth  = 20.0
	TreeHeight = 40.0

	treeStride = 200.0
	treeNoise  = 300.0
)

// Tree is a static world-space hazard standing on the foreground layer.
type Tree struct {
	X, Y, W, H float64
}

// PlaceTrees walks [from, to) in strides of 200 plus noise and stands a tree
// on the foreground sample nearest to each stop.
func PlaceTrees(fg []Point, from, to float64, rng *rand.Rand) []Tree {
	var trees []Tree
	x := from + rng.Float64()*treeNoise
	for x < to {
		if p, ok := Nearest(fg, x); ok {
			trees = append(trees, Tree{
				X: p.X - TreeWidth/2,
				Y: p.Y - TreeHeight,
				W: TreeWidth,
				H: TreeHeight,
			})
		}
		x += treeStride + rng.Float64()*treeNoise
	}
	return trees
}

// TrimTrees drops trees whose right edge lies left of minX.
func TrimTrees(trees []Tree, minX float64) []Tree {
	return lo.Filter(trees, func(t Tree, _ int) bool {
		return t.X+t.W >= minX
	})
}
