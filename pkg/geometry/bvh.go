package geometry

import (
	"math"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// BVHNode is a node of the bounding volume hierarchy. Children are either further
// nodes or leaf shapes. Right is nil only for a tree built over a single shape.
type BVHNode struct {
	Box   core.AABB
	Left  Shape
	Right Shape
}

// NewBVH builds a hierarchy over shapes. The input slice is not modified.
//
// Each level splits on the axis of greatest extent of the level's combined box:
// shapes are sorted by bounding box center along that axis and cut at the median index.
func NewBVH(shapes []Shape) (*BVHNode, error) {
	if len(shapes) == 0 {
		return nil, ErrEmptyBVH
	}

	// Sorting happens in place, keep the caller's order intact
	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	if len(shapesCopy) == 1 {
		return &BVHNode{Box: shapesCopy[0].BoundingBox(), Left: shapesCopy[0]}, nil
	}
	return buildBVH(shapesCopy), nil
}

// buildBVH requires at least two shapes
func buildBVH(shapes []Shape) *BVHNode {
	if len(shapes) == 2 {
		return newBVHNode(shapes[0], shapes[1])
	}

	boundingBox := shapes[0].BoundingBox()
	for _, shape := range shapes[1:] {
		boundingBox = boundingBox.Union(shape.BoundingBox())
	}

	axis := boundingBox.LongestAxis()
	sortShapesByAxis(shapes, axis)

	mid := len(shapes) / 2
	return newBVHNode(buildChild(shapes[:mid]), buildChild(shapes[mid:]))
}

func buildChild(shapes []Shape) Shape {
	if len(shapes) == 1 {
		return shapes[0]
	}
	return buildBVH(shapes)
}

func newBVHNode(left, right Shape) *BVHNode {
	return &BVHNode{
		Box:   left.BoundingBox().Union(right.BoundingBox()),
		Left:  left,
		Right: right,
	}
}

// sortShapesByAxis sorts shapes by their bounding box center along the specified axis
func sortShapesByAxis(shapes []Shape, axis int) {
	sort.SliceStable(shapes, func(i, j int) bool {
		return centroid(shapes[i], axis) < centroid(shapes[j], axis)
	})
}

// centroid is the box center on axis. A box unbounded in both directions on that axis
// has no center and sorts as 0.
func centroid(shape Shape, axis int) float64 {
	c := shape.BoundingBox().Center().Axis(axis)
	if math.IsNaN(c) {
		return 0
	}
	return c
}

// Hit tests the ray against the node's box, then both children, keeping the nearer hit
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	closestHit, hitLeft := n.Left.Hit(ray, tMin, tMax)
	if hitLeft {
		tMax = closestHit.T
	}

	if n.Right != nil {
		if hit, isHit := n.Right.Hit(ray, tMin, tMax); isHit {
			return hit, true
		}
	}

	return closestHit, hitLeft
}

// BoundingBox returns the precomputed union of the children's boxes
func (n *BVHNode) BoundingBox() core.AABB {
	return n.Box
}

// BVHStats describes the shape of a hierarchy
type BVHStats struct {
	Nodes    int // Interior BVH nodes
	Leaves   int // Shapes referenced by the tree
	MaxDepth int // Deepest leaf, the root is depth 0
}

// Stats walks the tree and collects BVHStats
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{}
	collectStats(n, 0, &stats)
	return stats
}

func collectStats(shape Shape, depth int, stats *BVHStats) {
	node, isNode := shape.(*BVHNode)
	if !isNode {
		stats.Leaves++
		stats.MaxDepth = max(stats.MaxDepth, depth)
		return
	}

	stats.Nodes++
	collectStats(node.Left, depth+1, stats)
	if node.Right != nil {
		collectStats(node.Right, depth+1, stats)
	}
}
