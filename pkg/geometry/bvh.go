package geometry

import (
	"sort"

	"github.com/df07/go-surface-resolver/pkg/core"
	"github.com/df07/go-surface-resolver/pkg/simd"
)

// BVHNode represents a node in the Bounding Volume Hierarchy
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	Shapes      []Shape // Multiple shapes for leaf nodes (nil for internal nodes)
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection.
// It only produces hit records; it never looks at attributes or materials.
type BVH struct {
	Root *BVHNode
}

// NewBVH constructs a BVH from a slice of shapes
func NewBVH[S Shape](shapes []S) *BVH {
	if len(shapes) == 0 {
		return &BVH{Root: nil}
	}

	// Copy into a fresh slice: the build reorders it
	shapesCopy := make([]Shape, len(shapes))
	for i, s := range shapes {
		shapesCopy[i] = s
	}

	return &BVH{
		Root: buildBVH(shapesCopy, 0),
	}
}

// Leaf threshold: if we have this many or fewer shapes, store them in a leaf node
const leafThreshold = 8

// buildBVH recursively builds the BVH using a median split along the longest axis
func buildBVH(shapes []Shape, depth int) *BVHNode {
	var boundingBox core.AABB
	if len(shapes) > 0 {
		boundingBox = shapes[0].BoundingBox()
		for i := 1; i < len(shapes); i++ {
			boundingBox = boundingBox.Union(shapes[i].BoundingBox())
		}
	}

	if len(shapes) <= leafThreshold {
		return &BVHNode{
			BoundingBox: boundingBox,
			Shapes:      shapes,
		}
	}

	axis := boundingBox.LongestAxis()
	sortShapesByAxis(shapes, axis)

	mid := len(shapes) / 2
	return &BVHNode{
		BoundingBox: boundingBox,
		Left:        buildBVH(shapes[:mid], depth+1),
		Right:       buildBVH(shapes[mid:], depth+1),
	}
}

// sortShapesByAxis sorts shapes by their bounding box center along the specified axis
func sortShapesByAxis(shapes []Shape, axis int) {
	sort.Slice(shapes, func(i, j int) bool {
		centerI := shapes[i].BoundingBox().Center()
		centerJ := shapes[j].BoundingBox().Center()

		switch axis {
		case 0:
			return centerI.X < centerJ.X
		case 1:
			return centerI.Y < centerJ.Y
		default:
			return centerI.Z < centerJ.Z
		}
	})
}

// ClosestHit returns the nearest intersection in (tMin, tMax).
// The returned record has Hit=false when nothing was hit.
func (bvh *BVH) ClosestHit(ray core.Ray, tMin, tMax float64) core.HitRecord {
	if bvh.Root == nil {
		return core.HitRecord{}
	}
	hit, _ := bvh.hitNode(bvh.Root, ray, tMin, tMax)
	return hit
}

// ClosestHit4 traces a 4-ray packet. Lanes outside active are not traced
// and come back with Hit=false.
func (bvh *BVH) ClosestHit4(rays [4]core.Ray, active simd.Mask4, tMin, tMax float64) simd.HitRecord4 {
	var hits [4]core.HitRecord
	for i := range rays {
		if active[i] {
			hits[i] = bvh.ClosestHit(rays[i], tMin, tMax)
		}
	}
	return simd.PackHitRecords4(hits)
}

// ClosestHit8 traces an 8-ray packet. Lanes outside active are not traced
// and come back with Hit=false.
func (bvh *BVH) ClosestHit8(rays [8]core.Ray, active simd.Mask8, tMin, tMax float64) simd.HitRecord8 {
	var hits [8]core.HitRecord
	for i := range rays {
		if active[i] {
			hits[i] = bvh.ClosestHit(rays[i], tMin, tMax)
		}
	}
	return simd.PackHitRecords8(hits)
}

// hitNode recursively tests ray intersection with BVH nodes
func (bvh *BVH) hitNode(node *BVHNode, ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return core.HitRecord{}, false
	}

	var closest core.HitRecord
	hitAnything := false
	closestSoFar := tMax

	// Leaf: linear search
	if node.Shapes != nil {
		for _, shape := range node.Shapes {
			if hit, ok := shape.Intersect(ray, tMin, closestSoFar); ok {
				hitAnything = true
				closestSoFar = hit.T
				closest = hit
			}
		}
		return closest, hitAnything
	}

	for _, child := range [2]*BVHNode{node.Left, node.Right} {
		if child == nil {
			continue
		}
		if hit, ok := bvh.hitNode(child, ray, tMin, closestSoFar); ok {
			hitAnything = true
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, hitAnything
}

// BVHStats summarizes the shape of a BVH
type BVHStats struct {
	Nodes    int
	Leaves   int
	Shapes   int
	MaxDepth int
}

// Stats walks the tree and counts its nodes
func (bvh *BVH) Stats() BVHStats {
	var stats BVHStats
	if bvh.Root != nil {
		collectStats(bvh.Root, 0, &stats)
	}
	return stats
}

func collectStats(node *BVHNode, depth int, stats *BVHStats) {
	stats.Nodes++
	stats.MaxDepth = max(stats.MaxDepth, depth)

	if node.Shapes != nil {
		stats.Leaves++
		stats.Shapes += len(node.Shapes)
		return
	}
	for _, child := range [2]*BVHNode{node.Left, node.Right} {
		if child != nil {
			collectStats(child, depth+1, stats)
		}
	}
}
