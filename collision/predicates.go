package collision

import (
	"github.com/ashfallgames/collisionbsp/bsp"
	"github.com/ashfallgames/collisionbsp/geom"
)

// walkSurfaceEdges calls visit once per directed edge of surface in
// winding order, starting from surface.FirstEdge, stopping when the loop
// closes. It is the shared traversal both surface predicates use, built
// on the "in-order" accessors spec.md §3 invariant 3 and §6.3 describe.
func walkSurfaceEdges(b *bsp.CollisionBSP, surfaceIndex int32, visit func(p0, p1 geom.Vector3) bool) bool {
	surf := b.Surfaces[surfaceIndex]
	start := surf.FirstEdge
	if start < 0 || int(start) >= len(b.Edges) {
		return true
	}
	edgeIdx := start
	for {
		if edgeIdx < 0 || int(edgeIdx) >= len(b.Edges) {
			return true
		}
		edge := b.Edges[edgeIdx]
		v0, ok := edge.StartVertex(surfaceIndex)
		if !ok {
			return true
		}
		next, ok := edge.NextEdge(surfaceIndex)
		if !ok {
			return true
		}
		var v1 int32
		if next == start {
			// Closing the loop: the next vertex is the first edge's start.
			v1, _ = b.Edges[start].StartVertex(surfaceIndex)
		} else if int(next) < len(b.Edges) {
			v1, _ = b.Edges[next].StartVertex(surfaceIndex)
		} else {
			return true
		}
		p0 := b.Vertices[v0].Point
		p1 := b.Vertices[v1].Point
		if !visit(p0, p1) {
			return false
		}
		edgeIdx = next
		if edgeIdx == start {
			return true
		}
	}
}

// surfaceIsUsable reports whether a surface is available as a candidate
// at all: a broken breakable surface never is (spec.md §4.3).
func surfaceIsUsable(b *bsp.CollisionBSP, breakable BreakableSet, surfaceIndex int32) bool {
	surf := b.Surfaces[surfaceIndex]
	if !surf.Flags.Breakable() {
		return true
	}
	return breakable.Intact(surf.BreakableSurface)
}

// surfaceContains2D implements spec.md §4.3's projective containment
// test: project the surface's edges using the same (projectionPlane,
// forward) convention as the candidate point, and require every signed
// 2D determinant to be <= 0.
func surfaceContains2D(b *bsp.CollisionBSP, breakable BreakableSet, surfaceIndex int32, projectionPlane geom.ProjectionPlane, forward bool, point2d geom.Vector2) bool {
	if surfaceIndex < 0 {
		return false
	}
	if !surfaceIsUsable(b, breakable, surfaceIndex) {
		return false
	}
	inside := true
	walkSurfaceEdges(b, surfaceIndex, func(p0, p1 geom.Vector3) bool {
		a := geom.Project(p0, projectionPlane, forward)
		c := geom.Project(p1, projectionPlane, forward)
		edge := c.Sub(a)
		rel := point2d.Sub(a)
		det := rel.Cross2(edge)
		if det > 0 {
			inside = false
			return false
		}
		return true
	})
	return inside
}

// surfaceContains3D implements spec.md §4.3's volumetric triple-product
// test: the vector origin -> origin+delta passes through the surface iff
// every triple product delta . (last x next), accumulated across the
// polygon's edge fan relative to origin, has the same sign (all <= 0 or
// all >= 0). This is never used to decide the normal sealed-world case —
// only the defect mitigations call it (spec.md §4.3).
func surfaceContains3D(b *bsp.CollisionBSP, breakable BreakableSet, surfaceIndex int32, origin, delta geom.Vector3) bool {
	if surfaceIndex < 0 {
		return false
	}
	if !surfaceIsUsable(b, breakable, surfaceIndex) {
		return false
	}
	sawPositive, sawNegative := false, false
	ok := true
	walkSurfaceEdges(b, surfaceIndex, func(p0, p1 geom.Vector3) bool {
		last := p0.Sub(origin)
		next := p1.Sub(origin)
		triple := float64(delta.Dot(last.Cross(next)))
		switch {
		case triple > 0:
			sawPositive = true
		case triple < 0:
			sawNegative = true
		}
		if sawPositive && sawNegative {
			ok = false
			return false
		}
		return true
	})
	return ok
}
