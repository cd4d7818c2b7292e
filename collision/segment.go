// Package collision implements the recursive vector-vs-BSP intersection
// algorithm and its phantom-BSP / BSP-leak mitigations: given a static
// bsp.CollisionBSP and a line segment, it finds whether and where the
// segment first hits a surface, filtering out well-known artefacts of
// the underlying BSP representation.
package collision

import (
	"github.com/ashfallgames/collisionbsp/bsp"
	"github.com/ashfallgames/collisionbsp/geom"
)

func encodeStep(node int32, front bool) int32 {
	v := node << 1
	if front {
		v |= 1
	}
	return v
}

func decodeStep(v int32) (node int32, front bool) {
	return v >> 1, v&1 != 0
}

// TestSegment is the top-level entry point (spec.md §6.1): it tests the
// segment from origin to origin+delta against the BSP, recording the
// earliest surface intersection (if any) that the requested flags admit.
//
// maxFraction is clamped to [0, 1] before the walk starts; result.fraction
// begins at that clamped value, so any recorded hit is <= it.
func TestSegment(b *bsp.CollisionBSP, breakable BreakableSet, origin, delta geom.Vector3, maxFraction float32, flags Flags, opts Options, result *Result) bool {
	if maxFraction < 0 {
		maxFraction = 0
	} else if maxFraction > 1 {
		maxFraction = 1
	}
	result.reset(maxFraction)
	result.Leaves.reset()

	if maxFraction <= 0 {
		return false
	}

	ctx := newQueryContext(b, breakable, origin, delta, flags, opts, result)
	ctx.testNode(0, 0, maxFraction)
	ctx.finishPending()
	return result.Hit
}

// testNode implements spec.md §4.5's recursive core.
func (ctx *queryContext) testNode(root int32, frac, term float32) bool {
	if root < 0 {
		return ctx.testLeaf(root, frac)
	}

	node := ctx.bsp.Nodes3D[root]
	plane := ctx.bsp.Planes3D[node.Plane]

	a := plane.SignedDistanceHP(ctx.origin)
	bcoef := float64(plane.Normal.X)*float64(ctx.delta.X) +
		float64(plane.Normal.Y)*float64(ctx.delta.Y) +
		float64(plane.Normal.Z)*float64(ctx.delta.Z)

	s0 := a + float64(frac)*bcoef
	s1 := a + float64(term)*bcoef
	sign0 := s0 >= 0
	sign1 := s1 >= 0

	if sign0 == sign1 {
		childIdx := 0
		if sign0 {
			childIdx = 1
		}
		ctx.nodePath.push(encodeStep(root, childIdx == 1))
		res := ctx.testNode(node.Children[childIdx], frac, term)
		ctx.nodePath.pop()
		return res
	}

	// bcoef != 0 here: the signs disagree, so the plane test is not constant.
	tstar := float32(-a / bcoef)

	firstIdx := 0
	if sign0 {
		firstIdx = 1
	}
	secondIdx := 1 - firstIdx

	ctx.nodePath.push(encodeStep(root, firstIdx == 1))
	res1 := ctx.testNode(node.Children[firstIdx], frac, tstar)
	ctx.nodePath.pop()
	if res1 {
		return true
	}

	if ctx.result.Fraction <= tstar {
		return false
	}

	ctx.plane = node.Plane
	ctx.nodePath.push(encodeStep(root, secondIdx == 1))
	res2 := ctx.testNode(node.Children[secondIdx], tstar, term)
	ctx.nodePath.pop()
	return res2
}

// transitionRow is one matched row of the spec.md §4.5 dispatch table.
type transitionRow struct {
	applies        bool
	testedLeaf     int32
	splitsInterior bool
	frontFacing    bool
	verify         bool
}

// classifyTransition's tested-leaf tie-break for the two symmetric rows
// below (DoubleSided<->DoubleSided and Interior<->DoubleSided) follows
// original_source/blam/src/collision_bsp.c's collision_bsp_test_vector_leaf:
// tested_leaf is a per-query constant derived from the caller's flags
// (k_collision_test_front_facing_surfaces), not the descent direction
// that led to this leaf.
func (ctx *queryContext) classifyTransition(prev, curr bsp.LeafKind, prevLeaf, currLeaf int32) transitionRow {
	switch {
	case prev.Interiorish() && curr == bsp.LeafExterior:
		return transitionRow{applies: true, testedLeaf: prevLeaf, splitsInterior: false, frontFacing: true}
	case prev == bsp.LeafExterior && curr.Interiorish():
		return transitionRow{applies: true, testedLeaf: currLeaf, splitsInterior: false, frontFacing: false}
	case prev == bsp.LeafDoubleSided && curr == bsp.LeafDoubleSided:
		tested := currLeaf
		if ctx.flags.wantsFront() {
			tested = prevLeaf
		}
		return transitionRow{applies: true, testedLeaf: tested, splitsInterior: true, frontFacing: true}
	case (prev == bsp.LeafInterior && curr == bsp.LeafDoubleSided) || (prev == bsp.LeafDoubleSided && curr == bsp.LeafInterior):
		tested := currLeaf
		if ctx.flags.wantsFront() {
			tested = prevLeaf
		}
		// Leaving a sealed-interior cell into a double-sided one is treated
		// as the front-facing direction, the reverse as back-facing; either
		// way the candidate is always re-verified volumetrically rather
		// than trusted under the sealed-world assumption.
		frontFacing := prev == bsp.LeafInterior
		return transitionRow{applies: true, testedLeaf: tested, splitsInterior: false, frontFacing: frontFacing, verify: true}
	default:
		return transitionRow{}
	}
}

func (ctx *queryContext) wantsOrientation(row transitionRow) bool {
	if row.splitsInterior {
		if ctx.flags.ignoresTwoSided() {
			return false
		}
		return ctx.flags.wantsFront()
	}
	if row.verify {
		return ctx.flags.wantsFront() || ctx.flags.wantsBack()
	}
	if row.frontFacing {
		return ctx.flags.wantsFront()
	}
	return ctx.flags.wantsBack()
}

// isBoundaryTransition reports whether (prev, curr) is one of the two
// interior<->exterior rows that the mitigations must traverse as
// evidence even when the caller didn't request that orientation
// (spec.md §4.5 final paragraph).
func isBoundaryTransition(prev, curr bsp.LeafKind) bool {
	return (prev.Interiorish() && curr == bsp.LeafExterior) || (prev == bsp.LeafExterior && curr.Interiorish())
}

// testLeaf implements spec.md §4.5's leaf case: classify the transition
// from the previous leaf to this one, dispatch to visit if applicable,
// and update history.
func (ctx *queryContext) testLeaf(raw int32, frac float32) bool {
	ref := bsp.DecodeChild(raw)
	var currLeaf int32 = -1
	curr := bsp.LeafExterior
	if ref.Kind != bsp.ChildExterior {
		currLeaf = ref.Index
		curr = ctx.bsp.ClassifyLeaf(currLeaf)
	}
	prev := ctx.leafType
	prevLeaf := ctx.leaf

	row := ctx.classifyTransition(prev, curr, prevLeaf, currLeaf)

	hit := false
	if row.applies {
		commitDesired := ctx.wantsOrientation(row)
		mitigating := ctx.opts.MitigatePhantomBSP || ctx.opts.MitigateBSPLeaks
		shouldVisit := commitDesired || (mitigating && isBoundaryTransition(prev, curr))
		if shouldVisit {
			hit = ctx.visit(row.testedLeaf, frac, row.splitsInterior, commitDesired, row.frontFacing, row.verify)
		}
	}

	if hit {
		return true
	}

	if curr.Interiorish() {
		ctx.result.Leaves.push(currLeaf)
		if curr == bsp.LeafInterior {
			ctx.interiorLeafNodePath = ctx.nodePath
		}
	}
	ctx.leaf = currLeaf
	ctx.leafType = curr

	return false
}
