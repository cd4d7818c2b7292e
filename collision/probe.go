package collision

import (
	"github.com/ashfallgames/collisionbsp/bsp"
	"github.com/ashfallgames/collisionbsp/geom"
)

// probeContext is the stripped-down state ProbeNextSurfaceOrientation
// threads through its descent: the same 3D walk as queryContext, but
// with none of the pending/leak bookkeeping, since the probe itself
// exists to let a caller validate an ambiguous hit without depending on
// the pending-slot mechanism (spec.md §4.6 Auxiliary).
type probeContext struct {
	bsp         *bsp.CollisionBSP
	breakable   BreakableSet
	origin      geom.Vector3
	delta       geom.Vector3
	ignorePlane int32

	leaf     int32
	leafType bsp.LeafKind
	plane    int32

	found   bool
	outcome int
}

// ProbeNextSurfaceOrientation implements spec.md §4.6 Auxiliary: it
// starts a fresh descent from frac (using the same origin/delta as the
// caller's original query) to maxFraction, ignoring any 2D reference on
// planeIgnore, and reports the orientation of the first real surface it
// finds: negative for front-facing, positive for back-facing, zero if
// none is found before maxFraction.
//
// Its descent (probeNode/probeLeaf) is a separate copy of the main
// tester's testNode/testLeaf shape that returns at the first validated
// surface; it keeps no result, pending or leak state, and it does not
// stop early when a split lies past an earlier hit.
func ProbeNextSurfaceOrientation(b *bsp.CollisionBSP, breakable BreakableSet, origin, delta geom.Vector3, frac, maxFraction float32, planeIgnore int32) int {
	if maxFraction <= frac {
		return 0
	}
	pctx := &probeContext{
		bsp:         b,
		breakable:   breakable,
		origin:      origin,
		delta:       delta,
		ignorePlane: planeIgnore,
		leaf:        -1,
		leafType:    bsp.LeafNone,
		plane:       -1,
	}
	pctx.probeNode(0, frac, maxFraction)
	if !pctx.found {
		return 0
	}
	if pctx.outcome <= 0 {
		return -1
	}
	return 1
}

func (pctx *probeContext) probeNode(root int32, frac, term float32) bool {
	if root < 0 {
		return pctx.probeLeaf(root, frac)
	}

	node := pctx.bsp.Nodes3D[root]
	plane := pctx.bsp.Planes3D[node.Plane]

	a := plane.SignedDistanceHP(pctx.origin)
	bcoef := float64(plane.Normal.X)*float64(pctx.delta.X) +
		float64(plane.Normal.Y)*float64(pctx.delta.Y) +
		float64(plane.Normal.Z)*float64(pctx.delta.Z)

	s0 := a + float64(frac)*bcoef
	s1 := a + float64(term)*bcoef
	sign0 := s0 >= 0
	sign1 := s1 >= 0

	if sign0 == sign1 {
		childIdx := 0
		if sign0 {
			childIdx = 1
		}
		return pctx.probeNode(node.Children[childIdx], frac, term)
	}

	tstar := float32(-a / bcoef)
	firstIdx := 0
	if sign0 {
		firstIdx = 1
	}
	secondIdx := 1 - firstIdx

	if pctx.probeNode(node.Children[firstIdx], frac, tstar) {
		return true
	}
	pctx.plane = node.Plane
	return pctx.probeNode(node.Children[secondIdx], tstar, term)
}

func (pctx *probeContext) probeLeaf(raw int32, frac float32) bool {
	ref := bsp.DecodeChild(raw)
	var currLeaf int32 = -1
	curr := bsp.LeafExterior
	if ref.Kind != bsp.ChildExterior {
		currLeaf = ref.Index
		curr = pctx.bsp.ClassifyLeaf(currLeaf)
	}
	prev := pctx.leafType

	applies := (prev.Interiorish() && curr == bsp.LeafExterior) ||
		(prev == bsp.LeafExterior && curr.Interiorish()) ||
		(prev == bsp.LeafDoubleSided && curr == bsp.LeafDoubleSided) ||
		(prev == bsp.LeafInterior && curr == bsp.LeafDoubleSided) ||
		(prev == bsp.LeafDoubleSided && curr == bsp.LeafInterior)

	if applies {
		testedLeaf := currLeaf
		if prev.Interiorish() && curr == bsp.LeafExterior {
			testedLeaf = pctx.leaf
		}
		candidate := searchLeaf(pctx.bsp, pctx.breakable, testedLeaf, pctx.plane, false, pctx.origin, pctx.delta, frac, pctx.ignorePlane)
		if candidate != -1 && surfaceContains3D(pctx.bsp, pctx.breakable, candidate, pctx.origin, pctx.delta) {
			pctx.found = true
			// Same orientation convention as classifyTransition: leaving
			// the exterior, or entering a sealed-interior leaf, is
			// back-facing; every other applicable crossing is front-facing.
			if prev == bsp.LeafExterior || curr == bsp.LeafInterior {
				pctx.outcome = 1
			} else {
				pctx.outcome = -1
			}
			return true
		}
	}

	pctx.leaf = currLeaf
	pctx.leafType = curr
	return false
}
