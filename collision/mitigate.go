package collision

import (
	"github.com/ashfallgames/collisionbsp/bsp"
	"github.com/ashfallgames/collisionbsp/geom"
)

// phantomAction is the decision applyPhantomPolicy reaches for a given
// (candidate, pending, side) triple (spec.md §4.6).
type phantomAction int

const (
	phantomProceed phantomAction = iota
	phantomMakePending
	phantomRejectCurrent
	phantomAcceptPending
	phantomRejectPending // candidate == -1, leak disproved a pending hit
)

// applyPhantomPolicy implements the phantom-BSP policy table from
// spec.md §4.6. It does not itself mutate ctx.pending; callers apply the
// action.
func (ctx *queryContext) applyPhantomPolicy(candidate int32, splitsInterior, commitDesired, frontFacing bool, frac float32) phantomAction {
	if candidate == -1 {
		if ctx.pending != nil && !splitsInterior {
			return phantomRejectPending
		}
		return phantomProceed
	}

	if ctx.pending != nil {
		return phantomAcceptPending
	}

	if !commitDesired {
		return phantomRejectCurrent
	}

	if !ctx.opts.MitigatePhantomBSP || splitsInterior {
		return phantomProceed
	}

	valid := surfaceContains3D(ctx.bsp, ctx.breakable, candidate, ctx.origin, ctx.delta)
	if valid {
		return phantomProceed
	}
	if frontFacing {
		return phantomMakePending
	}
	if ctx.justEncounteredLeak {
		return phantomRejectCurrent
	}
	return phantomProceed
}

// tryResolveLeak implements spec.md §4.6's leak recovery: it only does
// anything when candidate == -1 and !splitsInterior.
func (ctx *queryContext) tryResolveLeak(leaf int32, frac float32, splitsInterior bool, candidate int32) int32 {
	if candidate != -1 || splitsInterior || !ctx.opts.MitigateBSPLeaks {
		return candidate
	}

	if c := ctx.resolveLeakForm1(leaf, frac); c != -1 {
		return c
	}
	if c := ctx.resolveLeakForm2(leaf, frac); c != -1 {
		return c
	}
	return -1
}

// resolveLeakForm1 walks the interior-leaf ancestor path outward, looking
// for an ancestor node whose plane is nearly coplanar with ctx.plane, and
// retries the leaf search against the same leaf using that ancestor's
// plane (spec.md §4.6 Form 1).
func (ctx *queryContext) resolveLeakForm1(leaf int32, frac float32) int32 {
	if ctx.plane < 0 || int(ctx.plane) >= len(ctx.bsp.Planes3D) {
		return -1
	}
	crossedPlane := ctx.bsp.Planes3D[ctx.plane]

	steps := ctx.interiorLeafNodePath.items()
	for i := len(steps) - 1; i >= 0; i-- {
		nodeIdx, _ := decodeStep(steps[i])
		node := ctx.bsp.Nodes3D[nodeIdx]
		if node.Plane == ctx.plane {
			continue
		}
		ancestorPlane := ctx.bsp.Planes3D[node.Plane]
		if !geom.NearlyCoplanar(ancestorPlane, crossedPlane) {
			continue
		}
		candidate := searchLeaf(ctx.bsp, ctx.breakable, leaf, node.Plane, false, ctx.origin, ctx.delta, frac, -1)
		if candidate != -1 && surfaceContains3D(ctx.bsp, ctx.breakable, candidate, ctx.origin, ctx.delta) {
			return candidate
		}
	}
	return -1
}

// resolveLeakForm2 walks the current-path ancestors outward, re-descends
// into the sibling subtree at each, and retries the leaf search in
// whatever leaf that sibling descent lands on (spec.md §4.6 Form 2).
func (ctx *queryContext) resolveLeakForm2(leaf int32, frac float32) int32 {
	point := geom.PointAt(ctx.origin, ctx.delta, frac)

	steps := ctx.nodePath.items()
	for i := len(steps) - 1; i >= 0; i-- {
		nodeIdx, wentFront := decodeStep(steps[i])
		node := ctx.bsp.Nodes3D[nodeIdx]

		otherChild := node.Children[0]
		if !wentFront {
			otherChild = node.Children[1]
		}

		siblingLeaf := bsp.LocateLeaf(ctx.bsp, otherChild, point)
		if siblingLeaf == leaf {
			// No new information up here; higher ancestors won't help either.
			return -1
		}
		if siblingLeaf == -1 {
			continue
		}

		if c := searchLeaf(ctx.bsp, ctx.breakable, siblingLeaf, node.Plane, false, ctx.origin, ctx.delta, frac, -1); c != -1 &&
			surfaceContains3D(ctx.bsp, ctx.breakable, c, ctx.origin, ctx.delta) {
			return c
		}
		if ctx.plane >= 0 {
			if c := searchLeaf(ctx.bsp, ctx.breakable, siblingLeaf, ctx.plane, false, ctx.origin, ctx.delta, frac, -1); c != -1 &&
				surfaceContains3D(ctx.bsp, ctx.breakable, c, ctx.origin, ctx.delta) {
				return c
			}
		}
	}
	return -1
}

// visit is the shared commit path for every leaf transition that might
// produce a surface hit (spec.md §4.6).
func (ctx *queryContext) visit(leaf int32, frac float32, splitsInterior, commitDesired, frontFacing, verify bool) bool {
	candidate := searchLeaf(ctx.bsp, ctx.breakable, leaf, ctx.plane, splitsInterior, ctx.origin, ctx.delta, frac, ctx.ignorePlane)

	if verify && candidate != -1 {
		if !surfaceContains3D(ctx.bsp, ctx.breakable, candidate, ctx.origin, ctx.delta) {
			candidate = -1
		}
	}

	candidate = ctx.tryResolveLeak(leaf, frac, splitsInterior, candidate)

	if !verify {
		action := ctx.applyPhantomPolicy(candidate, splitsInterior, commitDesired, frontFacing, frac)
		switch action {
		case phantomAcceptPending:
			p := ctx.pending
			ctx.pending = nil
			ctx.justEncounteredLeak = false
			return ctx.commit(p.fraction, p.plane, p.surface)
		case phantomRejectPending:
			ctx.pending = nil
			candidate = -1
		case phantomMakePending:
			ctx.pending = &pendingHit{fraction: frac, plane: ctx.plane, surface: candidate}
			candidate = -1
		case phantomRejectCurrent:
			candidate = -1
		case phantomProceed:
			// candidate stands.
		}
		ctx.justEncounteredLeak = !splitsInterior && candidate == -1
	}

	if candidate == -1 {
		return false
	}
	if !commitDesired {
		return false
	}
	return ctx.commit(frac, ctx.plane, candidate)
}

// commit applies spec.md §4.6 step 5's final filters and, if they pass,
// writes the result.
func (ctx *queryContext) commit(frac float32, plane, surface int32) bool {
	surf := ctx.bsp.Surfaces[surface]
	if surf.Flags.Invisible() && ctx.flags.ignoresInvisible() {
		return false
	}
	if surf.Flags.Breakable() && ctx.flags.ignoresBreakable() {
		return false
	}
	ctx.result.Hit = true
	ctx.result.Fraction = frac
	ctx.result.LastSplit = plane
	ctx.result.Surface = surface
	return true
}

// finishPending commits a surviving pending hit at the end of a top-level
// query that found nothing else (spec.md §4.6 "At the end of a top-level
// query...").
func (ctx *queryContext) finishPending() {
	if ctx.result.Hit || ctx.pending == nil {
		return
	}
	ctx.commit(ctx.pending.fraction, ctx.pending.plane, ctx.pending.surface)
	ctx.pending = nil
}
