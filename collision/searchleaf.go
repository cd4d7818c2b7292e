package collision

import (
	"github.com/ashfallgames/collisionbsp/bsp"
	"github.com/ashfallgames/collisionbsp/geom"
)

// searchLeaf implements spec.md §4.4: given the leaf a solid partition was
// just crossed into/out of, the plane that was crossed, and the
// intersection point (origin + frac*delta, which lies on that plane),
// find the surface candidate the leaf's 2D references offer for it.
//
// ignorePlane, when >= 0, excludes any reference whose sanitized plane
// equals it — used by the orientation probe (spec.md §4.6 Auxiliary) to
// re-walk the BSP while ignoring the surface it is validating.
func searchLeaf(b *bsp.CollisionBSP, breakable BreakableSet, leaf int32, plane int32, splitsInterior bool, origin, delta geom.Vector3, frac float32, ignorePlane int32) int32 {
	if plane < 0 || int(plane) >= len(b.Planes3D) {
		return -1
	}
	p := geom.PointAt(origin, delta, frac)
	surfacePlane := b.Planes3D[plane]

	projectionPlane := geom.ChooseProjectionPlane(surfacePlane.Normal)
	projectionInverted := geom.Dominant(projectionPlane, surfacePlane.Normal) <= 0

	for _, ref := range b.References(leaf) {
		if ref.SanitizedPlane() != plane {
			continue
		}
		if ignorePlane >= 0 && ref.SanitizedPlane() == ignorePlane {
			continue
		}

		forward := projectionInverted == ref.Inverted()
		point2d := geom.Project(p, projectionPlane, forward)

		candidate := bsp.LocateSurface(b, ref.RootNode, point2d)
		if candidate < 0 {
			continue
		}

		if splitsInterior {
			if surfaceContains2D(b, breakable, candidate, projectionPlane, forward, point2d) {
				return candidate
			}
			continue
		}
		return candidate
	}
	return -1
}
