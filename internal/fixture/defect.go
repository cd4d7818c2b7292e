package fixture

import "github.com/ashfallgames/collisionbsp/scene"

// PhantomExtendedFace returns a two-solid scene exercising spec.md §4.6's
// phantom-BSP defect: the first solid's +Z face is a real polygon spanning
// only [-0.5, 0.5] in X and Y, but nothing in the compiled BSP bounds the
// partition itself to that extent in X/Y - any point at z=1 resolves to
// this face's surface regardless of where it lies in the plane, exactly
// the "partition admits more than its surface" shape spec.md §8's S5
// describes. The second solid is the half-space beyond z=1.2, bounded by
// a bare plane with no face at all, so a +Z query exits the first solid
// into the exterior at z=1 and re-enters the second solid's leaf at
// z=1.2. That gives a query that defers the first solid's candidate as
// pending something to disprove it against: crossing into the second
// solid's leaf with no matching 2D reference is a genuine leak, and
// spec.md §4.6 says a leak right after a pending rejects it.
func PhantomExtendedFace() scene.Scene {
	return scene.Scene{
		Solids: []scene.Solid{
			{
				Planes: []scene.Plane{{Normal: scene.Vec3{Z: 1}, Offset: 1.0}},
				Faces: []scene.Face{{
					PlaneIndex: 0,
					Vertices: []scene.Vec3{
						{X: -0.5, Y: -0.5, Z: 1},
						{X: 0.5, Y: -0.5, Z: 1},
						{X: 0.5, Y: 0.5, Z: 1},
						{X: -0.5, Y: 0.5, Z: 1},
					},
				}},
			},
			{
				Planes: []scene.Plane{{Normal: scene.Vec3{Z: -1}, Offset: -1.2}},
			},
		},
	}
}

// LeakNearlyCoplanar returns a single-solid scene exercising spec.md
// §4.6's Form 1 leak recovery: the solid's first (shallower) plane is the
// one carrying the real face, but the second (deeper, leaf-adjacent)
// plane - offset by 3e-5, well inside geom.NearlyCoplanarEpsilon - has no
// face of its own. A query exiting the leaf records the deeper plane as
// the one it crossed, so a plain leaf search under that plane finds nothing; Form
// 1 must walk back out to the ancestor node carrying the nearly-coplanar
// plane and retry there.
func LeakNearlyCoplanar() scene.Scene {
	return scene.Scene{
		Solids: []scene.Solid{
			{
				Planes: []scene.Plane{
					{Normal: scene.Vec3{Z: 1}, Offset: 1.00003},
					{Normal: scene.Vec3{Z: 1}, Offset: 1.0},
				},
				Faces: []scene.Face{{
					PlaneIndex: 0,
					Vertices: []scene.Vec3{
						{X: -0.5, Y: -0.5, Z: 1.00003},
						{X: 0.5, Y: -0.5, Z: 1.00003},
						{X: 0.5, Y: 0.5, Z: 1.00003},
						{X: -0.5, Y: 0.5, Z: 1.00003},
					},
				}},
			},
		},
	}
}
