// Package fixture builds small, hand-checkable bsp.CollisionBSP worlds for
// package bsp and package collision's tests, compiled through package
// scene so the test data exercises the same path real fixtures do.
package fixture

import (
	"github.com/ashfallgames/collisionbsp/bsp"
	"github.com/ashfallgames/collisionbsp/scene"
)

// Cube returns a scene.Scene describing a single solid, axis-aligned cube
// centered on the origin with the given half-extent, all six faces
// present and marked solid (not double-sided).
func Cube(halfExtent float32) scene.Scene {
	return scene.Scene{Solids: []scene.Solid{cubeSolid(halfExtent, false)}}
}

// DoubleSidedCube is Cube but with the interior leaf marked double-sided,
// for exercising transitions between the exterior and a double-sided leaf.
func DoubleSidedCube(halfExtent float32) scene.Scene {
	return scene.Scene{Solids: []scene.Solid{cubeSolid(halfExtent, true)}}
}

func cubeSolid(h float32, doubleSided bool) scene.Solid {
	type axis struct {
		normal scene.Vec3
		sign   float32
	}
	axes := []axis{
		{scene.Vec3{X: 1}, 1}, {scene.Vec3{X: -1}, -1},
		{scene.Vec3{Y: 1}, 1}, {scene.Vec3{Y: -1}, -1},
		{scene.Vec3{Z: 1}, 1}, {scene.Vec3{Z: -1}, -1},
	}

	solid := scene.Solid{DoubleSided: doubleSided}
	for i, a := range axes {
		solid.Planes = append(solid.Planes, scene.Plane{Normal: a.normal, Offset: h})
		solid.Faces = append(solid.Faces, scene.Face{
			PlaneIndex: i,
			Vertices:   faceCorners(a.normal, a.sign, h),
		})
	}
	return solid
}

// faceCorners returns the 4 corners of the cube face perpendicular to the
// axis named by normal (exactly one nonzero component), in simple
// around-the-square order. Winding is auto-corrected by scene.Compile.
func faceCorners(normal scene.Vec3, sign, h float32) []scene.Vec3 {
	fixed := sign * h
	var corners []scene.Vec3
	for _, u := range []float32{-h, h} {
		for _, v := range []float32{-h, h} {
			switch {
			case normal.X != 0:
				corners = append(corners, scene.Vec3{X: fixed, Y: u, Z: v})
			case normal.Y != 0:
				corners = append(corners, scene.Vec3{X: u, Y: fixed, Z: v})
			default:
				corners = append(corners, scene.Vec3{X: u, Y: v, Z: fixed})
			}
		}
	}
	// The nested loop above visits corners in row-major (u,v) grid order,
	// whose 0->1->2->3 walk cuts across the square's diagonal; swapping the
	// last pair turns it into a walk around the perimeter instead.
	corners[2], corners[3] = corners[3], corners[2]
	return corners
}

// LeafIndexOf returns the leaf index a compiled single-solid fixture
// assigns to its one solid (always 0, but named for readability at call
// sites).
func LeafIndexOf(*bsp.CollisionBSP) int32 { return 0 }
