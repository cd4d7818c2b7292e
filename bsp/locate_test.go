package bsp_test

import (
	"testing"

	"github.com/ashfallgames/collisionbsp/bsp"
	"github.com/ashfallgames/collisionbsp/geom"
	"github.com/ashfallgames/collisionbsp/internal/fixture"
)

func compiledCube(t *testing.T, halfExtent float32) *bsp.CollisionBSP {
	t.Helper()
	s := fixture.Cube(halfExtent)
	b, err := s.Compile()
	if err != nil {
		t.Fatalf("compiling cube fixture: %v", err)
	}
	return b
}

func TestLocateLeafCube(t *testing.T) {
	b := compiledCube(t, 1)

	cases := []struct {
		name string
		p    geom.Vector3
		want int32
	}{
		{"center", geom.Vector3{}, 0},
		{"inside corner", geom.Vector3{X: 0.9, Y: 0.9, Z: 0.9}, 0},
		{"outside +x", geom.Vector3{X: 2, Y: 0, Z: 0}, bsp.ExteriorSentinel},
		{"outside -y", geom.Vector3{X: 0, Y: -2, Z: 0}, bsp.ExteriorSentinel},
		{"on boundary x=1", geom.Vector3{X: 1, Y: 0, Z: 0}, bsp.ExteriorSentinel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := bsp.LocateLeaf(b, 0, tc.p); got != tc.want {
				t.Errorf("LocateLeaf(%v) = %d, want %d", tc.p, got, tc.want)
			}
		})
	}
}

func TestLocateSurfaceCubeFace(t *testing.T) {
	b := compiledCube(t, 1)

	// The +X face's one reference should be the only reference on that
	// plane in leaf 0's reference list.
	var faceRef *bsp.Bsp2DRef
	for _, ref := range b.References(0) {
		plane := b.Planes3D[ref.SanitizedPlane()]
		if plane.Normal == (geom.Vector3{X: 1}) {
			r := ref
			faceRef = &r
		}
	}
	if faceRef == nil {
		t.Fatal("no reference found for the +X face's plane")
	}

	projPlane := geom.ChooseProjectionPlane(geom.Vector3{X: 1})
	forward := geom.Dominant(projPlane, geom.Vector3{X: 1}) <= 0
	forward = forward == faceRef.Inverted()

	center2d := geom.Project(geom.Vector3{X: 1}, projPlane, forward)
	got := bsp.LocateSurface(b, faceRef.RootNode, center2d)
	if got < 0 {
		t.Errorf("LocateSurface at face center = %d, want a valid surface index", got)
	}
}
