package bsp

import "testing"

func TestDecodeChild(t *testing.T) {
	cases := []struct {
		name string
		raw  int32
		want ChildRef
	}{
		{"node", 5, ChildRef{Kind: ChildNode, Index: 5}},
		{"node zero", 0, ChildRef{Kind: ChildNode, Index: 0}},
		{"leaf", EncodeLeaf(3), ChildRef{Kind: ChildLeaf, Index: 3}},
		{"leaf index zero", EncodeLeaf(0), ChildRef{Kind: ChildLeaf, Index: 0}},
		{"exterior", ExteriorSentinel, ChildRef{Kind: ChildExterior}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DecodeChild(tc.raw); got != tc.want {
				t.Errorf("DecodeChild(%d) = %+v, want %+v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestEncodeLeafRoundTrip(t *testing.T) {
	for _, leaf := range []int32{0, 1, 41, 255} {
		raw := EncodeLeaf(leaf)
		if raw >= 0 {
			t.Fatalf("EncodeLeaf(%d) = %d, want negative", leaf, raw)
		}
		got := DecodeChild(raw)
		if got.Kind != ChildLeaf || got.Index != leaf {
			t.Fatalf("DecodeChild(EncodeLeaf(%d)) = %+v, want leaf %d", leaf, got, leaf)
		}
	}
}

func TestBsp2DRefSanitizedPlaneAndInverted(t *testing.T) {
	cases := []struct {
		name      string
		ref       Bsp2DRef
		wantPlane int32
		wantInv   bool
	}{
		{"plain", Bsp2DRef{Plane: 4}, 4, false},
		{"inverted", Bsp2DRef{Plane: EncodeLeaf(4)}, 4, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.ref.SanitizedPlane(); got != tc.wantPlane {
				t.Errorf("SanitizedPlane() = %d, want %d", got, tc.wantPlane)
			}
			if got := tc.ref.Inverted(); got != tc.wantInv {
				t.Errorf("Inverted() = %v, want %v", got, tc.wantInv)
			}
		})
	}
}

func TestClassifyLeaf(t *testing.T) {
	b := &CollisionBSP{
		Leaves3D: []Leaf3D{
			{Flags: 0},
			{Flags: 1},
		},
	}
	if got := b.ClassifyLeaf(0); got != LeafInterior {
		t.Errorf("ClassifyLeaf(0) = %v, want Interior", got)
	}
	if got := b.ClassifyLeaf(1); got != LeafDoubleSided {
		t.Errorf("ClassifyLeaf(1) = %v, want DoubleSided", got)
	}
	if got := b.ClassifyLeaf(-1); got != LeafExterior {
		t.Errorf("ClassifyLeaf(-1) = %v, want Exterior", got)
	}
	if got := b.ClassifyLeaf(99); got != LeafExterior {
		t.Errorf("ClassifyLeaf(99) (out of range) = %v, want Exterior", got)
	}
}

func TestLeafKindInteriorish(t *testing.T) {
	cases := map[LeafKind]bool{
		LeafNone:        false,
		LeafInterior:    true,
		LeafDoubleSided: true,
		LeafExterior:    false,
	}
	for kind, want := range cases {
		if got := kind.Interiorish(); got != want {
			t.Errorf("%v.Interiorish() = %v, want %v", kind, got, want)
		}
	}
}

func TestReferences(t *testing.T) {
	b := &CollisionBSP{
		Leaves3D: []Leaf3D{
			{FirstReference: 1, ReferenceCount: 2},
		},
		Bsp2DRefs: []Bsp2DRef{
			{Plane: 0}, {Plane: 1}, {Plane: 2},
		},
	}
	got := b.References(0)
	if len(got) != 2 || got[0].Plane != 1 || got[1].Plane != 2 {
		t.Errorf("References(0) = %+v, want refs for planes [1 2]", got)
	}
	if got := b.References(5); got != nil {
		t.Errorf("References(5) (out of range) = %+v, want nil", got)
	}
}

func TestEdgeAccessorsRejectForeignSurface(t *testing.T) {
	e := Edge{Vertices: [2]int32{0, 1}, Edges: [2]int32{9, 10}, Surfaces: [2]int32{3, 4}}
	if _, ok := e.StartVertex(3); !ok {
		t.Error("StartVertex(3) should succeed, surface 3 is incident")
	}
	if _, ok := e.StartVertex(7); ok {
		t.Error("StartVertex(7) should fail, surface 7 is not incident")
	}
	if v, _ := e.NextEdge(4); v != 10 {
		t.Errorf("NextEdge(4) = %d, want 10", v)
	}
}
