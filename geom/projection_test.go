package geom

import "testing"

func TestChooseProjectionPlane(t *testing.T) {
	cases := []struct {
		name   string
		normal Vector3
		want   ProjectionPlane
	}{
		{"dominant x", Vector3{X: 1}, ProjectionYZ},
		{"dominant y", Vector3{Y: 1}, ProjectionXZ},
		{"dominant z", Vector3{Z: 1}, ProjectionXY},
		{"dominant negative x", Vector3{X: -1}, ProjectionYZ},
		{"tie z over y", Vector3{Y: 1, Z: 1}, ProjectionXY},
		{"tie y over x", Vector3{X: 1, Y: 1}, ProjectionXZ},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ChooseProjectionPlane(tc.normal); got != tc.want {
				t.Errorf("ChooseProjectionPlane(%v) = %v, want %v", tc.normal, got, tc.want)
			}
		})
	}
}

func TestProjectionIndicesClosedForm(t *testing.T) {
	// Forward projection onto each cardinal plane should recover the two
	// non-dominant axes, never the dominant one.
	cases := []struct {
		plane             ProjectionPlane
		excludedComponent int
	}{
		{ProjectionYZ, 0},
		{ProjectionXZ, 1},
		{ProjectionXY, 2},
	}
	for _, tc := range cases {
		first, second := ProjectionIndices(tc.plane, true)
		if first == tc.excludedComponent || second == tc.excludedComponent {
			t.Errorf("ProjectionIndices(%v, true) = (%d, %d), should exclude axis %d", tc.plane, first, second, tc.excludedComponent)
		}
		if first == second {
			t.Errorf("ProjectionIndices(%v, true) returned the same axis twice: %d", tc.plane, first)
		}
	}
}

func TestProjectionIndicesForwardVsInvertedSwapOrder(t *testing.T) {
	for _, plane := range []ProjectionPlane{ProjectionYZ, ProjectionXZ, ProjectionXY} {
		f1, f2 := ProjectionIndices(plane, true)
		b1, b2 := ProjectionIndices(plane, false)
		if f1 != b2 || f2 != b1 {
			t.Errorf("plane %v: forward (%d,%d) should be the reverse-ordered pair of inverted (%d,%d)", plane, f1, f2, b1, b2)
		}
	}
}

func TestProjectPicksComponentsByPlane(t *testing.T) {
	v := Vector3{X: 1, Y: 2, Z: 3}
	got := Project(v, ProjectionYZ, true)
	first, second := ProjectionIndices(ProjectionYZ, true)
	want := Vector2{X: v.Component(first), Y: v.Component(second)}
	if got != want {
		t.Errorf("Project = %v, want %v", got, want)
	}
}

func TestDominant(t *testing.T) {
	n := Vector3{X: 1, Y: 2, Z: 3}
	if got := Dominant(ProjectionXY, n); got != 3 {
		t.Errorf("Dominant(XY) = %v, want 3 (the Z component)", got)
	}
}
