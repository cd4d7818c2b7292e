package scene

import (
	"path/filepath"
	"testing"
)

func testCube() Scene {
	return Scene{Solids: []Solid{
		{
			Planes: []Plane{
				{Normal: Vec3{X: 1}, Offset: 1},
				{Normal: Vec3{X: -1}, Offset: 1},
			},
			Faces: []Face{
				{PlaneIndex: 0, Vertices: []Vec3{
					{X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1},
					{X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: 1},
				}},
				{PlaneIndex: 1, Vertices: []Vec3{
					{X: -1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1},
					{X: -1, Y: 1, Z: 1}, {X: -1, Y: -1, Z: 1},
				}, Breakable: true},
			},
		},
	}}
}

func TestSceneSaveLoadRoundTrip(t *testing.T) {
	s := testCube()
	path := filepath.Join(t.TempDir(), "scene.yaml")

	if err := s.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(got.Solids) != 1 || len(got.Solids[0].Planes) != 2 || len(got.Solids[0].Faces) != 2 {
		t.Fatalf("round-tripped scene = %+v, want the original shape", got)
	}
	if !got.Solids[0].Faces[1].Breakable {
		t.Error("round trip should preserve the breakable flag")
	}
	if got.Solids[0].Planes[0].Normal != (Vec3{X: 1}) {
		t.Errorf("round trip should preserve plane normals, got %+v", got.Solids[0].Planes[0].Normal)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml")); err == nil {
		t.Error("Load of a missing file should return an error")
	}
}
