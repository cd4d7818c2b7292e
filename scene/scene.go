// Package scene provides a yaml-authored, human-editable description of a
// small collision world that compiles down to an immutable
// bsp.CollisionBSP. It exists for the CLI and for tests that want a
// hand-authored fixture instead of Go struct literals; the BSP build
// pipeline that produces tag data from a full level export is out of
// scope, so Scene only supports convex solids described as a plane
// list plus a face list per solid, compiled with a simple sequential
// node chain rather than a balanced partition.
package scene

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ashfallgames/collisionbsp/geom"
)

type (
	// Scene is the on-disk fixture format: a list of convex solids, each
	// described by its bounding planes and the surfaces (with explicit
	// windings) that occupy them.
	Scene struct {
		Solids []Solid `yaml:"solids"`
	}

	// Solid is one convex cell: a set of bounding half-space planes and
	// the polygon faces that sit on (a subset of) those planes.
	Solid struct {
		// DoubleSided marks every leaf belonging to this solid as a
		// double-sided (open, walk-through) partition rather than a
		// sealed interior.
		DoubleSided bool    `yaml:"double_sided,omitempty"`
		Planes      []Plane `yaml:"planes"`
		Faces       []Face  `yaml:"faces"`
	}

	Plane struct {
		Normal Vec3   `yaml:"normal"`
		Offset float32 `yaml:"offset"`
	}

	// Face is one polygon lying on Planes[PlaneIndex]. Its vertices may be
	// listed in either winding order; Compile reverses them when needed.
	Face struct {
		PlaneIndex int      `yaml:"plane_index"`
		Vertices   []Vec3   `yaml:"vertices"`
		Invisible  bool     `yaml:"invisible,omitempty"`
		Breakable  bool     `yaml:"breakable,omitempty"`
	}

	Vec3 struct {
		X float32 `yaml:"x"`
		Y float32 `yaml:"y"`
		Z float32 `yaml:"z"`
	}
)

func (v Vec3) toGeom() geom.Vector3 { return geom.Vector3{X: v.X, Y: v.Y, Z: v.Z} }

// Load reads and parses a Scene from path.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("scene: failed to open %s: %v", path, err)
		return nil, fmt.Errorf("scene: open %s: %w", path, err)
	}
	defer f.Close()

	var s Scene
	if err := yaml.NewDecoder(f).Decode(&s); err != nil {
		log.Printf("scene: malformed scene file %s: %v", path, err)
		return nil, fmt.Errorf("scene: decode %s: %w", path, err)
	}
	return &s, nil
}

// Save writes s to path as yaml.
func (s *Scene) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("scene: create %s: %w", path, err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(s)
}
