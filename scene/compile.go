package scene

import (
	"fmt"

	"github.com/ashfallgames/collisionbsp/bsp"
	"github.com/ashfallgames/collisionbsp/geom"
)

// vertexEpsilon is how close two face-vertex positions must be to be
// treated as the same mesh vertex when faces share an edge.
const vertexEpsilon = 1e-5

type compiler struct {
	out *bsp.CollisionBSP

	vertexByKey map[[3]int32]int32
	edgeByKey   map[[2]int32]int32
}

type edgeOccurrence struct {
	index int32
	slot  int
}

// Compile builds an immutable bsp.CollisionBSP from s. Each solid compiles
// to a straight-line chain of plane tests (package doc): solid i's chain
// falls through to solid i+1's on any plane failure, and the last solid's
// falls through to the world exterior. This is not a balanced partition,
// but it locates points correctly, which is all a hand-authored fixture
// needs.
func (s *Scene) Compile() (*bsp.CollisionBSP, error) {
	c := &compiler{
		out:         &bsp.CollisionBSP{},
		vertexByKey: make(map[[3]int32]int32),
		edgeByKey:   make(map[[2]int32]int32),
	}

	if len(s.Solids) == 0 {
		return c.out, nil
	}

	nodeOffsets := make([]int32, len(s.Solids)+1)
	for i, solid := range s.Solids {
		nodeOffsets[i+1] = nodeOffsets[i] + int32(len(solid.Planes))
	}
	total := nodeOffsets[len(s.Solids)]
	c.out.Nodes3D = make([]bsp.Node3D, total)

	for i, solid := range s.Solids {
		fallthroughRoot := int32(bsp.ExteriorSentinel)
		if i+1 < len(s.Solids) {
			fallthroughRoot = nodeOffsets[i+1]
		}
		if err := c.compileSolid(solid, nodeOffsets[i], fallthroughRoot); err != nil {
			return nil, fmt.Errorf("scene: solid %d: %w", i, err)
		}
	}
	return c.out, nil
}

func (c *compiler) compileSolid(solid Solid, nodeOffset, fallthroughRoot int32) error {
	if len(solid.Planes) == 0 {
		return fmt.Errorf("solid has no bounding planes")
	}
	planeOffset := int32(len(c.out.Planes3D))
	for _, p := range solid.Planes {
		c.out.Planes3D = append(c.out.Planes3D, geom.Plane3{Normal: p.Normal.toGeom(), Distance: p.Offset})
	}

	var flags bsp.LeafFlags
	leafIndex := int32(len(c.out.Leaves3D))
	c.out.Leaves3D = append(c.out.Leaves3D, bsp.Leaf3D{Flags: flags})

	n := int32(len(solid.Planes))
	for j := int32(0); j < n; j++ {
		back := nodeOffset + j + 1
		if j == n-1 {
			back = bsp.EncodeLeaf(leafIndex)
		}
		c.out.Nodes3D[nodeOffset+j] = bsp.Node3D{
			Plane:    planeOffset + j,
			Children: [2]int32{back, fallthroughRoot},
		}
	}

	refs, err := c.compileFaces(solid, planeOffset)
	if err != nil {
		return err
	}
	if solid.DoubleSided {
		c.out.Leaves3D[leafIndex].Flags |= 1 // leafFlagDoubleSided, mirrored in package bsp
	}
	c.out.Leaves3D[leafIndex].FirstReference = int32(len(c.out.Bsp2DRefs))
	c.out.Leaves3D[leafIndex].ReferenceCount = int16(len(refs))
	c.out.Bsp2DRefs = append(c.out.Bsp2DRefs, refs...)
	return nil
}

// compileFaces builds a Surface (with its edge/vertex mesh) per face and
// returns one Bsp2DRef per face, addressed by its supporting plane. Only
// one face per plane per solid is supported, which is all a hand-authored
// convex-solid fixture needs.
func (c *compiler) compileFaces(solid Solid, planeOffset int32) ([]bsp.Bsp2DRef, error) {
	refs := make([]bsp.Bsp2DRef, 0, len(solid.Faces))
	for _, face := range solid.Faces {
		if face.PlaneIndex < 0 || face.PlaneIndex >= len(solid.Planes) {
			return nil, fmt.Errorf("face references out-of-range plane index %d", face.PlaneIndex)
		}
		globalPlane := planeOffset + int32(face.PlaneIndex)
		plane := c.out.Planes3D[globalPlane]

		surfaceIndex, err := c.compileFace(face, globalPlane, plane)
		if err != nil {
			return nil, err
		}
		refs = append(refs, bsp.Bsp2DRef{Plane: globalPlane, RootNode: bsp.EncodeLeaf(surfaceIndex)})
	}
	return refs, nil
}

func (c *compiler) compileFace(face Face, globalPlane int32, plane geom.Plane3) (int32, error) {
	if len(face.Vertices) < 3 {
		return 0, fmt.Errorf("face on plane %d has fewer than 3 vertices", globalPlane)
	}

	points := make([]geom.Vector3, len(face.Vertices))
	for i, v := range face.Vertices {
		points[i] = v.toGeom()
	}

	// Compiled references are never inverted, so a query projects this
	// face with forward == !projectionInverted (collision.searchLeaf).
	projPlane := geom.ChooseProjectionPlane(plane.Normal)
	forward := geom.Dominant(projPlane, plane.Normal) > 0
	if !windingIsInward(points, projPlane, forward) {
		reverse(points)
	}

	var surfFlags bsp.SurfaceFlags
	if face.Invisible {
		surfFlags |= bsp.SurfaceInvisible
	}
	breakableIndex := int8(-1)
	if face.Breakable {
		surfFlags |= bsp.SurfaceBreakable
		breakableIndex = int8(len(c.out.Surfaces))
	}

	surfaceIndex := int32(len(c.out.Surfaces))
	c.out.Surfaces = append(c.out.Surfaces, bsp.Surface{
		Plane:            globalPlane,
		Flags:            surfFlags,
		BreakableSurface: breakableIndex,
	})

	firstEdge, err := c.linkFaceEdges(points, surfaceIndex)
	if err != nil {
		return 0, err
	}
	c.out.Surfaces[surfaceIndex].FirstEdge = firstEdge
	return surfaceIndex, nil
}

// windingIsInward reports whether points, projected with (projPlane,
// forward), already wind such that their own centroid satisfies the
// projective containment test every real query will apply to them
// (collision.surfaceContains2D's all-determinants-<=0 rule).
func windingIsInward(points []geom.Vector3, projPlane geom.ProjectionPlane, forward bool) bool {
	n := len(points)
	projected := make([]geom.Vector2, n)
	var centroid geom.Vector2
	for i, p := range points {
		projected[i] = geom.Project(p, projPlane, forward)
		centroid = centroid.Add(projected[i])
	}
	centroid = geom.Vector2{X: centroid.X / float32(n), Y: centroid.Y / float32(n)}

	for i := 0; i < n; i++ {
		a := projected[i]
		b := projected[(i+1)%n]
		edge := b.Sub(a)
		rel := centroid.Sub(a)
		if rel.Cross2(edge) > 0 {
			return false
		}
	}
	return true
}

func reverse(points []geom.Vector3) {
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
}

// linkFaceEdges walks points in winding order, finding or creating the
// shared mesh edge for each side, and returns the edge that starts the
// loop for this surface (spec.md §3 invariant 3's "in-order" edge ring).
func (c *compiler) linkFaceEdges(points []geom.Vector3, surfaceIndex int32) (int32, error) {
	n := len(points)
	occurrences := make([]edgeOccurrence, n)
	verts := make([]int32, n)
	for i, p := range points {
		verts[i] = c.findOrAddVertex(p)
	}

	for i := 0; i < n; i++ {
		v0, v1 := verts[i], verts[(i+1)%n]
		occ, err := c.findOrAddEdge(v0, v1, surfaceIndex)
		if err != nil {
			return 0, err
		}
		occurrences[i] = occ
	}

	for i := 0; i < n; i++ {
		next := occurrences[(i+1)%n]
		edge := &c.out.Edges[occurrences[i].index]
		edge.Edges[occurrences[i].slot] = next.index
	}

	for i := range verts {
		if c.out.Vertices[verts[i]].FirstEdge < 0 {
			c.out.Vertices[verts[i]].FirstEdge = occurrences[i].index
		}
	}

	return occurrences[0].index, nil
}

func (c *compiler) findOrAddVertex(p geom.Vector3) int32 {
	key := quantize(p)
	if idx, ok := c.vertexByKey[key]; ok {
		return idx
	}
	idx := int32(len(c.out.Vertices))
	c.out.Vertices = append(c.out.Vertices, bsp.Vertex{Point: p, FirstEdge: -1})
	c.vertexByKey[key] = idx
	return idx
}

func quantize(p geom.Vector3) [3]int32 {
	const scale = 1 / vertexEpsilon
	return [3]int32{
		int32(p.X * scale),
		int32(p.Y * scale),
		int32(p.Z * scale),
	}
}

// findOrAddEdge returns the (edge index, slot) recording that surfaceIndex
// traverses this edge from v0 to v1. The first surface to reach an
// unordered pair claims slot 0 in that direction; the second (from the
// neighboring face, necessarily winding the opposite way) claims slot 1.
func (c *compiler) findOrAddEdge(v0, v1, surfaceIndex int32) (edgeOccurrence, error) {
	key := [2]int32{v0, v1}
	if v0 > v1 {
		key = [2]int32{v1, v0}
	}
	if idx, ok := c.edgeByKey[key]; ok {
		edge := &c.out.Edges[idx]
		switch {
		case edge.Surfaces[0] == -1:
			edge.Surfaces[0] = surfaceIndex
			edge.Vertices[0] = v0
			return edgeOccurrence{index: idx, slot: 0}, nil
		case edge.Surfaces[1] == -1:
			edge.Surfaces[1] = surfaceIndex
			edge.Vertices[1] = v0
			return edgeOccurrence{index: idx, slot: 1}, nil
		default:
			return edgeOccurrence{}, fmt.Errorf("edge between vertices %d and %d shared by more than two surfaces", v0, v1)
		}
	}

	idx := int32(len(c.out.Edges))
	c.out.Edges = append(c.out.Edges, bsp.Edge{
		Vertices: [2]int32{v0, -1},
		Edges:    [2]int32{-1, -1},
		Surfaces: [2]int32{surfaceIndex, -1},
	})
	c.edgeByKey[key] = idx
	return edgeOccurrence{index: idx, slot: 0}, nil
}
