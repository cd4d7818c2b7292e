package bsp

import "github.com/ashfallgames/collisionbsp/geom"

// LocateLeaf walks the 3D BSP from root to the leaf containing point
// (spec.md §4.1). At each internal node it evaluates the signed
// distance of point to the node's plane and follows the positive child
// iff that distance is >= 0. Pure, total, allocation-free: it returns
// the decoded leaf index, or ExteriorSentinel if the walk terminates at
// the exterior.
func LocateLeaf(b *CollisionBSP, root int32, point geom.Vector3) int32 {
	current := root
	for current >= 0 {
		if int(current) >= len(b.Nodes3D) {
			return ExteriorSentinel
		}
		node := b.Nodes3D[current]
		plane := b.Planes3D[node.Plane]
		if plane.InFront(point) {
			current = node.Children[1]
		} else {
			current = node.Children[0]
		}
	}
	ref := DecodeChild(current)
	if ref.Kind == ChildExterior {
		return ExteriorSentinel
	}
	return ref.Index
}

// LocateSurface walks a leaf's 2D sub-BSP from root to a candidate
// surface containing point2d (spec.md §4.2). Same shape as LocateLeaf
// but over the global bsp2d.nodes2d sequence; the terminal negative
// index decodes to a surface index, or -1 if none.
func LocateSurface(b *CollisionBSP, root int32, point2d geom.Vector2) int32 {
	current := root
	for current >= 0 {
		if int(current) >= len(b.Bsp2DNodes) {
			return -1
		}
		node := b.Bsp2DNodes[current]
		if node.Plane.InFront2D(point2d) {
			current = node.Children[1]
		} else {
			current = node.Children[0]
		}
	}
	if current == ExteriorSentinel {
		return -1
	}
	return current &^ signBit
}
