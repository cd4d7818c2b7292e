package geom

// Plane3 is a 3D partitioning plane: Normal . point - Distance == 0.
type Plane3 struct {
	Normal   Vector3
	Distance float32
}

// Plane2 is a 2D partitioning line within a leaf's sub-BSP, same convention.
type Plane2 struct {
	Normal   Vector2
	Distance float32
}

// SignedDistanceHP is the extended-precision signed distance of point to the
// plane. Intermediates accumulate in float64 (the numeric contract in
// spec.md §4.5 calls for at least 64-bit accumulation before truncating to
// storage precision); the original used 80-bit x87 temporaries for the same
// purpose.
func (p Plane3) SignedDistanceHP(point Vector3) float64 {
	nx, ny, nz := float64(p.Normal.X), float64(p.Normal.Y), float64(p.Normal.Z)
	px, py, pz := float64(point.X), float64(point.Y), float64(point.Z)
	return nx*px + ny*py + nz*pz - float64(p.Distance)
}

// SignedDistance is the storage-precision signed distance of point to the plane.
func (p Plane3) SignedDistance(point Vector3) float32 {
	return float32(p.SignedDistanceHP(point))
}

// InFront reports whether point lies in front of (or on) the plane, using
// the >= 0 convention used throughout the core so coplanar points
// consistently resolve to the positive side.
func (p Plane3) InFront(point Vector3) bool {
	return p.SignedDistanceHP(point) >= 0
}

// Test2D is the 2D analogue of SignedDistanceHP.
func (p Plane2) Test2D(point Vector2) float64 {
	nx, ny := float64(p.Normal.X), float64(p.Normal.Y)
	px, py := float64(point.X), float64(point.Y)
	return nx*px + ny*py - float64(p.Distance)
}

// InFront2D reports whether point lies in front of (or on) the 2D line.
func (p Plane2) InFront2D(point Vector2) bool {
	return p.Test2D(point) >= 0
}

// NearlyCoplanarEpsilon is the implementation-chosen epsilon for "nearly
// coplanar" plane comparisons (spec.md §6.3). The original source uses an
// epsilon near 1e-4; this module uses the same value for both the normal
// components and the offset, compared independently (not as a combined
// vector distance), which is monotonically equivalent to the original's
// component-wise comparison and keeps the criterion documented and stable.
const NearlyCoplanarEpsilon = 1e-4

// NearlyCoplanar reports whether a and b are nearly coplanar: every normal
// component and the offset agree within NearlyCoplanarEpsilon.
func NearlyCoplanar(a, b Plane3) bool {
	const eps = NearlyCoplanarEpsilon
	return absDiff(a.Normal.X, b.Normal.X) <= eps &&
		absDiff(a.Normal.Y, b.Normal.Y) <= eps &&
		absDiff(a.Normal.Z, b.Normal.Z) <= eps &&
		absDiff(a.Distance, b.Distance) <= eps
}

func absDiff(a, b float32) float32 {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}
