// Package geom implements the fixed 2D/3D vector, plane, sign, and
// projection helpers the collision core is specified against.
//
// Storage is 32-bit float throughout, matching the resident BSP tag
// data. The vector helpers compute in float32; the plane tests
// (Plane3.SignedDistanceHP, Plane2.Test2D) accumulate in float64 and
// return the float64 result.
package geom

// Vector2 is a 2D vector or point, components stored at tag precision.
type Vector2 struct {
	X, Y float32
}

// Vector3 is a 3D vector or point, components stored at tag precision.
type Vector3 struct {
	X, Y, Z float32
}

// Add returns v + w.
func (v Vector2) Add(w Vector2) Vector2 { return Vector2{v.X + w.X, v.Y + w.Y} }

// Sub returns v - w.
func (v Vector2) Sub(w Vector2) Vector2 { return Vector2{v.X - w.X, v.Y - w.Y} }

// Dot returns the 2D dot product.
func (v Vector2) Dot(w Vector2) float32 { return v.X*w.X + v.Y*w.Y }

// Cross2 returns the scalar 2D cross product (v.X*w.Y - v.Y*w.X).
func (v Vector2) Cross2(w Vector2) float32 { return v.X*w.Y - v.Y*w.X }

// Add returns v + w.
func (v Vector3) Add(w Vector3) Vector3 { return Vector3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v - w.
func (v Vector3) Sub(w Vector3) Vector3 { return Vector3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Scale returns v scaled by s.
func (v Vector3) Scale(s float32) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the 3D dot product.
func (v Vector3) Dot(w Vector3) float32 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns the 3D cross product v x w.
func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Component returns the i'th cardinal component (0=X, 1=Y, 2=Z).
func (v Vector3) Component(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// PointAt returns the point at parameter t along the segment origin -> origin+delta.
func PointAt(origin, delta Vector3, t float32) Vector3 {
	return origin.Add(delta.Scale(t))
}
