package gm

import (
	"fmt"
	"math"
)

// Vec3 is a point or direction in world space, in meters.
type Vec3 struct {
	X, Y, Z float64
}

var Vec3Zero = Vec3{}

// Vec3Forward is the direction a head mounted camera looks at
// when no rotation is applied.
var Vec3Forward = Vec3{Z: 1}

func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

func (v Vec3) Mul(scalar float64) Vec3 {
	return Vec3{X: v.X * scalar, Y: v.Y * scalar, Z: v.Z * scalar}
}

func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

func (v Vec3) LengthSqr() float64 {
	return v.Dot(v)
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSqr())
}

// Normalized returns the vector scaled to unit length. The zero vector
// stays the zero vector.
func (v Vec3) Normalized() Vec3 {
	length := v.Length()
	if length == 0 {
		return v
	}

	return v.Mul(1 / length)
}

// XY drops the Z component.
func (v Vec3) XY() Vec {
	return Vec{X: v.X, Y: v.Y}
}

func (v Vec3) String() string {
	return fmt.Sprintf("vec3(x=%v, y=%v, z=%v)", v.X, v.Y, v.Z)
}
