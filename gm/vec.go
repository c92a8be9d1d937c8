package gm

import (
	"fmt"
	"math"
)

type Vec32 = vec[float32]
type Vec64 = vec[float64]

type Vec = Vec64

var VecZero = Vec{}
var VecOne = Vec{X: 1, Y: 1}

func VecOf[S int32 | float32 | float64](x, y S) vec[S] {
	return vec[S]{X: x, Y: y}
}

// VecSplat returns a vector with both components set to value.
func VecSplat(value float64) Vec {
	return Vec{X: value, Y: value}
}

type vec[S int32 | float32 | float64] struct {
	X, Y S
}

func (v vec[S]) Add(other vec[S]) vec[S] {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v vec[S]) Sub(other vec[S]) vec[S] {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v vec[S]) Mul(scalar S) vec[S] {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v vec[S]) MulEach(other vec[S]) vec[S] {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

func (v vec[S]) Dot(other vec[S]) S {
	return v.X*other.X + v.Y*other.Y
}

func (v vec[S]) LengthSqr() S {
	return v.Dot(v)
}

func (v vec[S]) Length() S {
	return S(math.Sqrt(float64(v.LengthSqr())))
}

// Normalized returns the vector scaled to unit length. The zero vector
// stays the zero vector.
func (v vec[S]) Normalized() vec[S] {
	length := v.Length()
	if length == 0 {
		return v
	}

	v.X /= length
	v.Y /= length
	return v
}

func (v vec[S]) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v)", v.X, v.Y)
}
