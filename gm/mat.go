package gm

import "math"

// Mat describes a 2d matrix of float64 values in row major order.
type Mat struct {
	XAxis, YAxis Vec
}

func IdentityMat() Mat {
	return ScaleMat(VecOne)
}

// ScaleMat returns a matrix that scales a Vec. Use a negative component
// to mirror an axis, e.g. to flip Y when going from world to screen space.
func ScaleMat(scale Vec) Mat {
	return Mat{
		XAxis: Vec{X: scale.X},
		YAxis: Vec{Y: scale.Y},
	}
}

func (m Mat) Transform(vec Vec) Vec {
	return Vec{
		X: m.XAxis.Dot(vec),
		Y: m.YAxis.Dot(vec),
	}
}

func (m Mat) Mul(n Mat) Mat {
	col0 := Vec{X: n.XAxis.X, Y: n.YAxis.X}
	col1 := Vec{X: n.XAxis.Y, Y: n.YAxis.Y}

	return Mat{
		XAxis: Vec{X: m.XAxis.Dot(col0), Y: m.XAxis.Dot(col1)},
		YAxis: Vec{X: m.YAxis.Dot(col0), Y: m.YAxis.Dot(col1)},
	}
}

func (m Mat) Determinant() float64 {
	return m.XAxis.X*m.YAxis.Y - m.XAxis.Y*m.YAxis.X
}

// TryInverse returns the inverse of the matrix, if it is not singular.
func (m Mat) TryInverse() (Mat, bool) {
	det := m.Determinant()
	if det == 0 || math.IsNaN(det) {
		return Mat{}, false
	}

	f := 1 / det
	inverse := Mat{
		XAxis: Vec{X: f * m.YAxis.Y, Y: f * -m.XAxis.Y},
		YAxis: Vec{X: f * -m.YAxis.X, Y: f * m.XAxis.X},
	}

	return inverse, true
}
