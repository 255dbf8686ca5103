package math

import "github.com/go-gl/mathgl/mgl32"

// Mat3 is a 3x3 rotation frame stored as three axis rows.
// Row i is the image of basis vector i, so MulVec3 maps local
// coordinates into the frame's parent space.
type Mat3 [3]Vec3

// Mat3Identity returns the identity frame.
func Mat3Identity() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Transpose returns the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		{m[0].X, m[1].X, m[2].X},
		{m[0].Y, m[1].Y, m[2].Y},
		{m[0].Z, m[1].Z, m[2].Z},
	}
}

// MulVec3 returns v.X*m[0] + v.Y*m[1] + v.Z*m[2].
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return m[0].Scale(v.X).Add(m[1].Scale(v.Y)).Add(m[2].Scale(v.Z))
}

// Mul composes two frames: other is applied first, then m.
func (m Mat3) Mul(other Mat3) Mat3 {
	return Mat3{m.MulVec3(other[0]), m.MulVec3(other[1]), m.MulVec3(other[2])}
}

// Determinant returns m[0] · (m[1] × m[2]). It is +1 for a right-handed
// orthonormal frame and -1 for a left-handed one.
func (m Mat3) Determinant() float32 {
	return m[0].Dot(m[1].Cross(m[2]))
}

// IsOrthonormal reports whether every row has unit length and every pair
// of rows is perpendicular, within eps.
func (m Mat3) IsOrthonormal(eps float32) bool {
	for i := 0; i < 3; i++ {
		if d := m[i].LengthSqr() - 1; d > eps || d < -eps {
			return false
		}
		for j := i + 1; j < 3; j++ {
			if d := m[i].Dot(m[j]); d > eps || d < -eps {
				return false
			}
		}
	}
	return true
}

// Compare reports whether every element is within eps of other.
func (m Mat3) Compare(other Mat3, eps float32) bool {
	return m[0].Compare(other[0], eps) && m[1].Compare(other[1], eps) && m[2].Compare(other[2], eps)
}

// ToMat4 returns the rotation as a column-major 4x4 matrix.
func (m Mat3) ToMat4() Mat4 {
	return Mat4{
		m[0].X, m[0].Y, m[0].Z, 0,
		m[1].X, m[1].Y, m[1].Z, 0,
		m[2].X, m[2].Y, m[2].Z, 0,
		0, 0, 0, 1,
	}
}

// ToQuat converts an orthonormal frame to a quaternion.
func (m Mat3) ToQuat() Quat {
	// r(row, col) addresses the conventional rotation matrix whose columns are m's rows.
	r := func(row, col int) float32 { return m[col].At(row) }

	trace := r(0, 0) + r(1, 1) + r(2, 2)
	switch {
	case trace > 0:
		s := 0.5 / Sqrt(trace+1)
		return Quat{
			X: (r(2, 1) - r(1, 2)) * s,
			Y: (r(0, 2) - r(2, 0)) * s,
			Z: (r(1, 0) - r(0, 1)) * s,
			W: 0.25 / s,
		}
	case r(0, 0) > r(1, 1) && r(0, 0) > r(2, 2):
		s := 2 * Sqrt(1+r(0, 0)-r(1, 1)-r(2, 2))
		return Quat{
			X: 0.25 * s,
			Y: (r(0, 1) + r(1, 0)) / s,
			Z: (r(0, 2) + r(2, 0)) / s,
			W: (r(2, 1) - r(1, 2)) / s,
		}
	case r(1, 1) > r(2, 2):
		s := 2 * Sqrt(1+r(1, 1)-r(0, 0)-r(2, 2))
		return Quat{
			X: (r(0, 1) + r(1, 0)) / s,
			Y: 0.25 * s,
			Z: (r(1, 2) + r(2, 1)) / s,
			W: (r(0, 2) - r(2, 0)) / s,
		}
	default:
		s := 2 * Sqrt(1+r(2, 2)-r(0, 0)-r(1, 1))
		return Quat{
			X: (r(0, 2) + r(2, 0)) / s,
			Y: (r(1, 2) + r(2, 1)) / s,
			Z: 0.25 * s,
			W: (r(1, 0) - r(0, 1)) / s,
		}
	}
}

// ToMgl returns the conventional rotation matrix as an mgl32.Mat3.
func (m Mat3) ToMgl() mgl32.Mat3 {
	return mgl32.Mat3FromCols(m[0].ToMgl(), m[1].ToMgl(), m[2].ToMgl())
}

// Mat3FromMgl is the inverse of ToMgl.
func Mat3FromMgl(mm mgl32.Mat3) Mat3 {
	c0, c1, c2 := mm.Cols()
	return Mat3{Vec3FromMgl(c0), Vec3FromMgl(c1), Vec3FromMgl(c2)}
}

// ToMgl converts v to an mgl32.Vec3.
func (v Vec3) ToMgl() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// Vec3FromMgl converts an mgl32.Vec3.
func Vec3FromMgl(v mgl32.Vec3) Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// ToString renders the three rows.
func (m Mat3) ToString(precision int) string {
	return FloatArrayToString([]float32{
		m[0].X, m[0].Y, m[0].Z,
		m[1].X, m[1].Y, m[1].Z,
		m[2].X, m[2].Y, m[2].Z,
	}, precision)
}

func (m Mat3) String() string {
	return m.ToString(2)
}
