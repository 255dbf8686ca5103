package math

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis should be normalized, angle is in degrees.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	s, c := SinCos(Deg2Rad(angle) * 0.5)
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: c,
	}
}

// Normalize returns a normalized quaternion.
// Near-zero quaternions collapse to the identity.
func (q Quat) Normalize() Quat {
	length := Sqrt(q.Dot(q))
	if length < 0.0001 {
		return QuatIdentity()
	}
	invLen := 1 / length
	return Quat{
		X: q.X * invLen,
		Y: q.Y * invLen,
		Z: q.Z * invLen,
		W: q.W * invLen,
	}
}

// Dot returns the dot product of two quaternions.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Slerp performs spherical linear interpolation between two quaternions,
// taking the shorter path. t is clamped to [0, 1].
func (q Quat) Slerp(other Quat, t float32) Quat {
	if t <= 0 {
		return q
	} else if t >= 1 {
		return other
	}

	cosom := q.Dot(other)
	if cosom < 0 {
		other = Quat{X: -other.X, Y: -other.Y, Z: -other.Z, W: -other.W}
		cosom = -cosom
	}

	var scale0, scale1 float32
	if 1-cosom > LerpDelta {
		omega := Acos(cosom)
		sinom := Sin(omega)
		scale0 = Sin((1-t)*omega) / sinom
		scale1 = Sin(t*omega) / sinom
	} else {
		scale0, scale1 = 1-t, t
	}

	return Quat{
		X: q.X*scale0 + other.X*scale1,
		Y: q.Y*scale0 + other.Y*scale1,
		Z: q.Z*scale0 + other.Z*scale1,
		W: q.W*scale0 + other.W*scale1,
	}
}

// ToMat3 converts the quaternion to a rotation frame.
func (q Quat) ToMat3() Mat3 {
	q = q.Normalize()

	xx := q.X * q.X
	xy := q.X * q.Y
	xz := q.X * q.Z
	xw := q.X * q.W
	yy := q.Y * q.Y
	yz := q.Y * q.Z
	yw := q.Y * q.W
	zz := q.Z * q.Z
	zw := q.Z * q.W

	return Mat3{
		{1 - 2*(yy+zz), 2 * (xy + zw), 2 * (xz - yw)},
		{2 * (xy - zw), 1 - 2*(xx+zz), 2 * (yz + xw)},
		{2 * (xz + yw), 2 * (yz - xw), 1 - 2*(xx+yy)},
	}
}

// ToMat4 converts the quaternion to a 4x4 rotation matrix.
func (q Quat) ToMat4() Mat4 {
	return q.ToMat3().ToMat4()
}

// Mul multiplies two quaternions (combines rotations, other first).
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// ToString renders x, y, z, w.
func (q Quat) ToString(precision int) string {
	return FloatArrayToString([]float32{q.X, q.Y, q.Z, q.W}, precision)
}
