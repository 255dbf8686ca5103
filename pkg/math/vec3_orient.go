package math

// LerpDelta is the 1-cos(angle) threshold below which SLerp blends linearly.
const LerpDelta = 1e-6

// yawPitch returns the yaw and pitch of v in degrees, both in [0, 360).
// A vertical vector has yaw 0 and pitch 90 (up) or 270 (down or zero).
func (v Vec3) yawPitch() (yaw, pitch float32) {
	if v.X == 0 && v.Y == 0 {
		if v.Z > 0 {
			return 0, 90
		}
		return 0, 270
	}

	yaw = Rad2Deg(Atan2(v.Y, v.X))
	if yaw < 0 {
		yaw += 360
		// A tiny negative angle rounds up to exactly 360.
		if yaw >= 360 {
			yaw -= 360
		}
	}

	forward := Sqrt(v.X*v.X + v.Y*v.Y)
	pitch = Rad2Deg(Atan2(v.Z, forward))
	if pitch < 0 {
		pitch += 360
		if pitch >= 360 {
			pitch -= 360
		}
	}
	return yaw, pitch
}

// ToYaw returns the heading of v around the Z axis in degrees, in [0, 360).
func (v Vec3) ToYaw() float32 {
	yaw, _ := v.yawPitch()
	return yaw
}

// ToPitch returns the elevation of v above the XY plane in degrees, in [0, 360).
func (v Vec3) ToPitch() float32 {
	_, pitch := v.yawPitch()
	return pitch
}

// ToAngles returns the view angles that look along v.
// Pitch is negated: positive pitch looks down.
func (v Vec3) ToAngles() Angles {
	yaw, pitch := v.yawPitch()
	return Angles{Pitch: -pitch, Yaw: yaw, Roll: 0}
}

// ToPolar returns v as (radius, yaw, -pitch).
func (v Vec3) ToPolar() Polar3 {
	yaw, pitch := v.yawPitch()
	return Polar3{Radius: v.Length(), Theta: yaw, Phi: -pitch}
}

// horizontalLeft returns the unit vector perpendicular to v in the XY plane,
// rotated 90 degrees counter-clockwise from v's heading. A vertical v has
// no heading, so +X is used instead.
func (v Vec3) horizontalLeft() Vec3 {
	d := v.X*v.X + v.Y*v.Y
	if d == 0 {
		return Vec3{1, 0, 0}
	}
	d = InvSqrt(d)
	return Vec3{-v.Y * d, v.X * d, 0}
}

// ToMat3 builds a rotation frame whose first axis is v.
// Rows are (v, left, v × left). For a unit v the frame is right-handed.
func (v Vec3) ToMat3() Mat3 {
	left := v.horizontalLeft()
	return Mat3{v, left, v.Cross(left)}
}

// NormalVectors returns two vectors perpendicular to v: left lies in the
// XY plane and down = left × v.
func (v Vec3) NormalVectors() (left, down Vec3) {
	left = v.horizontalLeft()
	down = left.Cross(v)
	return left, down
}

// SLerp spherically interpolates from v to other along the great circle.
// Both vectors are expected to be normalized; the result is not renormalized.
func (v Vec3) SLerp(other Vec3, t float32) Vec3 {
	if t <= 0 {
		return v
	} else if t >= 1 {
		return other
	}

	var scale0, scale1 float32

	cosom := v.Dot(other)
	if 1-cosom > LerpDelta {
		omega := Acos(cosom)
		sinom := Sin(omega)
		if sinom < LerpDelta {
			// Opposite vectors have no unique arc.
			scale0, scale1 = 1-t, t
		} else {
			scale0 = Sin((1-t)*omega) / sinom
			scale1 = Sin(t*omega) / sinom
		}
	} else {
		scale0, scale1 = 1-t, t
	}

	return v.Scale(scale0).Add(other.Scale(scale1))
}

// ProjectOntoSphere returns v with Z replaced by its projection onto a
// sphere of the given radius, blending into a hyperbolic sheet near the rim.
func (v Vec3) ProjectOntoSphere(radius float32) Vec3 {
	rsqr := radius * radius
	l := v.Length()
	if l < rsqr*0.5 {
		v.Z = Sqrt(rsqr - l)
	} else {
		v.Z = rsqr / (2 * Sqrt(l))
	}
	return v
}
