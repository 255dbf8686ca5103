package math

// Angles holds Euler angles in degrees. Positive pitch looks down.
type Angles struct {
	Pitch, Yaw, Roll float32
}

// ToForward returns the unit vector the angles look along.
func (a Angles) ToForward() Vec3 {
	sp, cp := SinCos(Deg2Rad(a.Pitch))
	sy, cy := SinCos(Deg2Rad(a.Yaw))
	return Vec3{cp * cy, cp * sy, -sp}
}

// ToMat3 returns the frame (forward, left, up) for the angles.
// With zero roll and |pitch| <= 90 it matches ToForward().ToMat3().
func (a Angles) ToMat3() Mat3 {
	sr, cr := SinCos(Deg2Rad(a.Roll))
	sp, cp := SinCos(Deg2Rad(a.Pitch))
	sy, cy := SinCos(Deg2Rad(a.Yaw))

	return Mat3{
		{cp * cy, cp * sy, -sp},
		{sr*sp*cy - cr*sy, sr*sp*sy + cr*cy, sr * cp},
		{cr*sp*cy + sr*sy, cr*sp*sy - sr*cy, cr * cp},
	}
}

// ToQuat returns the rotation as a quaternion.
func (a Angles) ToQuat() Quat {
	return a.ToMat3().ToQuat()
}

// Normalize360 wraps every angle into [0, 360).
func (a Angles) Normalize360() Angles {
	return Angles{
		Pitch: AngleNormalize360(a.Pitch),
		Yaw:   AngleNormalize360(a.Yaw),
		Roll:  AngleNormalize360(a.Roll),
	}
}

// Normalize180 wraps every angle into (-180, 180].
func (a Angles) Normalize180() Angles {
	return Angles{
		Pitch: AngleNormalize180(a.Pitch),
		Yaw:   AngleNormalize180(a.Yaw),
		Roll:  AngleNormalize180(a.Roll),
	}
}

// ToString renders pitch, yaw and roll.
func (a Angles) ToString(precision int) string {
	return FloatArrayToString([]float32{a.Pitch, a.Yaw, a.Roll}, precision)
}

func (a Angles) String() string {
	return a.ToString(2)
}
