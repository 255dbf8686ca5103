package math

// Polar3 is a spherical coordinate: a radius, a heading Theta and an
// elevation Phi, both in degrees. Phi follows the Angles pitch sign, so
// negative values point above the XY plane.
type Polar3 struct {
	Radius, Theta, Phi float32
}

// ToVec3 converts back to Cartesian coordinates.
func (p Polar3) ToVec3() Vec3 {
	return Angles{Pitch: p.Phi, Yaw: p.Theta}.ToForward().Scale(p.Radius)
}

// ToString renders radius, theta and phi.
func (p Polar3) ToString(precision int) string {
	return FloatArrayToString([]float32{p.Radius, p.Theta, p.Phi}, precision)
}

func (p Polar3) String() string {
	return p.ToString(2)
}
