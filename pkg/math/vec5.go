package math

// Vec5 is a position with texture coordinates: X, Y, Z plus S, T.
type Vec5 struct {
	X, Y, Z, S, T float32
}

// Vec5Origin is the zero 5D vector.
var Vec5Origin = Vec5{}

// Add returns v + other.
func (v Vec5) Add(other Vec5) Vec5 {
	return Vec5{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.S + other.S, v.T + other.T}
}

// Sub returns v - other.
func (v Vec5) Sub(other Vec5) Vec5 {
	return Vec5{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.S - other.S, v.T - other.T}
}

// Scale returns v * scalar.
func (v Vec5) Scale(s float32) Vec5 {
	return Vec5{v.X * s, v.Y * s, v.Z * s, v.S * s, v.T * s}
}

// Dimension returns 5.
func (v Vec5) Dimension() int { return 5 }

// At returns component i (0 = X ... 4 = T).
func (v Vec5) At(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.S
	case 4:
		return v.T
	}
	panic("math: Vec5 index out of range")
}

// ToVec3 returns the position part.
func (v Vec5) ToVec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// ST returns the texture coordinates.
func (v Vec5) ST() Vec2 {
	return Vec2{v.S, v.T}
}

// Compare reports whether every component is within eps of other.
func (v Vec5) Compare(other Vec5, eps float32) bool {
	return compare(v, other, eps)
}

// Lerp linearly interpolates from v to other.
func (v Vec5) Lerp(other Vec5, l float32) Vec5 {
	return lerp(v, other, l)
}

// ToString renders the vector with the given number of fractional digits.
func (v Vec5) ToString(precision int) string {
	return toString(v, precision)
}

func (v Vec5) String() string {
	return v.ToString(2)
}
