package math

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Vec3Origin is the zero 3D vector.
var Vec3Origin = Vec3{}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dimension returns 3.
func (v Vec3) Dimension() int { return 3 }

// At returns component i (0 = X, 1 = Y, 2 = Z).
func (v Vec3) At(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("math: Vec3 index out of range")
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// LengthSqr returns the squared magnitude.
func (v Vec3) LengthSqr() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return Sqrt(v.LengthSqr())
}

// Normalize returns a unit vector.
func (v Vec3) Normalize() Vec3 {
	return normalize(v)
}

// ToNormal returns v scaled by the inverse of its length.
// The zero vector maps to the zero vector.
func (v Vec3) ToNormal() Vec3 {
	return v.Scale(InvSqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z))
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// Compare reports whether every component is within eps of other.
func (v Vec3) Compare(other Vec3, eps float32) bool {
	return compare(v, other, eps)
}

// XZ returns the XZ components as Vec2.
func (v Vec3) XZ() Vec2 {
	return Vec2{v.X, v.Z}
}

// ToVec2 returns the XY components.
func (v Vec3) ToVec2() Vec2 {
	return Vec2{v.X, v.Y}
}

// Lerp linearly interpolates from v to other.
// l <= 0 returns v and l >= 1 returns other, both unchanged.
func (v Vec3) Lerp(other Vec3, l float32) Vec3 {
	return lerp(v, other, l)
}

// ToString renders the vector with the given number of fractional digits.
func (v Vec3) ToString(precision int) string {
	return toString(v, precision)
}

func (v Vec3) String() string {
	return v.ToString(2)
}
