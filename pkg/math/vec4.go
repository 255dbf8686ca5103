package math

// Vec4 is a 4D vector.
type Vec4 struct {
	X, Y, Z, W float32
}

// Vec4Origin is the zero 4D vector.
var Vec4Origin = Vec4{}

// Add returns v + other.
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Sub returns v - other.
func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Scale returns v * scalar.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Dimension returns 4.
func (v Vec4) Dimension() int { return 4 }

// At returns component i (0 = X ... 3 = W).
func (v Vec4) At(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic("math: Vec4 index out of range")
}

// Dot returns the dot product.
func (v Vec4) Dot(other Vec4) float32 {
	return dot(v, other)
}

// LengthSqr returns the squared magnitude.
func (v Vec4) LengthSqr() float32 {
	return lengthSqr(v)
}

// Length returns the magnitude.
func (v Vec4) Length() float32 {
	return Sqrt(lengthSqr(v))
}

// Normalize returns a unit vector.
func (v Vec4) Normalize() Vec4 {
	return normalize(v)
}

// ToVec3 drops W.
func (v Vec4) ToVec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Compare reports whether every component is within eps of other.
func (v Vec4) Compare(other Vec4, eps float32) bool {
	return compare(v, other, eps)
}

// Lerp linearly interpolates from v to other.
func (v Vec4) Lerp(other Vec4, l float32) Vec4 {
	return lerp(v, other, l)
}

// ToString renders the vector with the given number of fractional digits.
func (v Vec4) ToString(precision int) string {
	return toString(v, precision)
}

func (v Vec4) String() string {
	return v.ToString(2)
}
