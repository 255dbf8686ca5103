package math

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Vec2Origin is the zero 2D vector.
var Vec2Origin = Vec2{}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dimension returns 2.
func (v Vec2) Dimension() int { return 2 }

// At returns component i (0 = X, 1 = Y).
func (v Vec2) At(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic("math: Vec2 index out of range")
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// LengthSqr returns the squared magnitude.
func (v Vec2) LengthSqr() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return Sqrt(v.LengthSqr())
}

// Normalize returns a unit vector.
func (v Vec2) Normalize() Vec2 {
	return normalize(v)
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

// Compare reports whether every component is within eps of other.
func (v Vec2) Compare(other Vec2, eps float32) bool {
	return compare(v, other, eps)
}

// Lerp linearly interpolates from v to other.
// l <= 0 returns v and l >= 1 returns other, both unchanged.
func (v Vec2) Lerp(other Vec2, l float32) Vec2 {
	return lerp(v, other, l)
}

// ToString renders the vector with the given number of fractional digits.
func (v Vec2) ToString(precision int) string {
	return toString(v, precision)
}

func (v Vec2) String() string {
	return v.ToString(2)
}
