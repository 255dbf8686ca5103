package math

// Vec6 is a 6D vector, typically a linear and an angular part.
type Vec6 struct {
	P [6]float32
}

var (
	// Vec6Origin is the zero 6D vector.
	Vec6Origin = Vec6{}
	// Vec6Infinity has every component set to Infinity.
	Vec6Infinity = Vec6{[6]float32{Infinity, Infinity, Infinity, Infinity, Infinity, Infinity}}
)

// NewVec6 creates a Vec6 from its components.
func NewVec6(a, b, c, d, e, f float32) Vec6 {
	return Vec6{[6]float32{a, b, c, d, e, f}}
}

// Add returns v + other.
func (v Vec6) Add(other Vec6) Vec6 {
	for i := range v.P {
		v.P[i] += other.P[i]
	}
	return v
}

// Sub returns v - other.
func (v Vec6) Sub(other Vec6) Vec6 {
	for i := range v.P {
		v.P[i] -= other.P[i]
	}
	return v
}

// Scale returns v * scalar.
func (v Vec6) Scale(s float32) Vec6 {
	for i := range v.P {
		v.P[i] *= s
	}
	return v
}

// Dimension returns 6.
func (v Vec6) Dimension() int { return 6 }

// At returns component i.
func (v Vec6) At(i int) float32 { return v.P[i] }

// Dot returns the dot product.
func (v Vec6) Dot(other Vec6) float32 {
	return dot(v, other)
}

// LengthSqr returns the squared magnitude.
func (v Vec6) LengthSqr() float32 {
	return lengthSqr(v)
}

// Length returns the magnitude.
func (v Vec6) Length() float32 {
	return Sqrt(lengthSqr(v))
}

// Normalize returns a unit vector.
func (v Vec6) Normalize() Vec6 {
	return normalize(v)
}

// SubVec3 returns the first (i = 0) or second (i = 1) half as a Vec3.
func (v Vec6) SubVec3(i int) Vec3 {
	return Vec3{v.P[i*3], v.P[i*3+1], v.P[i*3+2]}
}

// Compare reports whether every component is within eps of other.
func (v Vec6) Compare(other Vec6, eps float32) bool {
	return compare(v, other, eps)
}

// Lerp linearly interpolates from v to other.
func (v Vec6) Lerp(other Vec6, l float32) Vec6 {
	return lerp(v, other, l)
}

// ToString renders the vector with the given number of fractional digits.
func (v Vec6) ToString(precision int) string {
	return FloatArrayToString(v.P[:], precision)
}

func (v Vec6) String() string {
	return v.ToString(2)
}
