package math

import "fmt"

// VecX is a vector whose dimension is chosen at construction and never
// changes. It owns its storage; operations that produce a new VecX
// allocate unless they write into a caller-provided destination.
type VecX struct {
	p []float32
}

// NewVecX returns a zero vector of dimension n.
func NewVecX(n int) VecX {
	if n < 0 {
		panic(fmt.Sprintf("math: negative VecX dimension %d", n))
	}
	return VecX{p: make([]float32, n)}
}

// VecXFrom returns a vector holding a copy of values.
func VecXFrom(values ...float32) VecX {
	v := NewVecX(len(values))
	copy(v.p, values)
	return v
}

// Dimension returns the number of components.
func (v VecX) Dimension() int { return len(v.p) }

// At returns component i.
func (v VecX) At(i int) float32 { return v.p[i] }

// Set assigns component i. The backing storage is shared with copies of v.
func (v VecX) Set(i int, f float32) { v.p[i] = f }

// Floats returns a copy of the components.
func (v VecX) Floats() []float32 {
	out := make([]float32, len(v.p))
	copy(out, v.p)
	return out
}

// Clone returns a vector with its own copy of the storage.
func (v VecX) Clone() VecX {
	return VecXFrom(v.p...)
}

func (v VecX) mustMatch(other VecX) {
	if len(v.p) != len(other.p) {
		panic(fmt.Sprintf("math: VecX dimension mismatch %d != %d", len(v.p), len(other.p)))
	}
}

// Add returns v + other.
func (v VecX) Add(other VecX) VecX {
	v.mustMatch(other)
	out := NewVecX(len(v.p))
	for i := range v.p {
		out.p[i] = v.p[i] + other.p[i]
	}
	return out
}

// Sub returns v - other.
func (v VecX) Sub(other VecX) VecX {
	v.mustMatch(other)
	out := NewVecX(len(v.p))
	for i := range v.p {
		out.p[i] = v.p[i] - other.p[i]
	}
	return out
}

// Scale returns v * scalar.
func (v VecX) Scale(s float32) VecX {
	out := NewVecX(len(v.p))
	for i := range v.p {
		out.p[i] = v.p[i] * s
	}
	return out
}

// Dot returns the dot product.
func (v VecX) Dot(other VecX) float32 {
	v.mustMatch(other)
	return dot(v, other)
}

// LengthSqr returns the squared magnitude.
func (v VecX) LengthSqr() float32 {
	return lengthSqr(v)
}

// Length returns the magnitude.
func (v VecX) Length() float32 {
	return Sqrt(lengthSqr(v))
}

// Normalize returns a unit vector. The zero vector stays zero.
func (v VecX) Normalize() VecX {
	return normalize(v)
}

// Compare reports whether both vectors have the same dimension and every
// component is within eps.
func (v VecX) Compare(other VecX, eps float32) bool {
	if len(v.p) != len(other.p) {
		return false
	}
	return compare(v, other, eps)
}

// Lerp returns a new vector interpolated from v to other.
func (v VecX) Lerp(other VecX, l float32) VecX {
	dst := NewVecX(len(v.p))
	LerpInto(dst, v, other, l)
	return dst
}

// LerpInto writes the interpolation from v1 to v2 into dst without
// allocating. l <= 0 copies v1 and l >= 1 copies v2 exactly.
func LerpInto(dst, v1, v2 VecX, l float32) {
	v1.mustMatch(v2)
	dst.mustMatch(v1)
	switch {
	case l <= 0:
		copy(dst.p, v1.p)
	case l >= 1:
		copy(dst.p, v2.p)
	default:
		for i := range dst.p {
			dst.p[i] = v1.p[i] + l*(v2.p[i]-v1.p[i])
		}
	}
}

// ToString renders the vector with the given number of fractional digits.
func (v VecX) ToString(precision int) string {
	return FloatArrayToString(v.p, precision)
}

func (v VecX) String() string {
	return v.ToString(2)
}
