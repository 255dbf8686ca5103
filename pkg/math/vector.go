package math

// vector is implemented by the fixed-size vector types. The generic helpers
// below carry the logic that is shared across dimensions.
type vector[V any] interface {
	Add(V) V
	Sub(V) V
	Scale(float32) V
	Dimension() int
	At(i int) float32
}

// lerp returns v1 + l*(v2-v1). Values of l outside (0, 1) return the
// matching endpoint unchanged.
func lerp[V vector[V]](v1, v2 V, l float32) V {
	if l <= 0 {
		return v1
	} else if l >= 1 {
		return v2
	}
	return v1.Add(v2.Sub(v1).Scale(l))
}

func dot[V vector[V]](a, b V) float32 {
	var d float32
	for i := 0; i < a.Dimension(); i++ {
		d += a.At(i) * b.At(i)
	}
	return d
}

func lengthSqr[V vector[V]](v V) float32 {
	var d float32
	for i := 0; i < v.Dimension(); i++ {
		d += Square(v.At(i))
	}
	return d
}

// normalize scales v to unit length. The zero vector is returned as is.
func normalize[V vector[V]](v V) V {
	return v.Scale(InvSqrt(lengthSqr(v)))
}

func compare[V vector[V]](a, b V, eps float32) bool {
	for i := 0; i < a.Dimension(); i++ {
		d := a.At(i) - b.At(i)
		if d > eps || d < -eps {
			return false
		}
	}
	return true
}

func toString[V vector[V]](v V, precision int) string {
	var values [6]float32
	n := v.Dimension()
	for i := 0; i < n; i++ {
		values[i] = v.At(i)
	}
	return FloatArrayToString(values[:n], precision)
}
