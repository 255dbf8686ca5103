// Package math provides math types and functions for game development.
package math

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Infinity is the engine's unbounded-magnitude sentinel.
// It stays finite so that 0*Infinity is 0 rather than NaN.
const Infinity float32 = 1e30

const (
	degToRad = math32.Pi / 180
	radToDeg = 180 / math32.Pi
)

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// InvSqrt returns 1/sqrt(x), or 0 when x <= 0.
func InvSqrt(x float32) float32 {
	if x <= 0 {
		return 0
	}
	return 1 / math32.Sqrt(x)
}

// Atan2 returns the arc tangent of y/x in radians.
func Atan2(y, x float32) float32 {
	return math32.Atan2(y, x)
}

// Sin returns the sine of the radian argument a.
func Sin(a float32) float32 {
	return math32.Sin(a)
}

// Cos returns the cosine of the radian argument a.
func Cos(a float32) float32 {
	return math32.Cos(a)
}

// SinCos returns the sine and cosine of a.
func SinCos(a float32) (s, c float32) {
	return math32.Sincos(a)
}

// Acos returns the arc cosine of a in radians.
// The argument is clamped to [-1, 1] first, so a dot product that
// drifted slightly out of range never turns into NaN.
func Acos(a float32) float32 {
	return math32.Acos(Clamp(a, -1, 1))
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float32) float32 {
	return d * degToRad
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float32) float32 {
	return r * radToDeg
}

// AngleNormalize360 wraps an angle in degrees into [0, 360).
func AngleNormalize360(angle float32) float32 {
	if angle >= 360 || angle < 0 {
		angle -= math32.Floor(angle/360) * 360
		// Floor can leave exactly 360 for tiny negative inputs.
		if angle >= 360 {
			angle -= 360
		}
	}
	return angle
}

// AngleNormalize180 wraps an angle in degrees into (-180, 180].
func AngleNormalize180(angle float32) float32 {
	angle = AngleNormalize360(angle)
	if angle > 180 {
		angle -= 360
	}
	return angle
}

// Square returns v*v.
func Square[T constraints.Integer | constraints.Float](v T) T {
	return v * v
}

// Clamp limits x to the range [low, high].
func Clamp[T constraints.Ordered](x, low, high T) T {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}
