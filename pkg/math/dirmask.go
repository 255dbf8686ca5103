package math

// Direction mask bits. Each axis owns two bits: 2*axis for negative and
// 2*axis+1 for positive. A zero component sets neither.
const (
	DirNegX = 1 << iota
	DirPosX
	DirNegY
	DirPosY
	DirNegZ
	DirPosZ
)

// DirectionMask compresses the sign pattern of v into 6 bits.
// Magnitudes are discarded.
func (v Vec3) DirectionMask() int {
	mask := 0
	for axis := 0; axis < 3; axis++ {
		c := v.At(axis)
		switch {
		case c < 0:
			mask |= 1 << (axis << 1)
		case c > 0:
			mask |= 1 << ((axis << 1) + 1)
		}
	}
	return mask
}

// Vec3FromDirectionMask expands a direction mask into a vector whose
// components are each -1, 0 or +1. If both bits of an axis are set the
// negative bit wins.
func Vec3FromDirectionMask(mask int) Vec3 {
	var c [3]float32
	for axis := range c {
		negative := 1 << (axis << 1)
		positive := 1 << ((axis << 1) + 1)
		switch {
		case mask&negative != 0:
			c[axis] = -1
		case mask&positive != 0:
			c[axis] = 1
		}
	}
	return Vec3{c[0], c[1], c[2]}
}

// ValidDirectionMask reports whether mask fits in 6 bits and no axis has
// both its negative and positive bit set.
func ValidDirectionMask(mask int) bool {
	if mask < 0 || mask > 63 {
		return false
	}
	for axis := 0; axis < 3; axis++ {
		both := 3 << (axis << 1)
		if mask&both == both {
			return false
		}
	}
	return true
}
