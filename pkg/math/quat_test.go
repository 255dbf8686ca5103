package math

import (
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := Sqrt(n.Dot(n))
	if !near(length, 1, 0.0001) {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}

	if z := (Quat{}).Normalize(); z != QuatIdentity() {
		t.Errorf("zero quaternion should normalize to identity, got %v", z)
	}
}

func TestQuatSlerp(t *testing.T) {
	q1 := QuatIdentity()
	q2 := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, 90)

	// Endpoints are returned unchanged.
	if got := q1.Slerp(q2, 0); got != q1 {
		t.Errorf("Slerp at t=0 should equal q1, got %v", got)
	}
	if got := q1.Slerp(q2, 1); got != q2 {
		t.Errorf("Slerp at t=1 should equal q2, got %v", got)
	}

	// For 90 degree rotation, halfway should be 45 degrees
	result5 := q1.Slerp(q2, 0.5)
	expectedW := Cos(Deg2Rad(22.5))
	if !near(result5.W, expectedW, 0.001) {
		t.Errorf("Slerp at t=0.5: expected W ~%v, got %v", expectedW, result5.W)
	}
}

func TestQuatSlerpShortestPath(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{0, 0, 1}, 40)
	neg := Quat{-q.X, -q.Y, -q.Z, -q.W}

	// q and -q are the same rotation, so the blend should not move.
	got := q.Slerp(neg, 0.5).ToMat3()
	if !got.Compare(q.ToMat3(), 1e-5) {
		t.Errorf("Slerp(q, -q) = %v, want %v", got, q.ToMat3())
	}
}

func TestQuatToMat4(t *testing.T) {
	// Identity quaternion should produce identity matrix
	q := QuatIdentity()
	m := q.ToMat4()

	identity := Identity()
	for i := 0; i < 16; i++ {
		if !near(m[i], identity[i], 0.0001) {
			t.Errorf("Identity quat should produce identity matrix, element %d: got %v, want %v", i, m[i], identity[i])
		}
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	// 90 degrees around Y axis
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, 90)

	// Should have Y component and W = cos(45deg)
	expected := Sqrt(2) / 2

	if !near(q.W, expected, 0.001) {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expected, q.W)
	}
	if !near(q.Y, expected, 0.001) {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", expected, q.Y)
	}

	// Rotating X by 90 degrees around Z lands on Y.
	rz := QuatFromAxisAngle(Vec3{0, 0, 1}, 90).ToMat3()
	if got := rz.MulVec3(Vec3{1, 0, 0}); !got.Compare(Vec3{0, 1, 0}, 1e-6) {
		t.Errorf("90 degrees around Z maps X to %v, want Y", got)
	}
}

func TestQuatMulMatchesMat3(t *testing.T) {
	a := QuatFromAxisAngle(Vec3{0, 0, 1}, 30)
	b := QuatFromAxisAngle(Vec3{1, 0, 0}, 60)

	got := a.Mul(b).ToMat3()
	want := a.ToMat3().Mul(b.ToMat3())
	if !got.Compare(want, 1e-5) {
		t.Errorf("(a*b).ToMat3() = %v, want %v", got, want)
	}
}

func TestAnglesToQuat(t *testing.T) {
	a := Angles{Pitch: 0, Yaw: 90, Roll: 0}
	q := a.ToQuat()
	fwd := q.ToMat3()[0]
	if !fwd.Compare(a.ToForward(), 1e-5) {
		t.Errorf("ToQuat forward = %v, want %v", fwd, a.ToForward())
	}
}
