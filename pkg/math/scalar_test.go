package math

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestInvSqrt(t *testing.T) {
	if got := InvSqrt(4); got != 0.5 {
		t.Errorf("InvSqrt(4) = %v, want 0.5", got)
	}
	for _, x := range []float32{0, -1} {
		if got := InvSqrt(x); got != 0 {
			t.Errorf("InvSqrt(%v) = %v, want 0", x, got)
		}
	}
}

func TestAcosClamps(t *testing.T) {
	if got := Acos(1.0000001); math32.IsNaN(got) || got != 0 {
		t.Errorf("Acos(1+eps) = %v, want 0", got)
	}
	if got := Acos(-1.5); math32.IsNaN(got) || !near(got, math32.Pi, 1e-6) {
		t.Errorf("Acos(-1.5) = %v, want pi", got)
	}
}

func TestDegRad(t *testing.T) {
	if got := Rad2Deg(Deg2Rad(123)); !near(got, 123, 1e-4) {
		t.Errorf("Rad2Deg(Deg2Rad(123)) = %v", got)
	}
	if got := Deg2Rad(180); !near(got, math32.Pi, 1e-6) {
		t.Errorf("Deg2Rad(180) = %v, want pi", got)
	}
}

func TestAngleNormalize(t *testing.T) {
	tests := []struct {
		in, want360, want180 float32
	}{
		{0, 0, 0},
		{360, 0, 0},
		{-90, 270, -90},
		{450, 90, 90},
		{-720, 0, 0},
		{270, 270, -90},
		{180, 180, 180},
	}
	for _, tt := range tests {
		if got := AngleNormalize360(tt.in); got != tt.want360 {
			t.Errorf("AngleNormalize360(%v) = %v, want %v", tt.in, got, tt.want360)
		}
		if got := AngleNormalize180(tt.in); got != tt.want180 {
			t.Errorf("AngleNormalize180(%v) = %v, want %v", tt.in, got, tt.want180)
		}
	}

	if got := AngleNormalize360(-1e-6); got < 0 || got >= 360 {
		t.Errorf("AngleNormalize360(-1e-6) = %v, outside [0,360)", got)
	}
}

func TestClampSquare(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Clamp(5, 0, 3) = %v", got)
	}
	if got := Clamp[float32](-0.5, 0, 1); got != 0 {
		t.Errorf("Clamp(-0.5, 0, 1) = %v", got)
	}
	if got := Square(-3); got != 9 {
		t.Errorf("Square(-3) = %v", got)
	}
}
