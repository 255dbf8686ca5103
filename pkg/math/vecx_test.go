package math

import (
	"sync"
	"testing"
)

func TestVecXDimensionFixed(t *testing.T) {
	v := NewVecX(7)
	if v.Dimension() != 7 {
		t.Fatalf("Dimension() = %d, want 7", v.Dimension())
	}
	for i := 0; i < 7; i++ {
		if v.At(i) != 0 {
			t.Errorf("At(%d) = %v, want 0", i, v.At(i))
		}
	}
}

func TestVecXFromCopies(t *testing.T) {
	src := []float32{1, 2, 3}
	v := VecXFrom(src...)
	src[0] = 99
	if v.At(0) != 1 {
		t.Errorf("VecXFrom kept a reference to its input")
	}

	c := v.Clone()
	c.Set(1, 42)
	if v.At(1) != 2 {
		t.Errorf("Clone shares storage with the original")
	}
}

func TestVecXLerp(t *testing.T) {
	a := VecXFrom(0.1, 1e8, -0.3, 2, 5, 6, 7)
	b := VecXFrom(0.7, 3, 1e-7, -2, 0.33, 1, 0)

	lo := a.Lerp(b, 0)
	hi := a.Lerp(b, 1)
	for i := 0; i < a.Dimension(); i++ {
		if lo.At(i) != a.At(i) {
			t.Errorf("Lerp(0)[%d] = %v, want %v", i, lo.At(i), a.At(i))
		}
		if hi.At(i) != b.At(i) {
			t.Errorf("Lerp(1)[%d] = %v, want %v", i, hi.At(i), b.At(i))
		}
	}

	mid := VecXFrom(0, 0).Lerp(VecXFrom(2, 4), 0.5)
	if !mid.Compare(VecXFrom(1, 2), 1e-6) {
		t.Errorf("Lerp(0.5) = %v, want 1 2", mid)
	}
}

func TestLerpIntoNoAlias(t *testing.T) {
	a := VecXFrom(0, 0, 0)
	b := VecXFrom(4, 8, 12)
	dst := NewVecX(3)

	LerpInto(dst, a, b, 0.25)
	if !dst.Compare(VecXFrom(1, 2, 3), 1e-6) {
		t.Errorf("LerpInto(0.25) = %v", dst)
	}
	if a.At(0) != 0 || b.At(0) != 4 {
		t.Errorf("LerpInto modified its inputs")
	}
}

func TestVecXDimensionMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Add with mismatched dimensions did not panic")
		}
	}()
	VecXFrom(1, 2).Add(VecXFrom(1, 2, 3))
}

func TestVecXNormalize(t *testing.T) {
	v := VecXFrom(1, 2, 2).Normalize()
	if !near(v.Length(), 1, 1e-6) {
		t.Errorf("Normalize().Length() = %v, want 1", v.Length())
	}
	z := NewVecX(4).Normalize()
	for i := 0; i < 4; i++ {
		if z.At(i) != 0 {
			t.Errorf("zero Normalize()[%d] = %v, want 0", i, z.At(i))
		}
	}
}

func TestVecXToStringConcurrent(t *testing.T) {
	v := VecXFrom(1, 2.5, -3, 0.25)
	want := "1 2.5 -3 0.25"

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if got := v.ToString(2); got != want {
					t.Errorf("ToString() = %q, want %q", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}
