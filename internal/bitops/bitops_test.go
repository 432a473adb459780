package bitops

import "testing"

func TestAlignUp(t *testing.T) {
	cases := []struct {
		n, align, want uintptr
	}{
		{0, 4096, 0},
		{1, 4096, 4096},
		{4095, 4096, 4096},
		{4096, 4096, 4096},
		{4097, 4096, 8192},
		{1, 8, 8},
		{9, 8, 16},
		{16, 16, 16},
	}
	for _, c := range cases {
		if got := AlignUp(c.n, c.align); got != c.want {
			t.Errorf("AlignUp(%d, %d) = %d, want %d", c.n, c.align, got, c.want)
		}
	}
}

func TestIsAligned(t *testing.T) {
	if !IsAligned(8192, 4096) {
		t.Errorf("IsAligned(8192, 4096) = false, want true")
	}
	if IsAligned(8193, 4096) {
		t.Errorf("IsAligned(8193, 4096) = true, want false")
	}
	if !IsAligned(0, 4096) {
		t.Errorf("IsAligned(0, 4096) = false, want true")
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []uintptr{1, 2, 4096, 1 << 30} {
		if !IsPowerOfTwo(n) {
			t.Errorf("IsPowerOfTwo(%d) = false, want true", n)
		}
	}
	for _, n := range []uintptr{0, 3, 4097, 12288} {
		if IsPowerOfTwo(n) {
			t.Errorf("IsPowerOfTwo(%d) = true, want false", n)
		}
	}
}
