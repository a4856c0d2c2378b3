package core

import "testing"

func TestEnsureLenReuse(t *testing.T) {
	buf := make([]float64, 4, 8)

	out := EnsureLen(buf, 6)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}

	if cap(out) != cap(buf) {
		t.Fatalf("cap = %d, want %d", cap(out), cap(buf))
	}
}

func TestEnsureLenGrows(t *testing.T) {
	out := EnsureLen([]float32{1}, 3)
	if len(out) != 3 || cap(out) < 3 {
		t.Fatalf("len/cap = %d/%d, want 3", len(out), cap(out))
	}
}

func TestEnsureLenNonPositive(t *testing.T) {
	buf := []int{1, 2, 3}
	if out := EnsureLen(buf, -1); len(out) != 0 {
		t.Fatalf("len = %d, want 0", len(out))
	}
}

func TestCopyInto(t *testing.T) {
	dst := make([]float64, 2)

	n := CopyInto(dst, []float64{1, 2, 3})
	if n != 2 {
		t.Fatalf("n = %d, want 2", n)
	}

	if dst[0] != 1 || dst[1] != 2 {
		t.Fatalf("unexpected dst: %#v", dst)
	}
}

func TestPadTo(t *testing.T) {
	tests := []struct {
		name string
		buf  []float64
		n    int
		pad  []float64
		want []float64
	}{
		{name: "cycled", buf: []float64{9}, n: 4, pad: []float64{0, 0, 0, 255}, want: []float64{9, 0, 0, 255}},
		{name: "zero pad", buf: []float64{1}, n: 3, want: []float64{1, 0, 0}},
		{name: "already full", buf: []float64{1, 2}, n: 2, pad: []float64{7}, want: []float64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PadTo(tt.buf, tt.n, tt.pad)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
