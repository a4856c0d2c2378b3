package buffer

import (
	"errors"
	"testing"
)

func TestNewZeroFilled(t *testing.T) {
	b := New[float32](8)
	if b.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", b.Len())
	}
	for i, v := range b.Elements() {
		if v != 0 {
			t.Fatalf("Elements()[%d] = %v, want 0", i, v)
		}
	}
}

func TestNewNegativeLength(t *testing.T) {
	b := New[float64](-1)
	if b.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 for negative input", b.Len())
	}
}

func TestFromSliceSharesMemory(t *testing.T) {
	s := []float64{1, 2, 3}
	b := FromSlice(s)
	b.Elements()[0] = 99
	if s[0] != 99 {
		t.Fatal("FromSlice should share underlying memory")
	}
}

func TestGrowPreservesData(t *testing.T) {
	b := New[int](4)
	b.Elements()[0] = 42
	b.Grow(16)
	if b.Cap() < 16 {
		t.Fatalf("Cap() = %d, want >= 16", b.Cap())
	}
	if b.Len() != 4 {
		t.Fatalf("Len() = %d, want 4 after Grow", b.Len())
	}
	if b.Elements()[0] != 42 {
		t.Fatal("Grow did not preserve data")
	}
}

func TestGrowNoOpWhenSufficient(t *testing.T) {
	b := New[int](4)
	origCap := b.Cap()
	b.Grow(origCap)
	if b.Cap() != origCap {
		t.Fatal("Grow should be no-op when capacity is sufficient")
	}
}

func TestResizeGrow(t *testing.T) {
	b := FromSlice([]float64{1, 2})
	b.Resize(4)
	if b.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", b.Len())
	}
	if b.Elements()[0] != 1 || b.Elements()[1] != 2 {
		t.Fatal("Resize did not preserve existing data")
	}
	if b.Elements()[2] != 0 || b.Elements()[3] != 0 {
		t.Fatal("Resize did not zero new elements")
	}
}

func TestResizeShrinkAndNegative(t *testing.T) {
	b := FromSlice([]float64{5, 6, 7, 8})
	b.Resize(2)
	if b.Len() != 2 || b.Elements()[0] != 5 {
		t.Fatalf("Resize shrink: got %v", b.Elements())
	}
	b.Resize(-1)
	if b.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", b.Len())
	}
}

func TestResizeReuseClearsStaleData(t *testing.T) {
	b := FromSlice([]float64{1, 2, 3, 4})
	b.Resize(2)
	b.Resize(4)
	if b.Elements()[2] != 0 || b.Elements()[3] != 0 {
		t.Fatalf("stale data visible after Resize: %v", b.Elements())
	}
}

func TestZeroRangeClamps(t *testing.T) {
	b := FromSlice([]float64{1, 2, 3, 4, 5})
	b.ZeroRange(1, 4)
	want := []float64{1, 0, 0, 0, 5}
	for i, v := range b.Elements() {
		if v != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, v, want[i])
		}
	}

	b.ZeroRange(-5, 100)
	for i, v := range b.Elements() {
		if v != 0 {
			t.Fatalf("index %d: got %v, want 0", i, v)
		}
	}

	b.ZeroRange(4, 2) // inverted range is a no-op
}

func TestCopyIsDeep(t *testing.T) {
	b := FromSlice([]float64{1, 2, 3})
	c := b.Copy()
	c.Elements()[0] = 99
	if b.Elements()[0] == 99 {
		t.Fatal("Copy should not share memory")
	}
}

func TestFillTilesPattern(t *testing.T) {
	b := New[uint8](10)
	if err := b.Fill([]uint8{255, 0, 0, 255}, 1, 2); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	want := []uint8{0, 255, 0, 0, 255, 255, 0, 0, 255, 0}
	for i, v := range b.Elements() {
		if v != want[i] {
			t.Fatalf("index %d: got %v, want %v (%v)", i, v, want[i], b.Elements())
		}
	}
}

func TestFillTooShort(t *testing.T) {
	b := New[uint8](4)
	if err := b.Fill([]uint8{1, 2, 3}, 0, 2); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
}
