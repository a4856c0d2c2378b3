package buffer

// Buffer wraps a slice with reuse-friendly semantics.
// Preparation functions accept raw slices; use Elements() to bridge.
type Buffer[T any] struct {
	elems []T
}

// New returns a zero-filled Buffer of the given length.
func New[T any](length int) *Buffer[T] {
	if length < 0 {
		length = 0
	}
	return &Buffer[T]{elems: make([]T, length)}
}

// FromSlice wraps an existing slice without copying.
// Mutations to the slice are visible through the Buffer and vice versa.
func FromSlice[T any](s []T) *Buffer[T] {
	return &Buffer[T]{elems: s}
}

// Elements returns the underlying slice.
func (b *Buffer[T]) Elements() []T {
	return b.elems
}

// Len returns the current number of elements.
func (b *Buffer[T]) Len() int {
	return len(b.elems)
}

// Cap returns the current capacity of the backing slice.
func (b *Buffer[T]) Cap() int {
	return cap(b.elems)
}

// Grow ensures capacity is at least n, preserving existing data.
// If the current capacity is already >= n this is a no-op.
func (b *Buffer[T]) Grow(n int) {
	if n <= cap(b.elems) {
		return
	}
	grown := make([]T, len(b.elems), n)
	copy(grown, b.elems)
	b.elems = grown
}

// Resize sets the length to n, reusing existing capacity when possible.
// New elements beyond the previous length are zeroed.
func (b *Buffer[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.elems)
	if n <= cap(b.elems) {
		b.elems = b.elems[:n]
	} else {
		s := make([]T, n)
		copy(s, b.elems)
		b.elems = s
	}
	// The backing array may hold stale data from an earlier, longer use.
	if n > oldLen {
		clear(b.elems[oldLen:n])
	}
}

// Zero sets all elements to the zero value.
func (b *Buffer[T]) Zero() {
	clear(b.elems)
}

// ZeroRange sets elements in [start, end) to the zero value.
// Indices are clamped to valid bounds.
func (b *Buffer[T]) ZeroRange(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > len(b.elems) {
		end = len(b.elems)
	}
	if start >= end {
		return
	}
	clear(b.elems[start:end])
}

// Copy returns a deep copy of the buffer.
func (b *Buffer[T]) Copy() *Buffer[T] {
	s := make([]T, len(b.elems))
	copy(s, b.elems)
	return &Buffer[T]{elems: s}
}

// Fill writes count copies of pattern starting at element start, using the
// same doubling copy and boundary policy as Replicate. The buffer is not
// resized; it must already be long enough.
func (b *Buffer[T]) Fill(pattern []T, start, count int) error {
	_, err := Replicate(b.elems, pattern, start, count)
	return err
}
