package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
// Reused elements keep whatever values they held.
func EnsureLen[T any](buf []T, n int) []T {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]T, n)
}

// CopyInto copies src into dst and returns the number of copied elements.
func CopyInto[T any](dst, src []T) int {
	return copy(dst, src)
}

// PadTo appends pad elements (cycled) to buf until it holds n elements.
// If pad is empty the zero value is used. buf is returned unchanged when
// it already holds n or more elements.
func PadTo[T any](buf []T, n int, pad []T) []T {
	for i := len(buf); i < n; i++ {
		var v T
		if len(pad) > 0 {
			v = pad[i%len(pad)]
		}
		buf = append(buf, v)
	}
	return buf
}
