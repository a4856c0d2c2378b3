package buffer

import (
	"fmt"

	"github.com/cwbudde/algo-attrib/attr/core"
)

// Replicate writes count consecutive copies of source into target starting
// at start and returns target.
//
// The first copy of source is always written, even when count is 0, so the
// destination never ends up without at least one copy of the pattern. The
// remaining copies are produced by repeatedly duplicating the filled prefix
// of target[start:], which takes 1 + ceil(log2(count)) bulk copies.
//
// target must hold at least start + max(len(source), count*len(source))
// elements. All arguments are validated before target is modified; on error
// target is untouched.
func Replicate[T any](target, source []T, start, count int) ([]T, error) {
	if err := validate(len(target), len(source), start, count); err != nil {
		return target, err
	}
	replicate(target, source, start, count, nil)
	return target, nil
}

// CopyOps returns the number of bulk copies Replicate performs for a source
// of the given length repeated count times. It returns 0 for invalid input.
func CopyOps(length, count int) int {
	if length < 0 || count < 0 || (length == 0 && count > 0) {
		return 0
	}
	total, ok := core.CheckedMul(count, length)
	if !ok {
		return 0
	}

	ops := 1
	for copied := length; copied < total; ops++ {
		if copied < total-copied {
			copied *= 2
		} else {
			copied = total
		}
	}
	return ops
}

// Tile returns a new slice holding max(1, count) copies of pattern.
// It panics if count is negative.
func Tile[T any](pattern []T, count int) []T {
	if count < 0 {
		panic(fmt.Sprintf("buffer: negative tile count %d", count))
	}
	n, ok := core.CheckedMul(max(count, 1), len(pattern))
	if !ok {
		panic(fmt.Sprintf("buffer: tile size overflows int: %d x %d", count, len(pattern)))
	}

	out := make([]T, n)
	replicate(out, pattern, 0, count, nil)
	return out
}

func validate(targetLen, sourceLen, start, count int) error {
	if start < 0 {
		return fmt.Errorf("%w: negative start %d", ErrInvalidArgument, start)
	}
	if count < 0 {
		return fmt.Errorf("%w: negative count %d", ErrInvalidArgument, count)
	}
	if sourceLen == 0 && count > 0 {
		return fmt.Errorf("%w: empty source with count %d", ErrInvalidArgument, count)
	}

	total, ok := core.CheckedMul(count, sourceLen)
	if !ok {
		return fmt.Errorf("%w: %d copies of %d elements overflow int", ErrInvalidArgument, count, sourceLen)
	}
	span := max(sourceLen, total)
	if start > targetLen || span > targetLen-start {
		return fmt.Errorf("%w: target length %d too short for %d elements at offset %d",
			ErrInvalidArgument, targetLen, span, start)
	}
	return nil
}

// replicate performs the doubling copy on pre-validated arguments. If onCopy
// is non-nil it is called before every bulk copy with the destination offset,
// source offset and element count, all relative to target.
func replicate[T any](target, source []T, start, count int, onCopy func(dst, src, n int)) {
	length := len(source)
	total := count * length

	if onCopy != nil {
		onCopy(start, -1, length)
	}
	copy(target[start:start+length], source)

	copied := length
	for copied < total {
		n := copied
		if copied >= total-copied {
			n = total - copied
		}
		if onCopy != nil {
			onCopy(start+copied, start, n)
		}
		copy(target[start+copied:start+copied+n], target[start:start+n])
		copied += n
	}
}
