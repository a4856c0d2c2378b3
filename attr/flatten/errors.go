package flatten

import "errors"

var (
	// ErrDepthExceeded is returned when nesting exceeds the configured maximum depth.
	ErrDepthExceeded = errors.New("flatten: maximum nesting depth exceeded")
	// ErrNilMap is returned when a nil transform is supplied to AppendMapped.
	ErrNilMap = errors.New("flatten: nil transform")
)
