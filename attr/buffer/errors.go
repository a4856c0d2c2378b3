package buffer

import "errors"

// ErrInvalidArgument is returned for negative offsets or counts, an empty
// source with a positive count, or a target too short for the request.
var ErrInvalidArgument = errors.New("buffer: invalid argument")
