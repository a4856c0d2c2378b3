package manager

import "errors"

var (
	// ErrUnknownAttribute is returned when a name does not match any registered attribute.
	ErrUnknownAttribute = errors.New("manager: unknown attribute")
	// ErrDuplicateAttribute is returned when an attribute name is registered twice.
	ErrDuplicateAttribute = errors.New("manager: duplicate attribute")
	// ErrInvalidDescriptor is returned when a descriptor fails validation.
	ErrInvalidDescriptor = errors.New("manager: invalid descriptor")
	// ErrSizeMismatch is returned when an object's value has more components than the attribute size.
	ErrSizeMismatch = errors.New("manager: value size mismatch")
	// ErrInstanceCount is returned for a negative or overflowing object count.
	ErrInstanceCount = errors.New("manager: invalid instance count")
)
