package serializable

import "errors"

var (
	// ErrNotFound is returned when a key has no registered descriptor.
	ErrNotFound = errors.New("serializable: type not registered")
	// ErrDuplicate is returned when a key is registered twice.
	ErrDuplicate = errors.New("serializable: type already registered")
	// ErrUnsupported is returned when a value cannot expose its attributes to
	// the codec.
	ErrUnsupported = errors.New("serializable: type does not expose attributes")
)
