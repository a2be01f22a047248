package params

import "errors"

var (
	// ErrLengthMismatch is returned by SetValues when the supplied slice
	// does not have exactly one value per parameter in the collection.
	ErrLengthMismatch = errors.New("params: value count does not match collection size")

	// ErrGroupNotFound is returned by Deserialize when the document contains
	// no element matching the group's escaped name.
	ErrGroupNotFound = errors.New("params: group element not found in document")

	// ErrParse is returned when a persisted text value cannot be parsed as
	// the parameter's type.
	ErrParse = errors.New("params: cannot parse value")
)
