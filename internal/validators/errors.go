package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidNote wraps every rule violation found in a note or a patch.
	ErrInvalidNote = errors.New("invalid note")
)
