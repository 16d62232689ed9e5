package guid

import "github.com/pkg/errors"

var (
	// ErrMalformed is returned for any text that is not a registry-format
	// GUID: wrong length, wrong brace or dash, or a non-hex digit. Parse does
	// not say which check failed.
	ErrMalformed = errors.New("guid: malformed GUID string")

	// ErrInvalidLength is returned when a binary GUID is not 16 bytes.
	ErrInvalidLength = errors.New("guid: invalid binary GUID length (expected 16 bytes)")
)
