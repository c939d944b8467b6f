package savestate

import "errors"

var (
	// ErrMalformedRecord indicates a stored payload is not a valid record:
	// not JSON, or one of the five fields is missing or has the wrong type.
	ErrMalformedRecord = errors.New("malformed save record")

	// ErrMalformedOrientation indicates the orient field is not a known tag.
	ErrMalformedOrientation = errors.New("malformed orientation")

	// ErrInvalidName indicates a save name was rejected by IsValidName.
	ErrInvalidName = errors.New("invalid save name")
)
