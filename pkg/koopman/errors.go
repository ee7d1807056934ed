package koopman

import "errors"

var (
	// ErrEmptyInput is returned when a checksum is finalized without any
	// data bytes. The algorithm requires at least one byte; returning a
	// seed-derived value for empty input would silently look like a valid
	// checksum.
	ErrEmptyInput = errors.New("koopman: no data bytes absorbed")

	// ErrShortInput is returned when a variant's minimum data length is not
	// met. The 32-bit variants require at least two bytes.
	ErrShortInput = errors.New("koopman: input shorter than variant minimum")

	// ErrFinalized is returned on any write or sum call after the digest
	// has produced its check value.
	ErrFinalized = errors.New("koopman: digest already finalized")
)
