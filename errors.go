package huffcode

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidBit is returned when a bit value other than 0 or 1 is
	// written to a BitWriter.
	ErrInvalidBit = errors.New("invalid bit")

	// ErrExhausted is returned when a bit is requested from a BitReader
	// that has none left, including when a compressed stream ends in the
	// middle of a code.
	ErrExhausted = errors.New("no more bits")

	// ErrMalformedTable is returned when a text code table cannot be
	// loaded.
	ErrMalformedTable = errors.New("malformed code table")

	// ErrMissingCode is returned when a symbol to be compressed has no
	// entry in the code table.
	ErrMissingCode = errors.New("missing code")

	// ErrCorrupt is returned when a compressed stream violates the stream
	// format.
	ErrCorrupt = errors.New("corrupt stream")

	// ErrClosed is returned by operations on a closed BitWriter or
	// BitReader.
	ErrClosed = errors.New("already closed")
)
