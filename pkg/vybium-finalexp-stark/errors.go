package vybiumfinalexpstark

import "github.com/vybium/vybium-finalexp-stark/internal/vybium-finalexp-stark/finalexp"

// ErrorCode identifies a final-exponentiation trace/constraint failure mode.
type ErrorCode = finalexp.ErrCode

const (
	// ErrUnknown represents an unclassified error.
	ErrUnknown = finalexp.ErrUnknown

	// ErrTraceTooShort means the requested trace height cannot hold the
	// fixed 32-step schedule, or exceeds the reserved row-selector capacity.
	ErrTraceTooShort = finalexp.ErrTraceTooShort

	// ErrMalformedInput means the Fp12 input violates a precondition (the
	// schedule's division step requires it be nonzero).
	ErrMalformedInput = finalexp.ErrMalformedInput

	// ErrConstraintViolation means a generated trace failed its own
	// constraints at evaluation time.
	ErrConstraintViolation = finalexp.ErrConstraintViolation
)

// Error is the error type returned by this package's fallible operations.
type Error = finalexp.FinalExpError
