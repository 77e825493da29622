package vybiumfinalexpstark

import (
	"errors"
	"testing"
)

func TestErrorCodesAreDistinguishable(t *testing.T) {
	codes := []ErrorCode{ErrUnknown, ErrTraceTooShort, ErrMalformedInput, ErrConstraintViolation}
	seen := map[ErrorCode]bool{}
	for _, c := range codes {
		if seen[c] {
			t.Fatalf("error code %v reused", c)
		}
		seen[c] = true
	}
}

func TestErrorIsMatchesByCode(t *testing.T) {
	var zero Fp12
	_, err := NewFinalExponentiationSTARK(zero, DefaultConfig())
	if err == nil {
		t.Fatal("expected an error for a zero Fp12 input")
	}
	var target *Error = &Error{Code: ErrMalformedInput}
	if !errors.Is(err, target) {
		t.Fatalf("errors.Is: expected ErrMalformedInput, got %v", err)
	}
}
