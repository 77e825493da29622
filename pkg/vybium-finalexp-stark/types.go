package vybiumfinalexpstark

import (
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-finalexp-stark/internal/vybium-finalexp-stark/finalexp"
)

// FieldElement is an element of the STARK's base field, the one the trace
// and its constraints are expressed over (distinct from Fp12, the BLS12-381
// tower field the computation being proved operates in).
type FieldElement = field.Element

// Fp12 is a BLS12-381 target-field element: both the final exponentiation's
// input and its output.
type Fp12 = finalexp.Fp12

// Config holds the STARK parameters a FinalExponentiationSTARK is built
// under: trace height, target security level, and FRI blowup factor.
type Config = finalexp.Config

// Trace is a generated execution trace: TraceHeight rows by TotalColumns
// columns, ready for constraint evaluation or column-major commitment.
type Trace = finalexp.Trace

// DefaultConfig returns the reference Config: an 8192-row trace (the next
// power of two above the 32-step schedule's row count), 128-bit security,
// and a blowup factor of 4.
func DefaultConfig() *Config {
	return finalexp.DefaultConfig()
}
