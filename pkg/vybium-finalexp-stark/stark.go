package vybiumfinalexpstark

import "github.com/vybium/vybium-finalexp-stark/internal/vybium-finalexp-stark/finalexp"

// FinalExponentiationSTARK bundles a generated trace with the Config it was
// built under.
type FinalExponentiationSTARK = finalexp.FinalExponentiationStark

// NewFinalExponentiationSTARK validates config (DefaultConfig() is used if
// nil) and generates the execution trace witnessing
// y = x^((p^12-1)/r) for the given Fp12 input.
func NewFinalExponentiationSTARK(x Fp12, config *Config) (*FinalExponentiationSTARK, error) {
	return finalexp.NewFinalExponentiationStark(x, config)
}

// GenerateTrace builds a Trace of the given height for x directly, without
// wrapping it in a FinalExponentiationSTARK. Most callers should prefer
// NewFinalExponentiationSTARK, which also validates the Config.
func GenerateTrace(x Fp12, height int) (*Trace, error) {
	return finalexp.GenerateTrace(x, height)
}
