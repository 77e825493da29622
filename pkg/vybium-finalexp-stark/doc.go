// Package vybiumfinalexpstark is the public API for a zkSTARK arithmetizing
// the BLS12-381 final exponentiation: the map
//
//	y = x^((p^12-1)/r), x, y in Fp12
//
// that turns a Miller-loop output into a genuine pairing value. The trace
// records the fixed 32-step schedule of Frobenius maps, Fp12
// multiplications, cyclotomic exponentiation by the BLS seed, cyclotomic
// squarings, and conjugations this computation decomposes into, and its
// constraints bind that schedule to the (x, y) public inputs.
//
// # Quick start
//
//	stark, err := vybiumfinalexpstark.NewFinalExponentiationSTARK(x, vybiumfinalexpstark.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	if bad := stark.Evaluate(); bad >= 0 {
//		log.Fatalf("constraint violated at row %d", bad)
//	}
//	y := stark.PublicInputs() // (INPUT, OUTPUT) limb pair
//
// # Architecture
//
// This package is a thin re-export layer over
// internal/vybium-finalexp-stark/finalexp, which holds the actual trace
// generation and constraint evaluation. Implementation details there can be
// refactored without breaking the types and functions exported here.
//
// # References
//
// See DESIGN.md and SPEC_FULL.md in the repository root for the full
// requirements this module implements and how each piece is grounded.
package vybiumfinalexpstark
