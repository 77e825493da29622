// Package finalexp arithmetizes the BLS12-381 final exponentiation
// y = x^((p^12-1)/r) as a STARK execution trace: a fixed 32-step schedule
// of Frobenius maps, Fp12 multiplications, cyclotomic exponentiation by the
// BLS seed, cyclotomic squarings, and conjugations, dispatched over a
// shared operand bus and bound to public inputs via a one-hot row-selector
// grid.
//
// # Quick start
//
//	stark, err := finalexp.NewFinalExponentiationStark(x, finalexp.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	if bad := stark.Evaluate(); bad >= 0 {
//		log.Fatalf("constraint violated at row %d", bad)
//	}
//
// # Architecture
//
// layout.go and schedule.go fix the trace's column and row layout;
// native.go computes the 32 intermediate Fp12 values via gnark-crypto's
// bls12-381 tower; trace.go builds the execution trace; constraints.go and
// constraints_glue.go evaluate it; finalexp/subcircuits implements the
// five dispatched sub-STARKs' Fill/Constrain ABI.
//
// See DESIGN.md for how each piece is grounded in the retrieval pack, and
// SPEC_FULL.md for the complete requirements this package implements.
package finalexp
