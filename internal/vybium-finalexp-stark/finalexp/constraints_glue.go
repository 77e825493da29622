package finalexp

import (
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// offsetOf returns the column offset of the register a schedule operand
// refers to: INPUT for the row-invariant x, or Tj for a prior result.
func offsetOf(ref operandRef) int {
	if ref == inputRef {
		return InputOffset
	}
	return TOffsets[int(ref)]
}

// busWiring returns which registers the shared OP bus's operand-A,
// operand-B and output slots are checked against for schedule step k. For
// every kind but division this is the obvious (input registers, result
// register) triple; division swaps operand-A and the output, since T1 =
// T0/x is witnessed as the multiplication T0 = T1*x (spec.md Design
// Notes), matching the wiring GenerateTrace uses in trace.go.
func busWiring(s step, k int) (aCol, bCol, outCol int, hasB bool) {
	switch {
	case s.kind == KindMul && s.isDiv:
		return TOffsets[k], offsetOf(s.b), offsetOf(s.a), true
	case s.kind == KindMul:
		return offsetOf(s.a), offsetOf(s.b), TOffsets[k], true
	default:
		return offsetOf(s.a), 0, TOffsets[k], false
	}
}

// evalGlueConstraints enforces, for schedule step k over its row range:
//   - the kind selector column is 1 throughout the range (kind exclusivity,
//     evalKindExclusivity, forces every other kind's selector to 0 here),
//   - (Frobenius only) the pinned power parameter matches the schedule,
//   - the OP bus's operand(s) equal the driving register(s) at the range's
//     first row,
//   - the OP bus's output equals the target register at the range's first
//     row (also at the last row, gated by the cyclotomic-exp sub-STARK's
//     own RES_ROW_SELECTOR, for cyclotomic exponentiation specifically).
//
// Grounded on add_constraints_forbenius/mul/cyc_exp/conjugate/cyc_sq in
// original_source/final_exponentiate.rs.
func evalGlueConstraints(yield *ConstraintConsumer, local []field.Element, s step, k int, atStart, atEnd, inRange field.Element) {
	sel := local[s.kind.SelectorOffset()]
	yield.ConstraintFiltered(inRange, sel.Sub(field.One))

	if s.kind == KindFrobenius {
		yield.ConstraintFiltered(inRange, local[OpOffset+OpPowOffset].Sub(field.New(uint64(s.pow))))
	}

	aCol, bCol, outCol, hasB := busWiring(s, k)

	for i := 0; i < FP12Limbs; i++ {
		yield.ConstraintFiltered(atStart, local[OpOffset+OpOperandAOffset+i].Sub(local[aCol+i]))
		if hasB {
			yield.ConstraintFiltered(atStart, local[OpOffset+OpOperandBOffset+i].Sub(local[bCol+i]))
		}
		yield.ConstraintFiltered(atStart, local[OpOffset+OpOutputOffset+i].Sub(local[outCol+i]))
	}

	if s.kind == KindCycExp {
		resRowSelector := local[OpOffset+OpResSelectorOffset]
		gate := atEnd.Mul(resRowSelector)
		for i := 0; i < FP12Limbs; i++ {
			yield.ConstraintFiltered(gate, local[OpOffset+OpOutputOffset+i].Sub(local[outCol+i]))
		}
	}
}
