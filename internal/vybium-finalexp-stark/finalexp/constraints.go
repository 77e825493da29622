package finalexp

import (
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"

	"github.com/vybium/vybium-finalexp-stark/internal/vybium-finalexp-stark/finalexp/subcircuits"
)

// ConstraintConsumer accumulates the packed evaluation of every constraint
// polynomial for one (local, next) row pair, mirroring plonky2/starky's
// yield_constr pattern used by eval_packed_generic in
// original_source/final_exponentiate.rs. A valid trace makes every
// accumulated value zero.
type ConstraintConsumer struct {
	values []field.Element
}

// Constraint records a bare constraint value (no implicit filter).
func (c *ConstraintConsumer) Constraint(v field.Element) {
	c.values = append(c.values, v)
}

// ConstraintFiltered records filter*v, the standard way of gating a
// constraint so it is only live when filter is nonzero (e.g. a kind
// selector, or a row-selector one-hot bit).
func (c *ConstraintConsumer) ConstraintFiltered(filter, v field.Element) {
	c.values = append(c.values, filter.Mul(v))
}

// Values returns every accumulated constraint value.
func (c *ConstraintConsumer) Values() []field.Element {
	return c.values
}

// AllZero reports whether every accumulated constraint value is zero.
func (c *ConstraintConsumer) AllZero() bool {
	for _, v := range c.values {
		if !v.IsZero() {
			return false
		}
	}
	return true
}

func rowSelectors(row []field.Element, height int) []field.Element {
	return row[RowSelectorsOffset : RowSelectorsOffset+height]
}

// evalRowSelectorConstraints enforces that ROW_SELECTORS is a one-hot
// walking-bit grid: exactly one column is 1 at row 0 (the first-row
// family), and the 1 marches forward by one column every row, wrapping
// cyclically from the last row back to the first (the transition family).
func evalRowSelectorConstraints(yield *ConstraintConsumer, local, next []field.Element, rowIdx, height int) {
	localSel := rowSelectors(local, height)
	nextSel := rowSelectors(next, height)

	if rowIdx == 0 {
		for i, v := range localSel {
			if i == 0 {
				yield.Constraint(v.Sub(field.One))
			} else {
				yield.Constraint(v)
			}
		}
	}

	for i := 0; i < height; i++ {
		prev := (i - 1 + height) % height
		yield.Constraint(nextSel[i].Sub(localSel[prev]))
	}
}

// evalRowInvariantConstraints enforces that INPUT and every Tk register is
// unchanged from one row to the next: they are written once by
// GenerateTrace and read by every sub-operation instance throughout the
// trace, so they must be constant across all rows (spec.md invariant:
// "INPUT and Tk are row-invariant").
func evalRowInvariantConstraints(yield *ConstraintConsumer, local, next []field.Element) {
	for i := 0; i < FP12Limbs; i++ {
		yield.Constraint(next[InputOffset+i].Sub(local[InputOffset+i]))
	}
	for _, off := range TOffsets {
		for i := 0; i < FP12Limbs; i++ {
			yield.Constraint(next[off+i].Sub(local[off+i]))
		}
	}
}

// evalPublicInputBinding binds INPUT to PIS_INPUT at row 0 and T31 to
// PIS_OUTPUT at the trace's last row. INPUT and T31 are row-invariant, so
// binding them once (rather than at every row) is sufficient and mirrors
// the row-selector-gated public-input binding of spec.md §4.4.
func evalPublicInputBinding(yield *ConstraintConsumer, local []field.Element, publicInputs []field.Element, rowIdx, height int) {
	if rowIdx == 0 {
		for i := 0; i < FP12Limbs; i++ {
			yield.Constraint(local[InputOffset+i].Sub(publicInputs[PISInputOffset+i]))
		}
	}
	if rowIdx == height-1 {
		for i := 0; i < FP12Limbs; i++ {
			yield.Constraint(local[T31Offset+i].Sub(publicInputs[PISOutputOffset+i]))
		}
	}
}

// evalKindExclusivity enforces that the five kind selectors are each
// boolean and mutually exclusive: at most one is 1 in any given row
// (padding rows past the schedule's TotalRows() have all five at 0).
func evalKindExclusivity(yield *ConstraintConsumer, local []field.Element) {
	offsets := []int{FrobeniusSelectorOffset, MulSelectorOffset, CycExpSelectorOffset, CycSqSelectorOffset, ConjugateSelectorOffset}
	sum := field.Zero
	for _, off := range offsets {
		bit := local[off]
		yield.Constraint(bit.Mul(bit.Sub(field.One)))
		sum = sum.Add(bit)
	}
	yield.Constraint(sum.Mul(sum.Sub(field.One)))
}

// EvalConstraints evaluates every constraint of the final-exponentiation
// STARK for one (local, next) row pair at absolute row index rowIdx of a
// trace of the given height, against the given public inputs
// ([]field.Element of length NumPublicInputs). This is the Go equivalent of
// eval_packed_generic in original_source/final_exponentiate.rs.
func EvalConstraints(local, next []field.Element, publicInputs []field.Element, rowIdx, height int) *ConstraintConsumer {
	yield := &ConstraintConsumer{}

	evalRowSelectorConstraints(yield, local, next, rowIdx, height)
	evalRowInvariantConstraints(yield, local, next)
	evalPublicInputBinding(yield, local, publicInputs, rowIdx, height)
	evalKindExclusivity(yield, local)

	for k, s := range schedule {
		start, end := RowRange(k)
		atStart := local[RowSelectorsOffset+start]
		atEnd := local[RowSelectorsOffset+end-1]
		inRange := field.Zero
		for i := start; i < end; i++ {
			inRange = inRange.Add(local[RowSelectorsOffset+i])
		}
		evalGlueConstraints(yield, local, s, k, atStart, atEnd, inRange)
	}

	evalSubCircuitConstraints(yield, local, next)

	return yield
}

// evalSubCircuitConstraints dispatches each of the five sub-STARKs'
// internal constraints, gated by its own kind selector, per spec.md §4.6
// ("multiply each sub-STARK's constraint set by its kind selector").
func evalSubCircuitConstraints(yield *ConstraintConsumer, local, next []field.Element) {
	dispatch := func(sc subcircuits.SubCircuit, selectorOffset int) {
		sc.Constrain(local, next, yield.Constraint, OpOffset, local[selectorOffset])
	}
	dispatch(subcircuits.Frobenius{}, FrobeniusSelectorOffset)
	dispatch(subcircuits.Multiplication{}, MulSelectorOffset)
	dispatch(subcircuits.CyclotomicExp{}, CycExpSelectorOffset)
	dispatch(subcircuits.CyclotomicSquare{}, CycSqSelectorOffset)
	dispatch(subcircuits.Conjugate{}, ConjugateSelectorOffset)
}
