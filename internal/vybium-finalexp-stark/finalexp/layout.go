package finalexp

// Column layout of the final-exponentiation trace. The block ordering and
// the row-selector capacity mirror FINAL_EXP_*_OFFSET in
// original_source/final_exponentiate.rs; the Go names are CamelCase rather
// than SCREAMING_SNAKE, but the arithmetic is the same.

const (
	// FP12Limbs is the number of field limbs that encode one Fp12 element:
	// Fp12 = (Fp6, Fp6), Fp6 = (Fp2, Fp2, Fp2), Fp2 = (Fp, Fp) -> 12 Fp
	// coefficients, each split into 12 u32 limbs.
	FP12Limbs = 144

	// RowSelectorsCapacity is the reserved width of the one-hot row-index
	// column block. A trace may use any power-of-two height up to this
	// capacity; unused row-selector columns beyond the active height are
	// zero.
	RowSelectorsCapacity = 8192

	// NumOpSelectors is the number of one-hot kind-selector columns
	// (Frobenius, Mul, CycExp, CycSq, Conjugate).
	NumOpSelectors = 5
)

// Row-selector column block.
const (
	RowSelectorsOffset = 0
)

// Kind-selector columns, one per sub-operation kind. Exactly one is 1 in any
// given active row; all five are 0 on padding rows.
const (
	FrobeniusSelectorOffset = RowSelectorsOffset + RowSelectorsCapacity
	MulSelectorOffset       = FrobeniusSelectorOffset + 1
	CycExpSelectorOffset    = MulSelectorOffset + 1
	CycSqSelectorOffset     = CycExpSelectorOffset + 1
	ConjugateSelectorOffset = CycSqSelectorOffset + 1
)

// INPUT: the row-invariant Fp12 value the whole trace is exponentiating.
const (
	InputOffset = ConjugateSelectorOffset + 1
)

// T0..T31: the 32 row-invariant intermediate results of the schedule.
const (
	T0Offset  = InputOffset + FP12Limbs
	T1Offset  = T0Offset + FP12Limbs
	T2Offset  = T1Offset + FP12Limbs
	T3Offset  = T2Offset + FP12Limbs
	T4Offset  = T3Offset + FP12Limbs
	T5Offset  = T4Offset + FP12Limbs
	T6Offset  = T5Offset + FP12Limbs
	T7Offset  = T6Offset + FP12Limbs
	T8Offset  = T7Offset + FP12Limbs
	T9Offset  = T8Offset + FP12Limbs
	T10Offset = T9Offset + FP12Limbs
	T11Offset = T10Offset + FP12Limbs
	T12Offset = T11Offset + FP12Limbs
	T13Offset = T12Offset + FP12Limbs
	T14Offset = T13Offset + FP12Limbs
	T15Offset = T14Offset + FP12Limbs
	T16Offset = T15Offset + FP12Limbs
	T17Offset = T16Offset + FP12Limbs
	T18Offset = T17Offset + FP12Limbs
	T19Offset = T18Offset + FP12Limbs
	T20Offset = T19Offset + FP12Limbs
	T21Offset = T20Offset + FP12Limbs
	T22Offset = T21Offset + FP12Limbs
	T23Offset = T22Offset + FP12Limbs
	T24Offset = T23Offset + FP12Limbs
	T25Offset = T24Offset + FP12Limbs
	T26Offset = T25Offset + FP12Limbs
	T27Offset = T26Offset + FP12Limbs
	T28Offset = T27Offset + FP12Limbs
	T29Offset = T28Offset + FP12Limbs
	T30Offset = T29Offset + FP12Limbs
	T31Offset = T30Offset + FP12Limbs
)

// TOffsets indexes the T0..T31 register offsets by k, for code that needs
// to address "Tk" generically (schedule iteration, row-invariance
// constraints).
var TOffsets = [32]int{
	T0Offset, T1Offset, T2Offset, T3Offset, T4Offset, T5Offset, T6Offset, T7Offset,
	T8Offset, T9Offset, T10Offset, T11Offset, T12Offset, T13Offset, T14Offset, T15Offset,
	T16Offset, T17Offset, T18Offset, T19Offset, T20Offset, T21Offset, T22Offset, T23Offset,
	T24Offset, T25Offset, T26Offset, T27Offset, T28Offset, T29Offset, T30Offset, T31Offset,
}

// OP: the shared operand bus multiplexed across all five sub-operation
// kinds. A single sub-operation instance occupies this block regardless of
// which kind is active in a given row range; the kind selector gates which
// constraint set is enforced against it.
const (
	OpOffset = T31Offset + FP12Limbs

	// Sub-offsets within the OP block, relative to OpOffset.
	OpOperandAOffset = 0
	OpOperandBOffset = OpOperandAOffset + FP12Limbs
	OpOutputOffset   = OpOperandBOffset + FP12Limbs
	OpPowOffset      = OpOutputOffset + FP12Limbs

	// OpResSelectorOffset is a sub-internal one-hot column owned by the
	// cyclotomic-exponentiation sub-STARK: 1 on the range's last row (where
	// its square-and-multiply schedule actually deposits the result), 0
	// elsewhere. Unused by every other kind. Grounded on final_exponentiate.
	// rs's RES_ROW_SELECTOR (spec.md Design Notes: "Implementers must
	// preserve this two-factor gating").
	OpResSelectorOffset = OpPowOffset + 1

	// OpWidth is the total width of the shared operand bus.
	OpWidth = OpResSelectorOffset + 1
)

// TotalColumns is the width of one trace row.
const TotalColumns = OpOffset + OpWidth

// Public-input layout (spec.md §6): the verifier binds INPUT and T31 to
// these two public values, independent of where they live in the trace
// itself.
const (
	PISInputOffset  = 0
	PISOutputOffset = FP12Limbs
	NumPublicInputs = PISOutputOffset + FP12Limbs
)
