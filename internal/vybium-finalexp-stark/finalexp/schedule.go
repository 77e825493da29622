package finalexp

// OpKind identifies which of the five sub-STARKs a schedule step is routed
// through. Division is witnessed as a multiplication with swapped operand
// order (spec.md Design Notes), so it shares KindMul's selector rather than
// owning a sixth one-hot column.
type OpKind int

const (
	KindFrobenius OpKind = iota
	KindMul
	KindCycExp
	KindCycSq
	KindConjugate
)

func (k OpKind) String() string {
	switch k {
	case KindFrobenius:
		return "frobenius"
	case KindMul:
		return "mul"
	case KindCycExp:
		return "cyc_exp"
	case KindCycSq:
		return "cyc_sq"
	case KindConjugate:
		return "conjugate"
	default:
		return "unknown"
	}
}

// SelectorOffset returns the column offset of this kind's one-hot selector.
func (k OpKind) SelectorOffset() int {
	switch k {
	case KindFrobenius:
		return FrobeniusSelectorOffset
	case KindMul:
		return MulSelectorOffset
	case KindCycExp:
		return CycExpSelectorOffset
	case KindCycSq:
		return CycSqSelectorOffset
	case KindConjugate:
		return ConjugateSelectorOffset
	default:
		panic("finalexp: unknown op kind")
	}
}

// operandRef names where a schedule step's operand comes from: the
// row-invariant INPUT register, or a previously computed Tj.
type operandRef int

const inputRef operandRef = -1

func tRef(j int) operandRef { return operandRef(j) }

// step is one entry of the fixed 32-step final-exponentiation schedule.
type step struct {
	kind OpKind
	// isDiv marks T0 = T1 * INPUT, witnessing T1 = T0 / INPUT: the glue
	// constraint swaps which operand is the multiplication's output.
	isDiv bool
	// pow is the Frobenius power (1, 2, 3, or 6); unused otherwise.
	pow int
	// a, b are the step's operands. b is unused for Frobenius/CycExp/
	// CycSq/Conjugate (unary sub-operations).
	a, b operandRef
	rows int
}

// schedule is the fixed sequence computing
// y = x^((p^12-1)/r) over 32 intermediate Fp12 values, grounded on
// FinalExponentiateStark::generate_trace in
// original_source/final_exponentiate.rs.
var schedule = [32]step{
	{kind: KindFrobenius, pow: 6, a: inputRef, rows: 12},                 // T0 = Frobenius^6(x)
	{kind: KindMul, isDiv: true, a: tRef(0), b: inputRef, rows: 12},      // T1 = T0 / x
	{kind: KindFrobenius, pow: 2, a: tRef(1), rows: 12},                  // T2 = Frobenius^2(T1)
	{kind: KindMul, a: tRef(2), b: tRef(1), rows: 12},                    // T3 = T2 * T1
	{kind: KindCycExp, a: tRef(3), rows: 841},                            // T4 = T3^u
	{kind: KindConjugate, a: tRef(4), rows: 1},                           // T5 = conj(T4)
	{kind: KindCycSq, a: tRef(3), rows: 12},                              // T6 = T3^2
	{kind: KindConjugate, a: tRef(6), rows: 1},                           // T7 = conj(T6)
	{kind: KindMul, a: tRef(7), b: tRef(5), rows: 12},                    // T8 = T7 * T5
	{kind: KindCycExp, a: tRef(8), rows: 841},                            // T9 = T8^u
	{kind: KindConjugate, a: tRef(9), rows: 1},                           // T10 = conj(T9)
	{kind: KindCycExp, a: tRef(10), rows: 841},                           // T11 = T10^u
	{kind: KindConjugate, a: tRef(11), rows: 1},                          // T12 = conj(T11)
	{kind: KindCycExp, a: tRef(12), rows: 841},                           // T13 = T12^u
	{kind: KindConjugate, a: tRef(13), rows: 1},                          // T14 = conj(T13)
	{kind: KindCycSq, a: tRef(5), rows: 12},                              // T15 = T5^2
	{kind: KindMul, a: tRef(14), b: tRef(15), rows: 12},                  // T16 = T14 * T15
	{kind: KindCycExp, a: tRef(16), rows: 841},                           // T17 = T16^u
	{kind: KindConjugate, a: tRef(17), rows: 1},                          // T18 = conj(T17)
	{kind: KindMul, a: tRef(5), b: tRef(12), rows: 12},                   // T19 = T5 * T12
	{kind: KindFrobenius, pow: 2, a: tRef(19), rows: 12},                 // T20 = Frobenius^2(T19)
	{kind: KindMul, a: tRef(10), b: tRef(3), rows: 12},                   // T21 = T10 * T3
	{kind: KindFrobenius, pow: 3, a: tRef(21), rows: 12},                 // T22 = Frobenius^3(T21)
	{kind: KindConjugate, a: tRef(3), rows: 1},                           // T23 = conj(T3)
	{kind: KindMul, a: tRef(16), b: tRef(23), rows: 12},                  // T24 = T16 * T23
	{kind: KindFrobenius, pow: 1, a: tRef(24), rows: 12},                 // T25 = Frobenius^1(T24)
	{kind: KindConjugate, a: tRef(8), rows: 1},                           // T26 = conj(T8)
	{kind: KindMul, a: tRef(18), b: tRef(26), rows: 12},                  // T27 = T18 * T26
	{kind: KindMul, a: tRef(27), b: tRef(3), rows: 12},                   // T28 = T27 * T3
	{kind: KindMul, a: tRef(20), b: tRef(22), rows: 12},                  // T29 = T20 * T22
	{kind: KindMul, a: tRef(29), b: tRef(25), rows: 12},                  // T30 = T29 * T25
	{kind: KindMul, a: tRef(30), b: tRef(28), rows: 12},                  // T31 = T30 * T28 (output)
}

// rowRange holds the half-open [start, end) row range of schedule step k,
// computed cumulatively: step 0 starts at row 0, step k+1 starts where
// step k ends.
type rowRange struct{ start, end int }

// rowRanges and totalRows are derived once at package init, mirroring the
// T0_ROW..T31_ROW/TOTAL_ROW constants of the Rust source.
var (
	rowRanges [32]rowRange
	totalRows int
)

func init() {
	row := 0
	for k, s := range schedule {
		rowRanges[k] = rowRange{start: row, end: row + s.rows}
		row += s.rows
	}
	totalRows = row
}

// TotalRows returns the minimum number of rows required to hold the entire
// schedule (4441 for the fixed 32-step BLS12-381 final exponentiation).
func TotalRows() int { return totalRows }

// RowRange returns the half-open row range occupied by schedule step k.
func RowRange(k int) (start, end int) {
	r := rowRanges[k]
	return r.start, r.end
}
