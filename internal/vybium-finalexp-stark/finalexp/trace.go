package finalexp

import (
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"

	"github.com/vybium/vybium-finalexp-stark/internal/vybium-finalexp-stark/finalexp/subcircuits"
)

// Trace is a final-exponentiation execution trace: Height() rows of
// TotalColumns field elements each. The backing store is a plain
// [][]field.Element (Go has no const-generic array width) rather than a
// fixed-size array per row; newTrace allocates every row with TotalColumns
// cells — see DESIGN.md's Open Questions.
type Trace struct {
	rows   [][]field.Element
	height int
}

// Height returns the number of rows in the trace.
func (t *Trace) Height() int { return t.height }

// ColumnWidth returns the number of columns per row (always TotalColumns).
func (t *Trace) ColumnWidth() int { return TotalColumns }

// Rows returns the trace's row-major backing matrix. Callers must not
// resize it.
func (t *Trace) Rows() [][]field.Element { return t.rows }

// Row returns row i.
func (t *Trace) Row(i int) []field.Element { return t.rows[i] }

// TraceToColumns returns the trace transposed into column-major form, the
// convention the (out-of-scope) STARK proving driver interpolates per
// column. Grounded on trace_rows_to_poly_values in
// original_source/final_exponentiate.rs.
func (t *Trace) TraceToColumns() [][]field.Element {
	cols := make([][]field.Element, TotalColumns)
	for c := 0; c < TotalColumns; c++ {
		col := make([]field.Element, t.height)
		for r := 0; r < t.height; r++ {
			col[r] = t.rows[r][c]
		}
		cols[c] = col
	}
	return cols
}

func newTrace(height int) *Trace {
	rows := make([][]field.Element, height)
	for r := range rows {
		row := make([]field.Element, TotalColumns)
		for c := range row {
			row[c] = field.Zero
		}
		rows[r] = row
	}
	return &Trace{rows: rows, height: height}
}

func limbsToFieldElements(limbs [FP12Limbs]uint32) [FP12Limbs]field.Element {
	var out [FP12Limbs]field.Element
	for i, l := range limbs {
		out[i] = field.New(uint64(l))
	}
	return out
}

// writeBlock copies vals into row[offset:offset+len(vals)].
func writeBlock(row []field.Element, offset int, vals [FP12Limbs]field.Element) {
	copy(row[offset:offset+FP12Limbs], vals[:])
}

// GenerateTrace builds the execution trace witnessing
// y = x^((p^12-1)/r), following the fixed 32-step schedule. height must be
// a power of two between TotalRows() and RowSelectorsCapacity.
//
// Grounded on FinalExponentiateStark::generate_trace in
// original_source/final_exponentiate.rs: every fill_trace_* call there
// writes its kind's selector across the op's row range, broadcasts the
// step's native result into every row of the target Tk register (not only
// the op's own range — see DESIGN.md's Open Question decision), and wires
// the shared OP bus for that range.
func GenerateTrace(x Fp12, height int) (*Trace, error) {
	if height < TotalRows() {
		return nil, newError(ErrTraceTooShort, "height is smaller than the fixed schedule's row count")
	}
	if height > RowSelectorsCapacity {
		return nil, newError(ErrTraceTooShort, "height exceeds the reserved row-selector capacity")
	}
	if !isPowerOfTwo(height) {
		return nil, newError(ErrUnknown, "height must be a power of two")
	}
	if isZeroFp12(&x) {
		return nil, newError(ErrMalformedInput, "input must be nonzero: step 1 of the schedule divides by it")
	}

	t := computeWitness(x)
	trace := newTrace(height)

	inputVals := limbsToFieldElements(LimbsOfFp12(&x))
	var tVals [32][FP12Limbs]field.Element
	for k := range t {
		tVals[k] = limbsToFieldElements(LimbsOfFp12(&t[k]))
	}

	one := field.One
	for r := 0; r < height; r++ {
		row := trace.rows[r]
		row[RowSelectorsOffset+r] = one
		writeBlock(row, InputOffset, inputVals)
		for k := 0; k < 32; k++ {
			writeBlock(row, TOffsets[k], tVals[k])
		}
	}

	valueOf := func(ref operandRef) Fp12 {
		if ref == inputRef {
			return x
		}
		return t[int(ref)]
	}

	// Each schedule step's OP-bus window is populated by the matching
	// sub-circuit's own Fill, which independently recomputes the native
	// result from its operands (mirroring fill_trace_* delegating to
	// fill_trace_fp12_* in original_source/final_exponentiate.rs: the
	// top-level step and its sub-circuit each compute the same value).
	for k, s := range schedule {
		start, end := RowRange(k)
		sub := subCircuitFor(s)

		switch {
		case s.kind == KindMul && s.isDiv:
			sub.Fill(trace.rows, start, end, OpOffset, t[k], x)
		case s.kind == KindMul:
			sub.Fill(trace.rows, start, end, OpOffset, valueOf(s.a), valueOf(s.b))
		default:
			sub.Fill(trace.rows, start, end, OpOffset, valueOf(s.a))
		}

		for r := start; r < end; r++ {
			trace.rows[r][s.kind.SelectorOffset()] = one
		}
	}

	return trace, nil
}

// subCircuitFor resolves the sub-circuit implementation dispatched for
// schedule step s (Frobenius carries its pinned power parameter).
func subCircuitFor(s step) subcircuits.SubCircuit {
	switch s.kind {
	case KindFrobenius:
		return subcircuits.Frobenius{Pow: s.pow}
	case KindMul:
		return subcircuits.Multiplication{}
	case KindCycExp:
		return subcircuits.CyclotomicExp{}
	case KindCycSq:
		return subcircuits.CyclotomicSquare{}
	case KindConjugate:
		return subcircuits.Conjugate{}
	default:
		panic("finalexp: unknown op kind")
	}
}

func isZeroFp12(x *Fp12) bool {
	for _, c := range fp12Coefficients(x) {
		if c.Sign() != 0 {
			return false
		}
	}
	return true
}
