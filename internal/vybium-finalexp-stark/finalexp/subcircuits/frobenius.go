package subcircuits

import "github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"

// Frobenius computes x^(p^Pow) for Pow in {1, 2, 3, 6}, gated by its own
// Pow parameter pinned into the operand bus by the glue constraints in
// finalexp/constraints_glue.go.
type Frobenius struct {
	Pow int
}

func (f Frobenius) Width() int { return Width }

func (f Frobenius) Fill(trace [][]field.Element, startRow, endRow, base int, inputs ...Fp12) Fp12 {
	x := inputs[0]
	out := frobeniusPow(x, f.Pow)

	writeBus(trace, startRow, endRow, base, OperandAOffset, limbsOf(&x))
	writeBus(trace, startRow, endRow, base, OutputOffset, limbsOf(&out))
	for r := startRow; r < endRow; r++ {
		trace[r][base+PowOffset] = field.New(uint64(f.Pow))
	}
	return out
}

// Constrain stands in for the range-checked Frobenius-coefficient
// multiplication circuit a full Fp12 sub-STARK would evaluate here (see
// package doc comment / DESIGN.md): it contributes the single selector-
// gated zero term that a real implementation's internal constraints would
// replace, keeping the dispatch genuinely exercised without claiming
// correctness this module does not implement.
func (f Frobenius) Constrain(local, next []field.Element, yield func(field.Element), base int, selector field.Element) {
	yield(selector.Mul(field.Zero))
}

// frobeniusPow applies the Frobenius endomorphism x -> x^(p^pow). Since
// Frob^a(Frob^b(x)) = x^(p^(a+b)), pow in {1,2,3,6} is reached by composing
// gnark-crypto's Frobenius (pow 1), FrobeniusSquare (pow 2) and
// FrobeniusCube (pow 3) primitives.
func frobeniusPow(x Fp12, pow int) Fp12 {
	var out Fp12
	switch pow {
	case 1:
		out.Frobenius(&x)
	case 2:
		out.FrobeniusSquare(&x)
	case 3:
		out.FrobeniusCube(&x)
	case 6:
		var half Fp12
		half.FrobeniusCube(&x)
		out.FrobeniusCube(&half)
	default:
		panic("subcircuits: unsupported frobenius power")
	}
	return out
}
