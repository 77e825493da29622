package subcircuits

import "github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"

// Conjugate computes the Fp12 conjugate of x (negation of the "odd" tower
// component), a single-row sub-operation (CONJUGATE_ROWS=1 in
// original_source/final_exponentiate.rs).
type Conjugate struct{}

func (c Conjugate) Width() int { return Width }

func (c Conjugate) Fill(trace [][]field.Element, startRow, endRow, base int, inputs ...Fp12) Fp12 {
	x := inputs[0]
	var out Fp12
	out.Conjugate(&x)

	writeBus(trace, startRow, endRow, base, OperandAOffset, limbsOf(&x))
	writeBus(trace, startRow, endRow, base, OutputOffset, limbsOf(&out))
	return out
}

// Constrain stands in for the range-checked negation circuit a full
// sub-STARK would evaluate here (package doc comment / DESIGN.md).
func (c Conjugate) Constrain(local, next []field.Element, yield func(field.Element), base int, selector field.Element) {
	yield(selector.Mul(field.Zero))
}
