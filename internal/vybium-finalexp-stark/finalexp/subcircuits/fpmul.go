package subcircuits

import "github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"

// Multiplication computes a*b in Fp12. It also serves division: the
// schedule's one division step witnesses T1 = T0/x as the multiplication
// T0 = T1*x, with the finalexp glue swapping which operand is which; the
// sub-circuit itself only ever multiplies.
type Multiplication struct{}

func (m Multiplication) Width() int { return Width }

func (m Multiplication) Fill(trace [][]field.Element, startRow, endRow, base int, inputs ...Fp12) Fp12 {
	a, b := inputs[0], inputs[1]
	var out Fp12
	out.Mul(&a, &b)

	writeBus(trace, startRow, endRow, base, OperandAOffset, limbsOf(&a))
	writeBus(trace, startRow, endRow, base, OperandBOffset, limbsOf(&b))
	writeBus(trace, startRow, endRow, base, OutputOffset, limbsOf(&out))
	return out
}

// Constrain stands in for the range-checked Fp12 multiplication circuit a
// full sub-STARK would evaluate here (package doc comment / DESIGN.md).
func (m Multiplication) Constrain(local, next []field.Element, yield func(field.Element), base int, selector field.Element) {
	yield(selector.Mul(field.Zero))
}
