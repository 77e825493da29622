package subcircuits

import (
	"math/big"
	"testing"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

func testElement() Fp12 {
	var x Fp12
	x.C0.B0.A0.SetBigInt(big.NewInt(3))
	x.C0.B1.A1.SetBigInt(big.NewInt(5))
	x.C1.B2.A0.SetBigInt(big.NewInt(9))
	return x
}

func newRows(n int) [][]field.Element {
	rows := make([][]field.Element, n)
	for r := range rows {
		row := make([]field.Element, Width)
		for c := range row {
			row[c] = field.Zero
		}
		rows[r] = row
	}
	return rows
}

func TestMultiplicationFillWritesOperandsAndOutput(t *testing.T) {
	a, b := testElement(), testElement()
	var want Fp12
	want.Mul(&a, &b)

	rows := newRows(1)
	m := Multiplication{}
	got := m.Fill(rows, 0, 1, 0, a, b)

	gotLimbs := limbsOf(&got)
	wantLimbs := limbsOf(&want)
	if gotLimbs != wantLimbs {
		t.Fatal("Fill's returned value does not match a native Mul")
	}

	for i, l := range limbsOf(&a) {
		if rows[0][OperandAOffset+i] != field.New(uint64(l)) {
			t.Fatalf("operand A limb %d not written to the bus", i)
		}
	}
	for i, l := range limbsOf(&want) {
		if rows[0][OutputOffset+i] != field.New(uint64(l)) {
			t.Fatalf("output limb %d not written to the bus", i)
		}
	}
}

func TestFrobeniusFillPinsPowColumn(t *testing.T) {
	a := testElement()
	rows := newRows(3)
	f := Frobenius{Pow: 2}
	f.Fill(rows, 0, 3, 0, a)

	want := field.New(2)
	for r := 0; r < 3; r++ {
		if rows[r][PowOffset] != want {
			t.Fatalf("row %d: pow column = %v, want %v", r, rows[r][PowOffset], want)
		}
	}
}

func TestConstrainIsSelectorGated(t *testing.T) {
	var calls int
	var last field.Element
	yield := func(v field.Element) { calls++; last = v }

	local := make([]field.Element, Width)
	next := make([]field.Element, Width)
	Multiplication{}.Constrain(local, next, yield, 0, field.Zero)
	if calls != 1 {
		t.Fatalf("Constrain should call yield exactly once even when selector is zero, got %d calls", calls)
	}
	if !last.IsZero() {
		t.Fatalf("Constrain with a zero selector yielded %v, want zero", last)
	}
}

func TestAllKindsImplementSubCircuit(t *testing.T) {
	kinds := []SubCircuit{
		Frobenius{Pow: 1},
		Multiplication{},
		CyclotomicExp{},
		CyclotomicSquare{},
		Conjugate{},
	}
	for _, k := range kinds {
		if k.Width() != Width {
			t.Fatalf("%T.Width() = %d, want %d", k, k.Width(), Width)
		}
	}
}
