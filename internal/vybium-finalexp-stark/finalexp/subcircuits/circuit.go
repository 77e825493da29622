package subcircuits

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// Fp12 is the native tower-field type, aliased to the same gnark-crypto
// type finalexp.Fp12 aliases, so values cross the package boundary without
// conversion.
type Fp12 = bls12381.E12

// SubCircuit is the Fill/Constrain ABI every sub-operation kind satisfies,
// per spec.md §6's sub-STARK contract.
type SubCircuit interface {
	// Fill computes the sub-operation's native result from inputs and
	// writes the shared operand bus (trace[r][base+OperandAOffset:...]) for
	// every row in [startRow, endRow).
	Fill(trace [][]field.Element, startRow, endRow, base int, inputs ...Fp12) Fp12

	// Constrain evaluates this sub-operation's internal constraints for one
	// (local, next) row pair, calling yield once per constraint term,
	// gated by selector (the kind's one-hot column value at this row).
	Constrain(local, next []field.Element, yield func(field.Element), base int, selector field.Element)

	// Width reports how many columns of the shared operand bus this kind
	// actually uses.
	Width() int
}

func writeBus(trace [][]field.Element, startRow, endRow, base, subOffset int, limbs [FP12Limbs]uint32) {
	for r := startRow; r < endRow; r++ {
		for i, l := range limbs {
			trace[r][base+subOffset+i] = field.New(uint64(l))
		}
	}
}

// limbsOf encodes x as 144 little-endian u32 limbs, using the same
// coefficient ordering and limb width as finalexp.LimbsOfFp12. The two
// packages duplicate this small conversion rather than share it, to keep
// subcircuits free of any dependency on finalexp.
func limbsOf(x *Fp12) [FP12Limbs]uint32 {
	elems := [12]interface{ BigInt(*big.Int) *big.Int }{
		&x.C0.B0.A0, &x.C0.B0.A1, &x.C0.B1.A0, &x.C0.B1.A1, &x.C0.B2.A0, &x.C0.B2.A1,
		&x.C1.B0.A0, &x.C1.B0.A1, &x.C1.B1.A0, &x.C1.B1.A1, &x.C1.B2.A0, &x.C1.B2.A1,
	}
	var out [FP12Limbs]uint32
	for idx, e := range elems {
		v := new(big.Int)
		e.BigInt(v)
		tmp := new(big.Int).Set(v)
		mask := big.NewInt(1 << 32)
		for i := 0; i < 12; i++ {
			rem := new(big.Int)
			tmp.DivMod(tmp, mask, rem)
			out[idx*12+i] = uint32(rem.Uint64())
		}
	}
	return out
}
