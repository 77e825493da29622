package vybiumfinalexpstark

import (
	"math/big"
	"testing"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

func testFp12() Fp12 {
	var x Fp12
	x.C0.B0.A0.SetBigInt(big.NewInt(2))
	x.C0.B1.A1.SetBigInt(big.NewInt(3))
	x.C1.B2.A0.SetBigInt(big.NewInt(5))
	return x
}

func TestNewFinalExponentiationSTARKProducesValidTrace(t *testing.T) {
	stark, err := NewFinalExponentiationSTARK(testFp12(), DefaultConfig())
	if err != nil {
		t.Fatalf("NewFinalExponentiationSTARK: %v", err)
	}
	if bad := stark.Evaluate(); bad != -1 {
		t.Fatalf("constraint violated at row %d", bad)
	}
	if stark.ConstraintDegree() != 5 {
		t.Fatalf("ConstraintDegree() = %d, want 5", stark.ConstraintDegree())
	}
}

func TestSTARKCommitReturnsRoots(t *testing.T) {
	stark, err := NewFinalExponentiationSTARK(testFp12(), DefaultConfig())
	if err != nil {
		t.Fatalf("NewFinalExponentiationSTARK: %v", err)
	}
	roots, err := stark.Commit()
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if len(roots) == 0 {
		t.Fatal("Commit returned no roots")
	}
}

func TestSTARKChallengeIsInFieldBounds(t *testing.T) {
	stark, err := NewFinalExponentiationSTARK(testFp12(), DefaultConfig())
	if err != nil {
		t.Fatalf("NewFinalExponentiationSTARK: %v", err)
	}
	challenge, err := stark.Challenge()
	if err != nil {
		t.Fatalf("Challenge: %v", err)
	}
	if challenge.Value() >= field.P {
		t.Fatalf("challenge %d out of field bounds", challenge.Value())
	}
}

func TestGenerateTraceRejectsZeroInput(t *testing.T) {
	var zero Fp12
	if _, err := GenerateTrace(zero, DefaultConfig().TraceHeight); err == nil {
		t.Fatal("expected an error for a zero input")
	}
}

func TestPublicInputsHaveExpectedLength(t *testing.T) {
	stark, err := NewFinalExponentiationSTARK(testFp12(), DefaultConfig())
	if err != nil {
		t.Fatalf("NewFinalExponentiationSTARK: %v", err)
	}
	pis := stark.PublicInputs()
	if len(pis) != 2*144 {
		t.Fatalf("len(PublicInputs()) = %d, want %d", len(pis), 2*144)
	}
}
