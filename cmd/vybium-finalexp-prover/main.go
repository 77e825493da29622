// Command vybium-finalexp-prover generates and checks a BLS12-381 final
// exponentiation trace for a single Fp12 input, read as JSON from stdin.
package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	vybiumfinalexpstark "github.com/vybium/vybium-finalexp-stark/pkg/vybium-finalexp-stark"
)

// fp12Input is the wire format for the 12 tower-field coefficients, in the
// canonical C0.B0.A0 .. C1.B2.A1 order, each a base-10 big.Int string.
type fp12Input struct {
	Coefficients [12]string `json:"coefficients"`
}

type publicInputsOutput struct {
	Input  []uint64 `json:"input"`
	Output []uint64 `json:"output"`
}

type proverOutput struct {
	Rows             int                `json:"rows"`
	Columns          int                `json:"columns"`
	ConstraintDegree int                `json:"constraint_degree"`
	PublicInputs     publicInputsOutput `json:"public_inputs"`
}

func main() {
	var in fp12Input
	if err := json.NewDecoder(os.Stdin).Decode(&in); err != nil {
		fatal(fmt.Sprintf("failed to parse input: %v", err))
	}

	x, err := parseFp12(in)
	if err != nil {
		fatal(fmt.Sprintf("invalid input: %v", err))
	}

	logStderr("generating trace...")
	stark, err := vybiumfinalexpstark.NewFinalExponentiationSTARK(x, vybiumfinalexpstark.DefaultConfig())
	if err != nil {
		fatal(fmt.Sprintf("trace generation failed: %v", err))
	}

	logStderr("evaluating constraints...")
	if bad := stark.Evaluate(); bad != -1 {
		fatal(fmt.Sprintf("constraint violated at row %d", bad))
	}
	logStderr("trace is valid")

	pis := stark.PublicInputs()
	out := proverOutput{
		Rows:             stark.Trace().Height(),
		Columns:          stark.Trace().ColumnWidth(),
		ConstraintDegree: stark.ConstraintDegree(),
		PublicInputs: publicInputsOutput{
			Input:  limbsOf(pis[:len(pis)/2]),
			Output: limbsOf(pis[len(pis)/2:]),
		},
	}

	if err := json.NewEncoder(os.Stdout).Encode(out); err != nil {
		fatal(fmt.Sprintf("failed to serialize output: %v", err))
	}
}

func parseFp12(in fp12Input) (vybiumfinalexpstark.Fp12, error) {
	var x vybiumfinalexpstark.Fp12
	setters := []func(*big.Int){
		func(v *big.Int) { x.C0.B0.A0.SetBigInt(v) },
		func(v *big.Int) { x.C0.B0.A1.SetBigInt(v) },
		func(v *big.Int) { x.C0.B1.A0.SetBigInt(v) },
		func(v *big.Int) { x.C0.B1.A1.SetBigInt(v) },
		func(v *big.Int) { x.C0.B2.A0.SetBigInt(v) },
		func(v *big.Int) { x.C0.B2.A1.SetBigInt(v) },
		func(v *big.Int) { x.C1.B0.A0.SetBigInt(v) },
		func(v *big.Int) { x.C1.B0.A1.SetBigInt(v) },
		func(v *big.Int) { x.C1.B1.A0.SetBigInt(v) },
		func(v *big.Int) { x.C1.B1.A1.SetBigInt(v) },
		func(v *big.Int) { x.C1.B2.A0.SetBigInt(v) },
		func(v *big.Int) { x.C1.B2.A1.SetBigInt(v) },
	}
	for i, s := range in.Coefficients {
		v, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return x, fmt.Errorf("coefficient %d (%q) is not a valid decimal integer", i, s)
		}
		setters[i](v)
	}
	return x, nil
}

func limbsOf(fe []vybiumfinalexpstark.FieldElement) []uint64 {
	out := make([]uint64, len(fe))
	for i, e := range fe {
		out[i] = e.Value()
	}
	return out
}

func logStderr(msg string) {
	fmt.Fprintln(os.Stderr, "vybium-finalexp-prover:", msg)
}

func fatal(msg string) {
	logStderr("ERROR: " + msg)
	os.Exit(1)
}
