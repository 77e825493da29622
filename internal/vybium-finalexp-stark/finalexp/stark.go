package finalexp

import (
	"encoding/binary"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-finalexp-stark/internal/vybium-finalexp-stark/protocols"
	"github.com/vybium/vybium-finalexp-stark/internal/vybium-finalexp-stark/transcript"
)

// FinalExponentiationStark bundles a trace with the STARK parameters it was
// built under, grounded on the teacher's protocols.STARKParameters /
// Stark-trait pattern and on the Stark trait impl in
// original_source/final_exponentiate.rs.
type FinalExponentiationStark struct {
	trace  *Trace
	config *Config
}

// NewFinalExponentiationStark validates config and builds the trace for x.
func NewFinalExponentiationStark(x Fp12, config *Config) (*FinalExponentiationStark, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	trace, err := GenerateTrace(x, config.TraceHeight)
	if err != nil {
		return nil, err
	}
	return &FinalExponentiationStark{trace: trace, config: config}, nil
}

// Trace returns the underlying execution trace.
func (s *FinalExponentiationStark) Trace() *Trace { return s.trace }

// ConstraintDegree reports the maximum degree of any constraint this STARK
// evaluates. Carried from constraint_degree() in
// original_source/final_exponentiate.rs (spec.md's EXTERNAL INTERFACES).
func (s *FinalExponentiationStark) ConstraintDegree() int { return 5 }

// PublicInputs returns the (INPUT, T31) pair this trace witnesses, in the
// PIS_INPUT_OFFSET/PIS_OUTPUT_OFFSET layout of spec.md §6.
func (s *FinalExponentiationStark) PublicInputs() []field.Element {
	row := s.trace.Row(0)
	last := s.trace.Row(s.trace.Height() - 1)
	pis := make([]field.Element, NumPublicInputs)
	copy(pis[PISInputOffset:PISInputOffset+FP12Limbs], row[InputOffset:InputOffset+FP12Limbs])
	copy(pis[PISOutputOffset:PISOutputOffset+FP12Limbs], last[T31Offset:T31Offset+FP12Limbs])
	return pis
}

// Commit returns one Merkle root per trace column, ahead of any future
// low-degree proof over them (the FRI folding protocol itself is out of
// scope for this module; see protocols.CommitTrace).
func (s *FinalExponentiationStark) Commit() ([][]byte, error) {
	return protocols.CommitTrace(s.trace.TraceToColumns())
}

// Challenge derives an out-of-domain evaluation point via Fiat-Shamir,
// absorbing the committed column roots and the public inputs into a
// transcript.Channel before drawing a field element. This is the one piece
// of verifier-side randomness a Merkle-committed trace needs ahead of a FRI
// query phase, which remains out of scope for this module.
func (s *FinalExponentiationStark) Challenge() (field.Element, error) {
	roots, err := s.Commit()
	if err != nil {
		return field.Element{}, err
	}
	ch := transcript.NewChannel()
	for _, root := range roots {
		ch.Send(root)
	}
	for _, pi := range s.PublicInputs() {
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, pi.Value())
		ch.Send(buf)
	}
	return ch.ReceiveRandomFieldElement(), nil
}

// Evaluate runs EvalConstraints over every (local, next) row pair of the
// trace, cycling the last row's "next" back to row 0 (the trace is
// evaluated over a domain closed under one step, as in any STARK). It
// returns the first row at which some constraint is nonzero, or -1 if the
// whole trace is valid.
func (s *FinalExponentiationStark) Evaluate() int {
	pis := s.PublicInputs()
	height := s.trace.Height()
	for r := 0; r < height; r++ {
		local := s.trace.Row(r)
		next := s.trace.Row((r + 1) % height)
		if !EvalConstraints(local, next, pis, r, height).AllZero() {
			return r
		}
	}
	return -1
}
