package finalexp

import "testing"

func TestGenerateTraceRejectsZeroInput(t *testing.T) {
	var zero Fp12
	if _, err := GenerateTrace(zero, RowSelectorsCapacity); err == nil {
		t.Fatal("expected an error for a zero input")
	} else if fe, ok := err.(*FinalExpError); !ok || fe.Code != ErrMalformedInput {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
}

func TestGenerateTraceRejectsShortHeight(t *testing.T) {
	x := testInput()
	if _, err := GenerateTrace(x, 1024); err == nil {
		t.Fatal("expected an error for a trace too short to hold the schedule")
	} else if fe, ok := err.(*FinalExpError); !ok || fe.Code != ErrTraceTooShort {
		t.Fatalf("expected ErrTraceTooShort, got %v", err)
	}
}

func TestGenerateTraceRejectsNonPowerOfTwoHeight(t *testing.T) {
	x := testInput()
	if _, err := GenerateTrace(x, TotalRows()+1); err == nil {
		t.Fatal("expected an error for a non-power-of-two height")
	}
}

func TestGenerateTraceRejectsExcessiveHeight(t *testing.T) {
	x := testInput()
	if _, err := GenerateTrace(x, RowSelectorsCapacity*2); err == nil {
		t.Fatal("expected an error for a height beyond the reserved row-selector capacity")
	}
}

func TestGenerateTraceRowInvariance(t *testing.T) {
	x := testInput()
	trace, err := GenerateTrace(x, RowSelectorsCapacity)
	if err != nil {
		t.Fatalf("GenerateTrace: %v", err)
	}

	first := trace.Row(0)
	for r := 1; r < trace.Height(); r++ {
		row := trace.Row(r)
		for i := 0; i < FP12Limbs; i++ {
			if !row[InputOffset+i].Equal(first[InputOffset+i]) {
				t.Fatalf("row %d: INPUT limb %d differs from row 0", r, i)
			}
		}
		for _, off := range TOffsets {
			for i := 0; i < FP12Limbs; i++ {
				if !row[off+i].Equal(first[off+i]) {
					t.Fatalf("row %d: T-register limb at offset %d differs from row 0", r, off+i)
				}
			}
		}
	}
}

func TestGenerateTraceExactlyOneKindSelectorPerActiveRow(t *testing.T) {
	x := testInput()
	trace, err := GenerateTrace(x, RowSelectorsCapacity)
	if err != nil {
		t.Fatalf("GenerateTrace: %v", err)
	}

	selectors := []int{FrobeniusSelectorOffset, MulSelectorOffset, CycExpSelectorOffset, CycSqSelectorOffset, ConjugateSelectorOffset}
	for r := 0; r < TotalRows(); r++ {
		row := trace.Row(r)
		count := 0
		for _, off := range selectors {
			if !row[off].IsZero() {
				count++
			}
		}
		if count != 1 {
			t.Fatalf("row %d: %d kind selectors active, want exactly 1", r, count)
		}
	}
	// Padding rows beyond the schedule should have no active kind.
	for r := TotalRows(); r < trace.Height(); r++ {
		row := trace.Row(r)
		for _, off := range selectors {
			if !row[off].IsZero() {
				t.Fatalf("padding row %d: selector at offset %d unexpectedly active", r, off)
			}
		}
	}
}

func TestStarkEvaluatesWithNoConstraintViolation(t *testing.T) {
	x := testInput()
	stark, err := NewFinalExponentiationStark(x, DefaultConfig())
	if err != nil {
		t.Fatalf("NewFinalExponentiationStark: %v", err)
	}
	if bad := stark.Evaluate(); bad != -1 {
		t.Fatalf("constraint violated at row %d", bad)
	}
}

func TestPublicInputsBindInputAndOutput(t *testing.T) {
	x := testInput()
	stark, err := NewFinalExponentiationStark(x, DefaultConfig())
	if err != nil {
		t.Fatalf("NewFinalExponentiationStark: %v", err)
	}
	pis := stark.PublicInputs()
	if len(pis) != NumPublicInputs {
		t.Fatalf("len(PublicInputs()) = %d, want %d", len(pis), NumPublicInputs)
	}

	row := stark.Trace().Row(0)
	for i := 0; i < FP12Limbs; i++ {
		if !pis[PISInputOffset+i].Equal(row[InputOffset+i]) {
			t.Fatalf("PIS_INPUT limb %d does not match trace INPUT", i)
		}
	}
	last := stark.Trace().Row(stark.Trace().Height() - 1)
	for i := 0; i < FP12Limbs; i++ {
		if !pis[PISOutputOffset+i].Equal(last[T31Offset+i]) {
			t.Fatalf("PIS_OUTPUT limb %d does not match trace T31", i)
		}
	}
}

func TestStarkCommitReturnsOneRootPerColumn(t *testing.T) {
	x := testInput()
	stark, err := NewFinalExponentiationStark(x, DefaultConfig())
	if err != nil {
		t.Fatalf("NewFinalExponentiationStark: %v", err)
	}
	roots, err := stark.Commit()
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if len(roots) != TotalColumns {
		t.Fatalf("len(roots) = %d, want %d", len(roots), TotalColumns)
	}
}

func TestStarkChallengeIsDeterministic(t *testing.T) {
	x := testInput()
	stark1, err := NewFinalExponentiationStark(x, DefaultConfig())
	if err != nil {
		t.Fatalf("NewFinalExponentiationStark: %v", err)
	}
	stark2, err := NewFinalExponentiationStark(x, DefaultConfig())
	if err != nil {
		t.Fatalf("NewFinalExponentiationStark: %v", err)
	}

	c1, err := stark1.Challenge()
	if err != nil {
		t.Fatalf("Challenge: %v", err)
	}
	c2, err := stark2.Challenge()
	if err != nil {
		t.Fatalf("Challenge: %v", err)
	}
	if c1.Value() != c2.Value() {
		t.Fatalf("identical traces should derive identical challenges, got %d and %d", c1.Value(), c2.Value())
	}
}

func TestTraceToColumnsTransposesCorrectly(t *testing.T) {
	x := testInput()
	trace, err := GenerateTrace(x, RowSelectorsCapacity)
	if err != nil {
		t.Fatalf("GenerateTrace: %v", err)
	}
	cols := trace.TraceToColumns()
	if len(cols) != TotalColumns {
		t.Fatalf("len(columns) = %d, want %d", len(cols), TotalColumns)
	}
	if len(cols[0]) != trace.Height() {
		t.Fatalf("len(column 0) = %d, want %d", len(cols[0]), trace.Height())
	}
	for r := 0; r < trace.Height(); r++ {
		if !cols[InputOffset][r].Equal(trace.Row(r)[InputOffset]) {
			t.Fatalf("column/row mismatch at row %d", r)
		}
	}
}
