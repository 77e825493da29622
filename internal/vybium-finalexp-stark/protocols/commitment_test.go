package protocols

import (
	"bytes"
	"testing"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

func TestCommitColumnIsDeterministic(t *testing.T) {
	col := []field.Element{field.New(1), field.New(2), field.New(3), field.New(4)}
	a, err := CommitColumn(col)
	if err != nil {
		t.Fatalf("CommitColumn: %v", err)
	}
	b, err := CommitColumn(col)
	if err != nil {
		t.Fatalf("CommitColumn: %v", err)
	}
	if !bytes.Equal(a.Root(), b.Root()) {
		t.Fatal("committing the same column twice produced different roots")
	}
}

func TestCommitColumnDetectsDifference(t *testing.T) {
	a, err := CommitColumn([]field.Element{field.New(1), field.New(2)})
	if err != nil {
		t.Fatalf("CommitColumn: %v", err)
	}
	b, err := CommitColumn([]field.Element{field.New(1), field.New(3)})
	if err != nil {
		t.Fatalf("CommitColumn: %v", err)
	}
	if bytes.Equal(a.Root(), b.Root()) {
		t.Fatal("differing columns produced the same root")
	}
}

func TestCommitTraceReturnsOneRootPerColumn(t *testing.T) {
	columns := [][]field.Element{
		{field.New(1), field.New(2)},
		{field.New(3), field.New(4)},
		{field.New(5), field.New(6)},
	}
	roots, err := CommitTrace(columns)
	if err != nil {
		t.Fatalf("CommitTrace: %v", err)
	}
	if len(roots) != len(columns) {
		t.Fatalf("len(roots) = %d, want %d", len(roots), len(columns))
	}
	for i, r := range roots {
		if len(r) == 0 {
			t.Fatalf("root %d is empty", i)
		}
	}
}
