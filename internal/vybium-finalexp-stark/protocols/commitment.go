// Package protocols commits to a final-exponentiation execution trace. The
// full FRI folding protocol, Fiat-Shamir proof stream, and prover/verifier
// pipeline this package once carried are out of scope for this module (see
// DESIGN.md): what remains is the one piece a fixed, single-computation
// trace can still put to honest use ahead of any future low-degree proof
// over it — a per-column Merkle commitment, built with the teacher's own
// core.MerkleTree.
package protocols

import (
	"encoding/binary"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-finalexp-stark/internal/vybium-finalexp-stark/core"
)

// ColumnCommitment is a Merkle commitment to one trace column.
type ColumnCommitment struct {
	tree *core.MerkleTree
}

// CommitColumn hashes each cell of column into a Merkle leaf.
func CommitColumn(column []field.Element) (*ColumnCommitment, error) {
	leaves := make([][]byte, len(column))
	for i := range column {
		leaf := make([]byte, 8)
		binary.BigEndian.PutUint64(leaf, column[i].Value())
		leaves[i] = leaf
	}
	tree, err := core.NewMerkleTree(leaves)
	if err != nil {
		return nil, err
	}
	return &ColumnCommitment{tree: tree}, nil
}

// Root returns the column's Merkle root.
func (c *ColumnCommitment) Root() []byte {
	return c.tree.Root()
}

// CommitTrace commits to every column of a trace given in column-major form
// (see finalexp.Trace.TraceToColumns), returning one root per column.
func CommitTrace(columns [][]field.Element) ([][]byte, error) {
	roots := make([][]byte, len(columns))
	for i, col := range columns {
		c, err := CommitColumn(col)
		if err != nil {
			return nil, err
		}
		roots[i] = c.Root()
	}
	return roots, nil
}
