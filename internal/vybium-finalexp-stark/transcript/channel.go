// Package transcript implements the Fiat-Shamir channel used to derive
// verifier challenges from committed trace data.
package transcript

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// Channel accumulates committed data (Merkle roots, public inputs) and
// derives pseudo-random challenges from it, SHA3-256 in place of an
// interactive verifier.
type Channel struct {
	state []byte
	proof []string
}

// NewChannel creates an empty Fiat-Shamir channel.
func NewChannel() *Channel {
	return &Channel{
		state: []byte{0},
		proof: make([]string, 0, 8),
	}
}

// Send absorbs data into the channel state, recording it in the transcript.
func (c *Channel) Send(data []byte) {
	c.proof = append(c.proof, fmt.Sprintf("send:%s", hex.EncodeToString(data)))
	c.state = c.hash(append(append([]byte(nil), c.state...), data...))
}

// ReceiveRandomFieldElement derives the next challenge as an element of the
// STARK base field, folding the draw back into the transcript state so
// repeated calls yield independent challenges.
func (c *Channel) ReceiveRandomFieldElement() field.Element {
	stateAsInt := new(big.Int).SetBytes(c.state)
	mod := new(big.Int).SetUint64(field.P)
	random := new(big.Int).Mod(stateAsInt, mod)

	c.proof = append(c.proof, fmt.Sprintf("receive:%s", random.String()))
	c.state = c.hash(c.state)

	return field.New(random.Uint64())
}

// State returns a copy of the channel's current absorbed state.
func (c *Channel) State() []byte {
	return append([]byte(nil), c.state...)
}

// Proof returns the recorded transcript of sends and receives.
func (c *Channel) Proof() []string {
	return append([]string(nil), c.proof...)
}

func (c *Channel) hash(data []byte) []byte {
	h := sha3.Sum256(data)
	return h[:]
}
