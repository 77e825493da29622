package transcript

import (
	"testing"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

func TestNewChannelInitializesState(t *testing.T) {
	ch := NewChannel()
	if len(ch.state) == 0 {
		t.Error("channel state not initialized")
	}
	if len(ch.Proof()) != 0 {
		t.Error("fresh channel should have an empty proof transcript")
	}
}

func TestChannelSendChangesState(t *testing.T) {
	ch := NewChannel()
	before := ch.State()

	ch.Send([]byte("root-0"))

	after := ch.State()
	if string(before) == string(after) {
		t.Error("state should change after Send")
	}
	if len(ch.Proof()) != 1 {
		t.Errorf("expected 1 proof entry, got %d", len(ch.Proof()))
	}
}

func TestChannelReceiveRandomFieldElementInBounds(t *testing.T) {
	ch := NewChannel()
	ch.Send([]byte("commitment"))

	elem := ch.ReceiveRandomFieldElement()
	if elem.Value() >= field.P {
		t.Errorf("challenge %d out of field bounds", elem.Value())
	}
}

func TestChannelSuccessiveChallengesDiffer(t *testing.T) {
	ch := NewChannel()
	ch.Send([]byte("commitment"))

	a := ch.ReceiveRandomFieldElement()
	b := ch.ReceiveRandomFieldElement()
	if a.Value() == b.Value() {
		t.Error("successive challenges should very likely differ")
	}
}

func TestChannelDeterministic(t *testing.T) {
	data := []byte("same input")

	ch1 := NewChannel()
	ch1.Send(data)

	ch2 := NewChannel()
	ch2.Send(data)

	if string(ch1.State()) != string(ch2.State()) {
		t.Error("channels fed identical input should reach identical state")
	}
	if ch1.ReceiveRandomFieldElement().Value() != ch2.ReceiveRandomFieldElement().Value() {
		t.Error("channels fed identical input should derive identical challenges")
	}
}

func TestChannelStateIsACopy(t *testing.T) {
	ch := NewChannel()
	state1 := ch.State()
	state1[0] = 0xFF
	state2 := ch.State()
	if state1[0] == state2[0] {
		t.Error("State() should return a copy, not the internal slice")
	}
}
