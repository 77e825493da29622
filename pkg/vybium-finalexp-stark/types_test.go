package vybiumfinalexpstark

import "testing"

func TestDefaultConfigIsValid(t *testing.T) {
	c := DefaultConfig()
	if c.TraceHeight <= 0 {
		t.Fatal("DefaultConfig: non-positive trace height")
	}
	if c.SecurityLevel <= 0 {
		t.Fatal("DefaultConfig: non-positive security level")
	}
	if c.FRIExpansionFactor <= 1 {
		t.Fatal("DefaultConfig: FRI expansion factor must exceed 1")
	}
}
