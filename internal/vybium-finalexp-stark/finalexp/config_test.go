package finalexp

import "testing"

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestConfigValidateRejectsShortTraceHeight(t *testing.T) {
	c := DefaultConfig().WithTraceHeight(1)
	if err := c.Validate(); err == nil {
		t.Fatal("expected an error for a trace height below the schedule minimum")
	}
}

func TestConfigValidateRejectsOversizeTraceHeight(t *testing.T) {
	c := DefaultConfig().WithTraceHeight(RowSelectorsCapacity * 2)
	if err := c.Validate(); err == nil {
		t.Fatal("expected an error for a trace height beyond row-selector capacity")
	}
}

func TestConfigValidateRejectsNonPowerOfTwo(t *testing.T) {
	c := DefaultConfig().WithTraceHeight(TotalRows() + 1)
	if err := c.Validate(); err == nil {
		t.Fatal("expected an error for a non-power-of-two trace height")
	}
}

func TestConfigValidateRejectsNonPositiveSecurityLevel(t *testing.T) {
	c := DefaultConfig().WithSecurityLevel(0)
	if err := c.Validate(); err == nil {
		t.Fatal("expected an error for a non-positive security level")
	}
}

func TestWithTraceHeightDoesNotMutateReceiver(t *testing.T) {
	base := DefaultConfig()
	original := base.TraceHeight
	_ = base.WithTraceHeight(original * 2)
	if base.TraceHeight != original {
		t.Fatalf("WithTraceHeight mutated the receiver: got %d, want %d", base.TraceHeight, original)
	}
}
