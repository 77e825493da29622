package finalexp

// Config holds the tunable parameters for building and evaluating a
// final-exponentiation trace, mirroring internal/.../utils/config.go's
// fluent Config/Validate/DefaultConfig pattern.
type Config struct {
	TraceHeight        int
	SecurityLevel      int
	FRIExpansionFactor int
}

// DefaultConfig returns a Config with a trace height large enough for the
// fixed 32-step schedule, padded to the next power of two, 128-bit target
// security, and a 4x FRI expansion factor (the teacher's default).
func DefaultConfig() *Config {
	return &Config{
		TraceHeight:        RowSelectorsCapacity,
		SecurityLevel:      128,
		FRIExpansionFactor: 4,
	}
}

// Validate checks that the configuration can build a trace at all.
func (c *Config) Validate() error {
	if c.TraceHeight < TotalRows() {
		return newError(ErrTraceTooShort, "trace height below the minimum required by the schedule")
	}
	if c.TraceHeight > RowSelectorsCapacity {
		return newError(ErrTraceTooShort, "trace height exceeds the reserved row-selector capacity")
	}
	if !isPowerOfTwo(c.TraceHeight) {
		return newError(ErrUnknown, "trace height must be a power of two")
	}
	if c.SecurityLevel <= 0 {
		return newError(ErrUnknown, "security level must be positive")
	}
	if c.FRIExpansionFactor <= 1 {
		return newError(ErrUnknown, "FRI expansion factor must be greater than 1")
	}
	return nil
}

// WithTraceHeight returns a copy of c with TraceHeight set.
func (c Config) WithTraceHeight(h int) *Config {
	c.TraceHeight = h
	return &c
}

// WithSecurityLevel returns a copy of c with SecurityLevel set.
func (c Config) WithSecurityLevel(level int) *Config {
	c.SecurityLevel = level
	return &c
}

func isPowerOfTwo(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}
