package cpu

import "testing"

func TestFlags_LowNibbleAlwaysZero(t *testing.T) {
	// drive F through a handful of flag-writing programs and check the
	// low nibble never survives
	programs := [][]byte{
		{0x3E, 0xFF, 0xC6, 0x01},             // add with carry out
		{0x37},                               // scf
		{0xAF},                               // xor a
		{0x31, 0xFE, 0xFF, 0x01, 0xFF, 0xFF, 0xC5, 0xF1}, // pop af
	}

	for _, program := range programs {
		c := newTestCPU(t, program...)
		run(c, 8)
		if c.Flags()&0x0F != 0 {
			t.Errorf("Expected low nibble of F to be zero, got 0x%02X", c.Flags())
		}
	}
}

func TestFlags_Accessors(t *testing.T) {
	c := newTestCPU(t, 0x37, 0xAF)

	c.Step()
	if !c.Flag(FlagCarry) {
		t.Errorf("Expected carry flag to read as set")
	}
	c.Step()
	if !c.Flag(FlagZero) || c.Flag(FlagCarry) {
		t.Errorf("Expected only zero flag after xor a, got 0x%02X", c.Flags())
	}
	if c.Flags() != c.Register8(RegF) {
		t.Errorf("Expected Flags to mirror register F")
	}
}
