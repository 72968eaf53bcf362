package cpu

import "testing"

func TestInstruction_Xor(t *testing.T) {
	// XOR A clears the accumulator and sets only Z
	c := newTestCPU(t, 0xAF)
	c.Step()
	if c.Register8(RegA) != 0x00 {
		t.Errorf("Expected A to be 0x00, got 0x%02X", c.Register8(RegA))
	}
	if c.Flags() != 0x80 {
		t.Errorf("Expected flags to be 0x80, got 0x%02X", c.Flags())
	}
	if c.Register16(RegPC) != 0x0001 {
		t.Errorf("Expected PC to be 0x0001, got 0x%04X", c.Register16(RegPC))
	}
	if c.Cycle() != 4 {
		t.Errorf("Expected cycle to be 4, got %d", c.Cycle())
	}

	// XOR d8
	c = newTestCPU(t, 0x3E, 0xF0, 0xEE, 0x0F)
	run(c, 2)
	if c.Register8(RegA) != 0xFF {
		t.Errorf("Expected A to be 0xFF, got 0x%02X", c.Register8(RegA))
	}
	if c.Flags() != 0x00 {
		t.Errorf("Expected no flags, got 0x%02X", c.Flags())
	}
}

func TestInstruction_And(t *testing.T) {
	c := newTestCPU(t, 0x3E, 0x5A, 0xE6, 0x38)
	run(c, 2)
	if c.Register8(RegA) != 0x18 {
		t.Errorf("Expected A to be 0x18, got 0x%02X", c.Register8(RegA))
	}
	if c.Flags() != FlagHalfCarry {
		t.Errorf("Expected only H to be set, got 0x%02X", c.Flags())
	}

	// AND to zero
	c = newTestCPU(t, 0x3E, 0xF0, 0xE6, 0x0F)
	run(c, 2)
	if c.Flags() != FlagZero|FlagHalfCarry {
		t.Errorf("Expected Z and H to be set, got 0x%02X", c.Flags())
	}
}

func TestInstruction_Or(t *testing.T) {
	c := newTestCPU(t, 0x3E, 0x5A, 0xF6, 0x0F)
	run(c, 2)
	if c.Register8(RegA) != 0x5F {
		t.Errorf("Expected A to be 0x5F, got 0x%02X", c.Register8(RegA))
	}
	if c.Flags() != 0x00 {
		t.Errorf("Expected no flags, got 0x%02X", c.Flags())
	}

	// OR of two zeros
	c = newTestCPU(t, 0xAF, 0xB0)
	run(c, 2)
	if c.Flags() != FlagZero {
		t.Errorf("Expected only Z to be set, got 0x%02X", c.Flags())
	}
}

func TestInstruction_Complement(t *testing.T) {
	c := newTestCPU(t, 0x3E, 0x35, 0x2F)
	run(c, 2)
	if c.Register8(RegA) != 0xCA {
		t.Errorf("Expected A to be 0xCA, got 0x%02X", c.Register8(RegA))
	}
	if c.Flags() != FlagSubtract|FlagHalfCarry {
		t.Errorf("Expected N and H to be set, got 0x%02X", c.Flags())
	}
}

func TestInstruction_CarryFlag(t *testing.T) {
	// SCF
	c := newTestCPU(t, 0x37)
	c.Step()
	if c.Flags() != FlagCarry {
		t.Errorf("Expected only C to be set, got 0x%02X", c.Flags())
	}

	// CCF toggles C and preserves Z
	c = newTestCPU(t, 0xAF, 0x37, 0x3F)
	run(c, 3)
	if c.Flags() != FlagZero {
		t.Errorf("Expected only Z to remain, got 0x%02X", c.Flags())
	}
	c = newTestCPU(t, 0xAF, 0x3F)
	run(c, 2)
	if c.Flags() != FlagZero|FlagCarry {
		t.Errorf("Expected Z and C to be set, got 0x%02X", c.Flags())
	}
}
