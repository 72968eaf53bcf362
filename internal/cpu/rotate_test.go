package cpu

import "testing"

func TestInstruction_RotateAccumulator(t *testing.T) {
	// RLCA: bit 7 into carry and bit 0, Z always clear
	c := newTestCPU(t, 0x3E, 0x85, 0x07)
	run(c, 2)
	if c.Register8(RegA) != 0x0B {
		t.Errorf("Expected A to be 0x0B, got 0x%02X", c.Register8(RegA))
	}
	if c.Flags() != FlagCarry {
		t.Errorf("Expected only C to be set, got 0x%02X", c.Flags())
	}

	// RLA rotates through the carry
	c = newTestCPU(t, 0x37, 0x3E, 0x40, 0x17)
	run(c, 3)
	if c.Register8(RegA) != 0x81 {
		t.Errorf("Expected A to be 0x81, got 0x%02X", c.Register8(RegA))
	}
	if c.Flags() != 0x00 {
		t.Errorf("Expected no flags, got 0x%02X", c.Flags())
	}

	// RRCA
	c = newTestCPU(t, 0x3E, 0x01, 0x0F)
	run(c, 2)
	if c.Register8(RegA) != 0x80 {
		t.Errorf("Expected A to be 0x80, got 0x%02X", c.Register8(RegA))
	}
	if c.Flags() != FlagCarry {
		t.Errorf("Expected only C to be set, got 0x%02X", c.Flags())
	}

	// RRA never sets Z, even on a zero result
	c = newTestCPU(t, 0x3E, 0x01, 0x1F)
	run(c, 2)
	if c.Register8(RegA) != 0x00 {
		t.Errorf("Expected A to be 0x00, got 0x%02X", c.Register8(RegA))
	}
	if c.Flags() != FlagCarry {
		t.Errorf("Expected only C to be set, got 0x%02X", c.Flags())
	}
}

func TestInstruction_RotateRoundTrip(t *testing.T) {
	// RLCA then RRCA restores A; C ends as bit 0 of the original A
	c := newTestCPU(t, 0x3E, 0x85, 0x07, 0x0F)
	run(c, 3)
	if c.Register8(RegA) != 0x85 {
		t.Errorf("Expected A to be restored to 0x85, got 0x%02X", c.Register8(RegA))
	}
	if c.Flags() != FlagCarry {
		t.Errorf("Expected C to equal bit 0 of A, got 0x%02X", c.Flags())
	}
}

func TestInstruction_RotateRegister(t *testing.T) {
	// CB RL C: zero result sets Z
	c := newTestCPU(t, 0x0E, 0x80, 0xCB, 0x11)
	run(c, 2)
	if c.Register8(RegC) != 0x00 {
		t.Errorf("Expected C to be 0x00, got 0x%02X", c.Register8(RegC))
	}
	if c.Flags() != FlagZero|FlagCarry {
		t.Errorf("Expected Z and C to be set, got 0x%02X", c.Flags())
	}
	if c.Register16(RegPC) != 0x0004 {
		t.Errorf("Expected PC to be 0x0004, got 0x%04X", c.Register16(RegPC))
	}
	if c.Cycle() != 16 {
		t.Errorf("Expected cycle to be 16, got %d", c.Cycle())
	}

	// CB RRC B
	c = newTestCPU(t, 0x06, 0x01, 0xCB, 0x08)
	run(c, 2)
	if c.Register8(RegB) != 0x80 {
		t.Errorf("Expected B to be 0x80, got 0x%02X", c.Register8(RegB))
	}
	if c.Flags() != FlagCarry {
		t.Errorf("Expected only C to be set, got 0x%02X", c.Flags())
	}

	// CB RR through carry
	c = newTestCPU(t, 0x37, 0x06, 0x02, 0xCB, 0x18)
	run(c, 3)
	if c.Register8(RegB) != 0x81 {
		t.Errorf("Expected B to be 0x81, got 0x%02X", c.Register8(RegB))
	}
	if c.Flags() != 0x00 {
		t.Errorf("Expected no flags, got 0x%02X", c.Flags())
	}
}

func TestInstruction_RotateMemory(t *testing.T) {
	// CB RLC (HL)
	c := newTestCPU(t, 0x21, 0x00, 0xC0, 0x36, 0x81, 0xCB, 0x06)
	run(c, 3)
	if got := c.mmu.Read(0xC000); got != 0x03 {
		t.Errorf("Expected (HL) to be 0x03, got 0x%02X", got)
	}
	if c.Flags() != FlagCarry {
		t.Errorf("Expected only C to be set, got 0x%02X", c.Flags())
	}
	if c.Cycle() != 40 {
		t.Errorf("Expected cycle to be 40, got %d", c.Cycle())
	}
}
