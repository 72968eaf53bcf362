package cpu

import "testing"

func TestInstruction_DecimalAdjust(t *testing.T) {
	// 45 + 38 = 83 in BCD
	c := newTestCPU(t, 0x3E, 0x45, 0xC6, 0x38, 0x27)
	run(c, 3)
	if c.Register8(RegA) != 0x83 {
		t.Errorf("Expected A to be 0x83, got 0x%02X", c.Register8(RegA))
	}
	if c.Flags() != 0x00 {
		t.Errorf("Expected no flags, got 0x%02X", c.Flags())
	}

	// 45 - 38 = 07 in BCD, N survives
	c = newTestCPU(t, 0x3E, 0x45, 0xD6, 0x38, 0x27)
	run(c, 3)
	if c.Register8(RegA) != 0x07 {
		t.Errorf("Expected A to be 0x07, got 0x%02X", c.Register8(RegA))
	}
	if c.Flags() != FlagSubtract {
		t.Errorf("Expected only N to be set, got 0x%02X", c.Flags())
	}

	// 99 + 99 = 198: adjusted to 98 with carry out
	c = newTestCPU(t, 0x3E, 0x99, 0xC6, 0x99, 0x27)
	run(c, 3)
	if c.Register8(RegA) != 0x98 {
		t.Errorf("Expected A to be 0x98, got 0x%02X", c.Register8(RegA))
	}
	if c.Flags() != FlagCarry {
		t.Errorf("Expected only C to be set, got 0x%02X", c.Flags())
	}

	// 50 + 50 = 100: adjusted to 00 with carry and zero
	c = newTestCPU(t, 0x3E, 0x50, 0xC6, 0x50, 0x27)
	run(c, 3)
	if c.Register8(RegA) != 0x00 {
		t.Errorf("Expected A to be 0x00, got 0x%02X", c.Register8(RegA))
	}
	if c.Flags() != FlagZero|FlagCarry {
		t.Errorf("Expected Z and C to be set, got 0x%02X", c.Flags())
	}
}
