package cpu

import "testing"

func TestInstruction_BitSetResRoundTrip(t *testing.T) {
	// SET 0, B; BIT 0, B; RES 0, B; BIT 0, B
	c := newTestCPU(t, 0x06, 0x00, 0xCB, 0xC0, 0xCB, 0x40, 0xCB, 0x80, 0xCB, 0x40)

	run(c, 3)
	// after SET and BIT: the bit is set, so Z is clear
	if c.Flags() != FlagHalfCarry {
		t.Errorf("Expected only H to be set, got 0x%02X", c.Flags())
	}

	run(c, 2)
	if c.Register8(RegB) != 0x00 {
		t.Errorf("Expected B to be 0x00, got 0x%02X", c.Register8(RegB))
	}
	// after RES and BIT: the bit is clear, so Z is set
	if c.Flags() != FlagZero|FlagHalfCarry {
		t.Errorf("Expected Z and H to be set, got 0x%02X", c.Flags())
	}
}

func TestInstruction_BitPreservesCarry(t *testing.T) {
	c := newTestCPU(t, 0x37, 0x06, 0xFF, 0xCB, 0x40)
	run(c, 3)
	if c.Flags() != FlagHalfCarry|FlagCarry {
		t.Errorf("Expected H and preserved C, got 0x%02X", c.Flags())
	}
}

func TestInstruction_BitMemory(t *testing.T) {
	// BIT 7, (HL) on a clear bit
	c := newTestCPU(t, 0x21, 0x00, 0xC0, 0x36, 0x7F, 0xCB, 0x7E)
	run(c, 3)
	if c.Flags() != FlagZero|FlagHalfCarry {
		t.Errorf("Expected Z and H to be set, got 0x%02X", c.Flags())
	}
}

func TestInstruction_SetResMemory(t *testing.T) {
	c := newTestCPU(t, 0x21, 0x00, 0xC0, 0xCB, 0xFE, 0xCB, 0x86)
	run(c, 2)
	if got := c.mmu.Read(0xC000); got != 0x80 {
		t.Errorf("Expected (HL) to be 0x80, got 0x%02X", got)
	}
	c.Step()
	if got := c.mmu.Read(0xC000); got != 0x80 {
		t.Errorf("Expected bit 0 reset to leave 0x80, got 0x%02X", got)
	}
}
