package cpu

import "testing"

func TestInstruction_LoadImmediate(t *testing.T) {
	// LD B, d8 then NOP
	c := newTestCPU(t, 0x06, 0x12, 0x00)
	run(c, 2)
	if c.Register8(RegB) != 0x12 {
		t.Errorf("Expected B to be 0x12, got 0x%02X", c.Register8(RegB))
	}
	if c.Register16(RegPC) != 0x0003 {
		t.Errorf("Expected PC to be 0x0003, got 0x%04X", c.Register16(RegPC))
	}
	if c.Cycle() != 12 {
		t.Errorf("Expected cycle to be 12, got %d", c.Cycle())
	}
	if c.Flags() != 0x00 {
		t.Errorf("Expected flags to be 0x00, got 0x%02X", c.Flags())
	}

	// LD rr, d16 for every pair
	c = newTestCPU(t, 0x01, 0x34, 0x12, 0x11, 0x78, 0x56, 0x21, 0xBC, 0x9A, 0x31, 0xF0, 0xDE)
	run(c, 4)
	if c.Register16(RegBC) != 0x1234 {
		t.Errorf("Expected BC to be 0x1234, got 0x%04X", c.Register16(RegBC))
	}
	if c.Register16(RegDE) != 0x5678 {
		t.Errorf("Expected DE to be 0x5678, got 0x%04X", c.Register16(RegDE))
	}
	if c.Register16(RegHL) != 0x9ABC {
		t.Errorf("Expected HL to be 0x9ABC, got 0x%04X", c.Register16(RegHL))
	}
	if c.Register16(RegSP) != 0xDEF0 {
		t.Errorf("Expected SP to be 0xDEF0, got 0x%04X", c.Register16(RegSP))
	}
}

func TestInstruction_LoadRegister(t *testing.T) {
	// LD C, B
	c := newTestCPU(t, 0x06, 0x55, 0x48)
	run(c, 2)
	if c.Register8(RegC) != 0x55 {
		t.Errorf("Expected C to be 0x55, got 0x%02X", c.Register8(RegC))
	}
	if c.Flags() != 0x00 {
		t.Errorf("Expected no flags, got 0x%02X", c.Flags())
	}
}

func TestInstruction_LoadMemory(t *testing.T) {
	// LD (HL), A then LD B, (HL)
	c := newTestCPU(t, 0x21, 0x00, 0xC0, 0x3E, 0x77, 0x77, 0x46)
	run(c, 4)
	if got := c.mmu.Read(0xC000); got != 0x77 {
		t.Errorf("Expected (HL) to be 0x77, got 0x%02X", got)
	}
	if c.Register8(RegB) != 0x77 {
		t.Errorf("Expected B to be 0x77, got 0x%02X", c.Register8(RegB))
	}

	// LD (BC), A / LD A, (DE)
	c = newTestCPU(t, 0x01, 0x00, 0xC0, 0x3E, 0x5A, 0x02, 0x11, 0x00, 0xC0, 0x3E, 0x00, 0x1A)
	run(c, 6)
	if c.Register8(RegA) != 0x5A {
		t.Errorf("Expected A to be 0x5A, got 0x%02X", c.Register8(RegA))
	}
}

func TestInstruction_LoadIncrementDecrement(t *testing.T) {
	// LDI (HL), A then LDD (HL), A: the memory sweep
	c := newTestCPU(t, 0x21, 0x00, 0xC0, 0x3E, 0xF1, 0x22, 0x3E, 0x34, 0x32)
	run(c, 5)
	if got := c.mmu.Read(0xC000); got != 0xF1 {
		t.Errorf("Expected 0xC000 to hold 0xF1, got 0x%02X", got)
	}
	if got := c.mmu.Read(0xC001); got != 0x34 {
		t.Errorf("Expected 0xC001 to hold 0x34, got 0x%02X", got)
	}
	if c.Register16(RegHL) != 0xC000 {
		t.Errorf("Expected HL to be 0xC000, got 0x%04X", c.Register16(RegHL))
	}
	if c.Flags() != 0x00 {
		t.Errorf("Expected no flags, got 0x%02X", c.Flags())
	}

	// LDI A, (HL) / LDD A, (HL)
	c = newTestCPU(t, 0x21, 0x00, 0xC0, 0x36, 0x9C, 0x2A, 0x3A)
	run(c, 4)
	// after LDI A holds 0x9C and HL is 0xC001; LDD reads 0xC001 (zero)
	if c.Register8(RegA) != 0x00 {
		t.Errorf("Expected A to be 0x00, got 0x%02X", c.Register8(RegA))
	}
	if c.Register16(RegHL) != 0xC000 {
		t.Errorf("Expected HL to be 0xC000, got 0x%04X", c.Register16(RegHL))
	}
}

func TestInstruction_LoadHigh(t *testing.T) {
	// LDH (a8), A / LDH A, (a8)
	c := newTestCPU(t, 0x3E, 0x42, 0xE0, 0x80, 0x3E, 0x00, 0xF0, 0x80)
	run(c, 4)
	if got := c.mmu.Read(0xFF80); got != 0x42 {
		t.Errorf("Expected 0xFF80 to hold 0x42, got 0x%02X", got)
	}
	if c.Register8(RegA) != 0x42 {
		t.Errorf("Expected A to be 0x42, got 0x%02X", c.Register8(RegA))
	}

	// LD (C), A / LD A, (C)
	c = newTestCPU(t, 0x0E, 0x81, 0x3E, 0x99, 0xE2, 0x3E, 0x00, 0xF2)
	run(c, 5)
	if got := c.mmu.Read(0xFF81); got != 0x99 {
		t.Errorf("Expected 0xFF81 to hold 0x99, got 0x%02X", got)
	}
	if c.Register8(RegA) != 0x99 {
		t.Errorf("Expected A to be 0x99, got 0x%02X", c.Register8(RegA))
	}
	if c.Register16(RegPC) != 0x0008 {
		t.Errorf("Expected PC to be 0x0008, got 0x%04X", c.Register16(RegPC))
	}
}

func TestInstruction_LoadAbsolute(t *testing.T) {
	// LD (a16), A / LD A, (a16)
	c := newTestCPU(t, 0x3E, 0x5A, 0xEA, 0x34, 0xC0, 0x3E, 0x00, 0xFA, 0x34, 0xC0)
	run(c, 4)
	if got := c.mmu.Read(0xC034); got != 0x5A {
		t.Errorf("Expected 0xC034 to hold 0x5A, got 0x%02X", got)
	}
	if c.Register8(RegA) != 0x5A {
		t.Errorf("Expected A to be 0x5A, got 0x%02X", c.Register8(RegA))
	}
}

func TestInstruction_LoadStackPointer(t *testing.T) {
	// LD (a16), SP stores little endian
	c := newTestCPU(t, 0x31, 0xCD, 0xAB, 0x08, 0x00, 0xC0)
	run(c, 2)
	if got := c.mmu.Read(0xC000); got != 0xCD {
		t.Errorf("Expected 0xC000 to hold 0xCD, got 0x%02X", got)
	}
	if got := c.mmu.Read(0xC001); got != 0xAB {
		t.Errorf("Expected 0xC001 to hold 0xAB, got 0x%02X", got)
	}

	// LD SP, HL
	c = newTestCPU(t, 0x21, 0xFE, 0xFF, 0xF9)
	run(c, 2)
	if c.Register16(RegSP) != 0xFFFE {
		t.Errorf("Expected SP to be 0xFFFE, got 0x%04X", c.Register16(RegSP))
	}

	// LD HL, SP+r8
	c = newTestCPU(t, 0x31, 0xF8, 0xFF, 0xF8, 0x08)
	run(c, 2)
	if c.Register16(RegHL) != 0x0000 {
		t.Errorf("Expected HL to be 0x0000, got 0x%04X", c.Register16(RegHL))
	}
	if c.Register16(RegSP) != 0xFFF8 {
		t.Errorf("Expected SP to be unchanged, got 0x%04X", c.Register16(RegSP))
	}
	if c.Flags() != FlagHalfCarry|FlagCarry {
		t.Errorf("Expected H and C from the low byte add, got 0x%02X", c.Flags())
	}
}
