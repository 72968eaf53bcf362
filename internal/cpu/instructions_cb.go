package cpu

import "github.com/mapamarco/naive-gbe/pkg/bits"

// instructionsCB is the CB-prefixed dispatch table: the bit, shift,
// rotate and swap plane. Sizes include the prefix byte; cycle costs are
// the full cost of the prefixed instruction.
var instructionsCB = [0x100]Instruction{
	0x00: {2, 8, func(c *CPU) { c.regs[RegB] = c.rotateLeftCarry(c.regs[RegB]) }}, // rlc b
	0x01: {2, 8, func(c *CPU) { c.regs[RegC] = c.rotateLeftCarry(c.regs[RegC]) }}, // rlc c
	0x02: {2, 8, func(c *CPU) { c.regs[RegD] = c.rotateLeftCarry(c.regs[RegD]) }}, // rlc d
	0x03: {2, 8, func(c *CPU) { c.regs[RegE] = c.rotateLeftCarry(c.regs[RegE]) }}, // rlc e
	0x04: {2, 8, func(c *CPU) { c.regs[RegH] = c.rotateLeftCarry(c.regs[RegH]) }}, // rlc h
	0x05: {2, 8, func(c *CPU) { c.regs[RegL] = c.rotateLeftCarry(c.regs[RegL]) }}, // rlc l
	0x06: {2, 16, func(c *CPU) { h := c.hl(); h.Set(c.rotateLeftCarry(h.Get())) }}, // rlc (hl)
	0x07: {2, 8, func(c *CPU) { c.regs[RegA] = c.rotateLeftCarry(c.regs[RegA]) }}, // rlc a
	0x08: {2, 8, func(c *CPU) { c.regs[RegB] = c.rotateRightCarry(c.regs[RegB]) }}, // rrc b
	0x09: {2, 8, func(c *CPU) { c.regs[RegC] = c.rotateRightCarry(c.regs[RegC]) }}, // rrc c
	0x0A: {2, 8, func(c *CPU) { c.regs[RegD] = c.rotateRightCarry(c.regs[RegD]) }}, // rrc d
	0x0B: {2, 8, func(c *CPU) { c.regs[RegE] = c.rotateRightCarry(c.regs[RegE]) }}, // rrc e
	0x0C: {2, 8, func(c *CPU) { c.regs[RegH] = c.rotateRightCarry(c.regs[RegH]) }}, // rrc h
	0x0D: {2, 8, func(c *CPU) { c.regs[RegL] = c.rotateRightCarry(c.regs[RegL]) }}, // rrc l
	0x0E: {2, 16, func(c *CPU) { h := c.hl(); h.Set(c.rotateRightCarry(h.Get())) }}, // rrc (hl)
	0x0F: {2, 8, func(c *CPU) { c.regs[RegA] = c.rotateRightCarry(c.regs[RegA]) }}, // rrc a
	0x10: {2, 8, func(c *CPU) { c.regs[RegB] = c.rotateLeft(c.regs[RegB]) }}, // rl b
	0x11: {2, 8, func(c *CPU) { c.regs[RegC] = c.rotateLeft(c.regs[RegC]) }}, // rl c
	0x12: {2, 8, func(c *CPU) { c.regs[RegD] = c.rotateLeft(c.regs[RegD]) }}, // rl d
	0x13: {2, 8, func(c *CPU) { c.regs[RegE] = c.rotateLeft(c.regs[RegE]) }}, // rl e
	0x14: {2, 8, func(c *CPU) { c.regs[RegH] = c.rotateLeft(c.regs[RegH]) }}, // rl h
	0x15: {2, 8, func(c *CPU) { c.regs[RegL] = c.rotateLeft(c.regs[RegL]) }}, // rl l
	0x16: {2, 16, func(c *CPU) { h := c.hl(); h.Set(c.rotateLeft(h.Get())) }}, // rl (hl)
	0x17: {2, 8, func(c *CPU) { c.regs[RegA] = c.rotateLeft(c.regs[RegA]) }}, // rl a
	0x18: {2, 8, func(c *CPU) { c.regs[RegB] = c.rotateRight(c.regs[RegB]) }}, // rr b
	0x19: {2, 8, func(c *CPU) { c.regs[RegC] = c.rotateRight(c.regs[RegC]) }}, // rr c
	0x1A: {2, 8, func(c *CPU) { c.regs[RegD] = c.rotateRight(c.regs[RegD]) }}, // rr d
	0x1B: {2, 8, func(c *CPU) { c.regs[RegE] = c.rotateRight(c.regs[RegE]) }}, // rr e
	0x1C: {2, 8, func(c *CPU) { c.regs[RegH] = c.rotateRight(c.regs[RegH]) }}, // rr h
	0x1D: {2, 8, func(c *CPU) { c.regs[RegL] = c.rotateRight(c.regs[RegL]) }}, // rr l
	0x1E: {2, 16, func(c *CPU) { h := c.hl(); h.Set(c.rotateRight(h.Get())) }}, // rr (hl)
	0x1F: {2, 8, func(c *CPU) { c.regs[RegA] = c.rotateRight(c.regs[RegA]) }}, // rr a
	0x20: {2, 8, func(c *CPU) { c.regs[RegB] = c.shiftLeft(c.regs[RegB]) }}, // sla b
	0x21: {2, 8, func(c *CPU) { c.regs[RegC] = c.shiftLeft(c.regs[RegC]) }}, // sla c
	0x22: {2, 8, func(c *CPU) { c.regs[RegD] = c.shiftLeft(c.regs[RegD]) }}, // sla d
	0x23: {2, 8, func(c *CPU) { c.regs[RegE] = c.shiftLeft(c.regs[RegE]) }}, // sla e
	0x24: {2, 8, func(c *CPU) { c.regs[RegH] = c.shiftLeft(c.regs[RegH]) }}, // sla h
	0x25: {2, 8, func(c *CPU) { c.regs[RegL] = c.shiftLeft(c.regs[RegL]) }}, // sla l
	0x26: {2, 16, func(c *CPU) { h := c.hl(); h.Set(c.shiftLeft(h.Get())) }}, // sla (hl)
	0x27: {2, 8, func(c *CPU) { c.regs[RegA] = c.shiftLeft(c.regs[RegA]) }}, // sla a
	0x28: {2, 8, func(c *CPU) { c.regs[RegB] = c.shiftRightArithmetic(c.regs[RegB]) }}, // sra b
	0x29: {2, 8, func(c *CPU) { c.regs[RegC] = c.shiftRightArithmetic(c.regs[RegC]) }}, // sra c
	0x2A: {2, 8, func(c *CPU) { c.regs[RegD] = c.shiftRightArithmetic(c.regs[RegD]) }}, // sra d
	0x2B: {2, 8, func(c *CPU) { c.regs[RegE] = c.shiftRightArithmetic(c.regs[RegE]) }}, // sra e
	0x2C: {2, 8, func(c *CPU) { c.regs[RegH] = c.shiftRightArithmetic(c.regs[RegH]) }}, // sra h
	0x2D: {2, 8, func(c *CPU) { c.regs[RegL] = c.shiftRightArithmetic(c.regs[RegL]) }}, // sra l
	0x2E: {2, 16, func(c *CPU) { h := c.hl(); h.Set(c.shiftRightArithmetic(h.Get())) }}, // sra (hl)
	0x2F: {2, 8, func(c *CPU) { c.regs[RegA] = c.shiftRightArithmetic(c.regs[RegA]) }}, // sra a
	0x30: {2, 8, func(c *CPU) { c.regs[RegB] = c.swap(c.regs[RegB]) }}, // swap b
	0x31: {2, 8, func(c *CPU) { c.regs[RegC] = c.swap(c.regs[RegC]) }}, // swap c
	0x32: {2, 8, func(c *CPU) { c.regs[RegD] = c.swap(c.regs[RegD]) }}, // swap d
	0x33: {2, 8, func(c *CPU) { c.regs[RegE] = c.swap(c.regs[RegE]) }}, // swap e
	0x34: {2, 8, func(c *CPU) { c.regs[RegH] = c.swap(c.regs[RegH]) }}, // swap h
	0x35: {2, 8, func(c *CPU) { c.regs[RegL] = c.swap(c.regs[RegL]) }}, // swap l
	0x36: {2, 16, func(c *CPU) { h := c.hl(); h.Set(c.swap(h.Get())) }}, // swap (hl)
	0x37: {2, 8, func(c *CPU) { c.regs[RegA] = c.swap(c.regs[RegA]) }}, // swap a
	0x38: {2, 8, func(c *CPU) { c.regs[RegB] = c.shiftRightLogical(c.regs[RegB]) }}, // srl b
	0x39: {2, 8, func(c *CPU) { c.regs[RegC] = c.shiftRightLogical(c.regs[RegC]) }}, // srl c
	0x3A: {2, 8, func(c *CPU) { c.regs[RegD] = c.shiftRightLogical(c.regs[RegD]) }}, // srl d
	0x3B: {2, 8, func(c *CPU) { c.regs[RegE] = c.shiftRightLogical(c.regs[RegE]) }}, // srl e
	0x3C: {2, 8, func(c *CPU) { c.regs[RegH] = c.shiftRightLogical(c.regs[RegH]) }}, // srl h
	0x3D: {2, 8, func(c *CPU) { c.regs[RegL] = c.shiftRightLogical(c.regs[RegL]) }}, // srl l
	0x3E: {2, 16, func(c *CPU) { h := c.hl(); h.Set(c.shiftRightLogical(h.Get())) }}, // srl (hl)
	0x3F: {2, 8, func(c *CPU) { c.regs[RegA] = c.shiftRightLogical(c.regs[RegA]) }}, // srl a
	0x40: {2, 8, func(c *CPU) { c.testBit(0, c.regs[RegB]) }}, // bit 0, b
	0x41: {2, 8, func(c *CPU) { c.testBit(0, c.regs[RegC]) }}, // bit 0, c
	0x42: {2, 8, func(c *CPU) { c.testBit(0, c.regs[RegD]) }}, // bit 0, d
	0x43: {2, 8, func(c *CPU) { c.testBit(0, c.regs[RegE]) }}, // bit 0, e
	0x44: {2, 8, func(c *CPU) { c.testBit(0, c.regs[RegH]) }}, // bit 0, h
	0x45: {2, 8, func(c *CPU) { c.testBit(0, c.regs[RegL]) }}, // bit 0, l
	0x46: {2, 16, func(c *CPU) { c.testBit(0, c.mmu.Read(c.Register16(RegHL))) }}, // bit 0, (hl)
	0x47: {2, 8, func(c *CPU) { c.testBit(0, c.regs[RegA]) }}, // bit 0, a
	0x48: {2, 8, func(c *CPU) { c.testBit(1, c.regs[RegB]) }}, // bit 1, b
	0x49: {2, 8, func(c *CPU) { c.testBit(1, c.regs[RegC]) }}, // bit 1, c
	0x4A: {2, 8, func(c *CPU) { c.testBit(1, c.regs[RegD]) }}, // bit 1, d
	0x4B: {2, 8, func(c *CPU) { c.testBit(1, c.regs[RegE]) }}, // bit 1, e
	0x4C: {2, 8, func(c *CPU) { c.testBit(1, c.regs[RegH]) }}, // bit 1, h
	0x4D: {2, 8, func(c *CPU) { c.testBit(1, c.regs[RegL]) }}, // bit 1, l
	0x4E: {2, 16, func(c *CPU) { c.testBit(1, c.mmu.Read(c.Register16(RegHL))) }}, // bit 1, (hl)
	0x4F: {2, 8, func(c *CPU) { c.testBit(1, c.regs[RegA]) }}, // bit 1, a
	0x50: {2, 8, func(c *CPU) { c.testBit(2, c.regs[RegB]) }}, // bit 2, b
	0x51: {2, 8, func(c *CPU) { c.testBit(2, c.regs[RegC]) }}, // bit 2, c
	0x52: {2, 8, func(c *CPU) { c.testBit(2, c.regs[RegD]) }}, // bit 2, d
	0x53: {2, 8, func(c *CPU) { c.testBit(2, c.regs[RegE]) }}, // bit 2, e
	0x54: {2, 8, func(c *CPU) { c.testBit(2, c.regs[RegH]) }}, // bit 2, h
	0x55: {2, 8, func(c *CPU) { c.testBit(2, c.regs[RegL]) }}, // bit 2, l
	0x56: {2, 16, func(c *CPU) { c.testBit(2, c.mmu.Read(c.Register16(RegHL))) }}, // bit 2, (hl)
	0x57: {2, 8, func(c *CPU) { c.testBit(2, c.regs[RegA]) }}, // bit 2, a
	0x58: {2, 8, func(c *CPU) { c.testBit(3, c.regs[RegB]) }}, // bit 3, b
	0x59: {2, 8, func(c *CPU) { c.testBit(3, c.regs[RegC]) }}, // bit 3, c
	0x5A: {2, 8, func(c *CPU) { c.testBit(3, c.regs[RegD]) }}, // bit 3, d
	0x5B: {2, 8, func(c *CPU) { c.testBit(3, c.regs[RegE]) }}, // bit 3, e
	0x5C: {2, 8, func(c *CPU) { c.testBit(3, c.regs[RegH]) }}, // bit 3, h
	0x5D: {2, 8, func(c *CPU) { c.testBit(3, c.regs[RegL]) }}, // bit 3, l
	0x5E: {2, 16, func(c *CPU) { c.testBit(3, c.mmu.Read(c.Register16(RegHL))) }}, // bit 3, (hl)
	0x5F: {2, 8, func(c *CPU) { c.testBit(3, c.regs[RegA]) }}, // bit 3, a
	0x60: {2, 8, func(c *CPU) { c.testBit(4, c.regs[RegB]) }}, // bit 4, b
	0x61: {2, 8, func(c *CPU) { c.testBit(4, c.regs[RegC]) }}, // bit 4, c
	0x62: {2, 8, func(c *CPU) { c.testBit(4, c.regs[RegD]) }}, // bit 4, d
	0x63: {2, 8, func(c *CPU) { c.testBit(4, c.regs[RegE]) }}, // bit 4, e
	0x64: {2, 8, func(c *CPU) { c.testBit(4, c.regs[RegH]) }}, // bit 4, h
	0x65: {2, 8, func(c *CPU) { c.testBit(4, c.regs[RegL]) }}, // bit 4, l
	0x66: {2, 16, func(c *CPU) { c.testBit(4, c.mmu.Read(c.Register16(RegHL))) }}, // bit 4, (hl)
	0x67: {2, 8, func(c *CPU) { c.testBit(4, c.regs[RegA]) }}, // bit 4, a
	0x68: {2, 8, func(c *CPU) { c.testBit(5, c.regs[RegB]) }}, // bit 5, b
	0x69: {2, 8, func(c *CPU) { c.testBit(5, c.regs[RegC]) }}, // bit 5, c
	0x6A: {2, 8, func(c *CPU) { c.testBit(5, c.regs[RegD]) }}, // bit 5, d
	0x6B: {2, 8, func(c *CPU) { c.testBit(5, c.regs[RegE]) }}, // bit 5, e
	0x6C: {2, 8, func(c *CPU) { c.testBit(5, c.regs[RegH]) }}, // bit 5, h
	0x6D: {2, 8, func(c *CPU) { c.testBit(5, c.regs[RegL]) }}, // bit 5, l
	0x6E: {2, 16, func(c *CPU) { c.testBit(5, c.mmu.Read(c.Register16(RegHL))) }}, // bit 5, (hl)
	0x6F: {2, 8, func(c *CPU) { c.testBit(5, c.regs[RegA]) }}, // bit 5, a
	0x70: {2, 8, func(c *CPU) { c.testBit(6, c.regs[RegB]) }}, // bit 6, b
	0x71: {2, 8, func(c *CPU) { c.testBit(6, c.regs[RegC]) }}, // bit 6, c
	0x72: {2, 8, func(c *CPU) { c.testBit(6, c.regs[RegD]) }}, // bit 6, d
	0x73: {2, 8, func(c *CPU) { c.testBit(6, c.regs[RegE]) }}, // bit 6, e
	0x74: {2, 8, func(c *CPU) { c.testBit(6, c.regs[RegH]) }}, // bit 6, h
	0x75: {2, 8, func(c *CPU) { c.testBit(6, c.regs[RegL]) }}, // bit 6, l
	0x76: {2, 16, func(c *CPU) { c.testBit(6, c.mmu.Read(c.Register16(RegHL))) }}, // bit 6, (hl)
	0x77: {2, 8, func(c *CPU) { c.testBit(6, c.regs[RegA]) }}, // bit 6, a
	0x78: {2, 8, func(c *CPU) { c.testBit(7, c.regs[RegB]) }}, // bit 7, b
	0x79: {2, 8, func(c *CPU) { c.testBit(7, c.regs[RegC]) }}, // bit 7, c
	0x7A: {2, 8, func(c *CPU) { c.testBit(7, c.regs[RegD]) }}, // bit 7, d
	0x7B: {2, 8, func(c *CPU) { c.testBit(7, c.regs[RegE]) }}, // bit 7, e
	0x7C: {2, 8, func(c *CPU) { c.testBit(7, c.regs[RegH]) }}, // bit 7, h
	0x7D: {2, 8, func(c *CPU) { c.testBit(7, c.regs[RegL]) }}, // bit 7, l
	0x7E: {2, 16, func(c *CPU) { c.testBit(7, c.mmu.Read(c.Register16(RegHL))) }}, // bit 7, (hl)
	0x7F: {2, 8, func(c *CPU) { c.testBit(7, c.regs[RegA]) }}, // bit 7, a
	0x80: {2, 8, func(c *CPU) { c.regs[RegB] = bits.Reset(c.regs[RegB], 0) }}, // res 0, b
	0x81: {2, 8, func(c *CPU) { c.regs[RegC] = bits.Reset(c.regs[RegC], 0) }}, // res 0, c
	0x82: {2, 8, func(c *CPU) { c.regs[RegD] = bits.Reset(c.regs[RegD], 0) }}, // res 0, d
	0x83: {2, 8, func(c *CPU) { c.regs[RegE] = bits.Reset(c.regs[RegE], 0) }}, // res 0, e
	0x84: {2, 8, func(c *CPU) { c.regs[RegH] = bits.Reset(c.regs[RegH], 0) }}, // res 0, h
	0x85: {2, 8, func(c *CPU) { c.regs[RegL] = bits.Reset(c.regs[RegL], 0) }}, // res 0, l
	0x86: {2, 16, func(c *CPU) { h := c.hl(); h.Set(bits.Reset(h.Get(), 0)) }}, // res 0, (hl)
	0x87: {2, 8, func(c *CPU) { c.regs[RegA] = bits.Reset(c.regs[RegA], 0) }}, // res 0, a
	0x88: {2, 8, func(c *CPU) { c.regs[RegB] = bits.Reset(c.regs[RegB], 1) }}, // res 1, b
	0x89: {2, 8, func(c *CPU) { c.regs[RegC] = bits.Reset(c.regs[RegC], 1) }}, // res 1, c
	0x8A: {2, 8, func(c *CPU) { c.regs[RegD] = bits.Reset(c.regs[RegD], 1) }}, // res 1, d
	0x8B: {2, 8, func(c *CPU) { c.regs[RegE] = bits.Reset(c.regs[RegE], 1) }}, // res 1, e
	0x8C: {2, 8, func(c *CPU) { c.regs[RegH] = bits.Reset(c.regs[RegH], 1) }}, // res 1, h
	0x8D: {2, 8, func(c *CPU) { c.regs[RegL] = bits.Reset(c.regs[RegL], 1) }}, // res 1, l
	0x8E: {2, 16, func(c *CPU) { h := c.hl(); h.Set(bits.Reset(h.Get(), 1)) }}, // res 1, (hl)
	0x8F: {2, 8, func(c *CPU) { c.regs[RegA] = bits.Reset(c.regs[RegA], 1) }}, // res 1, a
	0x90: {2, 8, func(c *CPU) { c.regs[RegB] = bits.Reset(c.regs[RegB], 2) }}, // res 2, b
	0x91: {2, 8, func(c *CPU) { c.regs[RegC] = bits.Reset(c.regs[RegC], 2) }}, // res 2, c
	0x92: {2, 8, func(c *CPU) { c.regs[RegD] = bits.Reset(c.regs[RegD], 2) }}, // res 2, d
	0x93: {2, 8, func(c *CPU) { c.regs[RegE] = bits.Reset(c.regs[RegE], 2) }}, // res 2, e
	0x94: {2, 8, func(c *CPU) { c.regs[RegH] = bits.Reset(c.regs[RegH], 2) }}, // res 2, h
	0x95: {2, 8, func(c *CPU) { c.regs[RegL] = bits.Reset(c.regs[RegL], 2) }}, // res 2, l
	0x96: {2, 16, func(c *CPU) { h := c.hl(); h.Set(bits.Reset(h.Get(), 2)) }}, // res 2, (hl)
	0x97: {2, 8, func(c *CPU) { c.regs[RegA] = bits.Reset(c.regs[RegA], 2) }}, // res 2, a
	0x98: {2, 8, func(c *CPU) { c.regs[RegB] = bits.Reset(c.regs[RegB], 3) }}, // res 3, b
	0x99: {2, 8, func(c *CPU) { c.regs[RegC] = bits.Reset(c.regs[RegC], 3) }}, // res 3, c
	0x9A: {2, 8, func(c *CPU) { c.regs[RegD] = bits.Reset(c.regs[RegD], 3) }}, // res 3, d
	0x9B: {2, 8, func(c *CPU) { c.regs[RegE] = bits.Reset(c.regs[RegE], 3) }}, // res 3, e
	0x9C: {2, 8, func(c *CPU) { c.regs[RegH] = bits.Reset(c.regs[RegH], 3) }}, // res 3, h
	0x9D: {2, 8, func(c *CPU) { c.regs[RegL] = bits.Reset(c.regs[RegL], 3) }}, // res 3, l
	0x9E: {2, 16, func(c *CPU) { h := c.hl(); h.Set(bits.Reset(h.Get(), 3)) }}, // res 3, (hl)
	0x9F: {2, 8, func(c *CPU) { c.regs[RegA] = bits.Reset(c.regs[RegA], 3) }}, // res 3, a
	0xA0: {2, 8, func(c *CPU) { c.regs[RegB] = bits.Reset(c.regs[RegB], 4) }}, // res 4, b
	0xA1: {2, 8, func(c *CPU) { c.regs[RegC] = bits.Reset(c.regs[RegC], 4) }}, // res 4, c
	0xA2: {2, 8, func(c *CPU) { c.regs[RegD] = bits.Reset(c.regs[RegD], 4) }}, // res 4, d
	0xA3: {2, 8, func(c *CPU) { c.regs[RegE] = bits.Reset(c.regs[RegE], 4) }}, // res 4, e
	0xA4: {2, 8, func(c *CPU) { c.regs[RegH] = bits.Reset(c.regs[RegH], 4) }}, // res 4, h
	0xA5: {2, 8, func(c *CPU) { c.regs[RegL] = bits.Reset(c.regs[RegL], 4) }}, // res 4, l
	0xA6: {2, 16, func(c *CPU) { h := c.hl(); h.Set(bits.Reset(h.Get(), 4)) }}, // res 4, (hl)
	0xA7: {2, 8, func(c *CPU) { c.regs[RegA] = bits.Reset(c.regs[RegA], 4) }}, // res 4, a
	0xA8: {2, 8, func(c *CPU) { c.regs[RegB] = bits.Reset(c.regs[RegB], 5) }}, // res 5, b
	0xA9: {2, 8, func(c *CPU) { c.regs[RegC] = bits.Reset(c.regs[RegC], 5) }}, // res 5, c
	0xAA: {2, 8, func(c *CPU) { c.regs[RegD] = bits.Reset(c.regs[RegD], 5) }}, // res 5, d
	0xAB: {2, 8, func(c *CPU) { c.regs[RegE] = bits.Reset(c.regs[RegE], 5) }}, // res 5, e
	0xAC: {2, 8, func(c *CPU) { c.regs[RegH] = bits.Reset(c.regs[RegH], 5) }}, // res 5, h
	0xAD: {2, 8, func(c *CPU) { c.regs[RegL] = bits.Reset(c.regs[RegL], 5) }}, // res 5, l
	0xAE: {2, 16, func(c *CPU) { h := c.hl(); h.Set(bits.Reset(h.Get(), 5)) }}, // res 5, (hl)
	0xAF: {2, 8, func(c *CPU) { c.regs[RegA] = bits.Reset(c.regs[RegA], 5) }}, // res 5, a
	0xB0: {2, 8, func(c *CPU) { c.regs[RegB] = bits.Reset(c.regs[RegB], 6) }}, // res 6, b
	0xB1: {2, 8, func(c *CPU) { c.regs[RegC] = bits.Reset(c.regs[RegC], 6) }}, // res 6, c
	0xB2: {2, 8, func(c *CPU) { c.regs[RegD] = bits.Reset(c.regs[RegD], 6) }}, // res 6, d
	0xB3: {2, 8, func(c *CPU) { c.regs[RegE] = bits.Reset(c.regs[RegE], 6) }}, // res 6, e
	0xB4: {2, 8, func(c *CPU) { c.regs[RegH] = bits.Reset(c.regs[RegH], 6) }}, // res 6, h
	0xB5: {2, 8, func(c *CPU) { c.regs[RegL] = bits.Reset(c.regs[RegL], 6) }}, // res 6, l
	0xB6: {2, 16, func(c *CPU) { h := c.hl(); h.Set(bits.Reset(h.Get(), 6)) }}, // res 6, (hl)
	0xB7: {2, 8, func(c *CPU) { c.regs[RegA] = bits.Reset(c.regs[RegA], 6) }}, // res 6, a
	0xB8: {2, 8, func(c *CPU) { c.regs[RegB] = bits.Reset(c.regs[RegB], 7) }}, // res 7, b
	0xB9: {2, 8, func(c *CPU) { c.regs[RegC] = bits.Reset(c.regs[RegC], 7) }}, // res 7, c
	0xBA: {2, 8, func(c *CPU) { c.regs[RegD] = bits.Reset(c.regs[RegD], 7) }}, // res 7, d
	0xBB: {2, 8, func(c *CPU) { c.regs[RegE] = bits.Reset(c.regs[RegE], 7) }}, // res 7, e
	0xBC: {2, 8, func(c *CPU) { c.regs[RegH] = bits.Reset(c.regs[RegH], 7) }}, // res 7, h
	0xBD: {2, 8, func(c *CPU) { c.regs[RegL] = bits.Reset(c.regs[RegL], 7) }}, // res 7, l
	0xBE: {2, 16, func(c *CPU) { h := c.hl(); h.Set(bits.Reset(h.Get(), 7)) }}, // res 7, (hl)
	0xBF: {2, 8, func(c *CPU) { c.regs[RegA] = bits.Reset(c.regs[RegA], 7) }}, // res 7, a
	0xC0: {2, 8, func(c *CPU) { c.regs[RegB] = bits.Set(c.regs[RegB], 0) }}, // set 0, b
	0xC1: {2, 8, func(c *CPU) { c.regs[RegC] = bits.Set(c.regs[RegC], 0) }}, // set 0, c
	0xC2: {2, 8, func(c *CPU) { c.regs[RegD] = bits.Set(c.regs[RegD], 0) }}, // set 0, d
	0xC3: {2, 8, func(c *CPU) { c.regs[RegE] = bits.Set(c.regs[RegE], 0) }}, // set 0, e
	0xC4: {2, 8, func(c *CPU) { c.regs[RegH] = bits.Set(c.regs[RegH], 0) }}, // set 0, h
	0xC5: {2, 8, func(c *CPU) { c.regs[RegL] = bits.Set(c.regs[RegL], 0) }}, // set 0, l
	0xC6: {2, 16, func(c *CPU) { h := c.hl(); h.Set(bits.Set(h.Get(), 0)) }}, // set 0, (hl)
	0xC7: {2, 8, func(c *CPU) { c.regs[RegA] = bits.Set(c.regs[RegA], 0) }}, // set 0, a
	0xC8: {2, 8, func(c *CPU) { c.regs[RegB] = bits.Set(c.regs[RegB], 1) }}, // set 1, b
	0xC9: {2, 8, func(c *CPU) { c.regs[RegC] = bits.Set(c.regs[RegC], 1) }}, // set 1, c
	0xCA: {2, 8, func(c *CPU) { c.regs[RegD] = bits.Set(c.regs[RegD], 1) }}, // set 1, d
	0xCB: {2, 8, func(c *CPU) { c.regs[RegE] = bits.Set(c.regs[RegE], 1) }}, // set 1, e
	0xCC: {2, 8, func(c *CPU) { c.regs[RegH] = bits.Set(c.regs[RegH], 1) }}, // set 1, h
	0xCD: {2, 8, func(c *CPU) { c.regs[RegL] = bits.Set(c.regs[RegL], 1) }}, // set 1, l
	0xCE: {2, 16, func(c *CPU) { h := c.hl(); h.Set(bits.Set(h.Get(), 1)) }}, // set 1, (hl)
	0xCF: {2, 8, func(c *CPU) { c.regs[RegA] = bits.Set(c.regs[RegA], 1) }}, // set 1, a
	0xD0: {2, 8, func(c *CPU) { c.regs[RegB] = bits.Set(c.regs[RegB], 2) }}, // set 2, b
	0xD1: {2, 8, func(c *CPU) { c.regs[RegC] = bits.Set(c.regs[RegC], 2) }}, // set 2, c
	0xD2: {2, 8, func(c *CPU) { c.regs[RegD] = bits.Set(c.regs[RegD], 2) }}, // set 2, d
	0xD3: {2, 8, func(c *CPU) { c.regs[RegE] = bits.Set(c.regs[RegE], 2) }}, // set 2, e
	0xD4: {2, 8, func(c *CPU) { c.regs[RegH] = bits.Set(c.regs[RegH], 2) }}, // set 2, h
	0xD5: {2, 8, func(c *CPU) { c.regs[RegL] = bits.Set(c.regs[RegL], 2) }}, // set 2, l
	0xD6: {2, 16, func(c *CPU) { h := c.hl(); h.Set(bits.Set(h.Get(), 2)) }}, // set 2, (hl)
	0xD7: {2, 8, func(c *CPU) { c.regs[RegA] = bits.Set(c.regs[RegA], 2) }}, // set 2, a
	0xD8: {2, 8, func(c *CPU) { c.regs[RegB] = bits.Set(c.regs[RegB], 3) }}, // set 3, b
	0xD9: {2, 8, func(c *CPU) { c.regs[RegC] = bits.Set(c.regs[RegC], 3) }}, // set 3, c
	0xDA: {2, 8, func(c *CPU) { c.regs[RegD] = bits.Set(c.regs[RegD], 3) }}, // set 3, d
	0xDB: {2, 8, func(c *CPU) { c.regs[RegE] = bits.Set(c.regs[RegE], 3) }}, // set 3, e
	0xDC: {2, 8, func(c *CPU) { c.regs[RegH] = bits.Set(c.regs[RegH], 3) }}, // set 3, h
	0xDD: {2, 8, func(c *CPU) { c.regs[RegL] = bits.Set(c.regs[RegL], 3) }}, // set 3, l
	0xDE: {2, 16, func(c *CPU) { h := c.hl(); h.Set(bits.Set(h.Get(), 3)) }}, // set 3, (hl)
	0xDF: {2, 8, func(c *CPU) { c.regs[RegA] = bits.Set(c.regs[RegA], 3) }}, // set 3, a
	0xE0: {2, 8, func(c *CPU) { c.regs[RegB] = bits.Set(c.regs[RegB], 4) }}, // set 4, b
	0xE1: {2, 8, func(c *CPU) { c.regs[RegC] = bits.Set(c.regs[RegC], 4) }}, // set 4, c
	0xE2: {2, 8, func(c *CPU) { c.regs[RegD] = bits.Set(c.regs[RegD], 4) }}, // set 4, d
	0xE3: {2, 8, func(c *CPU) { c.regs[RegE] = bits.Set(c.regs[RegE], 4) }}, // set 4, e
	0xE4: {2, 8, func(c *CPU) { c.regs[RegH] = bits.Set(c.regs[RegH], 4) }}, // set 4, h
	0xE5: {2, 8, func(c *CPU) { c.regs[RegL] = bits.Set(c.regs[RegL], 4) }}, // set 4, l
	0xE6: {2, 16, func(c *CPU) { h := c.hl(); h.Set(bits.Set(h.Get(), 4)) }}, // set 4, (hl)
	0xE7: {2, 8, func(c *CPU) { c.regs[RegA] = bits.Set(c.regs[RegA], 4) }}, // set 4, a
	0xE8: {2, 8, func(c *CPU) { c.regs[RegB] = bits.Set(c.regs[RegB], 5) }}, // set 5, b
	0xE9: {2, 8, func(c *CPU) { c.regs[RegC] = bits.Set(c.regs[RegC], 5) }}, // set 5, c
	0xEA: {2, 8, func(c *CPU) { c.regs[RegD] = bits.Set(c.regs[RegD], 5) }}, // set 5, d
	0xEB: {2, 8, func(c *CPU) { c.regs[RegE] = bits.Set(c.regs[RegE], 5) }}, // set 5, e
	0xEC: {2, 8, func(c *CPU) { c.regs[RegH] = bits.Set(c.regs[RegH], 5) }}, // set 5, h
	0xED: {2, 8, func(c *CPU) { c.regs[RegL] = bits.Set(c.regs[RegL], 5) }}, // set 5, l
	0xEE: {2, 16, func(c *CPU) { h := c.hl(); h.Set(bits.Set(h.Get(), 5)) }}, // set 5, (hl)
	0xEF: {2, 8, func(c *CPU) { c.regs[RegA] = bits.Set(c.regs[RegA], 5) }}, // set 5, a
	0xF0: {2, 8, func(c *CPU) { c.regs[RegB] = bits.Set(c.regs[RegB], 6) }}, // set 6, b
	0xF1: {2, 8, func(c *CPU) { c.regs[RegC] = bits.Set(c.regs[RegC], 6) }}, // set 6, c
	0xF2: {2, 8, func(c *CPU) { c.regs[RegD] = bits.Set(c.regs[RegD], 6) }}, // set 6, d
	0xF3: {2, 8, func(c *CPU) { c.regs[RegE] = bits.Set(c.regs[RegE], 6) }}, // set 6, e
	0xF4: {2, 8, func(c *CPU) { c.regs[RegH] = bits.Set(c.regs[RegH], 6) }}, // set 6, h
	0xF5: {2, 8, func(c *CPU) { c.regs[RegL] = bits.Set(c.regs[RegL], 6) }}, // set 6, l
	0xF6: {2, 16, func(c *CPU) { h := c.hl(); h.Set(bits.Set(h.Get(), 6)) }}, // set 6, (hl)
	0xF7: {2, 8, func(c *CPU) { c.regs[RegA] = bits.Set(c.regs[RegA], 6) }}, // set 6, a
	0xF8: {2, 8, func(c *CPU) { c.regs[RegB] = bits.Set(c.regs[RegB], 7) }}, // set 7, b
	0xF9: {2, 8, func(c *CPU) { c.regs[RegC] = bits.Set(c.regs[RegC], 7) }}, // set 7, c
	0xFA: {2, 8, func(c *CPU) { c.regs[RegD] = bits.Set(c.regs[RegD], 7) }}, // set 7, d
	0xFB: {2, 8, func(c *CPU) { c.regs[RegE] = bits.Set(c.regs[RegE], 7) }}, // set 7, e
	0xFC: {2, 8, func(c *CPU) { c.regs[RegH] = bits.Set(c.regs[RegH], 7) }}, // set 7, h
	0xFD: {2, 8, func(c *CPU) { c.regs[RegL] = bits.Set(c.regs[RegL], 7) }}, // set 7, l
	0xFE: {2, 16, func(c *CPU) { h := c.hl(); h.Set(bits.Set(h.Get(), 7)) }}, // set 7, (hl)
	0xFF: {2, 8, func(c *CPU) { c.regs[RegA] = bits.Set(c.regs[RegA], 7) }}, // set 7, a
}
