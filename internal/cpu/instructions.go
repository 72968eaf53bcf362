package cpu

// instructions is the base dispatch table. Each entry holds the
// instruction size in bytes, its T-cycle cost (taken cost for the
// conditional branches) and the handler. Handlers fetch their own
// immediate operands, advancing PC as they go.
var instructions = [0x100]Instruction{
	0x00: {1, 4, func(c *CPU) {}}, // nop
	0x01: {3, 12, func(c *CPU) { c.setRegister16(RegBC, c.fetchU16()) }}, // ld bc, d16
	0x02: {1, 8, func(c *CPU) { c.mmu.Write(c.Register16(RegBC), c.regs[RegA]) }}, // ld (bc), a
	0x03: {1, 8, func(c *CPU) { c.setRegister16(RegBC, c.Register16(RegBC)+1) }}, // inc bc
	0x04: {1, 4, func(c *CPU) { c.regs[RegB] = c.increment(c.regs[RegB]) }}, // inc b
	0x05: {1, 4, func(c *CPU) { c.regs[RegB] = c.decrement(c.regs[RegB]) }}, // dec b
	0x06: {2, 8, func(c *CPU) { c.regs[RegB] = c.fetchU8() }}, // ld b, d8
	0x07: {1, 4, func(c *CPU) { c.rlca() }}, // rlca
	0x08: {3, 20, func(c *CPU) { c.ldA16SP() }}, // ld (a16), sp
	0x09: {1, 8, func(c *CPU) { c.addHL(c.Register16(RegBC)) }}, // add hl, bc
	0x0A: {1, 8, func(c *CPU) { c.regs[RegA] = c.mmu.Read(c.Register16(RegBC)) }}, // ld a, (bc)
	0x0B: {1, 8, func(c *CPU) { c.setRegister16(RegBC, c.Register16(RegBC)-1) }}, // dec bc
	0x0C: {1, 4, func(c *CPU) { c.regs[RegC] = c.increment(c.regs[RegC]) }}, // inc c
	0x0D: {1, 4, func(c *CPU) { c.regs[RegC] = c.decrement(c.regs[RegC]) }}, // dec c
	0x0E: {2, 8, func(c *CPU) { c.regs[RegC] = c.fetchU8() }}, // ld c, d8
	0x0F: {1, 4, func(c *CPU) { c.rrca() }}, // rrca
	0x10: {2, 4, func(c *CPU) { c.state = StateStopped }}, // stop
	0x11: {3, 12, func(c *CPU) { c.setRegister16(RegDE, c.fetchU16()) }}, // ld de, d16
	0x12: {1, 8, func(c *CPU) { c.mmu.Write(c.Register16(RegDE), c.regs[RegA]) }}, // ld (de), a
	0x13: {1, 8, func(c *CPU) { c.setRegister16(RegDE, c.Register16(RegDE)+1) }}, // inc de
	0x14: {1, 4, func(c *CPU) { c.regs[RegD] = c.increment(c.regs[RegD]) }}, // inc d
	0x15: {1, 4, func(c *CPU) { c.regs[RegD] = c.decrement(c.regs[RegD]) }}, // dec d
	0x16: {2, 8, func(c *CPU) { c.regs[RegD] = c.fetchU8() }}, // ld d, d8
	0x17: {1, 4, func(c *CPU) { c.rla() }}, // rla
	0x18: {2, 8, func(c *CPU) { c.jumpRelative() }}, // jr r8
	0x19: {1, 8, func(c *CPU) { c.addHL(c.Register16(RegDE)) }}, // add hl, de
	0x1A: {1, 8, func(c *CPU) { c.regs[RegA] = c.mmu.Read(c.Register16(RegDE)) }}, // ld a, (de)
	0x1B: {1, 8, func(c *CPU) { c.setRegister16(RegDE, c.Register16(RegDE)-1) }}, // dec de
	0x1C: {1, 4, func(c *CPU) { c.regs[RegE] = c.increment(c.regs[RegE]) }}, // inc e
	0x1D: {1, 4, func(c *CPU) { c.regs[RegE] = c.decrement(c.regs[RegE]) }}, // dec e
	0x1E: {2, 8, func(c *CPU) { c.regs[RegE] = c.fetchU8() }}, // ld e, d8
	0x1F: {1, 4, func(c *CPU) { c.rra() }}, // rra
	0x20: {2, 12, func(c *CPU) { c.jumpRelativeCond(!c.Flag(FlagZero)) }}, // jr nz, r8
	0x21: {3, 12, func(c *CPU) { c.setRegister16(RegHL, c.fetchU16()) }}, // ld hl, d16
	0x22: {1, 8, func(c *CPU) { c.ldiHL() }}, // ld (hl+), a
	0x23: {1, 8, func(c *CPU) { c.setRegister16(RegHL, c.Register16(RegHL)+1) }}, // inc hl
	0x24: {1, 4, func(c *CPU) { c.regs[RegH] = c.increment(c.regs[RegH]) }}, // inc h
	0x25: {1, 4, func(c *CPU) { c.regs[RegH] = c.decrement(c.regs[RegH]) }}, // dec h
	0x26: {2, 8, func(c *CPU) { c.regs[RegH] = c.fetchU8() }}, // ld h, d8
	0x27: {1, 4, func(c *CPU) { c.daa() }}, // daa
	0x28: {2, 12, func(c *CPU) { c.jumpRelativeCond(c.Flag(FlagZero)) }}, // jr z, r8
	0x29: {1, 8, func(c *CPU) { c.addHL(c.Register16(RegHL)) }}, // add hl, hl
	0x2A: {1, 8, func(c *CPU) { c.ldiA() }}, // ld a, (hl+)
	0x2B: {1, 8, func(c *CPU) { c.setRegister16(RegHL, c.Register16(RegHL)-1) }}, // dec hl
	0x2C: {1, 4, func(c *CPU) { c.regs[RegL] = c.increment(c.regs[RegL]) }}, // inc l
	0x2D: {1, 4, func(c *CPU) { c.regs[RegL] = c.decrement(c.regs[RegL]) }}, // dec l
	0x2E: {2, 8, func(c *CPU) { c.regs[RegL] = c.fetchU8() }}, // ld l, d8
	0x2F: {1, 4, func(c *CPU) { c.cpl() }}, // cpl
	0x30: {2, 12, func(c *CPU) { c.jumpRelativeCond(!c.Flag(FlagCarry)) }}, // jr nc, r8
	0x31: {3, 12, func(c *CPU) { c.setRegister16(RegSP, c.fetchU16()) }}, // ld sp, d16
	0x32: {1, 8, func(c *CPU) { c.lddHL() }}, // ld (hl-), a
	0x33: {1, 8, func(c *CPU) { c.setRegister16(RegSP, c.Register16(RegSP)+1) }}, // inc sp
	0x34: {1, 12, func(c *CPU) { h := c.hl(); h.Set(c.increment(h.Get())) }}, // inc (hl)
	0x35: {1, 12, func(c *CPU) { h := c.hl(); h.Set(c.decrement(h.Get())) }}, // dec (hl)
	0x36: {2, 12, func(c *CPU) { c.mmu.Write(c.Register16(RegHL), c.fetchU8()) }}, // ld (hl), d8
	0x37: {1, 4, func(c *CPU) { c.scf() }}, // scf
	0x38: {2, 12, func(c *CPU) { c.jumpRelativeCond(c.Flag(FlagCarry)) }}, // jr c, r8
	0x39: {1, 8, func(c *CPU) { c.addHL(c.Register16(RegSP)) }}, // add hl, sp
	0x3A: {1, 8, func(c *CPU) { c.lddA() }}, // ld a, (hl-)
	0x3B: {1, 8, func(c *CPU) { c.setRegister16(RegSP, c.Register16(RegSP)-1) }}, // dec sp
	0x3C: {1, 4, func(c *CPU) { c.regs[RegA] = c.increment(c.regs[RegA]) }}, // inc a
	0x3D: {1, 4, func(c *CPU) { c.regs[RegA] = c.decrement(c.regs[RegA]) }}, // dec a
	0x3E: {2, 8, func(c *CPU) { c.regs[RegA] = c.fetchU8() }}, // ld a, d8
	0x3F: {1, 4, func(c *CPU) { c.ccf() }}, // ccf
	0x40: {1, 4, func(c *CPU) { c.regs[RegB] = c.regs[RegB] }}, // ld b, b
	0x41: {1, 4, func(c *CPU) { c.regs[RegB] = c.regs[RegC] }}, // ld b, c
	0x42: {1, 4, func(c *CPU) { c.regs[RegB] = c.regs[RegD] }}, // ld b, d
	0x43: {1, 4, func(c *CPU) { c.regs[RegB] = c.regs[RegE] }}, // ld b, e
	0x44: {1, 4, func(c *CPU) { c.regs[RegB] = c.regs[RegH] }}, // ld b, h
	0x45: {1, 4, func(c *CPU) { c.regs[RegB] = c.regs[RegL] }}, // ld b, l
	0x46: {1, 8, func(c *CPU) { c.regs[RegB] = c.mmu.Read(c.Register16(RegHL)) }}, // ld b, (hl)
	0x47: {1, 4, func(c *CPU) { c.regs[RegB] = c.regs[RegA] }}, // ld b, a
	0x48: {1, 4, func(c *CPU) { c.regs[RegC] = c.regs[RegB] }}, // ld c, b
	0x49: {1, 4, func(c *CPU) { c.regs[RegC] = c.regs[RegC] }}, // ld c, c
	0x4A: {1, 4, func(c *CPU) { c.regs[RegC] = c.regs[RegD] }}, // ld c, d
	0x4B: {1, 4, func(c *CPU) { c.regs[RegC] = c.regs[RegE] }}, // ld c, e
	0x4C: {1, 4, func(c *CPU) { c.regs[RegC] = c.regs[RegH] }}, // ld c, h
	0x4D: {1, 4, func(c *CPU) { c.regs[RegC] = c.regs[RegL] }}, // ld c, l
	0x4E: {1, 8, func(c *CPU) { c.regs[RegC] = c.mmu.Read(c.Register16(RegHL)) }}, // ld c, (hl)
	0x4F: {1, 4, func(c *CPU) { c.regs[RegC] = c.regs[RegA] }}, // ld c, a
	0x50: {1, 4, func(c *CPU) { c.regs[RegD] = c.regs[RegB] }}, // ld d, b
	0x51: {1, 4, func(c *CPU) { c.regs[RegD] = c.regs[RegC] }}, // ld d, c
	0x52: {1, 4, func(c *CPU) { c.regs[RegD] = c.regs[RegD] }}, // ld d, d
	0x53: {1, 4, func(c *CPU) { c.regs[RegD] = c.regs[RegE] }}, // ld d, e
	0x54: {1, 4, func(c *CPU) { c.regs[RegD] = c.regs[RegH] }}, // ld d, h
	0x55: {1, 4, func(c *CPU) { c.regs[RegD] = c.regs[RegL] }}, // ld d, l
	0x56: {1, 8, func(c *CPU) { c.regs[RegD] = c.mmu.Read(c.Register16(RegHL)) }}, // ld d, (hl)
	0x57: {1, 4, func(c *CPU) { c.regs[RegD] = c.regs[RegA] }}, // ld d, a
	0x58: {1, 4, func(c *CPU) { c.regs[RegE] = c.regs[RegB] }}, // ld e, b
	0x59: {1, 4, func(c *CPU) { c.regs[RegE] = c.regs[RegC] }}, // ld e, c
	0x5A: {1, 4, func(c *CPU) { c.regs[RegE] = c.regs[RegD] }}, // ld e, d
	0x5B: {1, 4, func(c *CPU) { c.regs[RegE] = c.regs[RegE] }}, // ld e, e
	0x5C: {1, 4, func(c *CPU) { c.regs[RegE] = c.regs[RegH] }}, // ld e, h
	0x5D: {1, 4, func(c *CPU) { c.regs[RegE] = c.regs[RegL] }}, // ld e, l
	0x5E: {1, 8, func(c *CPU) { c.regs[RegE] = c.mmu.Read(c.Register16(RegHL)) }}, // ld e, (hl)
	0x5F: {1, 4, func(c *CPU) { c.regs[RegE] = c.regs[RegA] }}, // ld e, a
	0x60: {1, 4, func(c *CPU) { c.regs[RegH] = c.regs[RegB] }}, // ld h, b
	0x61: {1, 4, func(c *CPU) { c.regs[RegH] = c.regs[RegC] }}, // ld h, c
	0x62: {1, 4, func(c *CPU) { c.regs[RegH] = c.regs[RegD] }}, // ld h, d
	0x63: {1, 4, func(c *CPU) { c.regs[RegH] = c.regs[RegE] }}, // ld h, e
	0x64: {1, 4, func(c *CPU) { c.regs[RegH] = c.regs[RegH] }}, // ld h, h
	0x65: {1, 4, func(c *CPU) { c.regs[RegH] = c.regs[RegL] }}, // ld h, l
	0x66: {1, 8, func(c *CPU) { c.regs[RegH] = c.mmu.Read(c.Register16(RegHL)) }}, // ld h, (hl)
	0x67: {1, 4, func(c *CPU) { c.regs[RegH] = c.regs[RegA] }}, // ld h, a
	0x68: {1, 4, func(c *CPU) { c.regs[RegL] = c.regs[RegB] }}, // ld l, b
	0x69: {1, 4, func(c *CPU) { c.regs[RegL] = c.regs[RegC] }}, // ld l, c
	0x6A: {1, 4, func(c *CPU) { c.regs[RegL] = c.regs[RegD] }}, // ld l, d
	0x6B: {1, 4, func(c *CPU) { c.regs[RegL] = c.regs[RegE] }}, // ld l, e
	0x6C: {1, 4, func(c *CPU) { c.regs[RegL] = c.regs[RegH] }}, // ld l, h
	0x6D: {1, 4, func(c *CPU) { c.regs[RegL] = c.regs[RegL] }}, // ld l, l
	0x6E: {1, 8, func(c *CPU) { c.regs[RegL] = c.mmu.Read(c.Register16(RegHL)) }}, // ld l, (hl)
	0x6F: {1, 4, func(c *CPU) { c.regs[RegL] = c.regs[RegA] }}, // ld l, a
	0x70: {1, 8, func(c *CPU) { c.mmu.Write(c.Register16(RegHL), c.regs[RegB]) }}, // ld (hl), b
	0x71: {1, 8, func(c *CPU) { c.mmu.Write(c.Register16(RegHL), c.regs[RegC]) }}, // ld (hl), c
	0x72: {1, 8, func(c *CPU) { c.mmu.Write(c.Register16(RegHL), c.regs[RegD]) }}, // ld (hl), d
	0x73: {1, 8, func(c *CPU) { c.mmu.Write(c.Register16(RegHL), c.regs[RegE]) }}, // ld (hl), e
	0x74: {1, 8, func(c *CPU) { c.mmu.Write(c.Register16(RegHL), c.regs[RegH]) }}, // ld (hl), h
	0x75: {1, 8, func(c *CPU) { c.mmu.Write(c.Register16(RegHL), c.regs[RegL]) }}, // ld (hl), l
	0x76: {1, 4, func(c *CPU) { c.state = StateSuspended }}, // halt
	0x77: {1, 8, func(c *CPU) { c.mmu.Write(c.Register16(RegHL), c.regs[RegA]) }}, // ld (hl), a
	0x78: {1, 4, func(c *CPU) { c.regs[RegA] = c.regs[RegB] }}, // ld a, b
	0x79: {1, 4, func(c *CPU) { c.regs[RegA] = c.regs[RegC] }}, // ld a, c
	0x7A: {1, 4, func(c *CPU) { c.regs[RegA] = c.regs[RegD] }}, // ld a, d
	0x7B: {1, 4, func(c *CPU) { c.regs[RegA] = c.regs[RegE] }}, // ld a, e
	0x7C: {1, 4, func(c *CPU) { c.regs[RegA] = c.regs[RegH] }}, // ld a, h
	0x7D: {1, 4, func(c *CPU) { c.regs[RegA] = c.regs[RegL] }}, // ld a, l
	0x7E: {1, 8, func(c *CPU) { c.regs[RegA] = c.mmu.Read(c.Register16(RegHL)) }}, // ld a, (hl)
	0x7F: {1, 4, func(c *CPU) { c.regs[RegA] = c.regs[RegA] }}, // ld a, a
	0x80: {1, 4, func(c *CPU) { c.add(c.regs[RegB], 0) }}, // add a, b
	0x81: {1, 4, func(c *CPU) { c.add(c.regs[RegC], 0) }}, // add a, c
	0x82: {1, 4, func(c *CPU) { c.add(c.regs[RegD], 0) }}, // add a, d
	0x83: {1, 4, func(c *CPU) { c.add(c.regs[RegE], 0) }}, // add a, e
	0x84: {1, 4, func(c *CPU) { c.add(c.regs[RegH], 0) }}, // add a, h
	0x85: {1, 4, func(c *CPU) { c.add(c.regs[RegL], 0) }}, // add a, l
	0x86: {1, 8, func(c *CPU) { c.add(c.mmu.Read(c.Register16(RegHL)), 0) }}, // add a, (hl)
	0x87: {1, 4, func(c *CPU) { c.add(c.regs[RegA], 0) }}, // add a, a
	0x88: {1, 4, func(c *CPU) { c.add(c.regs[RegB], c.carryBit()) }}, // adc a, b
	0x89: {1, 4, func(c *CPU) { c.add(c.regs[RegC], c.carryBit()) }}, // adc a, c
	0x8A: {1, 4, func(c *CPU) { c.add(c.regs[RegD], c.carryBit()) }}, // adc a, d
	0x8B: {1, 4, func(c *CPU) { c.add(c.regs[RegE], c.carryBit()) }}, // adc a, e
	0x8C: {1, 4, func(c *CPU) { c.add(c.regs[RegH], c.carryBit()) }}, // adc a, h
	0x8D: {1, 4, func(c *CPU) { c.add(c.regs[RegL], c.carryBit()) }}, // adc a, l
	0x8E: {1, 8, func(c *CPU) { c.add(c.mmu.Read(c.Register16(RegHL)), c.carryBit()) }}, // adc a, (hl)
	0x8F: {1, 4, func(c *CPU) { c.add(c.regs[RegA], c.carryBit()) }}, // adc a, a
	0x90: {1, 4, func(c *CPU) { c.sub(c.regs[RegB], 0) }}, // sub b
	0x91: {1, 4, func(c *CPU) { c.sub(c.regs[RegC], 0) }}, // sub c
	0x92: {1, 4, func(c *CPU) { c.sub(c.regs[RegD], 0) }}, // sub d
	0x93: {1, 4, func(c *CPU) { c.sub(c.regs[RegE], 0) }}, // sub e
	0x94: {1, 4, func(c *CPU) { c.sub(c.regs[RegH], 0) }}, // sub h
	0x95: {1, 4, func(c *CPU) { c.sub(c.regs[RegL], 0) }}, // sub l
	0x96: {1, 8, func(c *CPU) { c.sub(c.mmu.Read(c.Register16(RegHL)), 0) }}, // sub (hl)
	0x97: {1, 4, func(c *CPU) { c.sub(c.regs[RegA], 0) }}, // sub a
	0x98: {1, 4, func(c *CPU) { c.sub(c.regs[RegB], c.carryBit()) }}, // sbc a, b
	0x99: {1, 4, func(c *CPU) { c.sub(c.regs[RegC], c.carryBit()) }}, // sbc a, c
	0x9A: {1, 4, func(c *CPU) { c.sub(c.regs[RegD], c.carryBit()) }}, // sbc a, d
	0x9B: {1, 4, func(c *CPU) { c.sub(c.regs[RegE], c.carryBit()) }}, // sbc a, e
	0x9C: {1, 4, func(c *CPU) { c.sub(c.regs[RegH], c.carryBit()) }}, // sbc a, h
	0x9D: {1, 4, func(c *CPU) { c.sub(c.regs[RegL], c.carryBit()) }}, // sbc a, l
	0x9E: {1, 8, func(c *CPU) { c.sub(c.mmu.Read(c.Register16(RegHL)), c.carryBit()) }}, // sbc a, (hl)
	0x9F: {1, 4, func(c *CPU) { c.sub(c.regs[RegA], c.carryBit()) }}, // sbc a, a
	0xA0: {1, 4, func(c *CPU) { c.and(c.regs[RegB]) }}, // and b
	0xA1: {1, 4, func(c *CPU) { c.and(c.regs[RegC]) }}, // and c
	0xA2: {1, 4, func(c *CPU) { c.and(c.regs[RegD]) }}, // and d
	0xA3: {1, 4, func(c *CPU) { c.and(c.regs[RegE]) }}, // and e
	0xA4: {1, 4, func(c *CPU) { c.and(c.regs[RegH]) }}, // and h
	0xA5: {1, 4, func(c *CPU) { c.and(c.regs[RegL]) }}, // and l
	0xA6: {1, 8, func(c *CPU) { c.and(c.mmu.Read(c.Register16(RegHL))) }}, // and (hl)
	0xA7: {1, 4, func(c *CPU) { c.and(c.regs[RegA]) }}, // and a
	0xA8: {1, 4, func(c *CPU) { c.xor(c.regs[RegB]) }}, // xor b
	0xA9: {1, 4, func(c *CPU) { c.xor(c.regs[RegC]) }}, // xor c
	0xAA: {1, 4, func(c *CPU) { c.xor(c.regs[RegD]) }}, // xor d
	0xAB: {1, 4, func(c *CPU) { c.xor(c.regs[RegE]) }}, // xor e
	0xAC: {1, 4, func(c *CPU) { c.xor(c.regs[RegH]) }}, // xor h
	0xAD: {1, 4, func(c *CPU) { c.xor(c.regs[RegL]) }}, // xor l
	0xAE: {1, 8, func(c *CPU) { c.xor(c.mmu.Read(c.Register16(RegHL))) }}, // xor (hl)
	0xAF: {1, 4, func(c *CPU) { c.xor(c.regs[RegA]) }}, // xor a
	0xB0: {1, 4, func(c *CPU) { c.or(c.regs[RegB]) }}, // or b
	0xB1: {1, 4, func(c *CPU) { c.or(c.regs[RegC]) }}, // or c
	0xB2: {1, 4, func(c *CPU) { c.or(c.regs[RegD]) }}, // or d
	0xB3: {1, 4, func(c *CPU) { c.or(c.regs[RegE]) }}, // or e
	0xB4: {1, 4, func(c *CPU) { c.or(c.regs[RegH]) }}, // or h
	0xB5: {1, 4, func(c *CPU) { c.or(c.regs[RegL]) }}, // or l
	0xB6: {1, 8, func(c *CPU) { c.or(c.mmu.Read(c.Register16(RegHL))) }}, // or (hl)
	0xB7: {1, 4, func(c *CPU) { c.or(c.regs[RegA]) }}, // or a
	0xB8: {1, 4, func(c *CPU) { c.compare(c.regs[RegB], 0) }}, // cp b
	0xB9: {1, 4, func(c *CPU) { c.compare(c.regs[RegC], 0) }}, // cp c
	0xBA: {1, 4, func(c *CPU) { c.compare(c.regs[RegD], 0) }}, // cp d
	0xBB: {1, 4, func(c *CPU) { c.compare(c.regs[RegE], 0) }}, // cp e
	0xBC: {1, 4, func(c *CPU) { c.compare(c.regs[RegH], 0) }}, // cp h
	0xBD: {1, 4, func(c *CPU) { c.compare(c.regs[RegL], 0) }}, // cp l
	0xBE: {1, 8, func(c *CPU) { c.compare(c.mmu.Read(c.Register16(RegHL)), 0) }}, // cp (hl)
	0xBF: {1, 4, func(c *CPU) { c.compare(c.regs[RegA], 0) }}, // cp a
	0xC0: {1, 20, func(c *CPU) { c.retCond(!c.Flag(FlagZero)) }}, // ret nz
	0xC1: {1, 12, func(c *CPU) { c.setRegister16(RegBC, c.pop16()) }}, // pop bc
	0xC2: {3, 16, func(c *CPU) { c.jumpCond(!c.Flag(FlagZero)) }}, // jp nz, a16
	0xC3: {3, 16, func(c *CPU) { c.jump() }}, // jp a16
	0xC4: {3, 24, func(c *CPU) { c.callCond(!c.Flag(FlagZero)) }}, // call nz, a16
	0xC5: {1, 16, func(c *CPU) { c.push16(c.Register16(RegBC)) }}, // push bc
	0xC6: {2, 8, func(c *CPU) { c.add(c.fetchU8(), 0) }}, // add a, d8
	0xC7: {1, 16, func(c *CPU) { c.rst(0x0000) }}, // rst 00h
	0xC8: {1, 20, func(c *CPU) { c.retCond(c.Flag(FlagZero)) }}, // ret z
	0xC9: {1, 16, func(c *CPU) { c.ret() }}, // ret
	0xCA: {3, 16, func(c *CPU) { c.jumpCond(c.Flag(FlagZero)) }}, // jp z, a16
	0xCB: {2, 0, func(c *CPU) { c.stepCB() }}, // prefix cb
	0xCC: {3, 24, func(c *CPU) { c.callCond(c.Flag(FlagZero)) }}, // call z, a16
	0xCD: {3, 24, func(c *CPU) { c.call() }}, // call a16
	0xCE: {2, 8, func(c *CPU) { c.add(c.fetchU8(), c.carryBit()) }}, // adc a, d8
	0xCF: {1, 16, func(c *CPU) { c.rst(0x0008) }}, // rst 08h
	0xD0: {1, 20, func(c *CPU) { c.retCond(!c.Flag(FlagCarry)) }}, // ret nc
	0xD1: {1, 12, func(c *CPU) { c.setRegister16(RegDE, c.pop16()) }}, // pop de
	0xD2: {3, 16, func(c *CPU) { c.jumpCond(!c.Flag(FlagCarry)) }}, // jp nc, a16
	0xD3: {1, 4, func(c *CPU) { c.opUndefined() }}, // inv
	0xD4: {3, 24, func(c *CPU) { c.callCond(!c.Flag(FlagCarry)) }}, // call nc, a16
	0xD5: {1, 16, func(c *CPU) { c.push16(c.Register16(RegDE)) }}, // push de
	0xD6: {2, 8, func(c *CPU) { c.sub(c.fetchU8(), 0) }}, // sub d8
	0xD7: {1, 16, func(c *CPU) { c.rst(0x0010) }}, // rst 10h
	0xD8: {1, 20, func(c *CPU) { c.retCond(c.Flag(FlagCarry)) }}, // ret c
	0xD9: {1, 16, func(c *CPU) { c.reti() }}, // reti
	0xDA: {3, 16, func(c *CPU) { c.jumpCond(c.Flag(FlagCarry)) }}, // jp c, a16
	0xDB: {1, 4, func(c *CPU) { c.opUndefined() }}, // inv
	0xDC: {3, 24, func(c *CPU) { c.callCond(c.Flag(FlagCarry)) }}, // call c, a16
	0xDD: {1, 4, func(c *CPU) { c.opUndefined() }}, // inv
	0xDE: {2, 8, func(c *CPU) { c.sub(c.fetchU8(), c.carryBit()) }}, // sbc a, d8
	0xDF: {1, 16, func(c *CPU) { c.rst(0x0018) }}, // rst 18h
	0xE0: {2, 12, func(c *CPU) { c.mmu.Write(0xFF00+uint16(c.fetchU8()), c.regs[RegA]) }}, // ldh (a8), a
	0xE1: {1, 12, func(c *CPU) { c.setRegister16(RegHL, c.pop16()) }}, // pop hl
	0xE2: {1, 8, func(c *CPU) { c.mmu.Write(0xFF00+uint16(c.regs[RegC]), c.regs[RegA]) }}, // ld (c), a
	0xE3: {1, 4, func(c *CPU) { c.opUndefined() }}, // inv
	0xE4: {1, 4, func(c *CPU) { c.opUndefined() }}, // inv
	0xE5: {1, 16, func(c *CPU) { c.push16(c.Register16(RegHL)) }}, // push hl
	0xE6: {2, 4, func(c *CPU) { c.and(c.fetchU8()) }}, // and d8
	0xE7: {1, 16, func(c *CPU) { c.rst(0x0020) }}, // rst 20h
	0xE8: {2, 16, func(c *CPU) { c.setRegister16(RegSP, c.addSPr8()) }}, // add sp, r8
	0xE9: {1, 4, func(c *CPU) { c.setPC(c.Register16(RegHL)) }}, // jp (hl)
	0xEA: {3, 16, func(c *CPU) { c.mmu.Write(c.fetchU16(), c.regs[RegA]) }}, // ld (a16), a
	0xEB: {1, 4, func(c *CPU) { c.opUndefined() }}, // inv
	0xEC: {1, 4, func(c *CPU) { c.opUndefined() }}, // inv
	0xED: {1, 4, func(c *CPU) { c.opUndefined() }}, // inv
	0xEE: {2, 8, func(c *CPU) { c.xor(c.fetchU8()) }}, // xor d8
	0xEF: {1, 16, func(c *CPU) { c.rst(0x0028) }}, // rst 28h
	0xF0: {2, 12, func(c *CPU) { c.regs[RegA] = c.mmu.Read(0xFF00 + uint16(c.fetchU8())) }}, // ldh a, (a8)
	0xF1: {1, 12, func(c *CPU) { c.setRegister16(RegAF, c.pop16()) }}, // pop af
	0xF2: {1, 8, func(c *CPU) { c.regs[RegA] = c.mmu.Read(0xFF00 + uint16(c.regs[RegC])) }}, // ld a, (c)
	0xF3: {1, 4, func(c *CPU) { c.ime = 0 }}, // di
	0xF4: {1, 4, func(c *CPU) { c.opUndefined() }}, // inv
	0xF5: {1, 16, func(c *CPU) { c.push16(c.Register16(RegAF)) }}, // push af
	0xF6: {2, 8, func(c *CPU) { c.or(c.fetchU8()) }}, // or d8
	0xF7: {1, 16, func(c *CPU) { c.rst(0x0030) }}, // rst 30h
	0xF8: {2, 12, func(c *CPU) { c.ldHLSPr8() }}, // ld hl, sp+r8
	0xF9: {1, 4, func(c *CPU) { c.setRegister16(RegSP, c.Register16(RegHL)) }}, // ld sp, hl
	0xFA: {3, 16, func(c *CPU) { c.regs[RegA] = c.mmu.Read(c.fetchU16()) }}, // ld a, (a16)
	0xFB: {1, 4, func(c *CPU) { c.ime = 1 }}, // ei
	0xFC: {1, 4, func(c *CPU) { c.opUndefined() }}, // inv
	0xFD: {1, 4, func(c *CPU) { c.opUndefined() }}, // inv
	0xFE: {2, 8, func(c *CPU) { c.compare(c.fetchU8(), 0) }}, // cp d8
	0xFF: {1, 16, func(c *CPU) { c.rst(0x0038) }}, // rst 38h
}
