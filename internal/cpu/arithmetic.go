package cpu

import "github.com/mapamarco/naive-gbe/pkg/bits"

// add adds v plus the carry-in to the accumulator.
// Flags: Z from result, N reset, H from bit 3, C from bit 7.
func (c *CPU) add(v, carry uint8) {
	a := c.regs[RegA]
	sum := uint16(a) + uint16(v) + uint16(carry)
	r := uint8(sum)

	flags := zeroFlag(r)
	if bits.HalfCarryAdd(a, v, carry) {
		flags |= FlagHalfCarry
	}
	if sum > 0xFF {
		flags |= FlagCarry
	}

	c.regs[RegA] = r
	c.setFlags(flags)
}

// sub subtracts v plus the borrow-in from the accumulator.
// Flags: Z from result, N set, H from bit 4 borrow, C from full borrow.
func (c *CPU) sub(v, carry uint8) {
	c.regs[RegA] = c.compare(v, carry)
}

// compare performs the subtraction of sub without storing the result,
// which it returns.
func (c *CPU) compare(v, carry uint8) uint8 {
	a := c.regs[RegA]
	r := a - v - carry

	flags := zeroFlag(r) | FlagSubtract
	if bits.HalfBorrowSub(a, v, carry) {
		flags |= FlagHalfCarry
	}
	if uint16(a) < uint16(v)+uint16(carry) {
		flags |= FlagCarry
	}

	c.setFlags(flags)
	return r
}

// increment returns v+1. Flags: Z from result, N reset, H from low
// nibble carry, C preserved.
func (c *CPU) increment(v uint8) uint8 {
	r := v + 1

	flags := zeroFlag(r) | c.keepCarry()
	if r&0x0F == 0 {
		flags |= FlagHalfCarry
	}

	c.setFlags(flags)
	return r
}

// decrement returns v-1. Flags: Z from result, N set, H from low nibble
// borrow, C preserved.
func (c *CPU) decrement(v uint8) uint8 {
	r := v - 1

	flags := zeroFlag(r) | FlagSubtract | c.keepCarry()
	if v&0x0F == 0 {
		flags |= FlagHalfCarry
	}

	c.setFlags(flags)
	return r
}

// addHL adds v to HL. Flags: Z preserved, N reset, H from bit 11, C from
// bit 15.
func (c *CPU) addHL(v uint16) {
	hl := c.Register16(RegHL)
	sum := uint32(hl) + uint32(v)

	flags := c.regs[RegF] & FlagZero
	if hl&0x0FFF+v&0x0FFF > 0x0FFF {
		flags |= FlagHalfCarry
	}
	if sum > 0xFFFF {
		flags |= FlagCarry
	}

	c.setRegister16(RegHL, uint16(sum))
	c.setFlags(flags)
}

// addSPr8 computes SP plus a fetched signed offset. Flags: Z and N
// reset, H and C from the unsigned low byte addition.
func (c *CPU) addSPr8() uint16 {
	sp := c.Register16(RegSP)
	off := c.fetchU8()

	var flags uint8
	if bits.HalfCarryAdd(uint8(sp), off, 0) {
		flags |= FlagHalfCarry
	}
	if uint16(uint8(sp))+uint16(off) > 0xFF {
		flags |= FlagCarry
	}
	c.setFlags(flags)

	return sp + uint16(int8(off))
}
