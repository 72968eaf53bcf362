package cpu

// The decimal adjust is precomputed: one entry per combination of
// accumulator value and the N, H and C flags, each yielding the adjusted
// accumulator and the resulting carry. Encoding the algorithm as data
// keeps the tricky BCD correction in exactly one place.

const (
	daaN = 1 << 8
	daaH = 1 << 9
	daaC = 1 << 10
)

type daaEntry struct {
	value uint8
	carry bool
}

var daaTable [2048]daaEntry

func init() {
	for idx := range daaTable {
		a := uint8(idx)
		n := idx&daaN != 0
		h := idx&daaH != 0
		carryIn := idx&daaC != 0

		v, carry := a, carryIn
		if !n {
			if h || v&0x0F > 0x09 {
				v += 0x06
			}
			if carryIn || a > 0x99 {
				v += 0x60
				carry = true
			}
		} else {
			if h {
				v -= 0x06
			}
			if carryIn {
				v -= 0x60
			}
		}

		daaTable[idx] = daaEntry{value: v, carry: carry}
	}
}

// daa adjusts the accumulator after a BCD addition or subtraction.
// Flags: Z from result, H reset, C from the adjustment, N preserved.
func (c *CPU) daa() {
	idx := int(c.regs[RegA])
	if c.Flag(FlagSubtract) {
		idx |= daaN
	}
	if c.Flag(FlagHalfCarry) {
		idx |= daaH
	}
	if c.Flag(FlagCarry) {
		idx |= daaC
	}

	e := daaTable[idx]
	c.regs[RegA] = e.value

	flags := zeroFlag(e.value) | c.regs[RegF]&FlagSubtract
	if e.carry {
		flags |= FlagCarry
	}
	c.setFlags(flags)
}
