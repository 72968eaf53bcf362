package cpu

import "github.com/mapamarco/naive-gbe/pkg/bits"

// testBit tests bit n of v. Flags: Z set when the bit is clear, N
// reset, H set, C preserved.
func (c *CPU) testBit(n, v uint8) {
	flags := FlagHalfCarry | c.keepCarry()
	if !bits.Test(v, n) {
		flags |= FlagZero
	}
	c.setFlags(flags)
}
