package cpu

// swap exchanges the nibbles of v. Flags: Z from result, N, H and C
// reset.
func (c *CPU) swap(v uint8) uint8 {
	r := v<<4 | v>>4
	c.setFlags(zeroFlag(r))
	return r
}
