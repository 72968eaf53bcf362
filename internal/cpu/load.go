package cpu

// ldiHL stores the accumulator at (HL), then increments HL. No flags.
func (c *CPU) ldiHL() {
	hl := c.Register16(RegHL)
	c.mmu.Write(hl, c.regs[RegA])
	c.setRegister16(RegHL, hl+1)
}

// ldiA loads the accumulator from (HL), then increments HL. No flags.
func (c *CPU) ldiA() {
	hl := c.Register16(RegHL)
	c.regs[RegA] = c.mmu.Read(hl)
	c.setRegister16(RegHL, hl+1)
}

// lddHL stores the accumulator at (HL), then decrements HL. No flags.
func (c *CPU) lddHL() {
	hl := c.Register16(RegHL)
	c.mmu.Write(hl, c.regs[RegA])
	c.setRegister16(RegHL, hl-1)
}

// lddA loads the accumulator from (HL), then decrements HL. No flags.
func (c *CPU) lddA() {
	hl := c.Register16(RegHL)
	c.regs[RegA] = c.mmu.Read(hl)
	c.setRegister16(RegHL, hl-1)
}

// ldA16SP stores SP little endian at a fetched absolute address.
func (c *CPU) ldA16SP() {
	addr := c.fetchU16()
	sp := c.Register16(RegSP)
	c.mmu.Write(addr, uint8(sp))
	c.mmu.Write(addr+1, uint8(sp>>8))
}

// ldHLSPr8 sets HL to SP plus a fetched signed offset, with the
// addSPr8 flag rule.
func (c *CPU) ldHLSPr8() {
	c.setRegister16(RegHL, c.addSPr8())
}
