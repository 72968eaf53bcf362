// Package cpu implements the Sharp LR35902, the Game Boy CPU. It is a
// cycle-counted interpreter: instructions are dispatched through two 256
// entry tables (base and CB-prefixed), each entry carrying the
// instruction size, its cycle cost and a handler.
package cpu

import (
	"fmt"

	"github.com/mapamarco/naive-gbe/internal/mmu"
	"github.com/mapamarco/naive-gbe/internal/ppu"
)

const (
	// ClockSpeed is the nominal clock of the CPU in T-cycles per
	// second (4.194304 MHz).
	ClockSpeed = 4194304
)

// R8 indexes an 8-bit register in the register file. The file is laid
// out so that each 16-bit pair occupies two consecutive cells, high byte
// first, which mirrors the hardware layout and makes pair access a
// two-byte composition.
type R8 uint8

const (
	// RegA is the accumulator.
	RegA R8 = iota
	// RegF is the flags register. Its low nibble always reads zero.
	RegF
	// RegB is the B register.
	RegB
	// RegC is the C register.
	RegC
	// RegD is the D register.
	RegD
	// RegE is the E register.
	RegE
	// RegH is the H register.
	RegH
	// RegL is the L register.
	RegL
)

// R16 indexes a 16-bit register pair: the offset of its high byte in the
// register file.
type R16 uint8

const (
	// RegAF is the accumulator/flags pair.
	RegAF R16 = 0
	// RegBC is the BC pair.
	RegBC R16 = 2
	// RegDE is the DE pair.
	RegDE R16 = 4
	// RegHL is the HL pair, the memory pointer of choice.
	RegHL R16 = 6
	// RegSP is the stack pointer.
	RegSP R16 = 8
	// RegPC is the program counter.
	RegPC R16 = 10
)

// State is the execution state of the CPU.
type State uint8

const (
	// StateStopped is the state before the first Reset, after a STOP
	// instruction and after an undefined opcode fault. Step is a
	// no-op.
	StateStopped State = iota
	// StateReady is the normal execution state.
	StateReady
	// StateSuspended is the state after HALT. Step accrues a nominal
	// four cycles and stays here.
	StateSuspended
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateReady:
		return "ready"
	case StateSuspended:
		return "suspended"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// OpcodeFault records the execution of an undefined opcode.
type OpcodeFault struct {
	PC     uint16
	Opcode uint8
}

// Error implements the error interface.
func (f *OpcodeFault) Error() string {
	return fmt.Sprintf("cpu: undefined opcode %02x at %04x", f.Opcode, f.PC)
}

// Instruction is one entry of a dispatch table.
type Instruction struct {
	// Size is the instruction length in bytes, including the CB
	// prefix where present.
	Size uint8
	// Cycles is the cost of the instruction in T-cycles. For
	// conditional branches this is the taken cost; handlers deduct
	// the fall-through delta when the branch is not taken.
	Cycles uint8

	fn func(c *CPU)
}

// CPU is the LR35902 interpreter state.
type CPU struct {
	// regs is the register file: A F B C D E H L, then SP and PC as
	// high/low byte pairs.
	regs [12]uint8

	ime   uint8
	cycle uint64
	state State
	fault *OpcodeFault

	// ticks is the cycle cost of the instruction in flight; handlers
	// adjust it for untaken branches and CB dispatch.
	ticks uint8

	mmu *mmu.MMU
	ppu *ppu.PPU
}

// New returns a CPU wired to the given MMU and PPU. The CPU starts
// stopped; Reset readies it.
func New(m *mmu.MMU, p *ppu.PPU) *CPU {
	return &CPU{mmu: m, ppu: p}
}

// Reset zeroes the register file and the cycle counter and readies the
// CPU for execution at 0x0000.
func (c *CPU) Reset() {
	c.regs = [12]uint8{}
	c.ime = 0
	c.cycle = 0
	c.fault = nil
	c.state = StateReady
}

// Step fetches, decodes and executes a single instruction, accumulating
// its cycle cost. In StateStopped it does nothing; in StateSuspended it
// accrues four cycles.
func (c *CPU) Step() {
	switch c.state {
	case StateStopped:
		return
	case StateSuspended:
		c.cycle += 4
		return
	}

	op := &instructions[c.fetchU8()]
	c.ticks = op.Cycles
	op.fn(c)
	c.cycle += uint64(c.ticks)
}

// stepCB dispatches the CB-prefixed plane: the handler of opcode 0xCB.
func (c *CPU) stepCB() {
	op := &instructionsCB[c.fetchU8()]
	op.fn(c)
	c.ticks += op.Cycles
}

// Register8 returns the value of an 8-bit register.
func (c *CPU) Register8(r R8) uint8 {
	return c.regs[r]
}

// Register16 returns the value of a 16-bit register pair, composed big
// endian from its two cells.
func (c *CPU) Register16(r R16) uint16 {
	return uint16(c.regs[r])<<8 | uint16(c.regs[r+1])
}

// Flags returns the flags byte.
func (c *CPU) Flags() uint8 {
	return c.regs[RegF]
}

// Flag reports whether the given flag bit is set.
func (c *CPU) Flag(flag uint8) bool {
	return c.regs[RegF]&flag != 0
}

// IME returns the interrupt master enable latch.
func (c *CPU) IME() uint8 {
	return c.ime
}

// State returns the execution state.
func (c *CPU) State() State {
	return c.state
}

// Cycle returns the number of T-cycles executed since the last Reset.
func (c *CPU) Cycle() uint64 {
	return c.cycle
}

// Fault returns the fault that stopped the CPU, or nil.
func (c *CPU) Fault() *OpcodeFault {
	return c.fault
}

// setRegister16 stores a 16-bit value into a register pair. Stores into
// AF force the low nibble of F to zero.
func (c *CPU) setRegister16(r R16, v uint16) {
	c.regs[r] = uint8(v >> 8)
	c.regs[r+1] = uint8(v)
	if r == RegAF {
		c.regs[RegF] &= 0xF0
	}
}

// pc returns the program counter.
func (c *CPU) pc() uint16 {
	return c.Register16(RegPC)
}

// setPC stores the program counter.
func (c *CPU) setPC(v uint16) {
	c.setRegister16(RegPC, v)
}

// fetchU8 reads the byte at PC and advances PC by one.
func (c *CPU) fetchU8() uint8 {
	addr := c.pc()
	c.setPC(addr + 1)
	return c.mmu.Read(addr)
}

// fetchI8 reads the byte at PC as a signed offset and advances PC by
// one.
func (c *CPU) fetchI8() int8 {
	return int8(c.fetchU8())
}

// fetchU16 reads the little-endian word at PC and advances PC by two.
func (c *CPU) fetchU16() uint16 {
	lo := c.fetchU8()
	hi := c.fetchU8()
	return uint16(hi)<<8 | uint16(lo)
}

// hl returns an address handle over the cell HL points at.
func (c *CPU) hl() mmu.Address {
	return c.mmu.Handle(c.Register16(RegHL), mmu.ReadWrite)
}

// opUndefined records the fault and stops the CPU. The undefined opcode
// is the byte the fetch just consumed.
func (c *CPU) opUndefined() {
	addr := c.pc() - 1
	c.fault = &OpcodeFault{PC: addr, Opcode: c.mmu.Read(addr)}
	c.state = StateStopped
}
