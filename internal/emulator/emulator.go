// Package emulator composes the CPU, MMU and PPU into the machine the
// host drives: load a ROM, call Run once per displayed frame, read the
// PPU's pixel buffer and the debug surfaces.
package emulator

import (
	"time"

	"github.com/mapamarco/naive-gbe/internal/cartridge"
	"github.com/mapamarco/naive-gbe/internal/cpu"
	"github.com/mapamarco/naive-gbe/internal/disassembler"
	"github.com/mapamarco/naive-gbe/internal/joypad"
	"github.com/mapamarco/naive-gbe/internal/mmu"
	"github.com/mapamarco/naive-gbe/internal/ppu"
	"github.com/mapamarco/naive-gbe/pkg/log"
)

// State is the lifecycle state of the emulator.
type State uint8

const (
	// StateNoCartridge is the state before a ROM has been installed.
	// Run does nothing in it.
	StateNoCartridge State = iota
	// StateReady means a cartridge is installed and the machine can
	// run.
	StateReady
)

// frameTime caps how much wall-clock a single Run call is allowed to
// catch up on, so a stalled host does not trigger a cycle death-spiral.
const frameTime = time.Second / 60

// Emulator owns the machine.
type Emulator struct {
	mmu    *mmu.MMU
	cpu    *cpu.CPU
	ppu    *ppu.PPU
	joypad *joypad.State

	log     log.Logger
	state   State
	lastRun time.Time
}

// Opt configures an Emulator.
type Opt func(*Emulator)

// WithLogger makes the emulator log through l.
func WithLogger(l log.Logger) Opt {
	return func(e *Emulator) {
		e.log = l
	}
}

// New returns an emulator with no cartridge installed.
func New(opts ...Opt) *Emulator {
	e := &Emulator{log: log.New()}
	for _, opt := range opts {
		opt(e)
	}

	e.mmu = mmu.New(e.log)
	e.ppu = ppu.New(e.mmu)
	e.cpu = cpu.New(e.mmu, e.ppu)
	e.joypad = joypad.New()
	e.joypad.Attach(e.mmu)

	return e
}

// LoadROM loads the ROM file at path and readies the machine.
func (e *Emulator) LoadROM(path string) error {
	cart, err := cartridge.Load(path)
	if err != nil {
		return err
	}
	e.SetCartridge(cart)
	e.log.Infof("emulator: loaded rom %s (%d bytes)", path, cart.Len())
	return nil
}

// SetCartridge installs the cartridge and readies the machine.
func (e *Emulator) SetCartridge(cart *cartridge.Cartridge) {
	e.mmu.InstallCartridge(cart)
	e.Reset()
	e.state = StateReady
}

// SetBootstrap replaces the built-in bootstrap ROM. The machine is reset
// on success; on failure it is left untouched.
func (e *Emulator) SetBootstrap(b []byte) error {
	if err := e.mmu.InstallBootstrap(b); err != nil {
		return err
	}
	e.Reset()
	return nil
}

// Reset zeroes the CPU and reinitialises the MMU memory and the PPU.
func (e *Emulator) Reset() {
	e.mmu.Reset()
	e.cpu.Reset()
	e.ppu.Reset()
	e.joypad.Sync()
	e.lastRun = time.Time{}
}

// Run advances the machine by the wall-clock elapsed since the previous
// call, at the nominal clock rate, then refreshes the PPU pixel buffer.
// The first call performs exactly one step. It returns the number of
// instructions executed.
func (e *Emulator) Run() int {
	if e.state != StateReady {
		return 0
	}

	target := e.cpu.Cycle()
	if e.lastRun.IsZero() {
		target++
	} else {
		elapsed := time.Since(e.lastRun)
		if elapsed > frameTime {
			elapsed = frameTime
		}
		target += uint64(elapsed.Microseconds()) * cpu.ClockSpeed / 1e6
	}

	steps := 0
	for e.cpu.Cycle() < target && e.cpu.State() != cpu.StateStopped {
		e.cpu.Step()
		steps++
	}

	e.ppu.WriteVideoRAM()
	e.lastRun = time.Now()

	if fault := e.cpu.Fault(); fault != nil {
		e.log.Errorf("emulator: %v", fault)
	}

	return steps
}

// Disassembly decodes the instruction at the current PC.
func (e *Emulator) Disassembly() string {
	return disassembler.Decode(e.mmu, e.cpu.Register16(cpu.RegPC))
}

// SetJoypad presses or releases a joypad input.
func (e *Emulator) SetJoypad(input joypad.Input, pressed bool) {
	e.joypad.Set(input, pressed)
}

// State returns the emulator lifecycle state.
func (e *Emulator) State() State {
	return e.state
}

// Fault returns the opcode fault that stopped the CPU, or nil.
func (e *Emulator) Fault() *cpu.OpcodeFault {
	return e.cpu.Fault()
}

// CPU exposes the CPU observation surface.
func (e *Emulator) CPU() *cpu.CPU {
	return e.cpu
}

// MMU exposes the address space.
func (e *Emulator) MMU() *mmu.MMU {
	return e.mmu
}

// PPU exposes the pixel producer.
func (e *Emulator) PPU() *ppu.PPU {
	return e.ppu
}
