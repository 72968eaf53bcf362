// Package mmu provides the memory management unit: the 64 KiB address
// space the CPU executes against. The lower 32 KiB window onto the
// cartridge image is read only, the first 256 bytes are overlaid by the
// bootstrap ROM until the bootstrap-disable latch at 0xFF50 is written,
// and stores into hooked addresses are forwarded to the registered
// collaborator after the byte has been written.
package mmu

import (
	"github.com/mapamarco/naive-gbe/internal/boot"
	"github.com/mapamarco/naive-gbe/internal/cartridge"
	"github.com/mapamarco/naive-gbe/pkg/log"
)

const (
	// BDIS is the bootstrap-disable latch. Writing a non-zero value
	// unmaps the bootstrap overlay permanently.
	BDIS uint16 = 0xFF50
	// LY is the scanline counter the PPU maintains.
	LY uint16 = 0xFF44
	// LCDC is the LCD control register.
	LCDC uint16 = 0xFF40
	// P1 is the joypad select/state register.
	P1 uint16 = 0xFF00

	// romEnd is the first address past the cartridge window.
	romEnd = 0x8000
)

// WriteHook is invoked after a store to a hooked address, with the value
// that was stored.
type WriteHook func(value uint8)

// MMU is the 64 KiB address space.
type MMU struct {
	memory    [0x10000]uint8
	bootstrap *boot.ROM
	bootDone  bool

	cart *cartridge.Cartridge

	hooks map[uint16]WriteHook

	log log.Logger
}

// New returns an MMU with the built-in bootstrap installed and the
// bootstrap-disable latch hooked.
func New(l log.Logger) *MMU {
	if l == nil {
		l = log.NewNullLogger()
	}
	m := &MMU{
		bootstrap: boot.Default(),
		hooks:     make(map[uint16]WriteHook),
		log:       l,
	}
	m.RegisterHook(BDIS, func(v uint8) {
		if v != 0 && !m.bootDone {
			m.bootDone = true
			m.log.Debugf("mmu: bootstrap overlay disabled")
		}
	})
	return m
}

// Reset reinitialises the RAM contents and re-enables the bootstrap
// overlay. The installed cartridge and registered hooks are kept.
func (m *MMU) Reset() {
	m.memory = [0x10000]uint8{}
	m.bootDone = false
}

// InstallCartridge takes ownership of the cartridge. Its bytes become
// readable at 0x0000-0x7FFF (bank 0 fixed, no MBC), with the first 256
// bytes shadowed by the bootstrap until the overlay is disabled.
func (m *MMU) InstallCartridge(c *cartridge.Cartridge) {
	m.cart = c
}

// InstallBootstrap replaces the built-in bootstrap ROM.
func (m *MMU) InstallBootstrap(b []byte) error {
	r, err := boot.NewROM(b)
	if err != nil {
		return err
	}
	m.bootstrap = r
	return nil
}

// BootstrapEnabled reports whether the bootstrap overlay is still mapped.
func (m *MMU) BootstrapEnabled() bool {
	return !m.bootDone
}

// Cartridge returns the installed cartridge, or nil.
func (m *MMU) Cartridge() *cartridge.Cartridge {
	return m.cart
}

// RegisterHook registers fn to be invoked after stores to addr. Any
// previously registered hook for addr is replaced.
func (m *MMU) RegisterHook(addr uint16, fn WriteHook) {
	m.hooks[addr] = fn
}

// Read returns the byte at the given address. Reading has no side
// effects.
func (m *MMU) Read(addr uint16) uint8 {
	if addr < boot.Size && !m.bootDone {
		return m.bootstrap.Read(addr)
	}
	if addr < romEnd {
		if m.cart == nil || int(addr) >= m.cart.Len() {
			return 0
		}
		return m.cart.Bytes()[addr]
	}
	return m.memory[addr]
}

// Write stores v at the given address, then invokes the hook registered
// for it, if any. Stores into the cartridge window are dropped.
func (m *MMU) Write(addr uint16, v uint8) {
	if addr < romEnd {
		m.log.Debugf("mmu: dropped write of %02x to rom address %04x", v, addr)
		return
	}
	m.memory[addr] = v
	if hook, ok := m.hooks[addr]; ok {
		hook(v)
	}
}

// Handle returns an address handle for read-modify-write instructions,
// avoiding a second decode through the hook table for the common
// (HL)-target operations.
func (m *MMU) Handle(addr uint16, mode AccessMode) Address {
	return Address{mmu: m, addr: addr, mode: mode}
}

// Poke stores v at addr without write-protection or hook dispatch. It is
// how collaborators that own a region (the PPU's LY, the joypad's P1
// read-back) publish state into the address space.
func (m *MMU) Poke(addr uint16, v uint8) {
	m.memory[addr] = v
}
