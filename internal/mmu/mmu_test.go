package mmu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mapamarco/naive-gbe/internal/boot"
	"github.com/mapamarco/naive-gbe/internal/cartridge"
	"github.com/mapamarco/naive-gbe/pkg/log"
)

func newTestMMU() *MMU {
	return New(log.NewNullLogger())
}

func TestMMU_BootstrapOverlay(t *testing.T) {
	m := newTestMMU()

	rom := make([]byte, 0x8000)
	rom[0x0000] = 0xAA
	rom[0x0100] = 0xBB
	m.InstallCartridge(cartridge.New(rom))

	// while the overlay is active the low page reads the bootstrap
	assert.Equal(t, boot.DMGBootROM[0], m.Read(0x0000))
	assert.Equal(t, boot.DMGBootROM[0xFF], m.Read(0x00FF))
	// addresses past the overlay always read the cartridge
	assert.Equal(t, uint8(0xBB), m.Read(0x0100))
	assert.True(t, m.BootstrapEnabled())

	// writing the latch unmaps the overlay
	m.Write(BDIS, 1)
	assert.False(t, m.BootstrapEnabled())
	assert.Equal(t, uint8(0xAA), m.Read(0x0000))

	// the latch is permanent
	m.Write(BDIS, 0)
	assert.False(t, m.BootstrapEnabled())
	assert.Equal(t, uint8(0xAA), m.Read(0x0000))
}

func TestMMU_WorkRAM(t *testing.T) {
	m := newTestMMU()

	for _, addr := range []uint16{0xC000, 0xCDEF, 0xDFFF, 0x8000, 0xFF80, 0xFFFF} {
		m.Write(addr, 0x42)
		assert.Equal(t, uint8(0x42), m.Read(addr), "store-then-read at %04x", addr)
		// reads are stable
		assert.Equal(t, m.Read(addr), m.Read(addr))
	}
}

func TestMMU_CartridgeWindowReadOnly(t *testing.T) {
	m := newTestMMU()

	rom := make([]byte, 0x8000)
	rom[0x4000] = 0x5A
	m.InstallCartridge(cartridge.New(rom))

	m.Write(0x4000, 0xFF)
	assert.Equal(t, uint8(0x5A), m.Read(0x4000))
}

func TestMMU_ShortCartridge(t *testing.T) {
	m := newTestMMU()
	m.InstallCartridge(cartridge.New([]byte{0x10}))
	m.Write(BDIS, 1)

	assert.Equal(t, uint8(0x10), m.Read(0x0000))
	// past the image the window reads zero
	assert.Equal(t, uint8(0x00), m.Read(0x0001))
	assert.Equal(t, uint8(0x00), m.Read(0x7FFF))
}

func TestMMU_WriteHooks(t *testing.T) {
	m := newTestMMU()

	var got []uint8
	m.RegisterHook(0xFF42, func(v uint8) {
		got = append(got, v)
	})

	m.Write(0xFF42, 0x64)
	m.Write(0xFF42, 0x63)

	// the hook runs after the store
	assert.Equal(t, []uint8{0x64, 0x63}, got)
	assert.Equal(t, uint8(0x63), m.Read(0xFF42))

	// unhooked addresses store silently
	m.Write(0xFF43, 0x01)
	assert.Len(t, got, 2)
}

func TestMMU_Handle(t *testing.T) {
	m := newTestMMU()

	fired := 0
	m.RegisterHook(0xFF42, func(v uint8) { fired++ })

	h := m.Handle(0xFF42, ReadWrite)
	h.Set(0x12)
	assert.Equal(t, uint8(0x12), h.Get())
	assert.Equal(t, 1, fired, "the hook fires exactly once per store")

	// read-only handles drop stores
	ro := m.Handle(0xFF42, ReadOnly)
	ro.Set(0x99)
	assert.Equal(t, uint8(0x12), m.Read(0xFF42))
	assert.Equal(t, 1, fired)
}

func TestMMU_InstallBootstrap(t *testing.T) {
	m := newTestMMU()

	assert.ErrorIs(t, m.InstallBootstrap(make([]byte, 255)), boot.ErrBootstrapSize)

	custom := make([]byte, boot.Size)
	custom[0] = 0xC3
	assert.NoError(t, m.InstallBootstrap(custom))
	assert.Equal(t, uint8(0xC3), m.Read(0x0000))
}

func TestMMU_Reset(t *testing.T) {
	m := newTestMMU()
	m.InstallCartridge(cartridge.New(make([]byte, 0x8000)))

	m.Write(0xC000, 0x77)
	m.Write(BDIS, 1)
	assert.False(t, m.BootstrapEnabled())

	m.Reset()
	assert.Equal(t, uint8(0x00), m.Read(0xC000))
	assert.True(t, m.BootstrapEnabled(), "reset re-arms the bootstrap overlay")
	assert.NotNil(t, m.Cartridge(), "reset keeps the cartridge")
}
