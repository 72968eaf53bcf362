// Package ppu provides the pixel producing collaborator of the CPU. It
// consumes the MMU-resident VRAM, LCDC and palette registers and renders
// the background into a shade buffer the host can display.
//
// The PPU is not cycle stepped: it models a machine permanently parked at
// the start of VBlank (LY=0x90), which is the window in which the whole
// of VRAM is accessible and the bootstrap's frame-wait loops make
// progress.
package ppu

import (
	"github.com/mapamarco/naive-gbe/internal/mmu"
	"github.com/mapamarco/naive-gbe/pkg/bits"
)

const (
	// ScreenWidth is the width of the screen in pixels.
	ScreenWidth = 160
	// ScreenHeight is the height of the screen in pixels.
	ScreenHeight = 144

	// vBlankLine is the scanline at which VBlank begins.
	vBlankLine = 0x90
)

// PPU renders the background tile map into a pixel buffer of 2-bit
// shades.
type PPU struct {
	mmu  *mmu.MMU
	lcdc uint8

	vram [ScreenWidth * ScreenHeight]uint8
}

// New returns a PPU attached to the given MMU. The PPU registers a write
// hook for the LCDC register to track the LCD control state.
func New(m *mmu.MMU) *PPU {
	p := &PPU{mmu: m}
	m.RegisterHook(mmu.LCDC, func(v uint8) {
		p.lcdc = v
	})
	p.Reset()
	return p
}

// Reset clears the pixel buffer and parks the scanline counter at the
// start of VBlank.
func (p *PPU) Reset() {
	p.lcdc = 0
	p.vram = [ScreenWidth * ScreenHeight]uint8{}
	p.mmu.Poke(mmu.LY, vBlankLine)
}

// ScreenSize returns the screen dimensions in pixels.
func (p *PPU) ScreenSize() (width, height int) {
	return ScreenWidth, ScreenHeight
}

// VideoRAM exposes the pixel buffer: one byte per pixel in row-major
// order, each holding a shade index 0-3. The buffer is only mutated
// during WriteVideoRAM.
func (p *PPU) VideoRAM() []uint8 {
	return p.vram[:]
}

// WriteVideoRAM renders the visible background into the pixel buffer.
// The caller guarantees the CPU is not stepping while the scan runs.
func (p *PPU) WriteVideoRAM() {
	if !bits.Test(p.lcdc, 7) || !bits.Test(p.lcdc, 0) {
		// LCD or background disabled
		p.vram = [ScreenWidth * ScreenHeight]uint8{}
		return
	}

	scy := p.mmu.Read(0xFF42)
	scx := p.mmu.Read(0xFF43)
	bgp := p.mmu.Read(0xFF47)

	tileMap := uint16(0x9800)
	if bits.Test(p.lcdc, 3) {
		tileMap = 0x9C00
	}

	for y := 0; y < ScreenHeight; y++ {
		bgY := uint8(y) + scy
		for x := 0; x < ScreenWidth; x++ {
			bgX := uint8(x) + scx

			tile := p.mmu.Read(tileMap + uint16(bgY/8)*32 + uint16(bgX/8))
			row := p.tileRowAddr(tile) + uint16(bgY%8)*2

			lo := bits.Val(p.mmu.Read(row), 7-bgX%8)
			hi := bits.Val(p.mmu.Read(row+1), 7-bgX%8)
			colour := hi<<1 | lo

			p.vram[y*ScreenWidth+x] = bgp >> (colour * 2) & 0x03
		}
	}
}

// tileRowAddr resolves a tile index to the address of its first row,
// honouring the LCDC tile data addressing mode.
func (p *PPU) tileRowAddr(tile uint8) uint16 {
	if bits.Test(p.lcdc, 4) {
		return 0x8000 + uint16(tile)*16
	}
	return uint16(0x9000 + int(int8(tile))*16)
}
