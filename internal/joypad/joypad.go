// Package joypad emulates the Game Boy button matrix behind the P1
// register. The register holds two select bits (4 and 5, active low)
// choosing between the direction and button rows; reads return the
// selected row's pressed state in the low nibble, active low.
package joypad

import (
	"github.com/mapamarco/naive-gbe/internal/mmu"
	"github.com/mapamarco/naive-gbe/pkg/bits"
)

// Input identifies a physical button.
type Input uint8

const (
	// InputUp is the up direction.
	InputUp Input = iota
	// InputDown is the down direction.
	InputDown
	// InputLeft is the left direction.
	InputLeft
	// InputRight is the right direction.
	InputRight
	// InputA is the A button.
	InputA
	// InputB is the B button.
	InputB
	// InputSelect is the Select button.
	InputSelect
	// InputStart is the Start button.
	InputStart
)

// row/bit position of each input in the matrix.
var matrix = map[Input]struct {
	directions bool
	bit        uint8
}{
	InputRight:  {true, 0},
	InputLeft:   {true, 1},
	InputUp:     {true, 2},
	InputDown:   {true, 3},
	InputA:      {false, 0},
	InputB:      {false, 1},
	InputSelect: {false, 2},
	InputStart:  {false, 3},
}

// State is the joypad state.
type State struct {
	directions uint8 // pressed directions, 1 = pressed
	buttons    uint8 // pressed buttons, 1 = pressed
	selection  uint8 // last written select bits (4 and 5)

	mmu *mmu.MMU
}

// New returns a joypad with nothing pressed and neither row selected.
func New() *State {
	return &State{selection: 0x30}
}

// Attach hooks the joypad into the MMU's P1 register and publishes the
// initial read-back value.
func (s *State) Attach(m *mmu.MMU) {
	s.mmu = m
	m.RegisterHook(mmu.P1, func(v uint8) {
		s.selection = v & 0x30
		s.refresh()
	})
	s.refresh()
}

// Set presses or releases the given input.
func (s *State) Set(input Input, pressed bool) {
	pos := matrix[input]
	row := &s.buttons
	if pos.directions {
		row = &s.directions
	}
	if pressed {
		*row = bits.Set(*row, pos.bit)
	} else {
		*row = bits.Reset(*row, pos.bit)
	}
	s.refresh()
}

// Sync republishes the read-back value into the address space, for use
// after the memory contents have been reinitialised.
func (s *State) Sync() {
	s.refresh()
}

// Value returns the current P1 read-back byte: select bits as written,
// selected rows' pressed state active low, unused bits high.
func (s *State) Value() uint8 {
	v := 0xC0 | s.selection | 0x0F
	if !bits.Test(s.selection, 4) {
		v &= 0xF0 | ^s.directions&0x0F
	}
	if !bits.Test(s.selection, 5) {
		v &= 0xF0 | ^s.buttons&0x0F
	}
	return v
}

// refresh publishes the read-back value into the address space so P1
// reads stay passive.
func (s *State) refresh() {
	if s.mmu != nil {
		s.mmu.Poke(mmu.P1, s.Value())
	}
}
