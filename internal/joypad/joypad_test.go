package joypad

import (
	"testing"

	"github.com/mapamarco/naive-gbe/internal/mmu"
	"github.com/mapamarco/naive-gbe/pkg/log"
)

func newTestJoypad() (*State, *mmu.MMU) {
	m := mmu.New(log.NewNullLogger())
	s := New()
	s.Attach(m)
	return s, m
}

func TestJoypad_NothingSelected(t *testing.T) {
	_, m := newTestJoypad()

	if got := m.Read(0xFF00); got != 0xFF {
		t.Errorf("Expected 0xFF with no row selected, got 0x%02X", got)
	}
}

func TestJoypad_Buttons(t *testing.T) {
	s, m := newTestJoypad()

	// select the button row (bit 5 low)
	m.Write(0xFF00, 0x10)

	s.Set(InputA, true)
	if got := m.Read(0xFF00); got != 0xDE {
		t.Errorf("Expected 0xDE with A pressed, got 0x%02X", got)
	}

	s.Set(InputStart, true)
	if got := m.Read(0xFF00); got != 0xD6 {
		t.Errorf("Expected 0xD6 with A and Start pressed, got 0x%02X", got)
	}

	s.Set(InputA, false)
	s.Set(InputStart, false)
	if got := m.Read(0xFF00); got != 0xDF {
		t.Errorf("Expected 0xDF with nothing pressed, got 0x%02X", got)
	}
}

func TestJoypad_Directions(t *testing.T) {
	s, m := newTestJoypad()

	// select the direction row (bit 4 low)
	m.Write(0xFF00, 0x20)

	s.Set(InputRight, true)
	if got := m.Read(0xFF00); got != 0xEE {
		t.Errorf("Expected 0xEE with Right pressed, got 0x%02X", got)
	}

	s.Set(InputDown, true)
	if got := m.Read(0xFF00); got != 0xE6 {
		t.Errorf("Expected 0xE6 with Right and Down pressed, got 0x%02X", got)
	}

	// buttons do not leak into the direction row
	s.Set(InputA, true)
	if got := m.Read(0xFF00); got != 0xE6 {
		t.Errorf("Expected 0xE6 with A pressed on the other row, got 0x%02X", got)
	}
}

func TestJoypad_RowIsolation(t *testing.T) {
	s, m := newTestJoypad()

	s.Set(InputB, true)

	m.Write(0xFF00, 0x20)
	if got := m.Read(0xFF00); got != 0xEF {
		t.Errorf("Expected direction row unaffected by B, got 0x%02X", got)
	}

	m.Write(0xFF00, 0x10)
	if got := m.Read(0xFF00); got != 0xDD {
		t.Errorf("Expected 0xDD with B pressed, got 0x%02X", got)
	}
}
