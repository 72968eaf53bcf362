package cpu

import "testing"

func TestInstruction_Swap(t *testing.T) {
	c := newTestCPU(t, 0x3E, 0xF0, 0xCB, 0x37)
	run(c, 2)
	if c.Register8(RegA) != 0x0F {
		t.Errorf("Expected A to be 0x0F, got 0x%02X", c.Register8(RegA))
	}
	if c.Flags() != 0x00 {
		t.Errorf("Expected no flags, got 0x%02X", c.Flags())
	}

	// swapping zero sets Z
	c = newTestCPU(t, 0xAF, 0xCB, 0x37)
	run(c, 2)
	if c.Flags() != FlagZero {
		t.Errorf("Expected only Z to be set, got 0x%02X", c.Flags())
	}
}

func TestInstruction_SwapTwiceIsIdentity(t *testing.T) {
	c := newTestCPU(t, 0x3E, 0x3D, 0xCB, 0x37, 0xCB, 0x37)
	run(c, 3)
	if c.Register8(RegA) != 0x3D {
		t.Errorf("Expected A to be restored to 0x3D, got 0x%02X", c.Register8(RegA))
	}
}
