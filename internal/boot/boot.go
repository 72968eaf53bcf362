// Package boot provides the 256 byte DMG bootstrap ROM. When the Game Boy
// first powers on, the bootstrap is mapped to memory addresses 0x0000 -
// 0x00FF, where it initialises the hardware, sets up the stack and scrolls
// the Nintendo logo. Its final instructions write 0x01 to the BDIS register
// (0xFF50), which unmaps it from the address space for good and hands
// control to the cartridge at 0x0100.
package boot

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
)

// Size is the length of a DMG bootstrap image in bytes.
const Size = 256

// ErrBootstrapSize is returned when a host supplied bootstrap image is not
// exactly Size bytes long.
var ErrBootstrapSize = errors.New("boot: bootstrap image must be exactly 256 bytes")

// ROM represents a bootstrap ROM image.
type ROM struct {
	raw      [Size]byte
	checksum string // MD5 of the image
}

// NewROM validates and wraps a bootstrap image. The image must be exactly
// Size bytes long.
func NewROM(b []byte) (*ROM, error) {
	if len(b) != Size {
		return nil, fmt.Errorf("%w: got %d", ErrBootstrapSize, len(b))
	}

	r := &ROM{}
	copy(r.raw[:], b)

	sum := md5.Sum(b)
	r.checksum = hex.EncodeToString(sum[:])

	return r, nil
}

// Default returns the built-in DMG bootstrap.
func Default() *ROM {
	r, _ := NewROM(DMGBootROM[:])
	return r
}

// Read returns the byte at the given address.
func (r *ROM) Read(addr uint16) byte {
	return r.raw[addr]
}

// Checksum returns the MD5 checksum of the image.
func (r *ROM) Checksum() string {
	if r == nil {
		return ""
	}
	return r.checksum
}

// DMGBootROM is the public DMG bootstrap image. The final bytes
// (0x3e 0x01 0xe0 0x50) disable the overlay by writing 1 to 0xFF50.
var DMGBootROM = [Size]byte{
	0x31, 0xfe, 0xff, 0xaf, 0x21, 0xff, 0x9f, 0x32,
	0xcb, 0x7c, 0x20, 0xfb, 0x21, 0x26, 0xff, 0x0e,
	0x11, 0x3e, 0x80, 0x32, 0xe2, 0x0c, 0x3e, 0xf3,
	0xe2, 0x32, 0x3e, 0x77, 0x77, 0x3e, 0xfc, 0xe0,
	0x47, 0x11, 0x04, 0x01, 0x21, 0x10, 0x80, 0x1a,
	0xcd, 0x95, 0x00, 0xcd, 0x96, 0x00, 0x13, 0x7b,
	0xfe, 0x34, 0x20, 0xf3, 0x11, 0xd8, 0x00, 0x06,
	0x08, 0x1a, 0x13, 0x22, 0x23, 0x05, 0x20, 0xf9,
	0x3e, 0x19, 0xea, 0x10, 0x99, 0x21, 0x2f, 0x99,
	0x0e, 0x0c, 0x3d, 0x28, 0x08, 0x32, 0x0d, 0x20,
	0xf9, 0x2e, 0x0f, 0x18, 0xf3, 0x67, 0x3e, 0x64,
	0x57, 0xe0, 0x42, 0x3e, 0x91, 0xe0, 0x40, 0x04,
	0x1e, 0x02, 0x0e, 0x0c, 0xf0, 0x44, 0xfe, 0x90,
	0x20, 0xfa, 0x0d, 0x20, 0xf7, 0x1d, 0x20, 0xf2,
	0x0e, 0x13, 0x24, 0x7c, 0x1e, 0x83, 0xfe, 0x62,
	0x28, 0x06, 0x1e, 0xc1, 0xfe, 0x64, 0x20, 0x06,
	0x7b, 0xe2, 0x0c, 0x3e, 0x87, 0xe2, 0xf0, 0x42,
	0x90, 0xe0, 0x42, 0x15, 0x20, 0xd2, 0x05, 0x20,
	0x4f, 0x16, 0x20, 0x18, 0xcb, 0x4f, 0x06, 0x04,
	0xc5, 0xcb, 0x11, 0x17, 0xc1, 0xcb, 0x11, 0x17,
	0x05, 0x20, 0xf5, 0x22, 0x23, 0x22, 0x23, 0xc9,
	0xce, 0xed, 0x66, 0x66, 0xcc, 0x0d, 0x00, 0x0b,
	0x03, 0x73, 0x00, 0x83, 0x00, 0x0c, 0x00, 0x0d,
	0x00, 0x08, 0x11, 0x1f, 0x88, 0x89, 0x00, 0x0e,
	0xdc, 0xcc, 0x6e, 0xe6, 0xdd, 0xdd, 0xd9, 0x99,
	0xbb, 0xbb, 0x67, 0x63, 0x6e, 0x0e, 0xec, 0xcc,
	0xdd, 0xdc, 0x99, 0x9f, 0xbb, 0xb9, 0x33, 0x3e,
	0x3c, 0x42, 0xb9, 0xa5, 0xb9, 0xa5, 0x42, 0x3c,
	0x21, 0x04, 0x01, 0x11, 0xa8, 0x00, 0x1a, 0x13,
	0xbe, 0x20, 0xfe, 0x23, 0x7d, 0xfe, 0x34, 0x20,
	0xf5, 0x06, 0x19, 0x78, 0x86, 0x23, 0x05, 0x20,
	0xfb, 0x86, 0x20, 0xfe, 0x3e, 0x01, 0xe0, 0x50,
}
