// Package cartridge holds the ROM image the emulator executes. The core
// performs no MBC banking: cartridge bytes map 1:1 into the lower half of
// the address space.
package cartridge

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mapamarco/naive-gbe/pkg/utils"
)

var (
	// ErrRomNotFound is returned when the ROM file does not exist.
	ErrRomNotFound = errors.New("cartridge: rom not found")
	// ErrRomUnreadable is returned when the ROM file exists but cannot
	// be opened.
	ErrRomUnreadable = errors.New("cartridge: rom unreadable")
	// ErrRomIO is returned when reading the ROM file fails.
	ErrRomIO = errors.New("cartridge: rom i/o error")
)

// Cartridge is an immutable ROM image.
type Cartridge struct {
	data []byte
}

// New returns a Cartridge over the given bytes.
func New(data []byte) *Cartridge {
	return &Cartridge{data: data}
}

// Load reads the file at path fully into a new Cartridge, decompressing
// archives on the way. Failures are reported as one of ErrRomNotFound,
// ErrRomUnreadable or ErrRomIO.
func Load(path string) (*Cartridge, error) {
	data, err := utils.LoadFile(path)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%w: %s", ErrRomNotFound, path)
		case errors.Is(err, fs.ErrPermission), errors.Is(err, os.ErrInvalid):
			return nil, fmt.Errorf("%w: %s", ErrRomUnreadable, path)
		default:
			return nil, fmt.Errorf("%w: %v", ErrRomIO, err)
		}
	}
	return New(data), nil
}

// Bytes exposes the ROM image. Callers must not modify it.
func (c *Cartridge) Bytes() []byte {
	return c.data
}

// Len returns the length of the ROM image in bytes.
func (c *Cartridge) Len() int {
	return len(c.data)
}
