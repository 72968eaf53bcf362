package cartridge

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	rom := make([]byte, 0x150)
	rom[0x0000] = 0x10
	rom[0x014F] = 0x99

	path := filepath.Join(dir, "test.gb")
	require.NoError(t, os.WriteFile(path, rom, 0o644))

	cart, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0x150, cart.Len())
	assert.Equal(t, rom, cart.Bytes())
}

func TestLoad_Gzip(t *testing.T) {
	dir := t.TempDir()

	rom := []byte{0x00, 0x10, 0x20, 0x30}
	path := filepath.Join(dir, "test.gb.gz")

	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write(rom)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	cart, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, rom, cart.Bytes())
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.gb"))
	assert.ErrorIs(t, err, ErrRomNotFound)
}

func TestNew(t *testing.T) {
	cart := New([]byte{0x01, 0x02})
	assert.Equal(t, 2, cart.Len())
	assert.Equal(t, []byte{0x01, 0x02}, cart.Bytes())
}
