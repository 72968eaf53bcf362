package utils

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile_Plain(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rom.gb")
	want := []byte{0x01, 0x02, 0x03}
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestLoadFile_Gzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rom.gz")
	want := []byte{0xAA, 0xBB, 0xCC}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	zw.Write(want)
	zw.Close()
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.gb")); err == nil {
		t.Errorf("Expected an error for a missing file")
	}
}

func TestIsSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f")
	os.WriteFile(path, make([]byte, 256), 0o644)

	if !IsSize(path, 256) {
		t.Errorf("Expected IsSize to report 256 bytes")
	}
	if IsSize(path, 2304) {
		t.Errorf("Expected IsSize to reject the wrong size")
	}
}
