package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/sevenzip"
)

// IsSize reports whether the file at filename is exactly size bytes long.
func IsSize(filename string, size int64) bool {
	fi, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return fi.Size() == size
}

// LoadFile loads the given file and performs decompression if necessary.
// Plain ROM images (.gb, .gbc) and boot images (.bin) are returned as is;
// .gz, .zip and .7z archives are unpacked and the first contained file is
// returned.
func LoadFile(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	var decoder io.Reader
	switch filepath.Ext(filename) {
	case ".gz":
		decoder, err = gzip.NewReader(bytes.NewReader(data))
	case ".zip":
		var zr *zip.Reader
		zr, err = zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		decoder, err = zr.File[0].Open()
	case ".7z":
		var sr *sevenzip.Reader
		sr, err = sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		decoder, err = sr.File[0].Open()
	default:
		// not an archive
		return data, nil
	}
	if err != nil {
		return nil, err
	}

	return io.ReadAll(decoder)
}
