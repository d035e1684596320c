// Package npy writes dense byte arrays to disk in the NumPy .npy
// binary container format (unsigned 8-bit element type, C order):
// magic, version, little-endian header-length field, ASCII header,
// space padding, newline, raw bytes. The header padding follows the
// standard NumPy rule: the total preamble length, including the
// terminating newline, is a multiple of 16 bytes.
package npy

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	magic       = "\x93NUMPY"
	majorVer    = 1
	minorVer    = 0
	preambleLen = len(magic) + 2 + 2 // magic + version + header-length field
	alignment   = 16
)

// WriteU8 writes data (len(data) must equal the product of shape) to
// path as a u1-dtype, Fortran-order-false .npy file whose shape tuple
// is exactly shape, in the given order.
func WriteU8(path string, data []byte, shape []int) error {
	want := 1
	for _, s := range shape {
		want *= s
	}
	if len(data) != want {
		return fmt.Errorf("npy: data length %d does not match shape %v (want %d)", len(data), shape, want)
	}

	header := buildHeader(shape)

	buf := bytes.NewBuffer(make([]byte, 0, preambleLen+len(header)+len(data)))
	buf.WriteString(magic)
	buf.WriteByte(majorVer)
	buf.WriteByte(minorVer)

	var lenField [2]byte
	binary.LittleEndian.PutUint16(lenField[:], uint16(len(header)))
	buf.Write(lenField[:])
	buf.WriteString(header)
	buf.Write(data)

	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// buildHeader returns the ASCII dictionary header, padded with spaces
// and terminated with a newline so that preambleLen+len(header) is a
// multiple of alignment.
func buildHeader(shape []int) string {
	dims := make([]string, len(shape))
	for i, s := range shape {
		dims[i] = strconv.Itoa(s)
	}
	shapeTuple := strings.Join(dims, ", ")
	if len(shape) == 1 {
		shapeTuple += ","
	}

	dict := fmt.Sprintf("{'descr': '<u1', 'fortran_order': False, 'shape': (%s), }", shapeTuple)

	unpadded := preambleLen + len(dict) + 1 // +1 for the terminating newline
	padding := (alignment - unpadded%alignment) % alignment

	var sb strings.Builder
	sb.WriteString(dict)
	sb.WriteString(strings.Repeat(" ", padding))
	sb.WriteByte('\n')

	return sb.String()
}
