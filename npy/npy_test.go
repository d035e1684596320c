package npy_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/routegraph/steinergrid/npy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteU8RoundTripsShapeAndData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.npy")
	data := []byte{1, 2, 3, 4, 5, 6}
	require.NoError(t, npy.WriteU8(path, data, []int{2, 3}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(raw), "\x93NUMPY"))
	assert.Equal(t, byte(1), raw[6])
	assert.Equal(t, byte(0), raw[7])

	headerLen := int(raw[8]) | int(raw[9])<<8
	payload := raw[10+headerLen:]
	assert.Equal(t, data, payload)
}

func TestWriteU8HeaderIsSixteenByteAligned(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aligned.npy")
	require.NoError(t, npy.WriteU8(path, make([]byte, 24), []int{4, 2, 3}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	headerLen := int(raw[8]) | int(raw[9])<<8
	assert.Equal(t, 0, (10+headerLen)%16)
	assert.Equal(t, byte('\n'), raw[10+headerLen-1])
}

func TestWriteU8HeaderDeclaresShapeAndDtype(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shape.npy")
	require.NoError(t, npy.WriteU8(path, make([]byte, 6), []int{1, 2, 3}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	headerLen := int(raw[8]) | int(raw[9])<<8
	header := string(raw[10 : 10+headerLen])

	assert.Contains(t, header, "'descr': '<u1'")
	assert.Contains(t, header, "'fortran_order': False")
	assert.Contains(t, header, "'shape': (1, 2, 3)")
}

func TestWriteU8RejectsShapeMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.npy")
	err := npy.WriteU8(path, make([]byte, 5), []int{2, 3})
	assert.Error(t, err)
}
