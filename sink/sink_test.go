package sink_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/routegraph/steinergrid/driver"
	"github.com/routegraph/steinergrid/sink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWipesAndRecreatesSubdirectories(t *testing.T) {
	root := t.TempDir()
	stale := filepath.Join(root, "Source", "stale.npy")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0o755))
	require.NoError(t, os.WriteFile(stale, []byte("x"), 0o644))

	_, err := sink.New(root, 4)
	require.NoError(t, err)

	_, statErr := os.Stat(stale)
	assert.True(t, os.IsNotExist(statErr))

	for _, sub := range []string{"Source", "Target", "Nodes"} {
		info, err := os.Stat(filepath.Join(root, sub))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestEmitWritesThreeNamedFiles(t *testing.T) {
	root := t.TempDir()
	fs, err := sink.New(root, 2)
	require.NoError(t, err)

	sample := driver.Sample{
		K:           2,
		Counter:     3,
		SourceShape: []int{1, 5, 5},
		Source:      make([]byte, 25),
		TargetShape: []int{1, 5, 5},
		Target:      make([]byte, 25),
		NodesShape:  []int{2, 3},
		Nodes:       make([]byte, 6),
	}
	require.NoError(t, fs.Emit(sample))

	want := "s5_d1_p2_n3.npy"
	for _, sub := range []string{"Source", "Target", "Nodes"} {
		_, err := os.Stat(filepath.Join(root, sub, want))
		assert.NoError(t, err)
	}
}
