// Package sink adapts driver.Sample values to NPY files on disk,
// managing the output directory layout and file-naming convention. It
// is the Driver's only concrete Sink implementation; the interface
// itself lives in package driver so the core pipeline never imports
// this adapter.
package sink

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/routegraph/steinergrid/driver"
	"github.com/routegraph/steinergrid/npy"
)

// FileSink writes each Sample's source, target, and node arrays under
// Output/{Source,Target,Nodes}, pre-wiped and recreated at
// construction time.
type FileSink struct {
	root      string
	maxPoints int
}

// New prepares the Source/Target/Nodes subdirectories of root,
// deleting any pre-existing content so each run starts from an empty
// output tree.
func New(root string, maxPoints int) (*FileSink, error) {
	for _, sub := range []string{"Source", "Target", "Nodes"} {
		dir := filepath.Join(root, sub)
		if err := os.RemoveAll(dir); err != nil {
			return nil, fmt.Errorf("sink: clear %s: %w", dir, err)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sink: create %s: %w", dir, err)
		}
	}

	return &FileSink{root: root, maxPoints: maxPoints}, nil
}

// Emit implements driver.Sink, writing one sample's three arrays using
// the "s{W}_d{D}_p{k}_n{counter}.npy" naming scheme.
func (f *FileSink) Emit(sample driver.Sample) error {
	w, d := sample.SourceShape[2], sample.SourceShape[0]
	name := fmt.Sprintf("s%d_d%d_p%d_n%d.npy", w, d, sample.K, sample.Counter)

	if err := npy.WriteU8(filepath.Join(f.root, "Source", name), sample.Source, sample.SourceShape); err != nil {
		return fmt.Errorf("sink: write source: %w", err)
	}
	if err := npy.WriteU8(filepath.Join(f.root, "Target", name), sample.Target, sample.TargetShape); err != nil {
		return fmt.Errorf("sink: write target: %w", err)
	}
	if err := npy.WriteU8(filepath.Join(f.root, "Nodes", name), sample.Nodes, sample.NodesShape); err != nil {
		return fmt.Errorf("sink: write nodes: %w", err)
	}

	return nil
}
