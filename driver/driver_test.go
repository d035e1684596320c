package driver_test

import (
	"io"
	"sync"
	"testing"

	"github.com/routegraph/steinergrid/driver"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSink struct {
	mu      sync.Mutex
	samples []driver.Sample
}

func (s *memSink) Emit(sample driver.Sample) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.samples = append(s.samples, sample)

	return nil
}

func silentLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func TestRunEmitsSamplesForEveryPointCount(t *testing.T) {
	sink := &memSink{}
	params := driver.Params{
		Size:                4,
		Depth:               1,
		MaxPoints:           3,
		DesiredCombinations: 5,
		WorkerCount:         2,
		Sink:                sink,
		Log:                 silentLogger(),
	}

	require.NoError(t, driver.Run(params))

	sink.mu.Lock()
	defer sink.mu.Unlock()
	require.NotEmpty(t, sink.samples)

	seenK := map[int]bool{}
	for _, s := range sink.samples {
		seenK[s.K] = true
		assert.Equal(t, []int{params.Depth, params.Size, params.Size}, s.SourceShape)
		assert.Equal(t, []int{params.Depth, params.Size, params.Size}, s.TargetShape)
		assert.Equal(t, []int{params.MaxPoints, 3}, s.NodesShape)
		assert.Len(t, s.Source, params.Size*params.Size*params.Depth)
		assert.Len(t, s.Nodes, params.MaxPoints*3)
		assert.GreaterOrEqual(t, s.Counter, uint64(1))
	}
	assert.True(t, seenK[2])
	assert.True(t, seenK[3])
}

func TestRunHonorsAbortFunc(t *testing.T) {
	sink := &memSink{}
	aborted := false
	params := driver.Params{
		Size:                4,
		Depth:               1,
		MaxPoints:           4,
		DesiredCombinations: 100,
		WorkerCount:         1,
		Sink:                sink,
		Log:                 silentLogger(),
		AbortFunc: func() bool {
			aborted = true
			return true
		},
	}

	require.NoError(t, driver.Run(params))
	assert.True(t, aborted)
}

func TestRunClampsInvalidParams(t *testing.T) {
	sink := &memSink{}
	params := driver.Params{
		Size:                0,
		Depth:               -5,
		MaxPoints:           2,
		DesiredCombinations: 0,
		WorkerCount:         0,
		Sink:                sink,
		Log:                 silentLogger(),
	}

	require.NoError(t, driver.Run(params))
}
