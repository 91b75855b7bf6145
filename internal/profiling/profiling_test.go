package profiling

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:paralleltest
func TestCPUProfiler(t *testing.T) {
	// Only one CPU profile can be active per process, so no t.Parallel().
	path := filepath.Join(t.TempDir(), "cpu.pprof")

	cprof := NewCPUProfiler(t.Context(), path)

	sum := 0
	for i := range 1_000_000 {
		sum += i
	}
	assert.Positive(t, sum)

	cprof.Stop()

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestCPUProfiler_Disabled(t *testing.T) {
	t.Parallel()

	cprof := NewCPUProfiler(t.Context(), "")
	cprof.Stop()
}

func TestAllocProfiler(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "allocs.pprof")

	aprof := NewAllocProfiler(t.Context(), path)
	_, err := os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist, "the profile is only written on stop")

	aprof.Stop()

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestAllocProfiler_Fail_Create(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "allocs.pprof")

	aprof := NewAllocProfiler(t.Context(), path)
	aprof.Stop()

	assert.NoFileExists(t, path)
}

func TestMemoryObserver(t *testing.T) {
	t.Parallel()

	obs := NewMemoryObserver(t.Context())
	assert.Positive(t, obs.MaxAlloc())

	before := obs.MaxAlloc()
	obs.Stop()
	obs.Stop()

	assert.GreaterOrEqual(t, obs.MaxAlloc(), before)
}

func TestMemoryObserver_ContextDone(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())

	obs := NewMemoryObserver(ctx)
	cancel()

	obs.Stop()
	assert.Positive(t, obs.MaxAlloc())
}
