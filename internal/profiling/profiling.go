// Package profiling implements the optional runtime diagnostics of the
// programs: CPU and allocation profiles and a peak memory observer.
package profiling

import (
	"context"
	"log/slog"
	"os"
	"runtime/pprof"
)

// CPUProfiler records a CPU profile into a file until it is stopped.
//
//nolint:containedctx
type CPUProfiler struct {
	ctx      context.Context
	cancel   context.CancelFunc
	doneChan chan struct{}
}

// NewCPUProfiler returns a pointer to a new [CPUProfiler], profiling into
// path. An empty path disables the profiler. [CPUProfiler.Stop] needs to be
// called to finish the profile.
func NewCPUProfiler(ctx context.Context, path string) *CPUProfiler {
	cprof := &CPUProfiler{}
	cprof.ctx, cprof.cancel = context.WithCancel(ctx)
	cprof.doneChan = make(chan struct{})

	started := make(chan struct{})
	go cprof.profile(path, started)
	<-started

	return cprof
}

func (cprof *CPUProfiler) profile(path string, started chan<- struct{}) {
	defer close(cprof.doneChan)

	if path == "" {
		close(started)

		return
	}

	f, err := os.Create(path)
	if err != nil {
		slog.Error("Could not create cpu profile", "err", err)
		close(started)

		return
	}
	defer f.Close()

	err = pprof.StartCPUProfile(f)
	close(started)

	if err != nil {
		slog.Error("Could not start cpu profile", "err", err)

		return
	}
	defer pprof.StopCPUProfile()

	<-cprof.ctx.Done()
}

// Stop ends the profiling and waits for the profile to be written.
func (cprof *CPUProfiler) Stop() {
	cprof.cancel()
	<-cprof.doneChan
}

// AllocProfiler writes an allocation profile into a file when it is stopped.
//
//nolint:containedctx
type AllocProfiler struct {
	ctx      context.Context
	cancel   context.CancelFunc
	doneChan chan struct{}
}

// NewAllocProfiler returns a pointer to a new [AllocProfiler], writing to
// path. An empty path disables the profiler.
func NewAllocProfiler(ctx context.Context, path string) *AllocProfiler {
	aprof := &AllocProfiler{}
	aprof.ctx, aprof.cancel = context.WithCancel(ctx)
	aprof.doneChan = make(chan struct{})

	go aprof.profile(path)

	return aprof
}

func (aprof *AllocProfiler) profile(path string) {
	defer close(aprof.doneChan)

	if path == "" {
		return
	}

	<-aprof.ctx.Done()

	f, err := os.Create(path)
	if err != nil {
		slog.Error("Could not create allocs profile", "err", err)

		return
	}
	defer f.Close()

	if err := pprof.Lookup("allocs").WriteTo(f, 0); err != nil {
		slog.Error("Could not write allocs profile", "err", err)
	}
}

// Stop writes the profile and waits for it to be done.
func (aprof *AllocProfiler) Stop() {
	aprof.cancel()
	<-aprof.doneChan
}
