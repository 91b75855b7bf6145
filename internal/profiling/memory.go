package profiling

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	// memoryMonitorInterval is the interval at which a [MemoryObserver] is
	// updated.
	memoryMonitorInterval = 100 * time.Millisecond
)

// MemoryObserver tracks peak memory usage over a period of time.
type MemoryObserver struct {
	sync.RWMutex
	maxAlloc uint64
	stopOnce sync.Once
	stopChan chan struct{}
	doneChan chan struct{}
}

// NewMemoryObserver returns a pointer to a new [MemoryObserver]. The tracking
// is started and needs to be stopped by e.g. deferred calling of
// [MemoryObserver.Stop] before program exit.
func NewMemoryObserver(ctx context.Context) *MemoryObserver {
	obs := &MemoryObserver{
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}

	obs.sample()
	go obs.monitor(ctx)

	return obs
}

// MaxAlloc returns the peak recorded memory allocation size in a
// thread-safe manner.
func (o *MemoryObserver) MaxAlloc() uint64 {
	o.RLock()
	defer o.RUnlock()

	return o.maxAlloc
}

// Stop halts the tracking of peak memory allocation and logs the highest
// recorded memory allocation with [slog.Debug].
func (o *MemoryObserver) Stop() {
	o.stopOnce.Do(func() {
		close(o.stopChan)
	})
	<-o.doneChan

	o.sample()
	slog.Debug("Memory consumption peaked at:", "maxAlloc", humanize.IBytes(o.MaxAlloc()))
}

// monitor queries the [runtime.MemStats] every [memoryMonitorInterval].
func (o *MemoryObserver) monitor(ctx context.Context) {
	defer close(o.doneChan)

	ticker := time.NewTicker(memoryMonitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-o.stopChan:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			o.sample()
		}
	}
}

func (o *MemoryObserver) sample() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	o.Lock()
	if m.Alloc > o.maxAlloc {
		o.maxAlloc = m.Alloc
	}
	o.Unlock()
}
