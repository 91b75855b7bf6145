package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	logBufferSize = 1000
	maxLogBatch   = 100
)

// LogMsg is a batch of log lines, in the order they were written. It is typed
// for identification as [tea.Msg] within a [tea.Program].
type LogMsg []string

type teaProgramProvider interface {
	Send(msg tea.Msg)
}

// TeaLogWriter is an [io.Writer] for a [slog.Handler] that forwards the
// written logs to a [tea.Program]. Logs arriving faster than the program
// takes them are batched into a single [LogMsg].
type TeaLogWriter struct {
	program  teaProgramProvider
	doneChan chan struct{}
	stopOnce sync.Once
	logChan  chan string
}

// NewTeaLogWriter returns a pointer to a new [TeaLogWriter] and starts its
// forwarding, which runs until [TeaLogWriter.Stop] is called.
func NewTeaLogWriter(program teaProgramProvider) *TeaLogWriter {
	wr := &TeaLogWriter{
		program:  program,
		doneChan: make(chan struct{}),
		logChan:  make(chan string, logBufferSize),
	}

	go wr.forward()

	return wr
}

// Stop ends the forwarding. Logs still buffered or written afterwards are
// discarded. Stop may be called more than once.
func (wr *TeaLogWriter) Stop() {
	wr.stopOnce.Do(func() {
		close(wr.doneChan)
	})
}

func (wr *TeaLogWriter) forward() {
	for {
		select {
		case <-wr.doneChan:
			return
		case line := <-wr.logChan:
			wr.program.Send(wr.batch(line))
		}
	}
}

// batch returns the given line together with all lines already waiting in
// the buffer, up to [maxLogBatch] lines.
func (wr *TeaLogWriter) batch(first string) LogMsg {
	msg := LogMsg{first}

	for len(msg) < maxLogBatch {
		select {
		case line := <-wr.logChan:
			msg = append(msg, line)
		default:
			return msg
		}
	}

	return msg
}

// Write buffers a copy of p for forwarding. It blocks while the buffer is
// full, unless the writer was stopped, and never fails.
func (wr *TeaLogWriter) Write(p []byte) (int, error) {
	select {
	case <-wr.doneChan:
	case wr.logChan <- string(p):
	}

	return len(p), nil
}
