// Package ui implements the command-line user interfaces using [tea]: a
// progress display for the sorting and a window showing a snowflake.
package ui

import (
	"context"
	"fmt"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertwitch/recursion/internal/queue"
	"github.com/desertwitch/recursion/internal/schema"
)

// Handler is the principal implementation of the progress user interface.
type Handler struct {
	queue   *queue.GenericQueue[*schema.Sortable]
	program *tea.Program

	LogWriter *TeaLogWriter

	Ready  atomic.Bool
	Failed atomic.Bool
}

// NewHandler returns a pointer to a new progress user interface [Handler],
// displaying the progress of the given queue. The cancel function is called
// when the user requests the program to be aborted.
func NewHandler(ctx context.Context, cancel context.CancelFunc, q *queue.GenericQueue[*schema.Sortable], opts ...tea.ProgramOption) *Handler {
	handler := &Handler{
		queue: q,
	}

	model := NewTeaModel(handler, cancel)

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	handler.program = tea.NewProgram(model, opts...)
	handler.LogWriter = NewTeaLogWriter(handler.program)

	return handler
}

// Launch starts the command-line user interface (the [tea.Program]).
func (uiHandler *Handler) Launch() error {
	defer uiHandler.LogWriter.Stop()

	if _, err := uiHandler.program.Run(); err != nil {
		uiHandler.Failed.Store(true)

		return fmt.Errorf("(ui) %w", err)
	}

	return nil
}

// Quit asks a running user interface to exit.
func (uiHandler *Handler) Quit() {
	uiHandler.program.Quit()
}
