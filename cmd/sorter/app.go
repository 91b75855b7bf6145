package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/desertwitch/recursion/internal/filesystem"
	sortio "github.com/desertwitch/recursion/internal/io"
	"github.com/desertwitch/recursion/internal/queue"
	"github.com/desertwitch/recursion/internal/report"
	"github.com/desertwitch/recursion/internal/schema"
	"github.com/desertwitch/recursion/internal/tree"
	"github.com/desertwitch/recursion/internal/ui"
)

const destPerms = 0o777

type osProvider interface {
	Create(name string) (*os.File, error)
	MkdirAll(path string, perm os.FileMode) error
	ReadDir(name string) ([]os.DirEntry, error)
	Stat(name string) (os.FileInfo, error)
}

// result is the outcome of a completed run.
type result struct {
	record  *report.Record
	logFile string
}

type App struct {
	osHandler   osProvider
	fsHandler   *filesystem.Handler
	ioHandler   *sortio.Handler
	queue       *queue.GenericQueue[*schema.Sortable]
	uiHandler   *ui.Handler
	slogManager *SlogManager

	logFile string
	result  *result
}

func NewApp(osHandler osProvider,
	fsHandler *filesystem.Handler,
	ioHandler *sortio.Handler,
	q *queue.GenericQueue[*schema.Sortable],
	uiHandler *ui.Handler,
	slogManager *SlogManager,
	logFile string,
) *App {
	return &App{
		osHandler:   osHandler,
		fsHandler:   fsHandler,
		ioHandler:   ioHandler,
		queue:       q,
		uiHandler:   uiHandler,
		slogManager: slogManager,
		logFile:     logFile,
	}
}

// Resolve validates the source and returns it and the destination as
// absolute paths. Nothing is created on the filesystem.
func (app *App) Resolve(src string, dst string) (string, string, error) {
	source, err := app.fsHandler.ValidateSource(src)
	if err != nil {
		return "", "", fmt.Errorf("(app) %w", err)
	}

	dest, err := filepath.Abs(dst)
	if err != nil {
		return "", "", fmt.Errorf("(app) failed to resolve destination: %w", err)
	}

	if info, err := app.osHandler.Stat(dest); err == nil && !info.IsDir() {
		return "", "", fmt.Errorf("(app) %w: %s", ErrDestIsFile, dest)
	}

	return source, dest, nil
}

// Launch sorts the files below source into dest, then writes the log file.
// Both paths are expected to be resolved with [App.Resolve].
func (app *App) Launch(ctx context.Context, source string, dest string) error {
	if err := app.osHandler.MkdirAll(dest, destPerms); err != nil {
		return fmt.Errorf("(app) failed to create destination: %w", err)
	}

	slog.Info("Enumerating source...", "path", source)

	sortables, err := app.fsHandler.Enumerate(ctx, source, dest)
	if err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	slog.Info("Copying files...", "count", len(sortables), "dest", dest)

	app.queue.Enqueue(sortables...)

	rep, err := app.ioHandler.ProcessQueue(ctx, app.queue)
	if err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	slog.Info("Sorting done.", "summary", rep.Summary())

	lines, err := tree.Build(app.osHandler, dest)
	if err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	record := report.NewRecord(source, dest, rep.Summary(), tree.Frame(lines))

	if err := report.WriteFile(app.osHandler, app.logFile, record); err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	app.result = &result{
		record:  record,
		logFile: app.logFile,
	}

	return nil
}

// Run waits for the user interface, if there is one, and then launches the
// sorting. On failure the user interface is asked to exit, so that the error
// can be reported on the terminal.
func (app *App) Run(ctx context.Context, source string, dest string) error {
	if app.uiHandler == nil {
		return app.Launch(ctx, source, dest)
	}

	slog.Info("Waiting for UI...")
	app.WaitForUI(ctx)

	err := app.Launch(ctx, source, dest)
	if err != nil {
		app.uiHandler.Quit()
	}

	return err
}

// LaunchUI runs the progress user interface, routing the logs into it while
// it is running.
func (app *App) LaunchUI(level slog.Leveler) error {
	if app.slogManager != nil {
		terminal, hasTerminal := app.slogManager.GetHandler(terminalLogs)

		app.slogManager.AddHandler(uiLogs, newTintHandler(app.uiHandler.LogWriter, level, false))
		app.slogManager.RemoveHandler(terminalLogs)

		defer func() {
			app.slogManager.RemoveHandler(uiLogs)
			if hasTerminal {
				app.slogManager.AddHandler(terminalLogs, terminal)
			}
		}()
	}

	if err := app.uiHandler.Launch(); err != nil {
		return fmt.Errorf("(app-ui) %w", err)
	}

	return nil
}

// WaitForUI blocks until the user interface can show the logs, has failed
// or the context is done.
func (app *App) WaitForUI(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(10 * time.Millisecond): //nolint:mnd
		}

		if app.uiHandler.Ready.Load() || app.uiHandler.Failed.Load() {
			return
		}
	}
}

// Print writes the directory structure of a completed run.
func (app *App) Print(w io.Writer) error {
	if app.result == nil {
		return ErrNotLaunched
	}

	if _, err := fmt.Fprintf(w, "Directory structure:\n%s\nLog saved to %s\n",
		app.result.record.Structure, app.result.logFile); err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	return nil
}
