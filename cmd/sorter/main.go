// Package main implements the sorter program, which copies all files below a
// source directory into per-extension buckets of a destination directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/desertwitch/recursion/internal/configuration"
	"github.com/desertwitch/recursion/internal/filesystem"
	sortio "github.com/desertwitch/recursion/internal/io"
	"github.com/desertwitch/recursion/internal/profiling"
	"github.com/desertwitch/recursion/internal/prompt"
	"github.com/desertwitch/recursion/internal/queue"
	"github.com/desertwitch/recursion/internal/schema"
	"github.com/desertwitch/recursion/internal/ui"
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string

	srcFlag     = flag.String("src", "", "source directory (prompted for if empty)")
	dstFlag     = flag.String("dst", "", "destination directory (prompted for if empty)")
	logFlag     = flag.String("log", "", "log file to write (overrides the configuration)")
	configFlag  = flag.String("config", "", "configuration file (default "+configuration.DefaultFile+", if present)")
	uiEnabled   = flag.Bool("ui", false, "enable the progress UI")
	debugFlag   = flag.Bool("debug", false, "enable debug logging")
	versionFlag = flag.Bool("version", false, "print the version and exit")
	cpuprofile  = flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile  = flag.String("memprofile", "", "write memory profile to this file")
)

func setupLogging(level slog.Leveler) *SlogManager {
	manager := NewSlogManager()
	manager.AddHandler(terminalLogs, newTintHandler(os.Stderr, level, false))

	slog.SetDefault(slog.New(manager))

	return manager
}

func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()
}

func loadConfig() (*configuration.SorterConfig, error) {
	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})

	if *configFlag != "" {
		return configHandler.LoadSorter(*configFlag, true) //nolint:wrapcheck
	}

	return configHandler.LoadSorter(configuration.DefaultFile, false) //nolint:wrapcheck
}

func startApp(ctx context.Context, wg *sync.WaitGroup, app *App, source string, dest string, appErr *error) {
	defer wg.Done()

	*appErr = app.Run(ctx, source, dest)
}

func startUI(wg *sync.WaitGroup, app *App, level slog.Leveler) {
	defer wg.Done()

	if app.uiHandler != nil {
		if err := app.LaunchUI(level); err != nil {
			slog.Error("UI failure: falling back to terminal.", "err", err)
		}
	}
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flag.Parse()

	if *versionFlag {
		fmt.Println(Version) //nolint:forbidigo

		return
	}

	level := slog.LevelInfo
	if *debugFlag {
		level = slog.LevelDebug
	}

	slogManager := setupLogging(level)
	setupSignalHandlers(cancel)

	memObserver := profiling.NewMemoryObserver(ctx)
	defer memObserver.Stop()

	cpuProfiler := profiling.NewCPUProfiler(ctx, *cpuprofile)
	defer cpuProfiler.Stop()

	allocProfiler := profiling.NewAllocProfiler(ctx, *memprofile)
	defer allocProfiler.Stop()

	config, err := loadConfig()
	if err != nil {
		slog.Error("Failed to load the configuration.", "err", err)
		ExitCode = 1

		return
	}

	logFile := config.LogFile
	if *logFlag != "" {
		logFile = *logFlag
	}

	src, dst, err := resolvePaths(prompt.New(os.Stdin, os.Stdout), *srcFlag, *dstFlag, config.DefaultDest)
	if err != nil {
		slog.Error("Failed to read the input.", "err", err)
		ExitCode = 1

		return
	}

	osProvider := &schema.OS{}
	unixProvider := &schema.Unix{}

	fsHandler := filesystem.NewHandler(osProvider, unixProvider)
	ioHandler := sortio.NewHandler(osProvider, unixProvider, config.TempSuffix)
	sortQueue := queue.NewGenericQueue[*schema.Sortable]()

	app := NewApp(osProvider, fsHandler, ioHandler, sortQueue, nil, slogManager, logFile)

	source, dest, err := app.Resolve(src, dst)
	if err != nil {
		slog.Error("Invalid source or destination.", "err", err)
		ExitCode = 1

		return
	}

	if *uiEnabled {
		app.uiHandler = ui.NewHandler(ctx, cancel, sortQueue)
	}

	var wg sync.WaitGroup
	var appErr error

	wg.Add(1)
	go startUI(&wg, app, level)

	wg.Add(1)
	go startApp(ctx, &wg, app, source, dest, &appErr)

	wg.Wait()

	if appErr != nil {
		slog.Error("Sorting failed.", "err", appErr)
		ExitCode = 1

		return
	}

	if ExitCode == 0 {
		if err := app.Print(os.Stdout); err != nil {
			slog.Error("Failed to print the result.", "err", err)
			ExitCode = 1
		}
	}
}
