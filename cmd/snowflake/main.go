// Package main implements the snowflake program, which draws a Koch
// snowflake of a given recursion order into a terminal window.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/desertwitch/recursion/internal/configuration"
	"github.com/desertwitch/recursion/internal/koch"
	"github.com/desertwitch/recursion/internal/profiling"
	"github.com/desertwitch/recursion/internal/prompt"
	"github.com/desertwitch/recursion/internal/schema"
	"github.com/desertwitch/recursion/internal/ui"
	"github.com/lmittmann/tint"
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string
)

func setupLogging(level slog.Leveler) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()
}

func loadConfig(file string) (*configuration.SnowflakeConfig, error) {
	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})

	if file != "" {
		return configHandler.LoadSnowflake(file, true) //nolint:wrapcheck
	}

	return configHandler.LoadSnowflake(configuration.DefaultFile, false) //nolint:wrapcheck
}

func showViewer(ctx context.Context, title string, segments []koch.Segment) error {
	return ui.ShowViewer(ctx, title, segments) //nolint:wrapcheck
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fs, opts := newFlagSet(os.Args[0], os.Stderr)

	args, err := parseArgs(fs, os.Args[1:])
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			ExitCode = 1
		}

		return
	}

	if opts.version {
		fmt.Println(Version) //nolint:forbidigo

		return
	}

	level := slog.LevelInfo
	if opts.debug {
		level = slog.LevelDebug
	}

	setupLogging(level)
	setupSignalHandlers(cancel)

	memObserver := profiling.NewMemoryObserver(ctx)
	defer memObserver.Stop()

	cpuProfiler := profiling.NewCPUProfiler(ctx, opts.cpuprofile)
	defer cpuProfiler.Stop()

	allocProfiler := profiling.NewAllocProfiler(ctx, opts.memprofile)
	defer allocProfiler.Stop()

	config, err := loadConfig(opts.config)
	if err != nil {
		slog.Error("Failed to load the configuration.", "err", err)
		ExitCode = 1

		return
	}

	order, err := readOrder(args, prompt.New(os.Stdin, os.Stdout))
	if err != nil {
		slog.Error("Invalid recursion order.", "err", err)
		ExitCode = 1

		return
	}

	d := &drawing{
		osHandler: &schema.OS{},
		config:    config,
		svgPath:   opts.svg,
		out:       os.Stdout,
	}

	if !opts.noWindow {
		d.viewer = showViewer
	}

	if err := d.draw(ctx, order); err != nil {
		slog.Error("Failed to draw the snowflake.", "err", err)
		ExitCode = 1
	}
}
