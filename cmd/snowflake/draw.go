package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/desertwitch/recursion/internal/canvas"
	"github.com/desertwitch/recursion/internal/configuration"
	"github.com/desertwitch/recursion/internal/koch"
	"github.com/desertwitch/recursion/internal/prompt"
)

const orderPrompt = "Enter the recursion order (0 or greater): "

type osProvider interface {
	Create(name string) (*os.File, error)
}

// viewerFunc shows the segments in a window, blocking until it is closed.
type viewerFunc func(ctx context.Context, title string, segments []koch.Segment) error

// drawing holds everything needed to draw one snowflake.
type drawing struct {
	osHandler osProvider
	config    *configuration.SnowflakeConfig
	svgPath   string
	viewer    viewerFunc
	out       io.Writer
}

// readOrder returns the recursion order from the positional arguments, or
// asks for it if there are none.
func readOrder(args []string, p *prompt.Prompter) (int, error) {
	var input string

	switch len(args) {
	case 0:
		answer, err := p.Ask(orderPrompt)
		if err != nil {
			return 0, err //nolint:wrapcheck
		}
		input = answer
	case 1:
		input = args[0]
	default:
		return 0, fmt.Errorf("(input) %w: %v", ErrTooManyArgs, args)
	}

	return koch.ParseOrder(input) //nolint:wrapcheck
}

// draw constructs the snowflake of the given order and renders it into the
// configured outputs.
func (d *drawing) draw(ctx context.Context, order int) error {
	slog.Debug("Constructing snowflake...", "order", order, "segments", koch.SegmentCount(order))

	segments, err := koch.Snowflake(order, d.config.Options())
	if err != nil {
		return fmt.Errorf("(draw) %w", err)
	}

	if d.svgPath != "" {
		if err := d.writeSVG(segments); err != nil {
			return err
		}
		slog.Info("SVG written.", "path", d.svgPath)
	}

	if d.viewer != nil {
		if err := d.viewer(ctx, fmt.Sprintf("Koch Snowflake (order %d)", order), segments); err != nil {
			return fmt.Errorf("(draw) %w", err)
		}
	}

	if _, err := fmt.Fprintln(d.out, "Snowflake drawn."); err != nil {
		return fmt.Errorf("(draw) %w", err)
	}

	return nil
}

func (d *drawing) writeSVG(segments []koch.Segment) error {
	f, err := d.osHandler.Create(d.svgPath)
	if err != nil {
		return fmt.Errorf("(draw) failed to create svg: %w", err)
	}

	if err := canvas.WriteSVG(f, segments, d.config.SVGStroke); err != nil {
		f.Close()

		return fmt.Errorf("(draw) %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("(draw) failed to close svg: %w", err)
	}

	return nil
}
