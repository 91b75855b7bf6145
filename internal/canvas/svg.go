package canvas

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/desertwitch/recursion/internal/koch"
)

const (
	// svgMargin is the space around the drawing, in drawing units.
	svgMargin = 10

	// svgStrokeWidth is the width of the drawn lines, in drawing units.
	svgStrokeWidth = 1
)

// WriteSVG writes the segments as a single SVG path with the given stroke
// color. The y axis is flipped so that the drawing appears upright.
func WriteSVG(w io.Writer, segments []koch.Segment, stroke string) error {
	bw := bufio.NewWriter(w)

	box := bounds{}
	if len(segments) > 0 {
		box = boundsOf(segments)
	}

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s">`+"\n",
		formatFloat(box.minX-svgMargin),
		formatFloat(-box.maxY-svgMargin),
		formatFloat(box.width()+2*svgMargin),
		formatFloat(box.height()+2*svgMargin),
	)

	fmt.Fprintf(bw, `<path fill="none" stroke="%s" stroke-width="%d" d="`, stroke, svgStrokeWidth)

	var last koch.Point
	for i, s := range segments {
		if i == 0 || s.From != last {
			if i > 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, "M%s %s", formatFloat(s.From.X), formatFloat(-s.From.Y))
		}
		fmt.Fprintf(bw, " L%s %s", formatFloat(s.To.X), formatFloat(-s.To.Y))
		last = s.To
	}

	bw.WriteString("\"/>\n</svg>\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("(canvas) %w", err)
	}

	return nil
}

func formatFloat(v float64) string {
	r := math.Round(v*100) / 100 //nolint:mnd
	if r == 0 {
		r = 0
	}

	return strconv.FormatFloat(r, 'f', -1, 64)
}
