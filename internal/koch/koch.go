// Package koch constructs the Koch snowflake by recursive subdivision, drawn
// by a [Turtle].
package koch

import (
	"fmt"
	"strconv"
	"strings"
)

// curveTurns are the turns made after each of the four sub-curves that
// replace a straight segment.
//
//nolint:gochecknoglobals,mnd
var curveTurns = [4]float64{60, -120, 60, 0}

const (
	// sides is the number of curves the snowflake consists of.
	sides = 3

	// sideTurn is the clockwise turn made after each of the curves.
	sideTurn = 120
)

// Options are the geometric parameters of a snowflake.
type Options struct {
	// Size is the base length of each of the three curves.
	Size float64

	// Start is where the drawing starts, with the first curve going east.
	Start Point
}

// DefaultOptions returns the [Options] the snowflake is drawn with by
// default.
//
//nolint:mnd
func DefaultOptions() Options {
	return Options{
		Size:  300,
		Start: Point{X: -150, Y: 90},
	}
}

// Curve draws a Koch curve of the given order and size with the turtle. At
// order 0 the curve is a straight segment, at any higher order the segment is
// replaced by four curves of one order less and a third of the size.
func Curve(t *Turtle, order int, size float64) {
	if order <= 0 {
		t.Forward(size)

		return
	}

	for _, angle := range curveTurns {
		Curve(t, order-1, size/3) //nolint:mnd
		t.Left(angle)
	}
}

// Snowflake returns the segments of a Koch snowflake of the given order,
// made of three curves with a clockwise turn between them.
func Snowflake(order int, opts Options) ([]Segment, error) {
	if order < 0 {
		return nil, fmt.Errorf("(koch) %w: %d", ErrNegativeOrder, order)
	}

	t := NewTurtle()

	t.PenUp()
	t.Goto(opts.Start)
	t.PenDown()

	for range sides {
		Curve(t, order, opts.Size)
		t.Right(sideTurn)
	}

	return t.Segments(), nil
}

// SegmentCount returns the number of segments a snowflake of the given order
// consists of.
func SegmentCount(order int) int {
	count := sides
	for range order {
		count *= len(curveTurns)
	}

	return count
}

// ParseOrder parses a recursion order from user input.
func ParseOrder(input string) (int, error) {
	order, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("(koch) %w: %q", ErrNotInteger, input)
	}

	if order < 0 {
		return 0, fmt.Errorf("(koch) %w: %d", ErrNegativeOrder, order)
	}

	return order, nil
}
