package canvas

import (
	"math"

	"github.com/desertwitch/recursion/internal/koch"
)

// bounds is the bounding box of a set of segments.
type bounds struct {
	minX, minY float64
	maxX, maxY float64
}

func (b bounds) width() float64 {
	return b.maxX - b.minX
}

func (b bounds) height() float64 {
	return b.maxY - b.minY
}

func boundsOf(segments []koch.Segment) bounds {
	b := bounds{
		minX: math.Inf(1), minY: math.Inf(1),
		maxX: math.Inf(-1), maxY: math.Inf(-1),
	}

	for _, s := range segments {
		for _, p := range []koch.Point{s.From, s.To} {
			b.minX = math.Min(b.minX, p.X)
			b.minY = math.Min(b.minY, p.Y)
			b.maxX = math.Max(b.maxX, p.X)
			b.maxY = math.Max(b.maxY, p.Y)
		}
	}

	return b
}

// Fit draws the segments onto a new [Braille] raster of cols x rows terminal
// cells. The drawing is scaled to fill the raster while keeping its aspect
// ratio, centered, and flipped so that the y axis points upwards.
func Fit(segments []koch.Segment, cols int, rows int) *Braille {
	b := New(cols, rows)

	if len(segments) == 0 || b.Width() == 0 || b.Height() == 0 {
		return b
	}

	box := boundsOf(segments)

	availX := float64(b.Width() - 1)
	availY := float64(b.Height() - 1)

	scale := math.Inf(1)
	if box.width() > 0 {
		scale = availX / box.width()
	}
	if box.height() > 0 {
		scale = math.Min(scale, availY/box.height())
	}
	if math.IsInf(scale, 1) {
		scale = 1
	}

	offX := (availX - box.width()*scale) / 2 //nolint:mnd
	offY := (availY - box.height()*scale) / 2 //nolint:mnd

	project := func(p koch.Point) (int, int) {
		x := offX + (p.X-box.minX)*scale
		y := offY + (box.maxY-p.Y)*scale

		return int(math.Round(x)), int(math.Round(y))
	}

	for _, s := range segments {
		x0, y0 := project(s.From)
		x1, y1 := project(s.To)
		b.Line(x0, y0, x1, y1)
	}

	return b
}
