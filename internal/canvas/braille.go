// Package canvas rasterizes line segments, either into a braille dot raster
// for terminal output or into an SVG document.
package canvas

import "strings"

const (
	// CellWidth is the number of dots per terminal cell on the x axis.
	CellWidth = 2

	// CellHeight is the number of dots per terminal cell on the y axis.
	CellHeight = 4

	// brailleBlank is the braille pattern without any raised dots.
	brailleBlank = 0x2800
)

// dotBits maps a dot within a cell (x, y) to its bit in a braille pattern.
//
//nolint:gochecknoglobals
var dotBits = [CellWidth][CellHeight]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// Braille is a raster of dots, each terminal cell holding 2x4 dots. The dot
// at (0, 0) is the upper left one.
type Braille struct {
	cols  int
	rows  int
	cells []uint8
}

// New returns a pointer to a new empty [Braille] raster of cols x rows
// terminal cells.
func New(cols int, rows int) *Braille {
	cols = max(cols, 0)
	rows = max(rows, 0)

	return &Braille{
		cols:  cols,
		rows:  rows,
		cells: make([]uint8, cols*rows),
	}
}

// Width returns the width of the raster in dots.
func (b *Braille) Width() int {
	return b.cols * CellWidth
}

// Height returns the height of the raster in dots.
func (b *Braille) Height() int {
	return b.rows * CellHeight
}

// Set raises the dot at (x, y). Dots outside of the raster are ignored.
func (b *Braille) Set(x int, y int) {
	if x < 0 || y < 0 || x >= b.Width() || y >= b.Height() {
		return
	}

	cell := (y/CellHeight)*b.cols + x/CellWidth
	b.cells[cell] |= dotBits[x%CellWidth][y%CellHeight]
}

// IsSet returns whether the dot at (x, y) is raised.
func (b *Braille) IsSet(x int, y int) bool {
	if x < 0 || y < 0 || x >= b.Width() || y >= b.Height() {
		return false
	}

	cell := (y/CellHeight)*b.cols + x/CellWidth

	return b.cells[cell]&dotBits[x%CellWidth][y%CellHeight] != 0
}

// Line raises all dots on the line from (x0, y0) to (x1, y1), both ends
// included.
func (b *Braille) Line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)

	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	e := dx + dy

	for {
		b.Set(x0, y0)

		if x0 == x1 && y0 == y1 {
			return
		}

		e2 := 2 * e //nolint:mnd

		if e2 >= dy {
			e += dy
			x0 += sx
		}

		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Lines returns the raster as one string per row of terminal cells. Cells
// without any raised dots are rendered as spaces.
func (b *Braille) Lines() []string {
	lines := make([]string, 0, b.rows)

	for row := range b.rows {
		var sb strings.Builder

		for col := range b.cols {
			bits := b.cells[row*b.cols+col]
			if bits == 0 {
				sb.WriteRune(' ')

				continue
			}
			sb.WriteRune(rune(brailleBlank + int(bits)))
		}

		lines = append(lines, sb.String())
	}

	return lines
}

// String returns the raster as newline-separated rows.
func (b *Braille) String() string {
	return strings.Join(b.Lines(), "\n")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
