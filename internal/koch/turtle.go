package koch

import "math"

// Point is a position on the drawing plane. The y axis points upwards.
type Point struct {
	X float64
	Y float64
}

// Segment is a straight line drawn by a [Turtle].
type Segment struct {
	From Point
	To   Point
}

// Turtle is a cursor on the drawing plane that records a [Segment] for every
// move made with its pen down. The heading is in degrees, counter-clockwise,
// with 0 facing east.
type Turtle struct {
	position Point
	heading  float64
	penDown  bool
	segments []Segment
}

// NewTurtle returns a pointer to a new [Turtle] at the origin, facing east,
// with its pen down.
func NewTurtle() *Turtle {
	return &Turtle{
		penDown: true,
	}
}

// Forward moves the turtle by distance along its heading.
func (t *Turtle) Forward(distance float64) {
	rad := t.heading * math.Pi / 180 //nolint:mnd

	t.moveTo(Point{
		X: t.position.X + distance*math.Cos(rad),
		Y: t.position.Y + distance*math.Sin(rad),
	})
}

// Left turns the turtle counter-clockwise by angle degrees.
func (t *Turtle) Left(angle float64) {
	t.heading = math.Mod(t.heading+angle, 360) //nolint:mnd
}

// Right turns the turtle clockwise by angle degrees.
func (t *Turtle) Right(angle float64) {
	t.Left(-angle)
}

// Goto moves the turtle to the given position, without changing its heading.
func (t *Turtle) Goto(p Point) {
	t.moveTo(p)
}

// PenUp lifts the pen, moves no longer draw.
func (t *Turtle) PenUp() {
	t.penDown = false
}

// PenDown lowers the pen, moves draw again.
func (t *Turtle) PenDown() {
	t.penDown = true
}

// IsDown returns whether the pen is down.
func (t *Turtle) IsDown() bool {
	return t.penDown
}

// Position returns the current position.
func (t *Turtle) Position() Point {
	return t.position
}

// Heading returns the current heading in degrees, within (-360, 360).
func (t *Turtle) Heading() float64 {
	return t.heading
}

// Segments returns all segments drawn so far, in drawing order.
func (t *Turtle) Segments() []Segment {
	return t.segments
}

func (t *Turtle) moveTo(p Point) {
	if t.penDown {
		t.segments = append(t.segments, Segment{From: t.position, To: p})
	}
	t.position = p
}
