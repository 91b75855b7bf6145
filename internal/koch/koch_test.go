package koch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func segmentLength(s Segment) float64 {
	return math.Hypot(s.To.X-s.From.X, s.To.Y-s.From.Y)
}

func TestSnowflake_SegmentCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		order int
		want  int
	}{
		{0, 3},
		{1, 12},
		{2, 48},
		{3, 192},
		{4, 768},
	}

	for _, tt := range tests {
		segs, err := Snowflake(tt.order, DefaultOptions())
		require.NoError(t, err)
		assert.Len(t, segs, tt.want, "order %d", tt.order)
		assert.Equal(t, tt.want, SegmentCount(tt.order), "order %d", tt.order)
	}
}

func TestSnowflake_Order0_Triangle(t *testing.T) {
	t.Parallel()

	segs, err := Snowflake(0, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, segs, 3)

	assert.InDelta(t, -150.0, segs[0].From.X, epsilon)
	assert.InDelta(t, 90.0, segs[0].From.Y, epsilon)
	assert.InDelta(t, 150.0, segs[0].To.X, epsilon)
	assert.InDelta(t, 90.0, segs[0].To.Y, epsilon)

	assert.InDelta(t, 0.0, segs[1].To.X, epsilon)
	assert.InDelta(t, 90.0-300*math.Sqrt(3)/2, segs[1].To.Y, epsilon)

	for _, s := range segs {
		assert.InDelta(t, 300.0, segmentLength(s), epsilon)
	}
}

func TestSnowflake_Closed(t *testing.T) {
	t.Parallel()

	for order := range 5 {
		segs, err := Snowflake(order, DefaultOptions())
		require.NoError(t, err)

		first := segs[0]
		last := segs[len(segs)-1]

		assert.InDelta(t, first.From.X, last.To.X, 1e-6, "order %d", order)
		assert.InDelta(t, first.From.Y, last.To.Y, 1e-6, "order %d", order)

		for i := 1; i < len(segs); i++ {
			assert.InDelta(t, segs[i-1].To.X, segs[i].From.X, epsilon)
			assert.InDelta(t, segs[i-1].To.Y, segs[i].From.Y, epsilon)
		}
	}
}

func TestSnowflake_SubdividedLengths(t *testing.T) {
	t.Parallel()

	segs, err := Snowflake(2, Options{Size: 270, Start: Point{}})
	require.NoError(t, err)

	for _, s := range segs {
		assert.InDelta(t, 30.0, segmentLength(s), 1e-6)
	}
}

func TestSnowflake_Fail_NegativeOrder(t *testing.T) {
	t.Parallel()

	segs, err := Snowflake(-1, DefaultOptions())
	require.ErrorIs(t, err, ErrNegativeOrder)
	assert.Nil(t, segs)
}

func TestCurve_EndsOnBaseline(t *testing.T) {
	t.Parallel()

	for order := range 4 {
		tu := NewTurtle()
		Curve(tu, order, 300)

		assert.InDelta(t, 300.0, tu.Position().X, 1e-6, "order %d", order)
		assert.InDelta(t, 0.0, tu.Position().Y, 1e-6, "order %d", order)
		assert.InDelta(t, 0.0, math.Mod(tu.Heading(), 360), 1e-6, "order %d", order)
	}
}

func TestCurve_Order1_Shape(t *testing.T) {
	t.Parallel()

	tu := NewTurtle()
	Curve(tu, 1, 3)

	segs := tu.Segments()
	require.Len(t, segs, 4)

	assert.InDelta(t, 1.0, segs[0].To.X, epsilon)
	assert.InDelta(t, 0.0, segs[0].To.Y, epsilon)

	assert.InDelta(t, 1.5, segs[1].To.X, epsilon)
	assert.InDelta(t, math.Sqrt(3)/2, segs[1].To.Y, epsilon, "the peak points upwards")

	assert.InDelta(t, 2.0, segs[2].To.X, epsilon)
	assert.InDelta(t, 0.0, segs[2].To.Y, epsilon)
}

func TestParseOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    int
		wantErr error
	}{
		{"Success_Zero", "0", 0, nil},
		{"Success_Positive", "3", 3, nil},
		{"Success_Whitespace", " 4\n", 4, nil},
		{"Success_PlusSign", "+2", 2, nil},
		{"Fail_Negative", "-1", 0, ErrNegativeOrder},
		{"Fail_Float", "2.5", 0, ErrNotInteger},
		{"Fail_Text", "three", 0, ErrNotInteger},
		{"Fail_Empty", "", 0, ErrNotInteger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseOrder(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
