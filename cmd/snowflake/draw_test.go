package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertwitch/recursion/internal/configuration"
	"github.com/desertwitch/recursion/internal/koch"
	"github.com/desertwitch/recursion/internal/prompt"
	"github.com/desertwitch/recursion/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errViewerFailed = errors.New("viewer failed")

type mockOSProvider struct {
	mock.Mock
}

func (m *mockOSProvider) Create(name string) (*os.File, error) {
	args := m.Called(name)
	f, _ := args.Get(0).(*os.File)

	return f, args.Error(1)
}

func TestReadOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		input   string
		want    int
		wantOut string
		wantErr error
	}{
		{"Success_Argument", []string{"3"}, "", 3, "", nil},
		{"Success_ArgumentZero", []string{"0"}, "", 0, "", nil},
		{"Success_Prompted", nil, "2\n", 2, orderPrompt, nil},
		{"Fail_Negative", []string{"-1"}, "", 0, "", koch.ErrNegativeOrder},
		{"Fail_NotInteger", []string{"abc"}, "", 0, "", koch.ErrNotInteger},
		{"Fail_PromptedNegative", nil, "-4\n", 0, orderPrompt, koch.ErrNegativeOrder},
		{"Fail_PromptedEmpty", nil, "", 0, orderPrompt, koch.ErrNotInteger},
		{"Fail_TooMany", []string{"1", "2"}, "", 0, "", ErrTooManyArgs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer

			got, err := readOrder(tt.args, prompt.New(strings.NewReader(tt.input), &out))
			assert.Equal(t, tt.wantOut, out.String())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDraw_Window(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	var gotTitle string
	var gotSegments []koch.Segment

	d := &drawing{
		osHandler: &schema.OS{},
		config:    configuration.DefaultSnowflakeConfig(),
		out:       &out,
		viewer: func(_ context.Context, title string, segments []koch.Segment) error {
			gotTitle = title
			gotSegments = segments

			return nil
		},
	}

	require.NoError(t, d.draw(t.Context(), 1))

	assert.Equal(t, "Koch Snowflake (order 1)", gotTitle)
	assert.Len(t, gotSegments, 12)
	assert.Equal(t, "Snowflake drawn.\n", out.String())
}

func TestDraw_SVG(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	config := configuration.DefaultSnowflakeConfig()
	config.SVGStroke = "navy"

	svgPath := filepath.Join(t.TempDir(), "snowflake.svg")

	d := &drawing{
		osHandler: &schema.OS{},
		config:    config,
		svgPath:   svgPath,
		out:       &out,
	}

	require.NoError(t, d.draw(t.Context(), 0))

	content, err := os.ReadFile(svgPath)
	require.NoError(t, err)

	assert.Contains(t, string(content), `stroke="navy"`)
	assert.Equal(t, 3, strings.Count(string(content), " L"))
	assert.Equal(t, "Snowflake drawn.\n", out.String())
}

func TestDraw_CustomGeometry(t *testing.T) {
	t.Parallel()

	config := configuration.DefaultSnowflakeConfig()
	config.Size = 90
	config.StartX = 0
	config.StartY = 0

	var first koch.Segment

	d := &drawing{
		osHandler: &schema.OS{},
		config:    config,
		out:       &bytes.Buffer{},
		viewer: func(_ context.Context, _ string, segments []koch.Segment) error {
			first = segments[0]

			return nil
		},
	}

	require.NoError(t, d.draw(t.Context(), 1))

	assert.Equal(t, koch.Point{}, first.From)
	assert.InDelta(t, 30.0, first.To.X, 1e-9)
}

func TestDraw_Fail(t *testing.T) {
	t.Parallel()

	t.Run("Fail_NegativeOrder", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		called := false

		d := &drawing{
			osHandler: &schema.OS{},
			config:    configuration.DefaultSnowflakeConfig(),
			out:       &out,
			viewer: func(context.Context, string, []koch.Segment) error {
				called = true

				return nil
			},
		}

		require.ErrorIs(t, d.draw(t.Context(), -1), koch.ErrNegativeOrder)
		assert.False(t, called, "nothing may be drawn")
		assert.Empty(t, out.String())
	})

	t.Run("Fail_Viewer", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		d := &drawing{
			osHandler: &schema.OS{},
			config:    configuration.DefaultSnowflakeConfig(),
			out:       &out,
			viewer: func(context.Context, string, []koch.Segment) error {
				return errViewerFailed
			},
		}

		require.ErrorIs(t, d.draw(t.Context(), 0), errViewerFailed)
		assert.Empty(t, out.String())
	})

	t.Run("Fail_CreateSVG", func(t *testing.T) {
		t.Parallel()

		osMock := &mockOSProvider{}
		osMock.On("Create", "out.svg").Return(nil, os.ErrPermission)

		d := &drawing{
			osHandler: osMock,
			config:    configuration.DefaultSnowflakeConfig(),
			svgPath:   "out.svg",
			out:       &bytes.Buffer{},
		}

		require.ErrorIs(t, d.draw(t.Context(), 0), os.ErrPermission)
		osMock.AssertExpectations(t)
	})
}
