package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/desertwitch/recursion/internal/canvas"
	"github.com/desertwitch/recursion/internal/koch"
)

const (
	// viewerChromeWidth is the width taken by the viewer's border.
	viewerChromeWidth = 2

	// viewerChromeHeight is the height taken by the viewer's border, title
	// and help line.
	viewerChromeHeight = 4
)

// ViewerModel is the [tea.Model] of a window showing line segments drawn on
// a braille raster. It closes on q, esc, ctrl+c or a mouse click.
type ViewerModel struct {
	title    string
	segments []koch.Segment

	width  int
	height int
	raster *canvas.Braille

	ready bool
}

// NewViewerModel returns an initial new [ViewerModel].
func NewViewerModel(title string, segments []koch.Segment) ViewerModel {
	return ViewerModel{
		title:    title,
		segments: segments,
	}
}

// Init initializes the model within a [tea.Program].
func (m ViewerModel) Init() tea.Cmd {
	return nil
}

// Update is the principal message handling method of the model.
//
//nolint:ireturn
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		cols := max(m.width-viewerChromeWidth, 0)
		rows := max(m.height-viewerChromeHeight, 0)
		m.raster = canvas.Fit(m.segments, cols, rows)

		m.ready = true
	}

	return m, nil
}

// View is the principal rendering function of the model.
func (m ViewerModel) View() string {
	if !m.ready {
		return "Drawing..."
	}

	innerWidth := max(m.width-viewerChromeWidth, 0)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		borderStyle.Render(
			lipgloss.JoinVertical(
				lipgloss.Left,
				titleStyle.Width(innerWidth).Render(m.title),
				infoStyle.Render(m.raster.String()),
			),
		),
		helpStyle.Render("q/esc/click: close"),
	)
}

// ShowViewer opens a window showing the segments and blocks until the user
// closes it.
func ShowViewer(ctx context.Context, title string, segments []koch.Segment, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	}, opts...)

	program := tea.NewProgram(NewViewerModel(title, segments), opts...)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("(ui) %w", err)
	}

	return nil
}
