package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/desertwitch/recursion/internal/queue"
	"github.com/desertwitch/recursion/internal/schema"
	"github.com/dustin/go-humanize"
)

const (
	// maxLogLines is the amount of log lines kept for the logs panel.
	maxLogLines = 100

	// progressInterval is the interval the queue progress is polled at.
	progressInterval = 100 * time.Millisecond
)

//nolint:gochecknoglobals
var (
	// titleStyle defines the style for a panel's title.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	// borderStyle defines the style for a panel's borders.
	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4"))

	// infoStyle defines the style for a panel's text.
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	// helpStyle defines the style for the help panel's text.
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(0, 1)
)

// QueueProgressMsg is a [tea.Msg] containing [queue.Progress] information.
type QueueProgressMsg struct {
	t    time.Time
	data queue.Progress
}

// TeaModel is the principal [tea.Model] for the progress user interface.
type TeaModel struct {
	width  int
	height int

	cancel context.CancelFunc

	uiHandler *Handler

	fullWidthWithBorders int

	copyData     queue.Progress
	copyProgress progress.Model
	logsViewport viewport.Model
	logs         []string

	ready bool
}

// NewTeaModel returns an initial new [TeaModel].
//
//nolint:mnd
func NewTeaModel(uiHandler *Handler, cancel context.CancelFunc) TeaModel {
	copyProgress := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(80),
	)

	logsViewport := viewport.New(80, 20)

	return TeaModel{
		uiHandler:    uiHandler,
		copyProgress: copyProgress,
		copyData:     queue.Progress{},
		logsViewport: logsViewport,
		logs:         make([]string, 0, maxLogLines),
		cancel:       cancel,
		ready:        false,
	}
}

// Init initializes the model within a [tea.Program].
func (m TeaModel) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		updateQueueProgress(m.uiHandler.queue),
	)
}

// updateQueueProgress produces a [tea.Cmd] for later scheduling in a
// [tea.Program]. When executed, a [QueueProgressMsg] with the queue's
// [queue.Progress] is returned.
func updateQueueProgress(q *queue.GenericQueue[*schema.Sortable]) tea.Cmd {
	return tea.Tick(progressInterval, func(t time.Time) tea.Msg {
		return QueueProgressMsg{
			t:    t,
			data: q.Progress(),
		}
	})
}

// Update is the principal message handling method of the model.
// It sets the internal state of the model, for later rendering.
//
//nolint:mnd,ireturn
func (m TeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()

			return m, tea.Quit
		case "q":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.fullWidthWithBorders = m.width - 2

		// Progress bar should match the content width.
		m.copyProgress.Width = m.fullWidthWithBorders

		// We want the upper panel to take about 40% of the height.
		upperHeight := m.height * 2 / 5
		lowerHeight := m.height - upperHeight

		// Viewport height: lower section minus borders, title and help.
		m.logsViewport.Width = m.fullWidthWithBorders
		m.logsViewport.Height = max(lowerHeight-4, 1)

		m.refreshLogs()

		if !m.ready {
			m.ready = true
			m.uiHandler.Ready.Store(true)
		}

	case QueueProgressMsg:
		m.copyData = msg.data

		cmds = append(cmds,
			m.copyProgress.SetPercent(m.copyData.ProgressPct/100),
			updateQueueProgress(m.uiHandler.queue),
		)

	case LogMsg:
		for _, line := range msg {
			if line == "" {
				continue
			}
			m.logs = append(m.logs, line)
		}
		if len(m.logs) > maxLogLines {
			m.logs = m.logs[len(m.logs)-maxLogLines:]
		}

		m.refreshLogs()

	case progress.FrameMsg:
		updated, cmd := m.copyProgress.Update(msg)
		if progressModel, ok := updated.(progress.Model); ok {
			m.copyProgress = progressModel
		}
		cmds = append(cmds, cmd)
	}

	// Handle viewport updates.
	m.logsViewport, cmd = m.logsViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// refreshLogs sets the content of the logs viewport to the current logs.
func (m *TeaModel) refreshLogs() {
	if len(m.logs) == 0 {
		return
	}

	logs := lipgloss.NewStyle().
		Width(m.logsViewport.Width).
		Render(strings.TrimSuffix(strings.Join(m.logs, ""), "\n"))

	m.logsViewport.SetContent(logs)
	m.logsViewport.GotoBottom()
}

// View is the principal rendering function of the model.
func (m TeaModel) View() string {
	if !m.ready {
		return "Loading the GUI..."
	}

	progressSection := borderStyle.
		Width(m.fullWidthWithBorders).
		Render(m.formatProgressView("Copying", m.copyProgress.View(), m.copyData))

	logsSection := borderStyle.
		Width(m.fullWidthWithBorders).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Left,
				titleStyle.Width(m.fullWidthWithBorders).Render("Process Information"),
				lipgloss.NewStyle().Width(m.fullWidthWithBorders).Render(m.logsViewport.View()),
			),
		)

	helpSection := helpStyle.
		Width(m.fullWidthWithBorders).
		Render("q: quit gui • ctrl+c: quit program")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		progressSection,
		logsSection,
		helpSection,
	)
}

// formatProgressView is a helper function for rendering the progress panel.
func (m TeaModel) formatProgressView(title string, progressBar string, p queue.Progress) string {
	var timeLeftMin float64
	if !p.ETA.IsZero() {
		timeLeftMin = time.Until(p.ETA).Minutes()
	}

	var details string
	if !p.HasFinished {
		details = fmt.Sprintf(
			"Progress: %.2f%% (%s/%s)\n"+
				"Files: InProgress=%d, Copied=%d, Existing=%d, Failed=%d\n"+
				"Time: Started=%v, ETA=%v (%.1f%s left)\n"+
				"Speed: %d %s\n",
			p.ProgressPct,
			humanize.Comma(int64(p.ProcessedItems)),
			humanize.Comma(int64(p.TotalItems)),
			p.InProgressItems,
			p.SuccessItems,
			p.SkippedItems,
			p.FailedItems,
			p.StartTime.Format("15:04:05"),
			p.ETA.Format("15:04:05"),
			timeLeftMin, "min",
			int(p.TransferSpeed), p.TransferSpeedUnit,
		)
	} else {
		details = fmt.Sprintf(
			"Progress: %.2f%% (%s/%s)\n"+
				"Files: Copied=%d, Existing=%d, Failed=%d\n"+
				"Time: Started=%v, Finished=%v (took %s)\n\n",
			p.ProgressPct,
			humanize.Comma(int64(p.ProcessedItems)),
			humanize.Comma(int64(p.TotalItems)),
			p.SuccessItems,
			p.SkippedItems,
			p.FailedItems,
			p.StartTime.Format("15:04:05"),
			p.FinishTime.Format("15:04:05"),
			p.FinishTime.Sub(p.StartTime).Round(time.Millisecond),
		)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Width(m.fullWidthWithBorders).Render(title),
		"", // Empty line for spacing.
		progressBar,
		"", // Empty line for spacing.
		infoStyle.Width(m.fullWidthWithBorders).Render(details),
	)
}
