// Package tui renders the live mirror progress display: one line per
// finished folder, a progress bar and ETA for the folder in flight.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kliatsko/librarymirror/internal/mirror"
	"github.com/kliatsko/librarymirror/pkg/formatters"
)

// folderRow is the display state of one folder.
type folderRow struct {
	name    string
	detail  string
	done    bool
	failed  bool
	skipped bool
}

// Model is the bubble tea model for the session display.
type Model struct {
	bridge *EventBridge
	cancel func()

	folderCount int
	rows        []folderRow

	currentPath string
	snapshot    mirror.ProgressSnapshot
	running     bool

	bar   progress.Model
	width int
	quit  bool
}

// NewModel creates the session display model. cancel is invoked on ctrl+c to
// stop the engine before the program exits.
func NewModel(bridge *EventBridge, cancel func()) *Model {
	return &Model{
		bridge: bridge,
		cancel: cancel,
		bar:    NewProgressModel(ProgressBarWidth),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.bridge.ListenCmd()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == KeyCtrlC {
			if m.cancel != nil {
				m.cancel()
			}
			m.quit = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = min(msg.Width-4, MaxProgressBarWidth)
		return m, nil

	case EngineEventMsg:
		return m.handleEvent(msg.Event)
	}

	return m, nil
}

func (m *Model) handleEvent(event mirror.Event) (tea.Model, tea.Cmd) {
	switch event := event.(type) {
	case mirror.SessionStarted:
		m.folderCount = event.FolderCount

	case mirror.FolderStarted:
		m.rows = append(m.rows, folderRow{name: event.Name, detail: "scanning"})
		m.currentPath = ""
		m.snapshot = mirror.ProgressSnapshot{}
		m.running = true

	case mirror.ScanComplete:
		m.setCurrentDetail(fmt.Sprintf("source %d files (%s), backup %d files (%s)",
			event.Source.FileCount, formatters.FormatSize(event.Source.TotalBytes),
			event.Dest.FileCount, formatters.FormatSize(event.Dest.TotalBytes)))

	case mirror.DryRunComplete:
		m.setCurrentDetail(fmt.Sprintf("%d files to process", event.FilesToProcess))
		m.snapshot = mirror.ProgressSnapshot{FilesToProcess: event.FilesToProcess}

	case mirror.CopyProgress:
		m.currentPath = event.Path
		m.snapshot = event.Snapshot

	case mirror.FolderComplete:
		m.finishCurrent(event.Result)
		m.running = false

	case mirror.SessionComplete:
		m.quit = true
		return m, tea.Quit
	}

	return m, m.bridge.ListenCmd()
}

func (m *Model) setCurrentDetail(detail string) {
	if len(m.rows) == 0 {
		return
	}
	m.rows[len(m.rows)-1].detail = detail
}

func (m *Model) finishCurrent(result mirror.FolderResult) {
	if len(m.rows) == 0 {
		return
	}

	row := &m.rows[len(m.rows)-1]
	row.done = true

	switch result.Status {
	case mirror.StatusSourceMissing:
		row.skipped = true
		row.detail = result.Status.String()
	case mirror.StatusSpawnFailed, mirror.StatusFailed:
		row.failed = true
		row.detail = result.Status.String()
	default:
		row.detail = fmt.Sprintf("%d copied, %d skipped, %d deleted, %s",
			result.Stats.FilesCopied, result.Stats.FilesSkipped,
			result.Stats.FilesDeleted, formatters.FormatSize(result.Stats.BytesCopied))
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quit {
		return ""
	}

	var view strings.Builder
	view.WriteString(TitleStyle().Render(fmt.Sprintf("Mirroring %d folders", m.folderCount)))
	view.WriteString("\n")

	for i, row := range m.rows {
		view.WriteString(m.renderRow(row, i == len(m.rows)-1))
	}

	view.WriteString(DimStyle().Render("ctrl+c to cancel"))
	view.WriteString("\n")

	return view.String()
}

func (m *Model) renderRow(row folderRow, last bool) string {
	var line strings.Builder

	switch {
	case row.done && row.failed:
		line.WriteString(ErrorStyle().Render("✗ " + row.name))
	case row.done && row.skipped:
		line.WriteString(DimStyle().Render("- " + row.name))
	case row.done:
		line.WriteString(SuccessStyle().Render("✓ " + row.name))
	default:
		line.WriteString("▶ " + row.name)
	}

	line.WriteString("  ")
	line.WriteString(DimStyle().Render(row.detail))
	line.WriteString("\n")

	if !row.done && last && m.running {
		line.WriteString(m.renderProgress())
	}

	return line.String()
}

func (m *Model) renderProgress() string {
	var section strings.Builder

	percent := m.snapshot.Percent()
	section.WriteString("  ")
	section.WriteString(RenderProgress(m.bar, percent/100))
	section.WriteString(fmt.Sprintf(" %.1f%% (%d / %d files)",
		percent, m.snapshot.FilesProcessed, m.snapshot.FilesToProcess))

	if eta := m.snapshot.ETA(); eta != "" {
		section.WriteString(" " + eta + " left")
	}
	section.WriteString("\n")

	if m.currentPath != "" {
		section.WriteString("  ")
		section.WriteString(DimStyle().Render(truncatePath(m.currentPath, m.width)))
		section.WriteString("\n")
	}

	return section.String()
}

// truncatePath shortens a path from the left so the file name stays visible.
func truncatePath(path string, width int) string {
	if width <= 0 {
		width = 80
	}

	limit := width - 4
	if limit < 8 || len(path) <= limit {
		return path
	}

	return "…" + path[len(path)-limit+1:]
}
