package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/datagen/internal/core/domain"
	"go.trai.ch/datagen/internal/ui/style"
)

// View renders the UI.
//
//nolint:gocritic // hugeParam ignored
func (m *Model) View() string {
	if m.ListHeight == 0 {
		return "Initializing..."
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.markerList(),
		m.logPane(),
	)
}

func (m *Model) markerList() string {
	var s strings.Builder

	done, failed := m.Counts()
	title := titleStyle
	if failed > 0 {
		title = failureTitleStyle
	}
	s.WriteString(title.Render(fmt.Sprintf("MARKERS %d/%d", done+failed, len(m.Markers))) + "\n\n")

	start := m.ListOffset
	end := min(m.ListOffset+m.ListHeight, len(m.Markers))
	start = min(start, end)

	now := m.now()
	for i := start; i < end; i++ {
		s.WriteString(m.renderMarkerRow(i, m.Markers[i], now) + "\n")
	}

	return listStyle.Render(s.String())
}

func (m *Model) renderMarkerRow(index int, node *MarkerNode, now time.Time) string {
	rowStyle := statusStyle(node.Status)

	cursor := "  "
	if index == m.SelectedIdx {
		cursor = selectedStyle.Render("> ")
		if !node.Status.IsTerminal() {
			rowStyle = selectedStyle
		}
	}

	content := fmt.Sprintf("%s %s", statusIcon(node.Status), node.Name)
	if elapsed := node.Elapsed(now); elapsed > 0 {
		content += fmt.Sprintf(" (%v)", elapsed.Round(100*time.Millisecond))
	}
	return cursor + rowStyle.Render(content)
}

func statusIcon(status domain.MarkerStatus) string {
	switch status {
	case domain.MarkerStatusRunning:
		return style.Dot
	case domain.MarkerStatusCompleted:
		return style.Check
	case domain.MarkerStatusFailed:
		return style.Cross
	default:
		return style.Circle
	}
}

func statusStyle(status domain.MarkerStatus) lipgloss.Style {
	switch status {
	case domain.MarkerStatusRunning:
		return markerRunningStyle
	case domain.MarkerStatusCompleted:
		return markerDoneStyle
	case domain.MarkerStatusFailed:
		return markerErrorStyle
	default:
		return markerPendingStyle
	}
}

func (m *Model) logPane() string {
	header := titleStyle.Render("LOGS (Waiting...)")
	if m.ActiveName != "" {
		mode := " (Manual)"
		if m.FollowMode {
			mode = " (Following)"
		}
		header = titleStyle.Render("LOGS: " + m.ActiveName + mode)
	}

	return logStyle.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			m.Viewport.View(),
		),
	)
}

func (m *Model) now() time.Time {
	if m.Now == nil {
		return time.Now()
	}
	return m.Now()
}
