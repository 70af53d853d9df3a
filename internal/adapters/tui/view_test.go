package tui_test

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/datagen/internal/adapters/tui"
	"go.trai.ch/zerr"
)

func TestView_Initializing(t *testing.T) {
	model := tui.NewModel(io.Discard)
	assert.Equal(t, "Initializing...", model.View())
}

func TestView_MarkerListAndLogs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := initModel(t)
	m.Now = func() time.Time { return start.Add(1500 * time.Millisecond) }
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 20})

	output := m.View()
	assert.Contains(t, output, "MARKERS 0/3")
	assert.Contains(t, output, "LOGS (Waiting...)")
	assert.Contains(t, output, "○ "+cardinal)

	m, _ = send(t, m, tui.MsgMarkerStart{SpanID: spanID1, Name: cardinal, StartTime: start})
	m, _ = send(t, m, tui.MsgMarkerLog{SpanID: spanID1, Data: []byte("loading de\n")})

	output = m.View()
	assert.Contains(t, output, "LOGS: "+cardinal+" (Following)")
	assert.Contains(t, output, "● "+cardinal+" (1.5s)")
	assert.Contains(t, output, "loading de")

	m, _ = send(t, m, tui.MsgMarkerComplete{SpanID: spanID1, EndTime: start.Add(time.Second)})
	m, _ = send(t, m, tui.MsgMarkerStart{SpanID: spanID2, Name: ordinal, StartTime: start})
	m, _ = send(t, m, tui.MsgMarkerComplete{SpanID: spanID2, EndTime: start, Err: zerr.New("broken")})

	output = m.View()
	assert.Contains(t, output, "MARKERS 2/3")
	assert.Contains(t, output, "✓ "+cardinal+" (1s)")
	assert.Contains(t, output, "✗ "+ordinal)
}

func TestView_ListScrolls(t *testing.T) {
	m := initModel(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 4})
	m.ListHeight = 1

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})

	assert.Equal(t, 2, m.ListOffset)
	output := m.View()
	assert.Contains(t, output, symbols)
	assert.NotContains(t, output, cardinal)
}
