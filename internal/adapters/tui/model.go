package tui

import (
	"bytes"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/datagen/internal/core/domain"
)

const (
	markerListWidthRatio = 0.35
	logPaneBorderWidth   = 4
)

// MarkerNode is a single marker in the UI list.
type MarkerNode struct {
	Name      string
	Status    domain.MarkerStatus
	Logs      bytes.Buffer
	StartTime time.Time
	EndTime   time.Time
	Err       error
}

// Elapsed returns the marker's run time, measured up to now while it is running.
func (n *MarkerNode) Elapsed(now time.Time) time.Duration {
	switch {
	case n.StartTime.IsZero():
		return 0
	case n.EndTime.IsZero():
		return now.Sub(n.StartTime)
	default:
		return n.EndTime.Sub(n.StartTime)
	}
}

// Model represents the main TUI state.
type Model struct {
	Markers      []*MarkerNode
	MarkerMap    map[string]*MarkerNode
	SpanMap      map[string]*MarkerNode
	Viewport     viewport.Model
	ActiveName   string
	SelectedIdx  int
	ListOffset   int
	ListHeight   int
	FollowMode   bool
	TickInterval time.Duration
	Now          func() time.Time
}

// Init starts the elapsed time ticker unless it is disabled.
//
//nolint:gocritic // hugeParam ignored
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	if m.TickInterval <= 0 {
		return nil
	}
	return tea.Tick(m.TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Counts returns the number of completed and failed markers.
func (m *Model) Counts() (done, failed int) {
	for _, n := range m.Markers {
		switch n.Status {
		case domain.MarkerStatusCompleted:
			done++
		case domain.MarkerStatusFailed:
			failed++
		}
	}
	return done, failed
}

func (m *Model) ensureVisible() {
	if m.ListHeight <= 0 {
		return
	}
	if m.SelectedIdx < m.ListOffset {
		m.ListOffset = m.SelectedIdx
	} else if m.SelectedIdx >= m.ListOffset+m.ListHeight {
		m.ListOffset = m.SelectedIdx - m.ListHeight + 1
	}
}

func (m *Model) selected() *MarkerNode {
	if m.SelectedIdx >= 0 && m.SelectedIdx < len(m.Markers) {
		return m.Markers[m.SelectedIdx]
	}
	return nil
}

// selectIndex moves the cursor to idx and shows that marker's logs.
func (m *Model) selectIndex(idx int) {
	m.SelectedIdx = idx
	m.ensureVisible()
	if node := m.selected(); node != nil {
		m.ActiveName = node.Name
		m.refreshLogs(node)
	}
}

func (m *Model) refreshLogs(node *MarkerNode) {
	if node.Name != m.ActiveName {
		return
	}
	atBottom := m.Viewport.AtBottom()
	m.Viewport.SetContent(node.Logs.String())
	if m.FollowMode || atBottom {
		m.Viewport.GotoBottom()
	}
}

func (m *Model) indexOf(name string) int {
	for i, n := range m.Markers {
		if n.Name == name {
			return i
		}
	}
	return -1
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop,gocritic // hugeParam ignored, cyclop ignored
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "k", "up":
			if m.SelectedIdx > 0 {
				m.FollowMode = false
				m.selectIndex(m.SelectedIdx - 1)
			}
		case "j", "down":
			if m.SelectedIdx < len(m.Markers)-1 {
				m.FollowMode = false
				m.selectIndex(m.SelectedIdx + 1)
			}
		case "esc":
			m.FollowMode = true
			for i, n := range m.Markers {
				if n.Status == domain.MarkerStatusRunning {
					m.selectIndex(i)
					break
				}
			}
		default:
			m.Viewport, cmd = m.Viewport.Update(msg)
		}

	case tea.WindowSizeMsg:
		listWidth := int(float64(msg.Width) * markerListWidthRatio)
		headerHeight := lipgloss.Height(titleStyle.Render("MARKERS"))

		m.Viewport.Width = msg.Width - listWidth - logPaneBorderWidth
		m.Viewport.Height = msg.Height - headerHeight
		m.ListHeight = msg.Height - lipgloss.Height(titleStyle.Render("MARKERS")+"\n\n")
		m.ensureVisible()

	case tickMsg:
		cmd = m.tick()

	case MsgInitMarkers:
		m.Markers = make([]*MarkerNode, len(msg.Markers))
		m.MarkerMap = make(map[string]*MarkerNode, len(msg.Markers))
		m.SpanMap = make(map[string]*MarkerNode)
		for i, name := range msg.Markers {
			m.Markers[i] = &MarkerNode{Name: name, Status: domain.MarkerStatusPending}
			m.MarkerMap[name] = m.Markers[i]
		}

	case MsgMarkerStart:
		if node, ok := m.MarkerMap[msg.Name]; ok {
			node.Status = domain.MarkerStatusRunning
			node.StartTime = msg.StartTime
			m.SpanMap[msg.SpanID] = node

			if m.FollowMode {
				m.selectIndex(m.indexOf(msg.Name))
			}
		}

	case MsgMarkerLog:
		if node, ok := m.SpanMap[msg.SpanID]; ok {
			node.Logs.Write(msg.Data)
			m.refreshLogs(node)
		}

	case MsgMarkerComplete:
		if node, ok := m.SpanMap[msg.SpanID]; ok {
			node.EndTime = msg.EndTime
			node.Err = msg.Err
			if msg.Err != nil {
				node.Status = domain.MarkerStatusFailed
				node.Logs.WriteString(msg.Err.Error() + "\n")
				m.refreshLogs(node)
			} else {
				node.Status = domain.MarkerStatusCompleted
			}
		}
	}

	return m, cmd
}
