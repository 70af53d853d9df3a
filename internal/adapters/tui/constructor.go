// Package tui provides an interactive terminal view of a running export.
package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/datagen/internal/ui/output"
)

const defaultTickInterval = 100 * time.Millisecond

// NewModel creates a new TUI model with default settings.
// The lipgloss color profile follows the output w is drawn to.
func NewModel(w io.Writer) Model {
	out := output.New(w)
	lipgloss.SetColorProfile(out.Profile)

	return Model{
		Markers:      make([]*MarkerNode, 0),
		MarkerMap:    make(map[string]*MarkerNode),
		SpanMap:      make(map[string]*MarkerNode),
		Viewport:     viewport.New(0, 0),
		FollowMode:   true,
		TickInterval: defaultTickInterval,
		Now:          time.Now,
	}
}

// WithDisableTick returns a copy of the model without the elapsed time ticker.
//
//nolint:gocritic // hugeParam ignored
func (m Model) WithDisableTick() Model {
	m.TickInterval = 0
	return m
}
