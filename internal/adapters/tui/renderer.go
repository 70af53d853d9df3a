package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/datagen/internal/core/ports"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer wraps the Bubble Tea model as a ports.Renderer.
type Renderer struct {
	program *tea.Program
	model   *Model
	errCh   chan error
}

// NewRenderer creates a new TUI renderer.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	return &Renderer{
		program: tea.NewProgram(model, opts...),
		model:   model,
		errCh:   make(chan error, 1),
	}
}

// Start launches the TUI in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
	return nil
}

// Stop signals the TUI to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the TUI has terminated.
func (r *Renderer) Wait() error {
	return <-r.errCh
}

// OnPlanEmit forwards the planned markers to the TUI.
func (r *Renderer) OnPlanEmit(markers []string) {
	r.program.Send(MsgInitMarkers{Markers: markers})
}

// OnTaskStart forwards marker start events to the TUI.
func (r *Renderer) OnTaskStart(spanID, name string, startTime time.Time) {
	r.program.Send(MsgMarkerStart{SpanID: spanID, Name: name, StartTime: startTime})
}

// OnTaskLog forwards marker output to the TUI.
func (r *Renderer) OnTaskLog(spanID string, data []byte) {
	r.program.Send(MsgMarkerLog{SpanID: spanID, Data: data})
}

// OnTaskComplete forwards marker completion events to the TUI.
func (r *Renderer) OnTaskComplete(spanID string, endTime time.Time, err error) {
	r.program.Send(MsgMarkerComplete{SpanID: spanID, EndTime: endTime, Err: err})
}
