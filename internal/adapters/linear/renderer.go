// Package linear provides a synchronous, line-buffered renderer for CI environments.
package linear

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/datagen/internal/core/ports"
	"go.trai.ch/datagen/internal/ui/output"
	"go.trai.ch/datagen/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer for CI and other non-interactive environments.
// It writes chronological lines prefixed with the marker name.
type Renderer struct {
	w      io.Writer
	output *termenv.Output

	mu      sync.Mutex
	markers map[string]*markerState // spanID -> marker state
	failed  int
	done    int
}

type markerState struct {
	name      string
	startTime time.Time
	partial   bytes.Buffer
}

// NewRenderer creates a Renderer writing to w (stderr when nil) with basic ANSI colors.
func NewRenderer(w io.Writer) *Renderer {
	return NewRendererWithProfile(w, output.ColorProfileANSI)
}

// NewRendererWithProfile creates a Renderer whose color profile is chosen by profileFn.
func NewRendererWithProfile(w io.Writer, profileFn func() termenv.Profile) *Renderer {
	out := output.NewWithProfile(w, profileFn)
	return &Renderer{
		w:       out,
		output:  out,
		markers: make(map[string]*markerState),
	}
}

// Start is a no-op for the linear renderer.
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop flushes partial lines of markers that never completed and prints a summary.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pending := slices.SortedFunc(maps.Values(r.markers), func(a, b *markerState) int {
		return cmp.Or(a.startTime.Compare(b.startTime), cmp.Compare(a.name, b.name))
	})
	for _, m := range pending {
		r.flushPartialLocked(m)
	}

	if r.done > 0 || r.failed > 0 {
		_, _ = fmt.Fprintf(r.w, "%d marker(s) exported, %d failed\n", r.done, r.failed)
	}
	return nil
}

// Wait is a no-op for the linear renderer.
func (r *Renderer) Wait() error {
	return nil
}

// OnPlanEmit prints the number of planned markers.
func (r *Renderer) OnPlanEmit(markers []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.w, "Exporting %d marker(s)\n", len(markers))
}

// OnTaskStart prints a marker start line.
func (r *Renderer) OnTaskStart(spanID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.markers[spanID] = &markerState{name: name, startTime: startTime}
	_, _ = fmt.Fprintf(r.w, "%s Starting...\n", r.prefix(name))
}

// OnTaskLog prints complete lines with the marker prefix and holds back a partial line.
func (r *Renderer) OnTaskLog(spanID string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.markers[spanID]
	if !ok {
		return
	}

	m.partial.Write(data)
	for {
		idx := bytes.IndexByte(m.partial.Bytes(), '\n')
		if idx < 0 {
			break
		}
		r.printLineLocked(m.name, m.partial.Next(idx+1))
	}
}

// OnTaskComplete flushes the marker's partial line and prints its outcome.
func (r *Renderer) OnTaskComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.markers[spanID]
	if !ok {
		return
	}
	r.flushPartialLocked(m)
	delete(r.markers, spanID)

	duration := endTime.Sub(m.startTime).Round(time.Millisecond)
	if err != nil {
		r.failed++
		symbol := r.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.w, "%s %s Failed after %v: %v\n", r.prefix(m.name), symbol, duration, err)
		return
	}

	r.done++
	symbol := r.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
	_, _ = fmt.Fprintf(r.w, "%s %s Completed in %v\n", r.prefix(m.name), symbol, duration)
}

func (r *Renderer) prefix(name string) string {
	return r.output.String("[" + name + "]").Faint().String()
}

// flushPartialLocked prints a held back partial line. Must be called with r.mu held.
func (r *Renderer) flushPartialLocked(m *markerState) {
	if m.partial.Len() > 0 {
		r.printLineLocked(m.name, m.partial.Next(m.partial.Len()))
	}
}

// printLineLocked prints one line with the marker prefix. Must be called with r.mu held.
func (r *Renderer) printLineLocked(name string, line []byte) {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	if len(line) == 0 {
		return
	}
	_, _ = fmt.Fprintf(r.w, "%s %s\n", r.prefix(name), line)
}
