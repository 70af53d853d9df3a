package tui

import "time"

// MsgInitMarkers is sent once the export plan is known.
type MsgInitMarkers struct {
	Markers []string
}

// MsgMarkerStart is sent when a marker export span starts.
type MsgMarkerStart struct {
	SpanID    string
	Name      string
	StartTime time.Time
}

// MsgMarkerLog carries span output for a marker.
type MsgMarkerLog struct {
	SpanID string
	Data   []byte
}

// MsgMarkerComplete is sent when a marker export span ends.
type MsgMarkerComplete struct {
	SpanID  string
	EndTime time.Time
	Err     error
}

type tickMsg time.Time
