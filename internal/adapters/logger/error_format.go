package logger

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// messager describes an error that can report its own message without the chain,
// as *zerr.Error does.
type messager interface {
	Message() string
}

// metadater describes an error carrying key/value annotations, as *zerr.Error does.
type metadater interface {
	Metadata() map[string]any
}

type errorEntry struct {
	message  string
	metadata map[string]any
}

// collectErrorEntries flattens an error into one entry per level of its cause chain.
// Joined errors contribute the entries of each member in order.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry

	for err != nil {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, member := range joined.Unwrap() {
				entries = append(entries, collectErrorEntries(member)...)
			}
			return entries
		}

		m, ok := err.(messager)
		if !ok {
			return append(entries, errorEntry{message: err.Error()})
		}

		entry := errorEntry{message: m.Message()}
		if md, ok := err.(metadater); ok {
			entry.metadata = md.Metadata()
		}
		entries = append(entries, entry)
		err = errors.Unwrap(err)
	}

	return entries
}

// formatErrorEntries renders entries as a headline followed by an indented cause list.
func formatErrorEntries(entries []errorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.message+formatMetadata(entry.metadata), "\n")

		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
	}

	return strings.Join(lines, "\n")
}

// formatMetadata renders metadata as " (k1=v1, k2=v2)" with sorted keys.
func formatMetadata(metadata map[string]any) string {
	if len(metadata) == 0 {
		return ""
	}

	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, metadata[k])
	}
	return " (" + strings.Join(parts, ", ") + ")"
}
