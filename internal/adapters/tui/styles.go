package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/datagen/internal/ui/style"
)

var (
	markerPendingStyle = lipgloss.NewStyle().
				Foreground(style.Slate)

	markerRunningStyle = lipgloss.NewStyle().
				Foreground(style.Iris).
				Bold(true)

	markerDoneStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	markerErrorStyle = lipgloss.NewStyle().
				Foreground(style.Red)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Iris).
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	failureTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				Background(style.Red).
				Foreground(style.White)

	listStyle = lipgloss.NewStyle().
			MarginRight(2)

	logStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(style.Slate).
			PaddingLeft(1)
)
