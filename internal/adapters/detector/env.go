// Package detector provides environment detection for output mode selection.
package detector

import (
	"os"
	"strings"

	"go.trai.ch/datagen/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// OutputMode represents the rendering mode for export progress.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeTUI forces the interactive TUI renderer.
	ModeTUI
	// ModeLinear forces the linear CI renderer.
	ModeLinear
)

// String returns the flag value selecting the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// DetectEnvironment returns the recommended output mode based on the environment.
// Progress is drawn on stderr, so the TUI is only chosen when stderr is a terminal
// and no CI environment variable is set.
func DetectEnvironment() OutputMode {
	return detect(term.IsTerminal(int(os.Stderr.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) OutputMode {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return ModeLinear
	}
	return ModeTUI
}

// ParseMode validates a user supplied mode: "auto", "tui", "linear", "ci" or empty.
func ParseMode(flag string) (OutputMode, error) {
	switch strings.ToLower(strings.TrimSpace(flag)) {
	case "tui":
		return ModeTUI, nil
	case "linear", "ci":
		return ModeLinear, nil
	case "auto", "":
		return ModeAuto, nil
	default:
		return ModeAuto, zerr.With(zerr.Wrap(domain.ErrInvalidConfigValue, "unknown output mode"), "output_mode", flag)
	}
}

// ResolveMode applies the user override flag to auto-detection.
// Unknown flags fall back to the detected mode.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	mode, err := ParseMode(userFlag)
	if err != nil || mode == ModeAuto {
		return autoDetected
	}
	return mode
}
