// Package output creates termenv outputs with the color profile rules shared by
// the logger and both renderers.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// NoColor reports whether the NO_COLOR convention disables colored output.
func NoColor() bool {
	return os.Getenv("NO_COLOR") != ""
}

// ColorProfile returns the profile for interactive output.
// NO_COLOR forces Ascii; otherwise the terminal's capabilities are detected.
func ColorProfile() termenv.Profile {
	if NoColor() {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ColorProfileANSI returns the profile for CI and other non-interactive output.
// NO_COLOR forces Ascii; otherwise basic ANSI colors are used.
func ColorProfileANSI() termenv.Profile {
	if NoColor() {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// New creates a termenv.Output on w using ColorProfile. A nil w means stderr.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return NewWithProfile(w, ColorProfile, opts...)
}

// NewWithProfile creates a termenv.Output on w with the profile chosen by profileFn.
// A nil w means stderr.
func NewWithProfile(w io.Writer, profileFn func() termenv.Profile, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(profileFn()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
