package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/datagen/internal/ui/output"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.True(t, output.NoColor())
	assert.Equal(t, termenv.Ascii, output.ColorProfile())
	assert.Equal(t, termenv.Ascii, output.ColorProfileANSI())
}

func TestColorProfileANSI(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.False(t, output.NoColor())
	assert.Equal(t, termenv.ANSI, output.ColorProfileANSI())
}

func TestNew_WritesThrough(t *testing.T) {
	var buf bytes.Buffer
	out := output.New(&buf)

	_, _ = out.WriteString("locale data")
	assert.Equal(t, "locale data", buf.String())
}

func TestNewWithProfile_NilWriter(t *testing.T) {
	out := output.NewWithProfile(nil, output.ColorProfileANSI)
	assert.NotNil(t, out)
}
