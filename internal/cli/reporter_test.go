package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvim-tech/qmenu/pkg/config"
)

func withoutColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestFormatError(t *testing.T) {
	withoutColor(t)

	assert.Equal(t, "Error: boom.", FormatError(errors.New("boom")))
	assert.Equal(t, "Error: already punctuated.", FormatError(errors.New("already punctuated.")))
}

func TestReportWritesMessage(t *testing.T) {
	withoutColor(t)

	var out bytes.Buffer
	r := NewErrorReporter(nil)
	r.Out = &out

	r.Report(errors.New("can't read config file"), nil)
	assert.Equal(t, "Error: can't read config file.\n", out.String())
}

func TestReportNil(t *testing.T) {
	var out bytes.Buffer
	r := NewErrorReporter(nil)
	r.Out = &out

	r.Report(nil, nil)
	assert.Empty(t, out.String())
}

func TestReportNotifies(t *testing.T) {
	withoutColor(t)

	var (
		out      bytes.Buffer
		titles   []string
		messages []string
	)
	r := NewErrorReporter(nil)
	r.Out = &out
	r.Notify = func(_ *config.NotificationConfig, title, message string) {
		titles = append(titles, title)
		messages = append(messages, message)
	}

	r.Report(errors.New("first"), &config.NotificationConfig{Enabled: false})
	r.Report(errors.New("second"), &config.NotificationConfig{Enabled: true})

	require.Len(t, messages, 1)
	assert.Equal(t, "qmenu", titles[0])
	assert.Equal(t, "second", messages[0])
}
