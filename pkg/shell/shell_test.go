package shell

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShell(stdout, stderr *bytes.Buffer) *Shell {
	s := New("")
	s.Stdin = strings.NewReader("")
	s.Stdout = stdout
	s.Stderr = stderr
	return s
}

func TestExecuteExitStatus(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    int
	}{
		{"success", "true", 0},
		{"failure", "false", 1},
		{"explicit code", "exit 42", 42},
		{"signal", "kill -TERM $$", 128 + 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			code, err := newTestShell(&out, &errOut).Execute(context.Background(), tt.command)
			require.NoError(t, err)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestExecuteOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	code, err := newTestShell(&out, &errOut).Execute(context.Background(), "echo 'Hello, world!'; echo oops >&2")
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "Hello, world!\n", out.String())
	assert.Equal(t, "oops\n", errOut.String())
}

func TestExecuteEnv(t *testing.T) {
	var out, errOut bytes.Buffer
	s := newTestShell(&out, &errOut)
	s.Env = []string{"QMENU_TEST=value"}

	_, err := s.Execute(context.Background(), `printf %s "$QMENU_TEST"`)
	require.NoError(t, err)
	assert.Equal(t, "value", out.String())
}

func TestExecuteMissingShell(t *testing.T) {
	var out, errOut bytes.Buffer
	s := newTestShell(&out, &errOut)
	s.Path = filepath.Join(t.TempDir(), "no-such-shell")

	_, err := s.Execute(context.Background(), "true")
	require.Error(t, err)
}

func TestExecuteContextDone(t *testing.T) {
	var out, errOut bytes.Buffer
	s := newTestShell(&out, &errOut)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	code, err := s.Execute(ctx, "exec sleep 5")
	require.NoError(t, err)
	assert.Equal(t, ExitInterrupted, code)

	code, err = s.Execute(ctx, "true")
	require.NoError(t, err)
	assert.Equal(t, ExitInterrupted, code, "an already cancelled context does not start the command")
}

func TestNewDefaultsToSh(t *testing.T) {
	assert.Equal(t, "sh", New("").Path)
	assert.Equal(t, "bash", New("bash").Path)
}
