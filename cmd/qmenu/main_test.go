package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvim-tech/qmenu/pkg/runner"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	color.NoColor = true

	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

// writeMenu writes a config whose dmenu is a script printing the given line.
func writeMenu(t *testing.T, menu, selection string) string {
	t.Helper()
	dir := t.TempDir()

	script := filepath.Join(dir, "fake-dmenu")
	body := "#!/bin/sh\ncat >/dev/null\n"
	if selection == "" {
		body += "exit 1\n"
	} else {
		body += "printf '%s\\n' '" + selection + "'\n"
	}
	require.NoError(t, os.WriteFile(script, []byte(body), 0755))

	path := filepath.Join(dir, "menu.toml")
	data := menu + "\n[config.dmenu]\ncommand = \"" + script + "\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestVersion(t *testing.T) {
	res := run(t, "", "version")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, "qmenu version "+version+"\n", res.stdout)
}

func TestRunDryRun(t *testing.T) {
	path := writeMenu(t, "[menu]\nsay-hi = \"echo 'Hello, world!'\"", "say-hi")

	res := run(t, "", "--dry-run", path)
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "echo 'Hello, world!'\n", res.stdout)
}

func TestRunProxiesCommandStatus(t *testing.T) {
	path := writeMenu(t, "[menu]\nfail = \"exit 9\"", "fail")

	res := run(t, "", path)
	assert.Equal(t, 9, res.code)
}

func TestRunCancelled(t *testing.T) {
	path := writeMenu(t, "[menu]\na = \"echo a\"", "")

	res := run(t, "", path)
	assert.Equal(t, int(runner.ExitCancelled), res.code)
	assert.Empty(t, res.stderr)
}

func TestRunUnknownSelection(t *testing.T) {
	path := writeMenu(t, "[menu]\na = \"echo a\"", "b")

	res := run(t, "", path)
	assert.Equal(t, int(runner.ExitResolve), res.code)
	assert.Contains(t, res.stderr, "Error: ")
	assert.Contains(t, res.stderr, `unknown selection "b"`)
}

func TestRunConfigError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.toml")
	require.NoError(t, os.WriteFile(path, []byte("[menu]\na = \"x\"\na = \"y\"\n"), 0644))

	res := run(t, "", path)
	assert.Equal(t, int(runner.ExitConfig), res.code)
	assert.Contains(t, res.stderr, "Error: ")
}

func TestRunEmptyMenu(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.toml")
	require.NoError(t, os.WriteFile(path, []byte("[menu]\n"), 0644))

	res := run(t, "", path)
	assert.Equal(t, 0, res.code)
	assert.Empty(t, res.stdout)
}

func TestRunPipedConfig(t *testing.T) {
	res := run(t, "[menu]\n", "-")
	assert.Equal(t, 0, res.code)

	// not a terminal, so stdin is read without "-"
	res = run(t, "[menu\n")
	assert.Equal(t, int(runner.ExitConfig), res.code)
}

func TestTooManyArgs(t *testing.T) {
	res := run(t, "", "a.toml", "b.toml")
	assert.Equal(t, int(runner.ExitUsage), res.code)
}

func TestUnknownFlag(t *testing.T) {
	res := run(t, "", "--no-such-flag")
	assert.Equal(t, int(runner.ExitUsage), res.code)
}

func TestCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.toml")
	data := `
[menu]
first = { run = "echo first", group = 1 }
also = { run = "echo also", group = 1 }
plain = "echo plain"

[config]
selector = "dmenu"

[config.dmenu]
prompt = "run"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	res := run(t, "", "check", path)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "selector: dmenu")
	assert.Contains(t, res.stdout, "prompt:   run")
	assert.Contains(t, res.stdout, "  first\n  plain\n")
	assert.Contains(t, res.stdout, "hidden alternatives: also")
}

func TestCheckSelectorOverride(t *testing.T) {
	res := run(t, "[menu]\n", "check", "--selector", "rofi", "-")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "selector: rofi")
	assert.Contains(t, res.stdout, "(empty)")
}

func TestCheckInvalid(t *testing.T) {
	res := run(t, "[menu]\na = 1\n", "check", "-")
	assert.Equal(t, int(runner.ExitConfig), res.code)
	assert.Contains(t, res.stderr, "Error: ")
}

func TestCheckInvalidSelectorSettings(t *testing.T) {
	res := run(t, "[menu]\na = \"echo a\"\n\n[config.dmenu]\nlines = \"abc\"\n", "check", "--selector", "dmenu", "-")
	assert.Equal(t, int(runner.ExitConfig), res.code)
	assert.Contains(t, res.stderr, "config.dmenu")
}

func TestRunInvalidSelectorSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.toml")
	data := "[menu]\na = \"echo a\"\n\n[config.dmenu]\ncommand = \"/nonexistent/dmenu\"\nlines = \"abc\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	res := run(t, "", path)
	assert.Equal(t, int(runner.ExitConfig), res.code)
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qmenu", "config.toml")

	res := run(t, "", "init", "--output", path)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, path)

	res = run(t, "", "check", path)
	assert.Equal(t, 0, res.code, res.stderr)

	res = run(t, "", "init", "--output", path)
	assert.NotEqual(t, 0, res.code)
	assert.Contains(t, res.stderr, "already exists")
}
