package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/wflog/pkg/core/config"
	"github.com/msto63/wflog/pkg/core/logging"
	"github.com/msto63/wflog/pkg/core/version"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// run executes wflog with a config file whose level is info
func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()

	path := filepath.Join(t.TempDir(), "wflog.toml")
	require.NoError(t, os.WriteFile(path, []byte("[logging]\nlevel = \"info\"\n"), 0o644))
	t.Setenv(config.EnvConfig, path)
	t.Setenv(config.EnvLevel, "")

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	rootCmd := NewRootCmd()
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestEmit_DefaultThreshold(t *testing.T) {
	r := run(t, "", "emit", "warn", "net", "retrying")
	require.NoError(t, r.err)
	assert.Equal(t, "[WARN ] net: retrying\n", r.stdout)
	assert.Empty(t, r.stderr)

	r = run(t, "", "emit", "debug", "auth", "token", "refreshed")
	require.NoError(t, r.err)
	assert.Empty(t, r.stdout)
}

func TestEmit_LevelFlag(t *testing.T) {
	r := run(t, "", "--level", "5", "emit", "debug", "auth", "token refreshed")
	require.NoError(t, r.err)
	assert.Equal(t, "[DEBUG] auth: token refreshed\n", r.stdout)
}

func TestEmit_FatalEmptyMessage(t *testing.T) {
	r := run(t, "", "--level", "fatal", "emit", "fatal", "core")
	require.NoError(t, r.err)
	assert.Equal(t, "[FATAL] core: \n", r.stderr)
	assert.Empty(t, r.stdout)
}

func TestEmit_Errors(t *testing.T) {
	r := run(t, "", "emit", "loud", "core", "x")
	assert.ErrorIs(t, r.err, logging.ErrInvalidLevel)

	r = run(t, "", "--level", "9", "emit", "info", "core", "x")
	assert.ErrorIs(t, r.err, logging.ErrInvalidLevel)

	r = run(t, "", "emit", "info")
	assert.Error(t, r.err)
}

func TestEmit_ConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wflog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: trace\n  single_stream: true\n"), 0o644))

	r := run(t, "", "--config", path, "emit", "error", "db", "lost connection")
	require.NoError(t, r.err)
	assert.Equal(t, "[ERROR] db: lost connection\n", r.stdout)
	assert.Empty(t, r.stderr)
}

func TestPipe(t *testing.T) {
	r := run(t, "first\n\nthird\n", "pipe", "--origin", "app", "--severity", "warn")
	require.NoError(t, r.err)
	assert.Equal(t, "[WARN ] app: first\n[WARN ] app: \n[WARN ] app: third\n", r.stdout)

	r = run(t, "hidden\n", "pipe", "--severity", "trace")
	require.NoError(t, r.err)
	assert.Empty(t, r.stdout)

	r = run(t, "x\n", "pipe", "--severity", "nope")
	assert.ErrorIs(t, r.err, logging.ErrInvalidLevel)
}

func TestPipe_Watch(t *testing.T) {
	r := run(t, "line\n", "pipe", "--watch", "--origin", "app")
	require.NoError(t, r.err)
	assert.Equal(t, "[INFO ] app: line\n", r.stdout)
}

func TestLevels(t *testing.T) {
	r := run(t, "", "--level", "debug", "levels")
	require.NoError(t, r.err)

	lines := strings.Split(strings.TrimSuffix(r.stdout, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "  1  fatal  [FATAL]  stderr", lines[0])
	assert.Equal(t, "  3  warn   [WARN ]  stdout", lines[2])
	assert.Equal(t, "* 5  debug  [DEBUG]  stdout", lines[4])
}

func TestLevel(t *testing.T) {
	r := run(t, "", "level")
	require.NoError(t, r.err)
	assert.Equal(t, "info (4)\n", r.stdout)

	r = run(t, "", "level", "trace")
	require.NoError(t, r.err)
	assert.Equal(t, "trace (6)\n", r.stdout)

	r = run(t, "", "level", "2")
	require.NoError(t, r.err)
	assert.Equal(t, "error (2)\n", r.stdout)
}

func TestLevel_Rejected(t *testing.T) {
	for _, value := range []string{"0", "7", "-1", "100", "9", "verbose"} {
		r := run(t, "", "level", "--", value)
		require.Error(t, r.err, value)
		assert.ErrorIs(t, r.err, logging.ErrInvalidLevel)
		assert.Contains(t, r.err.Error(), "logging level "+value+" does not exist")
		assert.Contains(t, r.err.Error(), "(threshold remains info)")
		assert.Empty(t, r.stdout)
	}
}

func TestVersion(t *testing.T) {
	r := run(t, "", "version")
	require.NoError(t, r.err)
	assert.Equal(t, version.String(), r.stdout)
}
