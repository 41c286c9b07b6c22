package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/omnioperator/omnilog/config"
	"github.com/omnioperator/omnilog/log"
)

func run(t *testing.T, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer

	cmd := newRootCommand(&stdout, &stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestCheckDefaults(t *testing.T) {
	stdout, _, err := run(t, "check")
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, json.Unmarshal([]byte(stdout), &cfg))
	require.Equal(t, config.Default(), cfg)
}

func TestCheckInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "omnilog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: xml\n"), 0o600))

	_, _, err := run(t, "check", "--config", path)
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestEmit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "omnilog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("level: warn\noutput: stdout\n"), 0o600))

	stdout, stderr, err := run(t, "-c", path, "emit", "error", "executor", "lost")
	require.NoError(t, err)
	require.Regexp(t, `^\S+ ERROR executor lost\n$`, stdout)
	require.Empty(t, stderr)

	stdout, _, err = run(t, "-c", path, "emit", "info", "suppressed")
	require.NoError(t, err)
	require.Empty(t, stdout)
}

func TestEmitUnknownLevel(t *testing.T) {
	_, _, err := run(t, "emit", "loud", "message")
	require.ErrorContains(t, err, "unknown log level")
}

func TestEmitRejectsNonRecordLevels(t *testing.T) {
	stdout, stderr, err := run(t, "emit", "off", "hello")
	require.ErrorIs(t, err, errLevelOff)
	require.Empty(t, stdout)
	require.Empty(t, stderr)

	if log.TraceEnabled {
		return
	}

	_, _, err = run(t, "emit", "trace", "hello")
	require.ErrorIs(t, err, errTraceDisabled)
}

func TestEmitLogsInvocation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "omnilog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("level: debug\noutput: stdout\n"), 0o600))

	stdout, _, err := run(t, "--config", path, "emit", "info", "started")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasSuffix(lines[0], " DEBUG Invoked as: emit --config "+path+" info started"), lines[0])
	require.NotContains(t, lines[0], "-test.")
	require.Regexp(t, `^\S+ INFO started$`, lines[1])
}
