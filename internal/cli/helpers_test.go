package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// testEnv isolates config and export directories for one test.
type testEnv struct {
	t         *testing.T
	ConfigDir string
	ExportDir string
}

// runResult holds the output of one in-process CLI invocation.
type runResult struct {
	Stdout string
	Stderr string
	Code   int
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	env := &testEnv{
		t:         t,
		ConfigDir: filepath.Join(dir, "config"),
		ExportDir: filepath.Join(dir, "export"),
	}
	t.Setenv("TWEENKIT_CONFIG_DIR", env.ConfigDir)
	t.Setenv("TWEENKIT_EXPORT_DIR", env.ExportDir)
	return env
}

// run executes tweenkit with args, feeding stdin.
func (e *testEnv) run(stdin string, args ...string) runResult {
	e.t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	code := run(root, args, &stderr)
	return runResult{Stdout: stdout.String(), Stderr: stderr.String(), Code: code}
}

// mustRun executes tweenkit and fails the test on a non-zero exit.
func (e *testEnv) mustRun(stdin string, args ...string) runResult {
	e.t.Helper()
	res := e.run(stdin, args...)
	require.Equal(e.t, exitSuccess, res.Code, "tweenkit %v failed\nstdout: %s\nstderr: %s", args, res.Stdout, res.Stderr)
	return res
}

// writeFile writes content under the test's temp directory and returns its path.
func (e *testEnv) writeFile(name, content string) string {
	e.t.Helper()
	path := filepath.Join(e.t.TempDir(), name)
	require.NoError(e.t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
