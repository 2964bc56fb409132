// cmd/ampenv/exec_test.go
// TEST TYPE: Integration Tests (spawns /bin/sh)
// DEPENDENCIES: POSIX shell, environment variables
// PURPOSE: Test running commands under the workspace environment

//go:build unix

package main

import (
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// guardEnv pins the variables exec mutates in the live process environment
// so t.Setenv restores them after the test.
func guardEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PATH", os.Getenv("PATH"))
	t.Setenv("PYTHONPATH", "")
	t.Setenv("AMP", "")
}

func TestExecCmd_ChildInheritsEnvironment(t *testing.T) {
	isolate(t)
	guardEnv(t)
	workdir := t.TempDir()

	_, err := runCommand(t, "exec", "--dir", workdir, "--",
		"sh", "-c", `test "$AMP" = "." && test "$PYTHONPATH" = "`+workdir+`"`)
	require.NoError(t, err)
}

func TestExecCmd_ChildSeesPathPrefix(t *testing.T) {
	isolate(t)
	guardEnv(t)
	workdir := t.TempDir()

	_, err := runCommand(t, "exec", "--dir", workdir, "--",
		"sh", "-c", `case "$PATH" in "`+workdir+`:"*) exit 0 ;; *) exit 1 ;; esac`)
	require.NoError(t, err)
}

func TestExecCmd_PropagatesExitCode(t *testing.T) {
	isolate(t)
	guardEnv(t)
	workdir := t.TempDir()

	_, err := runCommand(t, "exec", "--dir", workdir, "--", "sh", "-c", "exit 3")
	require.Error(t, err)

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitCode(err))
}

func TestExecCmd_MissingCommand(t *testing.T) {
	isolate(t)
	guardEnv(t)
	workdir := t.TempDir()

	_, err := runCommand(t, "exec", "--dir", workdir, "--", "ampenv-no-such-binary")
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
}

func TestExecCmd_RequiresCommand(t *testing.T) {
	_, err := runCommand(t, "exec")
	assert.Error(t, err)
}

func TestExitCode_PlainError(t *testing.T) {
	assert.Equal(t, 1, exitCode(assert.AnError))
}
