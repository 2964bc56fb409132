package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/arthur-debert/ampenv/pkg/style"
)

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// reportError prints the failure to stderr; with SilenceErrors set on the
// root command this is the only place errors become visible.
func reportError(w io.Writer, err error) {
	fmt.Fprintln(w, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
}

// exitCode propagates a child process exit status, everything else is 1
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
