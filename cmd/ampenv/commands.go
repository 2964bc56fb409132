package main

import (
	stderrors "errors"
	"fmt"
	"os"
	osexec "os/exec"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/ampenv/pkg/config"
	"github.com/arthur-debert/ampenv/pkg/env"
	"github.com/arthur-debert/ampenv/pkg/errors"
	"github.com/arthur-debert/ampenv/pkg/logging"
	"github.com/arthur-debert/ampenv/pkg/shell"
	"github.com/arthur-debert/ampenv/pkg/style"
)

// addSnapshotFlags registers the flags shared by every command that
// computes an environment snapshot.
func addSnapshotFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("dir", "d", "", "Workspace root (default: current directory)")
	cmd.Flags().Bool("export-mypypath", false, "Also export MYPYPATH (computed either way)")
	cmd.Flags().Bool("dedupe", false, "Drop path entries already present earlier in the list")
}

// buildSnapshot loads configuration for the workspace and computes the
// snapshot against the live environment. Flags override config only when
// set explicitly.
func buildSnapshot(cmd *cobra.Command) (*env.Snapshot, error) {
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrWorkdirResolve,
				"failed to determine working directory")
		}
		dir = cwd
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("export-mypypath") {
		cfg.ExportMypyPath, _ = cmd.Flags().GetBool("export-mypypath")
	}
	if cmd.Flags().Changed("dedupe") {
		cfg.Dedupe, _ = cmd.Flags().GetBool("dedupe")
	}

	return env.Initialize(dir, env.EnvironMap(os.Environ()), cfg.Options())
}

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Print eval-able shell code for the workspace environment",
		Long: `Init computes the workspace environment and prints it as shell code,
so the calling shell can absorb it:

  eval "$(ampenv init)"

Nothing is printed to stdout besides the export statements.`,
		Example: `  eval "$(ampenv init)"
  ampenv init --shell fish | source
  eval "$(ampenv init --dir ~/src/workspace --dedupe)"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.init")

			snap, err := buildSnapshot(cmd)
			if err != nil {
				return err
			}

			shellName, _ := cmd.Flags().GetString("shell")
			logger.Info().Str("workdir", snap.WorkDir).Str("shell", shellName).Msg("Rendering environment exports")

			fmt.Fprintln(cmd.OutOrStdout(), shell.ExportLines(snap, shellName))
			return nil
		},
	}
	addSnapshotFlags(cmd)
	cmd.Flags().StringP("shell", "s", "bash", "Shell type (bash, zsh, fish)")
	return cmd
}

func newExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec [flags] -- command [args...]",
		Short: "Run a command under the workspace environment",
		Long: `Exec computes the workspace environment, merges it into the process
environment, and runs the given command. The command inherits the derived
PYTHONPATH, PATH and AMP variables; its exit code is propagated.`,
		Example: `  ampenv exec -- pytest dev_scripts/testing
  ampenv exec --export-mypypath -- mypy core/`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.exec")

			snap, err := buildSnapshot(cmd)
			if err != nil {
				return err
			}

			// Merge into the live environment at the entry point; the
			// child inherits it.
			if err := snap.Apply(); err != nil {
				return err
			}

			logger.Info().Str("workdir", snap.WorkDir).Strs("command", args).Msg("Running command under workspace environment")

			child := osexec.Command(args[0], args[1:]...)
			child.Stdin = os.Stdin
			child.Stdout = cmd.OutOrStdout()
			child.Stderr = cmd.ErrOrStderr()
			if err := child.Run(); err != nil {
				var exitErr *osexec.ExitError
				if stderrors.As(err, &exitErr) {
					// Propagate the child's exit status untouched
					return err
				}
				return errors.Wrapf(err, errors.ErrExecFailed, "failed to run %s", args[0])
			}
			return nil
		},
	}
	addSnapshotFlags(cmd)
	return cmd
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display the computed workspace environment",
		Long: `Show computes the workspace environment and prints each variable with
its path entries, one per line. Output is styled when stdout is a
terminal and plain otherwise.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := buildSnapshot(cmd)
			if err != nil {
				return err
			}

			styled := false
			if f, ok := cmd.OutOrStdout().(*os.File); ok {
				styled = style.IsTerminal(f)
			}
			fmt.Fprint(cmd.OutOrStdout(), style.RenderSnapshot(snap, styled))
			return nil
		},
	}
	addSnapshotFlags(cmd)
	return cmd
}

func newSnippetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snippet",
		Short: "Print the shell profile line that enables ampenv",
		Long: `Snippet prints the line to add to your shell profile so that new
sessions initialize the workspace environment automatically.`,
		Example: `  ampenv snippet >> ~/.bashrc
  ampenv snippet --shell fish >> ~/.config/fish/config.fish`,
		RunE: func(cmd *cobra.Command, args []string) error {
			shellName, _ := cmd.Flags().GetString("shell")
			fmt.Fprintln(cmd.OutOrStdout(), shell.GetProfileSnippet(shellName))
			return nil
		},
	}
	cmd.Flags().StringP("shell", "s", "bash", "Shell type (bash, zsh, fish)")
	return cmd
}

func newGenConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gen-config",
		Short: "Print a commented default configuration file",
		Long: `Gen-config prints the default configuration as TOML with every value
commented out, ready to be saved as .ampenv.toml in the workspace root.`,
		Example: `  ampenv gen-config > .ampenv.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateConfigContent()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	}
}
