// Package env computes the workspace environment snapshot.
//
// Initialization is a pure function from a working directory and a
// current environment to a Snapshot value. Nothing touches the live
// process environment except Snapshot.Apply, which the CLI entry point
// calls exactly once.
package env

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/ampenv/pkg/errors"
	"github.com/arthur-debert/ampenv/pkg/logging"
)

// Environment variable names managed by ampenv
const (
	// EnvPythonPath is the Python module search path
	EnvPythonPath = "PYTHONPATH"

	// EnvMypyPath is the mypy module search path. It is computed alongside
	// PYTHONPATH but only exported when Options.ExportMypyPath is set.
	EnvMypyPath = "MYPYPATH"

	// EnvPath is the executable search path
	EnvPath = "PATH"

	// EnvMarker marks a shell session as initialized for this workspace
	EnvMarker = "AMP"
)

// DefaultMarker is the value EnvMarker is set to unless configured otherwise
const DefaultMarker = "."

// ScriptDirs are the workspace subdirectories prepended to PATH, in order.
// The leading "." entry puts the workspace root itself on PATH.
var ScriptDirs = []string{
	".",
	"dev_scripts",
	"dev_scripts/aws",
	"dev_scripts/git",
	"dev_scripts/infra",
	"dev_scripts/install",
	"dev_scripts/notebooks",
	"dev_scripts/testing",
	"documentation/scripts",
}

// Options controls snapshot computation.
type Options struct {
	// ExportMypyPath includes MYPYPATH in the exported mapping. The original
	// setup computed MYPYPATH but never exported it; the default keeps that
	// behavior.
	ExportMypyPath bool

	// Dedupe drops entries already present earlier in a composed path list,
	// keeping the first occurrence. Off by default: repeated initialization
	// repeats the prepended segments, matching observed behavior.
	Dedupe bool

	// Marker overrides DefaultMarker as the EnvMarker value.
	Marker string

	// ExtraPaths are additional directories placed on PATH after ScriptDirs.
	// Relative entries are resolved under the working directory.
	ExtraPaths []string
}

// Snapshot holds the computed environment for one workspace.
type Snapshot struct {
	// WorkDir is the resolved absolute workspace root
	WorkDir string

	// PythonPath is the composed PYTHONPATH value
	PythonPath string

	// MypyPath is the composed MYPYPATH value. Always computed, exported
	// only when the snapshot was built with ExportMypyPath.
	MypyPath string

	// Path is the composed PATH value
	Path string

	// Marker is the EnvMarker value
	Marker string

	exportMypy bool
}

// Initialize computes the environment snapshot for workdir against the given
// current environment. An empty workdir means the process working directory.
// The directory is resolved to an absolute path but not otherwise validated;
// resolution failure aborts with a coded error.
func Initialize(workdir string, current map[string]string, opts Options) (*Snapshot, error) {
	logger := logging.GetLogger("env")

	if workdir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrWorkdirResolve,
				"failed to determine working directory")
		}
		workdir = cwd
	}

	abs, err := filepath.Abs(workdir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrWorkdirResolve,
			"failed to resolve working directory %q", workdir)
	}

	marker := opts.Marker
	if marker == "" {
		marker = DefaultMarker
	}

	pathDirs := make([]string, 0, len(ScriptDirs)+len(opts.ExtraPaths))
	for _, dir := range ScriptDirs {
		pathDirs = append(pathDirs, filepath.Join(abs, dir))
	}
	for _, dir := range opts.ExtraPaths {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(abs, dir)
		}
		pathDirs = append(pathDirs, dir)
	}

	snap := &Snapshot{
		WorkDir:    abs,
		PythonPath: prepend([]string{abs}, current[EnvPythonPath], opts.Dedupe),
		MypyPath:   prepend([]string{abs}, current[EnvMypyPath], opts.Dedupe),
		Path:       prepend(pathDirs, current[EnvPath], opts.Dedupe),
		Marker:     marker,
		exportMypy: opts.ExportMypyPath,
	}

	logger.Debug().
		Str("workdir", abs).
		Bool("exportMypyPath", opts.ExportMypyPath).
		Bool("dedupe", opts.Dedupe).
		Msg("Computed environment snapshot")

	return snap, nil
}

// Environ returns the exported variable mapping. MYPYPATH is included only
// when the snapshot was built with ExportMypyPath; no other keys appear.
func (s *Snapshot) Environ() map[string]string {
	vars := map[string]string{
		EnvPythonPath: s.PythonPath,
		EnvPath:       s.Path,
		EnvMarker:     s.Marker,
	}
	if s.exportMypy {
		vars[EnvMypyPath] = s.MypyPath
	}
	return vars
}

// Keys returns the exported variable names in stable output order.
func (s *Snapshot) Keys() []string {
	keys := []string{EnvPythonPath}
	if s.exportMypy {
		keys = append(keys, EnvMypyPath)
	}
	return append(keys, EnvPath, EnvMarker)
}

// ExportsMypyPath reports whether MYPYPATH is part of the exported mapping
func (s *Snapshot) ExportsMypyPath() bool {
	return s.exportMypy
}

// Apply merges the exported mapping into the live process environment.
// Only the CLI entry point calls this.
func (s *Snapshot) Apply() error {
	for key, value := range s.Environ() {
		if err := os.Setenv(key, value); err != nil {
			return errors.Wrapf(err, errors.ErrEnvApply, "failed to set %s", key)
		}
	}
	return nil
}

// EnvironMap converts an os.Environ-style slice to a mapping. Later
// duplicates win, matching the OS lookup behavior.
func EnvironMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, entry := range environ {
		if idx := strings.IndexByte(entry, '='); idx >= 0 {
			m[entry[:idx]] = entry[idx+1:]
		}
	}
	return m
}

// prepend composes entries ahead of a prior path-list value. Without dedupe
// the prior value is kept verbatim as the suffix, so repeated composition
// repeats the prepended segments.
func prepend(entries []string, prior string, dedupe bool) string {
	sep := string(os.PathListSeparator)
	if !dedupe {
		if prior == "" {
			return strings.Join(entries, sep)
		}
		return strings.Join(entries, sep) + sep + prior
	}

	combined := make([]string, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	add := func(entry string) {
		if entry == "" || seen[entry] {
			return
		}
		seen[entry] = true
		combined = append(combined, entry)
	}
	for _, entry := range entries {
		add(entry)
	}
	if prior != "" {
		for _, entry := range strings.Split(prior, sep) {
			add(entry)
		}
	}
	return strings.Join(combined, sep)
}
