package style

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/arthur-debert/ampenv/pkg/env"
)

// RenderSnapshot formats the snapshot as a key/value listing. Path-list
// values are broken onto one line per entry so long PATH values stay
// readable. Styling is skipped when the writer is not a terminal.
func RenderSnapshot(snap *env.Snapshot, styled bool) string {
	vars := snap.Environ()
	var b strings.Builder

	title := fmt.Sprintf("workspace %s", snap.WorkDir)
	if styled {
		title = TitleStyle.Render(title)
	}
	b.WriteString(title + "\n\n")

	for _, key := range snap.Keys() {
		name := key
		if styled {
			name = KeyStyle.Render(name)
		}
		b.WriteString(name + "\n")
		for _, entry := range strings.Split(vars[key], string(os.PathListSeparator)) {
			line := "  " + entry
			if styled {
				line = "  " + PathStyle.Render(entry)
			}
			b.WriteString(line + "\n")
		}
	}

	if !snap.ExportsMypyPath() {
		note := fmt.Sprintf("%s computed but not exported: %s", env.EnvMypyPath, snap.MypyPath)
		if styled {
			note = MutedStyle.Render(note)
		}
		b.WriteString("\n" + note + "\n")
	}

	return b.String()
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
