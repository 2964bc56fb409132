// pkg/style/renderer_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test plain snapshot rendering

package style_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/ampenv/pkg/env"
	"github.com/arthur-debert/ampenv/pkg/style"
)

func TestRenderSnapshot_Plain(t *testing.T) {
	snap, err := env.Initialize("/repo", map[string]string{"PATH": "/usr/bin"}, env.Options{})
	require.NoError(t, err)

	out := style.RenderSnapshot(snap, false)

	assert.Contains(t, out, "workspace /repo")
	assert.Contains(t, out, "PYTHONPATH\n")
	assert.Contains(t, out, "PATH\n")
	assert.Contains(t, out, "AMP\n")
	assert.Contains(t, out, "  /repo/dev_scripts/aws\n")
	assert.Contains(t, out, "  /usr/bin\n")

	// MYPYPATH is surfaced as computed-but-not-exported
	assert.Contains(t, out, "MYPYPATH computed but not exported")

	// Plain output carries no ANSI escapes
	assert.NotContains(t, out, "\x1b[")
}

func TestRenderSnapshot_ExportedMypyPath(t *testing.T) {
	snap, err := env.Initialize("/repo", nil, env.Options{ExportMypyPath: true})
	require.NoError(t, err)

	out := style.RenderSnapshot(snap, false)
	assert.Contains(t, out, "MYPYPATH\n")
	assert.NotContains(t, out, "computed but not exported")
}

func TestRenderSnapshot_OneEntryPerLine(t *testing.T) {
	snap, err := env.Initialize("/repo", nil, env.Options{})
	require.NoError(t, err)

	out := style.RenderSnapshot(snap, false)
	var pathEntries int
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "  /repo") {
			pathEntries++
		}
	}
	// PYTHONPATH contributes one /repo line, PATH contributes nine
	assert.Equal(t, 10, pathEntries)
}
