// pkg/config/generate_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test generated config file content

package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/ampenv/pkg/config"
)

func TestGenerateConfigContent(t *testing.T) {
	content, err := config.GenerateConfigContent()
	require.NoError(t, err)

	assert.Contains(t, content, "export_mypypath")
	assert.Contains(t, content, "dedupe")
	assert.Contains(t, content, "marker")
	assert.Contains(t, content, "extra_paths")

	// Every assignment must be commented out
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			continue
		}
		t.Errorf("uncommented value line in generated config: %q", line)
	}
}
