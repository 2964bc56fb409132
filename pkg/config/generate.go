package config

import (
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/ampenv/pkg/errors"
)

const generatedHeader = `# ampenv configuration
#
# Uncomment a value to override the built-in default. This file is looked
# up as .ampenv.toml or ampenv.toml in the workspace root, or as
# config.toml under the ampenv user config directory.

`

// GenerateConfigContent renders the default configuration as a fully
// commented TOML file, ready to be uncommented selectively.
func GenerateConfigContent() (string, error) {
	defaults := Default()
	raw, err := toml.Marshal(defaults)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal default config")
	}
	return generatedHeader + commentOutConfigValues(string(raw)), nil
}

// commentOutConfigValues comments out every assignment line, keeping blank
// lines, existing comments, and section headers as-is.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			result = append(result, line)
			continue
		}

		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
