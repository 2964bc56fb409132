// Package config loads ampenv configuration through a layered koanf
// pipeline: embedded defaults, then the user config file, then a
// workspace file, then AMPENV_* environment overrides. Command-line
// flags are applied on top by the CLI.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	ampenv "github.com/arthur-debert/ampenv/pkg/env"
	"github.com/arthur-debert/ampenv/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix is the prefix for environment variable overrides
const EnvPrefix = "AMPENV_"

// workspaceFiles are the workspace config file names, in lookup order
var workspaceFiles = []string{".ampenv.toml", "ampenv.toml", ".ampenv.yaml", "ampenv.yaml"}

// Config holds the user-tunable initialization settings
type Config struct {
	ExportMypyPath bool     `koanf:"export_mypypath" toml:"export_mypypath"`
	Dedupe         bool     `koanf:"dedupe" toml:"dedupe"`
	Marker         string   `koanf:"marker" toml:"marker"`
	ExtraPaths     []string `koanf:"extra_paths" toml:"extra_paths"`
}

// Default returns the built-in configuration values
func Default() Config {
	return Config{
		ExportMypyPath: false,
		Dedupe:         false,
		Marker:         ampenv.DefaultMarker,
		ExtraPaths:     []string{},
	}
}

// Options converts the configuration to initialization options
func (c Config) Options() ampenv.Options {
	return ampenv.Options{
		ExportMypyPath: c.ExportMypyPath,
		Dedupe:         c.Dedupe,
		Marker:         c.Marker,
		ExtraPaths:     c.ExtraPaths,
	}
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "not implemented")
}

// Load builds the configuration for a workspace directory.
// Precedence, lowest first: embedded defaults, user config
// ($XDG_CONFIG_HOME/ampenv/config.toml), workspace file, AMPENV_* env vars.
func Load(workdir string) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config, if present
	userConfig := filepath.Join(xdg.ConfigHome, "ampenv", "config.toml")
	if _, err := os.Stat(userConfig); err == nil {
		if err := k.Load(file.Provider(userConfig), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad,
				"failed to load user config from %s", userConfig)
		}
	}

	// 3. Workspace file, if present
	if path := findWorkspaceFile(workdir); path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad,
				"failed to load workspace config from %s", path)
		}
	}

	// 4. Environment overrides: AMPENV_DEDUPE=true -> dedupe
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env overrides")
	}

	cfg := Default()
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return &cfg, nil
}

// findWorkspaceFile returns the first workspace config file that exists
// under workdir, or empty when none does.
func findWorkspaceFile(workdir string) string {
	for _, name := range workspaceFiles {
		path := filepath.Join(workdir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// parserFor picks the koanf parser matching the file extension
func parserFor(path string) koanf.Parser {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return yaml.Parser()
	}
	return toml.Parser()
}
