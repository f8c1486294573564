// Package config loads statusline.yml: the per-user and per-project
// configuration for the status-line segments. A missing file is not an
// error; every option has a default.
package config

import (
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/grovetools/statusline/errors"
	"github.com/grovetools/statusline/paths"
	"github.com/grovetools/statusline/schema"
)

// ConfigFileName is the file searched for upward from the working directory.
const ConfigFileName = "statusline.yml"

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// Load reads and parses a statusline configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	return LoadFromBytes(data)
}

// LoadFromBytes parses configuration data, expands environment variables,
// and validates the result against the embedded schema.
func LoadFromBytes(data []byte) (*Config, error) {
	expanded := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse config file")
	}

	validator, err := schema.NewValidator()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigValidation, "failed to load config schema")
	}
	if err := validator.Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigValidation, "configuration is invalid")
	}

	return &cfg, nil
}

// LoadDefault finds and loads the configuration: the nearest statusline.yml
// found walking up from the working directory wins, then the global config
// (~/.config/statusline/statusline.yml), then built-in defaults.
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}

	return LoadFrom(cwd)
}

// LoadFrom loads configuration starting the upward search from startDir.
// When no file exists anywhere, the zero config (all defaults) is returned.
func LoadFrom(startDir string) (*Config, error) {
	if path, err := FindConfigFile(startDir); err == nil {
		return Load(path)
	}

	if global := globalConfigPath(); global != "" {
		if _, err := os.Stat(global); err == nil {
			return Load(global)
		}
	}

	return &Config{}, nil
}

// FindConfigFile walks up from startDir looking for statusline.yml.
func FindConfigFile(startDir string) (string, error) {
	dir := startDir
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.ConfigNotFound(filepath.Join(startDir, ConfigFileName))
		}
		dir = parent
	}
}

// globalConfigPath returns the XDG location of the global config file.
func globalConfigPath() string {
	dir := paths.ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, ConfigFileName)
}

// expandEnvVars replaces ${VAR} references with environment values. Unset
// variables expand to the empty string.
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		name := envVarRegex.FindStringSubmatch(match)[1]
		return os.Getenv(name)
	})
}
