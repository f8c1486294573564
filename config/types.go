package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

//go:generate sh -c "cd .. && go run ./tools/config-schema-generator/"

// PathConfig configures the path segments.
type PathConfig struct {
	// Segments is the number of trailing directory segments shown for the
	// working directory. Zero means the built-in default of 2.
	Segments int `json:"segments,omitempty" yaml:"segments,omitempty" jsonschema:"description=Number of trailing working-directory segments to display (default: 2)"`
}

// FileStatusConfig overrides the file-status icons.
type FileStatusConfig struct {
	ReadonlyIcon string `json:"readonly_icon,omitempty" yaml:"readonly_icon,omitempty" jsonschema:"description=Icon shown for readonly buffers"`
	ModifiedIcon string `json:"modified_icon,omitempty" yaml:"modified_icon,omitempty" jsonschema:"description=Icon shown for modified buffers"`
}

// ClientConfig configures the attached-client segment.
type ClientConfig struct {
	// Icons maps lowercase client identities to icons, overriding the
	// built-in catalog per entry.
	Icons map[string]string `json:"icons,omitempty" yaml:"icons,omitempty" jsonschema:"description=Per-client icon overrides keyed by lowercase client identity"`

	// ClientOff replaces the icon shown when no client is attached.
	ClientOff string `json:"client_off,omitempty" yaml:"client_off,omitempty" jsonschema:"description=Icon shown when no language client is attached"`
}

// Config is the root of statusline.yml.
type Config struct {
	// Separator joins rendered segments. Empty means " | ".
	Separator string `json:"separator,omitempty" yaml:"separator,omitempty" jsonschema:"description=String placed between rendered segments (default: ' | ')"`

	// Color enables terminal styling of the rendered line.
	Color bool `json:"color,omitempty" yaml:"color,omitempty" jsonschema:"description=Style the rendered line with terminal colors"`

	Path       PathConfig       `json:"path,omitempty" yaml:"path,omitempty" jsonschema:"description=Working-directory segment options"`
	FileStatus FileStatusConfig `json:"file_status,omitempty" yaml:"file_status,omitempty" jsonschema:"description=File-status segment options"`
	Client     ClientConfig     `json:"client,omitempty" yaml:"client,omitempty" jsonschema:"description=Attached-client segment options"`

	// Extensions holds tool-specific sections this package does not
	// interpret. Integrations read them with UnmarshalExtension.
	Extensions map[string]interface{} `json:"-" yaml:",inline"`
}

// DefaultSeparator joins segments when the config does not set one.
const DefaultSeparator = " | "

// SeparatorOrDefault returns the configured separator or the default.
func (c *Config) SeparatorOrDefault() string {
	if c.Separator == "" {
		return DefaultSeparator
	}
	return c.Separator
}

// UnmarshalExtension decodes a tool-specific section of the loaded
// statusline.yml into the provided target struct. The target must be a
// pointer.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		// It's not an error if the key doesn't exist.
		// The target struct will simply remain zero-valued.
		return nil
	}

	// Use mapstructure to decode the generic map[string]interface{}
	// into the strongly-typed target struct. We configure it to use
	// `yaml` tags for consistency.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
