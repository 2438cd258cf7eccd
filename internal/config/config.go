// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// PromptSpec declares one prompt of a config-defined generator.
type PromptSpec struct {
	// Type is the prompt kind. Only "input" is supported.
	Type    string `mapstructure:"type" yaml:"type"`
	Name    string `mapstructure:"name" yaml:"name"`
	Message string `mapstructure:"message" yaml:"message"`
	Hint    string `mapstructure:"hint" yaml:"hint,omitempty"`
	Default string `mapstructure:"default" yaml:"default,omitempty"`
}

// ActionSpec declares the action of a config-defined generator.
type ActionSpec struct {
	// Type is the action kind. Only "add" is supported.
	Type string `mapstructure:"type" yaml:"type"`

	// Path is the destination path template relative to the destination root.
	Path string `mapstructure:"path" yaml:"path"`

	// TemplateFile is looked up in the templates directory, then in the
	// shipped templates.
	TemplateFile string `mapstructure:"templateFile" yaml:"templateFile"`
}

// GeneratorSpec declares a generator in the config file.
type GeneratorSpec struct {
	Name        string       `mapstructure:"name" yaml:"name"`
	Description string       `mapstructure:"description" yaml:"description,omitempty"`
	Prompts     []PromptSpec `mapstructure:"prompts" yaml:"prompts"`
	Actions     []ActionSpec `mapstructure:"actions" yaml:"actions"`
}

// Config represents the scaff CLI configuration.
// Loaded from ~/.scaff/config.yaml.
type Config struct {
	// TemplatesDir is a directory whose templates override the shipped ones.
	// Env: SCAFF_TEMPLATES_DIR
	TemplatesDir string `mapstructure:"templatesDir" yaml:"templatesDir,omitempty"`

	// Dest is the destination root. Empty means the working directory.
	// Env: SCAFF_DEST
	Dest string `mapstructure:"dest" yaml:"dest,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`

	// Generators are additional generators registered next to the built-ins.
	Generators []GeneratorSpec `mapstructure:"generators" yaml:"generators,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `scaff config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		Log: LogConfig{Timestamps: &timestamps},
	}
}
