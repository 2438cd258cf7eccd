package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"

	oerrors "github.com/uikit-tools/scaff/internal/errors"
)

// Environment variables read by scaff.
const (
	envPrefix = "SCAFF"

	EnvConfig       = "SCAFF_CONFIG"
	EnvTemplatesDir = "SCAFF_TEMPLATES_DIR"
	EnvDest         = "SCAFF_DEST"
	EnvTimestamps   = "SCAFF_LOG_TIMESTAMPS"
)

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v    *viper.Viper
	file string
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("templatesDir", EnvTemplatesDir)
	_ = v.BindEnv("dest", EnvDest)
	_ = v.BindEnv("log.timestamps", EnvTimestamps)

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// Environment variables take precedence over file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	// A missing file is fine: defaults and env vars still apply.
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("reading config file: %v", err),
				expandedPath,
				"Fix the YAML syntax or regenerate the file with 'scaff config init --force'.",
			)
		}
	} else {
		l.file = expandedPath
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("decoding config: %v", err),
			expandedPath,
			"",
		)
	}

	return &cfg, nil
}

// FileUsed returns the config file that was read, or "" when none was found.
func (l *Loader) FileUsed() string {
	return l.file
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return false, err
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
