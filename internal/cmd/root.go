// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uikit-tools/scaff/internal/config"
	oerrors "github.com/uikit-tools/scaff/internal/errors"
	"github.com/uikit-tools/scaff/internal/generator"
	"github.com/uikit-tools/scaff/internal/output"
	"github.com/uikit-tools/scaff/internal/templates"
)

// annotationSkipConfig marks commands that must work with a broken config file.
const annotationSkipConfig = "scaff/skip-config"

// globals holds the persistent flags and the state resolved from them.
type globals struct {
	// Global flags
	configFlag       string
	verboseFlag      bool
	timestampsFlag   bool
	templatesDirFlag string

	// Resolved during PersistentPreRunE
	configPath   config.ResolvedValue
	templatesDir config.ResolvedValue
	cfg          *config.Config
	configFile   string
	registry     *generator.Registry
}

// NewRootCmd creates the root command for the scaff CLI.
func NewRootCmd() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:   "scaff",
		Short: "Component scaffolding generator",
		Long: `scaff generates UI component files from templates.

Each generator asks a few questions and writes exactly one new file.
Existing files are never overwritten.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.initialize(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.configFlag, "config", "", "Path to config file (env: SCAFF_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&g.verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&g.timestampsFlag, "timestamps", true, "Show timestamps in log output")
	rootCmd.PersistentFlags().StringVar(&g.templatesDirFlag, "templates-dir", "", "Directory whose templates override the shipped ones (env: SCAFF_TEMPLATES_DIR)")

	rootCmd.AddCommand(NewRunCmd(g))
	rootCmd.AddCommand(NewListCmd(g))
	rootCmd.AddCommand(NewConfigCmd(g))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initialize sets up logging, loads configuration and builds the registry.
func (g *globals) initialize(cmd *cobra.Command) error {
	// Logging first with flags only, so config loading can log.
	g.setupLogging(cmd, nil)

	if cmd.Annotations[annotationSkipConfig] == "true" {
		return nil
	}

	configPath, err := config.ResolveConfigPath(g.configFlag)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}
	g.configPath = configPath

	loader := config.NewLoader()
	cfg, err := loader.Load(configPath.Value)
	if err != nil {
		return err
	}
	g.cfg = cfg
	g.configFile = loader.FileUsed()

	g.setupLogging(cmd, cfg)

	g.templatesDir = config.Resolve(config.ResolveOptions{
		Key:         "templatesDir",
		FlagValue:   g.templatesDirFlag,
		EnvVar:      config.EnvTemplatesDir,
		ConfigValue: cfg.TemplatesDir,
	})

	registry := generator.NewRegistry()
	if err := generator.RegisterBuiltins(registry); err != nil {
		return err
	}
	if err := cfg.RegisterGenerators(registry, g.configFile); err != nil {
		return err
	}
	g.registry = registry

	config.LogResolvedValues([]config.ResolvedValue{g.configPath, g.templatesDir})
	output.Debug("initialized CLI",
		"config_file", g.configFile,
		"generators", len(registry.Names()))

	return nil
}

// setupLogging applies timestamps with precedence: flag > config > default(true).
func (g *globals) setupLogging(cmd *cobra.Command, cfg *config.Config) {
	logCfg := output.LogConfig{
		Verbose: g.verboseFlag,
	}

	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(g.timestampsFlag)
	} else if cfg != nil && cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}

	output.SetupLoggingTo(cmd.ErrOrStderr(), logCfg)
}

// templateSource returns the shipped templates, overridden by the configured
// templates directory when one is set.
func (g *globals) templateSource() (templates.Source, error) {
	if g.templatesDir.Value == "" {
		return templates.Embedded(), nil
	}

	dir, err := config.ExpandPath(g.templatesDir.Value)
	if err != nil {
		return nil, fmt.Errorf("expanding templates dir: %w", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, oerrors.NewNotFoundError(
			fmt.Sprintf("templates directory not found (set by %s)", g.templatesDir.Source),
			dir,
			"Create the directory or unset templatesDir to use the shipped templates.",
		)
	}

	return templates.Chain(templates.Dir(dir), templates.Embedded()), nil
}
