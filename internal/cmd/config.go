package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/uikit-tools/scaff/internal/config"
	oerrors "github.com/uikit-tools/scaff/internal/errors"
	"github.com/uikit-tools/scaff/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage scaff configuration",
		Long: `Manage the scaff configuration file (~/.scaff/config.yaml).

The file can set a templates directory, a default destination root,
logging options, and declare additional generators.`,
	}

	cmd.AddCommand(NewConfigInitCmd(g))
	cmd.AddCommand(NewConfigShowCmd(g))

	return cmd
}

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(g *globals) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Write a default configuration file.

The file is written to --config, SCAFF_CONFIG, or ~/.scaff/config.yaml.

Examples:
  # Initialize configuration
  scaff config init

  # Overwrite existing configuration
  scaff config init --force`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationSkipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return exitError(runConfigInit(cmd, g.configFlag, force), false)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, configFlag string, force bool) error {
	resolved, err := config.ResolveConfigPath(configFlag)
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
	}
	path, err := config.ExpandPath(resolved.Value)
	if err != nil {
		return err
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return err
	}
	if exists && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	if exists {
		output.Warn("overwriting existing configuration", "path", path)
	}

	content, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return &oerrors.FilesystemWriteError{Op: "mkdir", Path: dir, Err: err}
	}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return &oerrors.FilesystemWriteError{Op: "write", Path: path, Err: err}
	}

	output.Debug("wrote config", "path", path, "source", resolved.Source)
	fmt.Fprintln(cmd.OutOrStdout(), output.FormatFileLine(path, output.StatusCreated))
	return nil
}

// NewConfigShowCmd creates the config show command.
func NewConfigShowCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Long: `Print the configuration after applying the config file and
environment variables, as YAML.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if g.configFile != "" {
				fmt.Fprintf(out, "# %s\n", g.configFile)
			} else {
				fmt.Fprintf(out, "# %s (not found, showing defaults)\n", g.configPath.Value)
			}

			shown := *g.cfg
			shown.TemplatesDir = g.templatesDir.Value
			return output.WriteStructured(out, output.FormatYAML, shown)
		},
	}
}
