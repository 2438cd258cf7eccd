package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/uikit-tools/scaff/internal/errors"
	"github.com/uikit-tools/scaff/internal/generator"
	"github.com/uikit-tools/scaff/internal/output"
)

// generatorSummary is the structured form of one generator in `scaff list`.
type generatorSummary struct {
	Name        string                `json:"name" yaml:"name"`
	Description string                `json:"description,omitempty" yaml:"description,omitempty"`
	Origin      string                `json:"origin" yaml:"origin"`
	Prompts     []generator.TextInput `json:"prompts" yaml:"prompts"`
	Output      string                `json:"output" yaml:"output"`
	Template    string                `json:"template" yaml:"template"`
}

// NewListCmd creates the list command.
func NewListCmd(g *globals) *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List available generators",
		Long: `List the built-in generators and those declared in the config file.

Examples:
  scaff list
  scaff list -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, ok := output.ParseOutputFormat(outputFlag)
			if !ok {
				return exitError(oerrors.NewValidationError(
					fmt.Sprintf("invalid output format %q", outputFlag),
					"",
					fmt.Sprintf("Valid formats: %s", strings.Join(output.ValidFormats(), ", ")),
				), false)
			}
			return runList(cmd, g.registry, format)
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "table",
		fmt.Sprintf("Output format: %s", strings.Join(output.ValidFormats(), ", ")))

	return cmd
}

func runList(cmd *cobra.Command, registry *generator.Registry, format output.OutputFormat) error {
	generators := registry.List()
	out := cmd.OutOrStdout()

	if format != output.FormatTable {
		summaries := make([]generatorSummary, 0, len(generators))
		for _, gen := range generators {
			summaries = append(summaries, summarize(gen))
		}
		return output.WriteStructured(out, format, summaries)
	}

	rows := make([]output.GeneratorRow, 0, len(generators))
	for _, gen := range generators {
		rows = append(rows, output.GeneratorRow{
			Name:        gen.Name,
			Source:      string(gen.Origin),
			Description: gen.Description,
			Output:      gen.OutputPath(),
		})
	}
	_, err := fmt.Fprintln(out, output.RenderGeneratorTable(rows))
	return err
}

func summarize(gen *generator.Generator) generatorSummary {
	s := generatorSummary{
		Name:        gen.Name,
		Description: gen.Description,
		Origin:      string(gen.Origin),
		Output:      gen.OutputPath(),
	}
	for _, p := range gen.Prompts {
		if input, ok := p.(generator.TextInput); ok {
			s.Prompts = append(s.Prompts, input)
		}
	}
	for _, a := range gen.Actions {
		if add, ok := a.(generator.AddFile); ok {
			s.Template = add.TemplateFile
		}
	}
	return s
}
