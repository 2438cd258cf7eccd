package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/uikit-tools/scaff/internal/config"
	"github.com/uikit-tools/scaff/internal/emitter"
	oerrors "github.com/uikit-tools/scaff/internal/errors"
	"github.com/uikit-tools/scaff/internal/generator"
	"github.com/uikit-tools/scaff/internal/output"
	"github.com/uikit-tools/scaff/internal/prompt"
)

// runOptions holds the flags of the run command.
type runOptions struct {
	dest    string
	dryRun  bool
	noInput bool
}

// AddTo registers the run flags on cmd.
func (o *runOptions) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.dest, "dest", "d", "", "Destination root (env: SCAFF_DEST, default: working directory)")
	cmd.Flags().BoolVar(&o.dryRun, "dry-run", false, "Render and print the file without writing it")
	cmd.Flags().BoolVar(&o.noInput, "no-input", false, "Never prompt; missing answers use prompt defaults")
}

// NewRunCmd creates the run command.
func NewRunCmd(g *globals) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:     "run <generator> [answers...]",
		Aliases: []string{"gen"},
		Short:   "Run a generator",
		Long: `Run a generator and create its file.

Answers can be given positionally in prompt order; anything missing is
asked interactively. The destination file must not exist yet.

Examples:
  # Ask for the button name
  scaff run button

  # Create components/DeleteItemButton.vue without prompting
  scaff run button "delete item"

  # Show what would be written
  scaff run button submit --dry-run`,
		Args: cobra.MinimumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 || g.registry == nil {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return g.registry.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerator(cmd, g, opts, args)
		},
	}

	opts.AddTo(cmd)

	return cmd
}

func runGenerator(cmd *cobra.Command, g *globals, opts *runOptions, args []string) error {
	gen, err := g.registry.Get(args[0])
	if err != nil {
		return exitError(err, false)
	}

	preset, err := gen.BindAnswers(args[1:])
	if err != nil {
		return exitError(err, false)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return exitError(fmt.Errorf("getting working directory: %w", err), false)
	}
	dest := config.Resolve(config.ResolveOptions{
		Key:          "dest",
		FlagValue:    opts.dest,
		EnvVar:       config.EnvDest,
		ConfigValue:  g.cfg.Dest,
		DefaultValue: cwd,
	})
	config.LogResolvedValues([]config.ResolvedValue{dest})

	root, err := config.ExpandPath(dest.Value)
	if err == nil {
		root, err = filepath.Abs(root)
	}
	if err != nil {
		return exitError(fmt.Errorf("resolving destination %s: %w", dest.Value, err), false)
	}

	source, err := g.templateSource()
	if err != nil {
		return exitError(err, false)
	}

	em := emitter.New(source, emitter.WithDryRun(opts.dryRun))
	runner := generator.NewRunner(newPrompter(cmd, opts.noInput), em, root)

	outcome, err := runner.Run(cmd.Context(), gen, preset)
	if err != nil {
		var exists *oerrors.DestinationExistsError
		if errors.As(err, &exists) {
			fmt.Fprintln(cmd.OutOrStdout(), output.FormatFileLine(displayPath(root, exists.Path), output.StatusExists))
		}
		return exitError(err, false)
	}

	res := outcome.Result
	out := cmd.OutOrStdout()
	rel := displayPath(root, res.Path)

	if res.DryRun {
		fmt.Fprintln(out, output.FormatFileLine(rel, output.StatusPlanned))
		fmt.Fprintln(out, output.RenderFileTree(root, rel, fmt.Sprintf("%d bytes", len(res.Content))))
		fmt.Fprintln(out)
		_, err := out.Write(res.Content)
		return err
	}

	fmt.Fprintln(out, output.FormatFileLine(rel, output.StatusCreated))
	fmt.Fprintln(out, output.FormatCheckmark(fmt.Sprintf("%s generated %s", gen.Name, outcome.Identifier)))
	return nil
}

// newPrompter picks the prompter for the command's input stream.
func newPrompter(cmd *cobra.Command, noInput bool) generator.Prompter {
	if noInput {
		return prompt.Static(nil)
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		stdio := prompt.DefaultStdio
		stdio.In = f
		return prompt.New(stdio)
	}
	return prompt.NewLine(in, cmd.ErrOrStderr())
}

// displayPath shows path relative to root when it lies inside it.
func displayPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
