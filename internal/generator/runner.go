package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/uikit-tools/scaff/internal/emitter"
	"github.com/uikit-tools/scaff/internal/naming"
	"github.com/uikit-tools/scaff/internal/output"
)

// Prompter collects one answer from the operator.
type Prompter interface {
	Ask(ctx context.Context, p TextInput) (string, error)
}

// Runner executes generators: collect answers, transform the name, emit.
type Runner struct {
	prompter Prompter
	emitter  *emitter.Emitter
	cwd      string
}

// NewRunner creates a runner writing below cwd.
func NewRunner(prompter Prompter, em *emitter.Emitter, cwd string) *Runner {
	return &Runner{prompter: prompter, emitter: em, cwd: cwd}
}

// Outcome is the result of one generator run.
type Outcome struct {
	Generator  string
	Identifier naming.Identifier
	Answers    map[string]string
	Result     *emitter.Result
}

// Run executes g. Answers already present in preset are not asked again.
func (r *Runner) Run(ctx context.Context, g *Generator, preset map[string]string) (*Outcome, error) {
	log := output.GeneratorLogger(g.Name)

	answers, err := r.collect(ctx, g, preset)
	if err != nil {
		return nil, err
	}

	id, err := naming.Transform(answers[NameKey])
	if err != nil {
		return nil, err
	}
	log.Debug("transformed name", "raw", answers[NameKey], "identifier", id)

	data := make(map[string]any, len(answers))
	for k, v := range answers {
		data[k] = v
	}

	outcome := &Outcome{
		Generator:  g.Name,
		Identifier: id,
		Answers:    answers,
	}

	for _, action := range g.Actions {
		switch a := action.(type) {
		case AddFile:
			log.Debug("running action", "action", a.Describe())
			res, err := r.emitter.Emit(ctx, emitter.Request{
				Identifier:      id,
				PathTemplate:    a.Path,
				ContentTemplate: a.TemplateFile,
				Cwd:             r.cwd,
				Data:            data,
			})
			if err != nil {
				return nil, err
			}
			outcome.Result = res
		default:
			return nil, fmt.Errorf("generator %q: unsupported action %T", g.Name, action)
		}
	}

	return outcome, nil
}

// collect answers every prompt in order, asking only for missing answers.
func (r *Runner) collect(ctx context.Context, g *Generator, preset map[string]string) (map[string]string, error) {
	answers := make(map[string]string, len(g.Prompts))

	for _, prompt := range g.Prompts {
		input, ok := prompt.(TextInput)
		if !ok {
			return nil, fmt.Errorf("generator %q: unsupported prompt %T", g.Name, prompt)
		}

		value, supplied := preset[input.Name]
		if !supplied {
			if r.prompter == nil {
				return nil, fmt.Errorf("generator %q: no answer for %q and no prompter available", g.Name, input.Name)
			}
			var err error
			value, err = r.prompter.Ask(ctx, input)
			if err != nil {
				return nil, err
			}
		}

		if strings.TrimSpace(value) == "" && input.Default != "" {
			value = input.Default
		}
		answers[input.Name] = value
	}

	return answers, nil
}
