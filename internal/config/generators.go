package config

import (
	"errors"
	"fmt"
	"strings"

	oerrors "github.com/uikit-tools/scaff/internal/errors"
	"github.com/uikit-tools/scaff/internal/generator"
)

// Supported declaration types.
const (
	PromptTypeInput = "input"
	ActionTypeAdd   = "add"
)

// Build converts the declaration into a validated generator.
func (s GeneratorSpec) Build() (*generator.Generator, error) {
	prompts := make([]generator.Prompt, 0, len(s.Prompts))
	for i, p := range s.Prompts {
		typ := strings.ToLower(strings.TrimSpace(p.Type))
		if typ == "" {
			typ = PromptTypeInput
		}
		if typ != PromptTypeInput {
			return nil, fmt.Errorf("prompts[%d]: unsupported prompt type %q (supported: %s): %w",
				i, p.Type, PromptTypeInput, oerrors.ErrValidation)
		}

		input, err := generator.NewTextInput(p.Name, p.Message, p.Hint, p.Default)
		if err != nil {
			return nil, fmt.Errorf("prompts[%d]: %w", i, err)
		}
		prompts = append(prompts, input)
	}

	actions := make([]generator.Action, 0, len(s.Actions))
	for i, a := range s.Actions {
		typ := strings.ToLower(strings.TrimSpace(a.Type))
		if typ == "" {
			typ = ActionTypeAdd
		}
		if typ != ActionTypeAdd {
			return nil, fmt.Errorf("actions[%d]: unsupported action type %q (supported: %s): %w",
				i, a.Type, ActionTypeAdd, oerrors.ErrValidation)
		}

		add, err := generator.NewAddFile(a.Path, a.TemplateFile)
		if err != nil {
			return nil, fmt.Errorf("actions[%d]: %w", i, err)
		}
		actions = append(actions, add)
	}

	g, err := generator.New(s.Name, s.Description, prompts, actions)
	if err != nil {
		return nil, err
	}
	g.Origin = generator.OriginConfig
	return g, nil
}

// RegisterGenerators builds every declared generator and registers it with r.
// The first failure is reported with the index of the offending declaration.
func (c *Config) RegisterGenerators(r *generator.Registry, location string) error {
	for i, spec := range c.Generators {
		g, err := spec.Build()
		if err == nil {
			err = r.Register(g)
		}
		if err != nil {
			return declarationError(i, spec.Name, location, err)
		}
	}
	return nil
}

func declarationError(index int, name, location string, err error) error {
	prefix := fmt.Sprintf("generators[%d] (%s): ", index, name)

	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		out := *detail
		out.Message = prefix + detail.Message
		if out.Location == "" {
			out.Location = location
		}
		return &out
	}

	return oerrors.NewValidationError(
		prefix+err.Error(),
		location,
		"Check the generator declaration in your config file.",
	)
}
