package generator

import (
	"github.com/uikit-tools/scaff/internal/templates"
)

// ButtonName is the name of the built-in button generator.
const ButtonName = "button"

// Button returns the built-in generator that writes
// components/<Name>Button.vue from the shipped button template.
func Button() (*Generator, error) {
	name, err := NewTextInput(
		NameKey,
		"What is the name of the button component?",
		"it will generate: {name}Button.vue",
		"",
	)
	if err != nil {
		return nil, err
	}

	add, err := NewAddFile("components/{{pascalCase .name}}Button.vue", templates.ButtonTemplate)
	if err != nil {
		return nil, err
	}

	return New(ButtonName, "Generate a button component with TypeScript and props",
		[]Prompt{name}, []Action{add})
}

// RegisterBuiltins registers every built-in generator with r.
func RegisterBuiltins(r *Registry) error {
	builtins := []func() (*Generator, error){
		Button,
	}

	for _, build := range builtins {
		g, err := build()
		if err != nil {
			return err
		}
		g.Origin = OriginBuiltin
		if err := r.Register(g); err != nil {
			return err
		}
	}
	return nil
}
