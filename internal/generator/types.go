// Package generator defines scaffolding generators: named recipes made of
// prompts to ask and actions to perform.
package generator

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	oerrors "github.com/uikit-tools/scaff/internal/errors"
	"github.com/uikit-tools/scaff/internal/templates"
)

// NameKey is the prompt whose answer becomes the component identifier.
const NameKey = "name"

// Origin records where a generator was defined.
type Origin string

const (
	// OriginBuiltin marks generators compiled into scaff.
	OriginBuiltin Origin = "builtin"

	// OriginConfig marks generators declared in the config file.
	OriginConfig Origin = "config"
)

// Prompt is an input collected from the operator. TextInput is the only variant.
type Prompt interface {
	// Key is the answer key the prompt fills.
	Key() string
	validate() error
}

// Action is an effect performed after all prompts are answered. AddFile is
// the only variant.
type Action interface {
	// Describe returns a one-line summary of the action.
	Describe() string
	validate() error
}

// TextInput asks for one line of free text.
type TextInput struct {
	// Name is the answer key, referenced in templates as {{.<Name>}}.
	Name string `json:"name" yaml:"name"`

	// Message is the question shown to the operator.
	Message string `json:"message" yaml:"message"`

	// Hint is shown under the question (optional).
	Hint string `json:"hint,omitempty" yaml:"hint,omitempty"`

	// Default is used when the operator submits an empty answer (optional).
	Default string `json:"default,omitempty" yaml:"default,omitempty"`
}

// NewTextInput creates a validated TextInput.
func NewTextInput(name, message, hint, def string) (TextInput, error) {
	p := TextInput{Name: name, Message: message, Hint: hint, Default: def}
	if err := p.validate(); err != nil {
		return TextInput{}, err
	}
	return p, nil
}

// Key implements Prompt.
func (p TextInput) Key() string {
	return p.Name
}

func (p TextInput) validate() error {
	if err := ValidateAnswerKey(p.Name); err != nil {
		return err
	}
	if strings.TrimSpace(p.Message) == "" {
		return fmt.Errorf("prompt %q: message cannot be empty: %w", p.Name, oerrors.ErrValidation)
	}
	return nil
}

// AddFile renders TemplateFile and writes it to Path, which is itself a
// template resolved against the destination root.
type AddFile struct {
	// Path is the destination path template, e.g. "components/{{pascalCase .name}}Button.vue".
	Path string `json:"path" yaml:"path"`

	// TemplateFile is the content template path inside the template source.
	TemplateFile string `json:"templateFile" yaml:"templateFile"`
}

// NewAddFile creates a validated AddFile.
func NewAddFile(pathTemplate, templateFile string) (AddFile, error) {
	a := AddFile{Path: pathTemplate, TemplateFile: templateFile}
	if err := a.validate(); err != nil {
		return AddFile{}, err
	}
	return a, nil
}

// Describe implements Action.
func (a AddFile) Describe() string {
	return fmt.Sprintf("add %s from %s", a.Path, a.TemplateFile)
}

func (a AddFile) validate() error {
	if strings.TrimSpace(a.Path) == "" {
		return fmt.Errorf("add action: path cannot be empty: %w", oerrors.ErrValidation)
	}
	if _, err := templates.NewRenderer().Parse("path", a.Path); err != nil {
		return fmt.Errorf("add action: %w: %w", oerrors.ErrValidation, err)
	}

	if strings.TrimSpace(a.TemplateFile) == "" {
		return fmt.Errorf("add action: templateFile cannot be empty: %w", oerrors.ErrValidation)
	}
	clean := path.Clean(strings.ReplaceAll(a.TemplateFile, "\\", "/"))
	if !fs.ValidPath(clean) {
		return fmt.Errorf("add action: templateFile %q must be a relative path: %w", a.TemplateFile, oerrors.ErrValidation)
	}
	return nil
}

// Generator is a named scaffolding recipe.
type Generator struct {
	Name        string
	Description string
	Prompts     []Prompt
	Actions     []Action
	Origin      Origin
}

// New creates a validated Generator. A generator needs a "name" prompt,
// unique prompt keys, and exactly one action.
func New(name, description string, prompts []Prompt, actions []Action) (*Generator, error) {
	g := &Generator{
		Name:        name,
		Description: description,
		Prompts:     prompts,
		Actions:     actions,
		Origin:      OriginBuiltin,
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate checks the generator and every prompt and action it holds.
func (g *Generator) Validate() error {
	if err := ValidateGeneratorName(g.Name); err != nil {
		return err
	}

	if len(g.Prompts) == 0 {
		return fmt.Errorf("generator %q: at least one prompt is required: %w", g.Name, oerrors.ErrValidation)
	}

	seen := make(map[string]bool, len(g.Prompts))
	for _, p := range g.Prompts {
		if p == nil {
			return fmt.Errorf("generator %q: nil prompt: %w", g.Name, oerrors.ErrValidation)
		}
		if err := p.validate(); err != nil {
			return fmt.Errorf("generator %q: %w", g.Name, err)
		}
		if seen[p.Key()] {
			return fmt.Errorf("generator %q: duplicate prompt %q: %w", g.Name, p.Key(), oerrors.ErrValidation)
		}
		seen[p.Key()] = true
	}
	if !seen[NameKey] {
		return fmt.Errorf("generator %q: a %q prompt is required: %w", g.Name, NameKey, oerrors.ErrValidation)
	}

	if len(g.Actions) != 1 {
		return fmt.Errorf("generator %q: exactly one action is required, got %d: %w", g.Name, len(g.Actions), oerrors.ErrValidation)
	}
	for _, a := range g.Actions {
		if a == nil {
			return fmt.Errorf("generator %q: nil action: %w", g.Name, oerrors.ErrValidation)
		}
		if err := a.validate(); err != nil {
			return fmt.Errorf("generator %q: %w", g.Name, err)
		}
	}

	return nil
}

// BindAnswers assigns positional values to prompts in declaration order.
func (g *Generator) BindAnswers(values []string) (map[string]string, error) {
	if len(values) > len(g.Prompts) {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("generator %q takes at most %d answer(s), got %d", g.Name, len(g.Prompts), len(values)),
			"",
			fmt.Sprintf("Answers are bound in order: %s", strings.Join(g.promptKeys(), ", ")),
		)
	}

	answers := make(map[string]string, len(values))
	for i, v := range values {
		answers[g.Prompts[i].Key()] = v
	}
	return answers, nil
}

func (g *Generator) promptKeys() []string {
	keys := make([]string, 0, len(g.Prompts))
	for _, p := range g.Prompts {
		keys = append(keys, p.Key())
	}
	return keys
}

// OutputPath returns the destination path template of the generator's file.
func (g *Generator) OutputPath() string {
	for _, a := range g.Actions {
		if add, ok := a.(AddFile); ok {
			return add.Path
		}
	}
	return ""
}
