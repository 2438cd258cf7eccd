package generator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/uikit-tools/scaff/internal/errors"
	"github.com/uikit-tools/scaff/internal/templates"
)

func namePrompt(t *testing.T) TextInput {
	t.Helper()
	p, err := NewTextInput(NameKey, "Name?", "", "")
	require.NoError(t, err)
	return p
}

func addAction(t *testing.T) AddFile {
	t.Helper()
	a, err := NewAddFile("components/{{.name}}.vue", "component.tmpl")
	require.NoError(t, err)
	return a
}

func TestValidateGeneratorName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "button", false},
		{"kebab", "icon-button", false},
		{"digits", "button2", false},
		{"empty", "", true},
		{"uppercase", "Button", true},
		{"underscore", "icon_button", true},
		{"leading digit", "2button", true},
		{"trailing dash", "button-", true},
		{"double dash", "icon--button", true},
		{"reserved run", "run", true},
		{"reserved list", "list", true},
		{"reserved config", "config", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGeneratorName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, oerrors.ErrValidation))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateAnswerKey(t *testing.T) {
	for _, key := range []string{"name", "label", "iconName", "icon_name", "v2"} {
		assert.NoError(t, ValidateAnswerKey(key), key)
	}
	for _, key := range []string{"", "2name", "icon-name", "icon name", "_name"} {
		assert.Error(t, ValidateAnswerKey(key), key)
	}
}

func TestNewTextInput(t *testing.T) {
	p, err := NewTextInput("label", "Label?", "shown on the button", "Click")
	require.NoError(t, err)
	assert.Equal(t, "label", p.Key())
	assert.Equal(t, "Click", p.Default)

	_, err = NewTextInput("label", "   ", "", "")
	assert.True(t, errors.Is(err, oerrors.ErrValidation))

	_, err = NewTextInput("bad-key", "Label?", "", "")
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

func TestNewAddFile(t *testing.T) {
	a, err := NewAddFile("components/{{pascalCase .name}}Button.vue", "button.vue.tmpl")
	require.NoError(t, err)
	assert.Equal(t, "add components/{{pascalCase .name}}Button.vue from button.vue.tmpl", a.Describe())

	tests := []struct {
		name         string
		path         string
		templateFile string
	}{
		{"empty path", "", "button.vue.tmpl"},
		{"unparsable path", "components/{{.name", "button.vue.tmpl"},
		{"unknown function", "{{shout .name}}.vue", "button.vue.tmpl"},
		{"empty template", "x.vue", " "},
		{"absolute template", "x.vue", "/etc/passwd"},
		{"escaping template", "x.vue", "../secret.tmpl"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAddFile(tt.path, tt.templateFile)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrValidation))
		})
	}
}

func TestNew(t *testing.T) {
	g, err := New("icon", "Icon component", []Prompt{namePrompt(t)}, []Action{addAction(t)})
	require.NoError(t, err)
	assert.Equal(t, OriginBuiltin, g.Origin)
	assert.Equal(t, "components/{{.name}}.vue", g.OutputPath())
}

func TestNew_Invalid(t *testing.T) {
	label, err := NewTextInput("label", "Label?", "", "")
	require.NoError(t, err)

	tests := []struct {
		name    string
		gname   string
		prompts []Prompt
		actions []Action
	}{
		{"bad name", "Icon", []Prompt{namePrompt(t)}, []Action{addAction(t)}},
		{"no prompts", "icon", nil, []Action{addAction(t)}},
		{"missing name prompt", "icon", []Prompt{label}, []Action{addAction(t)}},
		{"duplicate prompt", "icon", []Prompt{namePrompt(t), namePrompt(t)}, []Action{addAction(t)}},
		{"nil prompt", "icon", []Prompt{namePrompt(t), nil}, []Action{addAction(t)}},
		{"no actions", "icon", []Prompt{namePrompt(t)}, nil},
		{"two actions", "icon", []Prompt{namePrompt(t)}, []Action{addAction(t), addAction(t)}},
		{"nil action", "icon", []Prompt{namePrompt(t)}, []Action{nil}},
		{"invalid action", "icon", []Prompt{namePrompt(t)}, []Action{AddFile{Path: "x.vue"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.gname, "", tt.prompts, tt.actions)
			require.Error(t, err)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, oerrors.ErrValidation))
		})
	}
}

func TestBindAnswers(t *testing.T) {
	label, err := NewTextInput("label", "Label?", "", "")
	require.NoError(t, err)
	g, err := New("icon", "", []Prompt{namePrompt(t), label}, []Action{addAction(t)})
	require.NoError(t, err)

	answers, err := g.BindAnswers([]string{"delete item"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"name": "delete item"}, answers)

	answers, err = g.BindAnswers([]string{"delete item", "Remove"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"name": "delete item", "label": "Remove"}, answers)

	answers, err = g.BindAnswers(nil)
	require.NoError(t, err)
	assert.Empty(t, answers)

	_, err = g.BindAnswers([]string{"a", "b", "c"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
	assert.Contains(t, err.Error(), "name, label")
}

func TestButton(t *testing.T) {
	g, err := Button()
	require.NoError(t, err)

	assert.Equal(t, "button", g.Name)
	assert.NotEmpty(t, g.Description)
	require.Len(t, g.Prompts, 1)
	require.Len(t, g.Actions, 1)

	prompt, ok := g.Prompts[0].(TextInput)
	require.True(t, ok)
	assert.Equal(t, "name", prompt.Name)
	assert.Equal(t, "What is the name of the button component?", prompt.Message)

	action, ok := g.Actions[0].(AddFile)
	require.True(t, ok)
	assert.Equal(t, "components/{{pascalCase .name}}Button.vue", action.Path)
	assert.Equal(t, templates.ButtonTemplate, action.TemplateFile)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, RegisterBuiltins(r))
	assert.Equal(t, 1, r.Len())

	g, err := r.Get("button")
	require.NoError(t, err)
	assert.Equal(t, OriginBuiltin, g.Origin)

	icon, err := New("icon", "", []Prompt{namePrompt(t)}, []Action{addAction(t)})
	require.NoError(t, err)
	icon.Origin = OriginConfig
	require.NoError(t, r.Register(icon))

	assert.Equal(t, []string{"button", "icon"}, r.Names())
	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, "button", list[0].Name)
	assert.Equal(t, "icon", list[1].Name)
}

func TestRegistry_Duplicate(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, RegisterBuiltins(r))

	shadow, err := New("button", "", []Prompt{namePrompt(t)}, []Action{addAction(t)})
	require.NoError(t, err)
	shadow.Origin = OriginConfig

	err = r.Register(shadow)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
	assert.Contains(t, err.Error(), "builtin")

	g, err := r.Get("button")
	require.NoError(t, err)
	assert.Equal(t, OriginBuiltin, g.Origin, "built-in must not be replaced")
}

func TestRegistry_Invalid(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register(nil))
	assert.Error(t, r.Register(&Generator{Name: "icon"}))
	assert.Zero(t, r.Len())
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, RegisterBuiltins(r))

	_, err := r.Get("card")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
	assert.Contains(t, err.Error(), "button")
}
