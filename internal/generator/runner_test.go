package generator

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uikit-tools/scaff/internal/emitter"
	oerrors "github.com/uikit-tools/scaff/internal/errors"
	"github.com/uikit-tools/scaff/internal/templates"
	"github.com/uikit-tools/scaff/internal/testutil"
)

// fakePrompter answers from a fixed map and records what was asked.
type fakePrompter struct {
	answers map[string]string
	err     error
	asked   []string
}

func (f *fakePrompter) Ask(_ context.Context, p TextInput) (string, error) {
	f.asked = append(f.asked, p.Message)
	if f.err != nil {
		return "", f.err
	}
	return f.answers[p.Name], nil
}

func newButtonRunner(t *testing.T, p Prompter) (*Runner, *Generator, string) {
	t.Helper()
	cwd := t.TempDir()
	g, err := Button()
	require.NoError(t, err)
	return NewRunner(p, emitter.New(templates.Embedded()), cwd), g, cwd
}

func TestRunner_Button(t *testing.T) {
	p := &fakePrompter{answers: map[string]string{"name": "delete item"}}
	r, g, cwd := newButtonRunner(t, p)

	outcome, err := r.Run(context.Background(), g, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"What is the name of the button component?"}, p.asked)
	assert.Equal(t, "button", outcome.Generator)
	assert.Equal(t, "DeleteItem", outcome.Identifier.String())
	assert.Equal(t, "delete item", outcome.Answers["name"])

	want := filepath.Join(cwd, "components", "DeleteItemButton.vue")
	require.NotNil(t, outcome.Result)
	assert.Equal(t, want, outcome.Result.Path)

	content := testutil.ReadFile(t, want)
	assert.Equal(t, len(content), outcome.Result.BytesWritten)
	assert.Contains(t, content, "DeleteItemButtonProps")
	assert.Contains(t, content, "delete-item-button")
	assert.NotContains(t, content, "{{")

	assert.Equal(t, []string{"components/", "components/DeleteItemButton.vue"}, testutil.Tree(t, cwd))
}

func TestRunner_PresetSkipsPrompt(t *testing.T) {
	p := &fakePrompter{}
	r, g, cwd := newButtonRunner(t, p)

	outcome, err := r.Run(context.Background(), g, map[string]string{"name": "submit"})
	require.NoError(t, err)
	assert.Empty(t, p.asked)
	assert.Equal(t, filepath.Join(cwd, "components", "SubmitButton.vue"), outcome.Result.Path)
}

func TestRunner_NoPrompter(t *testing.T) {
	r, g, cwd := newButtonRunner(t, nil)

	_, err := r.Run(context.Background(), g, nil)
	require.Error(t, err)
	assert.Empty(t, testutil.Tree(t, cwd))
}

func TestRunner_InvalidName(t *testing.T) {
	for _, raw := range []string{"", "   ", "!!!"} {
		t.Run(raw, func(t *testing.T) {
			p := &fakePrompter{answers: map[string]string{"name": raw}}
			r, g, cwd := newButtonRunner(t, p)

			_, err := r.Run(context.Background(), g, nil)
			require.Error(t, err)

			var invalid *oerrors.InvalidNameError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, raw, invalid.Raw)
			assert.Empty(t, testutil.Tree(t, cwd), "nothing may be written")
		})
	}
}

func TestRunner_DestinationExists(t *testing.T) {
	p := &fakePrompter{answers: map[string]string{"name": "submit"}}
	r, g, cwd := newButtonRunner(t, p)
	existing := testutil.WriteFile(t, cwd, "components/SubmitButton.vue", "<template>mine</template>\n")

	_, err := r.Run(context.Background(), g, nil)
	require.Error(t, err)

	var exists *oerrors.DestinationExistsError
	require.True(t, errors.As(err, &exists))
	assert.Equal(t, existing, exists.Path)
	assert.Equal(t, "<template>mine</template>\n", testutil.ReadFile(t, existing))
	assert.Equal(t, []string{"components/", "components/SubmitButton.vue"}, testutil.Tree(t, cwd))
}

func TestRunner_PromptAborted(t *testing.T) {
	p := &fakePrompter{err: oerrors.ErrAborted}
	r, g, cwd := newButtonRunner(t, p)

	_, err := r.Run(context.Background(), g, nil)
	require.ErrorIs(t, err, oerrors.ErrAborted)
	assert.Empty(t, testutil.Tree(t, cwd))
}

func TestRunner_DefaultAnswer(t *testing.T) {
	name, err := NewTextInput(NameKey, "Name?", "", "primary")
	require.NoError(t, err)
	label, err := NewTextInput("label", "Label?", "", "Click me")
	require.NoError(t, err)
	add, err := NewAddFile("{{kebabCase .name}}.txt", "label.tmpl")
	require.NoError(t, err)
	g, err := New("label", "", []Prompt{name, label}, []Action{add})
	require.NoError(t, err)

	cwd := t.TempDir()
	tplDir := t.TempDir()
	testutil.WriteFile(t, tplDir, "label.tmpl", "{{.name}}={{.label}}")
	src := templates.Dir(tplDir)

	r := NewRunner(&fakePrompter{answers: map[string]string{"label": "  "}}, emitter.New(src), cwd)
	outcome, err := r.Run(context.Background(), g, nil)
	require.NoError(t, err)

	assert.Equal(t, "Primary", outcome.Identifier.String())
	assert.Equal(t, "Click me", outcome.Answers["label"])
	assert.Equal(t, "Primary=Click me", testutil.ReadFile(t, filepath.Join(cwd, "primary.txt")))
}

func TestRunner_DryRun(t *testing.T) {
	g, err := Button()
	require.NoError(t, err)
	cwd := t.TempDir()

	r := NewRunner(nil, emitter.New(templates.Embedded(), emitter.WithDryRun(true)), cwd)
	outcome, err := r.Run(context.Background(), g, map[string]string{"name": "nav back"})
	require.NoError(t, err)

	assert.True(t, outcome.Result.DryRun)
	assert.Equal(t, filepath.Join(cwd, "components", "NavBackButton.vue"), outcome.Result.Path)
	assert.Empty(t, testutil.Tree(t, cwd))
}
