package prompt

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/uikit-tools/scaff/internal/errors"
	"github.com/uikit-tools/scaff/internal/generator"
)

var buttonInput = generator.TextInput{
	Name:    "name",
	Message: "What is the name of the button component?",
	Hint:    "it will generate: {name}Button.vue",
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestLine_Ask(t *testing.T) {
	var out bytes.Buffer
	p := NewLine(strings.NewReader("delete item\nRemove\r\n"), &out)

	answer, err := p.Ask(context.Background(), buttonInput)
	require.NoError(t, err)
	assert.Equal(t, "delete item", answer)
	assert.Contains(t, out.String(), "What is the name of the button component?")
	assert.Contains(t, out.String(), "it will generate: {name}Button.vue")

	answer, err = p.Ask(context.Background(), generator.TextInput{Name: "label", Message: "Label?"})
	require.NoError(t, err)
	assert.Equal(t, "Remove", answer, "the reader is shared across questions")
}

func TestLine_AskEOF(t *testing.T) {
	p := NewLine(strings.NewReader("submit"), nil)
	answer, err := p.Ask(context.Background(), buttonInput)
	require.NoError(t, err)
	assert.Equal(t, "submit", answer)

	answer, err = p.Ask(context.Background(), buttonInput)
	require.NoError(t, err)
	assert.Empty(t, answer)
}

func TestLine_AskReadError(t *testing.T) {
	p := NewLine(failingReader{}, nil)
	_, err := p.Ask(context.Background(), buttonInput)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device gone")
}

func TestLine_AskCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := NewLine(strings.NewReader("submit\n"), &out).Ask(ctx, buttonInput)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestQuestion(t *testing.T) {
	q := question(generator.TextInput{Name: "label", Message: "Label?", Hint: "shown text", Default: "Click"})
	assert.True(t, strings.HasPrefix(q, "? Label?"))
	assert.Contains(t, q, "shown text")
	assert.Contains(t, q, "Click")
}

func TestStatic_Ask(t *testing.T) {
	s := Static{"name": "submit"}

	answer, err := s.Ask(context.Background(), buttonInput)
	require.NoError(t, err)
	assert.Equal(t, "submit", answer)

	answer, err = s.Ask(context.Background(), generator.TextInput{Name: "label", Message: "Label?", Default: "Click"})
	require.NoError(t, err)
	assert.Equal(t, "Click", answer)
}

func TestNew_NonTerminalUsesLine(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})

	p := New(Stdio{In: r, Out: w, Err: w})
	_, ok := p.(*Line)
	assert.True(t, ok, "pipes are not terminals")
}

func TestLine_AskInterrupted(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})

	ctx, cancel := context.WithCancel(context.Background())
	go cancel()

	_, err = NewLine(r, nil).Ask(ctx, buttonInput)
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrAborted)
	assert.ErrorIs(t, err, context.Canceled)
}
