// Package prompt collects generator answers from the operator.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	oerrors "github.com/uikit-tools/scaff/internal/errors"
	"github.com/uikit-tools/scaff/internal/generator"
	"github.com/uikit-tools/scaff/internal/output"
)

// Stdio holds the streams used for prompting.
type Stdio struct {
	In  terminal.FileReader
	Out terminal.FileWriter
	Err terminal.FileWriter
}

// DefaultStdio prompts on the process streams.
var DefaultStdio = Stdio{
	In:  os.Stdin,
	Out: os.Stdout,
	Err: os.Stderr,
}

// New returns an interactive prompter when both ends of s are terminals
// and a line reader otherwise.
func New(s Stdio) generator.Prompter {
	in, inOK := s.In.(*os.File)
	out, outOK := s.Out.(*os.File)
	if inOK && outOK && output.IsTerminal(in) && output.IsTerminal(out) {
		return NewInteractive(s)
	}
	return NewLine(s.In, s.Err)
}

// Interactive asks questions with a terminal UI.
type Interactive struct {
	stdio Stdio
}

// NewInteractive creates an interactive prompter on s.
func NewInteractive(s Stdio) *Interactive {
	return &Interactive{stdio: s}
}

// Ask implements generator.Prompter. Ctrl-C yields ErrAborted.
func (p *Interactive) Ask(ctx context.Context, in generator.TextInput) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	q := &survey.Input{
		Message: in.Message,
		Help:    in.Hint,
		Default: in.Default,
	}

	var answer string
	err := survey.AskOne(q, &answer, survey.WithStdio(p.stdio.In, p.stdio.Out, p.stdio.Err))
	if errors.Is(err, terminal.InterruptErr) {
		return "", fmt.Errorf("prompt %q: %w", in.Name, oerrors.ErrAborted)
	}
	if err != nil {
		return "", fmt.Errorf("prompt %q: %w", in.Name, err)
	}
	return answer, nil
}

// Line reads one answer per line. It is used when stdin is piped.
type Line struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLine creates a line prompter reading from r. Questions are written to w.
func NewLine(r io.Reader, w io.Writer) *Line {
	if w == nil {
		w = io.Discard
	}
	return &Line{in: bufio.NewReader(r), out: w}
}

// Ask implements generator.Prompter. End of input yields an empty answer;
// cancelling ctx while waiting yields ErrAborted.
func (p *Line) Ask(ctx context.Context, in generator.TextInput) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", aborted(in, err)
	}

	fmt.Fprint(p.out, question(in))

	type read struct {
		line string
		err  error
	}
	done := make(chan read, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		done <- read{line, err}
	}()

	var r read
	select {
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		return "", aborted(in, ctx.Err())
	case r = <-done:
	}

	if r.err != nil && !errors.Is(r.err, io.EOF) {
		return "", fmt.Errorf("prompt %q: reading answer: %w", in.Name, r.err)
	}
	if errors.Is(r.err, io.EOF) {
		fmt.Fprintln(p.out)
	}

	return strings.TrimRight(r.line, "\r\n"), nil
}

func aborted(in generator.TextInput, cause error) error {
	return fmt.Errorf("prompt %q: %w: %w", in.Name, oerrors.ErrAborted, cause)
}

// question formats a text input the way survey renders it.
func question(in generator.TextInput) string {
	var b strings.Builder
	b.WriteString("? ")
	b.WriteString(in.Message)
	if in.Hint != "" {
		b.WriteString(" ")
		b.WriteString(output.StyleDim.Render("(" + in.Hint + ")"))
	}
	if in.Default != "" {
		b.WriteString(" ")
		b.WriteString(output.StyleDim.Render("[" + in.Default + "]"))
	}
	b.WriteString(" ")
	return b.String()
}

// Static answers from a fixed map without any I/O. Unknown keys get the
// prompt default.
type Static map[string]string

// Ask implements generator.Prompter.
func (s Static) Ask(ctx context.Context, in generator.TextInput) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if v, ok := s[in.Name]; ok {
		return v, nil
	}
	return in.Default, nil
}
