// Package emitter resolves a destination from a path template, renders a
// content template, and creates exactly one new file.
package emitter

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	oerrors "github.com/uikit-tools/scaff/internal/errors"
	"github.com/uikit-tools/scaff/internal/naming"
	"github.com/uikit-tools/scaff/internal/output"
	"github.com/uikit-tools/scaff/internal/templates"
)

// Request describes a single file emission.
type Request struct {
	// Identifier is substituted for the "name" key of the template context.
	Identifier naming.Identifier

	// PathTemplate is the destination path relative to Cwd,
	// e.g. "components/{{pascalCase .name}}Button.vue".
	PathTemplate string

	// ContentTemplate is the template path inside the emitter's Source.
	ContentTemplate string

	// Cwd is the destination root.
	Cwd string

	// Data holds the remaining answers. It is copied, never mutated.
	Data map[string]any
}

// Result is the outcome of a successful emission.
type Result struct {
	// Path is the absolute path of the created file.
	Path string

	// BytesWritten is the size of the rendered content.
	BytesWritten int

	// Content is the rendered file content.
	Content []byte

	// DryRun is set when nothing was written.
	DryRun bool
}

// Emitter renders and writes files from templates.
type Emitter struct {
	source   templates.Source
	renderer *templates.Renderer
	dryRun   bool
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithDryRun makes Emit resolve and render without touching the filesystem.
func WithDryRun(dryRun bool) Option {
	return func(e *Emitter) {
		e.dryRun = dryRun
	}
}

// New creates an emitter reading content templates from source.
func New(source templates.Source, opts ...Option) *Emitter {
	e := &Emitter{
		source:   source,
		renderer: templates.NewRenderer(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Emit resolves the destination, renders the content template and writes
// the result. The destination must not exist; on any failure the
// filesystem is left as it was.
func (e *Emitter) Emit(ctx context.Context, req Request) (*Result, error) {
	data := make(map[string]any, len(req.Data)+1)
	for k, v := range req.Data {
		data[k] = v
	}
	data["name"] = req.Identifier.String()

	dest, err := e.resolve(req, data)
	if err != nil {
		return nil, err
	}

	raw, err := e.source.Read(req.ContentTemplate)
	if err != nil {
		return nil, err
	}

	content, err := e.renderer.Render(req.ContentTemplate, raw, data)
	if err != nil {
		return nil, oerrors.Wrap(oerrors.ErrValidation, err.Error())
	}

	output.Debug("rendered template",
		"template", req.ContentTemplate,
		"source", e.source.String(),
		"dest", dest,
		"bytes", len(content))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if e.dryRun {
		if err := checkAbsent(dest); err != nil {
			return nil, err
		}
		return &Result{Path: dest, BytesWritten: 0, Content: content, DryRun: true}, nil
	}

	n, err := writeNew(dest, content)
	if err != nil {
		return nil, err
	}

	output.Debug("created file", "path", dest, "bytes", n)

	return &Result{Path: dest, BytesWritten: n, Content: content}, nil
}

// resolve renders the path template and joins it with the destination root.
func (e *Emitter) resolve(req Request, data map[string]any) (string, error) {
	root, err := filepath.Abs(req.Cwd)
	if err != nil {
		return "", fmt.Errorf("resolving destination root %s: %w", req.Cwd, err)
	}

	rel, err := e.renderer.RenderString("path", req.PathTemplate, data)
	if err != nil {
		return "", oerrors.Wrap(oerrors.ErrValidation, err.Error())
	}

	rel = filepath.Clean(filepath.FromSlash(strings.TrimSpace(rel)))
	if rel == "." || filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", oerrors.NewValidationError(
			fmt.Sprintf("path template %q resolves to %q, which is not a file inside %s", req.PathTemplate, rel, root),
			root,
			"Use a relative path such as components/{{pascalCase .name}}Button.vue",
		)
	}

	return filepath.Join(root, rel), nil
}
