package templates

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/uikit-tools/scaff/internal/naming"
)

// FuncMap returns the case helpers available inside path and content templates.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"pascalCase":   naming.Pascal,
		"camelCase":    naming.Camel,
		"kebabCase":    naming.Kebab,
		"snakeCase":    naming.Snake,
		"constantCase": naming.Constant,
		"lower":        strings.ToLower,
		"upper":        strings.ToUpper,
	}
}

// Renderer handles template rendering with data substitution.
type Renderer struct {
	funcs template.FuncMap
}

// NewRenderer creates a renderer with the standard helper set.
func NewRenderer() *Renderer {
	return &Renderer{funcs: FuncMap()}
}

// Parse parses a template without executing it. Missing keys are errors at
// execution time.
func (r *Renderer) Parse(name, content string) (*template.Template, error) {
	tmpl, err := template.New(name).Funcs(r.funcs).Option("missingkey=error").Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	return tmpl, nil
}

// Render renders a single template and returns the content.
func (r *Renderer) Render(name string, content []byte, data any) ([]byte, error) {
	tmpl, err := r.Parse(name, string(content))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

// RenderString renders a template string and returns the result.
func (r *Renderer) RenderString(name, content string, data any) (string, error) {
	result, err := r.Render(name, []byte(content), data)
	if err != nil {
		return "", err
	}
	return string(result), nil
}
