package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	oerrors "github.com/uikit-tools/scaff/internal/errors"
)

// Source loads raw content templates by relative path.
type Source interface {
	// Read returns the template content at name. A missing or unreadable
	// template is reported as *errors.TemplateNotFoundError.
	Read(name string) ([]byte, error)

	// String describes where templates are read from.
	String() string
}

type fsSource struct {
	fsys  fs.FS
	label string
}

// Embedded returns the templates compiled into the binary.
func Embedded() Source {
	return &fsSource{fsys: shippedFS(), label: "embedded"}
}

// Dir returns a Source reading templates from a directory on disk.
func Dir(dir string) Source {
	return &fsSource{fsys: os.DirFS(dir), label: dir}
}

// FromFS returns a Source backed by an arbitrary filesystem.
func FromFS(fsys fs.FS, label string) Source {
	return &fsSource{fsys: fsys, label: label}
}

func (s *fsSource) Read(name string) ([]byte, error) {
	clean := path.Clean(strings.ReplaceAll(name, "\\", "/"))
	if !fs.ValidPath(clean) {
		return nil, &oerrors.TemplateNotFoundError{
			Path: name,
			Err:  fmt.Errorf("template path must be relative and stay inside %s", s.label),
		}
	}

	content, err := fs.ReadFile(s.fsys, clean)
	if err != nil {
		return nil, &oerrors.TemplateNotFoundError{Path: name, Err: err}
	}
	return content, nil
}

func (s *fsSource) String() string {
	return s.label
}

type chain []Source

// Chain returns a Source that tries each source in order and returns the
// first template found. Only "does not exist" falls through to the next
// source; any other read failure is returned immediately.
func Chain(sources ...Source) Source {
	return chain(sources)
}

func (c chain) Read(name string) ([]byte, error) {
	var lastErr error
	for _, s := range c {
		content, err := s.Read(name)
		if err == nil {
			return content, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		lastErr = err
	}

	if lastErr == nil {
		lastErr = &oerrors.TemplateNotFoundError{Path: name, Err: fs.ErrNotExist}
	}
	return nil, lastErr
}

func (c chain) String() string {
	labels := make([]string, 0, len(c))
	for _, s := range c {
		labels = append(labels, s.String())
	}
	return strings.Join(labels, " -> ")
}
