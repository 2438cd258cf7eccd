package generator

import (
	"fmt"
	"sort"
	"strings"

	oerrors "github.com/uikit-tools/scaff/internal/errors"
)

// Registry holds the generators available to a scaff invocation. It is
// built explicitly by the entry point.
type Registry struct {
	generators map[string]*Generator
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{generators: make(map[string]*Generator)}
}

// Register validates g and adds it. Names must be unique.
func (r *Registry) Register(g *Generator) error {
	if g == nil {
		return fmt.Errorf("registering nil generator: %w", oerrors.ErrValidation)
	}
	if err := g.Validate(); err != nil {
		return err
	}

	if existing, ok := r.generators[g.Name]; ok {
		return oerrors.NewValidationError(
			fmt.Sprintf("generator %q is already registered (%s)", g.Name, existing.Origin),
			"",
			"Rename the generator declared in your config file.",
		)
	}

	r.generators[g.Name] = g
	return nil
}

// Get returns a generator by name.
func (r *Registry) Get(name string) (*Generator, error) {
	g, ok := r.generators[name]
	if !ok {
		return nil, oerrors.NewNotFoundError(
			fmt.Sprintf("unknown generator %q", name),
			"",
			fmt.Sprintf("Valid generators: %s", strings.Join(r.Names(), ", ")),
		)
	}
	return g, nil
}

// List returns all generators sorted by name.
func (r *Registry) List() []*Generator {
	list := make([]*Generator, 0, len(r.generators))
	for _, g := range r.generators {
		list = append(list, g)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	return list
}

// Names returns all generator names sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered generators.
func (r *Registry) Len() int {
	return len(r.generators)
}
