// Package templates provides the content templates shipped with scaff and
// the renderer that fills them in.
package templates

import (
	"embed"
	"io/fs"
	"sort"
)

//go:embed files/*
var embeddedFS embed.FS

// ButtonTemplate is the content template used by the button generator.
const ButtonTemplate = "button.vue.tmpl"

// shippedFS returns the embedded template tree rooted at files/.
func shippedFS() fs.FS {
	sub, err := fs.Sub(embeddedFS, "files")
	if err != nil {
		// files/ is fixed at build time by the embed directive.
		panic(err)
	}
	return sub
}

// List returns the names of all shipped templates in lexical order.
func List() ([]string, error) {
	var names []string

	err := fs.WalkDir(shippedFS(), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		names = append(names, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(names)
	return names, nil
}
