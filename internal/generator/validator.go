package generator

import (
	"fmt"
	"regexp"

	oerrors "github.com/uikit-tools/scaff/internal/errors"
)

// Generator names are lowercase kebab-case: they are typed on the command line.
var generatorNameRegex = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// Answer keys are referenced from templates as {{.key}}, so they must be
// valid template field names.
var answerKeyRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

// ValidateGeneratorName checks if a generator name is valid.
func ValidateGeneratorName(name string) error {
	if name == "" {
		return fmt.Errorf("generator name cannot be empty: %w", oerrors.ErrValidation)
	}

	if !generatorNameRegex.MatchString(name) {
		return fmt.Errorf("invalid generator name %q: must be lowercase kebab-case starting with a letter: %w", name, oerrors.ErrValidation)
	}

	if isReservedWord(name) {
		return fmt.Errorf("invalid generator name %q: reserved command name: %w", name, oerrors.ErrValidation)
	}

	return nil
}

// ValidateAnswerKey checks if a prompt answer key is valid.
func ValidateAnswerKey(key string) error {
	if key == "" {
		return fmt.Errorf("prompt name cannot be empty: %w", oerrors.ErrValidation)
	}

	if !answerKeyRegex.MatchString(key) {
		return fmt.Errorf("invalid prompt name %q: must start with a letter and contain only letters, digits, and underscores: %w", key, oerrors.ErrValidation)
	}

	return nil
}

// isReservedWord reports names that collide with scaff subcommands.
func isReservedWord(name string) bool {
	reserved := map[string]bool{
		"config":     true,
		"completion": true,
		"help":       true,
		"list":       true,
		"run":        true,
		"version":    true,
	}
	return reserved[name]
}
