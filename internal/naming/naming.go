// Package naming turns operator-supplied names into identifiers.
package naming

import (
	"strings"

	"github.com/iancoleman/strcase"

	oerrors "github.com/uikit-tools/scaff/internal/errors"
)

// Identifier is a pascal-cased component name made of ASCII letters and
// digits that starts with an uppercase letter.
type Identifier string

// String returns the identifier text.
func (i Identifier) String() string {
	return string(i)
}

// Transform converts raw input into an Identifier.
// Examples: "submit" -> "Submit", "submit-large" -> "SubmitLarge",
// "delete item" -> "DeleteItem".
func Transform(raw string) (Identifier, error) {
	if strings.TrimSpace(raw) == "" {
		return "", &oerrors.InvalidNameError{Raw: raw, Reason: "name cannot be empty"}
	}

	id := Pascal(raw)
	if id == "" {
		return "", &oerrors.InvalidNameError{Raw: raw, Reason: "name must contain at least one ASCII letter or digit"}
	}

	if !isUpper(id[0]) {
		return "", &oerrors.InvalidNameError{Raw: raw, Reason: "name must start with a letter"}
	}

	return Identifier(id), nil
}

// Pascal returns the PascalCase form of s. Bytes that are not ASCII
// letters or digits separate words and are dropped.
func Pascal(s string) string {
	return strcase.ToCamel(words(s))
}

// Camel returns the camelCase form of s.
func Camel(s string) string {
	return strcase.ToLowerCamel(words(s))
}

// Kebab returns the kebab-case form of s.
func Kebab(s string) string {
	return strcase.ToKebab(words(s))
}

// Snake returns the snake_case form of s.
func Snake(s string) string {
	return strcase.ToSnake(words(s))
}

// Constant returns the SCREAMING_SNAKE_CASE form of s.
func Constant(s string) string {
	return strcase.ToScreamingSnake(words(s))
}

// words rewrites s as space-separated words that strcase splits correctly.
// Every run of bytes outside [A-Za-z0-9] becomes one space, and an acronym
// followed by a capitalised word is split before that word
// ("HTMLButton" -> "HTML Button").
func words(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	sep := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isAlnum(c) {
			sep = true
			continue
		}

		acronymEnd := i > 0 && i+1 < len(s) && isUpper(c) && isUpper(s[i-1]) && isLower(s[i+1])
		if (sep || acronymEnd) && b.Len() > 0 {
			b.WriteByte(' ')
		}
		sep = false
		b.WriteByte(c)
	}

	return b.String()
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isAlnum(c byte) bool {
	return isUpper(c) || isLower(c) || (c >= '0' && c <= '9')
}
