package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderGeneratorTable(t *testing.T) {
	out := stripAnsi(RenderGeneratorTable([]GeneratorRow{
		{Name: "button", Source: "builtin", Description: "Generate a button", Output: "components/{{pascalCase .name}}Button.vue"},
		{Name: "card", Source: "config", Description: "Generate a card", Output: "components/{{pascalCase .name}}Card.vue"},
	}))

	for _, want := range []string{"NAME", "SOURCE", "DESCRIPTION", "OUTPUT", "button", "builtin", "card", "config", "Generate a card"} {
		assert.Contains(t, out, want)
	}
}
