package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	info := Get()

	require.NotEmpty(t, info.GoVersion, "GoVersion should be populated")
	assert.Equal(t, Version, info.Version)
	assert.Contains(t, info.Templates, "button.vue.tmpl")
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "v1.0.0",
		GitCommit: "abc123",
		BuildDate: "2026-01-29",
		GoVersion: "go1.25",
		Templates: []string{"button.vue.tmpl"},
	}

	str := info.String()

	assert.Contains(t, str, "scaff version v1.0.0")
	assert.Contains(t, str, "abc123")
	assert.Contains(t, str, "2026-01-29")
	assert.Contains(t, str, "go1.25")
	assert.Contains(t, str, "button.vue.tmpl")
}

func TestInfoString_NoTemplates(t *testing.T) {
	assert.Contains(t, Info{Version: "v1.0.0"}.String(), "Templates: none")
}
