// Package version provides version information for the scaff CLI.
package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/uikit-tools/scaff/internal/templates"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string `json:"version" yaml:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit" yaml:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate" yaml:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion" yaml:"goVersion"`

	// Templates lists the templates embedded in the binary.
	Templates []string `json:"templates" yaml:"templates"`
}

// Get returns the current version information.
func Get() Info {
	shipped, err := templates.List()
	if err != nil {
		shipped = nil
	}

	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Templates: shipped,
	}
}

// String returns a human-readable version string.
func (i Info) String() string {
	tpl := "none"
	if len(i.Templates) > 0 {
		tpl = strings.Join(i.Templates, ", ")
	}
	return fmt.Sprintf("scaff version %s\n  Commit:    %s\n  Built:     %s\n  Go:        %s\n  Templates: %s",
		i.Version, i.GitCommit, i.BuildDate, i.GoVersion, tpl)
}
