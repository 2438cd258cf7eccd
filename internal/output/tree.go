package output

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	treeLast  = "└── "
	treeSpace = "    "

	// descColumn is where the file description starts.
	descColumn = 30
)

// RenderFileTree renders root and the chain of directories leading to the
// single file at rel, with desc aligned after the file name.
//
//	/work/app/
//	└── components/
//	    └── SubmitButton.vue  1024 bytes
func RenderFileTree(root, rel, desc string) string {
	rel = strings.Trim(filepath.ToSlash(rel), "/")
	if rel == "" {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(StyleBold.Render(strings.TrimSuffix(root, "/") + "/"))
	sb.WriteString("\n")

	parts := strings.Split(rel, "/")
	for depth, part := range parts {
		line := strings.Repeat(treeSpace, depth) + treeLast + part
		if depth < len(parts)-1 {
			sb.WriteString(line + "/\n")
			continue
		}

		if desc != "" {
			line += strings.Repeat(" ", max(descColumn-lipgloss.Width(line), 2))
			line += StyleDim.Render(desc)
		}
		sb.WriteString(line + "\n")
	}

	return sb.String()
}
