package profile

import "path/filepath"

// Page names for the renderer's independent windows. Every build produces
// all five; window inclusion is not flag-conditional.
const (
	PageIndex            = "index"
	PageMiniWindow       = "miniWindow"
	PageSelectionToolbar = "selectionToolbar"
	PageSelectionAction  = "selectionAction"
	PageTraceWindow      = "traceWindow"
)

// windowPages is the declaration order, which is also the entry-point
// order handed to the bundler.
var windowPages = []string{
	PageIndex,
	PageMiniWindow,
	PageSelectionToolbar,
	PageSelectionAction,
	PageTraceWindow,
}

// rendererEntries maps each window page name to its source entry file
// under the project root. Static by design: whether a window exists is a
// property of the application, not of the build environment.
func rendererEntries(root string) map[string]string {
	entries := make(map[string]string, len(windowPages))
	for _, page := range windowPages {
		entries[page] = filepath.Join(root, "src", "renderer", "windows", page, "index.tsx")
	}
	return entries
}
