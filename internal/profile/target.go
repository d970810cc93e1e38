// Package profile composes per-target build profiles for the Lume desktop
// application. A composition run is a pure function of an environment
// Snapshot and the static project layout: it derives aliases, plugins,
// entry points, externals, and optimization toggles for each process target
// and hands the immutable result to the bundler driver.
package profile

import "fmt"

// Target identifies which of the three Lume processes a profile is built
// for. The set is closed; composition iterates Targets() in order.
type Target int

const (
	// TargetMain is the host/background process. It runs on the node
	// platform and is the only target with an external module set.
	TargetMain Target = iota
	// TargetPreload is the privileged bridge between main and renderer.
	TargetPreload
	// TargetRenderer is the UI process, built once with one entry per
	// application window.
	TargetRenderer
)

// Targets returns the fixed composition order.
func Targets() []Target {
	return []Target{TargetMain, TargetPreload, TargetRenderer}
}

func (t Target) String() string {
	switch t {
	case TargetMain:
		return "main"
	case TargetPreload:
		return "preload"
	case TargetRenderer:
		return "renderer"
	}
	return fmt.Sprintf("target(%d)", int(t))
}
