package profile

import (
	"os"
	"strings"
)

// Environment variables consulted during composition. Absence of any of
// them selects the off/disabled branch; composition never fails on the
// environment.
const (
	envNodeEnv          = "NODE_ENV"
	envVisualizerPrefix = "LUME_VIS_" // LUME_VIS_MAIN, LUME_VIS_RENDERER
)

// Snapshot is a read-only capture of the process environment, taken once
// at the start of a composition run. Every flag lookup during a run goes
// through the same snapshot, so a flag cannot change value mid-composition.
type Snapshot struct {
	vars map[string]string
}

// CaptureEnv snapshots the current process environment.
func CaptureEnv() Snapshot {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return Snapshot{vars: vars}
}

// SnapshotFrom builds a snapshot from an explicit variable map. Used by
// tests and by callers that inject a scrubbed environment.
func SnapshotFrom(vars map[string]string) Snapshot {
	copied := make(map[string]string, len(vars))
	for k, v := range vars {
		copied[k] = v
	}
	return Snapshot{vars: copied}
}

// IsDev reports whether the snapshot selects development mode.
func (s Snapshot) IsDev() bool {
	return s.vars[envNodeEnv] == "development"
}

// IsProd reports whether the snapshot selects production mode.
func (s Snapshot) IsProd() bool {
	return s.vars[envNodeEnv] == "production"
}

// VisualizerEnabled reports whether the bundle-size visualizer is enabled
// for the given target. Only main and renderer have visualizer flags;
// every other target resolves to false.
func (s Snapshot) VisualizerEnabled(t Target) bool {
	switch t {
	case TargetMain, TargetRenderer:
		return truthy(s.vars[envVisualizerPrefix+strings.ToUpper(t.String())])
	default:
		return false
	}
}

func truthy(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
