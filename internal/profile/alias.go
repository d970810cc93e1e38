package profile

import (
	"fmt"
	"path/filepath"
)

// aliasEntry pairs a symbolic import prefix with a path relative to the
// project root. The curated per-target lists below are the single source
// of truth for module resolution; targets never inherit each other's sets.
type aliasEntry struct {
	prefix string
	rel    string
}

// Shared declarations referenced by multiple targets. Declared once so the
// three target lists cannot drift apart on common paths; each target opts
// in explicitly below.
var (
	aliasShared    = aliasEntry{"@shared", "src/shared"}
	aliasTraceCore = aliasEntry{"@trace-core", "src/trace/core"}
)

// targetAliases returns the curated alias declarations for a target.
// Main carries the host-side infrastructure submodules, preload only the
// minimal bridge surface, renderer the UI feature packages.
func targetAliases(t Target) []aliasEntry {
	switch t {
	case TargetMain:
		return []aliasEntry{
			{"@main", "src/main"},
			aliasShared,
			aliasTraceCore,
			{"@logger", "src/main/logger"},
			{"@trace-ipc", "src/trace/ipc"},
		}
	case TargetPreload:
		return []aliasEntry{
			aliasShared,
			aliasTraceCore,
		}
	case TargetRenderer:
		return []aliasEntry{
			{"@renderer", "src/renderer/src"},
			aliasShared,
			aliasTraceCore,
			{"@components", "src/renderer/src/components"},
			{"@hooks", "src/renderer/src/hooks"},
			{"@windows", "src/renderer/windows"},
			{"@ext", "src/renderer/src/extensions"},
		}
	}
	return nil
}

// DuplicateAliasError reports two alias declarations sharing a prefix
// within one target's map. This is a bug in the static declarations and
// aborts the whole composition.
type DuplicateAliasError struct {
	Target Target
	Prefix string
}

func (e *DuplicateAliasError) Error() string {
	return fmt.Sprintf("duplicate alias prefix %q declared for target %s", e.Prefix, e.Target)
}

// resolveAliases resolves alias declarations against the project root into
// an absolute-path map, rejecting duplicate prefixes.
func resolveAliases(t Target, entries []aliasEntry, root string) (map[string]string, error) {
	aliases := make(map[string]string, len(entries))
	for _, e := range entries {
		if _, exists := aliases[e.prefix]; exists {
			return nil, &DuplicateAliasError{Target: t, Prefix: e.prefix}
		}
		aliases[e.prefix] = filepath.Join(root, filepath.FromSlash(e.rel))
	}
	return aliases, nil
}
