package profile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTargetAliasDeclarationsAreUnique(t *testing.T) {
	for _, target := range Targets() {
		aliases, err := resolveAliases(target, targetAliases(target), "/work/lume")
		require.NoError(t, err, "curated declarations for %s", target)
		require.NotEmpty(t, aliases)
	}
}

func TestAliasPathsResolveAgainstRoot(t *testing.T) {
	aliases, err := resolveAliases(TargetMain, targetAliases(TargetMain), "/work/lume")
	require.NoError(t, err)

	require.Equal(t, filepath.Join("/work/lume", "src", "main"), aliases["@main"])
	require.Equal(t, filepath.Join("/work/lume", "src", "shared"), aliases["@shared"])
	for prefix, path := range aliases {
		require.True(t, filepath.IsAbs(path), "alias %s resolved to relative path %s", prefix, path)
	}
}

func TestTargetAliasSetsAreIndependent(t *testing.T) {
	plan, err := Compose(SnapshotFrom(nil), testProject)
	require.NoError(t, err)

	// Preload is the minimal bridge surface: shared code and trace core,
	// nothing else.
	require.Len(t, plan.Preload.Aliases, 2)
	require.Contains(t, plan.Preload.Aliases, "@shared")
	require.Contains(t, plan.Preload.Aliases, "@trace-core")

	// Host-side infra aliases must not appear in the renderer: resolving
	// a main-only path inside UI code should fail at bundle time, not be
	// papered over here.
	require.NotContains(t, plan.Renderer.Aliases, "@main")
	require.NotContains(t, plan.Renderer.Aliases, "@logger")
	require.NotContains(t, plan.Main.Aliases, "@ext")
	require.NotContains(t, plan.Preload.Aliases, "@components")
}

func TestSharedAliasDeclaredOnce(t *testing.T) {
	plan, err := Compose(SnapshotFrom(nil), testProject)
	require.NoError(t, err)

	// Every target that opts into a shared alias sees the same path.
	shared := plan.Main.Aliases["@shared"]
	require.Equal(t, shared, plan.Preload.Aliases["@shared"])
	require.Equal(t, shared, plan.Renderer.Aliases["@shared"])

	trace := plan.Main.Aliases["@trace-core"]
	require.Equal(t, trace, plan.Preload.Aliases["@trace-core"])
	require.Equal(t, trace, plan.Renderer.Aliases["@trace-core"])
}
