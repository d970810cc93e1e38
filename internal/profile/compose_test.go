package profile

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

var testProject = Project{
	Root:         "/work/lume",
	Dependencies: []string{"axios", "zod"},
}

func devSnapshot(extra map[string]string) Snapshot {
	vars := map[string]string{"NODE_ENV": "development"}
	for k, v := range extra {
		vars[k] = v
	}
	return SnapshotFrom(vars)
}

func prodSnapshot(extra map[string]string) Snapshot {
	vars := map[string]string{"NODE_ENV": "production"}
	for k, v := range extra {
		vars[k] = v
	}
	return SnapshotFrom(vars)
}

func TestComposeDevToggles(t *testing.T) {
	plan, err := Compose(devSnapshot(nil), testProject)
	require.NoError(t, err)

	for _, prof := range plan.Profiles() {
		require.True(t, prof.Sourcemap, "dev builds emit sourcemaps for %s", prof.Target)
		require.False(t, prof.StripLegalComments, "dev builds keep legal comments for %s", prof.Target)
		require.False(t, prof.Minify)
		require.False(t, prof.PrebundleDiscovery, "discovery is disabled in dev")
	}
}

func TestComposeProdToggles(t *testing.T) {
	plan, err := Compose(prodSnapshot(nil), testProject)
	require.NoError(t, err)

	for _, prof := range plan.Profiles() {
		require.False(t, prof.Sourcemap)
		require.True(t, prof.StripLegalComments, "prod builds strip legal comments for %s", prof.Target)
		require.True(t, prof.Minify)
		require.True(t, prof.PrebundleDiscovery)
	}
}

func TestComposeProdNeverIncludesSourceInspection(t *testing.T) {
	// Even with every other flag forced on, production must not carry
	// the source-inspection pass.
	snap := prodSnapshot(map[string]string{
		"LUME_VIS_MAIN":     "true",
		"LUME_VIS_RENDERER": "true",
	})

	plan, err := Compose(snap, testProject)
	require.NoError(t, err)

	for _, prof := range plan.Profiles() {
		for _, ref := range prof.Plugins {
			require.NotEqual(t, PluginSourceInspection, ref.Name,
				"source inspection leaked into %s in production", prof.Target)
		}
	}
}

func TestComposeIdempotent(t *testing.T) {
	snap := devSnapshot(map[string]string{"LUME_VIS_RENDERER": "1"})

	first, err := Compose(snap, testProject)
	require.NoError(t, err)
	second, err := Compose(snap, testProject)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestComposeExternals(t *testing.T) {
	plan, err := Compose(prodSnapshot(nil), testProject)
	require.NoError(t, err)

	require.Equal(t,
		[]string{"axios", "bufferutil", "electron", "utf-8-validate", "zod"},
		plan.Main.Externals)

	// Externals are a main-process concern only.
	require.Nil(t, plan.Preload.Externals)
	require.Nil(t, plan.Renderer.Externals)
}

func TestComposeExternalsDeduplicated(t *testing.T) {
	proj := Project{
		Root:         "/work/lume",
		Dependencies: []string{"electron", "axios", "axios"},
	}

	plan, err := Compose(devSnapshot(nil), proj)
	require.NoError(t, err)
	require.Equal(t, []string{"axios", "bufferutil", "electron", "utf-8-validate"}, plan.Main.Externals)
}

func TestComposeRendererEntries(t *testing.T) {
	for _, snap := range []Snapshot{devSnapshot(nil), prodSnapshot(nil), SnapshotFrom(nil)} {
		plan, err := Compose(snap, testProject)
		require.NoError(t, err)

		require.Len(t, plan.Renderer.Entries, 5)
		for _, page := range []string{"index", "miniWindow", "selectionToolbar", "selectionAction", "traceWindow"} {
			require.Contains(t, plan.Renderer.Entries, page)
		}

		// Entry sets belong to the renderer alone.
		require.Nil(t, plan.Main.Entries)
		require.Nil(t, plan.Preload.Entries)
	}
}

func TestComposeRendererPluginOrder(t *testing.T) {
	snap := devSnapshot(map[string]string{"LUME_VIS_RENDERER": "true"})

	plan, err := Compose(snap, testProject)
	require.NoError(t, err)

	names := make([]string, 0, len(plan.Renderer.Plugins))
	for _, ref := range plan.Renderer.Plugins {
		names = append(names, ref.Name)
	}
	require.Equal(t, []string{PluginCSSUtility, PluginUICompiler, PluginSourceInspection, PluginVisualizer}, names)
}

func TestComposeMainVisualizer(t *testing.T) {
	plan, err := Compose(devSnapshot(nil), testProject)
	require.NoError(t, err)
	require.Empty(t, plan.Main.Plugins)

	plan, err = Compose(devSnapshot(map[string]string{"LUME_VIS_MAIN": "1"}), testProject)
	require.NoError(t, err)
	require.Len(t, plan.Main.Plugins, 1)
	require.Equal(t, PluginVisualizer, plan.Main.Plugins[0].Name)
}

func TestComposePreloadPlugins(t *testing.T) {
	plan, err := Compose(prodSnapshot(nil), testProject)
	require.NoError(t, err)

	require.Len(t, plan.Preload.Plugins, 1)
	require.Equal(t, PluginUICompiler, plan.Preload.Plugins[0].Name)
	require.Equal(t, "true", plan.Preload.Plugins[0].Params["decorators"])
}

func TestResolveAliasesRejectsDuplicates(t *testing.T) {
	// Randomized declarations with one seeded duplicate must always fail,
	// wherever the duplicate lands.
	rng := rand.New(rand.NewSource(1))
	letters := []rune("abcdefghijklmnopqrstuvwxyz")

	randPrefix := func() string {
		runes := make([]rune, 4+rng.Intn(6))
		for i := range runes {
			runes[i] = letters[rng.Intn(len(letters))]
		}
		return "@" + string(runes)
	}

	for i := 0; i < 100; i++ {
		seen := make(map[string]bool)
		var entries []aliasEntry
		for len(entries) < 2+rng.Intn(8) {
			prefix := randPrefix()
			if seen[prefix] {
				continue
			}
			seen[prefix] = true
			entries = append(entries, aliasEntry{prefix: prefix, rel: "src/" + prefix[1:]})
		}

		dup := entries[rng.Intn(len(entries))]
		at := rng.Intn(len(entries) + 1)
		entries = append(entries[:at:at], append([]aliasEntry{dup}, entries[at:]...)...)

		_, err := resolveAliases(TargetMain, entries, "/work/lume")
		require.Error(t, err)

		var dupErr *DuplicateAliasError
		require.ErrorAs(t, err, &dupErr)
		require.Equal(t, TargetMain, dupErr.Target)
		require.Equal(t, dup.prefix, dupErr.Prefix)
	}
}
