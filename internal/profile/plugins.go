package profile

// Plugin names understood by the bundler driver's materialization registry.
// The composer treats these as opaque handles: it decides inclusion and
// order, never behavior.
const (
	// PluginVisualizer captures the bundler metafile and writes a
	// bundle-size report after the build.
	PluginVisualizer = "visualizer"
	// PluginUICompiler is the UI-framework compiler pass. It always runs
	// with decorator syntax enabled.
	PluginUICompiler = "uiCompiler"
	// PluginCSSUtility is the utility-CSS framework pass for renderer
	// stylesheets.
	PluginCSSUtility = "cssUtility"
	// PluginSourceInspection maps rendered elements back to their source
	// files. Development only: it must never leak source paths into
	// production artifacts.
	PluginSourceInspection = "sourceInspection"
)

// PluginRef is an opaque reference to a build-time plugin plus its
// instantiation parameters. Order within a profile is the order plugins run.
type PluginRef struct {
	Name   string
	Params map[string]string
}

// pluginRule is one row of a target's plugin table: the plugin is included
// iff when(snapshot) is true. Rows are evaluated top to bottom, so the
// table order is the plugin order.
type pluginRule struct {
	when   func(Snapshot) bool
	plugin PluginRef
}

func always(Snapshot) bool { return true }

// pluginTable returns the ordered inclusion rules for a target.
//
// Source-transforming plugins come before size observers, and the
// source-inspection pass is gated on development mode alone so that no
// combination of other flags can enable it in production.
func pluginTable(t Target) []pluginRule {
	switch t {
	case TargetMain:
		return []pluginRule{
			{func(s Snapshot) bool { return s.VisualizerEnabled(TargetMain) }, PluginRef{Name: PluginVisualizer}},
		}
	case TargetPreload:
		return []pluginRule{
			{always, PluginRef{Name: PluginUICompiler, Params: map[string]string{"decorators": "true"}}},
		}
	case TargetRenderer:
		return []pluginRule{
			{always, PluginRef{Name: PluginCSSUtility}},
			{always, PluginRef{Name: PluginUICompiler, Params: map[string]string{"decorators": "true"}}},
			{func(s Snapshot) bool { return s.IsDev() }, PluginRef{Name: PluginSourceInspection}},
			{func(s Snapshot) bool { return s.VisualizerEnabled(TargetRenderer) }, PluginRef{Name: PluginVisualizer}},
		}
	}
	return nil
}

// selectPlugins evaluates a target's plugin table against the snapshot.
func selectPlugins(t Target, snap Snapshot) []PluginRef {
	var refs []PluginRef
	for _, rule := range pluginTable(t) {
		if rule.when(snap) {
			refs = append(refs, rule.plugin)
		}
	}
	return refs
}
