package profile

// Project is the static input to a composition run: the project root that
// alias and entry paths resolve against, and the dependency names declared
// in the project's package metadata.
type Project struct {
	Root         string
	Dependencies []string
}

// Profile is the complete build configuration for one target. It is
// composed once per build invocation, consumed by the bundler driver, and
// discarded; nothing mutates it after composition.
type Profile struct {
	Target  Target
	Aliases map[string]string
	Plugins []PluginRef

	// Entries is populated for the renderer target only, Externals for
	// the main target only.
	Entries   map[string]string
	Externals []string

	// Optimization toggles, derived from the snapshot.
	Sourcemap          bool
	StripLegalComments bool
	Minify             bool
	PrebundleDiscovery bool
}

// Plan is the full build plan: one profile per target, composed from a
// single environment snapshot.
type Plan struct {
	Main     Profile
	Preload  Profile
	Renderer Profile
}

// Profiles returns the plan's profiles in composition order.
func (p *Plan) Profiles() []Profile {
	return []Profile{p.Main, p.Preload, p.Renderer}
}

// Profile returns the profile for a target.
func (p *Plan) Profile(t Target) Profile {
	switch t {
	case TargetMain:
		return p.Main
	case TargetPreload:
		return p.Preload
	default:
		return p.Renderer
	}
}

// Compose derives the full build plan from an environment snapshot and the
// static project layout. It is deterministic: the same snapshot and
// project yield an identical plan. The only failure mode is a
// configuration conflict in the static alias declarations, which aborts
// the run before any profile is returned.
func Compose(snap Snapshot, proj Project) (*Plan, error) {
	plan := &Plan{}
	for _, t := range Targets() {
		prof, err := composeTarget(t, snap, proj)
		if err != nil {
			return nil, err
		}
		switch t {
		case TargetMain:
			plan.Main = prof
		case TargetPreload:
			plan.Preload = prof
		case TargetRenderer:
			plan.Renderer = prof
		}
	}
	return plan, nil
}

func composeTarget(t Target, snap Snapshot, proj Project) (Profile, error) {
	aliases, err := resolveAliases(t, targetAliases(t), proj.Root)
	if err != nil {
		return Profile{}, err
	}

	prof := Profile{
		Target:  t,
		Aliases: aliases,
		Plugins: selectPlugins(t, snap),

		Sourcemap:          snap.IsDev(),
		StripLegalComments: snap.IsProd(),
		Minify:             snap.IsProd(),
		PrebundleDiscovery: !snap.IsDev(),
	}

	switch t {
	case TargetMain:
		prof.Externals = externalModules(proj.Dependencies)
	case TargetRenderer:
		prof.Entries = rendererEntries(proj.Root)
	}

	return prof, nil
}
