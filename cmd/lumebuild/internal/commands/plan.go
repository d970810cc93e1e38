package commands

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lumeapp/lumebuild/internal/profile"
)

type PlanCmd struct {
	Manifest string `help:"Path to the build manifest" default:"lume.build.yml" env:"LUME_BUILD_MANIFEST"`
}

// planView is the YAML shape of one composed profile, for inspection.
type planView struct {
	Target             string            `yaml:"target"`
	Aliases            map[string]string `yaml:"aliases"`
	Plugins            []pluginView      `yaml:"plugins,omitempty"`
	Entries            map[string]string `yaml:"entries,omitempty"`
	Externals          []string          `yaml:"externals,omitempty"`
	Sourcemap          bool              `yaml:"sourcemap"`
	StripLegalComments bool              `yaml:"stripLegalComments"`
	Minify             bool              `yaml:"minify"`
	PrebundleDiscovery bool              `yaml:"prebundleDiscovery"`
}

type pluginView struct {
	Name   string            `yaml:"name"`
	Params map[string]string `yaml:"params,omitempty"`
}

func (c *PlanCmd) Run(globals *Globals) error {
	plan, _, err := composePlan(c.Manifest)
	if err != nil {
		return fmt.Errorf("failed to compose build plan: %w", err)
	}

	views := make([]planView, 0, len(plan.Profiles()))
	for _, prof := range plan.Profiles() {
		views = append(views, viewOf(prof))
	}

	return yaml.NewEncoder(os.Stdout).Encode(views)
}

func viewOf(prof profile.Profile) planView {
	view := planView{
		Target:             prof.Target.String(),
		Aliases:            prof.Aliases,
		Entries:            prof.Entries,
		Externals:          prof.Externals,
		Sourcemap:          prof.Sourcemap,
		StripLegalComments: prof.StripLegalComments,
		Minify:             prof.Minify,
		PrebundleDiscovery: prof.PrebundleDiscovery,
	}
	for _, ref := range prof.Plugins {
		view.Plugins = append(view.Plugins, pluginView{Name: ref.Name, Params: ref.Params})
	}
	return view
}
