package commands

import (
	"fmt"

	"github.com/lumeapp/lumebuild/internal/profile"
	"github.com/lumeapp/lumebuild/internal/project"
)

type Globals struct {
	Debug   bool
	Version string
}

// composePlan loads the project inputs and runs profile composition. Both
// build and plan go through this one path so they always agree on what
// would be built.
func composePlan(manifestPath string) (*profile.Plan, project.Manifest, error) {
	manifest, err := project.LoadManifest(manifestPath)
	if err != nil {
		return nil, project.Manifest{}, err
	}

	manifest, err = manifest.Resolved()
	if err != nil {
		return nil, project.Manifest{}, err
	}

	deps, err := project.Dependencies(manifest.PackageJSON)
	if err != nil {
		// The external module set for the main target depends on this
		// metadata; an unreadable package.json fails the whole run.
		return nil, project.Manifest{}, fmt.Errorf("failed to load package metadata: %w", err)
	}

	snapshot := profile.CaptureEnv()
	plan, err := profile.Compose(snapshot, profile.Project{Root: manifest.Root, Dependencies: deps})
	if err != nil {
		return nil, project.Manifest{}, err
	}
	return plan, manifest, nil
}
