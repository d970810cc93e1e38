package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lumeapp/lumebuild/internal/bundler"
	"github.com/lumeapp/lumebuild/internal/logger"
	"github.com/lumeapp/lumebuild/internal/profile"
)

type BuildCmd struct {
	Manifest string   `help:"Path to the build manifest" default:"lume.build.yml" env:"LUME_BUILD_MANIFEST"`
	Target   []string `help:"Restrict the build to specific targets (main, preload, renderer)" enum:"main,preload,renderer" env:"LUME_BUILD_TARGET"`
}

func (c *BuildCmd) Run(ctx context.Context, globals *Globals) error {
	log := logger.Setup(globals.Debug)
	log = log.With().Str("build_id", uuid.NewString()).Logger()

	log.Info().Str("version", globals.Version).Str("manifest", c.Manifest).Msg("Starting build")

	plan, manifest, err := composePlan(c.Manifest)
	if err != nil {
		return fmt.Errorf("failed to compose build plan: %w", err)
	}

	driver := bundler.New(manifest, log)

	if len(c.Target) == 0 {
		return driver.BuildAll(ctx, plan)
	}

	for _, name := range c.Target {
		target, err := targetByName(name)
		if err != nil {
			return err
		}
		if err := driver.Build(plan.Profile(target)); err != nil {
			return err
		}
	}
	return nil
}

func targetByName(name string) (profile.Target, error) {
	for _, t := range profile.Targets() {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown target %q", name)
}
