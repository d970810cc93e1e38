// Package bundler adapts composed build profiles into esbuild invocations.
// It is the only package that talks to the bundler engine; composition
// stays pure and this package owns all side effects (output files, the
// visualizer report, the tailwind shell-out).
package bundler

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lumeapp/lumebuild/internal/profile"
	"github.com/lumeapp/lumebuild/internal/project"
)

// Driver runs esbuild builds for composed profiles.
type Driver struct {
	manifest project.Manifest
	log      zerolog.Logger
}

// New creates a driver for the given project manifest.
func New(manifest project.Manifest, log zerolog.Logger) *Driver {
	return &Driver{manifest: manifest, log: log}
}

// BuildAll builds every profile in the plan. The three targets share no
// state, so they build concurrently; the first failure cancels the rest.
func (d *Driver) BuildAll(ctx context.Context, plan *profile.Plan) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, prof := range plan.Profiles() {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			return d.Build(prof)
		})
	}
	return g.Wait()
}

// Build runs esbuild for one profile and logs the produced outputs.
func (d *Driver) Build(prof profile.Profile) error {
	opts, err := d.buildOptions(prof)
	if err != nil {
		return err
	}

	d.log.Info().
		Str("target", prof.Target.String()).
		Str("outdir", opts.Outdir).
		Bool("sourcemap", prof.Sourcemap).
		Bool("minify", prof.Minify).
		Msg("Building target")

	result := api.Build(opts)
	if len(result.Errors) > 0 {
		return buildError(prof.Target, result.Errors)
	}
	for _, msg := range result.Warnings {
		d.log.Warn().Str("target", prof.Target.String()).Str("warning", msg.Text).Msg("Build warning")
	}

	for _, file := range result.OutputFiles {
		d.log.Info().Str("target", prof.Target.String()).Str("file", file.Path).Msg("Built file")
	}

	if prof.PrebundleDiscovery && result.Metafile != "" {
		deps, err := discoverDependencies(result.Metafile)
		if err != nil {
			return fmt.Errorf("failed to analyze %s metafile: %w", prof.Target, err)
		}
		if len(deps) > 0 {
			d.log.Debug().
				Str("target", prof.Target.String()).
				Strs("dependencies", deps).
				Msg("Discovered bundled dependencies")
		}
	}

	return nil
}

// buildOptions maps a profile onto esbuild options. Every decision here is
// a mechanical translation; the profile already made all the choices.
func (d *Driver) buildOptions(prof profile.Profile) (api.BuildOptions, error) {
	outdir := d.manifest.TargetOutDir(prof.Target.String())

	opts := api.BuildOptions{
		Bundle:            true,
		Write:             true,
		Outdir:            outdir,
		Alias:             prof.Aliases,
		LogLevel:          api.LogLevelSilent,
		MinifyWhitespace:  prof.Minify,
		MinifyIdentifiers: prof.Minify,
		MinifySyntax:      prof.Minify,
		TreeShaking:       api.TreeShakingTrue,
		Sourcemap:         cond(prof.Sourcemap, api.SourceMapLinked, api.SourceMapNone),
		LegalComments:     cond(prof.StripLegalComments, api.LegalCommentsNone, api.LegalCommentsDefault),
		Metafile:          prof.PrebundleDiscovery || hasPlugin(prof, profile.PluginVisualizer),
	}

	switch prof.Target {
	case profile.TargetMain:
		opts.EntryPoints = []string{filepath.Join(d.manifest.Root, filepath.FromSlash(d.manifest.MainEntry))}
		opts.Platform = api.PlatformNode
		opts.Format = api.FormatCommonJS
		opts.External = prof.Externals
	case profile.TargetPreload:
		opts.EntryPoints = []string{filepath.Join(d.manifest.Root, filepath.FromSlash(d.manifest.PreloadEntry))}
		opts.Platform = api.PlatformNode
		opts.Format = api.FormatCommonJS
		// The bridge script is evaluated by the host runtime, which
		// supplies the electron module natively.
		opts.External = []string{"electron"}
	case profile.TargetRenderer:
		opts.EntryPointsAdvanced = rendererEntryPoints(prof.Entries)
		opts.Platform = api.PlatformBrowser
		opts.Format = api.FormatESModule
		opts.Splitting = true
		opts.ChunkNames = "chunks/[name]-[hash]"
	}

	if err := d.materializePlugins(prof, outdir, &opts); err != nil {
		return api.BuildOptions{}, err
	}

	return opts, nil
}

// rendererEntryPoints converts the window entry map into advanced entry
// points, one output per page name, in deterministic page order.
func rendererEntryPoints(entries map[string]string) []api.EntryPoint {
	pages := make([]string, 0, len(entries))
	for page := range entries {
		pages = append(pages, page)
	}
	sort.Strings(pages)

	eps := make([]api.EntryPoint, 0, len(pages))
	for _, page := range pages {
		eps = append(eps, api.EntryPoint{
			InputPath:  entries[page],
			OutputPath: page,
		})
	}
	return eps
}

func hasPlugin(prof profile.Profile, name string) bool {
	for _, ref := range prof.Plugins {
		if ref.Name == name {
			return true
		}
	}
	return false
}

func buildError(t profile.Target, msgs []api.Message) error {
	lines := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		text := msg.Text
		if msg.Location != nil {
			text = fmt.Sprintf("%s:%d:%d: %s", msg.Location.File, msg.Location.Line, msg.Location.Column, msg.Text)
		}
		lines = append(lines, text)
	}
	return fmt.Errorf("esbuild failed for target %s:\n%s", t, strings.Join(lines, "\n"))
}

var errUnknownPlugin = errors.New("unknown plugin reference")

func cond[T any](condition bool, trueVal, falseVal T) T {
	if condition {
		return trueVal
	}
	return falseVal
}
