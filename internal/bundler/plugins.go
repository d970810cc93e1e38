package bundler

import (
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/rs/zerolog"

	"github.com/lumeapp/lumebuild/internal/profile"
)

// tsconfig handed to the compiler pass. The UI framework relies on
// decorator syntax, and class fields must keep assignment semantics for
// its reactive property declarations.
const decoratorTsconfig = `{
	"compilerOptions": {
		"experimentalDecorators": true,
		"useDefineForClassFields": false
	}
}`

// materializePlugins resolves each opaque plugin reference from the
// profile into its esbuild form, in profile order. Some references become
// api.Plugin instances, others translate into build option settings; the
// profile does not know or care which.
func (d *Driver) materializePlugins(prof profile.Profile, outdir string, opts *api.BuildOptions) error {
	for _, ref := range prof.Plugins {
		switch ref.Name {
		case profile.PluginUICompiler:
			opts.JSX = api.JSXAutomatic
			if ref.Params["decorators"] == "true" {
				opts.TsconfigRaw = decoratorTsconfig
			}

		case profile.PluginCSSUtility:
			if d.manifest.TailwindBin == "" {
				d.log.Debug().Str("target", prof.Target.String()).Msg("No tailwind binary configured, stylesheets pass through")
				continue
			}
			opts.Plugins = append(opts.Plugins, tailwindPlugin(d.manifest.TailwindBin, d.manifest.TailwindConfig))

		case profile.PluginSourceInspection:
			// jsx-dev runtime calls carry file/line/column for every
			// rendered element, which is what the inspector overlay
			// reads. Gated on dev mode upstream; production builds
			// never see this reference.
			opts.JSXDev = true

		case profile.PluginVisualizer:
			reportPath := filepath.Join(outdir, "bundle-report.json")
			opts.Plugins = append(opts.Plugins, visualizerPlugin(prof.Target, reportPath, d.log))

		default:
			return fmt.Errorf("%w: %q for target %s", errUnknownPlugin, ref.Name, prof.Target)
		}
	}
	return nil
}

// tailwindPlugin runs the utility-CSS compiler over each stylesheet before
// esbuild bundles it. The binary writes compiled CSS to stdout.
func tailwindPlugin(bin, config string) api.Plugin {
	return api.Plugin{
		Name: "tailwind",
		Setup: func(build api.PluginBuild) {
			build.OnLoad(api.OnLoadOptions{Filter: `\.css$`}, func(args api.OnLoadArgs) (api.OnLoadResult, error) {
				cmdArgs := []string{"-i", args.Path}
				if config != "" {
					cmdArgs = append(cmdArgs, "-c", config)
				}
				out, err := exec.Command(bin, cmdArgs...).Output()
				if err != nil {
					return api.OnLoadResult{}, fmt.Errorf("tailwind failed for %s: %w", args.Path, err)
				}
				contents := string(out)
				return api.OnLoadResult{Contents: &contents, Loader: api.LoaderCSS}, nil
			})
		},
	}
}

// visualizerPlugin writes a bundle-size report from the build metafile
// once the build finishes.
func visualizerPlugin(target profile.Target, reportPath string, log zerolog.Logger) api.Plugin {
	return api.Plugin{
		Name: "visualizer",
		Setup: func(build api.PluginBuild) {
			build.OnEnd(func(result *api.BuildResult) (api.OnEndResult, error) {
				if len(result.Errors) > 0 || result.Metafile == "" {
					return api.OnEndResult{}, nil
				}
				report, err := writeSizeReport(result.Metafile, reportPath)
				if err != nil {
					return api.OnEndResult{}, fmt.Errorf("failed to write size report: %w", err)
				}
				log.Info().
					Str("target", target.String()).
					Str("report", reportPath).
					Int("outputs", len(report.Outputs)).
					Int("totalBytes", report.TotalBytes).
					Msg("Bundle size report written")
				return api.OnEndResult{}, nil
			})
		},
	}
}
