// Package project loads the static inputs to a build: the lume.build.yml
// manifest and the dependency names declared in package.json.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manifest describes the project layout and bundler output shape. Loaded
// from lume.build.yml at the project root; every field has a working
// default so a bare checkout builds without a manifest.
type Manifest struct {
	// Root is the project root all relative paths resolve against.
	Root string `yaml:"root"`
	// OutDir is the base output directory; each target writes into its
	// own subdirectory (out/main, out/preload, out/renderer).
	OutDir string `yaml:"outDir"`
	// PackageJSON is the path to the package metadata file.
	PackageJSON string `yaml:"packageJson"`
	// MainEntry and PreloadEntry are the single entry files for the two
	// node-side targets, relative to Root. The renderer's entries are
	// fixed per window and not configurable here.
	MainEntry    string `yaml:"mainEntry"`
	PreloadEntry string `yaml:"preloadEntry"`
	// TailwindBin is the utility-CSS compiler binary invoked by the
	// renderer's stylesheet plugin. Empty disables the shell-out and
	// passes stylesheets through untransformed.
	TailwindBin string `yaml:"tailwindBin"`
	// TailwindConfig is the config file passed to TailwindBin.
	TailwindConfig string `yaml:"tailwindConfig"`
}

// DefaultManifest returns the layout of a standard Lume checkout.
func DefaultManifest() Manifest {
	return Manifest{
		Root:         ".",
		OutDir:       "out",
		PackageJSON:  "package.json",
		MainEntry:    "src/main/index.ts",
		PreloadEntry: "src/preload/index.ts",
	}
}

// LoadManifest reads a manifest file, filling unset fields from the
// defaults. A missing file is not an error; the defaults apply.
func LoadManifest(path string) (Manifest, error) {
	m := DefaultManifest()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return m, nil
	}
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	if m.Root == "" {
		m.Root = "."
	}
	if m.OutDir == "" {
		m.OutDir = "out"
	}
	if m.PackageJSON == "" {
		m.PackageJSON = "package.json"
	}
	if m.MainEntry == "" {
		m.MainEntry = "src/main/index.ts"
	}
	if m.PreloadEntry == "" {
		m.PreloadEntry = "src/preload/index.ts"
	}
	return m, nil
}

// Resolved returns a copy of the manifest with the root made absolute and
// root-relative paths joined against it.
func (m Manifest) Resolved() (Manifest, error) {
	root, err := filepath.Abs(m.Root)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to resolve project root %s: %w", m.Root, err)
	}
	m.Root = root
	if !filepath.IsAbs(m.PackageJSON) {
		m.PackageJSON = filepath.Join(root, m.PackageJSON)
	}
	if m.TailwindConfig != "" && !filepath.IsAbs(m.TailwindConfig) {
		m.TailwindConfig = filepath.Join(root, m.TailwindConfig)
	}
	return m, nil
}

// TargetOutDir returns the output directory for one target's artifacts.
func (m Manifest) TargetOutDir(target string) string {
	return filepath.Join(m.Root, m.OutDir, target)
}
