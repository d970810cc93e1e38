package bundler

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Metafile mirrors the esbuild metafile JSON structure, limited to the
// fields the report and dependency discovery read.
type Metafile struct {
	Inputs  map[string]MetafileInput  `json:"inputs"`
	Outputs map[string]MetafileOutput `json:"outputs"`
}

type MetafileInput struct {
	Bytes   int              `json:"bytes"`
	Imports []MetafileImport `json:"imports"`
}

type MetafileImport struct {
	Path     string `json:"path"`
	Kind     string `json:"kind"`
	External bool   `json:"external,omitempty"`
}

type MetafileOutput struct {
	Bytes      int    `json:"bytes"`
	EntryPoint string `json:"entryPoint,omitempty"`
}

// SizeReport is the visualizer output: per-output raw and gzip sizes plus
// the externals the bundle expects the runtime to supply.
type SizeReport struct {
	Outputs    []OutputSize     `json:"outputs"`
	TotalBytes int              `json:"totalBytes"`
	Externals  []ExternalImport `json:"externals,omitempty"`
}

type OutputSize struct {
	Path       string `json:"path"`
	Bytes      int    `json:"bytes"`
	GzipBytes  int    `json:"gzipBytes"`
	EntryPoint string `json:"entryPoint,omitempty"`
}

type ExternalImport struct {
	Name    string `json:"name"`
	Builtin bool   `json:"builtin"`
}

// writeSizeReport parses the metafile, measures each output on disk, and
// writes the JSON report to reportPath.
func writeSizeReport(metafile, reportPath string) (*SizeReport, error) {
	var meta Metafile
	if err := json.Unmarshal([]byte(metafile), &meta); err != nil {
		return nil, fmt.Errorf("failed to parse metafile: %w", err)
	}

	report := &SizeReport{}
	for path, info := range meta.Outputs {
		if strings.HasSuffix(path, ".map") {
			continue
		}
		size := OutputSize{Path: path, Bytes: info.Bytes, EntryPoint: info.EntryPoint}
		if data, err := os.ReadFile(path); err == nil {
			gz, err := gzipSize(data)
			if err != nil {
				return nil, err
			}
			size.GzipBytes = gz
		}
		report.Outputs = append(report.Outputs, size)
		report.TotalBytes += info.Bytes
	}
	sort.Slice(report.Outputs, func(i, j int) bool {
		return report.Outputs[i].Path < report.Outputs[j].Path
	})
	report.Externals = externalImports(meta)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(reportPath, data, 0600); err != nil {
		return nil, err
	}
	return report, nil
}

// gzipSize returns the gzip-compressed size of data, the figure size
// reports conventionally show alongside raw bytes.
func gzipSize(data []byte) (int, error) {
	var counter countingWriter
	gz, err := gzip.NewWriterLevel(&counter, gzip.BestCompression)
	if err != nil {
		return 0, err
	}
	if _, err := gz.Write(data); err != nil {
		return 0, err
	}
	if err := gz.Close(); err != nil {
		return 0, err
	}
	return counter.n, nil
}

type countingWriter struct{ n int }

func (w *countingWriter) Write(p []byte) (int, error) {
	w.n += len(p)
	return len(p), nil
}

// externalImports collects the external imports across all inputs,
// de-duplicated and classified as node builtins or packages.
func externalImports(meta Metafile) []ExternalImport {
	seen := make(map[string]bool)
	var externals []ExternalImport
	for _, input := range meta.Inputs {
		for _, imp := range input.Imports {
			if !imp.External || seen[imp.Path] {
				continue
			}
			seen[imp.Path] = true
			externals = append(externals, ExternalImport{Name: imp.Path, Builtin: isNodeBuiltin(imp.Path)})
		}
	}
	sort.Slice(externals, func(i, j int) bool { return externals[i].Name < externals[j].Name })
	return externals
}

// discoverDependencies lists the npm packages that were bundled into the
// output, derived from metafile input paths under node_modules. Used to
// report what dependency pre-bundling picked up.
func discoverDependencies(metafile string) ([]string, error) {
	var meta Metafile
	if err := json.Unmarshal([]byte(metafile), &meta); err != nil {
		return nil, fmt.Errorf("failed to parse metafile: %w", err)
	}

	seen := make(map[string]bool)
	var deps []string
	for path := range meta.Inputs {
		name, ok := packageFromPath(path)
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		deps = append(deps, name)
	}
	sort.Strings(deps)
	return deps, nil
}

// packageFromPath extracts the npm package name from an input path like
// node_modules/@scope/pkg/dist/index.js.
func packageFromPath(path string) (string, bool) {
	const marker = "node_modules/"
	idx := strings.LastIndex(path, marker)
	if idx < 0 {
		return "", false
	}
	rest := strings.Split(path[idx+len(marker):], "/")
	if len(rest) == 0 || rest[0] == "" {
		return "", false
	}
	if strings.HasPrefix(rest[0], "@") {
		if len(rest) < 2 {
			return "", false
		}
		return rest[0] + "/" + rest[1], true
	}
	return rest[0], true
}
