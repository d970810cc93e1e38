package project

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

type packageJSON struct {
	Name         string            `json:"name"`
	Dependencies map[string]string `json:"dependencies"`
}

// Dependencies returns the sorted runtime dependency names declared in the
// package metadata file. The main target's external module set is derived
// from this list, so a missing or malformed file aborts the whole build
// rather than silently bundling native dependencies.
func Dependencies(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read package metadata %s: %w", path, err)
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("failed to parse package metadata %s: %w", path, err)
	}

	names := make([]string, 0, len(pkg.Dependencies))
	for name := range pkg.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
