package profile

import "sort"

// staticExternals are modules the main process must never bundle: the
// electron host itself plus native binary addons that ship per-platform
// builds. They are loaded from the runtime's module system at execution
// time instead.
var staticExternals = []string{
	"electron",
	"bufferutil",
	"utf-8-validate",
}

// externalModules returns the sorted, de-duplicated union of the static
// exclusion list and every dependency name declared in package metadata.
// Runtime dependencies of the main process are installed alongside the
// app, so bundling them only bloats the artifact and breaks native addons.
func externalModules(dependencies []string) []string {
	seen := make(map[string]struct{}, len(staticExternals)+len(dependencies))
	var externals []string
	for _, name := range staticExternals {
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			externals = append(externals, name)
		}
	}
	for _, name := range dependencies {
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			externals = append(externals, name)
		}
	}
	sort.Strings(externals)
	return externals
}
