package bundler

import "strings"

// nodeBuiltins holds the node core modules, used to classify external
// imports in the size report. Top-level names only; subpath imports like
// fs/promises resolve through their base name.
var nodeBuiltins = map[string]bool{
	"assert": true, "async_hooks": true, "buffer": true, "child_process": true,
	"cluster": true, "console": true, "constants": true, "crypto": true,
	"dgram": true, "diagnostics_channel": true, "dns": true, "domain": true,
	"events": true, "fs": true, "http": true, "http2": true, "https": true,
	"inspector": true, "module": true, "net": true, "os": true, "path": true,
	"perf_hooks": true, "process": true, "punycode": true, "querystring": true,
	"readline": true, "repl": true, "stream": true, "string_decoder": true,
	"sys": true, "timers": true, "tls": true, "trace_events": true, "tty": true,
	"url": true, "util": true, "v8": true, "vm": true, "wasi": true,
	"worker_threads": true, "zlib": true,
}

// isNodeBuiltin reports whether a module name is a node core module,
// accepting both bare names and the node: prefix.
func isNodeBuiltin(name string) bool {
	name = strings.TrimPrefix(name, "node:")
	if base, _, found := strings.Cut(name, "/"); found {
		return nodeBuiltins[base]
	}
	return nodeBuiltins[name]
}
