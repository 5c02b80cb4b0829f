package eslintrc

import "sort"

// Environment declares the global names a named environment makes available.
type Environment struct {
	// Name is the environment identifier used under the record's env key.
	Name string
	// Globals are the global names the environment declares.
	Globals []string
}

// browserGlobals is a representative subset of the full browser global
// list. Hosts needing the exhaustive set can register a replacement.
var browserGlobals = []string{
	"window", "document", "navigator", "location", "history", "console",
	"alert", "confirm", "prompt", "fetch", "XMLHttpRequest", "WebSocket",
	"localStorage", "sessionStorage", "setTimeout", "setInterval",
	"clearTimeout", "clearInterval", "requestAnimationFrame", "atob", "btoa",
	"Blob", "File", "FormData", "URL", "URLSearchParams", "Event",
	"CustomEvent", "MutationObserver", "IntersectionObserver",
}

var nodeGlobals = []string{
	"process", "require", "module", "exports", "__dirname", "__filename",
	"Buffer", "global", "console", "setTimeout", "setInterval",
	"clearTimeout", "clearInterval", "setImmediate", "clearImmediate",
}

// es2015Globals covers the names introduced with ES2015 that earlier
// editions lacked. Each later edition includes all earlier ones.
var es2015Globals = []string{
	"Promise", "Symbol", "Map", "Set", "WeakMap", "WeakSet", "Proxy",
	"Reflect", "ArrayBuffer", "DataView", "Int8Array", "Uint8Array",
	"Uint8ClampedArray", "Int16Array", "Uint16Array", "Int32Array",
	"Uint32Array", "Float32Array", "Float64Array",
}

var es2017Globals = []string{"SharedArrayBuffer", "Atomics"}

var es2020Globals = []string{"globalThis", "BigInt", "BigInt64Array", "BigUint64Array"}

var es2021Globals = []string{"WeakRef", "FinalizationRegistry", "AggregateError"}

var workerGlobals = []string{
	"self", "postMessage", "importScripts", "console", "fetch",
	"setTimeout", "setInterval", "clearTimeout", "clearInterval",
}

var jestGlobals = []string{
	"describe", "it", "test", "expect", "beforeEach", "afterEach",
	"beforeAll", "afterAll", "jest",
}

var mochaGlobals = []string{
	"describe", "it", "before", "after", "beforeEach", "afterEach",
	"context", "specify",
}

// environments is the registry of recognized environment identifiers.
// Env keys in a record must appear here; anything else is a malformed
// record (the external tool rejects unknown environments at load).
var environments = buildEnvironments()

func buildEnvironments() map[string]*Environment {
	envs := map[string]*Environment{
		"browser":             {Name: "browser", Globals: browserGlobals},
		"node":                {Name: "node", Globals: nodeGlobals},
		"worker":              {Name: "worker", Globals: workerGlobals},
		"jest":                {Name: "jest", Globals: jestGlobals},
		"mocha":               {Name: "mocha", Globals: mochaGlobals},
		"shared-node-browser": {Name: "shared-node-browser", Globals: []string{"console", "setTimeout", "setInterval", "clearTimeout", "clearInterval", "URL", "URLSearchParams"}},
	}

	// Language editions are cumulative: es2021 carries everything since
	// es2015. "es6" is the historical alias for es2015.
	editions := []struct {
		name string
		add  []string
	}{
		{"es2015", es2015Globals},
		{"es2016", nil},
		{"es2017", es2017Globals},
		{"es2018", nil},
		{"es2019", nil},
		{"es2020", es2020Globals},
		{"es2021", es2021Globals},
		{"es2022", nil},
	}
	var accumulated []string
	for _, ed := range editions {
		accumulated = append(accumulated, ed.add...)
		globals := append([]string(nil), accumulated...)
		envs[ed.name] = &Environment{Name: ed.name, Globals: globals}
	}
	envs["es6"] = &Environment{Name: "es6", Globals: envs["es2015"].Globals}
	return envs
}

// KnownEnvironment reports whether name is a recognized environment
// identifier.
func KnownEnvironment(name string) bool {
	_, ok := environments[name]
	return ok
}

// EnvironmentNames returns all recognized environment identifiers.
func EnvironmentNames() []string {
	names := make([]string, 0, len(environments))
	for name := range environments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EnvironmentGlobals returns the global names declared by the named
// environment, or nil if the environment is not recognized.
func EnvironmentGlobals(name string) []string {
	env, ok := environments[name]
	if !ok {
		return nil
	}
	return append([]string(nil), env.Globals...)
}
