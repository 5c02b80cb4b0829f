package eslintrc

import (
	"sort"
	"sync"
)

// The registries hold everything an extends entry, parser or plugins entry
// can resolve against. Built-in presets and parsers are registered at init;
// plugin packages register their rule sets from their own init functions,
// and hosts can register rule sets obtained over the plugin protocol.

var (
	registryMu sync.RWMutex
	presets    = map[string]*Preset{}
	ruleSets   = map[string]RuleSet{}
	parsers    = map[string]bool{
		// espree is the external tool's default parser.
		"espree":                    true,
		"@typescript-eslint/parser": true,
		"@babel/eslint-parser":      true,
	}
)

// RegisterPreset makes a standalone preset resolvable by name.
// Registering a name twice replaces the earlier preset.
func RegisterPreset(p *Preset) {
	registryMu.Lock()
	defer registryMu.Unlock()
	presets[p.Name] = p
}

// LookupPreset returns the standalone preset with the given name.
func LookupPreset(name string) (*Preset, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	p, ok := presets[name]
	return p, ok
}

// RegisterRuleSet makes a plugin rule set resolvable by its name.
// Plugin packages call this from init; hosts call it for rule sets
// attached over the plugin protocol.
func RegisterRuleSet(rs RuleSet) {
	registryMu.Lock()
	defer registryMu.Unlock()
	ruleSets[rs.RuleSetName()] = rs
}

// LookupRuleSet returns the rule set registered under name.
func LookupRuleSet(name string) (RuleSet, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	rs, ok := ruleSets[name]
	return rs, ok
}

// RuleSetNames returns the names of all registered rule sets, sorted.
func RuleSetNames() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(ruleSets))
	for name := range ruleSets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterParser makes a parser name resolvable.
func RegisterParser(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	parsers[name] = true
}

// KnownParser reports whether name resolves to a registered parser.
func KnownParser(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return parsers[name]
}
