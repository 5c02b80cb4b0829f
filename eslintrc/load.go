package eslintrc

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/jokarl/eslintrc-sdk/jsonext"
)

// configFileNames are the record file names recognized during the
// cascade search, in priority order within a directory. The bare
// .eslintrc form is YAML (which subsumes JSON documents).
var configFileNames = []string{
	".eslintrc.json",
	".eslintrc.yaml",
	".eslintrc.yml",
	".eslintrc",
}

// maxUpwardSearchLevels limits how far up the directory tree the cascade
// search walks when no record sets root.
const maxUpwardSearchLevels = 10

// LoadFile reads a single record from path. The format is chosen by
// extension. The record's directory is recorded for ignore matching, and
// an empty parserOptions.tsconfigRootDir defaults to that directory.
func LoadFile(path string) (*Config, error) {
	k := koanf.New(".")

	// Defaults first, then the file on top.
	if err := k.Load(confmap.Provider(map[string]any{
		"root": false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	var parser koanf.Parser = kyaml.Parser()
	if strings.HasSuffix(path, ".json") {
		parser = kjson.Parser()
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrMalformed, path, err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:     &cfg,
			DecodeHook: ruleEntryHook(),
			TagName:    "koanf",
		},
	}); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", ErrMalformed, path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	cfg.dir = filepath.Dir(abs)
	if cfg.ParserOptions != nil && cfg.ParserOptions.TsconfigRootDir == "" {
		cfg.ParserOptions.TsconfigRootDir = cfg.dir
	}
	return &cfg, nil
}

// Load runs the cascade: starting at startDir, records are collected
// walking upward until one sets root (which stops the search) or the
// level cap is reached. Nearer records override farther ones. The search
// failing to find any record is an error.
func Load(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	var chain []*Config
	for i := 0; i < maxUpwardSearchLevels; i++ {
		if path := findConfigIn(dir); path != "" {
			cfg, err := LoadFile(path)
			if err != nil {
				return nil, err
			}
			chain = append(chain, cfg)
			if cfg.Root {
				break
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	if len(chain) == 0 {
		return nil, fmt.Errorf("%w: no configuration found from %s", ErrMalformed, startDir)
	}

	// Fold farthest-first so nearer records win.
	var merged *Config
	for i := len(chain) - 1; i >= 0; i-- {
		merged = mergeRecords(merged, chain[i])
	}
	// Ignore patterns resolve against the nearest record.
	merged.dir = chain[0].dir
	return merged, nil
}

func findConfigIn(dir string) string {
	for _, name := range configFileNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// ParseJSON decodes a record from JSON text. Records parsed this way
// have no directory; callers needing ignore matching relative to a
// location should use LoadFile.
func ParseJSON(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &cfg, nil
}

// MarshalJSON is implemented by the struct tags; Marshal renders the
// record as indented JSON in the canonical key order encoding/json
// produces for the struct.
func Marshal(cfg *Config) ([]byte, error) {
	return json.MarshalIndent(cfg, "", "  ")
}

// ruleEntryHook converts raw rule entries (bare severities or tuples)
// into RuleConfig values during koanf unmarshaling.
func ruleEntryHook() mapstructure.DecodeHookFuncType {
	ruleConfigType := reflect.TypeOf(RuleConfig{})
	ruleConfigPtrType := reflect.PointerTo(ruleConfigType)
	return func(from, to reflect.Type, data any) (any, error) {
		if to != ruleConfigType && to != ruleConfigPtrType {
			return data, nil
		}
		// The hook fires once for the pointer and once for the element;
		// pass through anything already converted.
		switch rc := data.(type) {
		case *RuleConfig:
			if to == ruleConfigPtrType {
				return rc, nil
			}
			return *rc, nil
		case RuleConfig:
			return rc, nil
		}
		entry, err := jsonext.Normalize(data)
		if err != nil {
			return nil, err
		}
		severity, err := ParseSeverity(entry.Severity)
		if err != nil {
			return nil, err
		}
		rc := RuleConfig{Severity: severity, Options: entry.Options}
		if to == ruleConfigPtrType {
			return &rc, nil
		}
		return rc, nil
	}
}
