package eslintrc

import (
	"fmt"
	"regexp"

	"github.com/jokarl/eslintrc-sdk/jsonext"
)

// NamingConventionRule is the rule name whose options configure
// identifier naming formats.
const NamingConventionRule = "@typescript-eslint/naming-convention"

// namingFormats maps format names to the anchored pattern an identifier
// must match. The vocabulary follows the naming-convention rule.
var namingFormats = map[string]*regexp.Regexp{
	"camelCase":  regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`),
	"PascalCase": regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`),
	"UPPER_CASE": regexp.MustCompile(`^[A-Z][A-Z0-9]*(_[A-Z0-9]+)*$`),
	"snake_case": regexp.MustCompile(`^[a-z][a-z0-9]*(_[a-z0-9]+)*$`),
}

// KnownNamingFormat reports whether name is a recognized format.
func KnownNamingFormat(name string) bool {
	_, ok := namingFormats[name]
	return ok
}

// NamingConventionOption is one selector constraint of the
// naming-convention rule's options.
type NamingConventionOption struct {
	// Selector names the kind of identifier the constraint applies to
	// (e.g. "variable").
	Selector string `mapstructure:"selector"`
	// Format lists the accepted formats. An identifier is accepted when
	// it matches any of them.
	Format []string `mapstructure:"format"`
}

// NamingConvention answers whether identifiers satisfy a configured
// selector constraint.
type NamingConvention struct {
	Selector string
	formats  []*regexp.Regexp
	names    []string
}

// NewNamingConvention builds a matcher from a decoded option.
// Unrecognized format names are a configuration error.
func NewNamingConvention(opt NamingConventionOption) (*NamingConvention, error) {
	if len(opt.Format) == 0 {
		return nil, fmt.Errorf("naming-convention selector %q has no formats", opt.Selector)
	}
	nc := &NamingConvention{Selector: opt.Selector}
	for _, name := range opt.Format {
		re, ok := namingFormats[name]
		if !ok {
			return nil, fmt.Errorf("unknown naming format %q", name)
		}
		nc.formats = append(nc.formats, re)
		nc.names = append(nc.names, name)
	}
	return nc, nil
}

// NamingConventionFor extracts the constraint for the given selector from
// the resolved record. It returns nil when the rule is off, unconfigured,
// or carries no constraint for the selector.
func NamingConventionFor(r *Resolved, selector string) (*NamingConvention, error) {
	rc := r.RuleConfig(NamingConventionRule)
	if rc == nil || rc.Severity == Off {
		return nil, nil
	}
	var opts []NamingConventionOption
	if err := jsonext.DecodeOptions(rc.Options, &opts); err != nil {
		return nil, fmt.Errorf("%s: %w", NamingConventionRule, err)
	}
	for _, opt := range opts {
		if opt.Selector == selector {
			return NewNamingConvention(opt)
		}
	}
	return nil, nil
}

// Accepts reports whether the identifier matches any configured format.
func (nc *NamingConvention) Accepts(identifier string) bool {
	for _, re := range nc.formats {
		if re.MatchString(identifier) {
			return true
		}
	}
	return false
}

// Formats returns the configured format names in order.
func (nc *NamingConvention) Formats() []string {
	return append([]string(nil), nc.names...)
}
