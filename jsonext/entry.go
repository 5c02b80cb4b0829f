// Package jsonext provides extended decoding for eslintrc rule entries.
//
// A rule entry in an eslintrc record is a union type: a bare severity
// (integer or string) or a tuple of a severity followed by rule-specific
// option values. This package normalizes the union into a single shape and
// decodes option objects onto typed structs.
//
// Key types:
//   - Entry: A normalized rule entry (severity value plus ordered options)
//   - Normalize: Converts any accepted entry encoding into an Entry
//   - DecodeOption: Maps one positional option object onto a struct
package jsonext

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Entry is a normalized rule entry.
type Entry struct {
	// Severity is the severity value exactly as it appeared in the record:
	// a numeric type or a string. Interpretation belongs to the caller.
	Severity any
	// Options are the rule-specific option values following the severity,
	// in order. Empty for bare-severity entries.
	Options []any
}

// Normalize converts a decoded rule entry into an Entry.
//
// Accepted encodings:
//
//	"rule": 2                      bare integer severity
//	"rule": "error"                bare string severity
//	"rule": [2, {...}, ...]        severity followed by options
//
// An empty tuple is rejected: a tuple entry must carry at least a severity.
func Normalize(v any) (*Entry, error) {
	switch t := v.(type) {
	case []any:
		if len(t) == 0 {
			return nil, fmt.Errorf("rule entry tuple is empty")
		}
		opts := make([]any, len(t)-1)
		copy(opts, t[1:])
		return &Entry{Severity: t[0], Options: opts}, nil
	case nil:
		return nil, fmt.Errorf("rule entry is null")
	case map[string]any:
		return nil, fmt.Errorf("rule entry must be a severity or a tuple, got an object")
	default:
		// Bare severity; numeric and string validation is the caller's job.
		return &Entry{Severity: t}, nil
	}
}

// DecodeOption maps the option value at position i onto target.
// The target should be a pointer to a struct with mapstructure tags.
// Numeric widening is enabled because JSON and YAML decoders produce
// different numeric types for the same document.
func DecodeOption(options []any, i int, target any) error {
	if i < 0 || i >= len(options) {
		return fmt.Errorf("rule entry has no option at position %d", i)
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		ErrorUnused:      false,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(options[i]); err != nil {
		return fmt.Errorf("decoding rule option %d: %w", i, err)
	}
	return nil
}

// DecodeOptions maps every option object onto the elements of target,
// which should be a pointer to a slice of structs. Non-object options
// (bare strings or numbers) are not supported by this helper; decode
// those positionally with DecodeOption instead.
func DecodeOptions(options []any, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(options); err != nil {
		return fmt.Errorf("decoding rule options: %w", err)
	}
	return nil
}
