package maps

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FromSlice converts a slice of dot-delimited key=value pairs into a map[string]any.
// For example:
// "a.b.c=123","a.b.d=true" would return { "a": { "b": { "c": 123, "d": true } } }
//
// Values are decoded as YAML scalars, so numbers and booleans keep their type.
// Quote a value ("a.b='123'") to force a string.
func FromSlice(slice []string) (map[string]any, error) {
	m := map[string]any{}

	for _, s := range slice {
		// s has the format of:
		// a.b.c=xyz
		parts := strings.SplitN(s, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, fmt.Errorf("invalid value %q: expected key=value", s)
		}
		// a.b.c becomes [a, b, c]
		keys := strings.Split(parts[0], ".")
		value := scalar(parts[1])

		// p points at the map currently being filled in,
		// it walks down into the nested maps one key at a time
		p := m
		for i, k := range keys {
			if k == "" {
				return nil, fmt.Errorf("invalid key %q: empty path segment", parts[0])
			}
			// last key, put the value into the map
			if i == len(keys)-1 {
				p[k] = value
				continue
			}
			// if the nested map doesn't exist, create it
			if _, ok := p[k]; !ok {
				p[k] = map[string]any{}
			}
			child, ok := p[k].(map[string]any)
			if !ok {
				return nil, fmt.Errorf("invalid key %q: %s is already set to a value", parts[0], strings.Join(keys[:i+1], "."))
			}
			p = child
		}
	}

	return m, nil
}

// scalar decodes raw as a single yaml scalar, falling back to the raw string.
func scalar(raw string) any {
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	switch v.(type) {
	case nil:
		if raw == "" {
			return ""
		}
		return nil
	case map[string]any, []any:
		// only scalars are supported, anything structured is taken literally
		return raw
	}
	return v
}

// FromYAMLFile converts a yaml (or json) file into a map[string]any.
func FromYAMLFile(path string) (map[string]any, error) {
	if path == "" {
		return map[string]any{}, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	var m map[string]any
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal file %s: %w", path, err)
	}
	// ensure we don't return `nil, nil`
	if m == nil {
		return map[string]any{}, nil
	}
	return m, nil
}

// Merge merges the override map into the base map.
// Modifying the base map in place.
func Merge(base, override map[string]any) {
	for k, overrideVal := range override {
		if baseVal, ok := base[k]; ok {
			// both maps have this key
			baseChild, baseChildIsMap := baseVal.(map[string]any)
			overrideChild, overrideChildIsMap := overrideVal.(map[string]any)

			if baseChildIsMap && overrideChildIsMap {
				// both values are maps, recurse
				Merge(baseChild, overrideChild)
			} else {
				// override base with override
				base[k] = overrideVal
			}
		} else {
			// only override has this key
			base[k] = overrideVal
		}
	}
}

// Merged returns a new map containing override merged into base.
// Neither argument is modified, and the result shares no nested maps or slices with them.
func Merged(base, override map[string]any) map[string]any {
	out := Clone(base)
	Merge(out, Clone(override))
	return out
}

// SetDefaults copies every key of defaults into base that base does not already have,
// recursing into maps present in both. base is modified in place.
func SetDefaults(base, defaults map[string]any) {
	for k, defVal := range defaults {
		baseVal, ok := base[k]
		if !ok {
			base[k] = defVal
			continue
		}
		baseChild, baseChildIsMap := baseVal.(map[string]any)
		defChild, defChildIsMap := defVal.(map[string]any)
		if baseChildIsMap && defChildIsMap {
			SetDefaults(baseChild, defChild)
		}
	}
}

// Clone returns a deep copy of m.
// Nested maps and slices are copied, other values are copied by assignment.
func Clone(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return Clone(t)
	case []any:
		s := make([]any, len(t))
		for i, e := range t {
			s[i] = cloneValue(e)
		}
		return s
	default:
		return v
	}
}
