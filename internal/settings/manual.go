package settings

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseManual parses a comma-separated "key=value,key=value" specification
// into a settings collection. Values are sniffed best-effort: "true"/"false"
// (any case) become bools, values containing a dot are tried as floats,
// everything else is tried as an int, and anything that fails to parse is
// kept as a string.
func ParseManual(spec string) (*Settings, error) {
	out := New()

	for _, item := range strings.Split(spec, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		key, value, found := strings.Cut(item, "=")
		if !found {
			return nil, fmt.Errorf("invalid setting %q: expected key=value", item)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("invalid setting %q: empty key", item)
		}
		out.Set(key, SniffValue(strings.TrimSpace(value)))
	}

	if out.Len() == 0 {
		return nil, fmt.Errorf("no settings found in %q", spec)
	}
	return out, nil
}

// SniffValue converts a raw string to bool, float64 or int when it looks
// like one, falling back to the string itself.
func SniffValue(raw string) any {
	switch strings.ToLower(raw) {
	case "true":
		return true
	case "false":
		return false
	}
	if strings.Contains(raw, ".") {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
		return raw
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	return raw
}
