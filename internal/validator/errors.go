package validator

import (
	"fmt"
	"strconv"
	"strings"

	"curaprof/internal/schema"
)

// Kind classifies a validation failure.
type Kind string

const (
	TypeMismatch  Kind = "type_mismatch"
	OutOfRange    Kind = "out_of_range"
	InvalidOption Kind = "invalid_option"
)

// Error represents a single rejected setting value.
type Error struct {
	Key   string
	Kind  Kind
	Value any // the original raw value

	// TargetType is set for TypeMismatch.
	TargetType schema.ValueType
	// Bound and Limit are set for OutOfRange: which hard bound was crossed
	// ("minimum" or "maximum") and its value.
	Bound string
	Limit float64
	// Allowed is set for InvalidOption: the full valid option set, sorted.
	Allowed []string
}

func (e *Error) Error() string {
	switch e.Kind {
	case TypeMismatch:
		return fmt.Sprintf("%s: cannot convert %v to %s", e.Key, quoted(e.Value), e.TargetType)
	case OutOfRange:
		if e.Bound == "minimum" {
			return fmt.Sprintf("%s: value %v below minimum %v", e.Key, e.Value, formatNumber(e.Limit))
		}
		return fmt.Sprintf("%s: value %v above maximum %v", e.Key, e.Value, formatNumber(e.Limit))
	case InvalidOption:
		return fmt.Sprintf("%s: invalid option %v, valid options: %s",
			e.Key, quoted(e.Value), strings.Join(e.Allowed, ", "))
	}
	return fmt.Sprintf("%s: invalid value %v", e.Key, quoted(e.Value))
}

// Report renders all errors from a batch as a single multi-line message,
// one error per line.
func Report(errs []*Error) string {
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}

// quoted renders strings with quotes and everything else verbatim, so
// messages distinguish the string "1" from the number 1.
func quoted(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("'%s'", s)
	}
	return fmt.Sprintf("%v", v)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
