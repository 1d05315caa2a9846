package validator

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"curaprof/internal/schema"
	"curaprof/internal/settings"
)

// Result contains the outcome of validating a full candidate set.
// Values holds the coerced values of every accepted setting in the
// candidates' insertion order. Valid is true iff no setting was rejected;
// advisories never affect validity.
type Result struct {
	Valid      bool
	Values     *settings.Settings
	Errors     []*Error
	Advisories []string // "key: message" for values outside soft bounds
}

// Validate checks every candidate against the schema index, collecting all
// errors instead of stopping at the first one. A nil index means the schema
// could not be loaded; every value then passes through unchanged.
func Validate(idx *schema.Index, candidates *settings.Settings) Result {
	res := Result{Values: settings.New()}

	for _, key := range candidates.Keys() {
		raw, _ := candidates.Get(key)

		var rec *schema.Record
		if idx != nil {
			if r, ok := idx.Lookup(key); ok {
				rec = &r
			}
		}

		coerced, advisory, err := Check(key, rec, raw)
		if err != nil {
			res.Errors = append(res.Errors, err)
			continue
		}
		res.Values.Set(key, coerced)
		if advisory != "" {
			res.Advisories = append(res.Advisories, key+": "+advisory)
		}
	}

	res.Valid = len(res.Errors) == 0
	return res
}

// Check validates a single raw value against its constraint record and
// returns the coerced value plus an optional advisory. A nil record means
// the key is unknown to the schema; unknown settings are assumed to be
// intentional custom extensions and pass through unchanged.
func Check(key string, rec *schema.Record, raw any) (any, string, *Error) {
	if rec == nil {
		return raw, "", nil
	}

	switch rec.Type {
	case schema.TypeInt:
		n, ok := coerceInt(raw)
		if !ok {
			return nil, "", &Error{Key: key, Kind: TypeMismatch, Value: raw, TargetType: rec.Type}
		}
		if err := rangeError(key, rec, float64(n), raw); err != nil {
			return nil, "", err
		}
		return n, softRangeAdvisory(rec, float64(n)), nil

	case schema.TypeFloat:
		f, ok := coerceFloat(raw)
		if !ok {
			return nil, "", &Error{Key: key, Kind: TypeMismatch, Value: raw, TargetType: rec.Type}
		}
		if err := rangeError(key, rec, f, raw); err != nil {
			return nil, "", err
		}
		return f, softRangeAdvisory(rec, f), nil

	case schema.TypeBool:
		return coerceBool(raw), "", nil

	case schema.TypeEnum:
		name := fmt.Sprintf("%v", raw)
		if _, ok := rec.Options[name]; !ok {
			return nil, "", &Error{Key: key, Kind: InvalidOption, Value: raw, Allowed: sortedOptions(rec.Options)}
		}
		return name, "", nil
	}

	// str, extruder, and bare override records: accept as-is.
	return raw, "", nil
}

// rangeError returns an OutOfRange error when v crosses a hard bound.
func rangeError(key string, rec *schema.Record, v float64, raw any) *Error {
	if rec.Minimum != nil && v < *rec.Minimum {
		return &Error{Key: key, Kind: OutOfRange, Value: raw, Bound: "minimum", Limit: *rec.Minimum}
	}
	if rec.Maximum != nil && v > *rec.Maximum {
		return &Error{Key: key, Kind: OutOfRange, Value: raw, Bound: "maximum", Limit: *rec.Maximum}
	}
	return nil
}

// softRangeAdvisory builds the soft-bound advisory for an accepted value.
// Both soft bounds can be reported in one string, minimum side first.
func softRangeAdvisory(rec *schema.Record, v float64) string {
	var parts []string
	if rec.MinimumWarn != nil && v < *rec.MinimumWarn {
		parts = append(parts, "below recommended "+formatNumber(*rec.MinimumWarn))
	}
	if rec.MaximumWarn != nil && v > *rec.MaximumWarn {
		parts = append(parts, "above recommended "+formatNumber(*rec.MaximumWarn))
	}
	if len(parts) == 0 {
		return ""
	}
	return "value " + formatNumber(v) + " " + strings.Join(parts, ", ")
}

func coerceInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		// JSON numbers arrive as float64; integral values are ints in disguise.
		if v == math.Trunc(v) {
			return int(v), true
		}
		return 0, false
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

func coerceFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// coerceBool never fails: recognized true spellings are true, everything
// else is false.
func coerceBool(raw any) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes":
			return true
		}
		return false
	case int:
		return v != 0
	case float64:
		return v != 0
	}
	return false
}

func sortedOptions(options map[string]string) []string {
	out := make([]string, 0, len(options))
	for name := range options {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
