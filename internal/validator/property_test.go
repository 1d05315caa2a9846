package validator

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"curaprof/internal/schema"
)

// For any numeric setting with hard bounds [min, max], values inside the
// bounds (inclusive) are accepted and values outside are rejected with
// OutOfRange.
func TestCheck_HardBounds_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("inside hard bounds is accepted", prop.ForAll(
		func(min, span, frac float64) bool {
			max := min + span
			rec := floatRecord("x", min, max)
			value := min + span*frac // somewhere in [min, max]

			_, _, err := Check("x", rec, value)
			return err == nil
		},
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(0, 1e6),
		gen.Float64Range(0, 1),
	))

	properties.Property("bound endpoints are accepted", prop.ForAll(
		func(min, span float64) bool {
			rec := floatRecord("x", min, min+span)
			_, _, atMin := Check("x", rec, min)
			_, _, atMax := Check("x", rec, min+span)
			return atMin == nil && atMax == nil
		},
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(0, 1e6),
	))

	properties.Property("below minimum is rejected", prop.ForAll(
		func(min, delta float64) bool {
			rec := floatRecord("x", min, min+100)
			_, _, err := Check("x", rec, min-delta)
			return err != nil && err.Kind == OutOfRange && err.Bound == "minimum"
		},
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(0.001, 1e6),
	))

	properties.Property("above maximum is rejected", prop.ForAll(
		func(max, delta float64) bool {
			rec := floatRecord("x", max-100, max)
			_, _, err := Check("x", rec, max+delta)
			return err != nil && err.Kind == OutOfRange && err.Bound == "maximum"
		},
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(0.001, 1e6),
	))

	properties.TestingRun(t)
}

// For any setting with soft bounds strictly inside its hard bounds, a value
// between a soft bound and the matching hard bound is accepted with exactly
// one advisory naming the crossed side.
func TestCheck_SoftBounds_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("between soft max and hard max warns once", prop.ForAll(
		func(frac float64) bool {
			rec := &schema.Record{
				Key:         "x",
				Type:        schema.TypeFloat,
				Minimum:     bound(0),
				Maximum:     bound(100),
				MinimumWarn: bound(20),
				MaximumWarn: bound(80),
			}
			value := 80 + 20*frac // (80, 100)

			coerced, advisory, err := Check("x", rec, value)
			if err != nil || coerced != value {
				return false
			}
			return advisory != "" && strings.Count(advisory, "recommended") == 1
		},
		gen.Float64Range(0.01, 0.99),
	))

	properties.Property("inside soft bounds never warns", prop.ForAll(
		func(frac float64) bool {
			rec := &schema.Record{
				Key:         "x",
				Type:        schema.TypeFloat,
				MinimumWarn: bound(20),
				MaximumWarn: bound(80),
			}
			value := 20 + 60*frac // [20, 80]

			_, advisory, err := Check("x", rec, value)
			return err == nil && advisory == ""
		},
		gen.Float64Range(0, 1),
	))

	properties.TestingRun(t)
}

// Unknown keys are always accepted with the value unchanged, whatever the
// value looks like.
func TestCheck_UnknownKeys_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("unknown keys pass through", prop.ForAll(
		func(value string) bool {
			coerced, advisory, err := Check("mystery_key", nil, value)
			return err == nil && advisory == "" && coerced == value
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
