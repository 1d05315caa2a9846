package validator

import (
	"strings"
	"testing"

	"curaprof/internal/schema"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want []string // substrings the message must contain
	}{
		{
			name: "type mismatch names value and target type",
			err:  &Error{Key: "layer_height", Kind: TypeMismatch, Value: "thick", TargetType: schema.TypeFloat},
			want: []string{"layer_height", "'thick'", "float"},
		},
		{
			name: "out of range names the crossed bound",
			err:  &Error{Key: "cool_fan_speed", Kind: OutOfRange, Value: 150, Bound: "maximum", Limit: 100},
			want: []string{"cool_fan_speed", "150", "above maximum 100"},
		},
		{
			name: "below minimum",
			err:  &Error{Key: "layer_height", Kind: OutOfRange, Value: 0.001, Bound: "minimum", Limit: 0.01},
			want: []string{"below minimum 0.01"},
		},
		{
			name: "invalid option lists every valid option",
			err: &Error{
				Key: "adhesion_type", Kind: InvalidOption, Value: "glue",
				Allowed: []string{"brim", "none", "raft", "skirt"},
			},
			want: []string{"adhesion_type", "'glue'", "brim", "none", "raft", "skirt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, sub := range tt.want {
				if !strings.Contains(msg, sub) {
					t.Errorf("message %q missing %q", msg, sub)
				}
			}
		})
	}
}

func TestReport_OneLinePerError(t *testing.T) {
	errs := []*Error{
		{Key: "a", Kind: TypeMismatch, Value: "x", TargetType: schema.TypeInt},
		{Key: "b", Kind: OutOfRange, Value: 5, Bound: "maximum", Limit: 1},
	}

	report := Report(errs)
	lines := strings.Split(report, "\n")
	if len(lines) != 2 {
		t.Fatalf("report has %d lines, want 2:\n%s", len(lines), report)
	}
	if !strings.HasPrefix(lines[0], "a:") || !strings.HasPrefix(lines[1], "b:") {
		t.Errorf("unexpected report:\n%s", report)
	}
}

func TestReport_Empty(t *testing.T) {
	if got := Report(nil); got != "" {
		t.Errorf("Report(nil) = %q, want empty", got)
	}
}
