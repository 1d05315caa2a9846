package profile

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"curaprof/internal/schema"
	"curaprof/internal/settings"
)

func serializerIndex(t *testing.T) *schema.Index {
	t.Helper()
	idx, err := schema.BuildIndex([]byte(`{
	  "settings": {
	    "resolution": {
	      "type": "category",
	      "children": {
	        "layer_height": {"type": "float"},
	        "wall_line_count": {"type": "int"},
	        "retraction_enable": {"type": "bool"},
	        "machine_start_gcode": {"type": "str"},
	        "adhesion_extruder_nr": {"type": "extruder"},
	        "adhesion_type": {"type": "enum", "options": {"brim": "Brim", "skirt": "Skirt"}}
	      }
	    }
	  }
	}`))
	if err != nil {
		t.Fatal(err)
	}
	return idx
}

func TestSerialize_GlobalBlock(t *testing.T) {
	idx := serializerIndex(t)

	group := settings.New()
	group.Set("layer_height", 0.2)
	group.Set("retraction_enable", true)
	group.Set("machine_start_gcode", "G28\nG1 Z5\tM140")

	h := Header{
		ProfileName:    "PLA Normal",
		Definition:     "creality_ender3pro",
		QualityType:    "normal",
		SettingVersion: 23,
	}

	want := `[general]
version = 4
name = PLA Normal
definition = creality_ender3pro

[metadata]
type = quality_changes
quality_type = normal
setting_version = 23

[values]
layer_height = 0.2
retraction_enable = True
machine_start_gcode = G28\nG1 Z5\tM140

`
	got := Serialize(group, idx, h)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Serialize() mismatch (-want +got):\n%s", diff)
	}
}

func TestSerialize_ExtruderBlockCarriesPosition(t *testing.T) {
	idx := serializerIndex(t)

	group := settings.New()
	group.Set("wall_line_count", 3)

	h := Header{
		ProfileName:    "My Profile",
		Definition:     "fdmprinter",
		QualityType:    "draft",
		SettingVersion: 21,
		Extruder:       true,
		Position:       1,
	}

	want := `[general]
version = 4
name = My Profile
definition = fdmprinter

[metadata]
type = quality_changes
quality_type = draft
setting_version = 21
position = 1

[values]
wall_line_count = 3

`
	got := Serialize(group, idx, h)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Serialize() mismatch (-want +got):\n%s", diff)
	}
}

func TestSerialize_EmptyGroupOmitsValuesSection(t *testing.T) {
	h := Header{ProfileName: "p", Definition: "d", QualityType: "normal", SettingVersion: 23}

	got := Serialize(settings.New(), nil, h)
	if cmp.Diff(got, Serialize(nil, nil, h)) != "" {
		t.Error("nil and empty groups must serialize identically")
	}
	for _, block := range []string{"[general]", "[metadata]"} {
		if !contains(got, block) {
			t.Errorf("output missing %s", block)
		}
	}
	if contains(got, "[values]") {
		t.Error("empty group must omit the [values] section")
	}
}

func TestSerialize_Deterministic(t *testing.T) {
	idx := serializerIndex(t)

	group := settings.New()
	group.Set("layer_height", 0.12)
	group.Set("adhesion_type", "brim")
	group.Set("retraction_enable", false)

	h := Header{ProfileName: "Fine", Definition: "fdmprinter", QualityType: "fine", SettingVersion: 23}

	first := Serialize(group, idx, h)
	for i := 0; i < 10; i++ {
		if next := Serialize(group, idx, h); next != first {
			t.Fatalf("serialization is not byte-identical on call %d", i+2)
		}
	}
}

func TestFormatValue(t *testing.T) {
	idx := serializerIndex(t)

	tests := []struct {
		name  string
		key   string
		value any
		want  string
	}{
		{"bool true renders capitalized", "retraction_enable", true, "True"},
		{"bool false renders capitalized", "retraction_enable", false, "False"},
		{"bool wins regardless of declared type", "layer_height", true, "True"},
		{"float canonical form", "layer_height", 0.05, "0.05"},
		{"float without trailing zeros", "layer_height", 200.0, "200"},
		{"int", "wall_line_count", 2, "2"},
		{"str escapes newline", "machine_start_gcode", "G28\nG90", `G28\nG90`},
		{"str escapes tab", "machine_start_gcode", "a\tb", `a\tb`},
		{"extruder type escapes like str", "adhesion_extruder_nr", "0\n1", `0\n1`},
		{"enum passes through", "adhesion_type", "brim", "brim"},
		{"unknown key string still escaped", "vendor_gcode", "x\ny", `x\ny`},
		{"nil renders empty", "layer_height", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(idx, tt.key, tt.value); got != tt.want {
				t.Errorf("FormatValue(%s, %v) = %q, want %q", tt.key, tt.value, got, tt.want)
			}
		})
	}
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
