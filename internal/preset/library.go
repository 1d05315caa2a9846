package preset

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"curaprof/internal/settings"
)

// Library holds the available material and quality presets: the built-in
// tables plus any user-supplied additions loaded over them.
type Library struct {
	materials     map[string]Preset
	qualities     map[string]Preset
	materialOrder []string
	qualityOrder  []string
}

// Builtin returns a library containing only the built-in presets.
func Builtin() *Library {
	l := &Library{
		materials: make(map[string]Preset),
		qualities: make(map[string]Preset),
	}
	for _, name := range builtinMaterialOrder {
		l.materials[name] = builtinMaterials[name]
		l.materialOrder = append(l.materialOrder, name)
	}
	for _, name := range builtinQualityOrder {
		l.qualities[name] = builtinQualities[name]
		l.qualityOrder = append(l.qualityOrder, name)
	}
	return l
}

// userPresetFile is the YAML layout of a user preset file.
type userPresetFile struct {
	Materials map[string]userPreset `yaml:"materials"`
	Qualities map[string]userPreset `yaml:"qualities"`
}

type userPreset struct {
	Description string         `yaml:"description"`
	Settings    map[string]any `yaml:"settings"`
}

// LoadUser merges presets from YAML content into the library. User presets
// replace built-ins of the same name; new names extend the catalog. Setting
// keys inside a user preset are ordered alphabetically, since YAML maps
// carry no usable order.
func (l *Library) LoadUser(content []byte) error {
	var f userPresetFile
	if err := yaml.Unmarshal(content, &f); err != nil {
		return fmt.Errorf("invalid preset file: %w", err)
	}

	for name, up := range f.Materials {
		key := strings.ToUpper(name)
		if _, ok := l.materials[key]; !ok {
			l.materialOrder = append(l.materialOrder, key)
		}
		l.materials[key] = toPreset(up)
	}
	for name, up := range f.Qualities {
		key := strings.ToLower(name)
		if _, ok := l.qualities[key]; !ok {
			l.qualityOrder = append(l.qualityOrder, key)
		}
		l.qualities[key] = toPreset(up)
	}
	return nil
}

func toPreset(up userPreset) Preset {
	keys := make([]string, 0, len(up.Settings))
	for k := range up.Settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	p := Preset{Description: up.Description}
	for _, k := range keys {
		p.Values = append(p.Values, Value{Key: k, Val: up.Settings[k]})
	}
	return p
}

// Build merges the named quality and material presets into one candidate
// set, quality first, then material, then any explicit overrides, each
// layer winning on conflicts. It returns the merged settings and the
// canonical quality name (used as the profile's quality tier).
func (l *Library) Build(material, quality string, overrides *settings.Settings) (*settings.Settings, string, error) {
	mat, ok := l.materials[strings.ToUpper(material)]
	if !ok {
		return nil, "", fmt.Errorf("unknown material %q, available: %s",
			material, strings.Join(l.materialOrder, ", "))
	}
	q := strings.ToLower(quality)
	qual, ok := l.qualities[q]
	if !ok {
		return nil, "", fmt.Errorf("unknown quality %q, available: %s",
			quality, strings.Join(l.qualityOrder, ", "))
	}

	merged := settings.New()
	for _, v := range qual.Values {
		merged.Set(v.Key, v.Val)
	}
	for _, v := range mat.Values {
		merged.Set(v.Key, v.Val)
	}
	merged.Merge(overrides)

	return merged, q, nil
}

// Materials returns the material preset names in catalog order.
func (l *Library) Materials() []string {
	out := make([]string, len(l.materialOrder))
	copy(out, l.materialOrder)
	return out
}

// Qualities returns the quality preset names in catalog order.
func (l *Library) Qualities() []string {
	out := make([]string, len(l.qualityOrder))
	copy(out, l.qualityOrder)
	return out
}

// Format renders the preset catalog as a human-readable listing.
func (l *Library) Format() string {
	var b strings.Builder
	b.WriteString("Available presets:\n\nMaterials:\n")
	for _, name := range l.materialOrder {
		fmt.Fprintf(&b, "  %-6s - %s\n", name, l.materials[name].Description)
	}
	b.WriteString("\nQuality:\n")
	for _, name := range l.qualityOrder {
		fmt.Fprintf(&b, "  %-6s - %s\n", name, l.qualities[name].Description)
	}
	return b.String()
}
