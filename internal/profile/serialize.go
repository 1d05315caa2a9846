package profile

import (
	"fmt"
	"strconv"
	"strings"

	"curaprof/internal/schema"
	"curaprof/internal/settings"
)

// FormatVersion is the .inst.cfg file-format version Cura expects.
const FormatVersion = "4"

// Header carries the identification fields written ahead of a values block.
type Header struct {
	ProfileName    string
	Definition     string
	QualityType    string
	SettingVersion int

	// Extruder marks a per-extruder block; Position is the extruder index
	// and is only written for extruder blocks.
	Extruder bool
	Position int
}

// Serialize renders one settings group as an .inst.cfg block: a [general]
// section, a [metadata] section, and a [values] section listing each
// key = value pair in insertion order. Output is a pure function of the
// inputs, so identical calls produce byte-identical blocks.
func Serialize(group *settings.Settings, idx *schema.Index, h Header) string {
	var b strings.Builder

	b.WriteString("[general]\n")
	writePair(&b, "version", FormatVersion)
	writePair(&b, "name", h.ProfileName)
	writePair(&b, "definition", h.Definition)
	b.WriteString("\n")

	b.WriteString("[metadata]\n")
	writePair(&b, "type", "quality_changes")
	writePair(&b, "quality_type", h.QualityType)
	writePair(&b, "setting_version", strconv.Itoa(h.SettingVersion))
	if h.Extruder {
		writePair(&b, "position", strconv.Itoa(h.Position))
	}
	b.WriteString("\n")

	if group != nil && group.Len() > 0 {
		b.WriteString("[values]\n")
		for _, key := range group.Keys() {
			v, _ := group.Get(key)
			writePair(&b, key, FormatValue(idx, key, v))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func writePair(b *strings.Builder, key, value string) {
	b.WriteString(key)
	b.WriteString(" = ")
	b.WriteString(value)
	b.WriteString("\n")
}

// FormatValue renders a setting value in the destination format's
// conventions: booleans as the capitalized literals True/False, strings
// with newlines and tabs escaped to their two-character forms (the format
// is line-oriented, and g-code strings routinely embed both), and numbers
// in canonical decimal form.
func FormatValue(idx *schema.Index, key string, value any) string {
	if b, ok := value.(bool); ok {
		if b {
			return "True"
		}
		return "False"
	}

	var typ schema.ValueType
	if idx != nil {
		if rec, ok := idx.Lookup(key); ok {
			typ = rec.Type
		}
	}

	switch v := value.(type) {
	case string:
		if typ == schema.TypeString || typ == schema.TypeExtruder || typ == "" {
			return escapeString(v)
		}
		return v
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\n", `\n`)
	return strings.ReplaceAll(s, "\t", `\t`)
}
