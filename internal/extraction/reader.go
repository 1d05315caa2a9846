// Package extraction reads profile-extractor JSON documents, the output of
// the companion tool that dumps a machine's settings from a live Cura
// install.
package extraction

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"curaprof/internal/settings"
)

// Document is the useful subset of an extraction file: a flat candidate
// settings map and the machine definition the settings came from.
type Document struct {
	Settings   *settings.Settings
	Definition string
}

// Load reads an extraction JSON file. The curated "_key_settings" map is
// read first and takes precedence; the machine's "effective_settings" map
// fills in the rest, preferring effective_value over value over
// default_value per entry. A non-empty filter keeps only the listed keys.
func Load(path string, filter []string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read extraction file: %w", err)
	}
	return Parse(raw, filter)
}

// Parse extracts settings from raw extraction JSON content.
func Parse(raw []byte, filter []string) (*Document, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errors.New("extraction file is not valid JSON")
	}
	root := gjson.ParseBytes(raw)

	keep := make(map[string]bool, len(filter))
	for _, k := range filter {
		keep[k] = true
	}
	wanted := func(key string) bool {
		return len(keep) == 0 || keep[key]
	}

	doc := &Document{Settings: settings.New()}

	root.Get("_key_settings").ForEach(func(key, info gjson.Result) bool {
		if !wanted(key.String()) {
			return true
		}
		if info.IsObject() {
			if v := info.Get("value"); v.Exists() && v.Type != gjson.Null {
				doc.Settings.Set(key.String(), v.Value())
			}
			return true
		}
		doc.Settings.Set(key.String(), info.Value())
		return true
	})

	root.Get("machine.effective_settings").ForEach(func(key, info gjson.Result) bool {
		if !wanted(key.String()) || doc.Settings.Has(key.String()) {
			return true
		}
		for _, field := range []string{"effective_value", "value", "default_value"} {
			if v := info.Get(field); v.Exists() && v.Type != gjson.Null {
				doc.Settings.Set(key.String(), v.Value())
				break
			}
		}
		return true
	})

	if doc.Settings.Len() == 0 {
		return nil, errors.New("no settings found in extraction file")
	}

	doc.Definition = root.Get("machine.inheritance_chain.0.name").String()
	if doc.Definition == "" {
		doc.Definition = "fdmprinter"
	}
	return doc, nil
}
