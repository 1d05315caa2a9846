package schema

import (
	"errors"
	"strconv"

	"github.com/tidwall/gjson"
)

// BuildIndex extracts every setting record from a raw definition document.
//
// The document is a tree: a "settings" object holds categories, categories
// hold settings under "children", and settings may nest further children.
// The walk carries the nearest enclosing category name down as an explicit
// accumulator. An "overrides" object, used by machine definitions to adjust
// the generic base schema, is merged over the extracted records by key; an
// override for a key the base never declared produces a bare record with no
// constraints, since manufacturers ship custom keys.
func BuildIndex(raw []byte) (*Index, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errors.New("definition is not valid JSON")
	}
	root := gjson.ParseBytes(raw)

	records := make(map[string]Record)

	root.Get("settings").ForEach(func(key, node gjson.Result) bool {
		walk(key.String(), node, key.String(), records)
		return true
	})

	root.Get("overrides").ForEach(func(key, node gjson.Result) bool {
		rec, ok := records[key.String()]
		if !ok {
			rec = Record{Key: key.String()}
		}
		applyFields(node, &rec)
		records[key.String()] = rec
		return true
	})

	categories := make(map[string][]string)
	for key, rec := range records {
		categories[rec.Category] = append(categories[rec.Category], key)
	}

	return &Index{records: records, categories: categories}, nil
}

// walk visits one definition node. category is the nearest enclosing
// category name; a category node replaces it for its own subtree.
func walk(key string, node gjson.Result, category string, records map[string]Record) {
	typ := node.Get("type").String()
	if typ == string(TypeCategory) {
		category = key
	}

	node.Get("children").ForEach(func(childKey, child gjson.Result) bool {
		walk(childKey.String(), child, category, records)
		return true
	})

	if typ == "" || typ == string(TypeCategory) {
		return
	}
	rec := Record{Key: key, Category: category}
	applyFields(node, &rec)
	records[key] = rec
}

// applyFields copies the constraint fields present on node into rec,
// leaving absent fields untouched so overrides only replace what they name.
func applyFields(node gjson.Result, rec *Record) {
	if v := node.Get("type"); v.Exists() {
		rec.Type = ValueType(v.String())
	}
	if v := node.Get("label"); v.Exists() {
		rec.Label = v.String()
	}
	if v := node.Get("description"); v.Exists() {
		rec.Description = v.String()
	}
	if v := node.Get("unit"); v.Exists() {
		rec.Unit = v.String()
	}
	if v := node.Get("default_value"); v.Exists() {
		rec.Default = v.Value()
	}
	if v := node.Get("settable_per_extruder"); v.Exists() {
		rec.PerExtruder = v.Bool()
	}

	numberField(node, "minimum_value", &rec.Minimum)
	numberField(node, "maximum_value", &rec.Maximum)
	numberField(node, "minimum_value_warning", &rec.MinimumWarn)
	numberField(node, "maximum_value_warning", &rec.MaximumWarn)

	if v := node.Get("options"); v.IsObject() {
		opts := make(map[string]string)
		v.ForEach(func(name, label gjson.Result) bool {
			opts[name.String()] = label.String()
			return true
		})
		rec.Options = opts
	}
}

// numberField stores a numeric bound when the node carries one. Definition
// files sometimes express bounds as formulas referencing other settings;
// those are not constant and are skipped rather than guessed at.
func numberField(node gjson.Result, name string, dst **float64) {
	v := node.Get(name)
	switch v.Type {
	case gjson.Number:
		f := v.Num
		*dst = &f
	case gjson.String:
		if f, err := strconv.ParseFloat(v.String(), 64); err == nil {
			*dst = &f
		}
	}
}
