package schema

import "sort"

// Index maps setting keys to their constraint records. It is built once per
// run from a definition file and read-only afterwards.
type Index struct {
	records    map[string]Record
	categories map[string][]string
}

// Lookup returns the record for key and whether it exists.
func (x *Index) Lookup(key string) (Record, bool) {
	r, ok := x.records[key]
	return r, ok
}

// Len returns the number of indexed settings.
func (x *Index) Len() int {
	return len(x.records)
}

// PerExtruder reports whether key may vary per extruder.
// Unknown keys are global.
func (x *Index) PerExtruder(key string) bool {
	r, ok := x.records[key]
	return ok && r.PerExtruder
}

// Categories returns all category names in sorted order.
func (x *Index) Categories() []string {
	out := make([]string, 0, len(x.categories))
	for c := range x.categories {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// SettingsIn returns the setting keys tagged with the given category,
// in sorted order.
func (x *Index) SettingsIn(category string) []string {
	keys := make([]string, len(x.categories[category]))
	copy(keys, x.categories[category])
	sort.Strings(keys)
	return keys
}
