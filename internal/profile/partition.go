package profile

import (
	"curaprof/internal/schema"
	"curaprof/internal/settings"
)

// Partition splits validated settings into a global group and per-extruder
// groups. A setting whose record is settable per extruder routes to
// extruder 0 by default; everything else, including keys unknown to the
// schema, stays global. Explicit per-extruder overrides are merged over the
// default routing afterwards, so an override wins per key within its group.
// Every input setting lands in exactly one group.
func Partition(values *settings.Settings, idx *schema.Index, overrides map[int]*settings.Settings) (*settings.Settings, map[int]*settings.Settings) {
	global := settings.New()
	extruders := make(map[int]*settings.Settings)

	for _, key := range values.Keys() {
		v, _ := values.Get(key)
		if idx != nil && idx.PerExtruder(key) {
			group(extruders, 0).Set(key, v)
		} else {
			global.Set(key, v)
		}
	}

	for pos, ov := range overrides {
		if ov == nil || ov.Len() == 0 {
			continue
		}
		group(extruders, pos).Merge(ov)
	}

	return global, extruders
}

func group(extruders map[int]*settings.Settings, pos int) *settings.Settings {
	g, ok := extruders[pos]
	if !ok {
		g = settings.New()
		extruders[pos] = g
	}
	return g
}
