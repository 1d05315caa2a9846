package settings

// Settings is an insertion-ordered collection of setting values.
// The slicer's .inst.cfg format lists values in the order they were added,
// so a plain map is not enough: iteration order must be stable and must
// match insertion order.
type Settings struct {
	keys   []string
	values map[string]any
}

// New returns an empty settings collection.
func New() *Settings {
	return &Settings{values: make(map[string]any)}
}

// Set stores a value for key. A new key is appended to the iteration order;
// setting an existing key updates the value in place without reordering.
func (s *Settings) Set(key string, value any) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Get returns the value for key and whether it is present.
func (s *Settings) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Has reports whether key is present.
func (s *Settings) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (s *Settings) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Len returns the number of stored settings.
func (s *Settings) Len() int {
	return len(s.keys)
}

// Merge copies every entry from other into s, in other's insertion order.
// Values from other win on key conflicts.
func (s *Settings) Merge(other *Settings) {
	if other == nil {
		return
	}
	for _, key := range other.keys {
		s.Set(key, other.values[key])
	}
}
