package schema

// ValueType is the declared type of a setting in the definition file.
type ValueType string

const (
	TypeInt      ValueType = "int"
	TypeFloat    ValueType = "float"
	TypeBool     ValueType = "bool"
	TypeString   ValueType = "str"
	TypeEnum     ValueType = "enum"
	TypeExtruder ValueType = "extruder" // rendered like str
	TypeCategory ValueType = "category" // tree marker, never a setting
)

// Record holds the constraints for a single setting key.
// Numeric bounds are pointers so "no bound" and "bound of zero" stay
// distinct. Options is populated only for enum settings and maps the
// machine value to its human-readable label.
type Record struct {
	Key         string
	Type        ValueType
	Label       string
	Description string
	Unit        string
	Default     any
	Minimum     *float64
	Maximum     *float64
	MinimumWarn *float64 // soft bound: crossing it warns, does not reject
	MaximumWarn *float64
	Options     map[string]string
	PerExtruder bool
	Category    string
}

// Numeric reports whether the record's type carries range constraints.
func (r Record) Numeric() bool {
	return r.Type == TypeInt || r.Type == TypeFloat
}
