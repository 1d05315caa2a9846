package preset

// Preset is a named bundle of starting-point settings.
type Preset struct {
	Description string
	Values      []Value
}

// Value is one setting inside a preset. Presets keep their settings as an
// ordered slice so profiles list them in a stable, documented order.
type Value struct {
	Key string
	Val any
}

// Built-in material presets. Temperatures in degC, speeds in mm/s.
var builtinMaterials = map[string]Preset{
	"PLA": {
		Description: "Standard PLA - good all-around starter settings",
		Values: []Value{
			{"material_print_temperature", 200},
			{"material_bed_temperature", 60},
			{"speed_print", 50},
			{"retraction_amount", 0.8},
			{"retraction_speed", 45},
			{"cool_fan_speed", 100},
		},
	},
	"PETG": {
		Description: "PETG - higher temps, slower speeds, less cooling",
		Values: []Value{
			{"material_print_temperature", 240},
			{"material_bed_temperature", 80},
			{"speed_print", 40},
			{"retraction_amount", 1.0},
			{"retraction_speed", 35},
			{"cool_fan_speed", 50},
		},
	},
	"ABS": {
		Description: "ABS - high temps, minimal cooling, enclosure recommended",
		Values: []Value{
			{"material_print_temperature", 240},
			{"material_bed_temperature", 100},
			{"speed_print", 50},
			{"retraction_amount", 0.8},
			{"retraction_speed", 45},
			{"cool_fan_speed", 0},
		},
	},
	"TPU": {
		Description: "TPU/Flexible - slow and careful, direct drive recommended",
		Values: []Value{
			{"material_print_temperature", 230},
			{"material_bed_temperature", 60},
			{"speed_print", 25},
			{"retraction_amount", 2.0},
			{"retraction_speed", 25},
			{"cool_fan_speed", 100},
		},
	},
	"ASA": {
		Description: "ASA - like ABS but better UV resistance",
		Values: []Value{
			{"material_print_temperature", 260},
			{"material_bed_temperature", 100},
			{"speed_print", 50},
			{"retraction_amount", 0.8},
			{"retraction_speed", 45},
			{"cool_fan_speed", 30},
		},
	},
}

var builtinQualities = map[string]Preset{
	"draft": {
		Description: "Fast draft - 0.28mm layers, quick prints",
		Values: []Value{
			{"layer_height", 0.28},
			{"layer_height_0", 0.28},
		},
	},
	"normal": {
		Description: "Standard quality - 0.2mm layers, balanced",
		Values: []Value{
			{"layer_height", 0.2},
			{"layer_height_0", 0.2},
		},
	},
	"fine": {
		Description: "Fine quality - 0.12mm layers, detailed prints",
		Values: []Value{
			{"layer_height", 0.12},
			{"layer_height_0", 0.2},
		},
	},
	"ultra": {
		Description: "Ultra fine - 0.08mm layers, maximum detail",
		Values: []Value{
			{"layer_height", 0.08},
			{"layer_height_0", 0.16},
		},
	},
}

var builtinMaterialOrder = []string{"PLA", "PETG", "ABS", "TPU", "ASA"}
var builtinQualityOrder = []string{"draft", "normal", "fine", "ultra"}
