package builder

import (
	"path/filepath"
	"strings"

	"curaprof/internal/extraction"
	"curaprof/internal/preset"
	"curaprof/internal/settings"
	"curaprof/internal/validator"
)

// batchResult pairs a validation outcome with its rendered error report.
type batchResult struct {
	validator.Result
	Report string
}

func (b *Builder) validate(candidates *settings.Settings) batchResult {
	res := validator.Validate(b.Index, candidates)
	return batchResult{Result: res, Report: validator.Report(res.Errors)}
}

// PresetRequest builds a profile from the preset catalog.
type PresetRequest struct {
	Material    string
	Quality     string
	ProfileName string // optional; defaults to "MATERIAL Quality"
	Definition  string
	Overrides   *settings.Settings
	OutputPath  string
}

// BuildFromPreset merges the named quality and material presets (plus any
// explicit overrides) and builds the profile.
func (b *Builder) BuildFromPreset(lib *preset.Library, req PresetRequest) (string, error) {
	merged, quality, err := lib.Build(req.Material, req.Quality, req.Overrides)
	if err != nil {
		return "", err
	}

	name := req.ProfileName
	if name == "" {
		name = strings.ToUpper(req.Material) + " " + titleWord(quality)
	}

	return b.Build(Request{
		ProfileName: name,
		Definition:  req.Definition,
		QualityType: quality,
		Settings:    merged,
		OutputPath:  req.OutputPath,
	})
}

// ExtractionRequest builds a profile from an extractor JSON document.
type ExtractionRequest struct {
	Path        string
	ProfileName string   // optional; derived from the filename
	Definition  string   // optional; falls back to the document's machine
	QualityType string
	Filter      []string // optional; keep only these keys
	OutputPath  string
}

// BuildFromExtraction loads the extraction document and builds the profile.
func (b *Builder) BuildFromExtraction(req ExtractionRequest) (string, error) {
	doc, err := extraction.Load(req.Path, req.Filter)
	if err != nil {
		return "", err
	}

	definition := req.Definition
	if definition == "" {
		definition = doc.Definition
	}
	name := req.ProfileName
	if name == "" {
		name = nameFromFile(req.Path)
	}

	b.log.Debug().
		Int("settings", doc.Settings.Len()).
		Str("definition", definition).
		Msg("loaded extraction document")

	return b.Build(Request{
		ProfileName: name,
		Definition:  definition,
		QualityType: req.QualityType,
		Settings:    doc.Settings,
		OutputPath:  req.OutputPath,
	})
}

// BuildFromSettings builds a profile from a manual key=value specification.
func (b *Builder) BuildFromSettings(spec, name, definition, qualityType, outputPath string) (string, error) {
	parsed, err := settings.ParseManual(spec)
	if err != nil {
		return "", err
	}
	return b.Build(Request{
		ProfileName: name,
		Definition:  definition,
		QualityType: qualityType,
		Settings:    parsed,
		OutputPath:  outputPath,
	})
}

// nameFromFile derives a presentable profile name from an extraction
// filename: "cura_profile_my_printer.json" becomes "My Printer".
func nameFromFile(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	stem = strings.TrimPrefix(stem, "cura_profile_")
	words := strings.FieldsFunc(stem, func(r rune) bool { return r == '_' })
	for i, w := range words {
		words[i] = titleWord(w)
	}
	if len(words) == 0 {
		return stem
	}
	return strings.Join(words, " ")
}

func titleWord(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}
