// Package builder runs the profile build pipeline end to end: validate the
// requested machine definition, batch-validate the candidate settings,
// partition them into global and per-extruder groups, serialize each group
// and package the result as an importable archive.
package builder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"curaprof/internal/archive"
	"curaprof/internal/cura"
	"curaprof/internal/profile"
	"curaprof/internal/schema"
	"curaprof/internal/settings"
)

// ErrUnknownDefinition marks a requested machine definition that is not in
// the discovered set.
var ErrUnknownDefinition = errors.New("unknown machine definition")

// Builder holds the discovered Cura environment for one invocation.
// Index may be nil: a failed schema load degrades validation to
// pass-through instead of aborting.
type Builder struct {
	InstallPath    string
	DataPath       string
	Index          *schema.Index
	SettingVersion int
	CuraVersion    string
	Definitions    []string

	log zerolog.Logger
}

// New creates a builder for the given environment paths.
func New(installPath, dataPath string, log zerolog.Logger) *Builder {
	return &Builder{
		InstallPath:    installPath,
		DataPath:       dataPath,
		SettingVersion: cura.DefaultSettingVersion,
		CuraVersion:    "unknown",
		log:            log,
	}
}

// Initialize loads the constraint schema and detects environment facts.
// It returns degraded-mode warnings rather than failing: only a missing
// install path is a hard error, since nothing can be discovered without it.
func (b *Builder) Initialize() ([]string, error) {
	if b.InstallPath == "" {
		return nil, errors.New("install path not found: use --install or the overrides file")
	}

	var warnings []string

	idx, err := schema.LoadDefinition(cura.DefinitionFile(b.InstallPath))
	if err != nil {
		warnings = append(warnings, "failed to load setting definitions - validation disabled")
		b.log.Warn().Err(err).Msg("schema load failed, validation degraded to pass-through")
	} else {
		b.Index = idx
		b.log.Debug().Int("settings", idx.Len()).Msg("loaded setting definitions")
	}

	if v, ok := cura.DetectSettingVersion(b.DataPath); ok {
		b.SettingVersion = v
		b.log.Debug().Int("setting_version", v).Msg("detected setting_version")
	} else {
		warnings = append(warnings, fmt.Sprintf("could not detect setting_version - using default %d", cura.DefaultSettingVersion))
	}

	b.CuraVersion = cura.SniffVersion(b.InstallPath)
	b.Definitions = cura.DiscoverDefinitions(b.InstallPath)
	b.log.Debug().
		Str("cura_version", b.CuraVersion).
		Int("definitions", len(b.Definitions)).
		Msg("environment discovered")

	return warnings, nil
}

// Request describes one profile build.
type Request struct {
	ProfileName string
	Definition  string
	QualityType string
	Settings    *settings.Settings
	// ExtruderSettings routes explicit values to specific extruders,
	// merged over the schema-driven default routing.
	ExtruderSettings map[int]*settings.Settings
	OutputPath       string
}

// Build runs the pipeline for one request and returns the archive path.
// Validation errors are aggregated into a single multi-line error; nothing
// is written unless every stage succeeds.
func (b *Builder) Build(req Request) (string, error) {
	if len(b.Definitions) > 0 && !cura.KnownDefinition(b.Definitions, req.Definition) {
		return "", fmt.Errorf("%w: %q (examples: %s)",
			ErrUnknownDefinition, req.Definition, strings.Join(sample(b.Definitions, 10), ", "))
	}

	res := b.validate(req.Settings)
	if !res.Valid {
		return "", fmt.Errorf("validation failed:\n%s", res.Report)
	}
	for _, advisory := range res.Advisories {
		b.log.Warn().Msg(advisory)
	}

	global, extruders := profile.Partition(res.Values, b.Index, req.ExtruderSettings)

	safeName := archive.SanitizeName(req.ProfileName)
	header := profile.Header{
		ProfileName:    req.ProfileName,
		Definition:     req.Definition,
		QualityType:    req.QualityType,
		SettingVersion: b.SettingVersion,
	}

	p := archive.Profile{
		Name:      safeName,
		Global:    profile.Serialize(global, b.Index, header),
		Extruders: make(map[int]string),
	}
	for pos, group := range extruders {
		if group.Len() == 0 {
			continue
		}
		h := header
		h.Extruder = true
		h.Position = pos
		p.Extruders[pos] = profile.Serialize(group, b.Index, h)
	}

	out := archive.ResolvePath(req.OutputPath, safeName)
	if err := archive.Write(out, p); err != nil {
		return "", err
	}
	return out, nil
}

func sample(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
