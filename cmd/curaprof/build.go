package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"curaprof/internal/builder"
	"curaprof/internal/config"
	"curaprof/internal/cura"
)

type buildOptions struct {
	preset     string
	fromJSON   string
	settings   string
	definition string
	name       string
	quality    string
	output     string

	install     string
	data        string
	configPath  string
	presetsFile string
	only        []string
	verbose     bool
}

func newBuildCmd() *cobra.Command {
	opts := &buildOptions{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a profile from a preset, an extraction file, or manual settings",
		Example: `  curaprof build --preset PLA/normal --definition creality_ender3pro
  curaprof build --from-json my_extraction.json --name "Imported Profile"
  curaprof build --settings layer_height=0.2,infill_sparse_density=20 \
      --definition creality_ender3pro --name Custom`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.preset, "preset", "", "build from preset MATERIAL/quality (e.g. PLA/normal)")
	f.StringVar(&opts.fromJSON, "from-json", "", "build from a profile extraction JSON file")
	f.StringVar(&opts.settings, "settings", "", "manual settings: key=value,key=value")
	f.StringVarP(&opts.definition, "definition", "d", "", "machine definition (e.g. creality_ender3pro)")
	f.StringVarP(&opts.name, "name", "n", "", "profile name shown in Cura")
	f.StringVarP(&opts.quality, "quality", "q", "normal", "quality tier: draft, normal, fine, ultra")
	f.StringVarP(&opts.output, "output", "o", "", "output path (default: <profile name>.curaprofile)")
	f.StringVar(&opts.install, "install", "", "Cura installation path (auto-detected)")
	f.StringVar(&opts.data, "data", "", "Cura user data path (auto-detected)")
	f.StringVar(&opts.configPath, "config", "", "overrides file (default: user config dir)")
	f.StringVar(&opts.presetsFile, "presets-file", "", "extra presets YAML file")
	f.StringSliceVar(&opts.only, "only", nil, "keep only these settings when building from JSON")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose logging")

	cmd.MarkFlagsMutuallyExclusive("preset", "from-json", "settings")
	cmd.MarkFlagsOneRequired("preset", "from-json", "settings")

	return cmd
}

func runBuild(opts *buildOptions) error {
	log := newLogger(opts.verbose)

	cfgPath := opts.configPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	overrides, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	installOverride := firstNonEmpty(opts.install, overrides.InstallPath)
	dataOverride := firstNonEmpty(opts.data, overrides.DataPath)

	installPath := cura.FindInstallPath(installOverride)
	if installPath == "" && installOverride != "" {
		log.Warn().Str("path", installOverride).Msg("install path override does not exist")
	}
	dataPath := cura.FindDataPath(dataOverride)
	if dataPath == "" {
		log.Debug().Msg("user data path not found, setting_version detection disabled")
	}

	b := builder.New(installPath, dataPath, log)
	warnings, err := b.Initialize()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		log.Warn().Msg(w)
	}
	if overrides.SettingVersion > 0 {
		b.SettingVersion = overrides.SettingVersion
	}

	var out string
	switch {
	case opts.preset != "":
		out, err = buildFromPreset(b, opts)
	case opts.fromJSON != "":
		out, err = b.BuildFromExtraction(builder.ExtractionRequest{
			Path:        opts.fromJSON,
			ProfileName: opts.name,
			Definition:  opts.definition,
			QualityType: opts.quality,
			Filter:      opts.only,
			OutputPath:  opts.output,
		})
	default:
		if opts.definition == "" {
			return errors.New("--definition is required with --settings")
		}
		if opts.name == "" {
			return errors.New("--name is required with --settings")
		}
		out, err = b.BuildFromSettings(opts.settings, opts.name, opts.definition, opts.quality, opts.output)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Created %s\n", out)
	fmt.Println("Import via Cura: Preferences -> Profiles -> Import")
	return nil
}

func buildFromPreset(b *builder.Builder, opts *buildOptions) (string, error) {
	material, quality, found := strings.Cut(opts.preset, "/")
	if !found {
		return "", errors.New("preset format is MATERIAL/quality (e.g. PLA/normal)")
	}
	if opts.definition == "" {
		return "", errors.New("--definition is required with --preset")
	}

	lib, err := loadLibrary(opts.presetsFile)
	if err != nil {
		return "", err
	}

	return b.BuildFromPreset(lib, builder.PresetRequest{
		Material:    material,
		Quality:     quality,
		ProfileName: opts.name,
		Definition:  opts.definition,
		OutputPath:  opts.output,
	})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
