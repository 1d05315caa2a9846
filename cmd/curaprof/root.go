package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"curaprof/internal/preset"
)

const version = "1.0.0"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "curaprof",
		Short: "Build importable .curaprofile archives for the Cura slicer",
		Long: `curaprof builds custom quality profiles for the Cura slicer from preset
templates, profile-extractor JSON documents, or manual settings, validating
every value against the constraints in the installed fdmprinter.def.json.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newBuildCmd(), newPresetsCmd())
	return root
}

func newLogger(verbose bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(output).Level(level).With().Timestamp().Str("app", "curaprof").Logger()
}

// loadLibrary returns the preset catalog, extended with the user's presets
// file when one is given.
func loadLibrary(path string) (*preset.Library, error) {
	lib := preset.Builtin()
	if path == "" {
		return lib, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read presets file: %w", err)
	}
	if err := lib.LoadUser(content); err != nil {
		return nil, err
	}
	return lib, nil
}
