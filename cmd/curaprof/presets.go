package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPresetsCmd() *cobra.Command {
	var presetsFile string
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List available material and quality presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := loadLibrary(presetsFile)
			if err != nil {
				return err
			}
			fmt.Print(lib.Format())
			return nil
		},
	}
	cmd.Flags().StringVar(&presetsFile, "presets-file", "", "extra presets YAML file")
	return cmd
}
