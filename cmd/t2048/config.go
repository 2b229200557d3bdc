package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Prints the built-in YAML config. Save it to ~/.t2048/configs/t2048.yaml
or pass an edited copy with --config to change the default board size
and which tiles spawn.

Examples:
  t2048 config > ~/.t2048/configs/t2048.yaml
  t2048 config > my-2048.yaml && t2048 play --config my-2048.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML("2048"))
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
