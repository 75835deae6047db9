package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "twcss",
	Short: "Utility-class CSS generator for Go/templ projects",
	Long: `Scan Go and templ sources for utility class strings such as
"p-4 md:p-8 hover:bg-blue-600" and emit exactly the CSS they need.`,
	// Default behavior: run build when no subcommand is given.
	// PreRunE of buildCmd does not fire when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runBuild(buildCmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".twcss.yaml", "Config file path")
	rootCmd.PersistentFlags().String("theme", "", "Theme file (.yaml or .toml) merged over the defaults")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
