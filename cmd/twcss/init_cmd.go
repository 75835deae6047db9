package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .twcss.yaml config file",
	Long:  `Create a .twcss.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".twcss.yaml"); err == nil && !force {
			return fmt.Errorf(".twcss.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".twcss.yaml", []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .twcss.yaml")
		return nil
	},
}

const defaultConfig = `# twcss configuration

# Shared settings
verbose: false
theme: ""           # optional .yaml or .toml theme merged over the defaults
cascade: ""         # e.g. base,responsive,state,container
cache-size: 0       # 0 = unbounded
workers: 0          # 0 = GOMAXPROCS

# Build settings
build:
  paths:
    - "**/*.templ"
    - "**/*.go"
  output: ""        # empty = stdout
  format: css       # css | json
  mode: pretty      # pretty | minified
  verify: false
  stats: false

# Check settings
check:
  paths:
    - "**/*.templ"
    - "**/*.go"
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
