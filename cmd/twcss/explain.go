package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/twcss/internal/report"
)

var explainCmd = &cobra.Command{
	Use:   "explain <class>...",
	Short: "Show how class strings resolve",
	Long: `Print the utility, value, variants, cascade category and resulting CSS
for each class string.`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runExplain,
}

func init() {
	explainCmd.Flags().Bool("json", false, "Print explanations as JSON")
	explainCmd.ValidArgsFunction = completeClasses
}

func runExplain(_ *cobra.Command, args []string) error {
	cfg := buildEngineConfig()

	log, err := newLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	engine, err := newEngine(cfg, log)
	if err != nil {
		return err
	}

	asJSON := getBoolWithFallback("json", "explain.json", false)
	r := report.NewSummaryReporter(os.Stdout, report.ShouldUseColors(getBoolWithFallback("color", "color", false)))

	for i, class := range args {
		ex, err := engine.Explain(class)
		if err != nil {
			return err
		}
		if asJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(ex); err != nil {
				return fmt.Errorf("encode explanation: %w", err)
			}
			continue
		}
		if i > 0 {
			fmt.Println()
		}
		r.PrintExplanation(ex)
	}
	return nil
}
