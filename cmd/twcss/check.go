package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/twcss"
	"github.com/yacobolo/twcss/internal/report"
)

var checkCmd = &cobra.Command{
	Use:     "check [paths...]",
	Aliases: []string{"lint"},
	Short:   "Report class strings that do not resolve",
	Long: `Scan Go and templ files and report every class string that produces no
CSS, with its file position. Exits 1 when any class fails.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.StringSlice("paths", nil, "Glob patterns for files to scan")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (twcss) suffix on issues")
}

// errIssuesFound makes check exit 1 after its report is printed.
var errIssuesFound = errors.New("check found unresolved classes")

func runCheck(_ *cobra.Command, args []string) error {
	config := buildCheckConfig()
	if len(args) > 0 {
		config.Paths = args
	}

	log, err := newLogger(config.Verbose)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	engine, err := newEngine(config.engineConfig, log)
	if err != nil {
		return err
	}

	refs, _, err := twcss.ScanFiles(config.Paths, log.Named("scan"))
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	failures := engine.Failures(twcss.UniqueClasses(refs))
	issues := report.Issues(refs, failures)

	if !config.Quiet {
		r := report.NewReporter(os.Stdout, report.Config{
			UseColors:        config.Color,
			PrintIssuedLines: config.PrintLines,
			PrintLinterName:  config.PrintLinterName,
		})
		r.PrintIssues(issues)
		r.PrintSummary(issues)
	}

	if len(issues) > 0 {
		return errIssuesFound
	}
	return nil
}
