package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/twcss"
	"github.com/yacobolo/twcss/internal/report"
	"go.uber.org/zap"
)

var buildCmd = &cobra.Command{
	Use:     "build [paths...]",
	Aliases: []string{"gen", "generate"},
	Short:   "Scan sources and write the CSS their classes need",
	Long: `Scan Go and templ files for class strings, resolve every distinct class
and write one stylesheet. Unresolvable classes are reported and skipped;
the build still writes CSS for the rest.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.StringSlice("paths", nil, "Glob patterns for files to scan")
	f.StringP("output", "o", "", "Output file (default stdout)")
	f.String("format", "css", "Output format: css|json")
	f.String("mode", "pretty", "CSS layout: pretty|minified")
	f.Bool("minify", false, "Shorthand for --mode minified")
	f.Bool("verify", false, "Re-parse the emitted CSS before writing it")
	f.Bool("stats", false, "Print build statistics to stderr")
	f.String("cascade", "", "Comma separated category order (default base,responsive,state,container)")
	f.Int("cache-size", 0, "Bound the token cache with LRU eviction (0 = unbounded)")
	f.Int("workers", 0, "Goroutines per build (0 = GOMAXPROCS)")
}

func runBuild(_ *cobra.Command, args []string) error {
	config := buildBuildConfig()
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

	refs, scan, err := twcss.ScanFiles(config.Paths, log.Named("scan"))
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	sheet, errs := engine.Generate(twcss.UniqueClasses(refs))
	for _, e := range errs {
		log.Warn("skipped class", zap.Error(e))
	}

	format := twcss.DetermineOutputFormat(config.Format)
	if config.Verify && format == twcss.FormatCSS {
		if err := twcss.Verify(sheet.String()); err != nil {
			return err
		}
	}

	if err := writeSheet(config.Output, sheet, format); err != nil {
		return err
	}

	if config.Stats && !config.Quiet {
		report.NewSummaryReporter(os.Stderr, report.ShouldUseColors(config.Color)).
			PrintBuild(sheet, scan, engine.CacheStats())
	}

	return nil
}

func writeSheet(path string, sheet *twcss.Stylesheet, format twcss.OutputFormat) error {
	var w io.Writer = os.Stdout
	if path != "" {
		// #nosec G304 - path comes from trusted configuration
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}
	return twcss.WriteOutput(w, sheet, format)
}
