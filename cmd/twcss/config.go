package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/twcss"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var k = koanf.New(".")

var defaultPaths = []string{
	"**/*.templ",
	"**/*.go",
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".twcss.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// Only flags that were explicitly set are merged, so flag defaults never
	// shadow values from the file or the environment.
	flags := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// It is separate from loadConfig so tests can run without a cobra command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("TWCSS_", ".", func(s string) string {
		// TWCSS_BUILD_OUTPUT -> build.output
		// TWCSS_THEME -> theme
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "TWCSS_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// engineConfig holds the settings shared by every command that builds CSS.
type engineConfig struct {
	Theme     string
	Mode      string
	Cascade   string
	CacheSize int
	Workers   int
	Verbose   bool
}

// buildConfig holds the settings of the build command.
type buildConfig struct {
	engineConfig
	Paths  []string
	Output string
	Format string
	Verify bool
	Stats  bool
	Quiet  bool
	Color  bool
}

// checkConfig holds the settings of the check command.
type checkConfig struct {
	engineConfig
	Paths           []string
	PrintLines      bool
	PrintLinterName bool
	Quiet           bool
	Color           bool
}

func buildEngineConfig() engineConfig {
	mode := getStringWithFallback("mode", "build.mode", string(twcss.OutputPretty))
	if getBoolWithFallback("minify", "build.minify", false) {
		mode = string(twcss.OutputMinified)
	}
	return engineConfig{
		Theme:     getStringWithFallback("theme", "theme", ""),
		Mode:      mode,
		Cascade:   getStringWithFallback("cascade", "cascade", ""),
		CacheSize: getIntWithFallback("cache-size", "cache-size", 0),
		Workers:   getIntWithFallback("workers", "workers", 0),
		Verbose:   getBoolWithFallback("verbose", "verbose", false),
	}
}

// buildBuildConfig constructs the build settings from koanf state.
func buildBuildConfig() buildConfig {
	return buildConfig{
		engineConfig: buildEngineConfig(),
		Paths:        getPaths("build.paths"),
		Output:       getStringWithFallback("output", "build.output", ""),
		Format:       getStringWithFallback("format", "build.format", string(twcss.FormatCSS)),
		Verify:       getBoolWithFallback("verify", "build.verify", false),
		Stats:        getBoolWithFallback("stats", "build.stats", false),
		Quiet:        getBoolWithFallback("quiet", "quiet", false),
		Color:        getBoolWithFallback("color", "color", false),
	}
}

// buildCheckConfig constructs the check settings from koanf state.
func buildCheckConfig() checkConfig {
	return checkConfig{
		engineConfig:    buildEngineConfig(),
		Paths:           getPaths("check.paths"),
		PrintLines:      getBoolWithFallback("print-lines", "check.print-lines", true),
		PrintLinterName: getBoolWithFallback("print-linter-name", "check.print-linter-name", true),
		Quiet:           getBoolWithFallback("quiet", "quiet", false),
		Color:           getBoolWithFallback("color", "color", false),
	}
}

// getPaths checks the flag key first, then the command's config key, then
// the shared config key.
func getPaths(configKey string) []string {
	if paths := k.Strings("paths"); len(paths) > 0 {
		return paths
	}
	if paths := k.Strings(configKey); len(paths) > 0 {
		return paths
	}
	return append([]string(nil), defaultPaths...)
}

// newEngine builds an engine from the shared settings.
func newEngine(cfg engineConfig, log *zap.Logger) (*twcss.Engine, error) {
	theme := twcss.DefaultTheme()
	if cfg.Theme != "" {
		loaded, err := twcss.LoadTheme(cfg.Theme)
		if err != nil {
			return nil, err
		}
		theme = loaded
	}

	mode, err := twcss.ParseOutputMode(cfg.Mode)
	if err != nil {
		return nil, err
	}

	opts := []twcss.Option{
		twcss.WithOutputMode(mode),
		twcss.WithCacheSize(cfg.CacheSize),
		twcss.WithLogger(log),
	}
	if cfg.Cascade != "" {
		order, err := twcss.ParseCascade(cfg.Cascade)
		if err != nil {
			return nil, err
		}
		opts = append(opts, twcss.WithCascade(order...))
	}
	if cfg.Workers > 0 {
		opts = append(opts, twcss.WithWorkers(cfg.Workers))
	}

	return twcss.New(theme, opts...)
}

// newLogger returns a console logger on stderr: debug level when verbose,
// warnings only otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	return cfg.Build()
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
