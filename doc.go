// Package twcss turns utility class strings into CSS.
//
// A class string such as "md:hover:bg-blue-600/50" is parsed into a token
// (variant chain, utility, value, modifiers), its variants become a wrapping
// context (media queries, container queries, selector rewrites) and the
// utility becomes declarations. A batch of class strings becomes one
// stylesheet, grouped by context and ordered by a fixed cascade table.
//
// # Generation
//
//	engine, err := twcss.New(twcss.DefaultTheme(), twcss.WithOutputMode(twcss.OutputMinified))
//	if err != nil {
//		return err
//	}
//	sheet, errs := engine.Generate([]string{"p-4", "md:p-8", "hover:bg-blue-600"})
//	fmt.Print(sheet)
//
// Errors are per class string; a failed string never blocks the rest of the
// batch. Every error is a *ClassError and matches one of the Err* sentinels
// with errors.Is.
//
// # Themes
//
// DefaultTheme returns the built-in scales and palettes. LoadTheme merges a
// YAML or TOML file over them.
//
// # Validation
//
// Engine.Check validates a batch without emitting CSS, for build steps that
// should fail on unknown utilities. ScanFiles extracts class strings from
// templ, HTML and Go sources to feed it.
//
// # CLI Tool
//
//	go install github.com/yacobolo/twcss/cmd/twcss@latest
package twcss
