package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/yacobolo/twcss"
)

// SummaryReporter prints build statistics and class explanations.
type SummaryReporter struct {
	w         io.Writer
	useColors bool
}

// NewSummaryReporter creates a summary reporter.
func NewSummaryReporter(w io.Writer, useColors bool) *SummaryReporter {
	return &SummaryReporter{w: w, useColors: useColors}
}

// PrintBuild prints counts for one build.
func (r *SummaryReporter) PrintBuild(sheet *twcss.Stylesheet, scan twcss.ScanStats, cache twcss.CacheStats) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Build Statistics", r.useColors))
	fmt.Fprintln(r.w, "----------------")

	fmt.Fprintf(r.w, "Files Scanned:   %d\n", scan.FilesScanned)
	fmt.Fprintf(r.w, "Rules:           %d\n", sheet.Len())
	fmt.Fprintf(r.w, "Context Groups:  %d\n", len(sheet.Groups))
	fmt.Fprintf(r.w, "Errors:          %d\n", len(sheet.Errors))
	fmt.Fprintf(r.w, "Cache Hits:      %d of %d\n", cache.Hits, cache.Hits+cache.Misses)

	if counts := sheet.CountCategories(); len(counts) > 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Declarations", r.useColors))
		fmt.Fprintln(r.w, "------------")
		for _, c := range counts {
			fmt.Fprintf(r.w, "%-12s %d\n", string(c.Category)+":", c.Count)
		}
	}

	if len(sheet.Errors) > 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleRed, "Errors", r.useColors))
		fmt.Fprintln(r.w, "------")
		for _, err := range sheet.Errors {
			fmt.Fprintf(r.w, "• %s\n", err)
		}
	}
}

// PrintExplanation prints each pipeline stage for one class.
func (r *SummaryReporter) PrintExplanation(ex *twcss.Explanation) {
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, ex.Token.Raw, r.useColors))
	fmt.Fprintln(r.w, strings.Repeat("-", len(ex.Token.Raw)))

	fmt.Fprintf(r.w, "Utility:    %s (%s)\n", ex.Token.Utility, ex.Token.Kind)
	if ex.Token.Value != "" {
		fmt.Fprintf(r.w, "Value:      %s\n", ex.Token.Value)
	}
	if ex.Token.HasOpacity {
		fmt.Fprintf(r.w, "Opacity:    %d%%\n", ex.Token.Opacity)
	}
	var flags []string
	if ex.Token.Negative {
		flags = append(flags, "negative")
	}
	if ex.Token.Important {
		flags = append(flags, "important")
	}
	if len(flags) > 0 {
		fmt.Fprintf(r.w, "Flags:      %s\n", strings.Join(flags, ", "))
	}

	if len(ex.Token.Variants) > 0 {
		names := make([]string, len(ex.Token.Variants))
		for i, v := range ex.Token.Variants {
			names[i] = fmt.Sprintf("%s(%s)", v.Kind, v.Name)
		}
		fmt.Fprintf(r.w, "Variants:   %s\n", strings.Join(names, " > "))
	}
	fmt.Fprintf(r.w, "Cascade:    %s\n", ex.Category)
	fmt.Fprintf(r.w, "Selector:   %s\n", RenderStyle(StyleGray, ex.Rule.FullSelector(), r.useColors))

	fmt.Fprintln(r.w, "")
	var current twcss.PropertyCategory
	for _, p := range ex.Properties {
		if p.Category != current {
			current = p.Category
			fmt.Fprintf(r.w, "%s:\n", current)
		}
		fmt.Fprintf(r.w, "  %s: %s\n", p.Name, p.Value)
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprint(r.w, ex.CSS)
	if !strings.HasSuffix(ex.CSS, "\n") {
		fmt.Fprintln(r.w, "")
	}
}
