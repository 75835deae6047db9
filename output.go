package twcss

import (
	"fmt"
	"io"
)

// OutputFormat selects what a build writes.
type OutputFormat string

// Output formats.
const (
	// FormatCSS writes CSS text in the stylesheet's mode.
	FormatCSS OutputFormat = "css"
	// FormatJSON writes the structured stylesheet and its errors.
	FormatJSON OutputFormat = "json"
)

// DetermineOutputFormat maps a format flag to a format. Unknown or empty
// values fall back to CSS, matching the default of the build command.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "json":
		return FormatJSON
	case "css", "":
		return FormatCSS
	default:
		return FormatCSS
	}
}

// WriteOutput writes sheet in format.
func WriteOutput(w io.Writer, sheet *Stylesheet, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, sheet)
	case FormatCSS:
		css := sheet.String()
		if css != "" && sheet.Mode == OutputMinified {
			css += "\n"
		}
		if _, err := io.WriteString(w, css); err != nil {
			return fmt.Errorf("write css: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
