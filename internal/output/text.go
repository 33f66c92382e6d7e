package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/propsbot/propsbot/internal/props"
)

// TextFormatter writes the attribution block as-is, with colored
// category headers when the destination is a terminal.
type TextFormatter struct {
	// Color forces colored headers on or off; fatih/color's own TTY
	// detection applies when writing to stdout.
	Color bool
}

// Format writes the report's attribution text. A report with no
// contributors produces no output at all.
func (f *TextFormatter) Format(report *props.Report, w io.Writer) error {
	if report.Empty() {
		return nil
	}

	header := color.New(color.FgCyan, color.Bold)
	if !f.Color {
		header.DisableColor()
	}

	for i, section := range report.Sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if _, err := header.Fprintf(w, "# %s\n", section.Category.Display()); err != nil {
			return err
		}
		for _, m := range section.Members {
			if m.Trailer == "" {
				continue
			}
			if _, err := fmt.Fprintln(w, m.Trailer); err != nil {
				return err
			}
		}
	}

	if len(report.Unresolved) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Unconnected contributors: %d\n", len(report.Unresolved))
		for _, key := range report.Unresolved {
			fmt.Fprintf(w, "  - %s\n", key)
		}
	}

	return nil
}
