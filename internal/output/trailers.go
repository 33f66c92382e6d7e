package output

import (
	"fmt"
	"io"

	"github.com/propsbot/propsbot/internal/props"
)

// TrailersFormatter emits only the bare Co-authored-by lines, ready to
// append to a squash-merge commit message.
type TrailersFormatter struct{}

// Format writes one trailer per resolved contributor.
func (f *TrailersFormatter) Format(report *props.Report, w io.Writer) error {
	for _, line := range report.TrailerLines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
