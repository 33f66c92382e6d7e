package output

import (
	"encoding/json"
	"io"

	"github.com/propsbot/propsbot/internal/props"
)

// JSONFormatter emits the structured report for downstream workflow
// steps.
type JSONFormatter struct {
	Pretty bool
}

// Format outputs the report as JSON
func (f *JSONFormatter) Format(report *props.Report, w io.Writer) error {
	encoder := json.NewEncoder(w)
	if f.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(report)
}
