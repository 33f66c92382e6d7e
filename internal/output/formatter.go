// Package output renders attribution reports in the supported formats.
package output

import (
	"io"

	"github.com/propsbot/propsbot/internal/props"
)

// Format represents the output format
type Format string

const (
	FormatText     Format = "text"
	FormatTrailers Format = "trailers"
	FormatJSON     Format = "json"
)

// Formatter defines the interface for output formatters
type Formatter interface {
	Format(report *props.Report, w io.Writer) error
}

// NewFormatter creates a formatter for the specified format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatTrailers:
		return &TrailersFormatter{}
	default:
		return &TextFormatter{}
	}
}
