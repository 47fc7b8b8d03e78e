// Package report renders analysis results.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/verte-zerg/readage/internal/readability"
	"github.com/verte-zerg/readage/internal/textstats"
)

// Format selects how a report is rendered.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatTable, FormatJSON, FormatYAML}

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat matches s against the supported formats, ignoring case.
func ParseFormat(s string) (Format, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for _, f := range Formats {
		if string(f) == want {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFormat, s)
}

// Structured reports whether the format is meant for machines rather than people.
func (f Format) Structured() bool {
	return f == FormatJSON || f == FormatYAML
}

// Report is everything known about one analyzed text.
type Report struct {
	Text       string                 `json:"text" yaml:"text"`
	Stats      textstats.Stats        `json:"stats" yaml:"stats"`
	Assessment readability.Assessment `json:"assessment" yaml:"assessment"`
}

// RenderHeader writes the text and its counts, shown before a selection is
// made. Structured formats have no header.
func RenderHeader(w io.Writer, f Format, text string, st textstats.Stats) error {
	switch f {
	case FormatText:
		return renderTextHeader(w, text, st)
	case FormatTable:
		return renderTableHeader(w, text, st)
	default:
		return nil
	}
}

// RenderResult writes the evaluated part of the report.
func RenderResult(w io.Writer, f Format, r Report) error {
	switch f {
	case FormatText:
		return renderTextScores(w, r.Assessment)
	case FormatTable:
		return renderTable(w, r)
	case FormatJSON:
		return renderJSON(w, r)
	case FormatYAML:
		return renderYAML(w, r)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, string(f))
	}
}
