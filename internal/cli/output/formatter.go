package output

import (
	"fmt"
	"io"
	"strings"
)

// Format represents the output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat parses a format name. The empty string selects FormatTable.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatTable, nil
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, json or yaml)", s)
	}
}

// Formatter formats data for output.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// NewFormatter creates a formatter for the given format.
func NewFormatter(format Format, wide bool) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return &TableFormatter{Wide: wide}
	}
}

// Printer writes results and messages to a single writer.
type Printer struct {
	w         io.Writer
	format    Format
	formatter Formatter
}

// NewPrinter creates a printer for format.
func NewPrinter(w io.Writer, format Format, wide bool) *Printer {
	return &Printer{w: w, format: format, formatter: NewFormatter(format, wide)}
}

// Format returns the printer's format.
func (p *Printer) Format() Format { return p.format }

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer { return p.w }

// Print formats data.
func (p *Printer) Print(data any) error {
	return p.formatter.Format(p.w, data)
}

// Message prints a human-readable line. Structured formats wrap it as
// {"message": ...} so scripted output stays parseable.
func (p *Printer) Message(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if p.format == FormatTable {
		_, err := fmt.Fprintln(p.w, msg)
		return err
	}
	return p.Print(map[string]string{"message": msg})
}
