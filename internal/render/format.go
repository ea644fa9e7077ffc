package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/embarques/fletes/internal/domain"
)

// Format is a document format a report can be rendered to.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat maps a user-supplied name to a Format. An empty name means xlsx.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatXLSX, nil
	case FormatXLSX, FormatCSV, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("%w: unsupported report format %q", domain.ErrValidation, s)
}

// ContentType returns the MIME type of documents in format f.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatJSON:
		return "application/json"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// FileName returns the download name of r rendered in format f.
func (f Format) FileName(r domain.Report) string {
	switch f {
	case FormatCSV:
		return r.FileBase + ".csv"
	case FormatJSON:
		return r.FileBase + ".json"
	}
	return r.FileBase + xlsxExtension
}

// Write renders r to w in format f.
func (f Format) Write(w io.Writer, r domain.Report) error {
	switch f {
	case FormatCSV:
		return CSV(w, r)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("render.JSON: %w", err)
		}
		return nil
	}
	return XLSX(w, r)
}
