// Package report renders batch extraction results as CSV, XLSX or JSON.
package report

import (
	"encoding/json"
	"io"

	"upiscan/internal/domain"
)

// ContentType returns the MIME type for format.
func ContentType(format domain.ReportFormat) string {
	switch format {
	case domain.ReportFormatCSV:
		return "text/csv; charset=utf-8"
	case domain.ReportFormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/json; charset=utf-8"
	}
}

// Write renders items to out in the given format.
func Write(out io.Writer, format domain.ReportFormat, items []domain.BatchItem) error {
	switch format {
	case domain.ReportFormatCSV:
		return WriteCSV(out, items)
	case domain.ReportFormatXLSX:
		return WriteXLSX(out, items)
	case domain.ReportFormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	default:
		return domain.ErrUnsupportedFormat
	}
}
