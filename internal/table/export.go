package table

// export.go serializes the current filtered-and-sorted collection. The CSV
// format is fixed: every field is double-quoted with inner quotes doubled,
// the header row carries column labels, and rows are newline-separated with
// no trailing newline. JSON exports carry the complete field maps, not just
// the displayed columns. encoding/csv is deliberately not used here: it
// quotes only when necessary, and the artifact format quotes every field.

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// Format selects an export serialization.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat validates a format string from a request.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown export format: %q", s)
	}
}

// ContentType returns the MIME type for download responses.
func (f Format) ContentType() string {
	if f == FormatJSON {
		return "application/json"
	}
	return "text/csv"
}

// ExportFilename names the artifact for a table: {tableName}_{YYYY-MM-DD}
// with the format's extension.
func ExportFilename(tableName string, f Format, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", tableName, now.Format("2006-01-02"), f)
}

// WriteCSV serializes the collection to w. An empty collection still yields
// a well-formed header-only file.
func WriteCSV(w io.Writer, recs []Record, columns []Column) error {
	var b strings.Builder

	for i, col := range columns {
		if i > 0 {
			b.WriteByte(',')
		}
		writeQuoted(&b, col.Label)
	}

	for _, rec := range recs {
		b.WriteByte('\n')
		for i, col := range columns {
			if i > 0 {
				b.WriteByte(',')
			}
			writeQuoted(&b, Stringify(rec[col.fieldKey()]))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// writeQuoted writes one field wrapped in double quotes, doubling any inner
// quote characters.
func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	b.WriteString(strings.ReplaceAll(s, `"`, `""`))
	b.WriteByte('"')
}

// WriteJSON serializes the collection to w as an indented array of complete
// records. An empty collection yields an empty array, never null.
func WriteJSON(w io.Writer, recs []Record) error {
	if recs == nil {
		recs = []Record{}
	}
	out, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("export json: %w", err)
	}
	_, err = w.Write(out)
	return err
}
