package csvcodec

import (
	"os"
	"strings"
)

// Parse splits text into rows of fields. Quoted fields may contain commas,
// newlines and doubled quotes. Carriage returns are dropped everywhere,
// including inside quotes.
func Parse(text string) [][]string {
	var rows [][]string
	var row []string
	var field strings.Builder
	inQuotes := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '\r' {
			continue
		}

		if inQuotes {
			if c == '"' {
				if i+1 < len(text) && text[i+1] == '"' {
					field.WriteByte('"')
					i++
					continue
				}
				inQuotes = false
				continue
			}
			field.WriteByte(c)
			continue
		}

		switch c {
		case '"':
			inQuotes = true
		case ',':
			row = append(row, field.String())
			field.Reset()
		case '\n':
			row = append(row, field.String())
			field.Reset()
			rows = append(rows, row)
			row = nil
		default:
			field.WriteByte(c)
		}
	}

	if field.Len() > 0 || len(row) > 0 {
		row = append(row, field.String())
		rows = append(rows, row)
	}
	return rows
}

// ToObjects parses text and zips every data row against the header row.
// Rows with one field or fewer are skipped, so blank lines disappear.
func ToObjects(text string) (header []string, objects []map[string]string) {
	rows := Parse(text)
	if len(rows) == 0 {
		return nil, nil
	}
	header = rows[0]

	for _, row := range rows[1:] {
		if len(row) <= 1 {
			continue
		}
		obj := make(map[string]string, len(header))
		for i, key := range header {
			if i < len(row) {
				obj[key] = row[i]
			} else {
				obj[key] = ""
			}
		}
		objects = append(objects, obj)
	}
	return header, objects
}

func needsQuoting(cell string) bool {
	return strings.ContainsAny(cell, ",\"\n")
}

// EscapeCell renders a single cell.
func EscapeCell(cell string) string {
	cell = strings.ReplaceAll(cell, "\r", "")
	if !needsQuoting(cell) {
		return cell
	}
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}

func writeLine(out *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			out.WriteByte(',')
		}
		out.WriteString(EscapeCell(cell))
	}
	out.WriteByte('\n')
}

// Serialize writes a header line followed by one line per record, with
// columns in the order of fields. Keys absent from a record produce an empty
// cell.
func Serialize(records []map[string]string, fields []string) string {
	var out strings.Builder
	writeLine(&out, fields)

	cells := make([]string, len(fields))
	for _, rec := range records {
		for i, f := range fields {
			cells[i] = rec[f]
		}
		writeLine(&out, cells)
	}
	return out.String()
}

func ReadFile(path string) ([]string, []map[string]string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	header, objects := ToObjects(string(contents))
	return header, objects, nil
}

func WriteFile(path string, records []map[string]string, fields []string) error {
	return os.WriteFile(path, []byte(Serialize(records, fields)), 0644)
}
