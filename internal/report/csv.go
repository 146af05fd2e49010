package report

import (
	"consultant-gaps/internal/gaps"
	"consultant-gaps/lib/csvcodec"
)

// RenderCSV renders the gap records with flag columns encoded as 0/1.
func RenderCSV(records []gaps.GapRecord) string {
	rows := make([]map[string]string, len(records))
	for i, r := range records {
		rows[i] = r.Row()
	}
	return csvcodec.Serialize(rows, gaps.Columns())
}
