package gaps

import (
	"errors"
	"os"
	"strings"

	"consultant-gaps/lib/csvcodec"
)

// rows from the procedures scrape that failed are written with a value
// starting with this prefix.
const treatmentErrorPrefix = "ERROR"

// TreatmentIndex maps a consultant id to the delimited list of treatments
// they offer. It is read-only once built.
type TreatmentIndex struct {
	entries map[string]string
}

// NewTreatmentIndex builds an index from procedures CSV rows, keyed by their
// `id` column. Rows whose `treatments` value starts with ERROR are left out.
func NewTreatmentIndex(rows []map[string]string) *TreatmentIndex {
	entries := make(map[string]string, len(rows))
	for _, row := range rows {
		treatments := strings.TrimSpace(row["treatments"])
		if strings.HasPrefix(treatments, treatmentErrorPrefix) {
			continue
		}
		entries[strings.TrimSpace(row["id"])] = treatments
	}
	return &TreatmentIndex{entries: entries}
}

// LoadTreatmentIndex reads a procedures CSV. A file that does not exist is
// not an error, it yields a nil index.
func LoadTreatmentIndex(path string) (*TreatmentIndex, error) {
	_, rows, err := csvcodec.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return NewTreatmentIndex(rows), nil
}

func (t *TreatmentIndex) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Lookup returns the treatments for a consultant, "" when none are known.
func (t *TreatmentIndex) Lookup(id string) string {
	if t == nil {
		return ""
	}
	return t.entries[id]
}
