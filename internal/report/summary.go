package report

import (
	"consultant-gaps/internal/gaps"
)

// Summary aggregates a set of classified records.
type Summary struct {
	Total         int
	FullyComplete int
	Counts        map[gaps.Flag]int
	Photos        map[gaps.PhotoStatus]int
	// TreatmentsChecked is set when at least one record could have been
	// flagged NO_TREATMENTS, ie. a procedures index was joined.
	TreatmentsChecked bool
}

// Summarize counts every flag across records in a single pass.
func Summarize(records []gaps.GapRecord, treatmentsChecked bool) Summary {
	out := Summary{
		Total:             len(records),
		Counts:            make(map[gaps.Flag]int, len(gaps.AllFlags)),
		Photos:            map[gaps.PhotoStatus]int{},
		TreatmentsChecked: treatmentsChecked,
	}
	for _, f := range gaps.AllFlags {
		out.Counts[f] = 0
	}

	for _, r := range records {
		for _, f := range r.Flags {
			out.Counts[f]++
		}
		out.Photos[r.PhotoStatus]++
		if r.MissingCount == 0 {
			out.FullyComplete++
		}
	}
	return out
}

func (s Summary) Count(flag gaps.Flag) int {
	return s.Counts[flag]
}

// Percent is the share of records carrying `flag`, 0 for an empty summary.
func (s Summary) Percent(flag gaps.Flag) float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Counts[flag]) * 100 / float64(s.Total)
}

// Map flattens the summary into the keys used by the report, ex.
// no_gmc, fully_complete, total.
func (s Summary) Map() map[string]int {
	out := map[string]int{
		"total":          s.Total,
		"fully_complete": s.FullyComplete,
	}
	for _, f := range gaps.AllFlags {
		out[f.Column()] = s.Counts[f]
	}
	return out
}

// VisibleFlags is the flags worth showing, NO_TREATMENTS is hidden when no
// procedures data was joined.
func (s Summary) VisibleFlags() []gaps.Flag {
	out := make([]gaps.Flag, 0, len(gaps.AllFlags))
	for _, f := range gaps.AllFlags {
		if f == gaps.NoTreatments && !s.TreatmentsChecked {
			continue
		}
		out = append(out, f)
	}
	return out
}
