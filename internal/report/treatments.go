package report

import (
	"sort"

	"consultant-gaps/internal/gaps"
	"consultant-gaps/lib/textutil"
)

type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// TopTreatments counts every treatment tag across records and returns the
// `n` most frequent. Ties keep the order in which tags were first seen.
func TopTreatments(records []gaps.GapRecord, delimiter string, n int) []TagCount {
	if n <= 0 {
		return nil
	}

	var counts []TagCount
	index := map[string]int{}
	for _, r := range records {
		for _, tag := range textutil.SplitList(r.Treatments, delimiter) {
			i, ok := index[tag]
			if !ok {
				index[tag] = len(counts)
				counts = append(counts, TagCount{Tag: tag, Count: 1})
				continue
			}
			counts[i].Count++
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
