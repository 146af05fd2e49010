package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Collapse trims s and squeezes every run of whitespace into one space.
func Collapse(s string) string {
	return whitespaceRegex.ReplaceAllString(strings.TrimSpace(s), " ")
}

// MatchAny reports whether the lower-cased text contains any of the
// matchers. Matchers are expected to already be lower case.
func MatchAny(text string, matchers []string) bool {
	text = strings.ToLower(text)
	for _, m := range matchers {
		if m == "" {
			continue
		}
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

// LowerAll returns a lower-cased, trimmed copy of the given matchers with
// empty entries removed.
func LowerAll(matchers []string) []string {
	out := make([]string, 0, len(matchers))
	for _, m := range matchers {
		m = strings.ToLower(strings.TrimSpace(m))
		if m == "" {
			continue
		}
		out = append(out, m)
	}
	return out
}

// SplitList splits a delimited list, trimming each item and dropping blanks.
func SplitList(s, delimiter string) []string {
	if delimiter == "" {
		delimiter = ";"
	}
	var out []string
	for _, item := range strings.Split(s, delimiter) {
		item = Collapse(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
