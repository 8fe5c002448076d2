package ats

import (
	"regexp"
	"sort"
)

// Highlight wraps whole-word, case-insensitive occurrences of each keyword in
// **…** emphasis markers. Keywords run longest first so "management" is
// wrapped as one unit instead of being pre-empted by "manage".
//
// Known limitation: the output is not safe to highlight a second time — the
// inserted markers sit next to word boundaries and keywords can match again
// inside already-emphasized text.
func Highlight(text string, keywords []string) string {
	unique := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		if kw != "" {
			unique[kw] = struct{}{}
		}
	}
	ordered := make([]string, 0, len(unique))
	for kw := range unique {
		ordered = append(ordered, kw)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if len(ordered[i]) != len(ordered[j]) {
			return len(ordered[i]) > len(ordered[j])
		}
		return ordered[i] < ordered[j]
	})

	for _, kw := range ordered {
		re := regexp.MustCompile(`(?i)\b(` + regexp.QuoteMeta(kw) + `)\b`)
		text = re.ReplaceAllString(text, `**${1}**`)
	}
	return text
}
