// Package extraction pulls candidate and posting metadata out of free-form
// text with pattern heuristics. Every miss degrades to an empty string; none
// of these functions can fail.
package extraction

import (
	"regexp"
	"sort"
	"strings"
)

var (
	titleRe   = regexp.MustCompile(`(?i)(?:title|position|role)[:\-]?\s*(.+)`)
	companyRe = regexp.MustCompile(`\bat ([A-Z][a-zA-Z0-9& ]+)`)
	keywordRe = regexp.MustCompile(`\b[a-zA-Z]{4,}\b`)
)

type Extractor struct {
	// companyOverrides handles postings that never say "at <Company>" but
	// mention the employer by name somewhere in the body. Matching is
	// case-insensitive; the configured spelling is what gets returned.
	companyOverrides []string
}

func New(companyOverrides []string) *Extractor {
	return &Extractor{companyOverrides: companyOverrides}
}

// Name returns the first line of the resume if it plausibly is a person's
// name (five words or fewer), otherwise "".
func (e *Extractor) Name(resumeText string) string {
	trimmed := strings.TrimSpace(resumeText)
	if trimmed == "" {
		return ""
	}
	firstLine := strings.TrimSpace(strings.SplitN(trimmed, "\n", 2)[0])
	if len(strings.Fields(firstLine)) <= 5 {
		return firstLine
	}
	return ""
}

// TitleAndCompany extracts the job title and company name from a posting.
//
// The title comes from the first line announcing one ("Title:", "Position -",
// "Role ..."). Postings styled as "Your Career at ..." headlines carry the
// title in that headline instead, so a line containing both "your" and
// "career" wins over the announcement match.
//
// The company comes from an "at <Capitalized Name>" phrase, falling back to
// the configured override list when the posting only mentions the employer
// by name.
func (e *Extractor) TitleAndCompany(jobDesc string) (title, company string) {
	if m := titleRe.FindStringSubmatch(jobDesc); m != nil {
		title = strings.TrimSpace(m[1])
	}
	lowerDesc := strings.ToLower(jobDesc)
	if strings.Contains(lowerDesc, "your") && strings.Contains(lowerDesc, "career") {
		for _, line := range strings.Split(jobDesc, "\n") {
			lower := strings.ToLower(line)
			if strings.Contains(lower, "your") && strings.Contains(lower, "career") {
				title = strings.TrimSpace(line)
				break
			}
		}
	}

	if m := companyRe.FindStringSubmatch(jobDesc); m != nil {
		company = strings.TrimSpace(m[1])
	}
	if company == "" {
		for _, override := range e.companyOverrides {
			if strings.Contains(lowerDesc, strings.ToLower(override)) {
				company = override
				break
			}
		}
	}
	return title, company
}

// Keywords tokenizes text into the deduplicated, sorted set of ATS keyword
// candidates: purely alphabetic runs of four or more characters, lowercased.
func Keywords(text string) []string {
	matches := keywordRe.FindAllString(strings.ToLower(text), -1)
	seen := make(map[string]struct{}, len(matches))
	for _, w := range matches {
		seen[w] = struct{}{}
	}
	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
