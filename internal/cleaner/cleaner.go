package cleaner

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultCutoffMarkers are the boilerplate section headings that end the
// useful part of a job posting. Comparison is against the lowercased line.
var DefaultCutoffMarkers = []string{
	"why join us",
	"who we are",
	"what we offer",
	"equal opportunity",
	"requirements for success",
}

type Cleaner struct {
	cutoffMarkers []string
}

func New(cutoffMarkers []string) *Cleaner {
	if len(cutoffMarkers) == 0 {
		cutoffMarkers = DefaultCutoffMarkers
	}
	return &Cleaner{cutoffMarkers: cutoffMarkers}
}

// CleanJobDescription truncates a posting at the first boilerplate line: that
// line and everything after it are dropped. Without a marker the input comes
// back trimmed but otherwise untouched.
func (c *Cleaner) CleanJobDescription(text string) string {
	lines := strings.Split(text, "\n")
	var kept []string
	for _, line := range lines {
		lower := strings.ToLower(line)
		hit := false
		for _, marker := range c.cutoffMarkers {
			if strings.Contains(lower, marker) {
				hit = true
				break
			}
		}
		if hit {
			break
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// CleanHTML reduces an HTML job posting to its readable text blocks.
func (c *Cleaner) CleanHTML(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return stripTags(html)
	}
	doc.Find("script, style, nav, header, footer, iframe, noscript").Remove()
	doc.Find(".menu, .navigation, .social, .banner, .ads, .cookie, .popup").Remove()

	var textBlocks []string
	doc.Find("p, li, h1, h2, h3, h4, h5, h6").Each(func(i int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if len(text) > 0 {
			textBlocks = append(textBlocks, text)
		}
	})
	if len(textBlocks) > 0 {
		return strings.Join(textBlocks, "\n")
	}

	bodyText := strings.TrimSpace(doc.Find("body").Text())
	if len(bodyText) > 0 {
		return collapseSpace(bodyText)
	}
	return collapseSpace(doc.Text())
}

// LooksLikeHTML is a cheap check for pasted-in markup rather than plain text.
func LooksLikeHTML(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "<html") ||
		strings.Contains(lower, "<body") ||
		strings.Contains(lower, "<div") ||
		strings.Contains(lower, "</p>")
}

// CleanLlmResponse strips markdown code fences the model wraps around
// structured output.
func (c *Cleaner) CleanLlmResponse(response string) string {
	if !strings.Contains(response, "```") {
		return strings.TrimSpace(response)
	}

	start := -1
	if strings.Contains(response, "```json") {
		start = strings.Index(response, "```json") + 7
	} else if strings.Contains(response, "```yaml") {
		start = strings.Index(response, "```yaml") + 7
	} else {
		start = strings.Index(response, "```") + 3
	}

	end := strings.LastIndex(response, "```")
	if start != -1 && end != -1 && end > start {
		return strings.TrimSpace(response[start:end])
	}
	return strings.TrimSpace(response)
}

var (
	tagRe   = regexp.MustCompile("<[^>]*>")
	spaceRe = regexp.MustCompile(`\s+`)
)

func stripTags(html string) string {
	return collapseSpace(tagRe.ReplaceAllString(html, " "))
}

func collapseSpace(text string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
}
