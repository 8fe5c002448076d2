// Package export serializes generated text into downloadable .docx
// documents.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"

	pkgerrors "github.com/p-shah256/tailor/pkg/errors"
)

// titleSize is in half-points, so 16pt.
const titleSize = "32"

// Docx renders a heading plus one paragraph per body line and returns the
// document bytes.
func Docx(title, body string) ([]byte, error) {
	if strings.TrimSpace(body) == "" {
		return nil, pkgerrors.EmptyInput("body")
	}

	doc := docx.New().WithDefaultTheme()
	doc.AddParagraph().AddText(title).Size(titleSize)
	for _, line := range strings.Split(body, "\n") {
		doc.AddParagraph().AddText(line)
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write docx: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename builds the attachment name for a document title, e.g.
// "Tailored Resume" -> "tailored_resume.docx".
func Filename(title string) string {
	name := strings.ToLower(strings.TrimSpace(title))
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" {
		name = "document"
	}
	return name + ".docx"
}
