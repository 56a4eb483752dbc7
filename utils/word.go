package utils

import (
	"strings"

	"baliance.com/gooxml/document"
)

// GenerateWordDocument writes the canonical resume text into a .docx file,
// one paragraph per line. Blank lines become empty paragraphs so the section
// spacing survives the export.
func GenerateWordDocument(content string, filepath string) error {
	doc := document.New()
	for _, line := range strings.Split(content, "\n") {
		doc.AddParagraph().AddRun().AddText(line)
	}
	return doc.SaveToFile(filepath)
}
