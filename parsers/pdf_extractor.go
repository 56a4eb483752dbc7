package parsers

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor handles extracting text from PDF files
type PDFExtractor struct{}

// NewPDFExtractor creates a new PDF text extractor
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// ExtractText extracts text from a PDF file, trying the embedded reader
// first and falling back to pdftotext when the library cannot decode the
// document.
func (e *PDFExtractor) ExtractText(filePath string) (string, error) {
	if text, err := e.extractWithLibrary(filePath); err == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}

	if text, err := e.extractWithPdfToText(filePath); err == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}

	return "", fmt.Errorf("failed to extract text from PDF using all available methods")
}

// extractWithLibrary decodes the PDF in-process. ledongthuc/pdf resolves
// font-encoded glyphs into UTF-8, which covers most generated resumes.
func (e *PDFExtractor) extractWithLibrary(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open PDF: %v", err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract PDF text: %v", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", fmt.Errorf("read PDF text: %v", err)
	}

	text := buf.String()
	if !utf8.ValidString(text) {
		// Re-encode through the rune loop so invalid sequences become the
		// replacement character instead of poisoning downstream regexes.
		var sb strings.Builder
		sb.Grow(len(text))
		for _, r := range text {
			sb.WriteRune(r)
		}
		text = sb.String()
	}
	return text, nil
}

// extractWithPdfToText shells out to pdftotext (poppler-utils) when present.
func (e *PDFExtractor) extractWithPdfToText(filePath string) (string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return "", fmt.Errorf("pdftotext not available: %v", err)
	}

	tempFile := filePath + ".txt"
	defer os.Remove(tempFile)

	cmd := exec.Command("pdftotext", "-layout", filePath, tempFile)
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("pdftotext failed: %v", err)
	}

	content, err := os.ReadFile(tempFile)
	if err != nil {
		return "", fmt.Errorf("failed to read extracted text: %v", err)
	}
	return string(content), nil
}
