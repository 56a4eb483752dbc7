package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"resumelift/parsers"
	"resumelift/utils"
)

// ParseHandler exposes the structured extraction on its own: a PDF upload or
// raw text in, the structured Resume record out.
type ParseHandler struct {
	parser    *parsers.ResumeParser
	extractor *parsers.PDFExtractor
	logger    *utils.Logger
}

func NewParseHandler(parser *parsers.ResumeParser, extractor *parsers.PDFExtractor, logger *utils.Logger) *ParseHandler {
	return &ParseHandler{parser: parser, extractor: extractor, logger: logger}
}

// Parse accepts either a multipart "resume" PDF file or a "resume_text"
// form field.
func (h *ParseHandler) Parse(c *gin.Context) {
	resumeText := strings.TrimSpace(c.PostForm("resume_text"))

	if resumeText == "" {
		file, header, err := c.Request.FormFile("resume")
		if err != nil {
			utils.BadRequestError(c, "Provide a resume PDF file or resume_text", nil)
			return
		}
		defer file.Close()

		text, err := h.extractUploadedPDF(file, header.Filename)
		if err != nil {
			h.logger.Error("pdf text extraction failed", err)
			utils.BadRequestError(c, "Could not extract text from the uploaded PDF", nil)
			return
		}
		resumeText = strings.TrimSpace(text)
	}

	if len(resumeText) < parsers.MinResumeChars {
		utils.BadRequestError(c, "Resume text is too short (minimum 50 characters)", nil)
		return
	}

	resume := h.parser.Parse(resumeText)
	c.JSON(http.StatusOK, resume)
}

// extractUploadedPDF spools the upload to a temp file for the extractor,
// which needs a seekable path.
func (h *ParseHandler) extractUploadedPDF(file io.Reader, filename string) (string, error) {
	tempFile, err := os.CreateTemp("", "resume-*"+filepath.Ext(filename))
	if err != nil {
		return "", err
	}
	defer os.Remove(tempFile.Name())

	if _, err := io.Copy(tempFile, file); err != nil {
		tempFile.Close()
		return "", err
	}
	tempFile.Close()

	return h.extractor.ExtractText(tempFile.Name())
}
