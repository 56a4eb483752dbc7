package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resumelift/renderer"
	"resumelift/services"
	"resumelift/utils"
)

// PDFHandler renders canonical resume text to PDF bytes, optionally
// uploading the result to S3 when configured.
type PDFHandler struct {
	renderer *renderer.PDFRenderer
	s3       *services.S3Service
	logger   *utils.Logger
}

// NewPDFHandler creates the handler. s3 may be nil when storage is not
// configured; the PDF is then always streamed inline.
func NewPDFHandler(r *renderer.PDFRenderer, s3 *services.S3Service, logger *utils.Logger) *PDFHandler {
	return &PDFHandler{renderer: r, s3: s3, logger: logger}
}

// Render converts the posted canonical document to a PDF. Rendering is the
// one pipeline stage with no fallback below it, so its failure is the one
// user-visible error.
func (h *PDFHandler) Render(c *gin.Context) {
	resumeText := strings.TrimSpace(c.PostForm("resume_text"))
	if resumeText == "" {
		utils.BadRequestError(c, "resume_text is required", nil)
		return
	}

	pdfBytes, err := h.renderer.Render(resumeText)
	if err != nil {
		h.logger.Error("pdf rendering failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	if c.PostForm("upload") == "true" && h.s3 != nil {
		key, upErr := h.s3.UploadPDF(pdfBytes)
		if upErr == nil {
			url, preErr := h.s3.GeneratePresignedURL(key)
			if preErr == nil {
				c.JSON(http.StatusOK, gin.H{"downloadURL": url})
				return
			}
			upErr = preErr
		}
		h.logger.Warn("S3 upload failed, streaming PDF inline", map[string]interface{}{"error": upErr.Error()})
	}

	c.Header("Content-Disposition", `attachment; filename="resume.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
