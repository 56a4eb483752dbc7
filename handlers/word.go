package handlers

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"resumelift/utils"
)

// WordHandler exports the canonical resume text as a .docx document.
type WordHandler struct {
	logger *utils.Logger
}

func NewWordHandler(logger *utils.Logger) *WordHandler {
	return &WordHandler{logger: logger}
}

// Export writes the document through a temp file since the docx writer
// saves to a path.
func (h *WordHandler) Export(c *gin.Context) {
	resumeText := strings.TrimSpace(c.PostForm("resume_text"))
	if resumeText == "" {
		utils.BadRequestError(c, "resume_text is required", nil)
		return
	}

	tempFile, err := os.CreateTemp("", "resume-*.docx")
	if err != nil {
		h.logger.Error("temp file creation failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate document"})
		return
	}
	tempPath := tempFile.Name()
	tempFile.Close()
	defer os.Remove(tempPath)

	if err := utils.GenerateWordDocument(resumeText, tempPath); err != nil {
		h.logger.Error("docx generation failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate document"})
		return
	}

	c.FileAttachment(tempPath, "resume.docx")
}
