package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupWordRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/resume/word", NewWordHandler(nil).Export)
	return r
}

func TestWordExport_ValidDocument(t *testing.T) {
	router := setupWordRouter()

	w := httptest.NewRecorder()
	form := url.Values{"resume_text": {"JANE DOE\n\nPROFESSIONAL SUMMARY\nExperienced analyst."}}
	req, _ := http.NewRequest("POST", "/api/resume/word", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "resume.docx")
	assert.NotZero(t, w.Body.Len())
}

func TestWordExport_MissingText(t *testing.T) {
	router := setupWordRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/resume/word", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
