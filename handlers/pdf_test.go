package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"resumelift/renderer"
)

func setupPDFRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewPDFHandler(renderer.NewPDFRenderer(renderer.DefaultTemplate(), nil), nil, nil)
	r.POST("/api/resume/pdf", h.Render)
	return r
}

func postPDF(router *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/resume/pdf", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	return w
}

func TestPDFRender_ValidDocument(t *testing.T) {
	router := setupPDFRouter()

	doc := "JANE DOE\njane@example.com\n\nPROFESSIONAL SUMMARY\nExperienced analyst building dashboards."
	w := postPDF(router, url.Values{"resume_text": {doc}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestPDFRender_MissingText(t *testing.T) {
	router := setupPDFRouter()

	w := postPDF(router, url.Values{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}
