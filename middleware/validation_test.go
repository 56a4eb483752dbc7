package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMaxRequestSize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(MaxRequestSize(1024))
	router.POST("/test", func(c *gin.Context) {
		body, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "too large"})
			return
		}
		c.JSON(200, gin.H{"size": len(body)})
	})

	smallBody := strings.Repeat("a", 500)
	w1 := httptest.NewRecorder()
	req1, _ := http.NewRequest("POST", "/test", bytes.NewBufferString(smallBody))
	router.ServeHTTP(w1, req1)
	assert.Equal(t, http.StatusOK, w1.Code)

	largeBody := strings.Repeat("a", 2000)
	w2 := httptest.NewRecorder()
	req2, _ := http.NewRequest("POST", "/test", bytes.NewBufferString(largeBody))
	router.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w2.Code)
}

func TestValidateContentType(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(ValidateContentType("application/x-www-form-urlencoded", "multipart/form-data"))
	router.POST("/test", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "ok"})
	})
	router.GET("/test", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "ok"})
	})

	// POST with an accepted content type.
	w1 := httptest.NewRecorder()
	req1, _ := http.NewRequest("POST", "/test", strings.NewReader("a=b"))
	req1.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w1, req1)
	assert.Equal(t, http.StatusOK, w1.Code)

	// POST with a rejected content type.
	w2 := httptest.NewRecorder()
	req2, _ := http.NewRequest("POST", "/test", strings.NewReader("<xml/>"))
	req2.Header.Set("Content-Type", "application/xml")
	router.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusBadRequest, w2.Code)

	// GET skips validation.
	w3 := httptest.NewRecorder()
	req3, _ := http.NewRequest("GET", "/test", nil)
	router.ServeHTTP(w3, req3)
	assert.Equal(t, http.StatusOK, w3.Code)
}

func TestValidateContentType_WithBoundary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(ValidateContentType("multipart/form-data"))
	router.POST("/test", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "ok"})
	})

	// Content type carrying parameters still matches.
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/test", strings.NewReader("data"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
