package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewResponseCache(t *testing.T) {
	cache := NewResponseCache(5 * time.Minute)

	assert.NotNil(t, cache)
	assert.NotNil(t, cache.cache)
	assert.Equal(t, 5*time.Minute, cache.ttl)
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	return w
}

func TestResponseCache_RepeatedBodyIsCached(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cache := NewResponseCache(1 * time.Minute)
	router := gin.New()

	callCount := 0
	router.Use(cache.Cache())
	router.POST("/api/resume/transform", func(c *gin.Context) {
		callCount++
		c.JSON(200, gin.H{"resume": c.PostForm("resume_text"), "count": callCount})
	})

	form := url.Values{"resume_text": {"same resume"}, "job_description": {"same jd"}}

	w1 := postForm(router, "/api/resume/transform", form)
	assert.Equal(t, 200, w1.Code)
	assert.Equal(t, 1, callCount)

	w2 := postForm(router, "/api/resume/transform", form)
	assert.Equal(t, 200, w2.Code)
	assert.Equal(t, 1, callCount, "identical body should be served from cache")
	assert.JSONEq(t, w1.Body.String(), w2.Body.String())
}

func TestResponseCache_DifferentBodiesMiss(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cache := NewResponseCache(1 * time.Minute)
	router := gin.New()

	callCount := 0
	router.Use(cache.Cache())
	router.POST("/api/resume/transform", func(c *gin.Context) {
		callCount++
		c.JSON(200, gin.H{"count": callCount})
	})

	postForm(router, "/api/resume/transform", url.Values{"resume_text": {"resume A"}})
	postForm(router, "/api/resume/transform", url.Values{"resume_text": {"resume B"}})
	assert.Equal(t, 2, callCount)
}

func TestResponseCache_BodyStillReadableByHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cache := NewResponseCache(1 * time.Minute)
	router := gin.New()

	var seen string
	router.Use(cache.Cache())
	router.POST("/api/resume/transform", func(c *gin.Context) {
		seen = c.PostForm("resume_text")
		c.JSON(200, gin.H{"ok": true})
	})

	postForm(router, "/api/resume/transform", url.Values{"resume_text": {"the body"}})
	assert.Equal(t, "the body", seen, "key generation must restore the request body")
}

func TestResponseCache_Expiration(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cache := NewResponseCache(100 * time.Millisecond)
	router := gin.New()

	callCount := 0
	router.Use(cache.Cache())
	router.POST("/api/resume/transform", func(c *gin.Context) {
		callCount++
		c.JSON(200, gin.H{"count": callCount})
	})

	form := url.Values{"resume_text": {"resume"}}
	postForm(router, "/api/resume/transform", form)
	assert.Equal(t, 1, callCount)

	time.Sleep(150 * time.Millisecond)

	postForm(router, "/api/resume/transform", form)
	assert.Equal(t, 2, callCount)
}

func TestResponseCache_NonCacheablePathBypassed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cache := NewResponseCache(1 * time.Minute)
	router := gin.New()

	callCount := 0
	router.Use(cache.Cache())
	router.POST("/api/resume/pdf", func(c *gin.Context) {
		callCount++
		c.Data(200, "application/pdf", []byte("%PDF-fake"))
	})

	form := url.Values{"resume_text": {"resume"}}
	postForm(router, "/api/resume/pdf", form)
	postForm(router, "/api/resume/pdf", form)
	assert.Equal(t, 2, callCount, "binary endpoints are never cached")
}

func TestIsCacheableEndpoint(t *testing.T) {
	assert.True(t, isCacheableEndpoint("/api/resume/transform"))
	assert.True(t, isCacheableEndpoint("/api/resume/parse"))
	assert.False(t, isCacheableEndpoint("/api/resume/pdf"))
	assert.False(t, isCacheableEndpoint("/api/resume/word"))
	assert.False(t, isCacheableEndpoint("/health"))
}
