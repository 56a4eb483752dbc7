package middleware

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// CacheEntry represents a cached response
type CacheEntry struct {
	Data      interface{}
	ExpiresAt time.Time
}

// ResponseCache caches transform responses keyed on the request body, so
// repeated submissions of the same resume/job-description pair skip the
// whole extraction and optimization pipeline.
type ResponseCache struct {
	cache map[string]*CacheEntry
	mu    sync.RWMutex
	ttl   time.Duration
}

// NewResponseCache creates a new response cache
func NewResponseCache(ttl time.Duration) *ResponseCache {
	rc := &ResponseCache{
		cache: make(map[string]*CacheEntry),
		ttl:   ttl,
	}

	go rc.cleanup()

	return rc
}

// Cache middleware for caching JSON responses of cacheable endpoints
func (rc *ResponseCache) Cache() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isCacheableEndpoint(c.Request.URL.Path) {
			c.Next()
			return
		}

		key := rc.generateKey(c)

		rc.mu.RLock()
		entry, exists := rc.cache[key]
		rc.mu.RUnlock()

		if exists && time.Now().Before(entry.ExpiresAt) {
			c.JSON(200, entry.Data)
			c.Abort()
			return
		}

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           []byte{},
		}
		c.Writer = writer

		c.Next()

		if c.Writer.Status() == 200 && len(writer.body) > 0 {
			var data interface{}
			if err := json.Unmarshal(writer.body, &data); err == nil {
				rc.mu.Lock()
				rc.cache[key] = &CacheEntry{
					Data:      data,
					ExpiresAt: time.Now().Add(rc.ttl),
				}
				rc.mu.Unlock()
			}
		}
	}
}

// generateKey hashes method, path and (for POST) the request body.
func (rc *ResponseCache) generateKey(c *gin.Context) string {
	h := md5.New()
	h.Write([]byte(c.Request.Method))
	h.Write([]byte(c.Request.URL.Path))

	if c.Request.Method == "POST" {
		body, _ := c.GetRawData()
		h.Write(body)
		// Restore body for further processing
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
	}

	return hex.EncodeToString(h.Sum(nil))
}

// cleanup removes expired cache entries
func (rc *ResponseCache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	for {
		<-ticker.C
		rc.mu.Lock()
		now := time.Now()
		for key, entry := range rc.cache {
			if now.After(entry.ExpiresAt) {
				delete(rc.cache, key)
			}
		}
		rc.mu.Unlock()
	}
}

// responseWriter wraps gin.ResponseWriter to capture response body
type responseWriter struct {
	gin.ResponseWriter
	body []byte
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body = append(w.body, b...)
	return w.ResponseWriter.Write(b)
}

// isCacheableEndpoint limits caching to the deterministic JSON endpoints.
func isCacheableEndpoint(path string) bool {
	cacheablePaths := []string{
		"/api/resume/transform",
		"/api/resume/parse",
	}
	for _, p := range cacheablePaths {
		if path == p {
			return true
		}
	}
	return false
}
