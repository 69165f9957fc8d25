package handlers

import (
	"crypto/subtle"
	"net/http"

	"atlasweb_backend/internal/cache"
	"atlasweb_backend/internal/logger"
	"atlasweb_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// CacheHandler lets the frontend build hooks evict cached public pages
// after a deploy or an out-of-band content change. Both endpoints are
// guarded by a shared secret instead of an admin token so CI can call
// them.
type CacheHandler struct {
	*BaseHandler
	pages  *cache.PageCache
	secret string
}

func NewCacheHandler(base *BaseHandler, pages *cache.PageCache, secret string) *CacheHandler {
	return &CacheHandler{
		BaseHandler: base,
		pages:       pages,
		secret:      secret,
	}
}

func (h *CacheHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/revalidate", h.Revalidate)
	r.POST("/cache/clear", h.Clear)
}

func (h *CacheHandler) checkSecret(c *gin.Context) bool {
	given := c.Query("secret")
	if h.secret == "" || subtle.ConstantTimeCompare([]byte(given), []byte(h.secret)) != 1 {
		h.HandleServiceError(c, apperrors.InvalidCacheSecret())
		return false
	}
	return true
}

// Revalidate drops the cache entry for one path, given as the "path"
// query parameter. Without a path it falls back to a full clear.
func (h *CacheHandler) Revalidate(c *gin.Context) {
	if !h.checkSecret(c) {
		return
	}

	path := c.Query("path")
	if path == "" {
		h.pages.Clear()
		c.JSON(http.StatusOK, gin.H{"revalidated": true, "cleared": "all"})
		return
	}

	h.pages.Invalidate(path)
	logger.CtxInfo(c.Request.Context(), "cache entry revalidated", "path", path)
	c.JSON(http.StatusOK, gin.H{"revalidated": true, "path": path})
}

// Clear empties the page cache.
func (h *CacheHandler) Clear(c *gin.Context) {
	if !h.checkSecret(c) {
		return
	}

	h.pages.Clear()
	logger.CtxInfo(c.Request.Context(), "page cache cleared")
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}
