package handlers

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"atlasweb_backend/internal/storage"
	"atlasweb_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// FileHandler streams stored objects for the local storage backend,
// where no external host serves them.
type FileHandler struct {
	*BaseHandler
	store storage.Storage
}

func NewFileHandler(base *BaseHandler, store storage.Storage) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		store:       store,
	}
}

func (h *FileHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/files/*path", h.Serve)
}

func (h *FileHandler) Serve(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	if path == "" || strings.Contains(path, "..") {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid file path"))
		return
	}

	ctx := c.Request.Context()

	reader, err := h.store.Get(ctx, path)
	if err != nil {
		h.HandleServiceError(c, apperrors.MediaNotFound())
		return
	}
	defer reader.Close()

	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		c.Header("Content-Type", ct)
	}
	c.Status(http.StatusOK)
	// Headers are sent once the first byte is copied; errors after that
	// can only abort the stream.
	io.Copy(c.Writer, reader) //nolint:errcheck
}
