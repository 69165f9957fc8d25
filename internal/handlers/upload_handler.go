package handlers

import (
	"net/http"

	"atlasweb_backend/internal/dto"
	"atlasweb_backend/internal/middleware"
	"atlasweb_backend/internal/models"
	"atlasweb_backend/internal/repositories"
	"atlasweb_backend/internal/services"
	"atlasweb_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// UploadHandler exposes the media pipeline: server-mediated batch
// uploads, client-direct signed uploads, and the media library.
type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
	mediaRepo     repositories.MediaRepository
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService, mediaRepo repositories.MediaRepository) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
		mediaRepo:     mediaRepo,
	}
}

func (h *UploadHandler) RegisterRoutes(r *gin.RouterGroup) {
	uploads := r.Group("/uploads")
	uploads.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		uploads.POST("", h.UploadBatch)
		uploads.POST("/sign", h.SignUpload)
	}

	media := r.Group("/media")
	media.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		media.GET("", h.ListMedia)
		media.GET("/:id", h.GetMedia)
		media.POST("", h.SaveMedia)
		media.PUT("/:id", h.UpdateMedia)
		media.DELETE("/:id", h.DeleteMedia)
	}
}

// UploadBatch accepts a multipart form with one or more "files" parts.
// The whole batch is validated before any file is stored.
func (h *UploadHandler) UploadBatch(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid multipart form: "+err.Error()))
		return
	}

	files := form.File["files"]
	category := c.PostForm("category")

	responses, err := h.uploadService.UploadBatch(c.Request.Context(), h.GetDB(c), files, category)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"files": responses})
}

// SignUpload issues a time-boxed direct-upload credential for one file.
func (h *UploadHandler) SignUpload(c *gin.Context) {
	var req dto.SignUploadRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	presigned, err := h.uploadService.SignUpload(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, presigned)
}

// SaveMedia records a completed client-direct upload in the library.
func (h *UploadHandler) SaveMedia(c *gin.Context) {
	var req dto.SaveMediaRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	media, err := h.uploadService.SaveMedia(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, media)
}

// ListMedia returns library entries newest first, optionally filtered
// by the category query parameter.
func (h *UploadHandler) ListMedia(c *gin.Context) {
	media, err := h.mediaRepo.List(h.GetDB(c), c.Query("category"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	responses := make([]*dto.MediaResponse, 0, len(media))
	for i := range media {
		responses = append(responses, dto.NewMediaResponse(&media[i]))
	}
	c.JSON(http.StatusOK, responses)
}

func (h *UploadHandler) GetMedia(c *gin.Context) {
	media, err := h.mediaRepo.FindByID(h.GetDB(c), c.Param("id"))
	if err != nil {
		if apperrors.Is(err, repositories.ErrMediaNotFound) {
			h.HandleServiceError(c, apperrors.MediaNotFound())
			return
		}
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMediaResponse(media))
}

// UpdateMedia edits library metadata and returns the fresh record.
func (h *UploadHandler) UpdateMedia(c *gin.Context) {
	var req dto.UpdateMediaRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	id := c.Param("id")

	if fields := req.Fields(); len(fields) > 0 {
		if err := h.mediaRepo.Update(db, id, fields); err != nil {
			if apperrors.Is(err, repositories.ErrMediaNotFound) {
				h.HandleServiceError(c, apperrors.MediaNotFound())
				return
			}
			h.HandleServiceError(c, err)
			return
		}
	}

	media, err := h.mediaRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMediaNotFound) {
			h.HandleServiceError(c, apperrors.MediaNotFound())
			return
		}
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMediaResponse(media))
}

// DeleteMedia removes the library entry and the stored object.
func (h *UploadHandler) DeleteMedia(c *gin.Context) {
	if err := h.uploadService.DeleteMedia(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "media deleted"})
}
