package handlers

import (
	"net/http"

	"atlasweb_backend/internal/dto"
	"atlasweb_backend/internal/middleware"
	"atlasweb_backend/internal/models"
	"atlasweb_backend/internal/repositories"
	"atlasweb_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// JobHandler manages the careers collection.
type JobHandler struct {
	*BaseHandler
	jobRepo repositories.JobRepository
}

func NewJobHandler(base *BaseHandler, jobRepo repositories.JobRepository) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobRepo:     jobRepo,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/jobs")
	{
		public.GET("/public", h.ListPublic)
	}

	admin := r.Group("/jobs")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("", h.List)
		admin.GET("/:id", h.Get)
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobRepo.List(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) ListPublic(c *gin.Context) {
	if h.ServeCachedPage(c) {
		return
	}

	jobs, err := h.jobRepo.ListActive(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.CachePageJSON(c, jobs)
}

func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobRepo.FindByID(h.GetDB(c), c.Param("id"))
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			h.HandleServiceError(c, apperrors.ContentNotFound("job"))
			return
		}
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Create(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	job := &models.Job{
		Title:        req.Title,
		Department:   req.Department,
		Location:     req.Location,
		Type:         req.Type,
		Description:  req.Description,
		Requirements: req.Requirements.JSONSlice(),
		IsActive:     isActive,
		SortOrder:    req.SortOrder,
	}

	if err := h.jobRepo.Create(h.GetDB(c), job); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.InvalidatePages()
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	id := c.Param("id")

	if fields := req.Fields(); len(fields) > 0 {
		if err := h.jobRepo.Update(db, id, fields); err != nil {
			if apperrors.Is(err, repositories.ErrJobNotFound) {
				h.HandleServiceError(c, apperrors.ContentNotFound("job"))
				return
			}
			h.HandleServiceError(c, err)
			return
		}
	}

	job, err := h.jobRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			h.HandleServiceError(c, apperrors.ContentNotFound("job"))
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	h.InvalidatePages()
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobRepo.Delete(h.GetDB(c), c.Param("id")); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			h.HandleServiceError(c, apperrors.ContentNotFound("job"))
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	h.InvalidatePages()
	c.JSON(http.StatusOK, gin.H{"message": "job deleted"})
}
