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

// ProjectHandler manages the portfolio collection.
type ProjectHandler struct {
	*BaseHandler
	projectRepo repositories.ProjectRepository
}

func NewProjectHandler(base *BaseHandler, projectRepo repositories.ProjectRepository) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler: base,
		projectRepo: projectRepo,
	}
}

func (h *ProjectHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/projects")
	{
		public.GET("/public", h.ListPublic)
		public.GET("/featured", h.ListFeatured)
	}

	admin := r.Group("/projects")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("", h.List)
		admin.GET("/:id", h.Get)
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectRepo.List(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) ListPublic(c *gin.Context) {
	if h.ServeCachedPage(c) {
		return
	}

	projects, err := h.projectRepo.ListActive(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.CachePageJSON(c, projects)
}

// ListFeatured serves the homepage highlight reel: active featured
// projects, limit capped at 20.
func (h *ProjectHandler) ListFeatured(c *gin.Context) {
	if h.ServeCachedPage(c) {
		return
	}

	limit := ParseQueryInt(c, "limit", 6)
	if limit <= 0 || limit > 20 {
		limit = 6
	}

	projects, err := h.projectRepo.ListFeatured(h.GetDB(c), limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.CachePageJSON(c, projects)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.projectRepo.FindByID(h.GetDB(c), c.Param("id"))
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			h.HandleServiceError(c, apperrors.ContentNotFound("project"))
			return
		}
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	project := &models.Project{
		Title:        req.Title,
		Description:  req.Description,
		Content:      req.Content,
		Image:        req.Image,
		Gallery:      req.Gallery.JSONSlice(),
		Category:     req.Category,
		Tags:         req.Tags.JSONSlice(),
		Technologies: req.Technologies.JSONSlice(),
		Features:     req.Features.JSONSlice(),
		Client:       req.Client,
		LiveURL:      req.LiveURL,
		GithubURL:    req.GithubURL,
		IsActive:     isActive,
		IsFeatured:   req.IsFeatured,
		AuthorID:     req.AuthorID,
		SortOrder:    req.SortOrder,
	}

	if err := h.projectRepo.Create(h.GetDB(c), project); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.InvalidatePages()
	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	id := c.Param("id")

	if fields := req.Fields(); len(fields) > 0 {
		if err := h.projectRepo.Update(db, id, fields); err != nil {
			if apperrors.Is(err, repositories.ErrProjectNotFound) {
				h.HandleServiceError(c, apperrors.ContentNotFound("project"))
				return
			}
			h.HandleServiceError(c, err)
			return
		}
	}

	project, err := h.projectRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			h.HandleServiceError(c, apperrors.ContentNotFound("project"))
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	h.InvalidatePages()
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projectRepo.Delete(h.GetDB(c), c.Param("id")); err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			h.HandleServiceError(c, apperrors.ContentNotFound("project"))
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	h.InvalidatePages()
	c.JSON(http.StatusOK, gin.H{"message": "project deleted"})
}
