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

// TeamHandler manages the team member collection.
type TeamHandler struct {
	*BaseHandler
	teamRepo repositories.TeamRepository
}

func NewTeamHandler(base *BaseHandler, teamRepo repositories.TeamRepository) *TeamHandler {
	return &TeamHandler{
		BaseHandler: base,
		teamRepo:    teamRepo,
	}
}

func (h *TeamHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/team")
	{
		public.GET("/public", h.ListPublic)
	}

	admin := r.Group("/team")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("", h.List)
		admin.GET("/:id", h.Get)
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *TeamHandler) List(c *gin.Context) {
	members, err := h.teamRepo.List(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

func (h *TeamHandler) ListPublic(c *gin.Context) {
	if h.ServeCachedPage(c) {
		return
	}

	members, err := h.teamRepo.ListActive(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.CachePageJSON(c, members)
}

func (h *TeamHandler) Get(c *gin.Context) {
	member, err := h.teamRepo.FindByID(h.GetDB(c), c.Param("id"))
	if err != nil {
		if apperrors.Is(err, repositories.ErrTeamMemberNotFound) {
			h.HandleServiceError(c, apperrors.ContentNotFound("team member"))
			return
		}
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *TeamHandler) Create(c *gin.Context) {
	var req dto.CreateTeamMemberRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	member := &models.TeamMember{
		Name:      req.Name,
		Role:      req.Role,
		Bio:       req.Bio,
		Photo:     req.Photo,
		Email:     req.Email,
		LinkedIn:  req.LinkedIn,
		Github:    req.Github,
		IsActive:  isActive,
		SortOrder: req.SortOrder,
	}

	if err := h.teamRepo.Create(h.GetDB(c), member); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.InvalidatePages()
	c.JSON(http.StatusCreated, member)
}

func (h *TeamHandler) Update(c *gin.Context) {
	var req dto.UpdateTeamMemberRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	id := c.Param("id")

	if fields := req.Fields(); len(fields) > 0 {
		if err := h.teamRepo.Update(db, id, fields); err != nil {
			if apperrors.Is(err, repositories.ErrTeamMemberNotFound) {
				h.HandleServiceError(c, apperrors.ContentNotFound("team member"))
				return
			}
			h.HandleServiceError(c, err)
			return
		}
	}

	member, err := h.teamRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTeamMemberNotFound) {
			h.HandleServiceError(c, apperrors.ContentNotFound("team member"))
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	h.InvalidatePages()
	c.JSON(http.StatusOK, member)
}

func (h *TeamHandler) Delete(c *gin.Context) {
	if err := h.teamRepo.Delete(h.GetDB(c), c.Param("id")); err != nil {
		if apperrors.Is(err, repositories.ErrTeamMemberNotFound) {
			h.HandleServiceError(c, apperrors.ContentNotFound("team member"))
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	h.InvalidatePages()
	c.JSON(http.StatusOK, gin.H{"message": "team member deleted"})
}
