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

// ServiceHandler manages the business services collection.
type ServiceHandler struct {
	*BaseHandler
	serviceRepo repositories.ServiceRepository
}

func NewServiceHandler(base *BaseHandler, serviceRepo repositories.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{
		BaseHandler: base,
		serviceRepo: serviceRepo,
	}
}

func (h *ServiceHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/services")
	{
		public.GET("/public", h.ListPublic)
	}

	admin := r.Group("/services")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("", h.List)
		admin.GET("/:id", h.Get)
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.serviceRepo.List(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// ListPublic serves only active services in display order, through the
// page cache.
func (h *ServiceHandler) ListPublic(c *gin.Context) {
	if h.ServeCachedPage(c) {
		return
	}

	services, err := h.serviceRepo.ListActive(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.CachePageJSON(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	service, err := h.serviceRepo.FindByID(h.GetDB(c), c.Param("id"))
	if err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			h.HandleServiceError(c, apperrors.ContentNotFound("service"))
			return
		}
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req dto.CreateServiceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	service := &models.Service{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Features:    req.Features.JSONSlice(),
		Price:       req.Price,
		IsActive:    isActive,
		SortOrder:   req.SortOrder,
	}

	if err := h.serviceRepo.Create(h.GetDB(c), service); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.InvalidatePages()
	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var req dto.UpdateServiceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	id := c.Param("id")

	if fields := req.Fields(); len(fields) > 0 {
		if err := h.serviceRepo.Update(db, id, fields); err != nil {
			if apperrors.Is(err, repositories.ErrServiceNotFound) {
				h.HandleServiceError(c, apperrors.ContentNotFound("service"))
				return
			}
			h.HandleServiceError(c, err)
			return
		}
	}

	service, err := h.serviceRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			h.HandleServiceError(c, apperrors.ContentNotFound("service"))
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	h.InvalidatePages()
	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.serviceRepo.Delete(h.GetDB(c), c.Param("id")); err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			h.HandleServiceError(c, apperrors.ContentNotFound("service"))
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	h.InvalidatePages()
	c.JSON(http.StatusOK, gin.H{"message": "service deleted"})
}
