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

// ContactHandler accepts public form submissions and exposes the admin
// inbox.
type ContactHandler struct {
	*BaseHandler
	contactService services.ContactService
	contactRepo    repositories.ContactRepository
}

func NewContactHandler(base *BaseHandler, contactService services.ContactService, contactRepo repositories.ContactRepository) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    base,
		contactService: contactService,
		contactRepo:    contactRepo,
	}
}

func (h *ContactHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/contact", h.Submit)

	admin := r.Group("/contacts")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("", h.List)
		admin.GET("/stats", h.Stats)
		admin.GET("/:id", h.Get)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

// Submit is the public contact form endpoint.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactSubmissionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	contact, err := h.contactService.Submit(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Thank you for your message. We will get back to you soon.",
		"id":      contact.ID,
	})
}

// List returns submissions newest first, optionally filtered by the
// status query parameter.
func (h *ContactHandler) List(c *gin.Context) {
	status := models.ContactStatus(c.Query("status"))

	contacts, err := h.contactRepo.List(h.GetDB(c), status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// Stats reports submission counts per workflow status.
func (h *ContactHandler) Stats(c *gin.Context) {
	counts, err := h.contactRepo.CountByStatus(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (h *ContactHandler) Get(c *gin.Context) {
	contact, err := h.contactRepo.FindByID(h.GetDB(c), c.Param("id"))
	if err != nil {
		if apperrors.Is(err, repositories.ErrContactNotFound) {
			h.HandleServiceError(c, apperrors.ContactNotFound())
			return
		}
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (h *ContactHandler) Update(c *gin.Context) {
	var req dto.UpdateContactRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	id := c.Param("id")

	if fields := req.Fields(); len(fields) > 0 {
		if err := h.contactRepo.Update(db, id, fields); err != nil {
			if apperrors.Is(err, repositories.ErrContactNotFound) {
				h.HandleServiceError(c, apperrors.ContactNotFound())
				return
			}
			h.HandleServiceError(c, err)
			return
		}
	}

	contact, err := h.contactRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrContactNotFound) {
			h.HandleServiceError(c, apperrors.ContactNotFound())
			return
		}
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.contactRepo.Delete(h.GetDB(c), c.Param("id")); err != nil {
		if apperrors.Is(err, repositories.ErrContactNotFound) {
			h.HandleServiceError(c, apperrors.ContactNotFound())
			return
		}
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "contact deleted"})
}
