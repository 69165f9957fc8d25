package handlers

import (
	"net/http"

	"atlasweb_backend/internal/dto"
	"atlasweb_backend/internal/middleware"
	"atlasweb_backend/internal/repositories"
	"atlasweb_backend/internal/services"
	"atlasweb_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AuthHandler signs admin users into the dashboard.
type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	userRepo    repositories.UserRepository
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, userRepo repositories.UserRepository) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		userRepo:    userRepo,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", h.Login)
	}

	me := r.Group("/auth")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("/me", h.Me)
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		h.HandleServiceError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return
	}

	user, err := h.userRepo.FindByID(h.GetDB(c), userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			h.HandleServiceError(c, apperrors.NewUnauthorizedError("User not found"))
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}
