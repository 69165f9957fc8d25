package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"atlasweb_backend/internal/cache"
	"atlasweb_backend/internal/logger"
	"atlasweb_backend/internal/validator"
	"atlasweb_backend/pkg/apperrors"
	"atlasweb_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BaseHandler struct {
	validator *validator.Validator
	pages     *cache.PageCache
}

func NewBaseHandler(v *validator.Validator, pages *cache.PageCache) *BaseHandler {
	return &BaseHandler{
		validator: v,
		pages:     pages,
	}
}

// GetDB extracts *gorm.DB (the pool or a test transaction) from the gin
// context. DBMiddleware must have run; a missing key is a wiring bug.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "db key not found in context", "key", dbKey)
		panic("DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "db in context is not *gorm.DB", "key", dbKey, "type", fmt.Sprintf("%T", val))
		panic("db in context has incorrect type")
	}

	return db
}

func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	return h.validate(c, obj)
}

func (h *BaseHandler) BindAndValidate_Query(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindQuery(obj); err != nil {
		logger.CtxWithError(ctx, "failed to bind query params", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters: "+err.Error()))
		return false
	}

	return h.validate(c, obj)
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "service error",
			"error", appErr.Message,
			"details", appErr.Details,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

// ServeCachedPage writes a cached public response if one is fresh.
func (h *BaseHandler) ServeCachedPage(c *gin.Context) bool {
	if h.pages == nil {
		return false
	}
	body, ok := h.pages.Get(c.Request.URL.RequestURI())
	if !ok {
		return false
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
	return true
}

// CachePageJSON responds with payload and stores the rendered body for
// subsequent public reads of the same path.
func (h *BaseHandler) CachePageJSON(c *gin.Context, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if h.pages != nil {
		h.pages.Set(c.Request.URL.RequestURI(), body)
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// InvalidatePages drops every cached public page. Called after any
// content mutation so public reads never serve stale data past a write.
func (h *BaseHandler) InvalidatePages() {
	if h.pages != nil {
		h.pages.Clear()
	}
}

func ParseQueryInt(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
