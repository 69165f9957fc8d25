package apperrors

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// GinErrorHandler converts errors into JSON responses. With Debug off,
// internal error messages and details are replaced with a generic message
// so backend exception text never reaches clients.
type GinErrorHandler struct {
	Debug bool
}

var defaultHandler = &GinErrorHandler{Debug: false}

// SetDebug switches the process-wide handler between development
// (full details) and production (sanitized) behavior.
func SetDebug(debug bool) {
	defaultHandler = &GinErrorHandler{Debug: debug}
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 && !h.Debug {
		sanitized := *appErr
		sanitized.Message = "Internal server error"
		sanitized.Details = nil
		appErr = &sanitized
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// HandleError sends err through the process-wide handler.
func HandleError(c *gin.Context, err error) {
	defaultHandler.HandleGinError(c, err)
}

// AsAppError unwraps err into an *AppError when possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
