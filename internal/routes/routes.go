package routes

import (
	"atlasweb_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers every HTTP route under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.ServiceHandler.RegisterRoutes(api)
		appHandlers.ProjectHandler.RegisterRoutes(api)
		appHandlers.PostHandler.RegisterRoutes(api)
		appHandlers.TeamHandler.RegisterRoutes(api)
		appHandlers.JobHandler.RegisterRoutes(api)
		appHandlers.ContactHandler.RegisterRoutes(api)
		appHandlers.UploadHandler.RegisterRoutes(api)
		appHandlers.FileHandler.RegisterRoutes(api)
		appHandlers.CacheHandler.RegisterRoutes(api)
	}
}
