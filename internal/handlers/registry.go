package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	ServiceHandler *ServiceHandler
	ProjectHandler *ProjectHandler
	PostHandler    *PostHandler
	TeamHandler    *TeamHandler
	JobHandler     *JobHandler
	ContactHandler *ContactHandler
	UploadHandler  *UploadHandler
	FileHandler    *FileHandler
	CacheHandler   *CacheHandler
}
