package services

import (
	"atlasweb_backend/internal/email"
	"atlasweb_backend/internal/storage"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService    AuthService
	ContactService ContactService
	UploadService  UploadService
	EmailProvider  email.Provider
	Storage        storage.Storage
}
