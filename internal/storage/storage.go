package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ErrPresignUnsupported is returned by backends that cannot issue
// client-direct upload credentials (local storage).
var ErrPresignUnsupported = errors.New("storage backend does not support presigned uploads")

// PresignedUpload is a time-boxed credential for a client-direct upload:
// the browser PUTs the file bytes to UploadURL, and PublicURL is where
// the object will be readable afterwards.
type PresignedUpload struct {
	Key       string    `json:"key"`
	UploadURL string    `json:"uploadUrl"`
	PublicURL string    `json:"publicUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Storage defines the interface for file storage operations.
type Storage interface {
	// Save stores a file at the given path
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Get retrieves a file from the given path
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file at the given path
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists at the given path
	Exists(ctx context.Context, path string) (bool, error)

	// GetURL returns a public URL for the file
	GetURL(ctx context.Context, path string) (string, error)

	// GetSignedURL returns a temporary signed URL for private files
	GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error)

	// PresignUpload issues a time-boxed PUT credential for a
	// client-direct upload of the given object
	PresignUpload(ctx context.Context, path, contentType string, expiry time.Duration) (*PresignedUpload, error)

	// GetSize returns the size of a file in bytes
	GetSize(ctx context.Context, path string) (int64, error)
}

// Config holds storage configuration.
type Config struct {
	Type       string // local, s3, cloudflare_r2
	BasePath   string // for local storage
	BaseURL    string // public URL base
	Bucket     string // for S3/R2
	Region     string // for S3
	AccessKey  string // for S3/R2
	SecretKey  string // for S3/R2
	Endpoint   string // for R2 or custom S3
	UseSSL     bool
	PublicRead bool
}

// NewStorage creates a storage instance based on configuration.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3", "cloudflare_r2":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
