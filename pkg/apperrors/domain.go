package apperrors

import "net/http"

// Domain-specific error factories. Domains mirror the resource collections
// so a client can tell which part of the API produced the error.

// --- content (services, projects, posts, team, jobs) ---

func ContentNotFound(resource string) *AppError {
	return New(CodeNotFound, "content", resource+" not found", http.StatusNotFound)
}

func SlugAlreadyExists(slug string) *AppError {
	return New(CodeAlreadyExists, "content", "a post with this slug already exists", http.StatusConflict).
		WithDetails(map[string]string{"slug": slug})
}

// --- media / uploads ---

func MediaNotFound() *AppError {
	return New(CodeNotFound, "media", "media record not found", http.StatusNotFound)
}

func FileTooLarge(filename string, maxBytes int64) *AppError {
	return New(CodeFileTooLarge, "upload", "file exceeds the size limit", http.StatusBadRequest).
		WithDetails(map[string]interface{}{"file": filename, "max_bytes": maxBytes})
}

func InvalidFileType(filename, mimeType string) *AppError {
	return New(CodeInvalidFileType, "upload", "file type is not allowed", http.StatusBadRequest).
		WithDetails(map[string]interface{}{"file": filename, "mime_type": mimeType})
}

func TooManyFiles(maxFiles int) *AppError {
	return New(CodeTooManyFiles, "upload", "too many files in one batch", http.StatusBadRequest).
		WithDetails(map[string]interface{}{"max_files": maxFiles})
}

func StorageError(err error) *AppError {
	return Wrap(err, CodeExternalServiceError, "upload", "storage operation failed", http.StatusInternalServerError)
}

func SignedUploadsUnsupported() *AppError {
	return New(CodeInvalidOperation, "upload", "configured storage does not support client-direct uploads", http.StatusBadRequest)
}

// --- contacts ---

func ContactNotFound() *AppError {
	return New(CodeNotFound, "contact", "contact submission not found", http.StatusNotFound)
}

// --- auth ---

func InvalidCredentials() *AppError {
	return New(CodeInvalidCredentials, "auth", "invalid email or password", http.StatusUnauthorized)
}

func InvalidCacheSecret() *AppError {
	return New(CodeForbidden, "cache", "invalid cache secret", http.StatusForbidden)
}
