package dto

import (
	"time"

	"atlasweb_backend/internal/models"
)

// SignUploadRequest asks for a client-direct upload credential. The
// same size/MIME policy as the server-mediated path applies, checked
// per file so individual files of a batch fail independently.
type SignUploadRequest struct {
	Filename string `json:"filename" binding:"required" validate:"required,max=255"`
	MimeType string `json:"mimeType" binding:"required" validate:"required,max=100"`
	Size     int64  `json:"size" binding:"required" validate:"required,gt=0"`
	Category string `json:"category" validate:"omitempty,max=100"`
}

// SaveMediaRequest persists metadata after a client-direct upload
// completed against the external host.
type SaveMediaRequest struct {
	Key          string `json:"key" binding:"required" validate:"required,max=512"`
	OriginalName string `json:"originalName" validate:"omitempty,max=255"`
	MimeType     string `json:"mimeType" binding:"required" validate:"required,max=100"`
	Size         int64  `json:"size" binding:"required" validate:"required,gt=0"`
	URL          string `json:"url" binding:"required" validate:"required,max=2048"`
	Category     string `json:"category" validate:"omitempty,max=100"`
}

// UpdateMediaRequest edits library metadata; the stored object is
// untouched.
type UpdateMediaRequest struct {
	OriginalName *string `json:"originalName" validate:"omitempty,max=255"`
	Category     *string `json:"category" validate:"omitempty,max=100"`
}

// Fields maps set values onto their columns for a partial update.
func (r *UpdateMediaRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.OriginalName != nil {
		fields["original_name"] = *r.OriginalName
	}
	if r.Category != nil {
		fields["category"] = *r.Category
	}
	return fields
}

// MediaResponse is the API shape of a media library entry.
type MediaResponse struct {
	ID           string              `json:"id"`
	Filename     string              `json:"filename"`
	OriginalName string              `json:"originalName"`
	MimeType     string              `json:"mimeType"`
	Size         int64               `json:"size"`
	URL          string              `json:"url"`
	ThumbnailURL string              `json:"thumbnailUrl,omitempty"`
	Category     string              `json:"category"`
	UploadMethod models.UploadMethod `json:"uploadMethod"`
	CreatedAt    time.Time           `json:"createdAt"`
}

func NewMediaResponse(m *models.Media) *MediaResponse {
	return &MediaResponse{
		ID:           m.ID,
		Filename:     m.Filename,
		OriginalName: m.OriginalName,
		MimeType:     m.MimeType,
		Size:         m.Size,
		URL:          m.URL,
		ThumbnailURL: m.ThumbnailURL,
		Category:     m.Category,
		UploadMethod: m.UploadMethod,
		CreatedAt:    m.CreatedAt,
	}
}
