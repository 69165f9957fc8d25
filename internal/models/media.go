package models

// Media is a library entry referencing a file held by the external
// storage provider. Filename is the stored object key's basename;
// OriginalName is what the uploader's browser sent.
type Media struct {
	BaseModel
	Filename        string       `gorm:"not null" json:"filename"`
	OriginalName    string       `json:"originalName"`
	MimeType        string       `json:"mimeType"`
	Size            int64        `json:"size"`
	URL             string       `gorm:"not null" json:"url"`
	ThumbnailURL    string       `json:"thumbnailUrl,omitempty"`
	Category        string       `gorm:"index" json:"category"`
	UploadMethod    UploadMethod `gorm:"default:'server'" json:"uploadMethod"`
	StorageProvider string       `gorm:"default:'local'" json:"-"` // local, s3, cloudflare_r2
	StorageKey      string       `json:"-"`                        // object key for delete
	ThumbnailKey    string       `json:"-"`
}
