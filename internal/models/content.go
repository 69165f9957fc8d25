package models

import "gorm.io/datatypes"

// Service is a business service shown on the public services page.
type Service struct {
	BaseModel
	Title       string                      `gorm:"not null" json:"title"`
	Description string                      `json:"description"`
	Icon        string                      `json:"icon"`
	Features    datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"features"`
	Price       string                      `json:"price,omitempty"`
	IsActive    bool                        `gorm:"index" json:"isActive"`
	SortOrder   int                         `gorm:"default:0" json:"order"`
}

// Project is a portfolio entry.
type Project struct {
	BaseModel
	Title        string                      `gorm:"not null" json:"title"`
	Description  string                      `json:"description"`
	Content      string                      `json:"content,omitempty"`
	Image        string                      `json:"image"`
	Gallery      datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"gallery"`
	Category     string                      `gorm:"index" json:"category"`
	Tags         datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags"`
	Technologies datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"technologies"`
	Features     datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"features"`
	Client       string                      `json:"client,omitempty"`
	LiveURL      string                      `json:"liveUrl,omitempty"`
	GithubURL    string                      `json:"githubUrl,omitempty"`
	IsActive     bool                        `gorm:"index" json:"isActive"`
	IsFeatured   bool                        `gorm:"default:false" json:"isFeatured"`
	AuthorID     string                      `json:"authorId,omitempty"` // soft reference, not enforced
	SortOrder    int                         `gorm:"default:0" json:"order"`
}

// Post is a blog entry. Slug is unique; it is derived from the title
// when the caller does not provide one.
type Post struct {
	BaseModel
	Title          string                      `gorm:"not null" json:"title"`
	Slug           string                      `gorm:"uniqueIndex;not null" json:"slug"`
	Excerpt        string                      `json:"excerpt"`
	Content        string                      `json:"content"`
	Image          string                      `json:"image"`
	Category       string                      `gorm:"index" json:"category"`
	Tags           datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags"`
	IsPublished    bool                        `gorm:"default:false;index" json:"isPublished"`
	IsFeatured     bool                        `gorm:"default:false" json:"isFeatured"`
	ReadTime       int                         `gorm:"default:0" json:"readTime"`
	AuthorID       string                      `json:"authorId,omitempty"`
	SEOTitle       string                      `json:"seoTitle,omitempty"`
	SEODescription string                      `json:"seoDescription,omitempty"`
	SEOKeywords    datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"seoKeywords"`
}

// TeamMember is shown on the public team page.
type TeamMember struct {
	BaseModel
	Name      string `gorm:"not null" json:"name"`
	Role      string `json:"role"`
	Bio       string `json:"bio"`
	Photo     string `json:"photo"`
	Email     string `json:"email,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Github    string `json:"github,omitempty"`
	IsActive  bool   `gorm:"index" json:"isActive"`
	SortOrder int    `gorm:"default:0" json:"order"`
}

// Job is an open position on the careers page.
type Job struct {
	BaseModel
	Title        string                      `gorm:"not null" json:"title"`
	Department   string                      `json:"department"`
	Location     string                      `json:"location"`
	Type         string                      `json:"type"` // full-time, part-time, contract
	Description  string                      `json:"description"`
	Requirements datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"requirements"`
	IsActive     bool                        `gorm:"index" json:"isActive"`
	SortOrder    int                         `gorm:"default:0" json:"order"`
}
