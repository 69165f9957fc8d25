package dto

// Create requests reject missing required fields at the boundary;
// update requests use pointer fields so omitted fields stay untouched.
// Every Fields() method maps set fields onto store column names for the
// overwrite-merge update; a list field that is present replaces the
// stored list wholly.

// --- Services ---

type CreateServiceRequest struct {
	Title       string     `json:"title" binding:"required" validate:"required,min=2,max=200"`
	Description string     `json:"description" validate:"max=2000"`
	Icon        string     `json:"icon" validate:"max=100"`
	Features    StringList `json:"features"`
	Price       string     `json:"price" validate:"max=100"`
	IsActive    *bool      `json:"isActive"`
	SortOrder   int        `json:"order"`
}

type UpdateServiceRequest struct {
	Title       *string     `json:"title" validate:"omitempty,min=2,max=200"`
	Description *string     `json:"description" validate:"omitempty,max=2000"`
	Icon        *string     `json:"icon" validate:"omitempty,max=100"`
	Features    *StringList `json:"features"`
	Price       *string     `json:"price" validate:"omitempty,max=100"`
	IsActive    *bool       `json:"isActive"`
	SortOrder   *int        `json:"order"`
}

func (r *UpdateServiceRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Icon != nil {
		fields["icon"] = *r.Icon
	}
	if r.Features != nil {
		fields["features"] = r.Features.JSONSlice()
	}
	if r.Price != nil {
		fields["price"] = *r.Price
	}
	if r.IsActive != nil {
		fields["is_active"] = *r.IsActive
	}
	if r.SortOrder != nil {
		fields["sort_order"] = *r.SortOrder
	}
	return fields
}

// --- Projects ---

type CreateProjectRequest struct {
	Title        string     `json:"title" binding:"required" validate:"required,min=2,max=200"`
	Description  string     `json:"description" validate:"max=2000"`
	Content      string     `json:"content"`
	Image        string     `json:"image" validate:"omitempty,url|uri"`
	Gallery      StringList `json:"gallery"`
	Category     string     `json:"category" validate:"max=100"`
	Tags         StringList `json:"tags"`
	Technologies StringList `json:"technologies"`
	Features     StringList `json:"features"`
	Client       string     `json:"client" validate:"max=200"`
	LiveURL      string     `json:"liveUrl" validate:"omitempty,url"`
	GithubURL    string     `json:"githubUrl" validate:"omitempty,url"`
	IsActive     *bool      `json:"isActive"`
	IsFeatured   bool       `json:"isFeatured"`
	AuthorID     string     `json:"authorId"`
	SortOrder    int        `json:"order"`
}

type UpdateProjectRequest struct {
	Title        *string     `json:"title" validate:"omitempty,min=2,max=200"`
	Description  *string     `json:"description" validate:"omitempty,max=2000"`
	Content      *string     `json:"content"`
	Image        *string     `json:"image"`
	Gallery      *StringList `json:"gallery"`
	Category     *string     `json:"category" validate:"omitempty,max=100"`
	Tags         *StringList `json:"tags"`
	Technologies *StringList `json:"technologies"`
	Features     *StringList `json:"features"`
	Client       *string     `json:"client" validate:"omitempty,max=200"`
	LiveURL      *string     `json:"liveUrl" validate:"omitempty,url"`
	GithubURL    *string     `json:"githubUrl" validate:"omitempty,url"`
	IsActive     *bool       `json:"isActive"`
	IsFeatured   *bool       `json:"isFeatured"`
	AuthorID     *string     `json:"authorId"`
	SortOrder    *int        `json:"order"`
}

func (r *UpdateProjectRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Content != nil {
		fields["content"] = *r.Content
	}
	if r.Image != nil {
		fields["image"] = *r.Image
	}
	if r.Gallery != nil {
		fields["gallery"] = r.Gallery.JSONSlice()
	}
	if r.Category != nil {
		fields["category"] = *r.Category
	}
	if r.Tags != nil {
		fields["tags"] = r.Tags.JSONSlice()
	}
	if r.Technologies != nil {
		fields["technologies"] = r.Technologies.JSONSlice()
	}
	if r.Features != nil {
		fields["features"] = r.Features.JSONSlice()
	}
	if r.Client != nil {
		fields["client"] = *r.Client
	}
	if r.LiveURL != nil {
		fields["live_url"] = *r.LiveURL
	}
	if r.GithubURL != nil {
		fields["github_url"] = *r.GithubURL
	}
	if r.IsActive != nil {
		fields["is_active"] = *r.IsActive
	}
	if r.IsFeatured != nil {
		fields["is_featured"] = *r.IsFeatured
	}
	if r.AuthorID != nil {
		fields["author_id"] = *r.AuthorID
	}
	if r.SortOrder != nil {
		fields["sort_order"] = *r.SortOrder
	}
	return fields
}

// --- Posts ---

type CreatePostRequest struct {
	Title          string     `json:"title" binding:"required" validate:"required,min=2,max=200"`
	Slug           string     `json:"slug" validate:"omitempty,max=220"`
	Excerpt        string     `json:"excerpt" validate:"max=500"`
	Content        string     `json:"content"`
	Image          string     `json:"image"`
	Category       string     `json:"category" validate:"max=100"`
	Tags           StringList `json:"tags"`
	IsPublished    bool       `json:"isPublished"`
	IsFeatured     bool       `json:"isFeatured"`
	ReadTime       int        `json:"readTime" validate:"min=0"`
	AuthorID       string     `json:"authorId"`
	SEOTitle       string     `json:"seoTitle" validate:"max=200"`
	SEODescription string     `json:"seoDescription" validate:"max=500"`
	SEOKeywords    StringList `json:"seoKeywords"`
}

type UpdatePostRequest struct {
	Title          *string     `json:"title" validate:"omitempty,min=2,max=200"`
	Slug           *string     `json:"slug" validate:"omitempty,max=220"`
	Excerpt        *string     `json:"excerpt" validate:"omitempty,max=500"`
	Content        *string     `json:"content"`
	Image          *string     `json:"image"`
	Category       *string     `json:"category" validate:"omitempty,max=100"`
	Tags           *StringList `json:"tags"`
	IsPublished    *bool       `json:"isPublished"`
	IsFeatured     *bool       `json:"isFeatured"`
	ReadTime       *int        `json:"readTime" validate:"omitempty,min=0"`
	AuthorID       *string     `json:"authorId"`
	SEOTitle       *string     `json:"seoTitle" validate:"omitempty,max=200"`
	SEODescription *string     `json:"seoDescription" validate:"omitempty,max=500"`
	SEOKeywords    *StringList `json:"seoKeywords"`
}

func (r *UpdatePostRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Slug != nil {
		fields["slug"] = *r.Slug
	}
	if r.Excerpt != nil {
		fields["excerpt"] = *r.Excerpt
	}
	if r.Content != nil {
		fields["content"] = *r.Content
	}
	if r.Image != nil {
		fields["image"] = *r.Image
	}
	if r.Category != nil {
		fields["category"] = *r.Category
	}
	if r.Tags != nil {
		fields["tags"] = r.Tags.JSONSlice()
	}
	if r.IsPublished != nil {
		fields["is_published"] = *r.IsPublished
	}
	if r.IsFeatured != nil {
		fields["is_featured"] = *r.IsFeatured
	}
	if r.ReadTime != nil {
		fields["read_time"] = *r.ReadTime
	}
	if r.AuthorID != nil {
		fields["author_id"] = *r.AuthorID
	}
	if r.SEOTitle != nil {
		fields["seo_title"] = *r.SEOTitle
	}
	if r.SEODescription != nil {
		fields["seo_description"] = *r.SEODescription
	}
	if r.SEOKeywords != nil {
		fields["seo_keywords"] = r.SEOKeywords.JSONSlice()
	}
	return fields
}

// --- Team ---

type CreateTeamMemberRequest struct {
	Name      string `json:"name" binding:"required" validate:"required,min=2,max=100"`
	Role      string `json:"role" validate:"max=100"`
	Bio       string `json:"bio" validate:"max=2000"`
	Photo     string `json:"photo"`
	Email     string `json:"email" validate:"omitempty,email"`
	LinkedIn  string `json:"linkedin" validate:"omitempty,url"`
	Github    string `json:"github" validate:"omitempty,url"`
	IsActive  *bool  `json:"isActive"`
	SortOrder int    `json:"order"`
}

type UpdateTeamMemberRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=2,max=100"`
	Role      *string `json:"role" validate:"omitempty,max=100"`
	Bio       *string `json:"bio" validate:"omitempty,max=2000"`
	Photo     *string `json:"photo"`
	Email     *string `json:"email" validate:"omitempty,email"`
	LinkedIn  *string `json:"linkedin" validate:"omitempty,url"`
	Github    *string `json:"github" validate:"omitempty,url"`
	IsActive  *bool   `json:"isActive"`
	SortOrder *int    `json:"order"`
}

func (r *UpdateTeamMemberRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Role != nil {
		fields["role"] = *r.Role
	}
	if r.Bio != nil {
		fields["bio"] = *r.Bio
	}
	if r.Photo != nil {
		fields["photo"] = *r.Photo
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.LinkedIn != nil {
		fields["linked_in"] = *r.LinkedIn
	}
	if r.Github != nil {
		fields["github"] = *r.Github
	}
	if r.IsActive != nil {
		fields["is_active"] = *r.IsActive
	}
	if r.SortOrder != nil {
		fields["sort_order"] = *r.SortOrder
	}
	return fields
}

// --- Jobs ---

type CreateJobRequest struct {
	Title        string     `json:"title" binding:"required" validate:"required,min=2,max=200"`
	Department   string     `json:"department" validate:"max=100"`
	Location     string     `json:"location" validate:"max=200"`
	Type         string     `json:"type" validate:"omitempty,oneof=full-time part-time contract internship"`
	Description  string     `json:"description" validate:"max=5000"`
	Requirements StringList `json:"requirements"`
	IsActive     *bool      `json:"isActive"`
	SortOrder    int        `json:"order"`
}

type UpdateJobRequest struct {
	Title        *string     `json:"title" validate:"omitempty,min=2,max=200"`
	Department   *string     `json:"department" validate:"omitempty,max=100"`
	Location     *string     `json:"location" validate:"omitempty,max=200"`
	Type         *string     `json:"type" validate:"omitempty,oneof=full-time part-time contract internship"`
	Description  *string     `json:"description" validate:"omitempty,max=5000"`
	Requirements *StringList `json:"requirements"`
	IsActive     *bool       `json:"isActive"`
	SortOrder    *int        `json:"order"`
}

func (r *UpdateJobRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Department != nil {
		fields["department"] = *r.Department
	}
	if r.Location != nil {
		fields["location"] = *r.Location
	}
	if r.Type != nil {
		fields["type"] = *r.Type
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Requirements != nil {
		fields["requirements"] = r.Requirements.JSONSlice()
	}
	if r.IsActive != nil {
		fields["is_active"] = *r.IsActive
	}
	if r.SortOrder != nil {
		fields["sort_order"] = *r.SortOrder
	}
	return fields
}
