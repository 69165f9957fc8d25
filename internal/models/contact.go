package models

// Contact is a submission from the public contact form. Status tracks the
// admin workflow and starts at NEW.
type Contact struct {
	BaseModel
	Name    string        `gorm:"not null" json:"name"`
	Email   string        `gorm:"not null;index" json:"email"`
	Phone   string        `json:"phone,omitempty"`
	Company string        `json:"company,omitempty"`
	Subject string        `json:"subject"`
	Message string        `gorm:"not null" json:"message"`
	Status  ContactStatus `gorm:"default:'NEW';index" json:"status"`
	Source  string        `json:"source,omitempty"` // which page the form was submitted from
}
