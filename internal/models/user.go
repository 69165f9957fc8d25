package models

// User is an admin dashboard account. Content mutation routes require a
// server-issued token for one of these; there is no public signup.
type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Name         string   `json:"name"`
	Role         UserRole `gorm:"default:'editor'" json:"role"`
}
