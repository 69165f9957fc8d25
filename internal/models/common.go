package models

import (
	"time"
)

// BaseModel is embedded by every collection document. The ID is assigned
// by the store on create; UpdatedAt is refreshed on every update.
type BaseModel struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	CreatedAt time.Time `gorm:"default:now()" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
