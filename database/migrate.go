package database

import (
	"atlasweb_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates or updates every collection table. The uuid extension
// must exist before AutoMigrate because document IDs default to
// uuid_generate_v4().
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Project{},
		&models.Post{},
		&models.TeamMember{},
		&models.Job{},
		&models.Contact{},
		&models.Media{},
	)
}
