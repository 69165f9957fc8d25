package repositories

import (
	"errors"

	"atlasweb_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMediaNotFound = errors.New("media record not found")

type MediaRepository interface {
	List(db *gorm.DB, category string) ([]models.Media, error)
	FindByID(db *gorm.DB, id string) (*models.Media, error)
	Create(db *gorm.DB, media *models.Media) error
	Update(db *gorm.DB, id string, fields map[string]interface{}) error
	Delete(db *gorm.DB, id string) error
}

type mediaRepository struct{}

func NewMediaRepository() MediaRepository {
	return &mediaRepository{}
}

// List returns media newest first; an empty category returns all.
func (r *mediaRepository) List(db *gorm.DB, category string) ([]models.Media, error) {
	var media []models.Media
	query := db.Order("created_at DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Find(&media).Error
	return media, err
}

func (r *mediaRepository) FindByID(db *gorm.DB, id string) (*models.Media, error) {
	var media models.Media
	err := db.First(&media, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMediaNotFound
	}
	if err != nil {
		return nil, err
	}
	return &media, nil
}

func (r *mediaRepository) Create(db *gorm.DB, media *models.Media) error {
	return db.Create(media).Error
}

func (r *mediaRepository) Update(db *gorm.DB, id string, fields map[string]interface{}) error {
	result := db.Model(&models.Media{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMediaNotFound
	}
	return nil
}

func (r *mediaRepository) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Media{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMediaNotFound
	}
	return nil
}
