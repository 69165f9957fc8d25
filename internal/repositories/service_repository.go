package repositories

import (
	"errors"

	"atlasweb_backend/internal/models"

	"gorm.io/gorm"
)

var ErrServiceNotFound = errors.New("service not found")

type ServiceRepository interface {
	List(db *gorm.DB) ([]models.Service, error)
	ListActive(db *gorm.DB) ([]models.Service, error)
	FindByID(db *gorm.DB, id string) (*models.Service, error)
	Create(db *gorm.DB, service *models.Service) error
	Update(db *gorm.DB, id string, fields map[string]interface{}) error
	Delete(db *gorm.DB, id string) error
}

type serviceRepository struct{}

func NewServiceRepository() ServiceRepository {
	return &serviceRepository{}
}

// List returns every service, newest first (admin view).
func (r *serviceRepository) List(db *gorm.DB) ([]models.Service, error) {
	var services []models.Service
	err := db.Order("created_at DESC").Find(&services).Error
	return services, err
}

// ListActive returns only visible services in display order; ties fall
// back to insertion order.
func (r *serviceRepository) ListActive(db *gorm.DB) ([]models.Service, error) {
	var services []models.Service
	err := db.Where("is_active = ?", true).
		Order("sort_order ASC, created_at ASC").
		Find(&services).Error
	return services, err
}

func (r *serviceRepository) FindByID(db *gorm.DB, id string) (*models.Service, error) {
	var service models.Service
	err := db.First(&service, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) Create(db *gorm.DB, service *models.Service) error {
	return db.Create(service).Error
}

// Update overwrite-merges the given columns onto the stored record.
// UpdatedAt is always refreshed.
func (r *serviceRepository) Update(db *gorm.DB, id string, fields map[string]interface{}) error {
	result := db.Model(&models.Service{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func (r *serviceRepository) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Service{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}
