package repositories

import (
	"errors"

	"atlasweb_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	List(db *gorm.DB) ([]models.Job, error)
	ListActive(db *gorm.DB) ([]models.Job, error)
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	Create(db *gorm.DB, job *models.Job) error
	Update(db *gorm.DB, id string, fields map[string]interface{}) error
	Delete(db *gorm.DB, id string) error
}

type jobRepository struct{}

func NewJobRepository() JobRepository {
	return &jobRepository{}
}

func (r *jobRepository) List(db *gorm.DB) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *jobRepository) ListActive(db *gorm.DB) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Where("is_active = ?", true).
		Order("sort_order ASC, created_at ASC").
		Find(&jobs).Error
	return jobs, err
}

func (r *jobRepository) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *jobRepository) Update(db *gorm.DB, id string, fields map[string]interface{}) error {
	result := db.Model(&models.Job{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *jobRepository) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}
