package repositories

import (
	"errors"

	"atlasweb_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectRepository interface {
	List(db *gorm.DB) ([]models.Project, error)
	ListActive(db *gorm.DB) ([]models.Project, error)
	ListFeatured(db *gorm.DB, limit int) ([]models.Project, error)
	FindByID(db *gorm.DB, id string) (*models.Project, error)
	Create(db *gorm.DB, project *models.Project) error
	Update(db *gorm.DB, id string, fields map[string]interface{}) error
	Delete(db *gorm.DB, id string) error
}

type projectRepository struct{}

func NewProjectRepository() ProjectRepository {
	return &projectRepository{}
}

func (r *projectRepository) List(db *gorm.DB) ([]models.Project, error) {
	var projects []models.Project
	err := db.Order("created_at DESC").Find(&projects).Error
	return projects, err
}

func (r *projectRepository) ListActive(db *gorm.DB) ([]models.Project, error) {
	var projects []models.Project
	err := db.Where("is_active = ?", true).
		Order("sort_order ASC, created_at ASC").
		Find(&projects).Error
	return projects, err
}

func (r *projectRepository) ListFeatured(db *gorm.DB, limit int) ([]models.Project, error) {
	var projects []models.Project
	err := db.Where("is_active = ? AND is_featured = ?", true, true).
		Order("sort_order ASC, created_at ASC").
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

func (r *projectRepository) FindByID(db *gorm.DB, id string) (*models.Project, error) {
	var project models.Project
	err := db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) Create(db *gorm.DB, project *models.Project) error {
	return db.Create(project).Error
}

func (r *projectRepository) Update(db *gorm.DB, id string, fields map[string]interface{}) error {
	result := db.Model(&models.Project{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (r *projectRepository) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}
