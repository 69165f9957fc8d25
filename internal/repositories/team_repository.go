package repositories

import (
	"errors"

	"atlasweb_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTeamMemberNotFound = errors.New("team member not found")

type TeamRepository interface {
	List(db *gorm.DB) ([]models.TeamMember, error)
	ListActive(db *gorm.DB) ([]models.TeamMember, error)
	FindByID(db *gorm.DB, id string) (*models.TeamMember, error)
	Create(db *gorm.DB, member *models.TeamMember) error
	Update(db *gorm.DB, id string, fields map[string]interface{}) error
	Delete(db *gorm.DB, id string) error
}

type teamRepository struct{}

func NewTeamRepository() TeamRepository {
	return &teamRepository{}
}

func (r *teamRepository) List(db *gorm.DB) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := db.Order("created_at DESC").Find(&members).Error
	return members, err
}

func (r *teamRepository) ListActive(db *gorm.DB) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := db.Where("is_active = ?", true).
		Order("sort_order ASC, created_at ASC").
		Find(&members).Error
	return members, err
}

func (r *teamRepository) FindByID(db *gorm.DB, id string) (*models.TeamMember, error) {
	var member models.TeamMember
	err := db.First(&member, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTeamMemberNotFound
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *teamRepository) Create(db *gorm.DB, member *models.TeamMember) error {
	return db.Create(member).Error
}

func (r *teamRepository) Update(db *gorm.DB, id string, fields map[string]interface{}) error {
	result := db.Model(&models.TeamMember{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTeamMemberNotFound
	}
	return nil
}

func (r *teamRepository) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.TeamMember{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTeamMemberNotFound
	}
	return nil
}
