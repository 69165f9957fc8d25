package repositories

import (
	"errors"

	"atlasweb_backend/internal/models"

	"gorm.io/gorm"
)

var ErrContactNotFound = errors.New("contact submission not found")

type ContactRepository interface {
	List(db *gorm.DB, status models.ContactStatus) ([]models.Contact, error)
	FindByID(db *gorm.DB, id string) (*models.Contact, error)
	Create(db *gorm.DB, contact *models.Contact) error
	Update(db *gorm.DB, id string, fields map[string]interface{}) error
	Delete(db *gorm.DB, id string) error
	CountByStatus(db *gorm.DB) (map[models.ContactStatus]int64, error)
}

type contactRepository struct{}

func NewContactRepository() ContactRepository {
	return &contactRepository{}
}

// List returns submissions newest first; an empty status returns all.
func (r *contactRepository) List(db *gorm.DB, status models.ContactStatus) ([]models.Contact, error) {
	var contacts []models.Contact
	query := db.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&contacts).Error
	return contacts, err
}

func (r *contactRepository) FindByID(db *gorm.DB, id string) (*models.Contact, error) {
	var contact models.Contact
	err := db.First(&contact, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrContactNotFound
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) Create(db *gorm.DB, contact *models.Contact) error {
	return db.Create(contact).Error
}

func (r *contactRepository) Update(db *gorm.DB, id string, fields map[string]interface{}) error {
	result := db.Model(&models.Contact{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}

func (r *contactRepository) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Contact{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}

// CountByStatus powers the admin dashboard inbox counters.
func (r *contactRepository) CountByStatus(db *gorm.DB) (map[models.ContactStatus]int64, error) {
	type row struct {
		Status models.ContactStatus
		Count  int64
	}
	var rows []row
	err := db.Model(&models.Contact{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.ContactStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
