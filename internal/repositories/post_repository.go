package repositories

import (
	"errors"

	"atlasweb_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPostNotFound = errors.New("post not found")

type PostRepository interface {
	List(db *gorm.DB) ([]models.Post, error)
	ListPublished(db *gorm.DB) ([]models.Post, error)
	FindByID(db *gorm.DB, id string) (*models.Post, error)
	FindBySlug(db *gorm.DB, slug string) (*models.Post, error)
	SlugExists(db *gorm.DB, slug string, excludeID string) (bool, error)
	Create(db *gorm.DB, post *models.Post) error
	Update(db *gorm.DB, id string, fields map[string]interface{}) error
	Delete(db *gorm.DB, id string) error
}

type postRepository struct{}

func NewPostRepository() PostRepository {
	return &postRepository{}
}

func (r *postRepository) List(db *gorm.DB) ([]models.Post, error) {
	var posts []models.Post
	err := db.Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// ListPublished returns only published posts, newest first.
func (r *postRepository) ListPublished(db *gorm.DB) ([]models.Post, error) {
	var posts []models.Post
	err := db.Where("is_published = ?", true).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) FindByID(db *gorm.DB, id string) (*models.Post, error) {
	var post models.Post
	err := db.First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) FindBySlug(db *gorm.DB, slug string) (*models.Post, error) {
	var post models.Post
	err := db.First(&post, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// SlugExists checks slug uniqueness; excludeID skips the post being
// updated.
func (r *postRepository) SlugExists(db *gorm.DB, slug string, excludeID string) (bool, error) {
	var count int64
	query := db.Model(&models.Post{}).Where("slug = ?", slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *postRepository) Create(db *gorm.DB, post *models.Post) error {
	return db.Create(post).Error
}

func (r *postRepository) Update(db *gorm.DB, id string, fields map[string]interface{}) error {
	result := db.Model(&models.Post{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (r *postRepository) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Post{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}
