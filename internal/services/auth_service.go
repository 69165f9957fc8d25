package services

import (
	"atlasweb_backend/internal/auth"
	"atlasweb_backend/internal/dto"
	"atlasweb_backend/internal/logger"
	"atlasweb_backend/internal/models"
	"atlasweb_backend/internal/repositories"
	"atlasweb_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// AuthService authenticates admin panel users.
type AuthService interface {
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	SeedFirstAdmin(db *gorm.DB, adminEmail, adminPassword string) error
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Login verifies credentials and issues an access token. Unknown email
// and wrong password produce the same error.
func (s *authService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.InvalidCredentials()
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.InvalidCredentials()
	}

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		User:        dto.NewUserResponse(user),
	}, nil
}

// SeedFirstAdmin creates the initial admin account when the users
// collection is empty. No-op when credentials are unset or a user
// already exists.
func (s *authService) SeedFirstAdmin(db *gorm.DB, adminEmail, adminPassword string) error {
	if adminEmail == "" || adminPassword == "" {
		return nil
	}

	count, err := s.userRepo.Count(db)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := auth.ValidatePassword(adminPassword); err != nil {
		return err
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	user := &models.User{
		Email:        adminEmail,
		PasswordHash: hash,
		Name:         "Administrator",
		Role:         models.UserRoleAdmin,
	}
	if err := s.userRepo.Create(db, user); err != nil {
		return err
	}

	logger.Info("seeded first admin user", "email", adminEmail)
	return nil
}
