package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/selorm/scholarbase/internal/app/models"
	"github.com/selorm/scholarbase/internal/app/models/dto"
	"github.com/selorm/scholarbase/internal/app/repositories"
	"github.com/selorm/scholarbase/internal/config"
	"github.com/selorm/scholarbase/internal/pkg/apperrors"
	"github.com/selorm/scholarbase/internal/pkg/auth"
	"github.com/selorm/scholarbase/internal/pkg/logger"
	"github.com/selorm/scholarbase/internal/pkg/slug"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// UserService defines the interface for account and profile operations
type UserService interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context, params repositories.ListUsersParams) ([]*models.User, dto.PaginationInfo, error)
	UpdateUser(ctx context.Context, actorID, targetID int64, req *dto.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, actorID, targetID int64) error
	ToggleUserStatus(ctx context.Context, actorID, targetID int64) (*models.User, error)

	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest, picture *multipart.FileHeader) (*models.User, error)
	GetProfilePicture(ctx context.Context, userID int64) (filename, contentType string, data []byte, err error)
	DeleteProfilePicture(ctx context.Context, userID int64) error

	GetPublicProfile(ctx context.Context, profileSlug string) (*models.User, error)
	GetPublicProfilePicture(ctx context.Context, profileSlug string) (filename, contentType string, data []byte, err error)
}

type userServiceImpl struct {
	userRepo *repositories.UserRepository
	cfg      *config.Config
}

// NewUserService creates a new UserService
func NewUserService(userRepo *repositories.UserRepository, cfg *config.Config) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// CreateUser creates a new account.
func (s *userServiceImpl) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:    strings.ToLower(strings.TrimSpace(req.Username)),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Password:    hashed,
		FullName:    strings.TrimSpace(req.FullName),
		Role:        models.RoleType(req.Role),
		IsActive:    true,
		Institution: req.Institution,
		Department:  req.Department,
		Phone:       req.Phone,
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("userID", id).Str("username", user.Username).Msg("User account created")
	return s.userRepo.GetByID(ctx, id)
}

// GetUser retrieves an account by ID.
func (s *userServiceImpl) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// ListUsers retrieves a filtered page of accounts.
func (s *userServiceImpl) ListUsers(ctx context.Context, params repositories.ListUsersParams) ([]*models.User, dto.PaginationInfo, error) {
	return s.userRepo.List(ctx, params)
}

// UpdateUser updates an account. Coordinators may not deactivate or demote
// their own account.
func (s *userServiceImpl) UpdateUser(ctx context.Context, actorID, targetID int64, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if actorID == targetID {
		if req.IsActive != nil && !*req.IsActive {
			return nil, apperrors.NewBadRequestError("you cannot deactivate your own account")
		}
		if req.Role != nil && models.RoleType(*req.Role) != user.Role {
			return nil, apperrors.NewBadRequestError("you cannot change your own role")
		}
	}

	if req.Email != nil && *req.Email != user.Email {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		taken, err := s.userRepo.EmailExistsExcept(ctx, email, targetID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		user.Email = email
	}
	if req.FullName != nil {
		user.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Role != nil {
		role := models.RoleType(*req.Role)
		if !role.Valid() {
			return nil, apperrors.ErrValidationFailed
		}
		user.Role = role
	}
	if req.Institution != nil {
		user.Institution = req.Institution
	}
	if req.Department != nil {
		user.Department = req.Department
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, targetID)
}

// DeleteUser removes an account. Self-deletion is rejected.
func (s *userServiceImpl) DeleteUser(ctx context.Context, actorID, targetID int64) error {
	if actorID == targetID {
		return apperrors.NewBadRequestError("you cannot delete your own account")
	}
	return s.userRepo.Delete(ctx, targetID)
}

// ToggleUserStatus flips an account between active and disabled.
// Coordinators may not deactivate their own account.
func (s *userServiceImpl) ToggleUserStatus(ctx context.Context, actorID, targetID int64) (*models.User, error) {
	if actorID == targetID {
		return nil, apperrors.NewBadRequestError("you cannot deactivate your own account")
	}

	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.SetActive(ctx, targetID, !user.IsActive); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, targetID)
}

// UpdateProfile updates the caller's public profile and optional picture.
// A profile slug is assigned lazily the first time the profile needs one.
func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest, picture *multipart.FileHeader) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil && strings.TrimSpace(*req.FullName) != "" {
		user.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Institution != nil {
		user.Institution = req.Institution
	}
	if req.Department != nil {
		user.Department = req.Department
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.About != nil {
		user.About = req.About
	}
	if req.Disciplines != nil {
		user.Disciplines = req.Disciplines
	}
	if req.ResearchInterests != nil {
		user.ResearchInterests = req.ResearchInterests
	}
	if req.OfficeLocation != nil {
		user.OfficeLocation = req.OfficeLocation
	}
	if req.OfficeHours != nil {
		user.OfficeHours = req.OfficeHours
	}
	if req.IsProfilePublic != nil {
		user.IsProfilePublic = *req.IsProfilePublic
	}

	if user.ProfileSlug == nil || *user.ProfileSlug == "" {
		generated, err := s.generateProfileSlug(ctx, user)
		if err != nil {
			return nil, err
		}
		user.ProfileSlug = &generated
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	if picture != nil {
		if err := s.storeProfilePicture(ctx, userID, picture); err != nil {
			return nil, err
		}
	}

	return s.userRepo.GetByID(ctx, userID)
}

func (s *userServiceImpl) generateProfileSlug(ctx context.Context, user *models.User) (string, error) {
	base := slug.Make(user.FullName)
	if base == "" {
		base = fmt.Sprintf("user-%d", user.ID)
	}

	var probeErr error
	unique := slug.Unique(base, func(candidate string) bool {
		if probeErr != nil {
			return false
		}
		exists, err := s.userRepo.ProfileSlugExists(ctx, candidate)
		if err != nil {
			probeErr = err
			return false
		}
		return exists
	})
	if probeErr != nil {
		return "", probeErr
	}
	return unique, nil
}

func (s *userServiceImpl) storeProfilePicture(ctx context.Context, userID int64, picture *multipart.FileHeader) error {
	if picture.Size > s.cfg.MaxProfilePictureSize() {
		return apperrors.ErrFileTooLarge
	}

	contentType := picture.Header.Get("Content-Type")
	if !allowedImageTypes[strings.ToLower(contentType)] {
		return apperrors.ErrInvalidImageType
	}

	src, err := picture.Open()
	if err != nil {
		return fmt.Errorf("error opening uploaded picture: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("error reading uploaded picture: %w", err)
	}

	return s.userRepo.SetProfilePicture(ctx, userID, picture.Filename, int64(len(data)), data, contentType)
}

// GetProfilePicture retrieves a user's stored profile picture.
func (s *userServiceImpl) GetProfilePicture(ctx context.Context, userID int64) (string, string, []byte, error) {
	return s.userRepo.GetProfilePicture(ctx, userID)
}

// DeleteProfilePicture removes the caller's profile picture.
func (s *userServiceImpl) DeleteProfilePicture(ctx context.Context, userID int64) error {
	return s.userRepo.ClearProfilePicture(ctx, userID)
}

// GetPublicProfile retrieves a public supervisor profile by slug.
func (s *userServiceImpl) GetPublicProfile(ctx context.Context, profileSlug string) (*models.User, error) {
	return s.userRepo.GetByProfileSlug(ctx, profileSlug)
}

// GetPublicProfilePicture retrieves the picture of a public profile by slug.
func (s *userServiceImpl) GetPublicProfilePicture(ctx context.Context, profileSlug string) (string, string, []byte, error) {
	user, err := s.userRepo.GetByProfileSlug(ctx, profileSlug)
	if err != nil {
		return "", "", nil, err
	}
	return s.userRepo.GetProfilePicture(ctx, user.ID)
}
