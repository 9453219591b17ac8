package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/selorm/scholarbase/internal/app/models"
	"github.com/selorm/scholarbase/internal/app/models/dto"
	"github.com/selorm/scholarbase/internal/pkg/apperrors"
	"github.com/selorm/scholarbase/internal/pkg/dberrors"
	"github.com/selorm/scholarbase/internal/pkg/helpers"
	"github.com/selorm/scholarbase/internal/pkg/logger"
)

// ListUsersParams holds parameters for filtering and paginating user listings.
type ListUsersParams struct {
	Search      string
	Role        *models.RoleType
	Institution *string
	Page        int
	Size        int
}

// UserRepository handles database operations for users.
type UserRepository struct {
	DB *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

// Picture BLOB columns are excluded here; they are fetched on demand.
func (r *UserRepository) selectUserQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"id", "username", "email", "hashed_password", "full_name", "role", "is_active",
		"institution", "department", "phone",
		"reset_token", "reset_token_expires",
		"about", "disciplines", "research_interests", "office_location", "office_hours",
		"is_profile_public", "profile_slug",
		"profile_picture_filename", "profile_picture_size",
		"created_at", "updated_at",
	).From("users").PlaceholderFormat(squirrel.Dollar)
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.Password, &u.FullName, &u.Role, &u.IsActive,
		&u.Institution, &u.Department, &u.Phone,
		&u.ResetToken, &u.ResetTokenExpires,
		&u.About, &u.Disciplines, &u.ResearchInterests, &u.OfficeLocation, &u.OfficeHours,
		&u.IsProfilePublic, &u.ProfileSlug,
		&u.ProfilePictureFilename, &u.ProfilePictureSize,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error scanning user row")
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user and returns its ID.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	emailExists, err := r.EmailExists(ctx, user.Email)
	if err != nil {
		return 0, err
	}
	if emailExists {
		return 0, apperrors.ErrEmailAlreadyExists
	}

	usernameExists, err := r.UsernameExists(ctx, user.Username)
	if err != nil {
		return 0, err
	}
	if usernameExists {
		return 0, apperrors.ErrUsernameAlreadyExists
	}

	sqlStr, args, err := squirrel.Insert("users").
		Columns("username", "email", "hashed_password", "full_name", "role", "is_active",
			"institution", "department", "phone", "is_profile_public", "profile_slug").
		Values(user.Username, user.Email, user.Password, user.FullName, user.Role, user.IsActive,
			user.Institution, user.Department, user.Phone, user.IsProfilePublic, user.ProfileSlug).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create user SQL")
		return 0, err
	}

	var id int64
	err = r.DB.QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "users_username_key") {
			return 0, apperrors.ErrUsernameAlreadyExists
		}
		logger.Error().Err(err).Str("email", user.Email).Msg("Error executing create user query")
		return 0, err
	}

	return id, nil
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	sqlStr, args, err := r.selectUserQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanUser(r.DB.QueryRow(ctx, sqlStr, args...))
}

// GetByUsername retrieves a user by username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	sqlStr, args, err := r.selectUserQuery().Where(squirrel.Eq{"username": username}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanUser(r.DB.QueryRow(ctx, sqlStr, args...))
}

// GetByEmail retrieves a user by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	sqlStr, args, err := r.selectUserQuery().Where(squirrel.Eq{"email": email}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanUser(r.DB.QueryRow(ctx, sqlStr, args...))
}

// GetByProfileSlug retrieves an active user with a public profile by slug.
func (r *UserRepository) GetByProfileSlug(ctx context.Context, slug string) (*models.User, error) {
	sqlStr, args, err := r.selectUserQuery().
		Where(squirrel.Eq{"profile_slug": slug, "is_profile_public": true, "is_active": true}).
		ToSql()
	if err != nil {
		return nil, err
	}
	user, err := scanUser(r.DB.QueryRow(ctx, sqlStr, args...))
	if err == apperrors.ErrUserNotFound {
		return nil, apperrors.ErrProfileNotFound
	}
	return user, err
}

// GetIDByEmail returns the ID of the user with the given email.
// The second return value is false when no such user exists.
func (r *UserRepository) GetIDByEmail(ctx context.Context, email string) (int64, bool, error) {
	var id int64
	err := r.DB.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, false, nil
		}
		return 0, false, err
	}
	return id, true, nil
}

// List retrieves a paginated and filtered list of users.
func (r *UserRepository) List(ctx context.Context, params ListUsersParams) ([]*models.User, dto.PaginationInfo, error) {
	applyFilters := func(b squirrel.SelectBuilder) squirrel.SelectBuilder {
		if params.Search != "" {
			pattern := "%" + params.Search + "%"
			b = b.Where(squirrel.Or{
				squirrel.ILike{"full_name": pattern},
				squirrel.ILike{"username": pattern},
				squirrel.ILike{"email": pattern},
			})
		}
		if params.Role != nil {
			b = b.Where(squirrel.Eq{"role": *params.Role})
		}
		if params.Institution != nil && *params.Institution != "" {
			b = b.Where(squirrel.Eq{"institution": *params.Institution})
		}
		return b
	}

	countBuilder := applyFilters(squirrel.Select("count(*)").From("users").PlaceholderFormat(squirrel.Dollar))
	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	var total int64
	if err := r.DB.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting users")
		return nil, dto.PaginationInfo{}, err
	}

	offset, limit := helpers.CalculateOffsetLimit(params.Page, params.Size)
	sqlStr, args, err := applyFilters(r.selectUserQuery()).
		OrderBy("full_name ASC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing users")
		return nil, dto.PaginationInfo{}, err
	}
	defer rows.Close()

	users := make([]*models.User, 0, limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, dto.PaginationInfo{}, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return users, helpers.NewPaginationInfo(total, params.Page, limit), nil
}

// Update persists the mutable account fields of a user.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	sqlStr, args, err := squirrel.Update("users").
		Set("email", user.Email).
		Set("full_name", user.FullName).
		Set("role", user.Role).
		Set("is_active", user.IsActive).
		Set("institution", user.Institution).
		Set("department", user.Department).
		Set("phone", user.Phone).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": user.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Int64("userID", user.ID).Msg("Error updating user")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// UpdateProfile persists the public profile fields of a user.
func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	sqlStr, args, err := squirrel.Update("users").
		Set("full_name", user.FullName).
		Set("institution", user.Institution).
		Set("department", user.Department).
		Set("phone", user.Phone).
		Set("about", user.About).
		Set("disciplines", user.Disciplines).
		Set("research_interests", user.ResearchInterests).
		Set("office_location", user.OfficeLocation).
		Set("office_hours", user.OfficeHours).
		Set("is_profile_public", user.IsProfilePublic).
		Set("profile_slug", user.ProfileSlug).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": user.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", user.ID).Msg("Error updating user profile")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// SetProfileSlug assigns a profile slug to a user.
func (r *UserRepository) SetProfileSlug(ctx context.Context, userID int64, slug string) error {
	tag, err := r.DB.Exec(ctx,
		"UPDATE users SET profile_slug = $1, updated_at = NOW() WHERE id = $2", slug, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// SetActive enables or disables a user account.
func (r *UserRepository) SetActive(ctx context.Context, userID int64, active bool) error {
	tag, err := r.DB.Exec(ctx,
		"UPDATE users SET is_active = $1, updated_at = NOW() WHERE id = $2", active, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// SetPassword replaces a user's hashed password.
func (r *UserRepository) SetPassword(ctx context.Context, userID int64, hashedPassword string) error {
	tag, err := r.DB.Exec(ctx,
		"UPDATE users SET hashed_password = $1, updated_at = NOW() WHERE id = $2", hashedPassword, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// SetResetToken stores a password reset token and its expiry.
func (r *UserRepository) SetResetToken(ctx context.Context, userID int64, token string, expires time.Time) error {
	tag, err := r.DB.Exec(ctx,
		"UPDATE users SET reset_token = $1, reset_token_expires = $2, updated_at = NOW() WHERE id = $3",
		token, expires, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// GetByResetToken retrieves the user holding the given reset token.
func (r *UserRepository) GetByResetToken(ctx context.Context, token string) (*models.User, error) {
	sqlStr, args, err := r.selectUserQuery().Where(squirrel.Eq{"reset_token": token}).ToSql()
	if err != nil {
		return nil, err
	}
	user, err := scanUser(r.DB.QueryRow(ctx, sqlStr, args...))
	if err == apperrors.ErrUserNotFound {
		return nil, apperrors.ErrInvalidPasswordResetToken
	}
	return user, err
}

// ClearResetToken clears a user's reset token after use.
func (r *UserRepository) ClearResetToken(ctx context.Context, userID int64) error {
	_, err := r.DB.Exec(ctx,
		"UPDATE users SET reset_token = NULL, reset_token_expires = NULL, updated_at = NOW() WHERE id = $1", userID)
	return err
}

// Delete removes a user.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		logger.Error().Err(err).Int64("userID", id).Msg("Error deleting user")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// CountAll returns the total number of user accounts.
func (r *UserRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.QueryRow(ctx, "SELECT count(*) FROM users").Scan(&count)
	return count, err
}

// CountActive returns the number of active user accounts.
func (r *UserRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.QueryRow(ctx, "SELECT count(*) FROM users WHERE is_active = TRUE").Scan(&count)
	return count, err
}

// Recent returns the most recently created accounts.
func (r *UserRepository) Recent(ctx context.Context, limit int) ([]*models.User, error) {
	sqlStr, args, err := r.selectUserQuery().
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*models.User, 0, limit)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// EmailExists checks whether a user with the given email exists.
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", email).Scan(&exists)
	return exists, err
}

// EmailExistsExcept checks whether another user holds the given email.
func (r *UserRepository) EmailExistsExcept(ctx context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND id <> $2)", email, excludeID).Scan(&exists)
	return exists, err
}

// UsernameExists checks whether a user with the given username exists.
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)", username).Scan(&exists)
	return exists, err
}

// ProfileSlugExists checks whether a profile slug is already taken.
func (r *UserRepository) ProfileSlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE profile_slug = $1)", slug).Scan(&exists)
	return exists, err
}

// SetProfilePicture stores a profile picture BLOB for a user.
func (r *UserRepository) SetProfilePicture(ctx context.Context, userID int64, filename string, size int64, data []byte, contentType string) error {
	tag, err := r.DB.Exec(ctx, `
		UPDATE users SET
			profile_picture_filename = $1,
			profile_picture_size = $2,
			profile_picture_data = $3,
			profile_picture_content_type = $4,
			updated_at = NOW()
		WHERE id = $5`,
		filename, size, data, contentType, userID)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error storing profile picture")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// GetProfilePicture retrieves a user's profile picture BLOB.
func (r *UserRepository) GetProfilePicture(ctx context.Context, userID int64) (filename, contentType string, data []byte, err error) {
	var fn, ct *string
	err = r.DB.QueryRow(ctx, `
		SELECT profile_picture_filename, profile_picture_content_type, profile_picture_data
		FROM users WHERE id = $1`, userID).Scan(&fn, &ct, &data)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", "", nil, apperrors.ErrUserNotFound
		}
		return "", "", nil, err
	}
	if fn == nil || len(data) == 0 {
		return "", "", nil, apperrors.ErrPictureNotFound
	}
	filename = *fn
	contentType = "application/octet-stream"
	if ct != nil {
		contentType = *ct
	}
	return filename, contentType, data, nil
}

// ClearProfilePicture removes a user's profile picture BLOB.
func (r *UserRepository) ClearProfilePicture(ctx context.Context, userID int64) error {
	tag, err := r.DB.Exec(ctx, `
		UPDATE users SET
			profile_picture_filename = NULL,
			profile_picture_size = NULL,
			profile_picture_data = NULL,
			profile_picture_content_type = NULL,
			updated_at = NOW()
		WHERE id = $1`, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
