package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID       int64    `json:"id" db:"id" example:"1"`                                    // Unique identifier for the user
	Username string   `json:"username" db:"username" example:"mercy.klugar"`             // Login name, unique
	Email    string   `json:"email" db:"email" example:"mercy.klugar@uhas.edu.gh"`       // User's email address, unique
	Password string   `json:"-" db:"hashed_password"`                                    // User's hashed password (excluded from JSON)
	FullName string   `json:"fullName" db:"full_name" example:"Dr. Mercy Klugar"`        // Display name
	Role     RoleType `json:"role" db:"role" example:"faculty"`                          // main_coordinator or faculty
	IsActive bool     `json:"isActive" db:"is_active" example:"true"`                    // Whether the account is active

	Institution *string `json:"institution,omitempty" db:"institution"`
	Department  *string `json:"department,omitempty" db:"department"`
	Phone       *string `json:"phone,omitempty" db:"phone"`

	// Password reset state lives on the row; tokens are single-use
	ResetToken        *string    `json:"-" db:"reset_token"`
	ResetTokenExpires *time.Time `json:"-" db:"reset_token_expires"`

	// Public profile fields
	About             *string `json:"about,omitempty" db:"about"`
	Disciplines       *string `json:"disciplines,omitempty" db:"disciplines"` // comma-separated
	ResearchInterests *string `json:"researchInterests,omitempty" db:"research_interests"`
	OfficeLocation    *string `json:"officeLocation,omitempty" db:"office_location"`
	OfficeHours       *string `json:"officeHours,omitempty" db:"office_hours"`
	IsProfilePublic   bool    `json:"isProfilePublic" db:"is_profile_public"`
	ProfileSlug       *string `json:"profileSlug,omitempty" db:"profile_slug"` // unique once assigned

	// Profile picture stored as a database BLOB
	ProfilePictureFilename    *string `json:"profilePictureFilename,omitempty" db:"profile_picture_filename"`
	ProfilePictureSize        *int64  `json:"profilePictureSize,omitempty" db:"profile_picture_size"`
	ProfilePictureData        []byte  `json:"-" db:"profile_picture_data"`
	ProfilePictureContentType *string `json:"-" db:"profile_picture_content_type"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// IsCoordinator reports whether the user is a main coordinator
func (u *User) IsCoordinator() bool {
	return u.Role == RoleCoordinator
}

// HasResetTokenExpired reports whether the pending reset token is expired
func (u *User) HasResetTokenExpired() bool {
	if u.ResetTokenExpires == nil {
		return true
	}
	return u.ResetTokenExpires.Before(time.Now())
}
