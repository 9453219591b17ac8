package dto

// CreateUserRequest is the coordinator-facing account creation payload
type CreateUserRequest struct {
	Username    string  `json:"username" binding:"required,min=3,max=50"`
	Email       string  `json:"email" binding:"required,email"`
	FullName    string  `json:"fullName" binding:"required"`
	Password    string  `json:"password" binding:"required,min=8"`
	Role        string  `json:"role" binding:"required,oneof=main_coordinator faculty"`
	Institution *string `json:"institution,omitempty"`
	Department  *string `json:"department,omitempty"`
	Phone       *string `json:"phone,omitempty"`
}

// UpdateUserRequest updates an account; nil fields are left untouched
type UpdateUserRequest struct {
	Email       *string `json:"email,omitempty" binding:"omitempty,email"`
	FullName    *string `json:"fullName,omitempty"`
	Role        *string `json:"role,omitempty" binding:"omitempty,oneof=main_coordinator faculty"`
	Institution *string `json:"institution,omitempty"`
	Department  *string `json:"department,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// UpdateProfileRequest updates the caller's own public profile. Sent as a
// multipart form so the profile picture can ride along.
type UpdateProfileRequest struct {
	FullName          *string `form:"fullName"`
	Institution       *string `form:"institution"`
	Department        *string `form:"department"`
	Phone             *string `form:"phone"`
	About             *string `form:"about"`
	Disciplines       *string `form:"disciplines"`
	ResearchInterests *string `form:"researchInterests"`
	OfficeLocation    *string `form:"officeLocation"`
	OfficeHours       *string `form:"officeHours"`
	IsProfilePublic   *bool   `form:"isProfilePublic"`
}
