package dto

import "github.com/selorm/scholarbase/internal/app/models"

// LoginRequest is the login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"mercy.klugar"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// TokenResponse carries the issued access token
type TokenResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType" example:"bearer"`
	ExpiresIn   int          `json:"expiresIn" example:"28800"`
	User        *models.User `json:"user"`
}

// ChangePasswordRequest changes the authenticated user's password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// ForgotPasswordRequest starts a password reset
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest completes a password reset
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}
