// internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"github.com/google/uuid"
)

/* ===================== REQUESTS ===================== */

// Identifier accepts either the email or the username; the service resolves
// whichever matches.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required,min=3,max=255"`
	Password   string `json:"password" validate:"required,min=8"`
}

// Self-registration always produces a member account. Role escalation only
// happens through the superadmin endpoints.
type RegisterRequest struct {
	UserFullName string     `json:"user_full_name" validate:"required,min=3,max=100"`
	UserEmail    string     `json:"user_email" validate:"required,email"`
	UserName     string     `json:"user_name" validate:"omitempty,min=3,max=50"`
	Password     string     `json:"password" validate:"required,min=8,max=72"`
	UserPhone    string     `json:"user_phone" validate:"omitempty,min=5,max=30"`
	UserAreaID   *uuid.UUID `json:"user_area_id" validate:"omitempty"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

/* ===================== RESPONSES ===================== */

type LoginUser struct {
	UserID       uuid.UUID  `json:"user_id"`
	UserName     string     `json:"user_name"`
	UserEmail    string     `json:"user_email"`
	UserFullName string     `json:"user_full_name"`
	UserRole     string     `json:"user_role"`
	UserAreaID   *uuid.UUID `json:"user_area_id,omitempty"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	User        LoginUser `json:"user"`
}
