// internals/features/users/user/dto/user_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "masjidcare_backend/internals/features/users/user/model"
)

/* ===================== REQUESTS ===================== */

// Create: username is optional; when absent it is derived from the email
// local-part. The password is never part of this payload - a hashed default
// is assigned and changed by the member on first login.
type CreateMemberRequest struct {
	UserFirstName string     `json:"user_first_name" validate:"required,min=1,max=50"`
	UserLastName  string     `json:"user_last_name" validate:"required,min=1,max=50"`
	UserEmail     string     `json:"user_email" validate:"required,email"`
	UserName      string     `json:"user_name" validate:"omitempty,min=3,max=50"`
	UserPhone     string     `json:"user_phone" validate:"omitempty,min=5,max=30"`
	UserAddress   string     `json:"user_address" validate:"omitempty,max=255"`
	UserAreaID    *uuid.UUID `json:"user_area_id" validate:"omitempty"`
}

func (r CreateMemberRequest) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(r.UserFirstName) + " " + strings.TrimSpace(r.UserLastName))
}

type UpdateMemberStatusRequest struct {
	UserIsActive *bool `json:"user_is_active" validate:"required"`
}

type ListMemberQuery struct {
	Search   string     `query:"search"`
	IsActive *bool      `query:"is_active"`
	AreaID   *uuid.UUID `query:"area_id"` // superadmin only
}

/* ===================== RESPONSES ===================== */

type MemberResponse struct {
	UserID       uuid.UUID  `json:"user_id"`
	UserName     string     `json:"user_name"`
	UserEmail    string     `json:"user_email"`
	UserFullName string     `json:"user_full_name"`
	UserPhone    string     `json:"user_phone,omitempty"`
	UserAddress  string     `json:"user_address,omitempty"`
	UserRole     string     `json:"user_role"`
	UserIsActive bool       `json:"user_is_active"`
	UserAreaID   *uuid.UUID `json:"user_area_id,omitempty"`
	UserCreatedAt time.Time `json:"user_created_at"`
}

func NewMemberResponse(m *model.UserModel) *MemberResponse {
	if m == nil {
		return nil
	}
	return &MemberResponse{
		UserID:        m.UserID,
		UserName:      m.UserName,
		UserEmail:     m.UserEmail,
		UserFullName:  m.UserFullName,
		UserPhone:     m.UserPhone,
		UserAddress:   m.UserAddress,
		UserRole:      m.UserRole,
		UserIsActive:  m.UserIsActive,
		UserAreaID:    m.UserAreaID,
		UserCreatedAt: m.UserCreatedAt,
	}
}

func NewMemberResponses(ms []model.UserModel) []*MemberResponse {
	out := make([]*MemberResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewMemberResponse(&ms[i]))
	}
	return out
}
