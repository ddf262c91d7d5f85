// internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel represents the users table. Deleting a user is a hard delete and
// cascades to prayers, daily activities and pickup requests via FKs.
type UserModel struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`

	UserName     string `gorm:"column:user_name;size:50;uniqueIndex;not null" json:"user_name"`
	UserEmail    string `gorm:"column:user_email;size:255;uniqueIndex;not null" json:"user_email"`
	UserFullName string `gorm:"column:user_full_name;size:100;not null" json:"user_full_name"`
	UserPhone    string `gorm:"column:user_phone;size:30" json:"user_phone,omitempty"`
	UserAddress  string `gorm:"column:user_address;size:255" json:"user_address,omitempty"`

	// bcrypt hash, never serialized.
	UserPassword string `gorm:"column:user_password;not null" json:"-"`

	UserRole     string `gorm:"column:user_role;type:varchar(20);not null;default:'member'" json:"user_role"`
	UserIsActive bool   `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserAreaID *uuid.UUID `gorm:"column:user_area_id;type:uuid;index" json:"user_area_id,omitempty"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}
