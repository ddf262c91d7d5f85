// internals/features/areas/model/area_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AreaModel is the scoping unit members and founders belong to. The mosque
// survives only as a display attribute (area_mosque_name) from the legacy
// mosque-scoped schema.
type AreaModel struct {
	AreaID uuid.UUID `gorm:"column:area_id;type:uuid;default:gen_random_uuid();primaryKey" json:"area_id"`

	AreaName       string  `gorm:"column:area_name;size:100;not null" json:"area_name"`
	AreaCity       string  `gorm:"column:area_city;size:100" json:"area_city"`
	AreaMosqueName *string `gorm:"column:area_mosque_name;size:150" json:"area_mosque_name,omitempty"`

	// One founder administers one area; nullable until assigned.
	AreaFounderUserID *uuid.UUID `gorm:"column:area_founder_user_id;type:uuid;uniqueIndex" json:"area_founder_user_id,omitempty"`

	// Daily prayer times, "HH:MM" local time.
	AreaFajrTime    string `gorm:"column:area_fajr_time;size:5;not null;default:'05:00'" json:"area_fajr_time"`
	AreaDhuhrTime   string `gorm:"column:area_dhuhr_time;size:5;not null;default:'12:30'" json:"area_dhuhr_time"`
	AreaAsrTime     string `gorm:"column:area_asr_time;size:5;not null;default:'15:45'" json:"area_asr_time"`
	AreaMaghribTime string `gorm:"column:area_maghrib_time;size:5;not null;default:'18:15'" json:"area_maghrib_time"`
	AreaIshaTime    string `gorm:"column:area_isha_time;size:5;not null;default:'19:30'" json:"area_isha_time"`

	AreaIsActive bool `gorm:"column:area_is_active;not null;default:true" json:"area_is_active"`

	AreaCreatedAt time.Time      `gorm:"column:area_created_at;autoCreateTime" json:"area_created_at"`
	AreaUpdatedAt time.Time      `gorm:"column:area_updated_at;autoUpdateTime" json:"area_updated_at"`
	AreaDeletedAt gorm.DeletedAt `gorm:"column:area_deleted_at;index" json:"-"`
}

func (AreaModel) TableName() string { return "areas" }

func (a *AreaModel) BeforeCreate(tx *gorm.DB) error {
	if a.AreaID == uuid.Nil {
		a.AreaID = uuid.New()
	}
	return nil
}
