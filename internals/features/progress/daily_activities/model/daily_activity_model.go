// internals/features/progress/daily_activities/model/daily_activity_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityType string

const (
	ActivityZikr  ActivityType = "zikr"  // amount = repetitions
	ActivityQuran ActivityType = "quran" // amount = minutes of recitation
)

func ValidActivityType(t ActivityType) bool {
	return t == ActivityZikr || t == ActivityQuran
}

// DailyActivityModel holds one row per (user, date, activity type), same
// uniqueness rule as prayer records.
type DailyActivityModel struct {
	DailyActivityID uuid.UUID `gorm:"column:daily_activity_id;type:uuid;default:gen_random_uuid();primaryKey" json:"daily_activity_id"`

	DailyActivityUserID uuid.UUID    `gorm:"column:daily_activity_user_id;type:uuid;not null;uniqueIndex:idx_activity_user_date_type" json:"daily_activity_user_id"`
	DailyActivityDate   time.Time    `gorm:"column:daily_activity_date;type:date;not null;uniqueIndex:idx_activity_user_date_type" json:"daily_activity_date"`
	DailyActivityType   ActivityType `gorm:"column:daily_activity_type;type:varchar(10);not null;uniqueIndex:idx_activity_user_date_type" json:"daily_activity_type"`

	DailyActivityAmount int `gorm:"column:daily_activity_amount;not null;default:0" json:"daily_activity_amount"`

	DailyActivityCreatedAt time.Time `gorm:"column:daily_activity_created_at;autoCreateTime" json:"daily_activity_created_at"`
	DailyActivityUpdatedAt time.Time `gorm:"column:daily_activity_updated_at;autoUpdateTime" json:"daily_activity_updated_at"`
}

func (DailyActivityModel) TableName() string { return "daily_activities" }

func (d *DailyActivityModel) BeforeCreate(tx *gorm.DB) error {
	if d.DailyActivityID == uuid.Nil {
		d.DailyActivityID = uuid.New()
	}
	return nil
}
