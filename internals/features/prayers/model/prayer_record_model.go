// internals/features/prayers/model/prayer_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PrayerType string

const (
	PrayerFajr    PrayerType = "fajr"
	PrayerDhuhr   PrayerType = "dhuhr"
	PrayerAsr     PrayerType = "asr"
	PrayerMaghrib PrayerType = "maghrib"
	PrayerIsha    PrayerType = "isha"
)

// AllPrayerTypes in daily order.
var AllPrayerTypes = []PrayerType{PrayerFajr, PrayerDhuhr, PrayerAsr, PrayerMaghrib, PrayerIsha}

func ValidPrayerType(t PrayerType) bool {
	for _, p := range AllPrayerTypes {
		if p == t {
			return true
		}
	}
	return false
}

type PrayerStatus string

const (
	PrayerStatusPrayed   PrayerStatus = "prayed"
	PrayerStatusMissed   PrayerStatus = "missed"
	PrayerStatusUpcoming PrayerStatus = "upcoming"
)

func ValidPrayerStatus(s PrayerStatus) bool {
	return s == PrayerStatusPrayed || s == PrayerStatusMissed || s == PrayerStatusUpcoming
}

type PrayerLocation string

const (
	PrayerLocationMosque PrayerLocation = "mosque"
	PrayerLocationHome   PrayerLocation = "home"
)

// PrayerRecordModel holds one row per (user, date, prayer type). Only the
// owning member creates or updates it; a missing row means "no data", never
// an implicit miss.
type PrayerRecordModel struct {
	PrayerRecordID uuid.UUID `gorm:"column:prayer_record_id;type:uuid;default:gen_random_uuid();primaryKey" json:"prayer_record_id"`

	PrayerRecordUserID uuid.UUID  `gorm:"column:prayer_record_user_id;type:uuid;not null;uniqueIndex:idx_prayer_user_date_type" json:"prayer_record_user_id"`
	PrayerRecordDate   time.Time  `gorm:"column:prayer_record_date;type:date;not null;uniqueIndex:idx_prayer_user_date_type" json:"prayer_record_date"`
	PrayerRecordType   PrayerType `gorm:"column:prayer_record_type;type:varchar(10);not null;uniqueIndex:idx_prayer_user_date_type" json:"prayer_record_type"`

	PrayerRecordStatus   PrayerStatus   `gorm:"column:prayer_record_status;type:varchar(10);not null;default:'upcoming'" json:"prayer_record_status"`
	PrayerRecordLocation PrayerLocation `gorm:"column:prayer_record_location;type:varchar(10);not null;default:'mosque'" json:"prayer_record_location"`

	PrayerRecordCreatedAt time.Time `gorm:"column:prayer_record_created_at;autoCreateTime" json:"prayer_record_created_at"`
	PrayerRecordUpdatedAt time.Time `gorm:"column:prayer_record_updated_at;autoUpdateTime" json:"prayer_record_updated_at"`
}

func (PrayerRecordModel) TableName() string { return "prayer_records" }

func (p *PrayerRecordModel) BeforeCreate(tx *gorm.DB) error {
	if p.PrayerRecordID == uuid.Nil {
		p.PrayerRecordID = uuid.New()
	}
	return nil
}
