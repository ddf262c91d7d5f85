// internals/features/prayers/service/prayer_record_service.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"masjidcare_backend/internals/apperr"
	"masjidcare_backend/internals/features/prayers/model"
)

// conflictTarget is the (user, date, type) uniqueness rule: marking the same
// prayer twice updates the existing row instead of failing.
var conflictTarget = clause.OnConflict{
	Columns: []clause.Column{
		{Name: "prayer_record_user_id"},
		{Name: "prayer_record_date"},
		{Name: "prayer_record_type"},
	},
	DoUpdates: clause.AssignmentColumns([]string{
		"prayer_record_status",
		"prayer_record_location",
		"prayer_record_updated_at",
	}),
}

// UpsertOne marks a single prayer. Only the owner creates or updates their
// records; the controller passes the principal's own user id.
func UpsertOne(db *gorm.DB, record *model.PrayerRecordModel) error {
	record.PrayerRecordUpdatedAt = time.Now()
	if err := db.Clauses(conflictTarget).Create(record).Error; err != nil {
		return apperr.From(err)
	}
	return nil
}

// UpsertMany marks several prayers of one day in a single transaction.
func UpsertMany(db *gorm.DB, records []model.PrayerRecordModel) error {
	if len(records) == 0 {
		return apperr.Validation("No prayers to record")
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for i := range records {
			records[i].PrayerRecordUpdatedAt = time.Now()
			if err := tx.Clauses(conflictTarget).Create(&records[i]).Error; err != nil {
				return apperr.From(err)
			}
		}
		return nil
	})
}

// ListRange returns the owner's records for an inclusive date range, oldest
// first.
func ListRange(db *gorm.DB, userID uuid.UUID, from, to time.Time) ([]model.PrayerRecordModel, error) {
	var rows []model.PrayerRecordModel
	if err := db.Where("prayer_record_user_id = ? AND prayer_record_date >= ? AND prayer_record_date <= ?",
		userID, from, to).
		Order("prayer_record_date ASC").
		Find(&rows).Error; err != nil {
		return nil, apperr.From(err)
	}
	return rows, nil
}
