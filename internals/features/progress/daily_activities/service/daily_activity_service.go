// internals/features/progress/daily_activities/service/daily_activity_service.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"masjidcare_backend/internals/apperr"
	"masjidcare_backend/internals/features/progress/daily_activities/model"
)

// Upsert records a zikr count or quran minutes for one day; marking the same
// (user, date, type) again replaces the amount.
func Upsert(db *gorm.DB, record *model.DailyActivityModel) error {
	record.DailyActivityUpdatedAt = time.Now()
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "daily_activity_user_id"},
			{Name: "daily_activity_date"},
			{Name: "daily_activity_type"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"daily_activity_amount",
			"daily_activity_updated_at",
		}),
	}).Create(record).Error
	if err != nil {
		return apperr.From(err)
	}
	return nil
}

// ListRange returns the owner's activities for an inclusive date range.
func ListRange(db *gorm.DB, userID uuid.UUID, from, to time.Time) ([]model.DailyActivityModel, error) {
	var rows []model.DailyActivityModel
	if err := db.Where("daily_activity_user_id = ? AND daily_activity_date >= ? AND daily_activity_date <= ?",
		userID, from, to).
		Order("daily_activity_date ASC").
		Find(&rows).Error; err != nil {
		return nil, apperr.From(err)
	}
	return rows, nil
}
