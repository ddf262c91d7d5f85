package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	database "masjidcare_backend/internals/databases"
	"masjidcare_backend/internals/features/progress/daily_activities/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := database.AutoMigrateAll(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func activityDay(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestUpsert_SecondWriteReplacesAmount(t *testing.T) {
	db := setupTestDB(t)
	userID := uuid.New()

	first := model.DailyActivityModel{
		DailyActivityUserID: userID,
		DailyActivityDate:   activityDay("2026-08-10"),
		DailyActivityType:   model.ActivityZikr,
		DailyActivityAmount: 33,
	}
	require.NoError(t, Upsert(db, &first))

	second := model.DailyActivityModel{
		DailyActivityUserID: userID,
		DailyActivityDate:   activityDay("2026-08-10"),
		DailyActivityType:   model.ActivityZikr,
		DailyActivityAmount: 100,
	}
	require.NoError(t, Upsert(db, &second))

	var count int64
	require.NoError(t, db.Model(&model.DailyActivityModel{}).
		Where("daily_activity_user_id = ?", userID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var got model.DailyActivityModel
	require.NoError(t, db.Where("daily_activity_user_id = ?", userID).First(&got).Error)
	assert.Equal(t, 100, got.DailyActivityAmount)
}

func TestUpsert_TypesAreIndependent(t *testing.T) {
	db := setupTestDB(t)
	userID := uuid.New()

	zikr := model.DailyActivityModel{
		DailyActivityUserID: userID,
		DailyActivityDate:   activityDay("2026-08-10"),
		DailyActivityType:   model.ActivityZikr,
		DailyActivityAmount: 33,
	}
	quran := model.DailyActivityModel{
		DailyActivityUserID: userID,
		DailyActivityDate:   activityDay("2026-08-10"),
		DailyActivityType:   model.ActivityQuran,
		DailyActivityAmount: 15,
	}
	require.NoError(t, Upsert(db, &zikr))
	require.NoError(t, Upsert(db, &quran))

	rows, err := ListRange(db, userID, activityDay("2026-08-01"), activityDay("2026-08-31"))
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestListRange_BoundsInclusive(t *testing.T) {
	db := setupTestDB(t)
	userID := uuid.New()

	for _, date := range []string{"2026-08-01", "2026-08-15", "2026-08-31", "2026-09-01"} {
		rec := model.DailyActivityModel{
			DailyActivityUserID: userID,
			DailyActivityDate:   activityDay(date),
			DailyActivityType:   model.ActivityZikr,
			DailyActivityAmount: 10,
		}
		require.NoError(t, Upsert(db, &rec))
	}

	rows, err := ListRange(db, userID, activityDay("2026-08-01"), activityDay("2026-08-31"))
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}
