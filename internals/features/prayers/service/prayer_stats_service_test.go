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
	"masjidcare_backend/internals/features/prayers/model"
	userModel "masjidcare_backend/internals/features/users/user/model"
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

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func record(userID uuid.UUID, date string, typ model.PrayerType, status model.PrayerStatus) model.PrayerRecordModel {
	return model.PrayerRecordModel{
		PrayerRecordUserID: userID,
		PrayerRecordDate:   day(date),
		PrayerRecordType:   typ,
		PrayerRecordStatus: status,
	}
}

func fullDay(userID uuid.UUID, date string, status model.PrayerStatus) []model.PrayerRecordModel {
	out := make([]model.PrayerRecordModel, 0, len(model.AllPrayerTypes))
	for _, typ := range model.AllPrayerTypes {
		out = append(out, record(userID, date, typ, status))
	}
	return out
}

func TestRoundPercent_EmptyWindowIsZero(t *testing.T) {
	assert.Equal(t, 0, roundPercent(0, 0))
	assert.Equal(t, 0, roundPercent(5, 0))
	assert.Equal(t, 0, roundPercent(0, -1))
}

func TestComputeSummary_MissingRowsAreNotMissed(t *testing.T) {
	userID := uuid.New()
	// only two records exist for the day: one prayed, one missed
	records := []model.PrayerRecordModel{
		record(userID, "2026-08-01", model.PrayerFajr, model.PrayerStatusPrayed),
		record(userID, "2026-08-01", model.PrayerDhuhr, model.PrayerStatusMissed),
	}

	s := ComputeSummary(records)
	assert.Equal(t, 1, s.Prayed)
	assert.Equal(t, 2, s.Total) // the three missing types do not count
	assert.Equal(t, 50, s.Percentage)
}

func TestComputeSummary_PartialDay(t *testing.T) {
	userID := uuid.New()
	records := []model.PrayerRecordModel{
		record(userID, "2026-08-01", model.PrayerFajr, model.PrayerStatusPrayed),
		record(userID, "2026-08-01", model.PrayerDhuhr, model.PrayerStatusPrayed),
		record(userID, "2026-08-01", model.PrayerAsr, model.PrayerStatusMissed),
		record(userID, "2026-08-01", model.PrayerMaghrib, model.PrayerStatusMissed),
		record(userID, "2026-08-01", model.PrayerIsha, model.PrayerStatusMissed),
	}

	s := ComputeSummary(records)
	assert.Equal(t, 40, s.Percentage)
	require.Len(t, s.Days, 1)
	assert.Equal(t, 40, s.Days[0].Percentage)
	assert.Equal(t, 0, s.Streak) // 2/5 does not sustain a streak
}

func TestComputeStreak_ConsecutiveFullDays(t *testing.T) {
	userID := uuid.New()
	var records []model.PrayerRecordModel
	records = append(records, fullDay(userID, "2026-08-10", model.PrayerStatusPrayed)...)
	records = append(records, fullDay(userID, "2026-08-09", model.PrayerStatusPrayed)...)
	records = append(records, fullDay(userID, "2026-08-08", model.PrayerStatusPrayed)...)
	// a gap on 08-07, then an older full day that must not count
	records = append(records, fullDay(userID, "2026-08-06", model.PrayerStatusPrayed)...)

	assert.Equal(t, 3, ComputeStreak(records))
}

func TestComputeStreak_BreaksOnPartialDay(t *testing.T) {
	userID := uuid.New()
	var records []model.PrayerRecordModel
	records = append(records, fullDay(userID, "2026-08-10", model.PrayerStatusPrayed)...)
	records = append(records, record(userID, "2026-08-09", model.PrayerFajr, model.PrayerStatusMissed))
	records = append(records, fullDay(userID, "2026-08-08", model.PrayerStatusPrayed)...)

	assert.Equal(t, 1, ComputeStreak(records))
}

func TestComputeStreak_NoRecords(t *testing.T) {
	assert.Equal(t, 0, ComputeStreak(nil))
}

func TestCombinePercentage_SumsBeforeDividing(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	scopes := []ScopeCount{
		{AreaID: &a, Prayed: 10, Total: 20}, // 50%
		{AreaID: &b, Prayed: 18, Total: 30}, // 60%
	}

	// 28/50 = 56%, not the 55% average and not 58.3 rounded
	assert.Equal(t, 56, CombinePercentage(scopes))
	assert.Equal(t, 0, CombinePercentage(nil))
}

func TestGetUserStats_AgainstDB(t *testing.T) {
	db := setupTestDB(t)
	userID := uuid.New()

	rows := append(fullDay(userID, "2026-08-10", model.PrayerStatusPrayed),
		record(userID, "2026-08-11", model.PrayerFajr, model.PrayerStatusMissed))
	require.NoError(t, db.Create(&rows).Error)

	s, err := GetUserStats(db, userID, day("2026-08-01"), day("2026-08-31"))
	require.NoError(t, err)
	assert.Equal(t, 5, s.Prayed)
	assert.Equal(t, 6, s.Total)
	assert.Equal(t, 83, s.Percentage)
}

func TestGetGlobalStats_InactiveUsersExcluded(t *testing.T) {
	db := setupTestDB(t)
	areaA := uuid.New()

	active := userModel.UserModel{
		UserName: "active", UserEmail: "active@x.com", UserFullName: "Active User",
		UserPassword: "x", UserRole: "member", UserIsActive: true, UserAreaID: &areaA,
	}
	inactive := userModel.UserModel{
		UserName: "inactive", UserEmail: "inactive@x.com", UserFullName: "Inactive User",
		UserPassword: "x", UserRole: "member", UserIsActive: false, UserAreaID: &areaA,
	}
	require.NoError(t, db.Create(&active).Error)
	require.NoError(t, db.Create(&inactive).Error)

	rows := []model.PrayerRecordModel{
		record(active.UserID, "2026-08-10", model.PrayerFajr, model.PrayerStatusPrayed),
		record(active.UserID, "2026-08-10", model.PrayerDhuhr, model.PrayerStatusMissed),
		record(inactive.UserID, "2026-08-10", model.PrayerFajr, model.PrayerStatusPrayed),
	}
	require.NoError(t, db.Create(&rows).Error)

	g, err := GetGlobalStats(db, day("2026-08-01"), day("2026-08-31"))
	require.NoError(t, err)
	assert.EqualValues(t, 1, g.Prayed)
	assert.EqualValues(t, 2, g.Total)
	assert.Equal(t, 50, g.Percentage)
	require.Len(t, g.Scopes, 1)
}

func TestGetGlobalStats_CombinesAcrossAreas(t *testing.T) {
	db := setupTestDB(t)
	areaA, areaB := uuid.New(), uuid.New()

	userA := userModel.UserModel{
		UserName: "usera", UserEmail: "a@x.com", UserFullName: "User A",
		UserPassword: "x", UserRole: "member", UserIsActive: true, UserAreaID: &areaA,
	}
	userB := userModel.UserModel{
		UserName: "userb", UserEmail: "b@x.com", UserFullName: "User B",
		UserPassword: "x", UserRole: "member", UserIsActive: true, UserAreaID: &areaB,
	}
	require.NoError(t, db.Create(&userA).Error)
	require.NoError(t, db.Create(&userB).Error)

	var rows []model.PrayerRecordModel
	// area A: 4/5 prayed on one day
	for i, typ := range model.AllPrayerTypes {
		status := model.PrayerStatusPrayed
		if i == 4 {
			status = model.PrayerStatusMissed
		}
		rows = append(rows, record(userA.UserID, "2026-08-10", typ, status))
	}
	// area B: 1/5
	for i, typ := range model.AllPrayerTypes {
		status := model.PrayerStatusMissed
		if i == 0 {
			status = model.PrayerStatusPrayed
		}
		rows = append(rows, record(userB.UserID, "2026-08-10", typ, status))
	}
	require.NoError(t, db.Create(&rows).Error)

	g, err := GetGlobalStats(db, day("2026-08-01"), day("2026-08-31"))
	require.NoError(t, err)
	assert.EqualValues(t, 5, g.Prayed)
	assert.EqualValues(t, 10, g.Total)
	assert.Equal(t, 50, g.Percentage)
	assert.Len(t, g.Scopes, 2)
}

func TestUpsertOne_SecondWriteUpdatesInPlace(t *testing.T) {
	db := setupTestDB(t)
	userID := uuid.New()

	first := record(userID, "2026-08-10", model.PrayerFajr, model.PrayerStatusUpcoming)
	require.NoError(t, UpsertOne(db, &first))

	second := record(userID, "2026-08-10", model.PrayerFajr, model.PrayerStatusPrayed)
	require.NoError(t, UpsertOne(db, &second))

	var count int64
	require.NoError(t, db.Model(&model.PrayerRecordModel{}).
		Where("prayer_record_user_id = ?", userID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var got model.PrayerRecordModel
	require.NoError(t, db.Where("prayer_record_user_id = ?", userID).First(&got).Error)
	assert.Equal(t, model.PrayerStatusPrayed, got.PrayerRecordStatus)
}
