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

	"masjidcare_backend/internals/apperr"
	"masjidcare_backend/internals/constants"
	database "masjidcare_backend/internals/databases"
	"masjidcare_backend/internals/features/feeds/dto"
	"masjidcare_backend/internals/features/feeds/model"
	helper "masjidcare_backend/internals/helpers"
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

func founderOf(areaID uuid.UUID) helper.Principal {
	return helper.Principal{UserID: uuid.New(), Role: constants.RoleFounder, AreaID: &areaID}
}

func memberOf(areaID uuid.UUID) helper.Principal {
	return helper.Principal{UserID: uuid.New(), Role: constants.RoleMember, AreaID: &areaID}
}

func superadmin() helper.Principal {
	return helper.Principal{UserID: uuid.New(), Role: constants.RoleSuperAdmin}
}

func TestCreateFeed_MemberForbidden(t *testing.T) {
	db := setupTestDB(t)
	areaID := uuid.New()

	_, err := CreateFeed(db, memberOf(areaID), dto.CreateFeedRequest{
		FeedTitle: "News", FeedContent: "Something happened",
	})
	assert.True(t, apperr.Is(err, apperr.KindAuthorization))
}

func TestCreateFeed_FounderForcedIntoOwnArea(t *testing.T) {
	db := setupTestDB(t)
	ownArea, otherArea := uuid.New(), uuid.New()

	feed, err := CreateFeed(db, founderOf(ownArea), dto.CreateFeedRequest{
		FeedTitle:   "Iftar schedule",
		FeedContent: "Maghrib iftar this weekend",
		FeedAreaID:  &otherArea,
	})
	require.NoError(t, err)
	require.NotNil(t, feed.FeedAreaID)
	assert.Equal(t, ownArea, *feed.FeedAreaID)
	assert.Equal(t, model.FeedPriorityNormal, feed.FeedPriority)
}

func TestListFeeds_VisibilityScope(t *testing.T) {
	db := setupTestDB(t)
	areaA, areaB := uuid.New(), uuid.New()
	admin := superadmin()

	// global broadcast
	_, err := CreateFeed(db, admin, dto.CreateFeedRequest{
		FeedTitle: "Global", FeedContent: "For everyone",
	})
	require.NoError(t, err)
	// area-local feeds
	_, err = CreateFeed(db, founderOf(areaA), dto.CreateFeedRequest{
		FeedTitle: "Area A only", FeedContent: "Local news A",
	})
	require.NoError(t, err)
	_, err = CreateFeed(db, founderOf(areaB), dto.CreateFeedRequest{
		FeedTitle: "Area B only", FeedContent: "Local news B",
	})
	require.NoError(t, err)

	paging := helper.Paging{Page: 1, PerPage: 10, Limit: 10}

	rows, total, err := ListFeeds(db, memberOf(areaA), dto.ListFeedQuery{}, paging)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	titles := []string{rows[0].FeedTitle, rows[1].FeedTitle}
	assert.NotContains(t, titles, "Area B only")

	_, total, err = ListFeeds(db, admin, dto.ListFeedQuery{}, paging)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
}

func TestListFeeds_ExpiredAndInactiveHidden(t *testing.T) {
	db := setupTestDB(t)
	areaID := uuid.New()
	admin := superadmin()

	past := time.Now().UTC().Add(-time.Hour)
	_, err := CreateFeed(db, admin, dto.CreateFeedRequest{
		FeedTitle: "Expired", FeedContent: "Old news", FeedExpiresAt: &past,
	})
	require.NoError(t, err)

	active, err := CreateFeed(db, admin, dto.CreateFeedRequest{
		FeedTitle: "Current", FeedContent: "Fresh news",
	})
	require.NoError(t, err)

	disabled, err := CreateFeed(db, admin, dto.CreateFeedRequest{
		FeedTitle: "Disabled", FeedContent: "Hidden news",
	})
	require.NoError(t, err)
	require.NoError(t, db.Model(disabled).Update("feed_is_active", false).Error)

	rows, total, err := ListFeeds(db, memberOf(areaID), dto.ListFeedQuery{}, helper.Paging{Page: 1, PerPage: 10, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, active.FeedID, rows[0].FeedID)
}

func TestListFeeds_UrgentFirst(t *testing.T) {
	db := setupTestDB(t)
	admin := superadmin()

	_, err := CreateFeed(db, admin, dto.CreateFeedRequest{
		FeedTitle: "Routine", FeedContent: "Nothing special",
	})
	require.NoError(t, err)
	_, err = CreateFeed(db, admin, dto.CreateFeedRequest{
		FeedTitle: "Water outage", FeedContent: "Bring your own water", FeedPriority: "urgent",
	})
	require.NoError(t, err)

	rows, _, err := ListFeeds(db, admin, dto.ListFeedQuery{}, helper.Paging{Page: 1, PerPage: 10, Limit: 10})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Water outage", rows[0].FeedTitle)
}

func TestGetFeed_BumpsViewCountAndHidesOutOfScope(t *testing.T) {
	db := setupTestDB(t)
	areaA, areaB := uuid.New(), uuid.New()

	feed, err := CreateFeed(db, founderOf(areaA), dto.CreateFeedRequest{
		FeedTitle: "Area A news", FeedContent: "Local only",
	})
	require.NoError(t, err)

	got, err := GetFeed(db, memberOf(areaA), feed.FeedID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, got.FeedViewCount)

	got, err = GetFeed(db, memberOf(areaA), feed.FeedID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.FeedViewCount)

	_, err = GetFeed(db, memberOf(areaB), feed.FeedID)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestUpdateFeed_AuthorOrAreaFounderOnly(t *testing.T) {
	db := setupTestDB(t)
	areaID := uuid.New()
	author := founderOf(areaID)

	feed, err := CreateFeed(db, author, dto.CreateFeedRequest{
		FeedTitle: "Draft", FeedContent: "First version",
	})
	require.NoError(t, err)

	title := "Final"
	updated, err := UpdateFeed(db, author, feed.FeedID, dto.UpdateFeedRequest{FeedTitle: &title})
	require.NoError(t, err)
	assert.Equal(t, "Final", updated.FeedTitle)

	foreign := founderOf(uuid.New())
	_, err = UpdateFeed(db, foreign, feed.FeedID, dto.UpdateFeedRequest{FeedTitle: &title})
	assert.True(t, apperr.Is(err, apperr.KindAuthorization))
}

func TestDeleteFeed_SoftDeleteHidesFromTimeline(t *testing.T) {
	db := setupTestDB(t)
	areaID := uuid.New()
	author := founderOf(areaID)

	feed, err := CreateFeed(db, author, dto.CreateFeedRequest{
		FeedTitle: "Temporary", FeedContent: "Gone soon",
	})
	require.NoError(t, err)

	require.NoError(t, DeleteFeed(db, author, feed.FeedID))

	_, err = GetFeed(db, memberOf(areaID), feed.FeedID)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	// the row survives for audit, soft-deleted
	var count int64
	require.NoError(t, db.Unscoped().Model(&model.FeedModel{}).
		Where("feed_id = ?", feed.FeedID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
