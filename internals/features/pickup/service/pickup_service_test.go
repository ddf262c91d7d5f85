package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"masjidcare_backend/internals/apperr"
	"masjidcare_backend/internals/constants"
	database "masjidcare_backend/internals/databases"
	"masjidcare_backend/internals/features/pickup/dto"
	"masjidcare_backend/internals/features/pickup/model"
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

func memberPrincipal(areaID uuid.UUID) helper.Principal {
	return helper.Principal{UserID: uuid.New(), Role: constants.RoleMember, AreaID: &areaID}
}

func founderPrincipal(areaID uuid.UUID) helper.Principal {
	return helper.Principal{UserID: uuid.New(), Role: constants.RoleFounder, AreaID: &areaID}
}

func newCreateRequest() dto.CreatePickupRequest {
	return dto.CreatePickupRequest{
		PickupRequestPrayerType: "fajr",
		PickupRequestLocation:   "Jl. Melati 12",
		PickupRequestDays:       []string{"monday", "wednesday"},
	}
}

func TestCreateRequest_WritesInitialHistory(t *testing.T) {
	db := setupTestDB(t)
	areaID := uuid.New()
	member := memberPrincipal(areaID)

	req, err := CreateRequest(db, member, newCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, model.PickupStatusPending, req.PickupRequestStatus)
	assert.Equal(t, areaID, req.PickupRequestAreaID)

	var history []model.PickupRequestHistoryModel
	require.NoError(t, db.Where("pickup_request_history_request_id = ?", req.PickupRequestID).Find(&history).Error)
	require.Len(t, history, 1)
	assert.Equal(t, model.PickupChangeCreated, history[0].PickupRequestHistoryChangeType)
	assert.Equal(t, model.PickupStatusPending, history[0].PickupRequestHistoryNewStatus)
	assert.Nil(t, history[0].PickupRequestHistoryOldStatus)
}

func TestCreateRequest_RequiresArea(t *testing.T) {
	db := setupTestDB(t)
	noArea := helper.Principal{UserID: uuid.New(), Role: constants.RoleMember}

	_, err := CreateRequest(db, noArea, newCreateRequest())
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestApprove_RequiresDriver(t *testing.T) {
	db := setupTestDB(t)
	areaID := uuid.New()
	member := memberPrincipal(areaID)
	founder := founderPrincipal(areaID)

	req, err := CreateRequest(db, member, newCreateRequest())
	require.NoError(t, err)

	_, err = Approve(db, founder, req.PickupRequestID, nil)
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	_, err = Approve(db, founder, req.PickupRequestID, &dto.DriverInput{PickupRequestDriverName: "  "})
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	// neither attempt may leave a trace
	var count int64
	require.NoError(t, db.Model(&model.PickupRequestHistoryModel{}).
		Where("pickup_request_history_request_id = ? AND pickup_request_history_change_type = ?",
			req.PickupRequestID, model.PickupChangeAssigned).
		Count(&count).Error)
	assert.Zero(t, count)
}

func TestApprove_AssignsDriverAndAppendsHistory(t *testing.T) {
	db := setupTestDB(t)
	areaID := uuid.New()
	member := memberPrincipal(areaID)
	founder := founderPrincipal(areaID)

	req, err := CreateRequest(db, member, newCreateRequest())
	require.NoError(t, err)

	updated, err := Approve(db, founder, req.PickupRequestID, &dto.DriverInput{
		PickupRequestDriverName:  "Pak Budi",
		PickupRequestDriverPhone: "081234567890",
	})
	require.NoError(t, err)
	assert.Equal(t, model.PickupStatusApproved, updated.PickupRequestStatus)
	require.NotNil(t, updated.PickupRequestDriverName)
	assert.Equal(t, "Pak Budi", *updated.PickupRequestDriverName)
	require.NotNil(t, updated.PickupRequestApprovedByUserID)
	assert.Equal(t, founder.UserID, *updated.PickupRequestApprovedByUserID)
	assert.NotNil(t, updated.PickupRequestApprovedAt)

	history, err := ListHistory(db, founder, req.PickupRequestID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, model.PickupChangeCreated, history[0].PickupRequestHistoryChangeType)
	assert.Equal(t, model.PickupChangeAssigned, history[1].PickupRequestHistoryChangeType)
	require.NotNil(t, history[1].PickupRequestHistoryOldStatus)
	assert.Equal(t, model.PickupStatusPending, *history[1].PickupRequestHistoryOldStatus)
	assert.Equal(t, model.PickupStatusApproved, history[1].PickupRequestHistoryNewStatus)
}

func TestApprove_Twice_Conflicts(t *testing.T) {
	db := setupTestDB(t)
	areaID := uuid.New()
	member := memberPrincipal(areaID)
	founder := founderPrincipal(areaID)
	driver := &dto.DriverInput{PickupRequestDriverName: "Pak Budi", PickupRequestDriverPhone: "0812"}
	other := &dto.DriverInput{PickupRequestDriverName: "Pak Andi", PickupRequestDriverPhone: "0813"}

	req, err := CreateRequest(db, member, newCreateRequest())
	require.NoError(t, err)

	_, err = Approve(db, founder, req.PickupRequestID, driver)
	require.NoError(t, err)

	_, err = Approve(db, founder, req.PickupRequestID, other)
	assert.True(t, apperr.Is(err, apperr.KindConflict))

	// the first driver stays on the row
	reloaded, err := GetByID(db, founder, req.PickupRequestID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.PickupRequestDriverName)
	assert.Equal(t, "Pak Budi", *reloaded.PickupRequestDriverName)

	// no third history row
	history, err := ListHistory(db, founder, req.PickupRequestID)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestReject_RequiresReason(t *testing.T) {
	db := setupTestDB(t)
	areaID := uuid.New()
	founder := founderPrincipal(areaID)

	req, err := CreateRequest(db, memberPrincipal(areaID), newCreateRequest())
	require.NoError(t, err)

	_, err = Reject(db, founder, req.PickupRequestID, "   ")
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	updated, err := Reject(db, founder, req.PickupRequestID, "outside coverage")
	require.NoError(t, err)
	assert.Equal(t, model.PickupStatusRejected, updated.PickupRequestStatus)
	require.NotNil(t, updated.PickupRequestRejectionReason)
	assert.Equal(t, "outside coverage", *updated.PickupRequestRejectionReason)
}

func TestTransition_OnTerminalRequest_Conflicts(t *testing.T) {
	db := setupTestDB(t)
	areaID := uuid.New()
	member := memberPrincipal(areaID)
	founder := founderPrincipal(areaID)

	req, err := CreateRequest(db, member, newCreateRequest())
	require.NoError(t, err)
	_, err = Reject(db, founder, req.PickupRequestID, "no driver available")
	require.NoError(t, err)

	_, err = Approve(db, founder, req.PickupRequestID, &dto.DriverInput{
		PickupRequestDriverName: "Pak Budi", PickupRequestDriverPhone: "0812",
	})
	assert.True(t, apperr.Is(err, apperr.KindConflict))

	_, err = Cancel(db, member, req.PickupRequestID)
	assert.True(t, apperr.Is(err, apperr.KindConflict))
}

func TestFullLifecycle_PendingToCompleted(t *testing.T) {
	db := setupTestDB(t)
	areaID := uuid.New()
	member := memberPrincipal(areaID)
	founder := founderPrincipal(areaID)

	req, err := CreateRequest(db, member, newCreateRequest())
	require.NoError(t, err)

	_, err = Approve(db, founder, req.PickupRequestID, &dto.DriverInput{
		PickupRequestDriverName: "Pak Budi", PickupRequestDriverPhone: "0812",
	})
	require.NoError(t, err)

	// completing before starting is refused
	_, err = Complete(db, founder, req.PickupRequestID)
	assert.True(t, apperr.Is(err, apperr.KindConflict))

	_, err = Start(db, founder, req.PickupRequestID)
	require.NoError(t, err)

	done, err := Complete(db, founder, req.PickupRequestID)
	require.NoError(t, err)
	assert.Equal(t, model.PickupStatusCompleted, done.PickupRequestStatus)
	assert.NotNil(t, done.PickupRequestPickedUpAt)

	history, err := ListHistory(db, founder, req.PickupRequestID)
	require.NoError(t, err)
	require.Len(t, history, 4)
	types := []model.PickupChangeType{
		history[0].PickupRequestHistoryChangeType,
		history[1].PickupRequestHistoryChangeType,
		history[2].PickupRequestHistoryChangeType,
		history[3].PickupRequestHistoryChangeType,
	}
	assert.Equal(t, []model.PickupChangeType{
		model.PickupChangeCreated,
		model.PickupChangeAssigned,
		model.PickupChangeStarted,
		model.PickupChangeCompleted,
	}, types)
}

func TestCancel_OwnerAndScope(t *testing.T) {
	db := setupTestDB(t)
	areaID := uuid.New()
	member := memberPrincipal(areaID)
	stranger := memberPrincipal(areaID)

	req, err := CreateRequest(db, member, newCreateRequest())
	require.NoError(t, err)

	// another member cannot cancel someone else's request
	_, err = Cancel(db, stranger, req.PickupRequestID)
	assert.True(t, apperr.Is(err, apperr.KindAuthorization))

	cancelled, err := Cancel(db, member, req.PickupRequestID)
	require.NoError(t, err)
	assert.Equal(t, model.PickupStatusCancelled, cancelled.PickupRequestStatus)
}

func TestApprove_FounderOfOtherArea_Forbidden(t *testing.T) {
	db := setupTestDB(t)
	areaID := uuid.New()
	member := memberPrincipal(areaID)
	otherFounder := founderPrincipal(uuid.New())

	req, err := CreateRequest(db, member, newCreateRequest())
	require.NoError(t, err)

	_, err = Approve(db, otherFounder, req.PickupRequestID, &dto.DriverInput{
		PickupRequestDriverName: "Pak Budi", PickupRequestDriverPhone: "0812",
	})
	assert.True(t, apperr.Is(err, apperr.KindAuthorization))
}

func TestList_ScopesByRole(t *testing.T) {
	db := setupTestDB(t)
	areaA, areaB := uuid.New(), uuid.New()
	memberA := memberPrincipal(areaA)
	memberB := memberPrincipal(areaB)
	founderA := founderPrincipal(areaA)
	super := helper.Principal{UserID: uuid.New(), Role: constants.RoleSuperAdmin}

	_, err := CreateRequest(db, memberA, newCreateRequest())
	require.NoError(t, err)
	_, err = CreateRequest(db, memberB, newCreateRequest())
	require.NoError(t, err)

	paging := helper.Paging{Page: 1, PerPage: 10, Limit: 10, Offset: 0}

	rows, total, err := List(db, memberA, dto.ListPickupQuery{}, paging)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, memberA.UserID, rows[0].PickupRequestUserID)

	_, total, err = List(db, founderA, dto.ListPickupQuery{}, paging)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	_, total, err = List(db, super, dto.ListPickupQuery{}, paging)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

func TestGetByID_OutOfScopeReadsAsNotFound(t *testing.T) {
	db := setupTestDB(t)
	areaID := uuid.New()
	member := memberPrincipal(areaID)
	stranger := memberPrincipal(uuid.New())

	req, err := CreateRequest(db, member, newCreateRequest())
	require.NoError(t, err)

	_, err = GetByID(db, stranger, req.PickupRequestID)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}
