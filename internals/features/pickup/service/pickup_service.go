// internals/features/pickup/service/pickup_service.go
package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"masjidcare_backend/internals/apperr"
	"masjidcare_backend/internals/features/pickup/dto"
	"masjidcare_backend/internals/features/pickup/model"
	helper "masjidcare_backend/internals/helpers"
)

/* ==========================
   Create
========================== */

// CreateRequest opens a new pickup request in pending and writes the first
// history row in the same transaction.
func CreateRequest(db *gorm.DB, actor helper.Principal, req dto.CreatePickupRequest) (*model.PickupRequestModel, error) {
	if actor.AreaID == nil {
		return nil, apperr.Validation("You must belong to an area before requesting a pickup")
	}

	m := req.ToModel(actor.UserID, *actor.AreaID)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return apperr.From(err)
		}
		history := &model.PickupRequestHistoryModel{
			PickupRequestHistoryRequestID:   m.PickupRequestID,
			PickupRequestHistoryChangeType:  model.PickupChangeCreated,
			PickupRequestHistoryNewStatus:   model.PickupStatusPending,
			PickupRequestHistoryActorUserID: actor.UserID,
		}
		if err := tx.Create(history).Error; err != nil {
			return apperr.From(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

/* ==========================
   Transitions
========================== */

// Approve moves pending -> approved and attaches the driver. Approval
// without a driver is a validation error.
func Approve(db *gorm.DB, actor helper.Principal, requestID uuid.UUID, driver *dto.DriverInput) (*model.PickupRequestModel, error) {
	if driver == nil || strings.TrimSpace(driver.PickupRequestDriverName) == "" || strings.TrimSpace(driver.PickupRequestDriverPhone) == "" {
		return nil, apperr.Validation("A driver name and phone are required to approve a pickup request")
	}
	now := time.Now()
	name := strings.TrimSpace(driver.PickupRequestDriverName)
	phone := strings.TrimSpace(driver.PickupRequestDriverPhone)
	return transition(db, actor, requestID, transitionSpec{
		from:       model.PickupStatusPending,
		to:         model.PickupStatusApproved,
		changeType: model.PickupChangeAssigned,
		authorize:  authorizeManager,
		updates: map[string]interface{}{
			"pickup_request_driver_name":         name,
			"pickup_request_driver_phone":        phone,
			"pickup_request_driver_user_id":      driver.PickupRequestDriverUserID,
			"pickup_request_approved_by_user_id": actor.UserID,
			"pickup_request_approved_at":         now,
		},
		note: "driver " + name + " assigned",
	})
}

// Reject moves pending -> rejected. A reason is mandatory.
func Reject(db *gorm.DB, actor helper.Principal, requestID uuid.UUID, reason string) (*model.PickupRequestModel, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperr.Validation("A rejection reason is required")
	}
	return transition(db, actor, requestID, transitionSpec{
		from:       model.PickupStatusPending,
		to:         model.PickupStatusRejected,
		changeType: model.PickupChangeRejected,
		authorize:  authorizeManager,
		updates: map[string]interface{}{
			"pickup_request_rejection_reason": reason,
		},
		note: reason,
	})
}

// Cancel moves pending|approved -> cancelled. The requester may cancel their
// own request; founders and superadmins may cancel any request in scope.
func Cancel(db *gorm.DB, actor helper.Principal, requestID uuid.UUID) (*model.PickupRequestModel, error) {
	return transitionAny(db, actor, requestID, []model.PickupStatus{model.PickupStatusPending, model.PickupStatusApproved}, transitionSpec{
		to:         model.PickupStatusCancelled,
		changeType: model.PickupChangeCancelled,
		authorize:  authorizeOwnerOrManager,
	})
}

// Start moves approved -> in_progress. Allowed for the assigned driver or a
// managing role.
func Start(db *gorm.DB, actor helper.Principal, requestID uuid.UUID) (*model.PickupRequestModel, error) {
	return transition(db, actor, requestID, transitionSpec{
		from:       model.PickupStatusApproved,
		to:         model.PickupStatusInProgress,
		changeType: model.PickupChangeStarted,
		authorize:  authorizeDriverOrManager,
	})
}

// Complete moves in_progress -> completed and records the actual pickup time.
func Complete(db *gorm.DB, actor helper.Principal, requestID uuid.UUID) (*model.PickupRequestModel, error) {
	now := time.Now()
	return transition(db, actor, requestID, transitionSpec{
		from:       model.PickupStatusInProgress,
		to:         model.PickupStatusCompleted,
		changeType: model.PickupChangeCompleted,
		authorize:  authorizeDriverOrManager,
		updates: map[string]interface{}{
			"pickup_request_picked_up_at": now,
		},
	})
}

/* ==========================
   Transition core
========================== */

type transitionSpec struct {
	from       model.PickupStatus
	to         model.PickupStatus
	changeType model.PickupChangeType
	authorize  func(actor helper.Principal, req *model.PickupRequestModel) error
	updates    map[string]interface{}
	note       string
}

func transition(db *gorm.DB, actor helper.Principal, requestID uuid.UUID, spec transitionSpec) (*model.PickupRequestModel, error) {
	return transitionAny(db, actor, requestID, []model.PickupStatus{spec.from}, spec)
}

// transitionAny applies one status change atomically: a conditional UPDATE
// guarded on the prior status plus exactly one history insert. When two
// callers race on the same row, the conditional update lets only one win;
// the loser sees zero affected rows and gets a conflict.
func transitionAny(db *gorm.DB, actor helper.Principal, requestID uuid.UUID, froms []model.PickupStatus, spec transitionSpec) (*model.PickupRequestModel, error) {
	var out *model.PickupRequestModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var req model.PickupRequestModel
		if err := tx.Where("pickup_request_id = ?", requestID).First(&req).Error; err != nil {
			return apperr.From(err)
		}

		if err := spec.authorize(actor, &req); err != nil {
			return err
		}

		if req.PickupRequestStatus.IsTerminal() {
			return apperr.Conflict("Pickup request is already " + string(req.PickupRequestStatus))
		}
		oldStatus := req.PickupRequestStatus
		if !statusIn(oldStatus, froms) {
			return apperr.Conflict("Pickup request cannot move from " + string(oldStatus) + " to " + string(spec.to))
		}

		updates := map[string]interface{}{
			"pickup_request_status": spec.to,
		}
		for k, v := range spec.updates {
			updates[k] = v
		}

		res := tx.Model(&model.PickupRequestModel{}).
			Where("pickup_request_id = ? AND pickup_request_status = ?", requestID, oldStatus).
			Updates(updates)
		if res.Error != nil {
			return apperr.From(res.Error)
		}
		if res.RowsAffected == 0 {
			// Someone else transitioned the row between our read and write.
			return apperr.Conflict("Pickup request was modified concurrently")
		}

		history := &model.PickupRequestHistoryModel{
			PickupRequestHistoryRequestID:   requestID,
			PickupRequestHistoryChangeType:  spec.changeType,
			PickupRequestHistoryOldStatus:   &oldStatus,
			PickupRequestHistoryNewStatus:   spec.to,
			PickupRequestHistoryActorUserID: actor.UserID,
			PickupRequestHistoryNote:        spec.note,
		}
		if err := tx.Create(history).Error; err != nil {
			return apperr.From(err)
		}

		if err := tx.Where("pickup_request_id = ?", requestID).First(&req).Error; err != nil {
			return apperr.From(err)
		}
		out = &req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func statusIn(s model.PickupStatus, set []model.PickupStatus) bool {
	for _, v := range set {
		if s == v {
			return true
		}
	}
	return false
}

/* ==========================
   Authorization guards
========================== */

func authorizeManager(actor helper.Principal, req *model.PickupRequestModel) error {
	if actor.CanManageArea(&req.PickupRequestAreaID) {
		return nil
	}
	return apperr.Authorization("You are not allowed to manage pickup requests in this area")
}

func authorizeOwnerOrManager(actor helper.Principal, req *model.PickupRequestModel) error {
	if actor.UserID == req.PickupRequestUserID {
		return nil
	}
	return authorizeManager(actor, req)
}

func authorizeDriverOrManager(actor helper.Principal, req *model.PickupRequestModel) error {
	if req.PickupRequestDriverUserID != nil && *req.PickupRequestDriverUserID == actor.UserID {
		return nil
	}
	return authorizeManager(actor, req)
}

/* ==========================
   Queries
========================== */

// GetByID enforces the read scope: requester sees their own, founder their
// area, superadmin everything.
func GetByID(db *gorm.DB, actor helper.Principal, requestID uuid.UUID) (*model.PickupRequestModel, error) {
	var req model.PickupRequestModel
	if err := db.Where("pickup_request_id = ?", requestID).First(&req).Error; err != nil {
		return nil, apperr.From(err)
	}
	if actor.UserID != req.PickupRequestUserID && !actor.CanManageArea(&req.PickupRequestAreaID) {
		return nil, apperr.NotFound("Pickup request not found")
	}
	return &req, nil
}

// List returns role-scoped requests, newest first. Paging values are bound
// through GORM's Limit/Offset, never concatenated into SQL.
func List(db *gorm.DB, actor helper.Principal, q dto.ListPickupQuery, paging helper.Paging) ([]model.PickupRequestModel, int64, error) {
	tx := db.Model(&model.PickupRequestModel{})

	switch {
	case actor.IsSuperAdmin():
		if q.AreaID != nil {
			tx = tx.Where("pickup_request_area_id = ?", *q.AreaID)
		}
	case actor.IsFounder():
		if actor.AreaID == nil {
			return nil, 0, apperr.Authorization("Founder account has no area assigned")
		}
		tx = tx.Where("pickup_request_area_id = ?", *actor.AreaID)
	default:
		tx = tx.Where("pickup_request_user_id = ?", actor.UserID)
	}

	if s := strings.TrimSpace(q.Status); s != "" {
		tx = tx.Where("pickup_request_status = ?", s)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, apperr.From(err)
	}

	var rows []model.PickupRequestModel
	if err := tx.Order("pickup_request_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return nil, 0, apperr.From(err)
	}
	return rows, total, nil
}

// ListHistory returns the audit trail, oldest first.
func ListHistory(db *gorm.DB, actor helper.Principal, requestID uuid.UUID) ([]model.PickupRequestHistoryModel, error) {
	if _, err := GetByID(db, actor, requestID); err != nil {
		return nil, err
	}
	var rows []model.PickupRequestHistoryModel
	if err := db.Where("pickup_request_history_request_id = ?", requestID).
		Order("pickup_request_history_created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, apperr.From(err)
	}
	return rows, nil
}
