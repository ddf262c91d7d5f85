// internals/features/pickup/model/pickup_request_history_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PickupChangeType string

const (
	PickupChangeCreated   PickupChangeType = "created"
	PickupChangeAssigned  PickupChangeType = "assigned"
	PickupChangeRejected  PickupChangeType = "rejected"
	PickupChangeCancelled PickupChangeType = "cancelled"
	PickupChangeStarted   PickupChangeType = "started"
	PickupChangeCompleted PickupChangeType = "completed"
)

// PickupRequestHistoryModel is an append-only audit log: one row per status
// change, inserted in the same transaction as the status update. Rows are
// never updated or deleted.
type PickupRequestHistoryModel struct {
	PickupRequestHistoryID uuid.UUID `gorm:"column:pickup_request_history_id;type:uuid;default:gen_random_uuid();primaryKey" json:"pickup_request_history_id"`

	PickupRequestHistoryRequestID uuid.UUID `gorm:"column:pickup_request_history_request_id;type:uuid;not null;index" json:"pickup_request_history_request_id"`

	PickupRequestHistoryChangeType PickupChangeType `gorm:"column:pickup_request_history_change_type;type:varchar(15);not null" json:"pickup_request_history_change_type"`
	PickupRequestHistoryOldStatus  *PickupStatus    `gorm:"column:pickup_request_history_old_status;type:varchar(15)" json:"pickup_request_history_old_status,omitempty"`
	PickupRequestHistoryNewStatus  PickupStatus     `gorm:"column:pickup_request_history_new_status;type:varchar(15);not null" json:"pickup_request_history_new_status"`

	PickupRequestHistoryActorUserID uuid.UUID `gorm:"column:pickup_request_history_actor_user_id;type:uuid;not null" json:"pickup_request_history_actor_user_id"`
	PickupRequestHistoryNote        string    `gorm:"column:pickup_request_history_note;type:text" json:"pickup_request_history_note,omitempty"`

	PickupRequestHistoryCreatedAt time.Time `gorm:"column:pickup_request_history_created_at;autoCreateTime" json:"pickup_request_history_created_at"`
}

func (PickupRequestHistoryModel) TableName() string { return "pickup_request_histories" }

func (h *PickupRequestHistoryModel) BeforeCreate(tx *gorm.DB) error {
	if h.PickupRequestHistoryID == uuid.Nil {
		h.PickupRequestHistoryID = uuid.New()
	}
	return nil
}
