// internals/features/pickup/model/pickup_request_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PickupStatus string

const (
	PickupStatusPending    PickupStatus = "pending"
	PickupStatusApproved   PickupStatus = "approved"
	PickupStatusInProgress PickupStatus = "in_progress"
	PickupStatusCompleted  PickupStatus = "completed"
	PickupStatusRejected   PickupStatus = "rejected"
	PickupStatusCancelled  PickupStatus = "cancelled"
)

// IsTerminal reports whether no further transition is allowed.
func (s PickupStatus) IsTerminal() bool {
	return s == PickupStatusCompleted || s == PickupStatusRejected || s == PickupStatusCancelled
}

// PickupRequestModel is a member's request for Fajr transportation. Driver
// assignment is not a separate state: the driver fields attach when the
// request moves pending -> approved.
type PickupRequestModel struct {
	PickupRequestID uuid.UUID `gorm:"column:pickup_request_id;type:uuid;default:gen_random_uuid();primaryKey" json:"pickup_request_id"`

	PickupRequestUserID uuid.UUID `gorm:"column:pickup_request_user_id;type:uuid;not null;index" json:"pickup_request_user_id"`
	PickupRequestAreaID uuid.UUID `gorm:"column:pickup_request_area_id;type:uuid;not null;index" json:"pickup_request_area_id"`

	PickupRequestPrayerType string `gorm:"column:pickup_request_prayer_type;type:varchar(10);not null;default:'fajr'" json:"pickup_request_prayer_type"`

	PickupRequestLocation string         `gorm:"column:pickup_request_location;type:text;not null" json:"pickup_request_location"`
	PickupRequestGPS      datatypes.JSON `gorm:"column:pickup_request_gps;type:jsonb" json:"pickup_request_gps,omitempty"`

	// JSON array of lowercase weekday names, e.g. ["monday","tuesday"].
	PickupRequestDays datatypes.JSON `gorm:"column:pickup_request_days;type:jsonb;not null" json:"pickup_request_days"`

	PickupRequestContactPhone string `gorm:"column:pickup_request_contact_phone;size:30" json:"pickup_request_contact_phone,omitempty"`
	PickupRequestInstructions string `gorm:"column:pickup_request_instructions;type:text" json:"pickup_request_instructions,omitempty"`

	PickupRequestStatus PickupStatus `gorm:"column:pickup_request_status;type:varchar(15);not null;default:'pending';index" json:"pickup_request_status"`

	PickupRequestDriverName   *string    `gorm:"column:pickup_request_driver_name;size:100" json:"pickup_request_driver_name,omitempty"`
	PickupRequestDriverPhone  *string    `gorm:"column:pickup_request_driver_phone;size:30" json:"pickup_request_driver_phone,omitempty"`
	PickupRequestDriverUserID *uuid.UUID `gorm:"column:pickup_request_driver_user_id;type:uuid" json:"pickup_request_driver_user_id,omitempty"`

	PickupRequestApprovedByUserID *uuid.UUID `gorm:"column:pickup_request_approved_by_user_id;type:uuid" json:"pickup_request_approved_by_user_id,omitempty"`
	PickupRequestRejectionReason  *string    `gorm:"column:pickup_request_rejection_reason;type:text" json:"pickup_request_rejection_reason,omitempty"`

	PickupRequestCreatedAt  time.Time  `gorm:"column:pickup_request_created_at;autoCreateTime" json:"pickup_request_created_at"`
	PickupRequestUpdatedAt  time.Time  `gorm:"column:pickup_request_updated_at;autoUpdateTime" json:"pickup_request_updated_at"`
	PickupRequestApprovedAt *time.Time `gorm:"column:pickup_request_approved_at" json:"pickup_request_approved_at,omitempty"`
	PickupRequestPickedUpAt *time.Time `gorm:"column:pickup_request_picked_up_at" json:"pickup_request_picked_up_at,omitempty"`
}

func (PickupRequestModel) TableName() string { return "pickup_requests" }

func (p *PickupRequestModel) BeforeCreate(tx *gorm.DB) error {
	if p.PickupRequestID == uuid.Nil {
		p.PickupRequestID = uuid.New()
	}
	return nil
}
