// internals/features/pickup/dto/pickup_dto.go
package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "masjidcare_backend/internals/features/pickup/model"
)

/* ===================== REQUESTS ===================== */

type GPSPoint struct {
	Lat float64 `json:"lat" validate:"required,latitude"`
	Lng float64 `json:"lng" validate:"required,longitude"`
}

// Create: requester identity and area come from the principal, not the body.
type CreatePickupRequest struct {
	PickupRequestPrayerType   string    `json:"pickup_request_prayer_type" validate:"required,oneof=fajr"`
	PickupRequestLocation     string    `json:"pickup_request_location" validate:"required,min=3"`
	PickupRequestDays         []string  `json:"pickup_request_days" validate:"required,min=1,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	PickupRequestContactPhone string    `json:"pickup_request_contact_phone" validate:"omitempty,min=5,max=30"`
	PickupRequestInstructions string    `json:"pickup_request_instructions" validate:"omitempty,max=500"`
	PickupRequestGPS          *GPSPoint `json:"pickup_request_gps" validate:"omitempty"`
}

func (r CreatePickupRequest) ToModel(userID, areaID uuid.UUID) *model.PickupRequestModel {
	m := &model.PickupRequestModel{
		PickupRequestUserID:       userID,
		PickupRequestAreaID:       areaID,
		PickupRequestPrayerType:   strings.ToLower(strings.TrimSpace(r.PickupRequestPrayerType)),
		PickupRequestLocation:     strings.TrimSpace(r.PickupRequestLocation),
		PickupRequestContactPhone: strings.TrimSpace(r.PickupRequestContactPhone),
		PickupRequestInstructions: strings.TrimSpace(r.PickupRequestInstructions),
		PickupRequestStatus:       model.PickupStatusPending,
	}
	days, _ := json.Marshal(normalizeDays(r.PickupRequestDays))
	m.PickupRequestDays = datatypes.JSON(days)
	if r.PickupRequestGPS != nil {
		gps, _ := json.Marshal(r.PickupRequestGPS)
		m.PickupRequestGPS = datatypes.JSON(gps)
	}
	return m
}

// normalizeDays lowercases and dedupes while keeping order.
func normalizeDays(days []string) []string {
	seen := make(map[string]struct{}, len(days))
	out := make([]string, 0, len(days))
	for _, d := range days {
		d = strings.ToLower(strings.TrimSpace(d))
		if d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}

// DriverInput attaches on approval; id is optional, name and phone are not.
type DriverInput struct {
	PickupRequestDriverName   string     `json:"pickup_request_driver_name" validate:"required,min=2,max=100"`
	PickupRequestDriverPhone  string     `json:"pickup_request_driver_phone" validate:"required,min=5,max=30"`
	PickupRequestDriverUserID *uuid.UUID `json:"pickup_request_driver_user_id" validate:"omitempty"`
}

// DecisionRequest is the PATCH body: the action selects the transition.
type DecisionRequest struct {
	Action string       `json:"action" validate:"required,oneof=approve reject start complete"`
	Driver *DriverInput `json:"driver" validate:"omitempty"`
	Reason string       `json:"reason" validate:"omitempty,max=500"`
}

/* ===================== QUERIES ===================== */

type ListPickupQuery struct {
	Status string     `query:"status"`
	AreaID *uuid.UUID `query:"area_id"` // superadmin only
}

/* ===================== RESPONSES ===================== */

type PickupRequestResponse struct {
	PickupRequestID     uuid.UUID `json:"pickup_request_id"`
	PickupRequestUserID uuid.UUID `json:"pickup_request_user_id"`
	PickupRequestAreaID uuid.UUID `json:"pickup_request_area_id"`

	PickupRequestPrayerType   string          `json:"pickup_request_prayer_type"`
	PickupRequestLocation     string          `json:"pickup_request_location"`
	PickupRequestGPS          json.RawMessage `json:"pickup_request_gps,omitempty"`
	PickupRequestDays         []string        `json:"pickup_request_days"`
	PickupRequestContactPhone string          `json:"pickup_request_contact_phone,omitempty"`
	PickupRequestInstructions string          `json:"pickup_request_instructions,omitempty"`

	PickupRequestStatus model.PickupStatus `json:"pickup_request_status"`

	PickupRequestDriverName   *string    `json:"pickup_request_driver_name,omitempty"`
	PickupRequestDriverPhone  *string    `json:"pickup_request_driver_phone,omitempty"`
	PickupRequestDriverUserID *uuid.UUID `json:"pickup_request_driver_user_id,omitempty"`

	PickupRequestApprovedByUserID *uuid.UUID `json:"pickup_request_approved_by_user_id,omitempty"`
	PickupRequestRejectionReason  *string    `json:"pickup_request_rejection_reason,omitempty"`

	PickupRequestCreatedAt  time.Time  `json:"pickup_request_created_at"`
	PickupRequestApprovedAt *time.Time `json:"pickup_request_approved_at,omitempty"`
	PickupRequestPickedUpAt *time.Time `json:"pickup_request_picked_up_at,omitempty"`
}

func NewPickupRequestResponse(m *model.PickupRequestModel) *PickupRequestResponse {
	if m == nil {
		return nil
	}
	var days []string
	_ = json.Unmarshal(m.PickupRequestDays, &days)

	resp := &PickupRequestResponse{
		PickupRequestID:               m.PickupRequestID,
		PickupRequestUserID:           m.PickupRequestUserID,
		PickupRequestAreaID:           m.PickupRequestAreaID,
		PickupRequestPrayerType:       m.PickupRequestPrayerType,
		PickupRequestLocation:         m.PickupRequestLocation,
		PickupRequestDays:             days,
		PickupRequestContactPhone:     m.PickupRequestContactPhone,
		PickupRequestInstructions:     m.PickupRequestInstructions,
		PickupRequestStatus:           m.PickupRequestStatus,
		PickupRequestDriverName:       m.PickupRequestDriverName,
		PickupRequestDriverPhone:      m.PickupRequestDriverPhone,
		PickupRequestDriverUserID:     m.PickupRequestDriverUserID,
		PickupRequestApprovedByUserID: m.PickupRequestApprovedByUserID,
		PickupRequestRejectionReason:  m.PickupRequestRejectionReason,
		PickupRequestCreatedAt:        m.PickupRequestCreatedAt,
		PickupRequestApprovedAt:       m.PickupRequestApprovedAt,
		PickupRequestPickedUpAt:       m.PickupRequestPickedUpAt,
	}
	if len(m.PickupRequestGPS) > 0 {
		resp.PickupRequestGPS = json.RawMessage(m.PickupRequestGPS)
	}
	return resp
}

func NewPickupRequestResponses(ms []model.PickupRequestModel) []*PickupRequestResponse {
	out := make([]*PickupRequestResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewPickupRequestResponse(&ms[i]))
	}
	return out
}

type PickupHistoryResponse struct {
	PickupRequestHistoryID          uuid.UUID               `json:"pickup_request_history_id"`
	PickupRequestHistoryRequestID   uuid.UUID               `json:"pickup_request_history_request_id"`
	PickupRequestHistoryChangeType  model.PickupChangeType  `json:"pickup_request_history_change_type"`
	PickupRequestHistoryOldStatus   *model.PickupStatus     `json:"pickup_request_history_old_status,omitempty"`
	PickupRequestHistoryNewStatus   model.PickupStatus      `json:"pickup_request_history_new_status"`
	PickupRequestHistoryActorUserID uuid.UUID               `json:"pickup_request_history_actor_user_id"`
	PickupRequestHistoryNote        string                  `json:"pickup_request_history_note,omitempty"`
	PickupRequestHistoryCreatedAt   time.Time               `json:"pickup_request_history_created_at"`
}

func NewPickupHistoryResponses(ms []model.PickupRequestHistoryModel) []PickupHistoryResponse {
	out := make([]PickupHistoryResponse, 0, len(ms))
	for _, h := range ms {
		out = append(out, PickupHistoryResponse{
			PickupRequestHistoryID:          h.PickupRequestHistoryID,
			PickupRequestHistoryRequestID:   h.PickupRequestHistoryRequestID,
			PickupRequestHistoryChangeType:  h.PickupRequestHistoryChangeType,
			PickupRequestHistoryOldStatus:   h.PickupRequestHistoryOldStatus,
			PickupRequestHistoryNewStatus:   h.PickupRequestHistoryNewStatus,
			PickupRequestHistoryActorUserID: h.PickupRequestHistoryActorUserID,
			PickupRequestHistoryNote:        h.PickupRequestHistoryNote,
			PickupRequestHistoryCreatedAt:   h.PickupRequestHistoryCreatedAt,
		})
	}
	return out
}
