// internals/features/areas/dto/area_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"masjidcare_backend/internals/features/areas/model"
)

/* ===================== REQUESTS ===================== */

type CreateAreaRequest struct {
	AreaName       string  `json:"area_name" validate:"required,min=2,max=100"`
	AreaCity       string  `json:"area_city" validate:"omitempty,max=100"`
	AreaMosqueName *string `json:"area_mosque_name" validate:"omitempty,max=150"`

	AreaFajrTime    string `json:"area_fajr_time" validate:"omitempty,len=5"`
	AreaDhuhrTime   string `json:"area_dhuhr_time" validate:"omitempty,len=5"`
	AreaAsrTime     string `json:"area_asr_time" validate:"omitempty,len=5"`
	AreaMaghribTime string `json:"area_maghrib_time" validate:"omitempty,len=5"`
	AreaIshaTime    string `json:"area_isha_time" validate:"omitempty,len=5"`
}

func (r CreateAreaRequest) ToModel() *model.AreaModel {
	a := &model.AreaModel{
		AreaName:       strings.TrimSpace(r.AreaName),
		AreaCity:       strings.TrimSpace(r.AreaCity),
		AreaMosqueName: r.AreaMosqueName,
		AreaIsActive:   true,
	}
	if r.AreaFajrTime != "" {
		a.AreaFajrTime = r.AreaFajrTime
	}
	if r.AreaDhuhrTime != "" {
		a.AreaDhuhrTime = r.AreaDhuhrTime
	}
	if r.AreaAsrTime != "" {
		a.AreaAsrTime = r.AreaAsrTime
	}
	if r.AreaMaghribTime != "" {
		a.AreaMaghribTime = r.AreaMaghribTime
	}
	if r.AreaIshaTime != "" {
		a.AreaIshaTime = r.AreaIshaTime
	}
	return a
}

// Pointer fields: only present keys are applied.
type UpdateAreaRequest struct {
	AreaName       *string `json:"area_name" validate:"omitempty,min=2,max=100"`
	AreaCity       *string `json:"area_city" validate:"omitempty,max=100"`
	AreaMosqueName *string `json:"area_mosque_name" validate:"omitempty,max=150"`
	AreaIsActive   *bool   `json:"area_is_active"`

	AreaFajrTime    *string `json:"area_fajr_time" validate:"omitempty,len=5"`
	AreaDhuhrTime   *string `json:"area_dhuhr_time" validate:"omitempty,len=5"`
	AreaAsrTime     *string `json:"area_asr_time" validate:"omitempty,len=5"`
	AreaMaghribTime *string `json:"area_maghrib_time" validate:"omitempty,len=5"`
	AreaIshaTime    *string `json:"area_isha_time" validate:"omitempty,len=5"`
}

// UpdatePrayerTimesRequest is the founder-facing subset: founders adjust the
// schedule of their own area but nothing else.
type UpdatePrayerTimesRequest struct {
	AreaFajrTime    *string `json:"area_fajr_time" validate:"omitempty,len=5"`
	AreaDhuhrTime   *string `json:"area_dhuhr_time" validate:"omitempty,len=5"`
	AreaAsrTime     *string `json:"area_asr_time" validate:"omitempty,len=5"`
	AreaMaghribTime *string `json:"area_maghrib_time" validate:"omitempty,len=5"`
	AreaIshaTime    *string `json:"area_isha_time" validate:"omitempty,len=5"`
}

type AssignFounderRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

/* ===================== RESPONSES ===================== */

type AreaResponse struct {
	AreaID            uuid.UUID  `json:"area_id"`
	AreaName          string     `json:"area_name"`
	AreaCity          string     `json:"area_city,omitempty"`
	AreaMosqueName    *string    `json:"area_mosque_name,omitempty"`
	AreaFounderUserID *uuid.UUID `json:"area_founder_user_id,omitempty"`

	AreaFajrTime    string `json:"area_fajr_time"`
	AreaDhuhrTime   string `json:"area_dhuhr_time"`
	AreaAsrTime     string `json:"area_asr_time"`
	AreaMaghribTime string `json:"area_maghrib_time"`
	AreaIshaTime    string `json:"area_isha_time"`

	AreaIsActive  bool      `json:"area_is_active"`
	AreaCreatedAt time.Time `json:"area_created_at"`
}

func NewAreaResponse(a *model.AreaModel) *AreaResponse {
	if a == nil {
		return nil
	}
	return &AreaResponse{
		AreaID:            a.AreaID,
		AreaName:          a.AreaName,
		AreaCity:          a.AreaCity,
		AreaMosqueName:    a.AreaMosqueName,
		AreaFounderUserID: a.AreaFounderUserID,
		AreaFajrTime:      a.AreaFajrTime,
		AreaDhuhrTime:     a.AreaDhuhrTime,
		AreaAsrTime:       a.AreaAsrTime,
		AreaMaghribTime:   a.AreaMaghribTime,
		AreaIshaTime:      a.AreaIshaTime,
		AreaIsActive:      a.AreaIsActive,
		AreaCreatedAt:     a.AreaCreatedAt,
	}
}

func NewAreaResponses(as []model.AreaModel) []*AreaResponse {
	out := make([]*AreaResponse, 0, len(as))
	for i := range as {
		out = append(out, NewAreaResponse(&as[i]))
	}
	return out
}
