// internals/features/prayers/dto/prayer_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "masjidcare_backend/internals/features/prayers/model"
)

const dateLayout = "2006-01-02"

/* ===================== REQUESTS ===================== */

// UpsertPrayerRequest marks one prayer for one day (PATCH /prayers/individual).
type UpsertPrayerRequest struct {
	PrayerRecordDate     string `json:"prayer_record_date" validate:"required,datetime=2006-01-02"`
	PrayerRecordType     string `json:"prayer_record_type" validate:"required,oneof=fajr dhuhr asr maghrib isha"`
	PrayerRecordStatus   string `json:"prayer_record_status" validate:"required,oneof=prayed missed upcoming"`
	PrayerRecordLocation string `json:"prayer_record_location" validate:"omitempty,oneof=mosque home"`
}

func (r UpsertPrayerRequest) ToModel(userID uuid.UUID) *model.PrayerRecordModel {
	d, _ := time.Parse(dateLayout, strings.TrimSpace(r.PrayerRecordDate))
	loc := model.PrayerLocation(r.PrayerRecordLocation)
	if loc == "" {
		loc = model.PrayerLocationMosque
	}
	return &model.PrayerRecordModel{
		PrayerRecordUserID:   userID,
		PrayerRecordDate:     d,
		PrayerRecordType:     model.PrayerType(r.PrayerRecordType),
		PrayerRecordStatus:   model.PrayerStatus(r.PrayerRecordStatus),
		PrayerRecordLocation: loc,
	}
}

// BulkUpsertPrayerRequest marks several prayers of one day at once
// (POST /prayers).
type BulkUpsertPrayerRequest struct {
	PrayerRecordDate string            `json:"prayer_record_date" validate:"required,datetime=2006-01-02"`
	Prayers          []BulkPrayerEntry `json:"prayers" validate:"required,min=1,max=5,dive"`
}

type BulkPrayerEntry struct {
	PrayerRecordType     string `json:"prayer_record_type" validate:"required,oneof=fajr dhuhr asr maghrib isha"`
	PrayerRecordStatus   string `json:"prayer_record_status" validate:"required,oneof=prayed missed upcoming"`
	PrayerRecordLocation string `json:"prayer_record_location" validate:"omitempty,oneof=mosque home"`
}

func (r BulkUpsertPrayerRequest) ToModels(userID uuid.UUID) []model.PrayerRecordModel {
	d, _ := time.Parse(dateLayout, strings.TrimSpace(r.PrayerRecordDate))
	out := make([]model.PrayerRecordModel, 0, len(r.Prayers))
	for _, p := range r.Prayers {
		loc := model.PrayerLocation(p.PrayerRecordLocation)
		if loc == "" {
			loc = model.PrayerLocationMosque
		}
		out = append(out, model.PrayerRecordModel{
			PrayerRecordUserID:   userID,
			PrayerRecordDate:     d,
			PrayerRecordType:     model.PrayerType(p.PrayerRecordType),
			PrayerRecordStatus:   model.PrayerStatus(p.PrayerRecordStatus),
			PrayerRecordLocation: loc,
		})
	}
	return out
}

/* ===================== QUERIES ===================== */

type ListPrayerQuery struct {
	DateFrom string `query:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `query:"date_to" validate:"omitempty,datetime=2006-01-02"`
}

/* ===================== RESPONSES ===================== */

type PrayerRecordResponse struct {
	PrayerRecordID       uuid.UUID            `json:"prayer_record_id"`
	PrayerRecordUserID   uuid.UUID            `json:"prayer_record_user_id"`
	PrayerRecordDate     string               `json:"prayer_record_date"`
	PrayerRecordType     model.PrayerType     `json:"prayer_record_type"`
	PrayerRecordStatus   model.PrayerStatus   `json:"prayer_record_status"`
	PrayerRecordLocation model.PrayerLocation `json:"prayer_record_location"`
	PrayerRecordUpdatedAt time.Time           `json:"prayer_record_updated_at"`
}

func NewPrayerRecordResponse(m *model.PrayerRecordModel) *PrayerRecordResponse {
	if m == nil {
		return nil
	}
	return &PrayerRecordResponse{
		PrayerRecordID:        m.PrayerRecordID,
		PrayerRecordUserID:    m.PrayerRecordUserID,
		PrayerRecordDate:      m.PrayerRecordDate.Format(dateLayout),
		PrayerRecordType:      m.PrayerRecordType,
		PrayerRecordStatus:    m.PrayerRecordStatus,
		PrayerRecordLocation:  m.PrayerRecordLocation,
		PrayerRecordUpdatedAt: m.PrayerRecordUpdatedAt,
	}
}

func NewPrayerRecordResponses(ms []model.PrayerRecordModel) []*PrayerRecordResponse {
	out := make([]*PrayerRecordResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewPrayerRecordResponse(&ms[i]))
	}
	return out
}
