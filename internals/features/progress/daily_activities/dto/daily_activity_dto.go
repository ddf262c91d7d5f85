// internals/features/progress/daily_activities/dto/daily_activity_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "masjidcare_backend/internals/features/progress/daily_activities/model"
)

const dateLayout = "2006-01-02"

type UpsertDailyActivityRequest struct {
	DailyActivityDate   string `json:"daily_activity_date" validate:"required,datetime=2006-01-02"`
	DailyActivityType   string `json:"daily_activity_type" validate:"required,oneof=zikr quran"`
	DailyActivityAmount int    `json:"daily_activity_amount" validate:"required,min=1,max=10000"`
}

func (r UpsertDailyActivityRequest) ToModel(userID uuid.UUID) *model.DailyActivityModel {
	d, _ := time.Parse(dateLayout, strings.TrimSpace(r.DailyActivityDate))
	return &model.DailyActivityModel{
		DailyActivityUserID: userID,
		DailyActivityDate:   d,
		DailyActivityType:   model.ActivityType(r.DailyActivityType),
		DailyActivityAmount: r.DailyActivityAmount,
	}
}

type DailyActivityResponse struct {
	DailyActivityID     uuid.UUID          `json:"daily_activity_id"`
	DailyActivityDate   string             `json:"daily_activity_date"`
	DailyActivityType   model.ActivityType `json:"daily_activity_type"`
	DailyActivityAmount int                `json:"daily_activity_amount"`
}

func NewDailyActivityResponse(m *model.DailyActivityModel) *DailyActivityResponse {
	if m == nil {
		return nil
	}
	return &DailyActivityResponse{
		DailyActivityID:     m.DailyActivityID,
		DailyActivityDate:   m.DailyActivityDate.Format(dateLayout),
		DailyActivityType:   m.DailyActivityType,
		DailyActivityAmount: m.DailyActivityAmount,
	}
}

func NewDailyActivityResponses(ms []model.DailyActivityModel) []*DailyActivityResponse {
	out := make([]*DailyActivityResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewDailyActivityResponse(&ms[i]))
	}
	return out
}
