// internals/features/progress/daily_activities/controller/daily_activity_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"masjidcare_backend/internals/features/progress/daily_activities/dto"
	"masjidcare_backend/internals/features/progress/daily_activities/service"
	helper "masjidcare_backend/internals/helpers"
)

const dateLayout = "2006-01-02"

type DailyActivityController struct {
	DB *gorm.DB
}

func NewDailyActivityController(db *gorm.DB) *DailyActivityController {
	return &DailyActivityController{DB: db}
}

// 🟢 POST /api/u/daily-activities
func (ctrl *DailyActivityController) Upsert(c *fiber.Ctx) error {
	actor, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var req dto.UpsertDailyActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	record := req.ToModel(actor.UserID)
	if err := service.Upsert(ctrl.DB, record); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Activity recorded", dto.NewDailyActivityResponse(record))
}

// 🟢 GET /api/u/daily-activities
func (ctrl *DailyActivityController) ListOwn(c *fiber.Ctx) error {
	actor, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	now := time.Now()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from := to.AddDate(0, 0, -30)
	if s := strings.TrimSpace(c.Query("date_from")); s != "" {
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date_from, expected YYYY-MM-DD")
		}
		from = d
	}
	if s := strings.TrimSpace(c.Query("date_to")); s != "" {
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date_to, expected YYYY-MM-DD")
		}
		to = d
	}

	rows, err := service.ListRange(ctrl.DB, actor.UserID, from, to)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Daily activities", dto.NewDailyActivityResponses(rows))
}
