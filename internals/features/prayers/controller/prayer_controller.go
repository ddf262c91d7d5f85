// internals/features/prayers/controller/prayer_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"masjidcare_backend/internals/features/prayers/dto"
	"masjidcare_backend/internals/features/prayers/service"
	helper "masjidcare_backend/internals/helpers"
)

const dateLayout = "2006-01-02"

type PrayerController struct {
	DB *gorm.DB
}

func NewPrayerController(db *gorm.DB) *PrayerController {
	return &PrayerController{DB: db}
}

// parseRange reads ?date_from/?date_to with a default trailing window.
func parseRange(c *fiber.Ctx, defaultDays int) (time.Time, time.Time, error) {
	now := time.Now()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from := to.AddDate(0, 0, -defaultDays)

	if s := strings.TrimSpace(c.Query("date_from")); s != "" {
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			return from, to, err
		}
		from = d
	}
	if s := strings.TrimSpace(c.Query("date_to")); s != "" {
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			return from, to, err
		}
		to = d
	}
	return from, to, nil
}

// 🟢 GET /api/u/prayers
func (ctrl *PrayerController) ListOwn(c *fiber.Ctx) error {
	actor, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	from, to, err := parseRange(c, 30)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date range, expected YYYY-MM-DD")
	}

	rows, err := service.ListRange(ctrl.DB, actor.UserID, from, to)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Prayer records", dto.NewPrayerRecordResponses(rows))
}

// 🟢 POST /api/u/prayers (bulk for one day)
func (ctrl *PrayerController) MarkDay(c *fiber.Ctx) error {
	actor, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var req dto.BulkUpsertPrayerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	records := req.ToModels(actor.UserID)
	if err := service.UpsertMany(ctrl.DB, records); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Prayers recorded", nil)
}

// 🟡 PATCH /api/u/prayers/individual
func (ctrl *PrayerController) MarkIndividual(c *fiber.Ctx) error {
	actor, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var req dto.UpsertPrayerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	record := req.ToModel(actor.UserID)
	if err := service.UpsertOne(ctrl.DB, record); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "Prayer recorded", dto.NewPrayerRecordResponse(record))
}

// 🟢 GET /api/u/prayers/stats (member overview: today/week/month + streak)
func (ctrl *PrayerController) OwnStats(c *fiber.Ctx) error {
	actor, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	stats, err := service.GetUserOverview(ctrl.DB, actor.UserID, time.Now())
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Prayer statistics", stats)
}

// 🟢 GET /api/a/prayers/stats (founder: own area aggregate)
func (ctrl *PrayerController) AreaStats(c *fiber.Ctx) error {
	actor, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	if actor.AreaID == nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Founder account has no area assigned")
	}
	from, to, err := parseRange(c, 30)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date range, expected YYYY-MM-DD")
	}

	stats, err := service.GetAreaStats(ctrl.DB, *actor.AreaID, from, to)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Area prayer statistics", stats)
}

// 🟢 GET /api/o/prayers/stats (superadmin: global, optionally one area)
func (ctrl *PrayerController) GlobalStats(c *fiber.Ctx) error {
	from, to, err := parseRange(c, 30)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date range, expected YYYY-MM-DD")
	}

	if s := strings.TrimSpace(c.Query("area_id")); s != "" {
		areaID, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid area ID")
		}
		stats, err := service.GetAreaStats(ctrl.DB, areaID, from, to)
		if err != nil {
			return helper.JsonAppError(c, err)
		}
		return helper.JsonOK(c, "Area prayer statistics", stats)
	}

	stats, err := service.GetGlobalStats(ctrl.DB, from, to)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Global prayer statistics", stats)
}
