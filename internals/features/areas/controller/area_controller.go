// internals/features/areas/controller/area_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"masjidcare_backend/internals/features/areas/dto"
	"masjidcare_backend/internals/features/areas/service"
	helper "masjidcare_backend/internals/helpers"
)

type AreaController struct {
	DB *gorm.DB
}

func NewAreaController(db *gorm.DB) *AreaController {
	return &AreaController{DB: db}
}

// 🟢 GET /api/n/areas (public picker, active only)
func (ctrl *AreaController) ListActiveAreas(c *fiber.Ctx) error {
	rows, err := service.ListActiveAreas(ctrl.DB)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Areas", dto.NewAreaResponses(rows))
}

// 🟢 GET /api/o/areas
func (ctrl *AreaController) ListAreas(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	rows, total, err := service.ListAreas(ctrl.DB, c.Query("search"), paging)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonList(c, "Areas", dto.NewAreaResponses(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/o/areas/:id
func (ctrl *AreaController) GetArea(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid area ID")
	}
	area, err := service.GetArea(ctrl.DB, id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Area found", dto.NewAreaResponse(area))
}

// 🟢 POST /api/o/areas
func (ctrl *AreaController) CreateArea(c *fiber.Ctx) error {
	var req dto.CreateAreaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	area, err := service.CreateArea(ctrl.DB, req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Area created", dto.NewAreaResponse(area))
}

// 🟡 PATCH /api/o/areas/:id
func (ctrl *AreaController) UpdateArea(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid area ID")
	}

	var req dto.UpdateAreaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	area, err := service.UpdateArea(ctrl.DB, id, req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "Area updated", dto.NewAreaResponse(area))
}

// 🟡 PATCH /api/a/areas/:id/prayer-times (founder, own area)
func (ctrl *AreaController) UpdatePrayerTimes(c *fiber.Ctx) error {
	actor, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid area ID")
	}

	var req dto.UpdatePrayerTimesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	area, err := service.UpdatePrayerTimes(ctrl.DB, actor, id, req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "Prayer times updated", dto.NewAreaResponse(area))
}

// 🟡 POST /api/o/areas/:id/founder
func (ctrl *AreaController) AssignFounder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid area ID")
	}

	var req dto.AssignFounderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	area, err := service.AssignFounder(ctrl.DB, id, req.UserID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "Founder assigned", dto.NewAreaResponse(area))
}

// 🔴 DELETE /api/o/areas/:id
func (ctrl *AreaController) DeleteArea(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid area ID")
	}
	if err := service.DeleteArea(ctrl.DB, id); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonDeleted(c, "Area deleted", nil)
}
