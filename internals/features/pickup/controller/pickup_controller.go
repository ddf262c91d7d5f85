// internals/features/pickup/controller/pickup_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"masjidcare_backend/internals/features/pickup/dto"
	"masjidcare_backend/internals/features/pickup/service"
	helper "masjidcare_backend/internals/helpers"
)

type PickupController struct {
	DB *gorm.DB
}

func NewPickupController(db *gorm.DB) *PickupController {
	return &PickupController{DB: db}
}

// 🟢 POST /api/u/pickup-requests
func (ctrl *PickupController) CreateRequest(c *fiber.Ctx) error {
	actor, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var req dto.CreatePickupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	created, err := service.CreateRequest(ctrl.DB, actor, req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Pickup request submitted", dto.NewPickupRequestResponse(created))
}

// 🟢 GET /api/u/pickup-requests (role-scoped list)
func (ctrl *PickupController) ListRequests(c *fiber.Ctx) error {
	actor, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var q dto.ListPickupQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	rows, total, err := service.List(ctrl.DB, actor, q, paging)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonList(c, "Pickup requests",
		dto.NewPickupRequestResponses(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/u/pickup-requests/:id
func (ctrl *PickupController) GetRequest(c *fiber.Ctx) error {
	actor, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid pickup request ID")
	}

	req, err := service.GetByID(ctrl.DB, actor, id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Pickup request found", dto.NewPickupRequestResponse(req))
}

// 🟢 GET /api/u/pickup-requests/:id/history
func (ctrl *PickupController) GetRequestHistory(c *fiber.Ctx) error {
	actor, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid pickup request ID")
	}

	rows, err := service.ListHistory(ctrl.DB, actor, id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Pickup request history", dto.NewPickupHistoryResponses(rows))
}

// 🟡 PATCH /api/a/pickup-requests/:id (action in body: approve|reject|start|complete)
func (ctrl *PickupController) Decide(c *fiber.Ctx) error {
	actor, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid pickup request ID")
	}

	var req dto.DecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var updated interface{}
	switch req.Action {
	case "approve":
		m, err := service.Approve(ctrl.DB, actor, id, req.Driver)
		if err != nil {
			return helper.JsonAppError(c, err)
		}
		updated = dto.NewPickupRequestResponse(m)
	case "reject":
		m, err := service.Reject(ctrl.DB, actor, id, req.Reason)
		if err != nil {
			return helper.JsonAppError(c, err)
		}
		updated = dto.NewPickupRequestResponse(m)
	case "start":
		m, err := service.Start(ctrl.DB, actor, id)
		if err != nil {
			return helper.JsonAppError(c, err)
		}
		updated = dto.NewPickupRequestResponse(m)
	case "complete":
		m, err := service.Complete(ctrl.DB, actor, id)
		if err != nil {
			return helper.JsonAppError(c, err)
		}
		updated = dto.NewPickupRequestResponse(m)
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown action")
	}

	log.Printf("[INFO] pickup request %s: %s by %s", id, req.Action, actor.UserID)
	return helper.JsonUpdated(c, "Pickup request updated", updated)
}

// 🔴 DELETE /api/u/pickup-requests/:id (cancel)
func (ctrl *PickupController) CancelRequest(c *fiber.Ctx) error {
	actor, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid pickup request ID")
	}

	m, err := service.Cancel(ctrl.DB, actor, id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonDeleted(c, "Pickup request cancelled", dto.NewPickupRequestResponse(m))
}
