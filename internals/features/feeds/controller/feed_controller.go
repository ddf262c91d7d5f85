// internals/features/feeds/controller/feed_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"masjidcare_backend/internals/features/feeds/dto"
	"masjidcare_backend/internals/features/feeds/service"
	helper "masjidcare_backend/internals/helpers"
)

type FeedController struct {
	DB *gorm.DB
}

func NewFeedController(db *gorm.DB) *FeedController {
	return &FeedController{DB: db}
}

// 🟢 GET /api/u/feeds
func (ctrl *FeedController) ListFeeds(c *fiber.Ctx) error {
	actor, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var q dto.ListFeedQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}
	paging := helper.ResolvePaging(c, 20, 50)

	rows, total, err := service.ListFeeds(ctrl.DB, actor, q, paging)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonList(c, "Announcements", dto.NewFeedResponses(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/u/feeds/:id (bumps the view counter)
func (ctrl *FeedController) GetFeed(c *fiber.Ctx) error {
	actor, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid feed ID")
	}

	feed, err := service.GetFeed(ctrl.DB, actor, id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Announcement", dto.NewFeedResponse(feed))
}

// 🟢 POST /api/a/feeds
func (ctrl *FeedController) CreateFeed(c *fiber.Ctx) error {
	actor, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var req dto.CreateFeedRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	feed, err := service.CreateFeed(ctrl.DB, actor, req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Announcement published", dto.NewFeedResponse(feed))
}

// 🟡 PATCH /api/a/feeds/:id
func (ctrl *FeedController) UpdateFeed(c *fiber.Ctx) error {
	actor, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid feed ID")
	}

	var req dto.UpdateFeedRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	feed, err := service.UpdateFeed(ctrl.DB, actor, id, req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "Announcement updated", dto.NewFeedResponse(feed))
}

// 🔴 DELETE /api/a/feeds/:id
func (ctrl *FeedController) DeleteFeed(c *fiber.Ctx) error {
	actor, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid feed ID")
	}

	if err := service.DeleteFeed(ctrl.DB, actor, id); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonDeleted(c, "Announcement deleted", nil)
}
