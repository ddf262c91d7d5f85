// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"masjidcare_backend/internals/features/users/auth/dto"
	"masjidcare_backend/internals/features/users/auth/service"
	userDTO "masjidcare_backend/internals/features/users/user/dto"
	helper "masjidcare_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// 🟢 POST /api/n/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	result, err := service.Login(ctrl.DB, req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	// Cookie for the browser dashboard; API clients use the body token.
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    result.AccessToken,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	return helper.JsonOK(c, "Login successful", result)
}

// 🟢 POST /api/n/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	user, err := service.Register(ctrl.DB, req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Registration successful", userDTO.NewMemberResponse(user))
}

// 🔴 POST /api/u/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	tokenString := ""
	if h := c.Get("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenString = parts[1]
		}
	}
	if tokenString == "" {
		tokenString = c.Cookies("access_token")
	}
	if tokenString == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - missing token")
	}

	if err := service.Logout(ctrl.DB, tokenString); err != nil {
		return helper.JsonAppError(c, err)
	}

	c.ClearCookie("access_token")
	return helper.JsonOK(c, "Logged out", nil)
}

// 🟢 GET /api/u/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	me, err := service.Me(ctrl.DB, p.UserID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Profile", me)
}

// 🟡 POST /api/u/change-password
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	if err := service.ChangePassword(ctrl.DB, p.UserID, req); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "Password changed", nil)
}
