package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authModel "schoolku_backend/internals/features/users/auth/model"
	"schoolku_backend/internals/features/users/auth/service"
	helper "schoolku_backend/internals/helpers"
)

type AuthHandler struct {
	DB *gorm.DB
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	return service.Login(h.DB, c)
}

func (h *AuthHandler) LoginGoogle(c *fiber.Ctx) error {
	return service.LoginGoogle(h.DB, c)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return service.Logout(h.DB, c)
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	return service.ChangePassword(h.DB, c)
}

// Me: profil singkat dari token + row user terkini
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var user authModel.UserModel
	if err := h.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"user_id":      user.UserID,
		"user_name":    user.UserName,
		"user_email":   user.UserEmail,
		"role":         user.UserRole,
		"institute_id": user.UserInstituteID,
		"permissions":  helper.GetPermissionsFromLocals(c),
	})
}
