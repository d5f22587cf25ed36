package auth

import (
	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/constants"
	helper "schoolku_backend/internals/helpers"
)

// OnlySuperadmin: guard endpoint global (kelola institute dsb.)
func OnlySuperadmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helper.GetRoleFromLocals(c) != constants.RoleSuperadmin {
			return helper.JsonError(c, fiber.StatusForbidden, "SuperAdmin only")
		}
		return c.Next()
	}
}

// AdminOrSuperadmin: guard endpoint administrasi tenant
func AdminOrSuperadmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch helper.GetRoleFromLocals(c) {
		case constants.RoleAdmin, constants.RoleSuperadmin:
			return c.Next()
		}
		return helper.JsonError(c, fiber.StatusForbidden, "Admin only")
	}
}

// EmployeePermission: admin/superadmin selalu lolos; employee butuh flag
// permission yang sesuai di claim token (diisi saat login dari
// employee_permissions). Role lain ditolak.
func EmployeePermission(perm string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch helper.GetRoleFromLocals(c) {
		case constants.RoleAdmin, constants.RoleSuperadmin:
			return c.Next()
		case constants.RoleEmployee:
			if helper.HasPermission(c, perm) {
				return c.Next()
			}
			return helper.JsonError(c, fiber.StatusForbidden, "Permission denied")
		}
		return helper.JsonError(c, fiber.StatusForbidden, "Forbidden")
	}
}
