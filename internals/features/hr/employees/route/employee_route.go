package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/hr/employees/controller"
	"schoolku_backend/internals/middlewares/auth"
)

// EmployeeRoutes — manajemen pegawai hanya untuk admin/superadmin.
func EmployeeRoutes(api fiber.Router, db *gorm.DB) {
	h := controller.NewEmployeeHandler(db)

	employees := api.Group("/employees", auth.AdminOrSuperadmin())
	employees.Post("/", h.Create)
	employees.Get("/", h.List)
	employees.Get("/:id", h.Detail)
	employees.Put("/:id", h.Update)
	employees.Delete("/:id", h.Delete)
	employees.Put("/:id/permissions", h.SetPermissions)
	employees.Post("/:id/login", h.CreateLogin)
	employees.Put("/:id/login/reset", h.ResetLogin)
}
