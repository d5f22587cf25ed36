package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/academics/students/controller"
	"schoolku_backend/internals/middlewares/auth"
)

// StudentRoutes — /api/a untuk admin/staff, /api/u untuk siswa yang login.
func StudentRoutes(admin fiber.Router, user fiber.Router, db *gorm.DB) {
	h := controller.NewStudentHandler(db)

	students := admin.Group("/students", auth.EmployeePermission(constants.PermStudents))
	students.Post("/", h.Create)
	students.Get("/", h.List)
	students.Get("/search", h.Search)
	students.Get("/stats/caste", h.CasteBreakdown)
	students.Get("/stats/gender", h.GenderBreakdown)
	students.Get("/by-class/:class_id", h.ByClassSection)
	students.Get("/:id", h.Detail)
	students.Put("/:id", h.Update)
	students.Delete("/:id", h.Delete)
	students.Post("/:id/login", h.CreateLogin)
	students.Put("/:id/login/reset", h.ResetLogin)
	students.Post("/:id/photo", h.UploadPhoto)

	user.Get("/students/me", h.Me)
}
