package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/academics/classes/controller"
	"schoolku_backend/internals/middlewares/auth"
)

// ClassRoutes — CRUD kelas/section/mapel, admin atau employee dengan izin siswa.
func ClassRoutes(api fiber.Router, db *gorm.DB) {
	h := controller.NewClassHandler(db)

	guard := auth.EmployeePermission(constants.PermStudents)

	classes := api.Group("/classes", guard)
	classes.Post("/", h.CreateClass)
	classes.Get("/", h.ListClasses)
	classes.Put("/:id", h.UpdateClass)
	classes.Delete("/:id", h.DeleteClass)
	classes.Get("/:id/sections", h.ListSectionsByClass)
	classes.Get("/:id/subjects", h.ListSubjectsByClass)

	sections := api.Group("/sections", guard)
	sections.Post("/", h.CreateSection)
	sections.Delete("/:id", h.DeleteSection)

	subjects := api.Group("/subjects", guard)
	subjects.Post("/", h.CreateSubject)
	subjects.Delete("/:id", h.DeleteSubject)
}
