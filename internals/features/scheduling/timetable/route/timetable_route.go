package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/scheduling/timetable/controller"
	"schoolku_backend/internals/middlewares/auth"
)

func TimetableRoutes(admin fiber.Router, user fiber.Router, db *gorm.DB) {
	h := controller.NewTimetableHandler(db)

	guard := auth.EmployeePermission(constants.PermTimetable)

	tt := admin.Group("/timetable", guard)
	tt.Get("/", h.List)
	tt.Post("/", h.AddOrUpdate)
	tt.Get("/teacher", h.TeacherView)
	tt.Get("/weekdays", h.ListWeekdays)
	tt.Get("/periods", h.ListPeriods)

	// master hari & jam pelajaran hanya admin
	ttAdmin := admin.Group("/timetable", auth.AdminOrSuperadmin())
	ttAdmin.Post("/weekdays", h.AddWeekday)
	ttAdmin.Post("/periods", h.AddPeriod)

	user.Get("/timetable/me", h.StudentView)
}
