package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/exams/exams/controller"
	"schoolku_backend/internals/middlewares/auth"
)

func ExamRoutes(admin fiber.Router, user fiber.Router, db *gorm.DB) {
	h := controller.NewExamHandler(db)

	guard := auth.EmployeePermission(constants.PermExams)

	exams := admin.Group("/exams", guard)
	exams.Get("/", h.List)
	exams.Get("/marks", h.GetMarks)
	exams.Post("/marks", h.SaveMarks)
	exams.Get("/:id", h.Detail)
	exams.Get("/:id/schedule", h.GetSchedule)

	// pembuatan ujian & jadwal hanya admin
	examsAdmin := admin.Group("/exams", auth.AdminOrSuperadmin())
	examsAdmin.Post("/", h.Create)
	examsAdmin.Post("/:id/schedule", h.CreateSchedule)

	results := admin.Group("/results", guard)
	results.Get("/student/:student_id/exam/:exam_id", h.ResultCard)

	user.Get("/results/me/exam/:exam_id", h.MyResult)
}
