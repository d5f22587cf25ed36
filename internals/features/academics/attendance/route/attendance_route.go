package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/academics/attendance/controller"
	"schoolku_backend/internals/middlewares/auth"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	h := controller.NewAttendanceHandler(db)

	att := api.Group("/attendance", auth.EmployeePermission(constants.PermAttendance))
	att.Post("/students", h.MarkStudent)
	att.Get("/reports/students", h.StudentRangeReport)
	att.Get("/reports/class-wise", h.ClassWiseReport)
	att.Get("/reports/daily", h.DailyReport)
	att.Get("/reports/monthly", h.MonthlyReport)

	// absensi pegawai khusus admin
	attAdmin := api.Group("/attendance", auth.AdminOrSuperadmin())
	attAdmin.Post("/employees", h.MarkEmployee)
	attAdmin.Get("/reports/employees", h.EmployeeRangeReport)
	attAdmin.Get("/reports/employees/monthly", h.EmployeeMonthlySummary)
}
