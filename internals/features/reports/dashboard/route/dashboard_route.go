package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/reports/dashboard/controller"
	"schoolku_backend/internals/middlewares/auth"
)

func DashboardRoutes(admin fiber.Router, db *gorm.DB) {
	h := controller.NewDashboardHandler(db)

	admin.Get("/dashboard", auth.AdminOrSuperadmin(), h.AdminDashboard)
	admin.Get("/dashboard/employee", h.EmployeeDashboard)
}
