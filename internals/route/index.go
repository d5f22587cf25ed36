package routes

import (
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	attendanceRoute "schoolku_backend/internals/features/academics/attendance/route"
	classRoute "schoolku_backend/internals/features/academics/classes/route"
	studentRoute "schoolku_backend/internals/features/academics/students/route"
	examRoute "schoolku_backend/internals/features/exams/exams/route"
	feeRoute "schoolku_backend/internals/features/finance/fees/route"
	feeService "schoolku_backend/internals/features/finance/fees/service"
	employeeRoute "schoolku_backend/internals/features/hr/employees/route"
	instituteRoute "schoolku_backend/internals/features/lembaga/institutes/route"
	messageRoute "schoolku_backend/internals/features/messaging/messages/route"
	dashboardRoute "schoolku_backend/internals/features/reports/dashboard/route"
	timetableRoute "schoolku_backend/internals/features/scheduling/timetable/route"
	authRoute "schoolku_backend/internals/features/users/auth/route"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== WEBHOOK (tanpa JWT) =====================
	log.Println("[INFO] Setting up webhook routes...")
	feeRoute.FeeWebhookRoutes(app, db)

	// ===== Midtrans config =====
	midtransServerKey := configs.GetEnv("MIDTRANS_SERVER_KEY", "")
	useMidtransProd := func() bool {
		if v := configs.GetEnv("MIDTRANS_USE_PROD", ""); v != "" {
			b, err := strconv.ParseBool(v)
			if err == nil {
				return b
			}
		}
		return false
	}()
	if midtransServerKey != "" {
		feeService.InitMidtrans(midtransServerKey, useMidtransProd)
	} else {
		log.Println("[INFO] MIDTRANS_SERVER_KEY kosong, pembayaran online nonaktif")
	}

	// ===================== GROUPS =====================

	// ADMIN / STAF → JWT + role check per route
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware(db))

	// USER → JWT saja (self-service: siswa, guru)
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Institute routes...")
	instituteRoute.InstituteRoutes(admin, db)

	log.Println("[INFO] Mounting Class routes...")
	classRoute.ClassRoutes(admin, db)

	log.Println("[INFO] Mounting Student routes...")
	studentRoute.StudentRoutes(admin, user, db)

	log.Println("[INFO] Mounting Attendance routes...")
	attendanceRoute.AttendanceRoutes(admin, db)

	log.Println("[INFO] Mounting Employee routes...")
	employeeRoute.EmployeeRoutes(admin, db)

	log.Println("[INFO] Mounting Fee routes...")
	feeRoute.FeeRoutes(admin, db)

	log.Println("[INFO] Mounting Exam routes...")
	examRoute.ExamRoutes(admin, user, db)

	log.Println("[INFO] Mounting Timetable routes...")
	timetableRoute.TimetableRoutes(admin, user, db)

	log.Println("[INFO] Mounting Message routes...")
	messageRoute.MessageRoutes(admin, user, db)

	log.Println("[INFO] Mounting Dashboard routes...")
	dashboardRoute.DashboardRoutes(admin, db)
}
