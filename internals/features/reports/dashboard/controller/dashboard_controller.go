package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceModel "schoolku_backend/internals/features/academics/attendance/model"
	studentModel "schoolku_backend/internals/features/academics/students/model"
	examModel "schoolku_backend/internals/features/exams/exams/model"
	feeModel "schoolku_backend/internals/features/finance/fees/model"
	employeeModel "schoolku_backend/internals/features/hr/employees/model"
	helper "schoolku_backend/internals/helpers"
)

type DashboardHandler struct {
	DB *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler { return &DashboardHandler{DB: db} }

// GET /api/a/dashboard — ringkasan angka untuk beranda admin.
func (h *DashboardHandler) AdminDashboard(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	today := time.Now().Truncate(24 * time.Hour)

	var students, employees, studentsPresent, employeesPresent, defaulters, exams int64

	if err := h.DB.Model(&studentModel.StudentModel{}).
		Where("student_institute_id = ?", instituteID).
		Count(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung siswa")
	}

	if err := h.DB.Model(&employeeModel.EmployeeModel{}).
		Where("employee_institute_id = ?", instituteID).
		Count(&employees).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pegawai")
	}

	if err := h.DB.Model(&attendanceModel.StudentAttendanceModel{}).
		Where("student_attendance_institute_id = ? AND student_attendance_date = ? AND student_attendance_status = ?",
			instituteID, today, attendanceModel.StatusPresent).
		Count(&studentsPresent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung kehadiran siswa")
	}

	if err := h.DB.Model(&attendanceModel.EmployeeAttendanceModel{}).
		Where("employee_attendance_institute_id = ? AND employee_attendance_date = ? AND employee_attendance_status = ?",
			instituteID, today, attendanceModel.StatusPresent).
		Count(&employeesPresent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung kehadiran pegawai")
	}

	if err := h.DB.Model(&feeModel.StudentFeeModel{}).
		Where("student_fee_institute_id = ? AND student_fee_is_paid = ?", instituteID, false).
		Count(&defaulters).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung tunggakan")
	}

	if err := h.DB.Model(&examModel.ExamModel{}).
		Where("exam_institute_id = ?", instituteID).
		Count(&exams).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung ujian")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"students":                students,
		"employees":               employees,
		"students_present_today":  studentsPresent,
		"employees_present_today": employeesPresent,
		"fee_defaulters":          defaulters,
		"exams":                   exams,
	})
}

// GET /api/a/dashboard/employee — status absensi pegawai yang sedang login.
func (h *DashboardHandler) EmployeeDashboard(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var employee employeeModel.EmployeeModel
	if err := h.DB.
		Where("employee_user_id = ? AND employee_institute_id = ?", userID, instituteID).
		First(&employee).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusForbidden, "Profil pegawai tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	today := time.Now().Truncate(24 * time.Hour)

	var row attendanceModel.EmployeeAttendanceModel
	marked := true
	if err := h.DB.
		Where("employee_attendance_employee_id = ? AND employee_attendance_date = ?",
			employee.EmployeeID, today).
		First(&row).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil absensi")
		}
		marked = false
	}

	resp := fiber.Map{
		"employee_id":       employee.EmployeeID,
		"employee_name":     employee.EmployeeName,
		"attendance_marked": marked,
		"today":             today.Format("2006-01-02"),
		"attendance_status": nil,
	}
	if marked {
		resp["attendance_status"] = row.EmployeeAttendanceStatus
	}
	return helper.JsonOK(c, "OK", resp)
}
