package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/academics/attendance/dto"
	"schoolku_backend/internals/features/academics/attendance/model"
	"schoolku_backend/internals/features/academics/attendance/service"
	studentModel "schoolku_backend/internals/features/academics/students/model"
	employeeModel "schoolku_backend/internals/features/hr/employees/model"
	helper "schoolku_backend/internals/helpers"
)

type AttendanceHandler struct {
	DB *gorm.DB
}

func NewAttendanceHandler(db *gorm.DB) *AttendanceHandler { return &AttendanceHandler{DB: db} }

var validate = validator.New()

/* ==============================
   MARKING (upsert per hari)
============================== */

// POST /api/a/attendance/students
func (h *AttendanceHandler) MarkStudent(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.StudentAttendanceMarkDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var count int64
	if err := h.DB.Model(&studentModel.StudentModel{}).
		Where("student_id = ? AND student_institute_id = ?", req.StudentID, instituteID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa siswa")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}

	day := req.Date.Truncate(24 * time.Hour)

	var record model.StudentAttendanceModel
	err = h.DB.
		Where("student_attendance_student_id = ? AND student_attendance_date = ?", req.StudentID, day).
		First(&record).Error
	switch {
	case err == nil:
		if err := h.DB.Model(&record).
			Update("student_attendance_status", req.Status).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan absensi")
		}
	case err == gorm.ErrRecordNotFound:
		record = model.StudentAttendanceModel{
			StudentAttendanceInstituteID: instituteID,
			StudentAttendanceStudentID:   req.StudentID,
			StudentAttendanceClassID:     req.ClassID,
			StudentAttendanceSectionID:   req.SectionID,
			StudentAttendanceDate:        day,
			StudentAttendanceStatus:      req.Status,
		}
		if err := h.DB.Create(&record).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan absensi")
		}
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa absensi")
	}

	return helper.JsonOK(c, "Absensi siswa tersimpan", fiber.Map{
		"student_id": req.StudentID,
		"date":       day.Format("2006-01-02"),
		"status":     req.Status,
	})
}

// POST /api/a/attendance/employees
func (h *AttendanceHandler) MarkEmployee(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.EmployeeAttendanceMarkDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var count int64
	if err := h.DB.Model(&employeeModel.EmployeeModel{}).
		Where("employee_id = ? AND employee_institute_id = ?", req.EmployeeID, instituteID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa pegawai")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pegawai tidak ditemukan")
	}

	day := req.Date.Truncate(24 * time.Hour)

	var record model.EmployeeAttendanceModel
	err = h.DB.
		Where("employee_attendance_employee_id = ? AND employee_attendance_date = ?", req.EmployeeID, day).
		First(&record).Error
	switch {
	case err == nil:
		if err := h.DB.Model(&record).
			Update("employee_attendance_status", req.Status).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan absensi")
		}
	case err == gorm.ErrRecordNotFound:
		record = model.EmployeeAttendanceModel{
			EmployeeAttendanceInstituteID: instituteID,
			EmployeeAttendanceEmployeeID:  req.EmployeeID,
			EmployeeAttendanceDate:        day,
			EmployeeAttendanceStatus:      req.Status,
		}
		if err := h.DB.Create(&record).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan absensi")
		}
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa absensi")
	}

	return helper.JsonOK(c, "Absensi pegawai tersimpan", fiber.Map{
		"employee_id": req.EmployeeID,
		"date":        day.Format("2006-01-02"),
		"status":      req.Status,
	})
}

/* ==============================
   REPORTS
============================== */

func parseDateQuery(c *fiber.Ctx, key string) (time.Time, error) {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, key+" wajib diisi (YYYY-MM-DD)")
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, key+" tidak valid (YYYY-MM-DD)")
	}
	return t, nil
}

// GET /api/a/attendance/reports/students?start_date=&end_date=&class_id=&section_id=
func (h *AttendanceHandler) StudentRangeReport(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	start, err := parseDateQuery(c, "start_date")
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.(*fiber.Error).Message)
	}
	end, err := parseDateQuery(c, "end_date")
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.(*fiber.Error).Message)
	}

	tx := h.DB.Table("student_attendances AS sa").
		Select(`sa.student_attendance_student_id AS student_id,
			s.student_name,
			s.student_class_name AS class_name,
			s.student_section AS section,
			sa.student_attendance_date AS date,
			sa.student_attendance_status AS status`).
		Joins("JOIN students s ON s.student_id = sa.student_attendance_student_id").
		Where("sa.student_attendance_institute_id = ?", instituteID).
		Where("sa.student_attendance_date BETWEEN ? AND ?", start, end)

	if v := strings.TrimSpace(c.Query("class_id")); v != "" {
		classID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
		}
		tx = tx.Where("sa.student_attendance_class_id = ?", classID)
	}
	if v := strings.TrimSpace(c.Query("section_id")); v != "" {
		sectionID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "section_id tidak valid")
		}
		tx = tx.Where("sa.student_attendance_section_id = ?", sectionID)
	}

	var rows []dto.StudentAttendanceRow
	if err := tx.Order("sa.student_attendance_date ASC").Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan absensi")
	}
	return helper.JsonOK(c, "OK", rows)
}

// GET /api/a/attendance/reports/employees?start_date=&end_date=
func (h *AttendanceHandler) EmployeeRangeReport(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	start, err := parseDateQuery(c, "start_date")
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.(*fiber.Error).Message)
	}
	end, err := parseDateQuery(c, "end_date")
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.(*fiber.Error).Message)
	}

	var rows []dto.EmployeeAttendanceRow
	if err := h.DB.Table("employee_attendances AS ea").
		Select(`ea.employee_attendance_employee_id AS employee_id,
			e.employee_name,
			ea.employee_attendance_date AS date,
			ea.employee_attendance_status AS status`).
		Joins("JOIN employees e ON e.employee_id = ea.employee_attendance_employee_id").
		Where("ea.employee_attendance_institute_id = ?", instituteID).
		Where("ea.employee_attendance_date BETWEEN ? AND ?", start, end).
		Order("ea.employee_attendance_date ASC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan absensi")
	}
	return helper.JsonOK(c, "OK", rows)
}

// GET /api/a/attendance/reports/class-wise?class_id=&section_id=&date=
func (h *AttendanceHandler) ClassWiseReport(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	classID, err := uuid.Parse(c.Query("class_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
	}
	day, err := parseDateQuery(c, "date")
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.(*fiber.Error).Message)
	}

	tx := h.DB.Table("student_attendances AS sa").
		Select(`sa.student_attendance_student_id AS student_id,
			s.student_name,
			sa.student_attendance_status AS status`).
		Joins("JOIN students s ON s.student_id = sa.student_attendance_student_id").
		Where("sa.student_attendance_institute_id = ?", instituteID).
		Where("sa.student_attendance_class_id = ?", classID).
		Where("sa.student_attendance_date = ?", day)

	if v := strings.TrimSpace(c.Query("section_id")); v != "" {
		sectionID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "section_id tidak valid")
		}
		tx = tx.Where("sa.student_attendance_section_id = ?", sectionID)
	}

	var rows []dto.ClassWiseRow
	if err := tx.Order("s.student_name ASC").Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan absensi")
	}
	return helper.JsonOK(c, "OK", rows)
}

// GET /api/a/attendance/reports/daily?class_id=&section_id=&date=
func (h *AttendanceHandler) DailyReport(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	classID, err := uuid.Parse(c.Query("class_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
	}

	day := time.Now().Truncate(24 * time.Hour)
	if v := strings.TrimSpace(c.Query("date")); v != "" {
		day, err = time.Parse("2006-01-02", v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date tidak valid (YYYY-MM-DD)")
		}
	}

	tx := h.DB.Model(&model.StudentAttendanceModel{}).
		Where("student_attendance_institute_id = ?", instituteID).
		Where("student_attendance_class_id = ?", classID).
		Where("student_attendance_date = ?", day)
	if v := strings.TrimSpace(c.Query("section_id")); v != "" {
		sectionID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "section_id tidak valid")
		}
		tx = tx.Where("student_attendance_section_id = ?", sectionID)
	}

	var rows []service.StatusCount
	if err := tx.
		Select("student_attendance_status AS status, COUNT(*) AS count").
		Group("student_attendance_status").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan harian")
	}

	summary := service.Summarize(rows)
	return helper.JsonOK(c, "OK", fiber.Map{
		"date":       day.Format("2006-01-02"),
		"class_id":   classID,
		"total":      summary.Total,
		"present":    summary.Present,
		"absent":     summary.Absent,
		"leave":      summary.Leave,
		"percentage": summary.Percentage,
	})
}

// GET /api/a/attendance/reports/monthly?class_id=&section_id=&month=YYYY-MM
func (h *AttendanceHandler) MonthlyReport(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	month := strings.TrimSpace(c.Query("month"))
	if _, err := time.Parse("2006-01", month); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "month tidak valid (YYYY-MM)")
	}

	tx := h.DB.Model(&model.StudentAttendanceModel{}).
		Where("student_attendance_institute_id = ?", instituteID).
		Where("to_char(student_attendance_date, 'YYYY-MM') = ?", month)

	if v := strings.TrimSpace(c.Query("class_id")); v != "" {
		classID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
		}
		tx = tx.Where("student_attendance_class_id = ?", classID)
	}
	if v := strings.TrimSpace(c.Query("section_id")); v != "" {
		sectionID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "section_id tidak valid")
		}
		tx = tx.Where("student_attendance_section_id = ?", sectionID)
	}

	var rows []service.StatusCount
	if err := tx.
		Select("student_attendance_status AS status, COUNT(*) AS count").
		Group("student_attendance_status").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan bulanan")
	}

	summary := service.Summarize(rows)
	return helper.JsonOK(c, "OK", fiber.Map{
		"month":                 month,
		"total_entries":         summary.Total,
		"present":               summary.Present,
		"absent":                summary.Absent,
		"leave":                 summary.Leave,
		"attendance_percentage": summary.Percentage,
	})
}

// GET /api/a/attendance/reports/employees/monthly?month=YYYY-MM
func (h *AttendanceHandler) EmployeeMonthlySummary(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	month := strings.TrimSpace(c.Query("month"))
	if _, err := time.Parse("2006-01", month); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "month tidak valid (YYYY-MM)")
	}

	var rows []service.StatusCount
	if err := h.DB.Model(&model.EmployeeAttendanceModel{}).
		Select("employee_attendance_status AS status, COUNT(*) AS count").
		Where("employee_attendance_institute_id = ?", instituteID).
		Where("to_char(employee_attendance_date, 'YYYY-MM') = ?", month).
		Group("employee_attendance_status").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil rekap bulanan")
	}

	summary := service.Summarize(rows)
	return helper.JsonOK(c, "OK", fiber.Map{
		"month":         month,
		"total_entries": summary.Total,
		"present":       summary.Present,
		"absent":        summary.Absent,
		"leave":         summary.Leave,
	})
}
