package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "schoolku_backend/internals/features/academics/students/model"
	employeeModel "schoolku_backend/internals/features/hr/employees/model"
	"schoolku_backend/internals/features/scheduling/timetable/dto"
	"schoolku_backend/internals/features/scheduling/timetable/model"
	"schoolku_backend/internals/features/scheduling/timetable/service"
	helper "schoolku_backend/internals/helpers"
)

type TimetableHandler struct {
	DB *gorm.DB
}

func NewTimetableHandler(db *gorm.DB) *TimetableHandler { return &TimetableHandler{DB: db} }

var validate = validator.New()

/* ==============================
   MASTER — weekdays & periods
============================== */

// POST /api/a/timetable/weekdays
func (h *TimetableHandler) AddWeekday(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.WeekdayCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	m := model.WeekdayModel{
		WeekdayInstituteID: instituteID,
		WeekdayName:        strings.TrimSpace(req.Name),
		WeekdayIsActive:    true,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah hari")
	}
	return helper.JsonCreated(c, "Hari berhasil ditambahkan", m)
}

// GET /api/a/timetable/weekdays
func (h *TimetableHandler) ListWeekdays(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var items []model.WeekdayModel
	if err := h.DB.
		Where("weekday_institute_id = ? AND weekday_is_active = ?", instituteID, true).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil hari")
	}
	return helper.JsonOK(c, "OK", items)
}

// POST /api/a/timetable/periods
func (h *TimetableHandler) AddPeriod(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.PeriodCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	m := model.PeriodModel{
		PeriodInstituteID: instituteID,
		PeriodName:        strings.TrimSpace(req.Name),
		PeriodStartTime:   req.StartTime,
		PeriodEndTime:     req.EndTime,
		PeriodOrderNo:     req.OrderNo,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah jam pelajaran")
	}
	return helper.JsonCreated(c, "Jam pelajaran berhasil ditambahkan", m)
}

// GET /api/a/timetable/periods
func (h *TimetableHandler) ListPeriods(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var items []model.PeriodModel
	if err := h.DB.
		Where("period_institute_id = ?", instituteID).
		Order("period_order_no ASC").
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jam pelajaran")
	}
	return helper.JsonOK(c, "OK", items)
}

/* ==============================
   SLOT — add or update
============================== */

// POST /api/a/timetable — upsert slot (class+section+weekday+period).
// Guru yang sudah mengajar di slot waktu sama di kelas lain → 409.
func (h *TimetableHandler) AddOrUpdate(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.TimetableUpsertDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var weekdayCount int64
	if err := h.DB.Model(&model.WeekdayModel{}).
		Where("weekday_id = ? AND weekday_institute_id = ? AND weekday_is_active = ?",
			req.WeekdayID, instituteID, true).
		Count(&weekdayCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa hari")
	}
	if weekdayCount == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Hari tidak valid")
	}

	var teacherCount int64
	if err := h.DB.Model(&employeeModel.EmployeeModel{}).
		Where("employee_id = ? AND employee_institute_id = ?", req.TeacherID, instituteID).
		Count(&teacherCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa guru")
	}
	if teacherCount == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Guru tidak valid")
	}

	// slot yang sudah ada untuk class+section+weekday+period
	var record model.TimetableModel
	found := true
	tx := h.DB.
		Where("timetable_institute_id = ?", instituteID).
		Where("timetable_class_id = ?", req.ClassID).
		Where("timetable_weekday_id = ?", req.WeekdayID).
		Where("timetable_period_no = ?", req.PeriodNo)
	if req.SectionID != nil {
		tx = tx.Where("timetable_section_id = ?", *req.SectionID)
	} else {
		tx = tx.Where("timetable_section_id IS NULL")
	}
	if err := tx.First(&record).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa jadwal")
		}
		found = false
	}

	// cek bentrok guru pada weekday+period yang sama
	var sameTime []model.TimetableModel
	if err := h.DB.
		Where("timetable_institute_id = ?", instituteID).
		Where("timetable_teacher_id = ?", req.TeacherID).
		Where("timetable_weekday_id = ?", req.WeekdayID).
		Where("timetable_period_no = ?", req.PeriodNo).
		Find(&sameTime).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa bentrok jadwal")
	}

	slot := service.Slot{
		TeacherID: req.TeacherID,
		WeekdayID: req.WeekdayID,
		PeriodNo:  req.PeriodNo,
	}
	if found {
		slot.TimetableID = &record.TimetableID
	}
	if conflict := service.FindTeacherConflict(slot, sameTime); conflict != nil {
		return helper.JsonError(c, fiber.StatusConflict,
			"Guru sudah mengajar di kelas lain pada jam ini")
	}

	if found {
		record.TimetableSubjectID = req.SubjectID
		record.TimetableTeacherID = req.TeacherID
		if err := h.DB.Save(&record).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jadwal")
		}
		return helper.JsonUpdated(c, "Jadwal diperbarui", record)
	}

	record = model.TimetableModel{
		TimetableInstituteID: instituteID,
		TimetableClassID:     req.ClassID,
		TimetableSectionID:   req.SectionID,
		TimetableWeekdayID:   req.WeekdayID,
		TimetablePeriodNo:    req.PeriodNo,
		TimetableSubjectID:   req.SubjectID,
		TimetableTeacherID:   req.TeacherID,
	}
	if err := h.DB.Create(&record).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jadwal")
	}
	return helper.JsonCreated(c, "Jadwal tersimpan", record)
}

/* ==============================
   VIEWS
============================== */

func (h *TimetableHandler) joinedQuery(instituteID uuid.UUID) *gorm.DB {
	return h.DB.Table("timetables AS t").
		Select(`t.timetable_id, t.timetable_class_id AS class_id,
			t.timetable_section_id AS section_id,
			t.timetable_weekday_id AS weekday_id,
			t.timetable_period_no AS period_no,
			t.timetable_subject_id AS subject_id,
			t.timetable_teacher_id AS teacher_id,
			c.class_name, sec.section_name, w.weekday_name,
			sub.subject_name, e.employee_name AS teacher_name`).
		Joins("JOIN school_classes c ON c.class_id = t.timetable_class_id").
		Joins("LEFT JOIN sections sec ON sec.section_id = t.timetable_section_id").
		Joins("JOIN weekdays w ON w.weekday_id = t.timetable_weekday_id").
		Joins("JOIN subjects sub ON sub.subject_id = t.timetable_subject_id").
		Joins("JOIN employees e ON e.employee_id = t.timetable_teacher_id").
		Where("t.timetable_institute_id = ?", instituteID)
}

// GET /api/a/timetable?class_id=&section_id=&teacher_id=
func (h *TimetableHandler) List(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	tx := h.joinedQuery(instituteID)
	if v := c.Query("class_id"); v != "" {
		classID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
		}
		tx = tx.Where("t.timetable_class_id = ?", classID)
	}
	if v := c.Query("section_id"); v != "" {
		sectionID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "section_id tidak valid")
		}
		tx = tx.Where("t.timetable_section_id = ?", sectionID)
	}
	if v := c.Query("teacher_id"); v != "" {
		teacherID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id tidak valid")
		}
		tx = tx.Where("t.timetable_teacher_id = ?", teacherID)
	}

	var rows []dto.TimetableRow
	if err := tx.
		Order("w.weekday_name ASC, t.timetable_period_no ASC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}
	return helper.JsonOK(c, "OK", rows)
}

// GET /api/a/timetable/teacher — jadwal milik guru yang sedang login
func (h *TimetableHandler) TeacherView(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var teacher employeeModel.EmployeeModel
	if err := h.DB.
		Where("employee_user_id = ? AND employee_institute_id = ?", userID, instituteID).
		First(&teacher).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusForbidden, "Profil guru tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	var rows []dto.TimetableRow
	if err := h.joinedQuery(instituteID).
		Where("t.timetable_teacher_id = ?", teacher.EmployeeID).
		Order("w.weekday_name ASC, t.timetable_period_no ASC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}
	return helper.JsonOK(c, "OK", rows)
}

// GET /api/u/timetable/me — jadwal kelas siswa yang sedang login;
// baris tanpa section berlaku untuk semua section.
func (h *TimetableHandler) StudentView(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var student studentModel.StudentModel
	if err := h.DB.
		Where("student_user_id = ?", userID).
		First(&student).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonOK(c, "OK", []dto.TimetableRow{})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	tx := h.joinedQuery(student.StudentInstituteID).
		Where("t.timetable_class_id = ?", student.StudentClassID)
	if student.StudentSectionID != nil {
		tx = tx.Where("t.timetable_section_id = ? OR t.timetable_section_id IS NULL", *student.StudentSectionID)
	} else {
		tx = tx.Where("t.timetable_section_id IS NULL")
	}

	var rows []dto.TimetableRow
	if err := tx.
		Order("w.weekday_name ASC, t.timetable_period_no ASC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}
	return helper.JsonOK(c, "OK", rows)
}
