package controller

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "schoolku_backend/internals/features/academics/students/model"
	"schoolku_backend/internals/features/exams/exams/dto"
	"schoolku_backend/internals/features/exams/exams/model"
	"schoolku_backend/internals/features/exams/exams/service"
	helper "schoolku_backend/internals/helpers"
)

type ExamHandler struct {
	DB *gorm.DB
}

func NewExamHandler(db *gorm.DB) *ExamHandler { return &ExamHandler{DB: db} }

var validate = validator.New()

/* ==============================
   EXAMS
============================== */

// POST /api/a/exams
func (h *ExamHandler) Create(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.ExamCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}
	if req.EndDate.Before(req.StartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal selesai tidak boleh sebelum tanggal mulai")
	}

	m := model.ExamModel{
		ExamInstituteID: instituteID,
		ExamName:        req.Name,
		ExamStartDate:   req.StartDate,
		ExamEndDate:     req.EndDate,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat ujian")
	}
	return helper.JsonCreated(c, "Ujian berhasil dibuat", m)
}

// GET /api/a/exams
func (h *ExamHandler) List(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var exams []model.ExamModel
	if err := h.DB.
		Where("exam_institute_id = ?", instituteID).
		Order("exam_start_date DESC").
		Find(&exams).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data ujian")
	}
	return helper.JsonOK(c, "OK", exams)
}

// GET /api/a/exams/:id
func (h *ExamHandler) Detail(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID ujian tidak valid")
	}

	var exam model.ExamModel
	if err := h.DB.
		Where("exam_id = ? AND exam_institute_id = ?", id, instituteID).
		First(&exam).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Ujian tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data ujian")
	}
	return helper.JsonOK(c, "OK", exam)
}

/* ==============================
   SCHEDULE
============================== */

// POST /api/a/exams/:id/schedule — batch; setiap tanggal harus dalam rentang
// ujian dan slot duplikat ditolak utuh (transaksi rollback).
func (h *ExamHandler) CreateSchedule(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID ujian tidak valid")
	}

	var req dto.ExamScheduleCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var exam model.ExamModel
	if err := h.DB.
		Where("exam_id = ? AND exam_institute_id = ?", examID, instituteID).
		First(&exam).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Ujian tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data ujian")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		for _, item := range req.Schedules {
			if item.ExamDate.Before(exam.ExamStartDate) || item.ExamDate.After(exam.ExamEndDate) {
				return fiber.NewError(fiber.StatusBadRequest,
					fmt.Sprintf("Tanggal %s di luar rentang ujian", item.ExamDate.Format("2006-01-02")))
			}

			dup := tx.Model(&model.ExamScheduleModel{}).
				Where("exam_schedule_exam_id = ?", examID).
				Where("exam_schedule_class_id = ?", req.ClassID).
				Where("exam_schedule_subject_id = ?", item.SubjectID).
				Where("exam_schedule_date = ?", item.ExamDate).
				Where("exam_schedule_institute_id = ?", instituteID)
			if req.SectionID != nil {
				dup = dup.Where("exam_schedule_section_id = ?", *req.SectionID)
			} else {
				dup = dup.Where("exam_schedule_section_id IS NULL")
			}
			var count int64
			if err := dup.Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return fiber.NewError(fiber.StatusConflict, "Jadwal ujian sudah ada")
			}

			if err := tx.Create(&model.ExamScheduleModel{
				ExamScheduleInstituteID: instituteID,
				ExamScheduleExamID:      examID,
				ExamScheduleClassID:     req.ClassID,
				ExamScheduleSectionID:   req.SectionID,
				ExamScheduleSubjectID:   item.SubjectID,
				ExamScheduleTeacherID:   item.TeacherID,
				ExamScheduleDate:        item.ExamDate,
			}).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jadwal ujian")
	}

	return helper.JsonCreated(c, "Jadwal ujian tersimpan", fiber.Map{
		"exam_id": examID,
		"count":   len(req.Schedules),
	})
}

// GET /api/a/exams/:id/schedule?class_id=&section_id=
func (h *ExamHandler) GetSchedule(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID ujian tidak valid")
	}
	classID, err := uuid.Parse(c.Query("class_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
	}

	tx := h.DB.Table("exam_schedules AS es").
		Select("sub.subject_name, es.exam_schedule_date AS exam_date").
		Joins("JOIN subjects sub ON sub.subject_id = es.exam_schedule_subject_id").
		Where("es.exam_schedule_exam_id = ?", examID).
		Where("es.exam_schedule_class_id = ?", classID).
		Where("es.exam_schedule_institute_id = ?", instituteID)
	if v := c.Query("section_id"); v != "" {
		sectionID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "section_id tidak valid")
		}
		tx = tx.Where("es.exam_schedule_section_id = ?", sectionID)
	}

	var rows []dto.ScheduleRow
	if err := tx.Order("es.exam_schedule_date ASC").Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal ujian")
	}
	return helper.JsonOK(c, "OK", rows)
}

/* ==============================
   MARKS
============================== */

// POST /api/a/exams/marks — upsert per exam+student+subject.
func (h *ExamHandler) SaveMarks(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.ExamMarkDTO
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

	var record model.ExamMarkModel
	err = h.DB.
		Where("exam_mark_exam_id = ? AND exam_mark_student_id = ? AND exam_mark_subject_id = ?",
			req.ExamID, req.StudentID, req.SubjectID).
		First(&record).Error
	switch {
	case err == nil:
		if err := h.DB.Model(&record).Update("exam_mark_marks", req.Marks).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan nilai")
		}
	case err == gorm.ErrRecordNotFound:
		record = model.ExamMarkModel{
			ExamMarkInstituteID: instituteID,
			ExamMarkExamID:      req.ExamID,
			ExamMarkStudentID:   req.StudentID,
			ExamMarkSubjectID:   req.SubjectID,
			ExamMarkMarks:       req.Marks,
		}
		if err := h.DB.Create(&record).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan nilai")
		}
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa nilai")
	}

	return helper.JsonOK(c, "Nilai tersimpan", fiber.Map{
		"exam_id":    req.ExamID,
		"student_id": req.StudentID,
		"subject_id": req.SubjectID,
		"marks":      req.Marks,
	})
}

// GET /api/a/exams/marks?exam_id=&class_id=&section_id=&subject_id=
func (h *ExamHandler) GetMarks(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	examID, err := uuid.Parse(c.Query("exam_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "exam_id tidak valid")
	}
	subjectID, err := uuid.Parse(c.Query("subject_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "subject_id tidak valid")
	}

	tx := h.DB.Table("exam_marks AS em").
		Select("em.exam_mark_student_id AS student_id, s.student_name, em.exam_mark_marks AS marks").
		Joins("JOIN students s ON s.student_id = em.exam_mark_student_id").
		Where("em.exam_mark_exam_id = ?", examID).
		Where("em.exam_mark_subject_id = ?", subjectID).
		Where("s.student_institute_id = ?", instituteID)
	if v := c.Query("class_id"); v != "" {
		classID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
		}
		tx = tx.Where("s.student_class_id = ?", classID)
	}
	if v := c.Query("section_id"); v != "" {
		sectionID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "section_id tidak valid")
		}
		tx = tx.Where("s.student_section_id = ?", sectionID)
	}

	var rows []dto.MarkRow
	if err := tx.Order("s.student_roll_no ASC").Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil nilai")
	}
	return helper.JsonOK(c, "OK", rows)
}

/* ==============================
   RESULT CARD
============================== */

func (h *ExamHandler) buildResultCard(instituteID, studentID, examID uuid.UUID) (fiber.Map, error) {
	var student studentModel.StudentModel
	if err := h.DB.
		Where("student_id = ? AND student_institute_id = ?", studentID, instituteID).
		First(&student).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return nil, err
	}

	var exam model.ExamModel
	if err := h.DB.
		Where("exam_id = ? AND exam_institute_id = ?", examID, instituteID).
		First(&exam).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Ujian tidak ditemukan")
		}
		return nil, err
	}

	var marks []service.SubjectMark
	if err := h.DB.Table("exam_marks AS em").
		Select("sub.subject_name, em.exam_mark_marks AS marks").
		Joins("JOIN subjects sub ON sub.subject_id = em.exam_mark_subject_id").
		Where("em.exam_mark_exam_id = ?", examID).
		Where("em.exam_mark_student_id = ?", studentID).
		Order("sub.subject_name ASC").
		Scan(&marks).Error; err != nil {
		return nil, err
	}
	if len(marks) == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "Belum ada nilai untuk ujian ini")
	}

	card := service.BuildResultCard(marks)
	return fiber.Map{
		"student_id":   student.StudentID,
		"student_name": student.StudentName,
		"class_name":   student.StudentClassName,
		"exam_name":    exam.ExamName,
		"subjects":     card.Subjects,
		"total_marks":  card.TotalMarks,
		"percentage":   card.Percentage,
		"result":       card.Result,
	}, nil
}

// GET /api/a/results/student/:student_id/exam/:exam_id
func (h *ExamHandler) ResultCard(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}
	examID, err := uuid.Parse(c.Params("exam_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID ujian tidak valid")
	}

	card, err := h.buildResultCard(instituteID, studentID, examID)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun kartu hasil")
	}
	return helper.JsonOK(c, "OK", card)
}

// GET /api/u/results/me/exam/:exam_id — siswa melihat hasil sendiri
func (h *ExamHandler) MyResult(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	examID, err := uuid.Parse(c.Params("exam_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID ujian tidak valid")
	}

	var student studentModel.StudentModel
	if err := h.DB.
		Where("student_user_id = ?", userID).
		First(&student).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Profil siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	card, err := h.buildResultCard(student.StudentInstituteID, student.StudentID, examID)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun kartu hasil")
	}
	return helper.JsonOK(c, "OK", card)
}
