package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/academics/classes/dto"
	"schoolku_backend/internals/features/academics/classes/model"
	helper "schoolku_backend/internals/helpers"
)

type ClassHandler struct {
	DB *gorm.DB
}

func NewClassHandler(db *gorm.DB) *ClassHandler { return &ClassHandler{DB: db} }

var validate = validator.New()

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "sqlstate 23505") ||
		strings.Contains(msg, "unique constraint")
}

/* ==============================
   CLASSES
============================== */

// POST /api/a/classes
func (h *ClassHandler) CreateClass(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.ClassCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	m := req.ToModel(instituteID)
	if err := h.DB.Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama kelas sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kelas")
	}
	return helper.JsonCreated(c, "Kelas berhasil dibuat", dto.ToClassResponse(m))
}

// GET /api/a/classes — setiap kelas membawa daftar section-nya
func (h *ClassHandler) ListClasses(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var classes []model.SchoolClassModel
	if err := h.DB.
		Where("class_institute_id = ?", instituteID).
		Order("class_name ASC").
		Find(&classes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kelas")
	}

	var sections []model.SectionModel
	if err := h.DB.
		Where("section_institute_id = ?", instituteID).
		Order("section_name ASC").
		Find(&sections).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data section")
	}

	byClass := make(map[uuid.UUID][]dto.SectionResponse, len(classes))
	for i := range sections {
		s := &sections[i]
		byClass[s.SectionClassID] = append(byClass[s.SectionClassID], dto.ToSectionResponse(s))
	}

	out := make([]dto.ClassResponse, 0, len(classes))
	for i := range classes {
		resp := dto.ToClassResponse(&classes[i])
		resp.Sections = byClass[resp.ClassID]
		out = append(out, resp)
	}
	return helper.JsonOK(c, "OK", out)
}

// PUT /api/a/classes/:id
func (h *ClassHandler) UpdateClass(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	var req dto.ClassUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var m model.SchoolClassModel
	if err := h.DB.
		Where("class_id = ? AND class_institute_id = ?", id, instituteID).
		First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kelas")
	}

	if req.ClassName != nil {
		m.ClassName = strings.TrimSpace(*req.ClassName)
	}
	if err := h.DB.Save(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama kelas sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kelas")
	}
	return helper.JsonUpdated(c, "Kelas berhasil diperbarui", dto.ToClassResponse(&m))
}

// DELETE /api/a/classes/:id
func (h *ClassHandler) DeleteClass(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	res := h.DB.
		Where("class_id = ? AND class_institute_id = ?", id, instituteID).
		Delete(&model.SchoolClassModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kelas")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Kelas berhasil dihapus", fiber.Map{"class_id": id})
}

/* ==============================
   SECTIONS
============================== */

// POST /api/a/sections
func (h *ClassHandler) CreateSection(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.SectionCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	// class harus milik tenant yang sama
	var count int64
	if err := h.DB.Model(&model.SchoolClassModel{}).
		Where("class_id = ? AND class_institute_id = ?", req.SectionClassID, instituteID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kelas")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}

	m := req.ToModel(instituteID)
	if err := h.DB.Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Section sudah ada di kelas ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat section")
	}
	return helper.JsonCreated(c, "Section berhasil dibuat", dto.ToSectionResponse(m))
}

// GET /api/a/classes/:id/sections
func (h *ClassHandler) ListSectionsByClass(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	var sections []model.SectionModel
	if err := h.DB.
		Where("section_institute_id = ? AND section_class_id = ?", instituteID, classID).
		Order("section_name ASC").
		Find(&sections).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data section")
	}
	return helper.JsonOK(c, "OK", dto.ToSectionResponses(sections))
}

// DELETE /api/a/sections/:id
func (h *ClassHandler) DeleteSection(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID section tidak valid")
	}

	res := h.DB.
		Where("section_id = ? AND section_institute_id = ?", id, instituteID).
		Delete(&model.SectionModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus section")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Section tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Section berhasil dihapus", fiber.Map{"section_id": id})
}

/* ==============================
   SUBJECTS
============================== */

// POST /api/a/subjects
func (h *ClassHandler) CreateSubject(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.SubjectCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var count int64
	if err := h.DB.Model(&model.SchoolClassModel{}).
		Where("class_id = ? AND class_institute_id = ?", req.SubjectClassID, instituteID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kelas")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}

	m := req.ToModel(instituteID)
	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat mapel")
	}
	return helper.JsonCreated(c, "Mapel berhasil dibuat", dto.ToSubjectResponse(m))
}

// GET /api/a/classes/:id/subjects
func (h *ClassHandler) ListSubjectsByClass(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	var subjects []model.SubjectModel
	if err := h.DB.
		Where("subject_institute_id = ? AND subject_class_id = ?", instituteID, classID).
		Order("subject_name ASC").
		Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data mapel")
	}
	return helper.JsonOK(c, "OK", dto.ToSubjectResponses(subjects))
}

// DELETE /api/a/subjects/:id
func (h *ClassHandler) DeleteSubject(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID mapel tidak valid")
	}

	res := h.DB.
		Where("subject_id = ? AND subject_institute_id = ?", id, instituteID).
		Delete(&model.SubjectModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus mapel")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Mapel tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Mapel berhasil dihapus", fiber.Map{"subject_id": id})
}
