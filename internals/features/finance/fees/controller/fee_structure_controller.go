package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/fees/dto"
	"schoolku_backend/internals/features/finance/fees/model"
	helper "schoolku_backend/internals/helpers"
)

type FeeHandler struct {
	DB *gorm.DB
}

func NewFeeHandler(db *gorm.DB) *FeeHandler { return &FeeHandler{DB: db} }

var validate = validator.New()

// normalizeScope membersihkan kombinasi scope+target dan menolak yang bentrok.
// STUDENT tidak boleh membawa class/section; CLASS wajib class_id; ALL
// membuang semua target.
func normalizeScope(req *dto.FeeStructureCreateDTO) error {
	if req.StudentID != nil && (req.ClassID != nil || req.SectionID != nil) {
		return fiber.NewError(fiber.StatusBadRequest, "Tarif per siswa tidak boleh membawa class/section")
	}

	switch req.Scope {
	case model.ScopeAll:
		req.ClassID = nil
		req.SectionID = nil
		req.StudentID = nil
	case model.ScopeClass:
		if req.ClassID == nil {
			return fiber.NewError(fiber.StatusBadRequest, "class_id wajib untuk tarif CLASS")
		}
		req.StudentID = nil
	case model.ScopeStudent:
		if req.StudentID == nil {
			return fiber.NewError(fiber.StatusBadRequest, "student_id wajib untuk tarif STUDENT")
		}
		req.ClassID = nil
		req.SectionID = nil
	}
	return nil
}

// POST /api/a/fees/structure
func (h *FeeHandler) CreateStructure(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.FeeStructureCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}
	if err := normalizeScope(&req); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	m := model.FeeStructureModel{
		FeeStructureInstituteID: instituteID,
		FeeStructureName:        strings.TrimSpace(req.FeeName),
		FeeStructureAmount:      req.Amount,
		FeeStructureScope:       req.Scope,
		FeeStructureClassID:     req.ClassID,
		FeeStructureSectionID:   req.SectionID,
		FeeStructureStudentID:   req.StudentID,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan tarif")
	}
	return helper.JsonCreated(c, "Tarif biaya berhasil dibuat", m)
}

// GET /api/a/fees/structure
func (h *FeeHandler) ListStructures(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var items []model.FeeStructureModel
	if err := h.DB.
		Where("fee_structure_institute_id = ?", instituteID).
		Order("fee_structure_created_at ASC").
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tarif")
	}
	return helper.JsonOK(c, "OK", items)
}

// GET /api/a/fees/structure/by-scope?scope=&class_id=&section_id=&student_id=
func (h *FeeHandler) StructuresByScope(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	scope := strings.ToUpper(strings.TrimSpace(c.Query("scope")))
	tx := h.DB.Where("fee_structure_institute_id = ?", instituteID)

	switch scope {
	case model.ScopeAll:
		tx = tx.Where("fee_structure_scope = ?", model.ScopeAll)
	case model.ScopeClass:
		classID, err := uuid.Parse(c.Query("class_id"))
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
		}
		tx = tx.Where("fee_structure_scope = ? AND fee_structure_class_id = ?", model.ScopeClass, classID)
		if v := strings.TrimSpace(c.Query("section_id")); v != "" {
			sectionID, err := uuid.Parse(v)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "section_id tidak valid")
			}
			tx = tx.Where("fee_structure_section_id = ?", sectionID)
		}
	case model.ScopeStudent:
		studentID, err := uuid.Parse(c.Query("student_id"))
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		tx = tx.Where("fee_structure_scope = ? AND fee_structure_student_id = ?", model.ScopeStudent, studentID)
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "scope harus ALL, CLASS, atau STUDENT")
	}

	var items []model.FeeStructureModel
	if err := tx.Order("fee_structure_created_at ASC").Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tarif")
	}
	return helper.JsonOK(c, "OK", items)
}

// POST /api/a/fees/structure/save — ganti seluruh tarif pada satu scope:
// hapus yang lama, tulis yang baru, satu transaksi.
func (h *FeeHandler) SaveStructures(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.SaveFeeStructureDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}
	switch req.Scope {
	case model.ScopeClass:
		if req.ClassID == nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "class_id wajib untuk tarif CLASS")
		}
		req.StudentID = nil
	case model.ScopeStudent:
		if req.StudentID == nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id wajib untuk tarif STUDENT")
		}
		req.ClassID = nil
		req.SectionID = nil
	case model.ScopeAll:
		req.ClassID = nil
		req.SectionID = nil
		req.StudentID = nil
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		del := tx.Where("fee_structure_institute_id = ? AND fee_structure_scope = ?", instituteID, req.Scope)
		if req.Scope == model.ScopeClass {
			del = del.Where("fee_structure_class_id = ?", *req.ClassID)
			if req.SectionID != nil {
				del = del.Where("fee_structure_section_id = ?", *req.SectionID)
			} else {
				del = del.Where("fee_structure_section_id IS NULL")
			}
		}
		if req.Scope == model.ScopeStudent {
			del = del.Where("fee_structure_student_id = ?", *req.StudentID)
		}
		if err := del.Delete(&model.FeeStructureModel{}).Error; err != nil {
			return err
		}

		rows := make([]model.FeeStructureModel, 0, len(req.Fees))
		for _, item := range req.Fees {
			rows = append(rows, model.FeeStructureModel{
				FeeStructureInstituteID: instituteID,
				FeeStructureName:        strings.TrimSpace(item.FeeName),
				FeeStructureAmount:      item.Amount,
				FeeStructureScope:       req.Scope,
				FeeStructureClassID:     req.ClassID,
				FeeStructureSectionID:   req.SectionID,
				FeeStructureStudentID:   req.StudentID,
			})
		}
		return tx.Create(&rows).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan tarif")
	}

	return helper.JsonOK(c, "Tarif biaya berhasil disimpan", fiber.Map{
		"scope": req.Scope,
		"count": len(req.Fees),
	})
}
