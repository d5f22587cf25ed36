package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/hr/employees/dto"
	"schoolku_backend/internals/features/hr/employees/model"
	userModel "schoolku_backend/internals/features/users/auth/model"
	authService "schoolku_backend/internals/features/users/auth/service"
	helper "schoolku_backend/internals/helpers"
)

type EmployeeHandler struct {
	DB *gorm.DB
}

func NewEmployeeHandler(db *gorm.DB) *EmployeeHandler { return &EmployeeHandler{DB: db} }

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

func (h *EmployeeHandler) findEmployee(instituteID, id uuid.UUID) (*model.EmployeeModel, error) {
	var m model.EmployeeModel
	err := h.DB.
		Where("employee_id = ? AND employee_institute_id = ?", id, instituteID).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// POST /api/a/employees
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.EmployeeCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	m := req.ToModel(instituteID)
	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data pegawai")
	}
	return helper.JsonCreated(c, "Pegawai berhasil ditambahkan", dto.ToEmployeeResponse(m, nil))
}

// GET /api/a/employees?page=&per_page=&q=
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	p := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&model.EmployeeModel{}).
		Where("employee_institute_id = ?", instituteID)
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("employee_name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data pegawai")
	}

	var employees []model.EmployeeModel
	if err := tx.
		Order("employee_name ASC").
		Limit(p.PerPage).Offset(p.Offset).
		Find(&employees).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pegawai")
	}

	out := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		out = append(out, dto.ToEmployeeResponse(&employees[i], nil))
	}
	return helper.JsonList(c, "List pegawai", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/a/employees/:id — detail termasuk flag permission
func (h *EmployeeHandler) Detail(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pegawai tidak valid")
	}

	m, err := h.findEmployee(instituteID, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Pegawai tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pegawai")
	}

	var perm model.EmployeePermissionModel
	var permPtr *model.EmployeePermissionModel
	if err := h.DB.
		Where("employee_permission_employee_id = ?", m.EmployeeID).
		First(&perm).Error; err == nil {
		permPtr = &perm
	}
	return helper.JsonOK(c, "OK", dto.ToEmployeeResponse(m, permPtr))
}

// PUT /api/a/employees/:id
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pegawai tidak valid")
	}

	var req dto.EmployeeUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	m, err := h.findEmployee(instituteID, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Pegawai tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pegawai")
	}

	dto.ApplyEmployeeUpdate(m, &req)
	if err := h.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data pegawai")
	}
	return helper.JsonUpdated(c, "Data pegawai berhasil diperbarui", dto.ToEmployeeResponse(m, nil))
}

// DELETE /api/a/employees/:id — soft delete + nonaktifkan akun login
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pegawai tidak valid")
	}

	m, err := h.findEmployee(instituteID, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Pegawai tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pegawai")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if m.EmployeeUserID != nil {
			if err := tx.Model(&userModel.UserModel{}).
				Where("user_id = ?", *m.EmployeeUserID).
				Update("user_is_active", false).Error; err != nil {
				return err
			}
		}
		return tx.Delete(m).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data pegawai")
	}
	return helper.JsonDeleted(c, "Pegawai berhasil dihapus", fiber.Map{"employee_id": id})
}

// PUT /api/a/employees/:id/permissions — upsert flag akses fitur.
// Token lama tetap membawa claim lama sampai kedaluwarsa.
func (h *EmployeeHandler) SetPermissions(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pegawai tidak valid")
	}

	var req dto.EmployeePermissionDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	m, err := h.findEmployee(instituteID, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Pegawai tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pegawai")
	}

	var perm model.EmployeePermissionModel
	err = h.DB.
		Where("employee_permission_employee_id = ?", m.EmployeeID).
		First(&perm).Error
	switch {
	case err == nil:
		perm.CanStudents = req.CanStudents
		perm.CanAttendance = req.CanAttendance
		perm.CanExams = req.CanExams
		perm.CanFees = req.CanFees
		perm.CanTimetable = req.CanTimetable
		perm.CanMessages = req.CanMessages
		if err := h.DB.Save(&perm).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan permission")
		}
	case err == gorm.ErrRecordNotFound:
		perm = model.EmployeePermissionModel{
			EmployeePermissionEmployeeID: m.EmployeeID,
			CanStudents:                  req.CanStudents,
			CanAttendance:                req.CanAttendance,
			CanExams:                     req.CanExams,
			CanFees:                      req.CanFees,
			CanTimetable:                 req.CanTimetable,
			CanMessages:                  req.CanMessages,
		}
		if err := h.DB.Create(&perm).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan permission")
		}
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa permission")
	}

	return helper.JsonUpdated(c, "Permission pegawai berhasil diperbarui",
		dto.ToEmployeeResponse(m, &perm))
}

// POST /api/a/employees/:id/login — buat akun login pegawai
func (h *EmployeeHandler) CreateLogin(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pegawai tidak valid")
	}

	var req dto.EmployeeLoginDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	m, err := h.findEmployee(instituteID, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Pegawai tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pegawai")
	}
	if m.EmployeeUserID != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Pegawai sudah memiliki akun login")
	}

	if err := authService.EnsureEmailAvailable(h.DB, req.Email); err != nil {
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	}
	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := userModel.UserModel{
		UserName:        m.EmployeeName,
		UserEmail:       strings.ToLower(strings.TrimSpace(req.Email)),
		UserPassword:    hashed,
		UserRole:        constants.RoleEmployee,
		UserInstituteID: &instituteID,
		UserIsActive:    true,
	}
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Model(m).Update("employee_user_id", user.UserID).Error
	}); err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun login")
	}

	return helper.JsonCreated(c, "Akun login pegawai berhasil dibuat", fiber.Map{
		"employee_id": m.EmployeeID,
		"user_id":     user.UserID,
		"email":       user.UserEmail,
	})
}

// PUT /api/a/employees/:id/login/reset
func (h *EmployeeHandler) ResetLogin(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pegawai tidak valid")
	}

	var req struct {
		Password string `json:"password" validate:"required,min=6"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	m, err := h.findEmployee(instituteID, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Pegawai tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pegawai")
	}
	if m.EmployeeUserID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Pegawai belum memiliki akun login")
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	if err := h.DB.Model(&userModel.UserModel{}).
		Where("user_id = ?", *m.EmployeeUserID).
		Updates(map[string]any{"user_password": hashed, "user_is_active": true}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mereset akun login")
	}
	return helper.JsonUpdated(c, "Akun login pegawai berhasil direset", fiber.Map{"employee_id": id})
}
