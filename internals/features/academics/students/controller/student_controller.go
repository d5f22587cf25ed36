package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	classModel "schoolku_backend/internals/features/academics/classes/model"
	"schoolku_backend/internals/features/academics/students/dto"
	"schoolku_backend/internals/features/academics/students/model"
	authService "schoolku_backend/internals/features/users/auth/service"
	userModel "schoolku_backend/internals/features/users/auth/model"
	helper "schoolku_backend/internals/helpers"
)

type StudentHandler struct {
	DB *gorm.DB
}

func NewStudentHandler(db *gorm.DB) *StudentHandler { return &StudentHandler{DB: db} }

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

// resolveClassSection memastikan class milik tenant dan mengambil snapshot nama.
func (h *StudentHandler) resolveClassSection(instituteID, classID uuid.UUID, sectionID *uuid.UUID) (string, string, error) {
	var cls classModel.SchoolClassModel
	if err := h.DB.
		Where("class_id = ? AND class_institute_id = ?", classID, instituteID).
		First(&cls).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", "", fiber.NewError(fiber.StatusBadRequest, "Kelas tidak valid")
		}
		return "", "", err
	}

	sectionName := ""
	if sectionID != nil {
		var sec classModel.SectionModel
		if err := h.DB.
			Where("section_id = ? AND section_class_id = ?", *sectionID, classID).
			First(&sec).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return "", "", fiber.NewError(fiber.StatusBadRequest, "Section tidak valid untuk kelas ini")
			}
			return "", "", err
		}
		sectionName = sec.SectionName
	}
	return cls.ClassName, sectionName, nil
}

/* ==============================
   CRUD
============================== */

// POST /api/a/students
func (h *StudentHandler) Create(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.StudentCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	className, sectionName, err := h.resolveClassSection(instituteID, req.StudentClassID, req.StudentSectionID)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kelas")
	}

	m := req.ToModel(instituteID, className, sectionName)
	if err := h.DB.Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nomor pendaftaran sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data siswa")
	}
	return helper.JsonCreated(c, "Siswa berhasil ditambahkan", m)
}

// GET /api/a/students?page=&per_page=&class_id=&section_id=&q=
func (h *StudentHandler) List(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	p := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&model.StudentModel{}).
		Where("student_institute_id = ?", instituteID)

	if v := strings.TrimSpace(c.Query("class_id")); v != "" {
		classID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
		}
		tx = tx.Where("student_class_id = ?", classID)
	}
	if v := strings.TrimSpace(c.Query("section_id")); v != "" {
		sectionID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "section_id tidak valid")
		}
		tx = tx.Where("student_section_id = ?", sectionID)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		tx = tx.Where(
			"student_name ILIKE ? OR student_admission_no ILIKE ? OR student_roll_no ILIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data siswa")
	}

	var students []model.StudentModel
	if err := tx.
		Order("student_name ASC").
		Limit(p.PerPage).Offset(p.Offset).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	return helper.JsonList(c, "List siswa", dto.ToStudentLiteResponses(students),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/a/students/:id
func (h *StudentHandler) Detail(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}

	var m model.StudentModel
	if err := h.DB.
		Where("student_id = ? AND student_institute_id = ?", id, instituteID).
		First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}
	return helper.JsonOK(c, "OK", m)
}

// GET /api/u/students/me — profil siswa yang sedang login
func (h *StudentHandler) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var m model.StudentModel
	if err := h.DB.
		Where("student_user_id = ?", userID).
		First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Profil siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}
	return helper.JsonOK(c, "OK", m)
}

// PUT /api/a/students/:id
func (h *StudentHandler) Update(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}

	var req dto.StudentUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var m model.StudentModel
	if err := h.DB.
		Where("student_id = ? AND student_institute_id = ?", id, instituteID).
		First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	// pindah kelas/section: refresh snapshot nama
	if req.StudentClassID != nil {
		className, sectionName, err := h.resolveClassSection(instituteID, *req.StudentClassID, req.StudentSectionID)
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				return helper.JsonError(c, fe.Code, fe.Message)
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kelas")
		}
		m.StudentClassID = *req.StudentClassID
		m.StudentClassName = className
		m.StudentSectionID = req.StudentSectionID
		m.StudentSection = sectionName
	}

	dto.ApplyStudentUpdate(&m, &req)

	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data siswa")
	}
	return helper.JsonUpdated(c, "Data siswa berhasil diperbarui", m)
}

// DELETE /api/a/students/:id (soft delete; akun login ikut dinonaktifkan)
func (h *StudentHandler) Delete(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}

	var m model.StudentModel
	if err := h.DB.
		Where("student_id = ? AND student_institute_id = ?", id, instituteID).
		First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if m.StudentUserID != nil {
			if err := tx.Model(&userModel.UserModel{}).
				Where("user_id = ?", *m.StudentUserID).
				Update("user_is_active", false).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&m).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data siswa")
	}
	return helper.JsonDeleted(c, "Siswa berhasil dihapus", fiber.Map{"student_id": id})
}

/* ==============================
   SEARCH & LISTING KHUSUS
============================== */

// GET /api/a/students/search?q=
func (h *StudentHandler) Search(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return helper.JsonOK(c, "OK", []dto.StudentLiteResponse{})
	}

	like := "%" + q + "%"
	var students []model.StudentModel
	if err := h.DB.
		Where("student_institute_id = ?", instituteID).
		Where("student_name ILIKE ? OR student_admission_no ILIKE ? OR student_roll_no ILIKE ?",
			like, like, like).
		Order("student_name ASC").
		Limit(30).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencari siswa")
	}
	return helper.JsonOK(c, "OK", dto.ToStudentLiteResponses(students))
}

// GET /api/a/students/by-class/:class_id?section_id=
func (h *StudentHandler) ByClassSection(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	classID, err := uuid.Parse(c.Params("class_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
	}

	tx := h.DB.
		Where("student_institute_id = ? AND student_class_id = ?", instituteID, classID)
	if v := strings.TrimSpace(c.Query("section_id")); v != "" {
		sectionID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "section_id tidak valid")
		}
		tx = tx.Where("student_section_id = ?", sectionID)
	}

	var students []model.StudentModel
	if err := tx.Order("student_roll_no ASC, student_name ASC").Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}
	return helper.JsonOK(c, "OK", dto.ToStudentLiteResponses(students))
}

/* ==============================
   LOGIN SISWA
============================== */

// POST /api/a/students/:id/login — buat akun login untuk siswa
func (h *StudentHandler) CreateLogin(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}

	var req dto.StudentLoginDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var m model.StudentModel
	if err := h.DB.
		Where("student_id = ? AND student_institute_id = ?", id, instituteID).
		First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}
	if m.StudentUserID != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Siswa sudah memiliki akun login")
	}

	if err := authService.EnsureEmailAvailable(h.DB, req.Email); err != nil {
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	}
	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := userModel.UserModel{
		UserName:        m.StudentName,
		UserEmail:       strings.ToLower(strings.TrimSpace(req.Email)),
		UserPassword:    hashed,
		UserRole:        constants.RoleStudent,
		UserInstituteID: &instituteID,
		UserIsActive:    true,
	}
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Model(&m).Update("student_user_id", user.UserID).Error
	}); err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun login")
	}

	return helper.JsonCreated(c, "Akun login siswa berhasil dibuat", fiber.Map{
		"student_id": m.StudentID,
		"user_id":    user.UserID,
		"email":      user.UserEmail,
	})
}

// PUT /api/a/students/:id/login/reset — ganti password akun siswa
func (h *StudentHandler) ResetLogin(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID siswa tidak valid")
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

	var m model.StudentModel
	if err := h.DB.
		Where("student_id = ? AND student_institute_id = ?", id, instituteID).
		First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}
	if m.StudentUserID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Siswa belum memiliki akun login")
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	if err := h.DB.Model(&userModel.UserModel{}).
		Where("user_id = ?", *m.StudentUserID).
		Updates(map[string]any{"user_password": hashed, "user_is_active": true}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mereset akun login")
	}
	return helper.JsonUpdated(c, "Akun login siswa berhasil direset", fiber.Map{"student_id": id})
}

/* ==============================
   FOTO & STATISTIK
============================== */

// POST /api/a/students/:id/photo (multipart field: photo)
func (h *StudentHandler) UploadPhoto(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}

	var m model.StudentModel
	if err := h.DB.
		Where("student_id = ? AND student_institute_id = ?", id, instituteID).
		First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File foto wajib diunggah")
	}

	url, err := helper.SavePhotoAsWebP("students", fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.DB.Model(&m).Update("student_photo_url", url).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan foto")
	}
	return helper.JsonUpdated(c, "Foto siswa berhasil diperbarui", fiber.Map{
		"student_id":        id,
		"student_photo_url": url,
	})
}

// GET /api/a/students/stats/caste
func (h *StudentHandler) CasteBreakdown(c *fiber.Ctx) error {
	return h.breakdown(c, "student_caste")
}

// GET /api/a/students/stats/gender
func (h *StudentHandler) GenderBreakdown(c *fiber.Ctx) error {
	return h.breakdown(c, "student_gender")
}

func (h *StudentHandler) breakdown(c *fiber.Ctx, column string) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var rows []dto.BreakdownRow
	if err := h.DB.Model(&model.StudentModel{}).
		Select("COALESCE(NULLIF("+column+", ''), 'unknown') AS label, COUNT(*) AS count").
		Where("student_institute_id = ?", instituteID).
		Group("label").
		Order("count DESC, label ASC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}
	return helper.JsonOK(c, "OK", rows)
}
