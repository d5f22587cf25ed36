package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/lembaga/institutes/dto"
	institute "schoolku_backend/internals/features/lembaga/institutes/model"
	authModel "schoolku_backend/internals/features/users/auth/model"
	authService "schoolku_backend/internals/features/users/auth/service"
	helper "schoolku_backend/internals/helpers"
)

type InstituteHandler struct {
	DB *gorm.DB
}

var validate = validator.New()

/* =========================
   Create (POST /institutes) — superadmin
   Bisa sekalian membuat akun admin pertama (satu transaksi).
========================= */

func (h *InstituteHandler) Create(c *fiber.Ctx) error {
	var in dto.InstituteCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	withAdmin := in.AdminEmail != nil && in.AdminPassword != nil
	if (in.AdminEmail != nil) != (in.AdminPassword != nil) {
		return helper.JsonError(c, fiber.StatusBadRequest, "admin_email dan admin_password harus diisi bersamaan")
	}

	m := in.ToModel()
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		if withAdmin {
			if err := authService.EnsureEmailAvailable(tx, *in.AdminEmail); err != nil {
				return err
			}
			hashed, err := authService.HashPassword(*in.AdminPassword)
			if err != nil {
				return err
			}
			name := m.InstituteName + " Admin"
			if in.AdminName != nil {
				name = *in.AdminName
			}
			admin := authModel.UserModel{
				UserName:        name,
				UserEmail:       strings.ToLower(*in.AdminEmail),
				UserPassword:    hashed,
				UserRole:        constants.RoleAdmin,
				UserInstituteID: &m.InstituteID,
				UserIsActive:    true,
			}
			if err := tx.Create(&admin).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "email admin sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Institute created", dto.ToInstituteResponse(m))
}

/* =========================
   List (GET /institutes) — superadmin
========================= */

func (h *InstituteHandler) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.Context()).Model(&institute.InstituteModel{})
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		q = q.Where("institute_name ILIKE ?", "%"+v+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []institute.InstituteModel
	if err := q.Order("institute_name ASC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "List institutes", dto.ToInstituteResponses(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

/* =========================
   Detail / Update / Delete
========================= */

func (h *InstituteHandler) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m institute.InstituteModel
	if err := h.DB.First(&m, "institute_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "institute not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToInstituteResponse(m))
}

func (h *InstituteHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.InstituteUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var m institute.InstituteModel
	if err := h.DB.First(&m, "institute_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "institute not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyInstituteUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "updated", dto.ToInstituteResponse(m))
}

func (h *InstituteHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m institute.InstituteModel
	if err := h.DB.First(&m, "institute_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "institute not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "deleted", dto.ToInstituteResponse(m))
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}
