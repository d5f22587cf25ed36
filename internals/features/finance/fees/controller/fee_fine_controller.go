package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/fees/dto"
	"schoolku_backend/internals/features/finance/fees/model"
	helper "schoolku_backend/internals/helpers"
)

// PUT /api/a/fees/fine-rule — upsert; satu aturan aktif per institute.
func (h *FeeHandler) SetFineRule(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.FineRuleDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var rule model.FeeFineRuleModel
	err = h.DB.
		Where("fee_fine_rule_institute_id = ?", instituteID).
		First(&rule).Error
	switch {
	case err == nil:
		rule.FeeFineRuleType = req.FineType
		rule.FeeFineRuleAmount = req.FineAmount
		rule.FeeFineRuleGraceDays = req.GraceDays
		rule.FeeFineRuleGraceMonths = req.GraceMonths
		if err := h.DB.Save(&rule).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan aturan denda")
		}
	case err == gorm.ErrRecordNotFound:
		rule = model.FeeFineRuleModel{
			FeeFineRuleInstituteID: instituteID,
			FeeFineRuleType:        req.FineType,
			FeeFineRuleAmount:      req.FineAmount,
			FeeFineRuleGraceDays:   req.GraceDays,
			FeeFineRuleGraceMonths: req.GraceMonths,
		}
		if err := h.DB.Create(&rule).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan aturan denda")
		}
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa aturan denda")
	}

	return helper.JsonUpdated(c, "Aturan denda tersimpan", rule)
}

// GET /api/a/fees/fine-rule
func (h *FeeHandler) GetFineRule(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var rule model.FeeFineRuleModel
	if err := h.DB.
		Where("fee_fine_rule_institute_id = ?", instituteID).
		First(&rule).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonOK(c, "Belum ada aturan denda", nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil aturan denda")
	}
	return helper.JsonOK(c, "OK", rule)
}
