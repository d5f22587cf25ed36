package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/messaging/messages/dto"
	"schoolku_backend/internals/features/messaging/messages/model"
	"schoolku_backend/internals/features/messaging/messages/service"
	userModel "schoolku_backend/internals/features/users/auth/model"
	helper "schoolku_backend/internals/helpers"
)

type MessageHandler struct {
	DB *gorm.DB
}

func NewMessageHandler(db *gorm.DB) *MessageHandler { return &MessageHandler{DB: db} }

var validate = validator.New()

// POST /messages — kirim pesan langsung atau broadcast (receiver_id kosong).
func (h *MessageHandler) Send(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	senderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	senderRole := helper.GetRoleFromLocals(c)

	var req dto.MessageSendDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	if !service.CanSend(senderRole, req.ReceiverRole, req.Category) {
		return helper.JsonError(c, fiber.StatusForbidden,
			"Anda tidak diizinkan mengirim pesan ke penerima ini")
	}

	if req.ReceiverRole == model.ReceiverInstitute && req.ReceiverID != nil {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Broadcast institute tidak memakai receiver_id")
	}

	// pesan langsung: pastikan penerima ada di institute yang sama
	if req.ReceiverID != nil {
		var count int64
		if err := h.DB.Model(&userModel.UserModel{}).
			Where("user_id = ? AND user_institute_id = ? AND user_role = ? AND user_is_active = ?",
				*req.ReceiverID, instituteID, req.ReceiverRole, true).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa penerima")
		}
		if count == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Penerima tidak ditemukan")
		}
	}

	m := model.MessageModel{
		MessageInstituteID:  instituteID,
		MessageSenderID:     senderID,
		MessageSenderRole:   senderRole,
		MessageReceiverRole: req.ReceiverRole,
		MessageReceiverID:   req.ReceiverID,
		MessageCategory:     req.Category,
		MessageTitle:        req.Title,
		MessageBody:         req.Body,
		MessageAttachments:  req.Attachments,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim pesan")
	}
	return helper.JsonCreated(c, "Pesan terkirim", m)
}

// GET /messages/inbox?category= — pesan untuk user saat ini, termasuk broadcast
// role-nya dan broadcast seluruh institute.
func (h *MessageHandler) Inbox(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	role := helper.GetRoleFromLocals(c)

	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&model.MessageModel{}).
		Where("message_institute_id = ?", instituteID).
		Where(`message_receiver_role = ?
			OR (message_receiver_role = ? AND (message_receiver_id IS NULL OR message_receiver_id = ?))`,
			model.ReceiverInstitute, role, userID)
	if cat := c.Query("category"); cat != "" {
		tx = tx.Where("message_category = ?", cat)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pesan")
	}

	var items []model.MessageModel
	if err := tx.
		Order("message_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pesan")
	}
	return helper.JsonList(c, "OK", items, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /messages/sent
func (h *MessageHandler) Sent(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&model.MessageModel{}).
		Where("message_institute_id = ? AND message_sender_id = ?", instituteID, userID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pesan")
	}

	var items []model.MessageModel
	if err := tx.
		Order("message_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pesan")
	}
	return helper.JsonList(c, "OK", items, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PUT /messages/:id/read — hanya pesan langsung milik user; broadcast tidak
// menyimpan status baca per pengguna.
func (h *MessageHandler) MarkRead(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	msgID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.MessageModel
	if err := h.DB.
		Where("message_id = ? AND message_institute_id = ?", msgID, instituteID).
		First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Pesan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pesan")
	}

	if m.MessageReceiverID == nil || *m.MessageReceiverID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Pesan ini bukan untuk Anda")
	}
	if m.MessageReadAt != nil {
		return helper.JsonOK(c, "Pesan sudah dibaca", m)
	}

	now := time.Now()
	m.MessageReadAt = &now
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan status baca")
	}
	return helper.JsonUpdated(c, "Pesan ditandai dibaca", m)
}
