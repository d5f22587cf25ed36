package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MessageSendDTO struct {
	ReceiverRole string         `json:"receiver_role" validate:"required,oneof=student employee institute"`
	ReceiverID   *uuid.UUID     `json:"receiver_id"`
	Category     string         `json:"category" validate:"omitempty,max=50"`
	Title        string         `json:"title" validate:"required,min=1,max=200"`
	Body         string         `json:"body" validate:"required,min=1"`
	Attachments  datatypes.JSON `json:"attachments"`
}
