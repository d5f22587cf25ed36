package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Penerima pesan: role tertentu atau seluruh institute.
const (
	ReceiverStudent   = "student"
	ReceiverEmployee  = "employee"
	ReceiverInstitute = "institute"
)

// Kategori khusus: siswa hanya boleh mengirim ke guru.
const CategoryTeacher = "teacher"

// MessageModel adalah pesan internal antar pengguna dalam satu institute.
// MessageReceiverID nil berarti broadcast ke seluruh receiver_role.
type MessageModel struct {
	MessageID uuid.UUID `gorm:"column:message_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"message_id"`

	MessageInstituteID uuid.UUID `gorm:"column:message_institute_id;type:uuid;not null;index" json:"message_institute_id"`

	MessageSenderID   uuid.UUID `gorm:"column:message_sender_id;type:uuid;not null;index" json:"message_sender_id"`
	MessageSenderRole string    `gorm:"column:message_sender_role;type:varchar(20);not null" json:"message_sender_role"`

	MessageReceiverRole string     `gorm:"column:message_receiver_role;type:varchar(20);not null;index" json:"message_receiver_role"`
	MessageReceiverID   *uuid.UUID `gorm:"column:message_receiver_id;type:uuid;index" json:"message_receiver_id"`

	MessageCategory string `gorm:"column:message_category;type:varchar(50)" json:"message_category"`
	MessageTitle    string `gorm:"column:message_title;type:varchar(200);not null" json:"message_title"`
	MessageBody     string `gorm:"column:message_body;type:text;not null" json:"message_body"`

	MessageAttachments datatypes.JSON `gorm:"column:message_attachments;type:jsonb" json:"message_attachments,omitempty"`

	MessageReadAt *time.Time `gorm:"column:message_read_at" json:"message_read_at,omitempty"`

	MessageCreatedAt time.Time `gorm:"column:message_created_at;autoCreateTime" json:"message_created_at"`
}

func (MessageModel) TableName() string { return "messages" }

func (m *MessageModel) BeforeCreate(tx *gorm.DB) error {
	if m.MessageCreatedAt.IsZero() {
		m.MessageCreatedAt = time.Now()
	}
	return nil
}
