package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   MODEL — institutes (tenant)
============================== */

type InstituteModel struct {
	InstituteID uuid.UUID `gorm:"column:institute_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"institute_id"`

	InstituteName    string  `gorm:"column:institute_name;type:varchar(150);not null" json:"institute_name"`
	InstituteAddress *string `gorm:"column:institute_address;type:varchar(500)" json:"institute_address,omitempty"`
	InstitutePhone   *string `gorm:"column:institute_phone;type:varchar(20)" json:"institute_phone,omitempty"`
	InstituteEmail   *string `gorm:"column:institute_email;type:varchar(100)" json:"institute_email,omitempty"`

	InstituteIsActive bool `gorm:"column:institute_is_active;not null;default:true" json:"institute_is_active"`

	InstituteCreatedAt time.Time      `gorm:"column:institute_created_at;type:timestamptz;not null;default:now()" json:"institute_created_at"`
	InstituteUpdatedAt time.Time      `gorm:"column:institute_updated_at;type:timestamptz;not null;default:now()" json:"institute_updated_at"`
	InstituteDeletedAt gorm.DeletedAt `gorm:"column:institute_deleted_at;type:timestamptz;index" json:"-"`
}

func (InstituteModel) TableName() string { return "institutes" }

func (m *InstituteModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.InstituteCreatedAt.IsZero() {
		m.InstituteCreatedAt = now
	}
	m.InstituteUpdatedAt = now
	return nil
}

func (m *InstituteModel) BeforeUpdate(tx *gorm.DB) error {
	m.InstituteUpdatedAt = time.Now()
	return nil
}
