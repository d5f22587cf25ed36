package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   MODEL — school_classes
============================== */

type SchoolClassModel struct {
	ClassID          uuid.UUID `gorm:"column:class_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"class_id"`
	ClassInstituteID uuid.UUID `gorm:"column:class_institute_id;type:uuid;not null;index;uniqueIndex:uniq_class_name,priority:1" json:"class_institute_id"`

	ClassName string `gorm:"column:class_name;type:varchar(50);not null;uniqueIndex:uniq_class_name,priority:2" json:"class_name"`

	ClassCreatedAt time.Time      `gorm:"column:class_created_at;type:timestamptz;not null;default:now()" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"column:class_updated_at;type:timestamptz;not null;default:now()" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;type:timestamptz;index" json:"-"`
}

func (SchoolClassModel) TableName() string { return "school_classes" }

func (m *SchoolClassModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.ClassCreatedAt.IsZero() {
		m.ClassCreatedAt = now
	}
	m.ClassUpdatedAt = now
	return nil
}

func (m *SchoolClassModel) BeforeUpdate(tx *gorm.DB) error {
	m.ClassUpdatedAt = time.Now()
	return nil
}

/* ==============================
   MODEL — sections (bagian dari class)
============================== */

type SectionModel struct {
	SectionID          uuid.UUID `gorm:"column:section_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"section_id"`
	SectionInstituteID uuid.UUID `gorm:"column:section_institute_id;type:uuid;not null;index" json:"section_institute_id"`
	SectionClassID     uuid.UUID `gorm:"column:section_class_id;type:uuid;not null;index;uniqueIndex:uniq_section_name,priority:1" json:"section_class_id"`

	SectionName string `gorm:"column:section_name;type:varchar(10);not null;uniqueIndex:uniq_section_name,priority:2" json:"section_name"`

	SectionCreatedAt time.Time      `gorm:"column:section_created_at;type:timestamptz;not null;default:now()" json:"section_created_at"`
	SectionDeletedAt gorm.DeletedAt `gorm:"column:section_deleted_at;type:timestamptz;index" json:"-"`
}

func (SectionModel) TableName() string { return "sections" }

/* ==============================
   MODEL — subjects (mapel per class)
============================== */

type SubjectModel struct {
	SubjectID          uuid.UUID `gorm:"column:subject_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"subject_id"`
	SubjectInstituteID uuid.UUID `gorm:"column:subject_institute_id;type:uuid;not null;index" json:"subject_institute_id"`
	SubjectClassID     uuid.UUID `gorm:"column:subject_class_id;type:uuid;not null;index" json:"subject_class_id"`

	SubjectName string `gorm:"column:subject_name;type:varchar(100);not null" json:"subject_name"`

	SubjectCreatedAt time.Time      `gorm:"column:subject_created_at;type:timestamptz;not null;default:now()" json:"subject_created_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;type:timestamptz;index" json:"-"`
}

func (SubjectModel) TableName() string { return "subjects" }
