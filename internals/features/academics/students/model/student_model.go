package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StudentModel menyimpan data induk siswa. Kolom inti mengikuti formulir
// pendaftaran; data tambahan yang bentuknya bebas masuk ke StudentExtraData
// sebagai JSON.
type StudentModel struct {
	StudentID          uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`
	StudentInstituteID uuid.UUID `gorm:"column:student_institute_id;type:uuid;not null;index;uniqueIndex:uniq_student_admission,priority:1" json:"student_institute_id"`

	StudentName        string `gorm:"column:student_name;type:varchar(150);not null" json:"student_name"`
	StudentAdmissionNo string `gorm:"column:student_admission_no;type:varchar(50);not null;uniqueIndex:uniq_student_admission,priority:2" json:"student_admission_no"`
	StudentRollNo      string `gorm:"column:student_roll_no;type:varchar(50)" json:"student_roll_no"`

	// snapshot nama kelas/section disimpan agar riwayat tidak bergeser saat master berubah
	StudentClassID   uuid.UUID  `gorm:"column:student_class_id;type:uuid;not null;index" json:"student_class_id"`
	StudentClassName string     `gorm:"column:student_class_name;type:varchar(50);not null" json:"student_class_name"`
	StudentSectionID *uuid.UUID `gorm:"column:student_section_id;type:uuid;index" json:"student_section_id"`
	StudentSection   string     `gorm:"column:student_section;type:varchar(10)" json:"student_section"`

	StudentDOB           *time.Time `gorm:"column:student_dob;type:date" json:"student_dob"`
	StudentGender        string     `gorm:"column:student_gender;type:varchar(10)" json:"student_gender"`
	StudentAdmissionDate *time.Time `gorm:"column:student_admission_date;type:date" json:"student_admission_date"`

	StudentDiscountPercent int    `gorm:"column:student_discount_percent;default:0" json:"student_discount_percent"`
	StudentMobile          string `gorm:"column:student_mobile;type:varchar(20)" json:"student_mobile"`

	StudentBirthFormID        string `gorm:"column:student_birth_form_id;type:varchar(50)" json:"student_birth_form_id"`
	StudentOrphan             string `gorm:"column:student_orphan;type:varchar(10)" json:"student_orphan"`
	StudentCaste              string `gorm:"column:student_caste;type:varchar(50);index" json:"student_caste"`
	StudentOSC                string `gorm:"column:student_osc;type:varchar(10)" json:"student_osc"`
	StudentIdentificationMark string `gorm:"column:student_identification_mark;type:varchar(255)" json:"student_identification_mark"`
	StudentPreviousSchool     string `gorm:"column:student_previous_school;type:varchar(255)" json:"student_previous_school"`
	StudentReligion           string `gorm:"column:student_religion;type:varchar(50)" json:"student_religion"`
	StudentBloodGroup         string `gorm:"column:student_blood_group;type:varchar(10)" json:"student_blood_group"`
	StudentPreviousBoardRoll  string `gorm:"column:student_previous_board_roll;type:varchar(50)" json:"student_previous_board_roll"`
	StudentFamily             string `gorm:"column:student_family;type:varchar(100)" json:"student_family"`
	StudentDisease            string `gorm:"column:student_disease;type:varchar(255)" json:"student_disease"`
	StudentTotalSiblings      int    `gorm:"column:student_total_siblings;default:0" json:"student_total_siblings"`
	StudentAddress            string `gorm:"column:student_address;type:varchar(500)" json:"student_address"`

	StudentFatherName       string `gorm:"column:student_father_name;type:varchar(150)" json:"student_father_name"`
	StudentFatherMobile     string `gorm:"column:student_father_mobile;type:varchar(20)" json:"student_father_mobile"`
	StudentFatherOccupation string `gorm:"column:student_father_occupation;type:varchar(100)" json:"student_father_occupation"`
	StudentMotherName       string `gorm:"column:student_mother_name;type:varchar(150)" json:"student_mother_name"`
	StudentMotherMobile     string `gorm:"column:student_mother_mobile;type:varchar(20)" json:"student_mother_mobile"`
	StudentMotherOccupation string `gorm:"column:student_mother_occupation;type:varchar(100)" json:"student_mother_occupation"`
	StudentGuardianName     string `gorm:"column:student_guardian_name;type:varchar(150)" json:"student_guardian_name"`
	StudentGuardianRelation string `gorm:"column:student_guardian_relation;type:varchar(50)" json:"student_guardian_relation"`
	StudentGuardianMobile   string `gorm:"column:student_guardian_mobile;type:varchar(20)" json:"student_guardian_mobile"`

	StudentPhotoURL  string         `gorm:"column:student_photo_url;type:varchar(255)" json:"student_photo_url"`
	StudentExtraData datatypes.JSON `gorm:"column:student_extra_data;type:jsonb" json:"student_extra_data"`

	StudentUserID *uuid.UUID `gorm:"column:student_user_id;type:uuid;index" json:"student_user_id"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;type:timestamptz;not null;default:now()" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;type:timestamptz;not null;default:now()" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;type:timestamptz;index" json:"-"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.StudentCreatedAt.IsZero() {
		m.StudentCreatedAt = now
	}
	m.StudentUpdatedAt = now
	return nil
}

func (m *StudentModel) BeforeUpdate(tx *gorm.DB) error {
	m.StudentUpdatedAt = time.Now()
	return nil
}
