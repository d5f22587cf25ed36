package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   SCOPE & FINE TYPE
============================== */

const (
	ScopeAll     = "ALL"
	ScopeClass   = "CLASS"
	ScopeStudent = "STUDENT"
)

const (
	FineTypeDaily   = "daily"
	FineTypeWeekly  = "weekly"
	FineTypeMonthly = "monthly"
	FineTypeCustom  = "custom"
)

/* ==============================
   MODEL — fee_structures
   Tarif biaya per scope: ALL (satu sekolah), CLASS (kelas/section),
   STUDENT (override per siswa). Semua baris yang cocok DIJUMLAH.
============================== */

type FeeStructureModel struct {
	FeeStructureID          uuid.UUID `gorm:"column:fee_structure_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"fee_structure_id"`
	FeeStructureInstituteID uuid.UUID `gorm:"column:fee_structure_institute_id;type:uuid;not null;index" json:"fee_structure_institute_id"`

	FeeStructureName   string `gorm:"column:fee_structure_name;type:varchar(100);not null" json:"fee_structure_name"`
	FeeStructureAmount int    `gorm:"column:fee_structure_amount;not null" json:"fee_structure_amount"`
	FeeStructureScope  string `gorm:"column:fee_structure_scope;type:varchar(10);not null" json:"fee_structure_scope"`

	FeeStructureClassID   *uuid.UUID `gorm:"column:fee_structure_class_id;type:uuid;index" json:"fee_structure_class_id"`
	FeeStructureSectionID *uuid.UUID `gorm:"column:fee_structure_section_id;type:uuid;index" json:"fee_structure_section_id"`
	FeeStructureStudentID *uuid.UUID `gorm:"column:fee_structure_student_id;type:uuid;index" json:"fee_structure_student_id"`

	FeeStructureCreatedAt time.Time `gorm:"column:fee_structure_created_at;type:timestamptz;not null;default:now()" json:"fee_structure_created_at"`
}

func (FeeStructureModel) TableName() string { return "fee_structures" }

/* ==============================
   MODEL — student_fees
   Catatan keuangan: tidak pernah dihapus. fine_amount terkunci setelah
   perhitungan non-nol pertama; paid_amount hanya bertambah.
============================== */

type StudentFeeModel struct {
	StudentFeeID          uuid.UUID `gorm:"column:student_fee_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_fee_id"`
	StudentFeeInstituteID uuid.UUID `gorm:"column:student_fee_institute_id;type:uuid;not null;index" json:"student_fee_institute_id"`

	StudentFeeStudentID uuid.UUID `gorm:"column:student_fee_student_id;type:uuid;not null;index" json:"student_fee_student_id"`
	StudentFeeClassID   uuid.UUID `gorm:"column:student_fee_class_id;type:uuid;not null;index" json:"student_fee_class_id"`

	StudentFeeTotalAmount int  `gorm:"column:student_fee_total_amount;not null" json:"student_fee_total_amount"`
	StudentFeeFineAmount  int  `gorm:"column:student_fee_fine_amount;not null;default:0" json:"student_fee_fine_amount"`
	StudentFeePaidAmount  int  `gorm:"column:student_fee_paid_amount;not null;default:0" json:"student_fee_paid_amount"`
	StudentFeeIsPaid      bool `gorm:"column:student_fee_is_paid;not null;default:false;index" json:"student_fee_is_paid"`

	StudentFeeDueDate     *time.Time `gorm:"column:student_fee_due_date;type:date" json:"student_fee_due_date"`
	StudentFeeCreatedDate time.Time  `gorm:"column:student_fee_created_date;type:date;not null;default:now()" json:"student_fee_created_date"`

	StudentFeeCreatedAt time.Time `gorm:"column:student_fee_created_at;type:timestamptz;not null;default:now()" json:"student_fee_created_at"`
	StudentFeeUpdatedAt time.Time `gorm:"column:student_fee_updated_at;type:timestamptz;not null;default:now()" json:"student_fee_updated_at"`
}

func (StudentFeeModel) TableName() string { return "student_fees" }

func (m *StudentFeeModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.StudentFeeCreatedDate.IsZero() {
		m.StudentFeeCreatedDate = now
	}
	if m.StudentFeeCreatedAt.IsZero() {
		m.StudentFeeCreatedAt = now
	}
	m.StudentFeeUpdatedAt = now
	return nil
}

func (m *StudentFeeModel) BeforeUpdate(tx *gorm.DB) error {
	m.StudentFeeUpdatedAt = time.Now()
	return nil
}

/* ==============================
   MODEL — fee_payments (append-only)
============================== */

type FeePaymentModel struct {
	FeePaymentID          uuid.UUID `gorm:"column:fee_payment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"fee_payment_id"`
	FeePaymentInstituteID uuid.UUID `gorm:"column:fee_payment_institute_id;type:uuid;not null;index" json:"fee_payment_institute_id"`

	FeePaymentStudentFeeID uuid.UUID `gorm:"column:fee_payment_student_fee_id;type:uuid;not null;index" json:"fee_payment_student_fee_id"`

	FeePaymentAmount int       `gorm:"column:fee_payment_amount;not null" json:"fee_payment_amount"`
	FeePaymentMode   string    `gorm:"column:fee_payment_mode;type:varchar(50);not null" json:"fee_payment_mode"`
	FeePaymentDate   time.Time `gorm:"column:fee_payment_date;type:date;not null" json:"fee_payment_date"`

	// OrderID Midtrans untuk pembayaran online; kosong untuk tunai
	FeePaymentExternalID *string `gorm:"column:fee_payment_external_id;type:varchar(100);uniqueIndex" json:"fee_payment_external_id,omitempty"`

	FeePaymentCreatedAt time.Time `gorm:"column:fee_payment_created_at;type:timestamptz;not null;default:now()" json:"fee_payment_created_at"`
}

func (FeePaymentModel) TableName() string { return "fee_payments" }

/* ==============================
   MODEL — fee_fine_rules
   Maksimal satu aturan aktif per institute.
   grace_months disimpan tapi tidak dipakai rumus denda.
============================== */

type FeeFineRuleModel struct {
	FeeFineRuleID          uuid.UUID `gorm:"column:fee_fine_rule_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"fee_fine_rule_id"`
	FeeFineRuleInstituteID uuid.UUID `gorm:"column:fee_fine_rule_institute_id;type:uuid;not null;uniqueIndex" json:"fee_fine_rule_institute_id"`

	FeeFineRuleType        string `gorm:"column:fee_fine_rule_type;type:varchar(20);not null" json:"fee_fine_rule_type"`
	FeeFineRuleAmount      int    `gorm:"column:fee_fine_rule_amount;not null" json:"fee_fine_rule_amount"`
	FeeFineRuleGraceDays   int    `gorm:"column:fee_fine_rule_grace_days;not null;default:0" json:"fee_fine_rule_grace_days"`
	FeeFineRuleGraceMonths int    `gorm:"column:fee_fine_rule_grace_months;not null;default:0" json:"fee_fine_rule_grace_months"`

	FeeFineRuleCreatedAt time.Time `gorm:"column:fee_fine_rule_created_at;type:timestamptz;not null;default:now()" json:"fee_fine_rule_created_at"`
	FeeFineRuleUpdatedAt time.Time `gorm:"column:fee_fine_rule_updated_at;type:timestamptz;not null;default:now()" json:"fee_fine_rule_updated_at"`
}

func (FeeFineRuleModel) TableName() string { return "fee_fine_rules" }

func (m *FeeFineRuleModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.FeeFineRuleCreatedAt.IsZero() {
		m.FeeFineRuleCreatedAt = now
	}
	m.FeeFineRuleUpdatedAt = now
	return nil
}

func (m *FeeFineRuleModel) BeforeUpdate(tx *gorm.DB) error {
	m.FeeFineRuleUpdatedAt = time.Now()
	return nil
}
