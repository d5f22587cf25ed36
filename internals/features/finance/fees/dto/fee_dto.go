package dto

import (
	"time"

	"github.com/google/uuid"
)

/* ==============================
   FEE STRUCTURE
============================== */

type FeeStructureCreateDTO struct {
	FeeName   string     `json:"fee_name" validate:"required,min=1,max=100"`
	Amount    int        `json:"amount" validate:"required,gt=0"`
	Scope     string     `json:"scope" validate:"required,oneof=ALL CLASS STUDENT"`
	ClassID   *uuid.UUID `json:"class_id"`
	SectionID *uuid.UUID `json:"section_id"`
	StudentID *uuid.UUID `json:"student_id"`
}

type FeeItemDTO struct {
	FeeName string `json:"fee_name" validate:"required,min=1,max=100"`
	Amount  int    `json:"amount" validate:"required,gt=0"`
}

// SaveFeeStructureDTO mengganti seluruh tarif pada satu scope (delete+insert).
type SaveFeeStructureDTO struct {
	Scope     string       `json:"scope" validate:"required,oneof=ALL CLASS STUDENT"`
	ClassID   *uuid.UUID   `json:"class_id"`
	SectionID *uuid.UUID   `json:"section_id"`
	StudentID *uuid.UUID   `json:"student_id"`
	Fees      []FeeItemDTO `json:"fees" validate:"required,min=1,dive"`
}

/* ==============================
   LEDGER
============================== */

type GenerateFeeDTO struct {
	StudentID uuid.UUID  `json:"student_id" validate:"required"`
	ClassID   uuid.UUID  `json:"class_id" validate:"required"`
	DueDate   *time.Time `json:"due_date"`
}

type CollectFeeDTO struct {
	StudentFeeID uuid.UUID  `json:"student_fee_id" validate:"required"`
	Amount       int        `json:"amount" validate:"required"`
	PaymentMode  string     `json:"payment_mode" validate:"required,max=50"`
	PaymentDate  *time.Time `json:"payment_date"`
}

type CollectOnlineDTO struct {
	StudentFeeID uuid.UUID `json:"student_fee_id" validate:"required"`
	Amount       int       `json:"amount" validate:"required"`
}

/* ==============================
   FINE RULE
============================== */

type FineRuleDTO struct {
	FineType    string `json:"fine_type" validate:"required,oneof=daily weekly monthly custom"`
	FineAmount  int    `json:"fine_amount" validate:"gte=0"`
	GraceDays   int    `json:"grace_days" validate:"gte=0"`
	GraceMonths int    `json:"grace_months" validate:"gte=0"`
}

/* ==============================
   RESPONSES
============================== */

type DefaulterRow struct {
	StudentFeeID uuid.UUID `json:"student_fee_id"`
	StudentName  string    `json:"student_name"`
	ClassName    string    `json:"class_name"`
	Section      string    `json:"section"`
	DueAmount    int       `json:"due_amount"`
}

type PaymentRow struct {
	Amount int       `json:"amount"`
	Mode   string    `json:"mode"`
	Date   time.Time `json:"date"`
}
