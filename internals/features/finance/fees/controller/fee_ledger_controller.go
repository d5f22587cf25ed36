package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	studentModel "schoolku_backend/internals/features/academics/students/model"
	"schoolku_backend/internals/features/finance/fees/dto"
	"schoolku_backend/internals/features/finance/fees/model"
	"schoolku_backend/internals/features/finance/fees/service"
	helper "schoolku_backend/internals/helpers"
)

/* ==============================
   GENERATE
============================== */

// POST /api/a/fees/generate — buat record tagihan; total = jumlah SEMUA
// baris tarif yang cocok untuk siswa itu (union, bukan yang paling spesifik).
func (h *FeeHandler) Generate(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.GenerateFeeDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var student studentModel.StudentModel
	if err := h.DB.
		Where("student_id = ? AND student_institute_id = ?", req.StudentID, instituteID).
		First(&student).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa siswa")
	}

	var structures []model.FeeStructureModel
	if err := h.DB.
		Where("fee_structure_institute_id = ?", instituteID).
		Find(&structures).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tarif")
	}

	total := service.SumApplicableStructures(structures, req.StudentID, req.ClassID, student.StudentSectionID)

	sf := model.StudentFeeModel{
		StudentFeeInstituteID: instituteID,
		StudentFeeStudentID:   req.StudentID,
		StudentFeeClassID:     req.ClassID,
		StudentFeeTotalAmount: total,
		StudentFeeDueDate:     req.DueDate,
	}
	if err := h.DB.Create(&sf).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat tagihan")
	}

	return helper.JsonCreated(c, "Tagihan siswa berhasil dibuat", fiber.Map{
		"student_fee_id": sf.StudentFeeID,
		"total_amount":   total,
	})
}

/* ==============================
   COLLECT
============================== */

// POST /api/a/fees/collect — satu transaksi: row di-lock FOR UPDATE agar
// dua pembayaran bersamaan tidak sama-sama memenangkan penguncian denda
// atau saling menimpa paid_amount.
func (h *FeeHandler) Collect(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CollectFeeDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}
	if req.Amount <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, service.ErrInvalidAmount.Error())
	}

	paymentDate := time.Now()
	if req.PaymentDate != nil {
		paymentDate = *req.PaymentDate
	}

	result, err := h.collectPayment(instituteID, req.StudentFeeID, req.Amount, req.PaymentMode, paymentDate, nil)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencatat pembayaran")
	}

	return helper.JsonOK(c, "Pembayaran berhasil dicatat", result)
}

// collectPayment menjalankan urutan lock-denda-lalu-bayar dalam satu
// transaksi; dipakai pembayaran tunai maupun settlement online.
func (h *FeeHandler) collectPayment(
	instituteID, studentFeeID uuid.UUID,
	amount int,
	mode string,
	paymentDate time.Time,
	externalID *string,
) (service.CollectionResult, error) {
	var result service.CollectionResult

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var sf model.StudentFeeModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("student_fee_id = ? AND student_fee_institute_id = ?", studentFeeID, instituteID).
			First(&sf).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "Tagihan tidak ditemukan")
			}
			return err
		}

		var rule *service.FineRule
		var ruleRow model.FeeFineRuleModel
		switch err := tx.
			Where("fee_fine_rule_institute_id = ?", instituteID).
			First(&ruleRow).Error; err {
		case nil:
			rule = service.RuleFromModel(&ruleRow)
		case gorm.ErrRecordNotFound:
			// tenant tanpa aturan denda: denda 0
		default:
			return err
		}

		fine := service.CalculateFine(service.FineReferenceDate(&sf), rule, time.Now())

		res, err := service.ApplyPayment(&sf, fine, amount)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := tx.Save(&sf).Error; err != nil {
			return err
		}

		payment := model.FeePaymentModel{
			FeePaymentInstituteID:  instituteID,
			FeePaymentStudentFeeID: sf.StudentFeeID,
			FeePaymentAmount:       amount,
			FeePaymentMode:         mode,
			FeePaymentDate:         paymentDate,
			FeePaymentExternalID:   externalID,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		result = res
		return nil
	})
	return result, err
}

/* ==============================
   REPORTING
============================== */

// GET /api/a/fees/defaulters — urut stabil per record id agar deterministik.
func (h *FeeHandler) Defaulters(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var rows []dto.DefaulterRow
	if err := h.DB.Table("student_fees AS sf").
		Select(`sf.student_fee_id,
			s.student_name,
			s.student_class_name AS class_name,
			s.student_section AS section,
			(sf.student_fee_total_amount + sf.student_fee_fine_amount - sf.student_fee_paid_amount) AS due_amount`).
		Joins("JOIN students s ON s.student_id = sf.student_fee_student_id").
		Where("sf.student_fee_institute_id = ?", instituteID).
		Where("sf.student_fee_is_paid = ?", false).
		Order("sf.student_fee_id ASC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar penunggak")
	}
	return helper.JsonOK(c, "OK", rows)
}

// GET /api/a/fees/invoice/:id — pratinjau tagihan + rincian tarif kelas
func (h *FeeHandler) Invoice(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tagihan tidak valid")
	}

	var sf model.StudentFeeModel
	if err := h.DB.
		Where("student_fee_id = ? AND student_fee_institute_id = ?", id, instituteID).
		First(&sf).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Tagihan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tagihan")
	}

	var student studentModel.StudentModel
	if err := h.DB.
		Where("student_id = ?", sf.StudentFeeStudentID).
		First(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	var structures []model.FeeStructureModel
	if err := h.DB.
		Where("fee_structure_institute_id = ? AND fee_structure_class_id = ?", instituteID, sf.StudentFeeClassID).
		Find(&structures).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tarif")
	}

	fees := make([]fiber.Map, 0, len(structures))
	for i := range structures {
		fees = append(fees, fiber.Map{
			"name":   structures[i].FeeStructureName,
			"amount": structures[i].FeeStructureAmount,
		})
	}

	totalPayable := sf.StudentFeeTotalAmount + sf.StudentFeeFineAmount
	return helper.JsonOK(c, "OK", fiber.Map{
		"student": fiber.Map{
			"id":           student.StudentID,
			"name":         student.StudentName,
			"admission_no": student.StudentAdmissionNo,
			"roll_no":      student.StudentRollNo,
			"class":        student.StudentClassName,
			"section":      student.StudentSection,
		},
		"fees":        fees,
		"total":       totalPayable,
		"base_amount": sf.StudentFeeTotalAmount,
		"fine":        sf.StudentFeeFineAmount,
		"paid":        sf.StudentFeePaidAmount,
		"due":         totalPayable - sf.StudentFeePaidAmount,
	})
}

// GET /api/a/fees/payments?student_id=
func (h *FeeHandler) Payments(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	studentID, err := uuid.Parse(c.Query("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
	}

	var payments []model.FeePaymentModel
	if err := h.DB.
		Where("fee_payment_student_fee_id IN (?)",
			h.DB.Model(&model.StudentFeeModel{}).
				Select("student_fee_id").
				Where("student_fee_student_id = ? AND student_fee_institute_id = ?", studentID, instituteID),
		).
		Order("fee_payment_date ASC, fee_payment_created_at ASC").
		Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pembayaran")
	}
	return helper.JsonOK(c, "OK", payments)
}

// GET /api/a/fees/receipt/:id — kuitansi: total dibayar dihitung ulang dari ledger
func (h *FeeHandler) Receipt(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tagihan tidak valid")
	}

	var sf model.StudentFeeModel
	if err := h.DB.
		Where("student_fee_id = ? AND student_fee_institute_id = ?", id, instituteID).
		First(&sf).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Tagihan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tagihan")
	}

	var student studentModel.StudentModel
	if err := h.DB.
		Where("student_id = ?", sf.StudentFeeStudentID).
		First(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	var payments []model.FeePaymentModel
	if err := h.DB.
		Where("fee_payment_student_fee_id = ?", id).
		Order("fee_payment_date ASC, fee_payment_created_at ASC").
		Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pembayaran")
	}

	totalPaid := 0
	rows := make([]dto.PaymentRow, 0, len(payments))
	for i := range payments {
		totalPaid += payments[i].FeePaymentAmount
		rows = append(rows, dto.PaymentRow{
			Amount: payments[i].FeePaymentAmount,
			Mode:   payments[i].FeePaymentMode,
			Date:   payments[i].FeePaymentDate,
		})
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"student": fiber.Map{
			"name":         student.StudentName,
			"admission_no": student.StudentAdmissionNo,
			"class":        student.StudentClassName,
			"section":      student.StudentSection,
		},
		"total_amount": sf.StudentFeeTotalAmount,
		"fine_amount":  sf.StudentFeeFineAmount,
		"paid_amount":  totalPaid,
		"due_amount":   sf.StudentFeeTotalAmount + sf.StudentFeeFineAmount - totalPaid,
		"payments":     rows,
	})
}

// GET /api/a/fees/history?student_id=&month=YYYY-MM
func (h *FeeHandler) History(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	studentID, err := uuid.Parse(c.Query("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
	}
	month := strings.TrimSpace(c.Query("month"))
	if _, err := time.Parse("2006-01", month); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "month tidak valid (YYYY-MM)")
	}

	var sf model.StudentFeeModel
	if err := h.DB.
		Where("student_fee_student_id = ? AND student_fee_institute_id = ?", studentID, instituteID).
		Order("student_fee_created_at DESC").
		First(&sf).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonOK(c, "OK", []dto.PaymentRow{})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tagihan")
	}

	var student studentModel.StudentModel
	if err := h.DB.
		Where("student_id = ?", studentID).
		First(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	var payments []model.FeePaymentModel
	if err := h.DB.
		Where("fee_payment_student_fee_id = ?", sf.StudentFeeID).
		Where("to_char(fee_payment_date, 'YYYY-MM') = ?", month).
		Order("fee_payment_date ASC").
		Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pembayaran")
	}

	monthPaid := 0
	rows := make([]dto.PaymentRow, 0, len(payments))
	for i := range payments {
		monthPaid += payments[i].FeePaymentAmount
		rows = append(rows, dto.PaymentRow{
			Amount: payments[i].FeePaymentAmount,
			Mode:   payments[i].FeePaymentMode,
			Date:   payments[i].FeePaymentDate,
		})
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"student": fiber.Map{
			"name":         student.StudentName,
			"admission_no": student.StudentAdmissionNo,
			"class":        student.StudentClassName,
			"section":      student.StudentSection,
		},
		"total_amount": sf.StudentFeeTotalAmount,
		"paid_amount":  monthPaid,
		"payments":     rows,
	})
}
