package service

import (
	"strings"
	"time"

	"schoolku_backend/internals/features/finance/fees/model"
)

// FineRule adalah parameter eksplisit perhitungan denda — tidak pernah
// dibaca dari state global.
type FineRule struct {
	FineType    string
	FineAmount  int
	GraceDays   int
	GraceMonths int // disimpan di aturan tapi tidak dipakai rumus
}

// RuleFromModel mengubah row aturan denda menjadi parameter kalkulasi.
func RuleFromModel(m *model.FeeFineRuleModel) *FineRule {
	if m == nil {
		return nil
	}
	return &FineRule{
		FineType:    m.FeeFineRuleType,
		FineAmount:  m.FeeFineRuleAmount,
		GraceDays:   m.FeeFineRuleGraceDays,
		GraceMonths: m.FeeFineRuleGraceMonths,
	}
}

// CalculateFine menghitung denda keterlambatan per tanggal evaluasi.
//
// Aturan:
//   - rule nil atau refDate nol → 0 (bukan error; tenant tanpa aturan denda sah).
//   - delay ≤ grace_days → 0, termasuk delay negatif.
//   - daily: overdue × amount.
//   - weekly: ceil(overdue/7) × amount — minggu berjalan dihitung penuh.
//   - monthly: ceil(overdue/30) × amount — aproksimasi 30 hari, bukan bulan kalender.
//   - tipe lain (custom / tak dikenal) → 0.
//
// Fungsi murni: tidak menyentuh rule maupun record.
func CalculateFine(refDate time.Time, rule *FineRule, evaluationDate time.Time) int {
	if rule == nil || refDate.IsZero() {
		return 0
	}

	delayDays := int(evaluationDate.Sub(refDate).Hours() / 24)
	if delayDays <= rule.GraceDays {
		return 0
	}
	overdue := delayDays - rule.GraceDays

	switch strings.ToLower(rule.FineType) {
	case model.FineTypeDaily:
		return overdue * rule.FineAmount
	case model.FineTypeWeekly:
		weeks := (overdue + 6) / 7
		return weeks * rule.FineAmount
	case model.FineTypeMonthly:
		months := (overdue + 29) / 30
		return months * rule.FineAmount
	default:
		return 0
	}
}

// FineReferenceDate memilih tanggal acuan denda: due_date bila ada,
// jika tidak pakai created_date.
func FineReferenceDate(rec *model.StudentFeeModel) time.Time {
	if rec.StudentFeeDueDate != nil {
		return *rec.StudentFeeDueDate
	}
	return rec.StudentFeeCreatedDate
}
