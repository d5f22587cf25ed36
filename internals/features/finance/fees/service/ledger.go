package service

import (
	"errors"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/finance/fees/model"
)

// ErrInvalidAmount menolak pembayaran nol/negatif sebelum ada tulisan apa pun.
var ErrInvalidAmount = errors.New("jumlah pembayaran harus lebih dari 0")

// CollectionResult adalah rincian tagihan setelah satu pembayaran diterapkan.
type CollectionResult struct {
	FineApplied  int  `json:"fine_applied"`
	TotalPayable int  `json:"total_payable"`
	Paid         int  `json:"paid"`
	Due          int  `json:"due"`
	IsPaid       bool `json:"is_paid"`
}

// ApplyPayment menerapkan satu pembayaran ke record tagihan, in-memory.
// Pemanggil bertanggung jawab mengunci row (FOR UPDATE) dan mem-persist
// record + payment dalam satu transaksi.
//
// Urutan:
//  1. Denda dihitung pemanggil via CalculateFine untuk tanggal evaluasi.
//  2. fine_amount terkunci sekali: hanya ditulis bila masih 0. Pemanggilan
//     berikutnya memakai nilai tersimpan walau hari terus berjalan.
//  3. total_payable = total + fine terkunci.
//  4. paid_amount bertambah; is_paid diturunkan ulang dari invariannya.
//
// Overpayment diperbolehkan; due tidak pernah negatif. Tidak ada guard
// untuk record yang sudah lunas — pembayaran tetap dicatat.
func ApplyPayment(rec *model.StudentFeeModel, computedFine int, amount int) (CollectionResult, error) {
	if amount <= 0 {
		return CollectionResult{}, ErrInvalidAmount
	}

	if rec.StudentFeeFineAmount == 0 {
		rec.StudentFeeFineAmount = computedFine
	}

	totalPayable := rec.StudentFeeTotalAmount + rec.StudentFeeFineAmount

	rec.StudentFeePaidAmount += amount
	rec.StudentFeeIsPaid = rec.StudentFeePaidAmount >= totalPayable

	due := totalPayable - rec.StudentFeePaidAmount
	if due < 0 {
		due = 0
	}

	return CollectionResult{
		FineApplied:  rec.StudentFeeFineAmount,
		TotalPayable: totalPayable,
		Paid:         rec.StudentFeePaidAmount,
		Due:          due,
		IsPaid:       rec.StudentFeeIsPaid,
	}, nil
}

// DueAmount menghitung sisa tagihan sebuah record (untuk daftar penunggak).
func DueAmount(rec *model.StudentFeeModel) int {
	return rec.StudentFeeTotalAmount + rec.StudentFeeFineAmount - rec.StudentFeePaidAmount
}

// StructureMatches menentukan apakah satu baris fee structure berlaku untuk
// siswa tertentu. Baris berlaku bila salah satu:
//   - scoped persis ke student_id tersebut;
//   - scoped ke class+section siswa tanpa override student;
//   - scoped ke class saja (section & student kosong);
//   - berlaku se-institute (class & student kosong).
func StructureMatches(fs *model.FeeStructureModel, studentID, classID uuid.UUID, sectionID *uuid.UUID) bool {
	if fs.FeeStructureStudentID != nil {
		return *fs.FeeStructureStudentID == studentID
	}
	if fs.FeeStructureClassID != nil {
		if *fs.FeeStructureClassID != classID {
			return false
		}
		if fs.FeeStructureSectionID == nil {
			return true
		}
		return sectionID != nil && *fs.FeeStructureSectionID == *sectionID
	}
	return true // institute-wide
}

// SumApplicableStructures menjumlahkan SEMUA baris yang cocok — union/sum,
// bukan "yang paling spesifik menang".
func SumApplicableStructures(structures []model.FeeStructureModel, studentID, classID uuid.UUID, sectionID *uuid.UUID) int {
	total := 0
	for i := range structures {
		if StructureMatches(&structures[i], studentID, classID, sectionID) {
			total += structures[i].FeeStructureAmount
		}
	}
	return total
}
