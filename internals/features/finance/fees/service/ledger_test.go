package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/features/finance/fees/model"
	"schoolku_backend/internals/features/finance/fees/service"
)

func TestApplyPaymentRejectsNonPositiveAmount(t *testing.T) {
	rec := &model.StudentFeeModel{StudentFeeTotalAmount: 500}

	_, err := service.ApplyPayment(rec, 0, 0)
	assert.ErrorIs(t, err, service.ErrInvalidAmount)

	_, err = service.ApplyPayment(rec, 0, -100)
	assert.ErrorIs(t, err, service.ErrInvalidAmount)

	// record tidak tersentuh saat ditolak
	assert.Equal(t, 0, rec.StudentFeePaidAmount)
	assert.Equal(t, 0, rec.StudentFeeFineAmount)
}

func TestApplyPaymentLocksFineThenSettles(t *testing.T) {
	rec := &model.StudentFeeModel{StudentFeeTotalAmount: 500}

	// pembayaran pertama: denda 50 terkunci
	res, err := service.ApplyPayment(rec, 50, 200)
	require.NoError(t, err)
	assert.Equal(t, service.CollectionResult{
		FineApplied:  50,
		TotalPayable: 550,
		Paid:         200,
		Due:          350,
	}, res)
	assert.Equal(t, 50, rec.StudentFeeFineAmount)
	assert.False(t, rec.StudentFeeIsPaid)

	// pembayaran kedua: hari bertambah, denda baru 90 — nilai terkunci menang
	res, err = service.ApplyPayment(rec, 90, 350)
	require.NoError(t, err)
	assert.Equal(t, service.CollectionResult{
		FineApplied:  50,
		TotalPayable: 550,
		Paid:         550,
		Due:          0,
		IsPaid:       true,
	}, res)
	assert.Equal(t, 50, rec.StudentFeeFineAmount)
	assert.True(t, rec.StudentFeeIsPaid)
}

func TestApplyPaymentPaidAmountIsSum(t *testing.T) {
	rec := &model.StudentFeeModel{StudentFeeTotalAmount: 1000}

	for _, amount := range []int{100, 250, 50} {
		_, err := service.ApplyPayment(rec, 0, amount)
		require.NoError(t, err)
	}
	assert.Equal(t, 400, rec.StudentFeePaidAmount)
	assert.False(t, rec.StudentFeeIsPaid)
}

func TestApplyPaymentOverpaymentFloorsDueAtZero(t *testing.T) {
	rec := &model.StudentFeeModel{StudentFeeTotalAmount: 100}

	res, err := service.ApplyPayment(rec, 0, 300)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Due)
	assert.Equal(t, 300, res.Paid)
	assert.True(t, res.IsPaid)
}

func TestApplyPaymentOnSettledRecordStillRecorded(t *testing.T) {
	rec := &model.StudentFeeModel{
		StudentFeeTotalAmount: 100,
		StudentFeePaidAmount:  100,
		StudentFeeIsPaid:      true,
	}

	res, err := service.ApplyPayment(rec, 0, 40)
	require.NoError(t, err)
	assert.Equal(t, 140, res.Paid)
	assert.True(t, res.IsPaid) // tidak pernah kembali false
}

func TestSumApplicableStructures(t *testing.T) {
	classID := uuid.New()
	otherClassID := uuid.New()
	sectionID := uuid.New()
	otherSectionID := uuid.New()
	studentID := uuid.New()
	otherStudentID := uuid.New()

	structures := []model.FeeStructureModel{
		{FeeStructureName: "Tuition", FeeStructureAmount: 100, FeeStructureScope: model.ScopeAll},
		{FeeStructureName: "Bus", FeeStructureAmount: 200, FeeStructureScope: model.ScopeClass, FeeStructureClassID: &classID},
		{FeeStructureName: "Lab", FeeStructureAmount: 300, FeeStructureScope: model.ScopeClass, FeeStructureClassID: &classID, FeeStructureSectionID: &sectionID},
		{FeeStructureName: "Other section", FeeStructureAmount: 400, FeeStructureScope: model.ScopeClass, FeeStructureClassID: &classID, FeeStructureSectionID: &otherSectionID},
		{FeeStructureName: "Other class", FeeStructureAmount: 500, FeeStructureScope: model.ScopeClass, FeeStructureClassID: &otherClassID},
		{FeeStructureName: "Scholarship", FeeStructureAmount: 50, FeeStructureScope: model.ScopeStudent, FeeStructureStudentID: &studentID},
		{FeeStructureName: "Other student", FeeStructureAmount: 999, FeeStructureScope: model.ScopeStudent, FeeStructureStudentID: &otherStudentID},
	}

	t.Run("all matching rows are summed, not first match", func(t *testing.T) {
		// ALL(100) + class(200) + class+section(300) + student(50)
		got := service.SumApplicableStructures(structures, studentID, classID, &sectionID)
		assert.Equal(t, 650, got)
	})

	t.Run("institute-wide plus class-wide with no override", func(t *testing.T) {
		got := service.SumApplicableStructures(structures[:2], otherStudentID, classID, nil)
		assert.Equal(t, 300, got)
	})

	t.Run("student without section skips section-scoped rows", func(t *testing.T) {
		got := service.SumApplicableStructures(structures, otherStudentID, classID, nil)
		// ALL(100) + class(200) + other-student override(999)
		assert.Equal(t, 1299, got)
	})

	t.Run("no structures means zero total", func(t *testing.T) {
		assert.Equal(t, 0, service.SumApplicableStructures(nil, studentID, classID, nil))
	})
}
