package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"schoolku_backend/internals/features/scheduling/timetable/model"
	"schoolku_backend/internals/features/scheduling/timetable/service"
)

func TestTeacherConflicts(t *testing.T) {
	teacherID := uuid.New()
	otherTeacherID := uuid.New()
	weekdayID := uuid.New()
	otherWeekdayID := uuid.New()
	rowID := uuid.New()

	row := model.TimetableModel{
		TimetableID:        rowID,
		TimetableTeacherID: teacherID,
		TimetableWeekdayID: weekdayID,
		TimetablePeriodNo:  3,
	}

	t.Run("same teacher same weekday same period conflicts", func(t *testing.T) {
		slot := service.Slot{TeacherID: teacherID, WeekdayID: weekdayID, PeriodNo: 3}
		assert.True(t, service.TeacherConflicts(slot, &row))
	})

	t.Run("different teacher does not conflict", func(t *testing.T) {
		slot := service.Slot{TeacherID: otherTeacherID, WeekdayID: weekdayID, PeriodNo: 3}
		assert.False(t, service.TeacherConflicts(slot, &row))
	})

	t.Run("different weekday does not conflict", func(t *testing.T) {
		slot := service.Slot{TeacherID: teacherID, WeekdayID: otherWeekdayID, PeriodNo: 3}
		assert.False(t, service.TeacherConflicts(slot, &row))
	})

	t.Run("different period does not conflict", func(t *testing.T) {
		slot := service.Slot{TeacherID: teacherID, WeekdayID: weekdayID, PeriodNo: 4}
		assert.False(t, service.TeacherConflicts(slot, &row))
	})

	t.Run("updating the same row is not a conflict with itself", func(t *testing.T) {
		slot := service.Slot{TimetableID: &rowID, TeacherID: teacherID, WeekdayID: weekdayID, PeriodNo: 3}
		assert.False(t, service.TeacherConflicts(slot, &row))
	})
}

func TestFindTeacherConflict(t *testing.T) {
	teacherID := uuid.New()
	weekdayID := uuid.New()

	rows := []model.TimetableModel{
		{TimetableID: uuid.New(), TimetableTeacherID: uuid.New(), TimetableWeekdayID: weekdayID, TimetablePeriodNo: 1},
		{TimetableID: uuid.New(), TimetableTeacherID: teacherID, TimetableWeekdayID: weekdayID, TimetablePeriodNo: 2},
	}

	slot := service.Slot{TeacherID: teacherID, WeekdayID: weekdayID, PeriodNo: 2}
	got := service.FindTeacherConflict(slot, rows)
	assert.NotNil(t, got)
	assert.Equal(t, rows[1].TimetableID, got.TimetableID)

	slot.PeriodNo = 5
	assert.Nil(t, service.FindTeacherConflict(slot, rows))
}
