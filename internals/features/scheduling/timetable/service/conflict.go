package service

import (
	"github.com/google/uuid"

	"schoolku_backend/internals/features/scheduling/timetable/model"
)

// Slot adalah identitas satu jam pelajaran yang hendak di-assign.
type Slot struct {
	TimetableID *uuid.UUID // nil untuk slot baru; saat update, row sendiri dikecualikan
	TeacherID   uuid.UUID
	WeekdayID   uuid.UUID
	PeriodNo    int
}

// TeacherConflicts: guru yang sama tidak boleh mengajar di dua tempat pada
// weekday+period yang sama. Row dengan id sama dengan slot yang sedang
// diubah bukan konflik.
func TeacherConflicts(slot Slot, existing *model.TimetableModel) bool {
	if existing.TimetableTeacherID != slot.TeacherID {
		return false
	}
	if existing.TimetableWeekdayID != slot.WeekdayID {
		return false
	}
	if existing.TimetablePeriodNo != slot.PeriodNo {
		return false
	}
	if slot.TimetableID != nil && existing.TimetableID == *slot.TimetableID {
		return false
	}
	return true
}

// FindTeacherConflict memindai daftar row dan mengembalikan konflik pertama.
func FindTeacherConflict(slot Slot, rows []model.TimetableModel) *model.TimetableModel {
	for i := range rows {
		if TeacherConflicts(slot, &rows[i]) {
			return &rows[i]
		}
	}
	return nil
}
