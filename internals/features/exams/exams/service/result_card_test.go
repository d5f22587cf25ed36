package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"schoolku_backend/internals/features/exams/exams/service"
)

func TestBuildResultCard(t *testing.T) {
	t.Run("empty marks give empty card", func(t *testing.T) {
		card := service.BuildResultCard(nil)
		assert.Equal(t, 0, card.TotalMarks)
		assert.Equal(t, 0.0, card.Percentage)
		assert.Equal(t, "PASS", card.Result)
		assert.Empty(t, card.Subjects)
	})

	t.Run("all subjects above pass mark", func(t *testing.T) {
		card := service.BuildResultCard([]service.SubjectMark{
			{SubjectName: "Math", Marks: 80},
			{SubjectName: "Science", Marks: 70},
			{SubjectName: "English", Marks: 90},
		})
		assert.Equal(t, 240, card.TotalMarks)
		assert.Equal(t, 80.0, card.Percentage)
		assert.Equal(t, "PASS", card.Result)
	})

	t.Run("single failing subject fails the card", func(t *testing.T) {
		card := service.BuildResultCard([]service.SubjectMark{
			{SubjectName: "Math", Marks: 95},
			{SubjectName: "Science", Marks: 32},
		})
		assert.Equal(t, 127, card.TotalMarks)
		assert.Equal(t, "FAIL", card.Result)
	})

	t.Run("exact pass mark passes", func(t *testing.T) {
		card := service.BuildResultCard([]service.SubjectMark{
			{SubjectName: "Math", Marks: 33},
		})
		assert.Equal(t, "PASS", card.Result)
		assert.Equal(t, 33.0, card.Percentage)
	})

	t.Run("percentage rounded to two decimals", func(t *testing.T) {
		card := service.BuildResultCard([]service.SubjectMark{
			{SubjectName: "Math", Marks: 50},
			{SubjectName: "Science", Marks: 51},
			{SubjectName: "English", Marks: 49},
		})
		// 150/300 × 100 = 50.0
		assert.Equal(t, 50.0, card.Percentage)

		card = service.BuildResultCard([]service.SubjectMark{
			{SubjectName: "Math", Marks: 50},
			{SubjectName: "Science", Marks: 50},
			{SubjectName: "English", Marks: 51},
		})
		assert.Equal(t, 50.33, card.Percentage)
	})
}
