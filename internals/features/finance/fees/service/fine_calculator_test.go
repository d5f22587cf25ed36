package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"schoolku_backend/internals/features/finance/fees/service"
)

func day(offset int) time.Time {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func TestCalculateFine(t *testing.T) {
	daily := &service.FineRule{FineType: "daily", FineAmount: 10, GraceDays: 0}

	tests := []struct {
		name string
		ref  time.Time
		rule *service.FineRule
		eval time.Time
		want int
	}{
		{
			name: "nil rule gives zero",
			ref:  day(0),
			rule: nil,
			eval: day(30),
			want: 0,
		},
		{
			name: "zero reference date gives zero",
			ref:  time.Time{},
			rule: daily,
			eval: day(30),
			want: 0,
		},
		{
			name: "within grace gives zero",
			ref:  day(0),
			rule: &service.FineRule{FineType: "daily", FineAmount: 10, GraceDays: 5},
			eval: day(5),
			want: 0,
		},
		{
			name: "negative delay gives zero",
			ref:  day(10),
			rule: daily,
			eval: day(3),
			want: 0,
		},
		{
			name: "daily is linear",
			ref:  day(0),
			rule: daily,
			eval: day(7),
			want: 70,
		},
		{
			name: "daily with grace: 10 days late, grace 3, amount 10 -> 70",
			ref:  day(0),
			rule: &service.FineRule{FineType: "daily", FineAmount: 10, GraceDays: 3},
			eval: day(10),
			want: 70,
		},
		{
			name: "weekly uses ceiling: 8 days overdue charges 2 weeks",
			ref:  day(0),
			rule: &service.FineRule{FineType: "weekly", FineAmount: 100, GraceDays: 0},
			eval: day(8),
			want: 200,
		},
		{
			name: "weekly exact week boundary charges 1 week",
			ref:  day(0),
			rule: &service.FineRule{FineType: "weekly", FineAmount: 100, GraceDays: 0},
			eval: day(7),
			want: 100,
		},
		{
			name: "monthly uses ceiling: 31 days overdue charges 2 months",
			ref:  day(0),
			rule: &service.FineRule{FineType: "monthly", FineAmount: 500, GraceDays: 0},
			eval: day(31),
			want: 1000,
		},
		{
			name: "monthly exact 30 days charges 1 month",
			ref:  day(0),
			rule: &service.FineRule{FineType: "monthly", FineAmount: 500, GraceDays: 0},
			eval: day(30),
			want: 500,
		},
		{
			name: "custom type is a silent no-op",
			ref:  day(0),
			rule: &service.FineRule{FineType: "custom", FineAmount: 10, GraceDays: 0},
			eval: day(30),
			want: 0,
		},
		{
			name: "unknown type is a silent no-op",
			ref:  day(0),
			rule: &service.FineRule{FineType: "hourly", FineAmount: 10, GraceDays: 0},
			eval: day(30),
			want: 0,
		},
		{
			name: "uppercase type is normalized",
			ref:  day(0),
			rule: &service.FineRule{FineType: "DAILY", FineAmount: 10, GraceDays: 0},
			eval: day(4),
			want: 40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.CalculateFine(tt.ref, tt.rule, tt.eval))
		})
	}
}

func TestCalculateFineGraceMonthsUnused(t *testing.T) {
	// grace_months tersimpan di aturan tapi tidak mempengaruhi rumus
	rule := &service.FineRule{FineType: "daily", FineAmount: 10, GraceDays: 0, GraceMonths: 12}
	assert.Equal(t, 50, service.CalculateFine(day(0), rule, day(5)))
}
