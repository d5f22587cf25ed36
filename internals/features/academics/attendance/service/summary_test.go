package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"schoolku_backend/internals/features/academics/attendance/service"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		rows []service.StatusCount
		want service.Summary
	}{
		{
			name: "empty input gives zero percentage",
			rows: nil,
			want: service.Summary{},
		},
		{
			name: "all present",
			rows: []service.StatusCount{{Status: "present", Count: 10}},
			want: service.Summary{Total: 10, Present: 10, Percentage: 100},
		},
		{
			name: "mixed statuses",
			rows: []service.StatusCount{
				{Status: "present", Count: 18},
				{Status: "absent", Count: 5},
				{Status: "leave", Count: 2},
			},
			want: service.Summary{Total: 25, Present: 18, Absent: 5, Leave: 2, Percentage: 72},
		},
		{
			name: "percentage rounded to two decimals",
			rows: []service.StatusCount{
				{Status: "present", Count: 1},
				{Status: "absent", Count: 2},
			},
			want: service.Summary{Total: 3, Present: 1, Absent: 2, Percentage: 33.33},
		},
		{
			name: "unknown status counts toward total only",
			rows: []service.StatusCount{
				{Status: "present", Count: 3},
				{Status: "sick", Count: 1},
			},
			want: service.Summary{Total: 4, Present: 3, Percentage: 75},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.Summarize(tt.rows))
		})
	}
}
