package model_test

import (
	"testing"
	"time"

	"github.com/SamTech-crypto/audit-workflow-app/internal/model"
)

func TestDaysUntilDue(t *testing.T) {
	day := func(d string) time.Time {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			t.Fatalf("bad day %q: %v", d, err)
		}
		return parsed
	}

	tcs := []struct {
		name string
		due  time.Time
		now  time.Time
		want int
	}{
		{
			name: "due today at noon",
			due:  day("2026-08-30"),
			now:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "due in two days regardless of clock time",
			due:  day("2026-09-01"),
			now:  time.Date(2026, 8, 30, 23, 30, 0, 0, time.UTC),
			want: 2,
		},
		{
			name: "overdue by one counts a full day late",
			due:  day("2026-08-29"),
			now:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
			want: -1,
		},
		{
			name: "overdue by two",
			due:  day("2026-08-28"),
			now:  time.Date(2026, 8, 30, 0, 0, 1, 0, time.UTC),
			want: -2,
		},
		{
			name: "now in another zone still compares calendar days",
			due:  day("2026-09-01"),
			now:  time.Date(2026, 8, 30, 18, 0, 0, 0, time.FixedZone("UTC+7", 7*3600)),
			want: 2,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			task := model.Task{ID: "T1", DueDate: tc.due}
			if got := task.DaysUntilDue(tc.now); got != tc.want {
				t.Errorf("DaysUntilDue = %d, want %d", got, tc.want)
			}
		})
	}
}
