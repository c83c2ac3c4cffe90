package core

import (
	"testing"
	"time"
)

func TestPreviousPeriod(t *testing.T) {
	cases := []struct {
		today     string
		wantYear  int
		wantMonth time.Month
	}{
		{"2024-03-01", 2024, time.February},
		{"2024-01-01", 2023, time.December},
		{"2024-12-15", 2024, time.November},
	}
	for _, tc := range cases {
		today, err := time.Parse(DateLayout, tc.today)
		if err != nil {
			t.Fatal(err)
		}
		year, month := PreviousPeriod(today)
		if year != tc.wantYear || month != tc.wantMonth {
			t.Errorf("%s: expected %d/%s, got %d/%s", tc.today, tc.wantYear, tc.wantMonth, year, month)
		}
	}
}

func TestIsReminderDay(t *testing.T) {
	first := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)
	if !IsReminderDay(first) {
		t.Error("the 1st should be a reminder day")
	}
	if IsReminderDay(first.AddDate(0, 0, 1)) {
		t.Error("the 2nd should not be a reminder day")
	}
}

func TestPeriodLabel(t *testing.T) {
	d := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	if got := PeriodLabel(d); got != "December 2024" {
		t.Errorf("expected \"December 2024\", got %q", got)
	}
}
