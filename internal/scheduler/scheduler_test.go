package scheduler

import (
	"testing"
	"time"
)

func TestNextFire(t *testing.T) {
	loc := time.UTC
	cases := []struct {
		name string
		now  time.Time
		hour int
		want time.Time
	}{
		{
			"before the hour fires today",
			time.Date(2024, 3, 15, 6, 30, 0, 0, loc), 8,
			time.Date(2024, 3, 15, 8, 0, 0, 0, loc),
		},
		{
			"after the hour fires tomorrow",
			time.Date(2024, 3, 15, 9, 0, 0, 0, loc), 8,
			time.Date(2024, 3, 16, 8, 0, 0, 0, loc),
		},
		{
			"exactly on the hour fires tomorrow",
			time.Date(2024, 3, 15, 8, 0, 0, 0, loc), 8,
			time.Date(2024, 3, 16, 8, 0, 0, 0, loc),
		},
		{
			"month boundary",
			time.Date(2024, 3, 31, 10, 0, 0, 0, loc), 8,
			time.Date(2024, 4, 1, 8, 0, 0, 0, loc),
		},
		{
			"year boundary",
			time.Date(2024, 12, 31, 23, 59, 0, 0, loc), 8,
			time.Date(2025, 1, 1, 8, 0, 0, 0, loc),
		},
	}
	for _, tc := range cases {
		if got := NextFire(tc.now, tc.hour); !got.Equal(tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}
