package dateutil

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysBetween(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want int
	}{
		{"same day", date(2026, 3, 10), date(2026, 3, 10), 0},
		{"one day apart", date(2026, 3, 10), date(2026, 3, 11), 1},
		{"ignores time of day", date(2026, 3, 10).Add(23 * time.Hour), date(2026, 3, 11), 1},
		{"negative when reversed", date(2026, 3, 11), date(2026, 3, 10), -1},
		{"across month boundary", date(2026, 2, 27), date(2026, 3, 2), 3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DaysBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("DaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStartOfWeek(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday maps to itself", date(2026, 3, 9), date(2026, 3, 9)},
		{"wednesday maps to monday", date(2026, 3, 11), date(2026, 3, 9)},
		{"sunday maps to previous monday", date(2026, 3, 15), date(2026, 3, 9)},
		{"time of day dropped", date(2026, 3, 11).Add(17 * time.Hour), date(2026, 3, 9)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StartOfWeek(tt.in); !got.Equal(tt.want) {
				t.Errorf("StartOfWeek() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithinLastDays(t *testing.T) {
	t.Parallel()

	now := date(2026, 3, 15)

	tests := []struct {
		name string
		t    time.Time
		n    int
		want bool
	}{
		{"today counts", now, 7, true},
		{"six days ago counts", date(2026, 3, 9), 7, true},
		{"seven days ago excluded", date(2026, 3, 8), 7, false},
		{"future excluded", date(2026, 3, 16), 7, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := WithinLastDays(now, tt.t, tt.n); got != tt.want {
				t.Errorf("WithinLastDays() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithinNextDays(t *testing.T) {
	t.Parallel()

	now := date(2026, 3, 15).Add(8 * time.Hour)

	tests := []struct {
		name string
		t    time.Time
		n    int
		want bool
	}{
		{"now itself excluded", now, 7, false},
		{"later today counts", now.Add(time.Hour), 7, true},
		{"seventh day counts", date(2026, 3, 22), 7, true},
		{"eighth day excluded", date(2026, 3, 23), 7, false},
		{"past excluded", date(2026, 3, 14), 7, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := WithinNextDays(now, tt.t, tt.n); got != tt.want {
				t.Errorf("WithinNextDays() = %v, want %v", got, tt.want)
			}
		})
	}
}
