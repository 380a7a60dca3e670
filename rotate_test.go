package logger

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func local(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 30, 0, time.Local)
}

func TestShouldRotate(t *testing.T) {
	base := local(2025, time.March, 14, 15, 9)
	tests := []struct {
		name string
		kind RotationKind
		last time.Time
		now  time.Time
		want bool
	}{
		{"never_same", ROTATE_NEVER, base, base, false},
		{"never_next_year", ROTATE_NEVER, base, local(2026, time.March, 14, 15, 9), false},

		{"minutely_same_minute", ROTATE_MINUTELY, base, base.Add(10 * time.Second), false},
		{"minutely_next_minute", ROTATE_MINUTELY, base, local(2025, time.March, 14, 15, 10), true},
		{"minutely_next_hour_same_minute", ROTATE_MINUTELY, base, local(2025, time.March, 14, 16, 9), true},
		{"minutely_next_day_same_time", ROTATE_MINUTELY, base, local(2025, time.March, 15, 15, 9), true},

		{"hourly_same_hour", ROTATE_HOURLY, base, local(2025, time.March, 14, 15, 59), false},
		{"hourly_next_hour", ROTATE_HOURLY, base, local(2025, time.March, 14, 16, 0), true},
		{"hourly_next_day_same_hour", ROTATE_HOURLY, base, local(2025, time.March, 15, 15, 9), true},

		{"daily_same_day", ROTATE_DAILY, base, local(2025, time.March, 14, 23, 59), false},
		{"daily_next_day", ROTATE_DAILY, base, local(2025, time.March, 15, 0, 0), true},
		{"daily_next_month_same_day", ROTATE_DAILY, base, local(2025, time.April, 14, 15, 9), true},
		{"daily_next_year_same_date", ROTATE_DAILY, base, local(2026, time.March, 14, 15, 9), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldRotate(tt.kind, tt.last, tt.now))
		})
	}
}

func TestShouldRotate_AtMostOncePerBoundary(t *testing.T) {
	// The snapshot comparison fires on the first write after a boundary and
	// stays quiet once the snapshot is advanced to the new period.
	before := local(2025, time.March, 14, 23, 59)
	after := local(2025, time.March, 15, 0, 1)
	assert.True(t, shouldRotate(ROTATE_DAILY, before, after))
	assert.False(t, shouldRotate(ROTATE_DAILY, after, after.Add(time.Hour)))
}

func TestLogFileName(t *testing.T) {
	at := time.Date(2025, time.March, 7, 4, 5, 6, 0, time.Local)
	tests := []struct {
		name string
		kind RotationKind
		want string
	}{
		{"never", ROTATE_NEVER, filepath.Join("logs", "app.log")},
		{"daily", ROTATE_DAILY, filepath.Join("logs", "app_20250307.log")},
		{"hourly", ROTATE_HOURLY, filepath.Join("logs", "app_20250307_04.log")},
		{"minutely", ROTATE_MINUTELY, filepath.Join("logs", "app_20250307_0405.log")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logFileName("logs", "app", tt.kind, at))
		})
	}
}
