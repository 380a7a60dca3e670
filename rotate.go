package logger

/*
Rotation policy: pure decisions over local calendar snapshots.

Rotation is calendar-driven, not duration-driven: a file rolls when the
minute/hour/day field (plus every coarser field) of the wall clock differs
between the last rotation and the moment a record is about to be written.
The check is lazy, so a boundary crossed while nothing is logged produces no
empty file, and a single boundary crossing triggers at most one rotation.
*/

import (
	"path/filepath"
	"time"
)

// shouldRotate reports whether the calendar boundary for kind was crossed
// between last and now. Both times are expected in the same (local) zone.
func shouldRotate(kind RotationKind, last, now time.Time) bool {
	if last.Year() != now.Year() || last.Month() != now.Month() || last.Day() != now.Day() {
		return kind != ROTATE_NEVER
	}
	switch kind {
	case ROTATE_MINUTELY:
		return last.Hour() != now.Hour() || last.Minute() != now.Minute()
	case ROTATE_HOURLY:
		return last.Hour() != now.Hour()
	default:
		return false
	}
}

// stampLayout returns the time.Format layout of the file name timestamp for
// a rotation kind, empty for ROTATE_NEVER.
func stampLayout(kind RotationKind) string {
	switch kind {
	case ROTATE_MINUTELY:
		return "20060102_1504"
	case ROTATE_HOURLY:
		return "20060102_15"
	case ROTATE_DAILY:
		return "20060102"
	default:
		return ""
	}
}

// logFileName derives the output file path for a rotation snapshot:
// dir/prefix.log for ROTATE_NEVER, dir/prefix_<stamp>.log otherwise.
func logFileName(dir, prefix string, kind RotationKind, at time.Time) string {
	layout := stampLayout(kind)
	if layout == "" {
		return filepath.Join(dir, prefix+".log")
	}
	return filepath.Join(dir, prefix+"_"+at.Format(layout)+".log")
}
