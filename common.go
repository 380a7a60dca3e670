package logger

/*
Defines the package-wide constants, enums and small helper utilities:
  - basetype and the typed aliases built on it
  - log levels and rotation kinds with their normalization helpers
  - logger lifecycle states
  - default sizes and timings of the ring/worker machinery
*/

const (
	// Error messages used across logger operations (shared with tests).
	_ERROR_MESSAGE_EMPTY_PREFIX = "log file prefix is empty"
	_ERROR_MESSAGE_EMPTY_PATH   = "config path is empty"
	_ERROR_MESSAGE_BAD_FORMAT   = "unsupported config format"
	_ERROR_MESSAGE_BAD_LEVEL    = "unknown log level name"
	_ERROR_MESSAGE_BAD_ROTATION = "unknown rotation kind name"
	_ERROR_UNKNOWN_PANIC_TEXT   = "[no panic description]"
)

type basetype byte // underlying byte-sized representation used for enums

type LogLevel basetype     // log severity (alias for byte)
type RotationKind basetype // calendar granularity of file rotation
type lgrState basetype

const (
	// Log level values, ascending by severity. The trailing
	// _LVL_MAX_for_checks_only is the exclusive upper bound used by
	// normalization checks.
	LVL_DEBUG LogLevel = iota
	LVL_INFO
	LVL_WARN
	LVL_ERROR
	_LVL_MAX_for_checks_only
)

const (
	// Rotation kinds. A file is rolled when the corresponding local calendar
	// field (and every coarser one) changes between two drained writes.
	ROTATE_MINUTELY RotationKind = iota
	ROTATE_HOURLY
	ROTATE_DAILY
	ROTATE_NEVER
	_ROTATE_MAX_for_checks_only
)

const (
	// Logger lifecycle states.
	_STATE_STOPPED lgrState = iota
	_STATE_ACTIVE
	_STATE_STOPPING
	_STATE_MAX_for_checks_only
)

const (
	// Default values of the queue/worker machinery.
	DEFAULT_LOG_LEVEL = LVL_DEBUG
	DEFAULT_ROTATION  = ROTATE_NEVER

	// BUFFER_SIZE is the fixed slot count of the ring buffer. The ring is
	// allocated once per logger and reused across re-initializations.
	BUFFER_SIZE = 1024
)

// LevelMap is a fixed-size array with one entry per log level.
type LevelMap [_LVL_MAX_for_checks_only]string

// Log level names as they appear in the output line between brackets.
var LevelNames = &LevelMap{
	"DEBUG", //LVL_DEBUG
	"INFO",  //LVL_INFO
	"WARN",  //LVL_WARN
	"ERROR", //LVL_ERROR
}

// Generic byte normalization helper.
func norm_byte[T ~byte](val, overlimit, def T) T {
	if val < overlimit {
		return val
	} else {
		return def
	}
}

// Ensures a provided LogLevel is within the valid range
func normLevel(level LogLevel) LogLevel {
	return norm_byte(level, _LVL_MAX_for_checks_only, LVL_ERROR)
}

// Ensures a provided RotationKind is within the valid range
func normRotation(kind RotationKind) RotationKind {
	return norm_byte(kind, _ROTATE_MAX_for_checks_only, ROTATE_NEVER)
}

// Ensures a provided lgrState is within the valid range
func normState(state lgrState) lgrState {
	return norm_byte(state, _STATE_MAX_for_checks_only, _STATE_STOPPED)
}

// Converts a panic value into a compact readable string (used when
// translating panics into fallback messages)
func panicDesc(panic any) (errtext string) {
	switch v := panic.(type) {
	case string:
		errtext = ": `" + v + "`"
	case error:
		errtext = ": (error) `" + v.Error() + "`"
	default:
		errtext = " " + _ERROR_UNKNOWN_PANIC_TEXT
	}
	return errtext
}
