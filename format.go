package logger

/*
Record formatting. A line is fully built on the producer side so the ring
carries finished bytes:

	2025-08-31T14:03:05.123+09:00 [INFO] message\n

The timestamp is RFC3339 in local time with millisecond precision and a
signed UTC offset.
*/

import (
	"time"
)

// stampFormat is the time.Format layout of the leading timestamp.
const stampFormat = "2006-01-02T15:04:05.000-07:00"

// buildLine assembles the final on-disk representation of one record.
func buildLine(at time.Time, level LogLevel, msg string) []byte {
	name := LevelNames[normLevel(level)]
	line := make([]byte, 0, len(stampFormat)+len(name)+len(msg)+4)
	line = at.AppendFormat(line, stampFormat)
	line = append(line, ' ', '[')
	line = append(line, name...)
	line = append(line, ']', ' ')
	line = append(line, msg...)
	line = append(line, '\n')
	return line
}
