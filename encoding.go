package logger

/*
Boundary adapter for wide text. The public API accepts messages either as
native (UTF-8) strings or as UTF-16 encoded bytes; the wide form is converted
exactly once, before any shared state is touched, and everything behind the
boundary is plain UTF-8.
*/

import (
	"golang.org/x/text/encoding/unicode"
)

// decodeWide converts a UTF-16 byte sequence to a UTF-8 string. A leading
// BOM selects the byte order and is stripped; without one little-endian is
// assumed. A conversion failure (including an odd byte count) yields an
// empty string: the record is still emitted, just with an empty message body.
func decodeWide(b []byte) string {
	if len(b) == 0 || len(b)%2 != 0 {
		return ""
	}
	decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	out, err := decoder.Bytes(b)
	if err != nil {
		return ""
	}
	return string(out)
}
