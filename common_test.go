package logger

import (
	"encoding/binary"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf16"

	"github.com/stretchr/testify/require"
)

// FakeWriter is an in-memory io.Writer safe for cross-goroutine use: the
// worker writes fallback diagnostics to it while tests read.
type FakeWriter struct {
	mu     sync.Mutex
	buffer []byte
}

func (f *FakeWriter) Write(b []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.buffer = append(f.buffer, b...)
	return len(b), nil
}

func (f *FakeWriter) String() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return string(f.buffer)
}

func (f *FakeWriter) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.buffer)
}

// fakeClock is a settable wall clock for rotation boundary tests. Now is
// handed to Logger.now, Set moves the clock from the test goroutine.
type fakeClock struct {
	mu sync.Mutex
	at time.Time
}

func newFakeClock(at time.Time) *fakeClock {
	return &fakeClock{at: at}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.at
}

func (c *fakeClock) Set(at time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.at = at
}

// newTestLogger builds a stopped logger with a FakeWriter fallback, so a
// test never spills diagnostics to the real stderr.
func newTestLogger() (*Logger, *FakeWriter) {
	fbck := &FakeWriter{}
	l := New().SetFallback(fbck)
	return l, fbck
}

// fileLines reads a log file and returns its non-empty lines.
func fileLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// encodeUTF16LE converts a string to UTF-16 little-endian bytes, the wide
// form accepted by the LogWide family.
func encodeUTF16LE(s string) []byte {
	codes := utf16.Encode([]rune(s))
	b := make([]byte, 2*len(codes))
	for i, c := range codes {
		binary.LittleEndian.PutUint16(b[2*i:], c)
	}
	return b
}
