// A lightweight, levelled, asynchronous file logging package for Go.
// Callers never block on disk I/O: accepted records are timestamped,
// formatted and handed to a fixed-size ring buffer; one background goroutine
// drains the ring into a rotating log file.
package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"
)

// New constructs a stopped logger. The ring buffer is allocated once here
// and survives every Init/Finalize cycle. Internal errors (sink failures,
// worker panics) are reported to os.Stderr until SetFallback changes that.
//
// A finalizer is attached to the handle so a logger that goes out of scope
// without an explicit Finalize still stops its goroutine and flushes the
// file. The drain goroutine holds the core only, never the handle, so losing
// the last handle reference makes it collectable even while running.
//
// Preferred usage example:
//
//	func main() {
//	    l := logger.New()
//	    if err := l.Init(logger.LVL_INFO, "logs", "app", logger.ROTATE_DAILY); err != nil {
//	        ...
//	    }
//	    defer l.Finalize()
//	    l.Infof("started, pid %d", os.Getpid())
//	}
func New() *Logger {
	c := new(loggerCore)
	c.ring = newRingBuffer(BUFFER_SIZE)
	c.fallbck = os.Stderr
	c.sink = newFileSink(c.fallbck)
	c.now = time.Now
	c.state = _STATE_STOPPED
	c.level.Store(int32(DEFAULT_LOG_LEVEL))

	l := &Logger{core: c}
	runtime.SetFinalizer(l, func(fl *Logger) { fl.Finalize() })
	return l
}

// Init stores the configuration, opens the initial output file and starts
// the drain goroutine. If the logger is already running it is finalized
// first, so Init doubles as a safe re-initialization.
//
// A sink that cannot be opened is not an Init failure: the condition is
// reported to the fallback writer and the logger runs without a file until
// a rotation reopens one (records drained meanwhile are discarded).
func (l *Logger) Init(level LogLevel, directory, prefix string, rotation RotationKind) error {
	return l.core.init(level, directory, prefix, rotation)
}

func (c *loggerCore) init(level LogLevel, directory, prefix string, rotation RotationKind) error {
	c.sync.initMtx.Lock()
	defer c.sync.initMtx.Unlock()
	if c.running.Load() {
		c.finalize()
	}
	if prefix == "" {
		return errors.New(_ERROR_MESSAGE_EMPTY_PREFIX)
	}

	c.level.Store(int32(normLevel(level)))
	c.dir = directory
	c.prefix = prefix
	c.rotation = normRotation(rotation)
	c.lastRotation = c.now()

	c.sink.dir = directory
	c.sink.fallbck = c.fallbck
	c.sink.rotate(logFileName(c.dir, c.prefix, c.rotation, c.lastRotation))

	c.running.Store(true)
	c.setState(_STATE_ACTIVE)
	c.sync.waitEnd.Add(1)
	go func() {
		defer c.sync.waitEnd.Done()
		c.proceed()
	}()
	return nil
}

// Finalize stops the drain goroutine and waits for it to exit; the worker
// drains everything published before the stop and closes the file on its
// way out. Calling Finalize on a stopped logger is a no-op, and concurrent
// callers are safe: only the caller that performs the running transition
// joins the worker.
func (l *Logger) Finalize() {
	l.core.shutdown()
}

func (c *loggerCore) shutdown() {
	c.sync.initMtx.Lock()
	defer c.sync.initMtx.Unlock()
	c.finalize()
}

// finalize is the locked part of shutdown, shared with init's re-init path.
func (c *loggerCore) finalize() {
	if !c.running.CompareAndSwap(true, false) {
		return
	}
	c.setState(_STATE_STOPPING)
	c.sync.waitEnd.Wait()
}

// IsRunning reports whether the logger currently accepts records.
func (l *Logger) IsRunning() bool {
	return l.core.running.Load()
}

// MinLevel returns the level threshold configured by the last Init.
func (l *Logger) MinLevel() LogLevel {
	return l.core.minLevel()
}

func (c *loggerCore) minLevel() LogLevel {
	return LogLevel(c.level.Load())
}

// SetFallback changes the writer used to report internal errors. io.Discard
// is used instead of nil to silently drop fallback messages. Must be called
// while the logger is stopped.
func (l *Logger) SetFallback(f io.Writer) *Logger {
	if f == nil {
		f = io.Discard
	}
	l.core.fallbck = f
	l.core.sink.fallbck = f
	return l
}

// Log submits one record. The call is dropped silently (no error, no side
// effect) when the level is below the configured threshold or the logger is
// not running. When the ring buffer is full the call waits for space instead
// of dropping the record, unless the logger stops while it waits.
func (l *Logger) Log(level LogLevel, msg string) {
	l.core.log(level, msg)
}

func (c *loggerCore) log(level LogLevel, msg string) {
	level = normLevel(level)
	if !c.running.Load() || level < c.minLevel() {
		return
	}
	rec := record{level: level, line: buildLine(c.now(), level, msg)}
	c.ring.enqueue(rec, func() bool { return !c.running.Load() })
}

// Logf submits one record built from a printf-style template.
func (l *Logger) Logf(level LogLevel, format string, args ...any) {
	c := l.core
	level = normLevel(level)
	if !c.running.Load() || level < c.minLevel() {
		return
	}
	c.log(level, fmt.Sprintf(format, args...))
}

// LogWide submits a record whose message is UTF-16 encoded (see decodeWide
// for byte order handling). The text is converted before anything is queued.
func (l *Logger) LogWide(level LogLevel, msg []byte) {
	l.core.log(level, decodeWide(msg))
}

// LogfWide is Logf with a UTF-16 encoded template.
func (l *Logger) LogfWide(level LogLevel, format []byte, args ...any) {
	c := l.core
	level = normLevel(level)
	if !c.running.Load() || level < c.minLevel() {
		return
	}
	c.log(level, fmt.Sprintf(decodeWide(format), args...))
}

// Debug logs a plain message at LVL_DEBUG.
func (l *Logger) Debug(msg string) { l.Log(LVL_DEBUG, msg) }

// Info logs a plain message at LVL_INFO.
func (l *Logger) Info(msg string) { l.Log(LVL_INFO, msg) }

// Warn logs a plain message at LVL_WARN.
func (l *Logger) Warn(msg string) { l.Log(LVL_WARN, msg) }

// Error logs a plain message at LVL_ERROR.
func (l *Logger) Error(msg string) { l.Log(LVL_ERROR, msg) }

// Debugf logs a formatted message at LVL_DEBUG.
func (l *Logger) Debugf(format string, args ...any) { l.Logf(LVL_DEBUG, format, args...) }

// Infof logs a formatted message at LVL_INFO.
func (l *Logger) Infof(format string, args ...any) { l.Logf(LVL_INFO, format, args...) }

// Warnf logs a formatted message at LVL_WARN.
func (l *Logger) Warnf(format string, args ...any) { l.Logf(LVL_WARN, format, args...) }

// Errorf logs a formatted message at LVL_ERROR.
func (l *Logger) Errorf(format string, args ...any) { l.Logf(LVL_ERROR, format, args...) }

// DebugfWide logs a UTF-16 template at LVL_DEBUG.
func (l *Logger) DebugfWide(format []byte, args ...any) { l.LogfWide(LVL_DEBUG, format, args...) }

// InfofWide logs a UTF-16 template at LVL_INFO.
func (l *Logger) InfofWide(format []byte, args ...any) { l.LogfWide(LVL_INFO, format, args...) }

// WarnfWide logs a UTF-16 template at LVL_WARN.
func (l *Logger) WarnfWide(format []byte, args ...any) { l.LogfWide(LVL_WARN, format, args...) }

// ErrorfWide logs a UTF-16 template at LVL_ERROR.
func (l *Logger) ErrorfWide(format []byte, args ...any) { l.LogfWide(LVL_ERROR, format, args...) }
