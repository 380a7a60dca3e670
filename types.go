package logger

/*
Defines the core data structures used by the logger:
  - record: one formatted, timestamped line as it travels through the ring
  - slot and ringBuffer: the fixed-capacity producer/consumer hand-off
  - fileSink: owner of the single open output file handle
  - loggerCore: the central state object that coordinates the ring, the
    sink and the background drain goroutine
  - Logger: the public handle wrapping one loggerCore.
*/

import (
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// record is the unit handed from producers to the drain goroutine. The line
// already carries the timestamp, the level tag and the trailing newline, so
// the consumer side never formats anything.
type record struct {
	level LogLevel
	line  []byte
}

// slot is one ring buffer cell. A producer that claimed the slot is its only
// writer until ready flips to true; from then on the drain goroutine is its
// only reader until it flips ready back.
type slot struct {
	ready atomic.Bool
	rec   record
}

// ringBuffer is a fixed-capacity multi-producer single-consumer queue.
// head and tail are absolute (never wrapped) counters; a slot index is the
// counter modulo the slot count. Absolute counters keep the head CAS free of
// modular ABA collisions and make every slot usable.
type ringBuffer struct {
	slots []slot
	head  atomic.Uint64 // next position to claim for writing
	tail  atomic.Uint64 // next position to drain, touched only by the consumer
}

// fileSink owns at most one open output file. Every mutation of the handle
// (open, write, rotate, close) happens under mu.
type fileSink struct {
	mu      sync.Mutex
	file    *os.File
	dir     string
	fallbck io.Writer // where open/write failures are reported
}

// Logger is the public handle. It wraps the core that the drain goroutine
// works on; the goroutine never references the handle itself, so a handle
// abandoned by its last holder becomes collectable while running and its
// finalizer can still stop the worker.
type Logger struct {
	core *loggerCore
}

// loggerCore is the central state holder: one ring, one sink and one drain
// goroutine. init starts the goroutine, finalize stops it and joins.
type loggerCore struct {
	sync struct {
		initMtx sync.Mutex     // serializes Init/Finalize transitions
		statMtx sync.Mutex     // guards the state field
		waitEnd sync.WaitGroup // tracks the drain goroutine lifecycle
	}
	ring    *ringBuffer
	sink    *fileSink
	fallbck io.Writer // fallback writer used to report internal errors

	// Configuration, written by Init while the worker is stopped.
	level    atomic.Int32 // minimal accepted LogLevel, read by producers
	dir      string
	prefix   string
	rotation RotationKind

	// lastRotation is the calendar snapshot of the last rotation. Owned by
	// the drain goroutine once it is running.
	lastRotation time.Time

	now func() time.Time // wall clock source, replaceable in tests

	running atomic.Bool
	state   lgrState
}
