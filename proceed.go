package logger

// never use fmt in the drain goroutine!

import (
	"io"
	"time"
)

/*
proceed.go

Contains the background drain loop: the single consumer of the ring buffer.
Responsible for:
  - polling the ring and writing ready records to the file sink
  - checking the rotation policy before each drained write
  - reacting to the stop flag with one final drain pass, then flushing and
    closing the sink
  - error reporting to the fallback writer
*/

// pollInterval is how long the drain goroutine sleeps when the ring holds
// nothing ready. Polling caps the worker's idle CPU use while bounding the
// worst-case publish latency to one interval.
const pollInterval = 10 * time.Millisecond

// fbckWriteln writes a single-line message to the fallback writer. Used to
// report internal errors encountered outside the caller's control flow.
func fbckWriteln(w io.Writer, s string) {
	if w != nil {
		w.Write([]byte(s + "\n"))
	}
}

func (c *loggerCore) fbckWriteln(s string) {
	fbckWriteln(c.fallbck, s)
}

// setState sets the logger state with locking; normalizes the provided
// state before assignment.
func (c *loggerCore) setState(newstate lgrState) {
	c.sync.statMtx.Lock()
	defer c.sync.statMtx.Unlock()
	c.state = normState(newstate)
}

// proceed is the background drain loop. It polls the ring while the running
// flag is set, then performs one last drain pass so that every record
// published before Finalize was called reaches the file, and finally flushes
// and closes the sink.
//
// The function recovers panics so the goroutine cannot die silently;
// recovery triggers a fallback write and the state still moves to stopped.
//
// proceed runs on the core, never on the Logger handle: the goroutine must
// not keep an abandoned handle reachable, or its finalizer could never run.
func (c *loggerCore) proceed() {
	defer func() {
		if r := recover(); r != nil {
			c.fbckWriteln("panic draining log queue" + panicDesc(r))
		}
		c.sink.close()
		c.setState(_STATE_STOPPED)
	}()
	for c.running.Load() {
		if c.drainOnce() == 0 {
			time.Sleep(pollInterval)
		}
	}
	// Stop was requested: pick up whatever was published before the flag
	// flipped, then let the deferred close flush the sink.
	c.drainOnce()
}

// drainOnce writes every currently-ready record to the sink, consulting the
// rotation policy before each one. Runs only on the drain goroutine, which
// is the sole mutator of lastRotation and sole driver of the sink.
func (c *loggerCore) drainOnce() int {
	return c.ring.drainReady(func(rec record) {
		now := c.now()
		if shouldRotate(c.rotation, c.lastRotation, now) {
			c.lastRotation = now
			c.sink.rotate(logFileName(c.dir, c.prefix, c.rotation, now))
		}
		c.sink.write(rec.line)
	})
}
