package logger

/*
fileSink: exclusive owner of the open output file.

Sink trouble is never fatal for the logging path. A failed open leaves the
sink without a handle; writes drain into nothing (with a one-line report to
the fallback writer) until the next rotation attempt opens a file again.
*/

import (
	"io"
	"os"
)

const (
	logDirPerm  = 0o755
	logFilePerm = 0o644
)

func newFileSink(fallback io.Writer) *fileSink {
	return &fileSink{fallbck: fallback}
}

// open creates the log directory if needed and opens path for appending.
// Any previously held handle must have been closed by the caller. Failure is
// reported to the fallback writer and leaves the sink without a handle.
func (fs *fileSink) open(path string) {
	// MkdirAll is a no-op for an existing directory; a creation error will
	// surface in OpenFile right after.
	os.MkdirAll(fs.dir, logDirPerm)

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFilePerm)
	if err != nil {
		fs.file = nil
		fbckWriteln(fs.fallbck, "failed to open log file `"+path+"`: "+err.Error())
		return
	}
	fs.file = file
}

// write appends one record line. A write error closes the handle so the
// sink stays down until the next rotation reopens it.
func (fs *fileSink) write(line []byte) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.file == nil {
		return
	}
	if _, err := fs.file.Write(line); err != nil {
		fbckWriteln(fs.fallbck, "failed to write log record: "+err.Error())
		fs.file.Close()
		fs.file = nil
	}
}

// rotate closes the current handle if any (flushing it first) and opens
// path as the new output file. Also used for the initial open on Init.
func (fs *fileSink) rotate(path string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.closeLocked()
	fs.open(path)
}

// close flushes and closes the handle. Safe to call when already closed.
func (fs *fileSink) close() {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.closeLocked()
}

func (fs *fileSink) closeLocked() {
	if fs.file == nil {
		return
	}
	fs.file.Sync()
	fs.file.Close()
	fs.file = nil
}

// opened reports whether a handle is currently held.
func (fs *fileSink) opened() bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.file != nil
}
