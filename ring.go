package logger

/*
Fixed-capacity multi-producer single-consumer ring buffer.

Producers claim a position with a CAS retry loop over the head counter, fill
the slot, then flip its ready flag. The claim is a single atomic reservation:
two producers can never obtain the same position. The consumer walks tail
forward over ready slots and stops at the first one still being filled, which
preserves claim order even when a slow producer is overtaken by a fast one.

When the ring is full producers wait (bounded sleep between retries) instead
of dropping or overwriting: the overflow policy is backpressure.
*/

import (
	"time"
)

// claimRetryDelay is the producer-side sleep while the ring is full.
const claimRetryDelay = time.Millisecond

func newRingBuffer(size int) *ringBuffer {
	if size <= 0 {
		size = BUFFER_SIZE
	}
	return &ringBuffer{slots: make([]slot, size)}
}

func (rb *ringBuffer) size() uint64 {
	return uint64(len(rb.slots))
}

// tryClaim atomically reserves the next write position. Returns false when
// the ring is full. On success the caller owns slots[pos] until it publishes
// the slot with a ready store.
func (rb *ringBuffer) tryClaim() (pos uint64, ok bool) {
	for {
		head := rb.head.Load()
		if head-rb.tail.Load() >= rb.size() {
			return 0, false
		}
		if rb.head.CompareAndSwap(head, head+1) {
			return head, true
		}
	}
}

// enqueue publishes rec to the consumer, waiting while the ring is full.
// giveUp is polled between retries; when it reports true the record is
// abandoned and enqueue returns false. A nil giveUp waits indefinitely.
func (rb *ringBuffer) enqueue(rec record, giveUp func() bool) bool {
	for {
		if pos, ok := rb.tryClaim(); ok {
			s := &rb.slots[pos%rb.size()]
			s.rec = rec
			s.ready.Store(true)
			return true
		}
		if giveUp != nil && giveUp() {
			return false
		}
		time.Sleep(claimRetryDelay)
	}
}

// drainReady processes every slot that is ready in claim order and hands its
// record to emit. It stops at the head position or at the first slot whose
// producer has not published yet. Must be called from a single goroutine.
// Returns the number of records emitted.
func (rb *ringBuffer) drainReady(emit func(record)) (drained int) {
	for {
		tail := rb.tail.Load()
		if tail == rb.head.Load() {
			break
		}
		s := &rb.slots[tail%rb.size()]
		if !s.ready.Load() {
			break
		}
		emit(s.rec)
		s.rec = record{} // release the payload before the slot is reused
		s.ready.Store(false)
		rb.tail.Store(tail + 1)
		drained++
	}
	return drained
}

// buffered reports how many positions are currently claimed and not yet
// drained. Racy by nature, only used for tests and diagnostics.
func (rb *ringBuffer) buffered() int {
	return int(rb.head.Load() - rb.tail.Load())
}
