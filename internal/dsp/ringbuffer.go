// Package dsp holds the shared, stateful ring buffer between the FM
// modulator and the polyphase interpolator, the Kaiser-windowed low-pass
// filter designer, and the polyphase interpolator itself.
package dsp

// RingBuffer is a bounded contiguous FIFO of complex64 samples.
//
// Spec section 9 explicitly trades the original's lock-free SPSC
// ring buffer for this simpler structure: the core is single-threaded,
// so there's nothing to make lock-free, and a slice-backed circular
// buffer with WriteAvailable/ReadAvailable/Push/At/Remove is easier to
// reason about while keeping the same contract.
type RingBuffer struct {
	buf    []complex64
	head   int
	length int
}

// NewRingBuffer allocates a ring buffer with the given capacity. Spec
// section 5 calls for capacity >= 2*BUFSIZE to tolerate the worst-case
// transient occupancy of one full write block.
func NewRingBuffer(capacity int) *RingBuffer {
	return &RingBuffer{buf: make([]complex64, capacity)}
}

// Capacity returns the buffer's total slot count.
func (r *RingBuffer) Capacity() int { return len(r.buf) }

// WriteAvailable returns how many more samples can be pushed before the
// buffer is full.
func (r *RingBuffer) WriteAvailable() int { return len(r.buf) - r.length }

// ReadAvailable returns how many samples are currently queued.
func (r *RingBuffer) ReadAvailable() int { return r.length }

// Push appends one complex sample built from (i, q) components. It
// returns false if the buffer is full; the pipeline always sizes block
// writes to fit, so a false here indicates a caller bug.
func (r *RingBuffer) Push(i, q float32) bool {
	if r.length == len(r.buf) {
		return false
	}

	r.buf[(r.head+r.length)%len(r.buf)] = complex(i, q)
	r.length++

	return true
}

// At returns the sample at offset i from the head of the queue, without
// removing it.
func (r *RingBuffer) At(i int) complex64 {
	return r.buf[(r.head+i)%len(r.buf)]
}

// Remove drops the first n samples from the queue.
func (r *RingBuffer) Remove(n int) {
	r.head = (r.head + n) % len(r.buf)
	r.length -= n
}
