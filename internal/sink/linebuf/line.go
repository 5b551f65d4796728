// Package linebuf provides the bounded sample queue behind the device sinks.
//
// A Line behaves like a sound card line: the writer blocks while the queue is
// full, the device callback reads whatever is queued and pads the rest with
// silence, and Drain waits until everything written has been handed to the device.
package linebuf

import (
	"io"
	"sync"
)

// Line is a bounded FIFO of 8-bit signed samples. Write and Read may be called
// from different goroutines.
type Line struct {
	mu       sync.Mutex
	cond     *sync.Cond
	buf      []byte
	capacity int
	closed   bool
	consumed int64
}

// New returns a Line holding at most capacity queued bytes.
func New(capacity int) *Line {
	if capacity <= 0 {
		capacity = 1
	}
	l := &Line{capacity: capacity}
	l.cond = sync.NewCond(&l.mu)
	return l
}

// Write queues p, blocking while the line is full. It returns io.ErrClosedPipe
// once the line is closed.
func (l *Line) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	written := 0
	for written < len(p) {
		for !l.closed && len(l.buf) >= l.capacity {
			l.cond.Wait()
		}
		if l.closed {
			return written, io.ErrClosedPipe
		}
		n := min(len(p)-written, l.capacity-len(l.buf))
		l.buf = append(l.buf, p[written:written+n]...)
		written += n
	}
	return written, nil
}

// Read fills p with queued samples followed by silence. It never blocks and
// always fills p completely.
func (l *Line) Read(p []byte) (int, error) {
	l.mu.Lock()
	n := copy(p, l.buf)
	if n > 0 {
		l.buf = l.buf[:copy(l.buf, l.buf[n:])]
		l.consumed += int64(n)
		l.cond.Broadcast()
	}
	l.mu.Unlock()

	clear(p[n:])
	return len(p), nil
}

// Drain blocks until every queued byte has been read or the line is closed.
func (l *Line) Drain() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for !l.closed && len(l.buf) > 0 {
		l.cond.Wait()
	}
}

// Buffered returns the number of queued bytes.
func (l *Line) Buffered() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buf)
}

// Consumed returns the number of bytes read so far.
func (l *Line) Consumed() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.consumed
}

// Close drops queued samples and wakes blocked writers and drainers.
func (l *Line) Close() {
	l.mu.Lock()
	l.closed = true
	l.buf = nil
	l.cond.Broadcast()
	l.mu.Unlock()
}
