// Package telemetry bridges OpenTelemetry spans to the progress renderers.
package telemetry

import (
	"bytes"
	"errors"
	"sync"
	"time"
)

const (
	// DefaultSizeLimit is the buffered byte count that forces a flush.
	DefaultSizeLimit = 4096
	// DefaultTimeLimit is the interval after which buffered lines are flushed.
	DefaultTimeLimit = 50 * time.Millisecond
)

// ErrBatcherClosed is returned when writing to a closed LineBatcher.
var ErrBatcherClosed = errors.New("line batcher is closed")

// LineBatcher buffers span output and hands it to onFlush in whole lines,
// either when sizeLimit bytes are buffered or every timeLimit.
// A trailing partial line is held back until it is completed or the batcher is closed.
type LineBatcher struct {
	sizeLimit int
	timeLimit time.Duration
	onFlush   func([]byte)

	mu     sync.Mutex
	buffer bytes.Buffer
	ticker *time.Ticker
	stopCh chan struct{}
	closed bool
}

// NewLineBatcher returns a running LineBatcher. Non-positive limits select the defaults.
// Call Close to stop the background flusher.
func NewLineBatcher(sizeLimit int, timeLimit time.Duration, onFlush func([]byte)) *LineBatcher {
	if sizeLimit <= 0 {
		sizeLimit = DefaultSizeLimit
	}
	if timeLimit <= 0 {
		timeLimit = DefaultTimeLimit
	}

	lb := &LineBatcher{
		sizeLimit: sizeLimit,
		timeLimit: timeLimit,
		onFlush:   onFlush,
		stopCh:    make(chan struct{}),
		ticker:    time.NewTicker(timeLimit),
	}
	go lb.run()
	return lb
}

// Write buffers p, flushing complete lines once sizeLimit is reached.
func (lb *LineBatcher) Write(p []byte) (int, error) {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	if lb.closed {
		return 0, ErrBatcherClosed
	}

	n, _ := lb.buffer.Write(p)
	if lb.buffer.Len() >= lb.sizeLimit {
		// A single line longer than the limit is flushed as is.
		if !lb.flushLinesLocked() {
			lb.flushAllLocked()
		}
		lb.ticker.Reset(lb.timeLimit)
	}
	return n, nil
}

// Flush hands every complete buffered line to the callback.
func (lb *LineBatcher) Flush() {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	if lb.closed {
		return
	}
	lb.flushLinesLocked()
}

// Close stops the background flusher and flushes everything, including a partial line.
func (lb *LineBatcher) Close() error {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	if lb.closed {
		return nil
	}
	lb.closed = true
	close(lb.stopCh)
	lb.flushAllLocked()
	return nil
}

func (lb *LineBatcher) run() {
	for {
		select {
		case <-lb.ticker.C:
			lb.Flush()
		case <-lb.stopCh:
			lb.ticker.Stop()
			return
		}
	}
}

// flushLinesLocked emits the buffer up to its last newline and reports whether anything was emitted.
func (lb *LineBatcher) flushLinesLocked() bool {
	end := bytes.LastIndexByte(lb.buffer.Bytes(), '\n')
	if end < 0 {
		return false
	}
	lb.emitLocked(lb.buffer.Next(end + 1))
	return true
}

func (lb *LineBatcher) flushAllLocked() {
	if lb.buffer.Len() == 0 {
		return
	}
	lb.emitLocked(lb.buffer.Next(lb.buffer.Len()))
}

// emitLocked copies data out of the buffer before the callback runs under mu,
// which keeps flushes ordered.
func (lb *LineBatcher) emitLocked(data []byte) {
	out := make([]byte, len(data))
	copy(out, data)
	if lb.onFlush != nil {
		lb.onFlush(out)
	}
}
