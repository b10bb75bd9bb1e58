package testutil

import "sync"

// DeterministicClock is a resettable seq source for tests.
//
// It satisfies batch.Sequencer. Unlike batch.Clock it can be reset, so one
// clock can drive several runs that must produce identical seq values.
type DeterministicClock struct {
	mu    sync.Mutex
	start int64
	seq   int64
	calls int
}

// NewDeterministicClock returns a clock whose first Next is 1.
func NewDeterministicClock() *DeterministicClock {
	return NewDeterministicClockAt(0)
}

// NewDeterministicClockAt returns a clock whose first Next is start+1, as
// when a run appends to a store whose highest seq is start.
func NewDeterministicClockAt(start int64) *DeterministicClock {
	return &DeterministicClock{start: start, seq: start}
}

// Next increments and returns the next sequence number.
func (c *DeterministicClock) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.calls++
	return c.seq
}

// Current returns the last number handed out, or the start value.
func (c *DeterministicClock) Current() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq
}

// Calls returns how many times Next was called since the last Reset.
func (c *DeterministicClock) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// Reset rewinds the clock to its start value.
func (c *DeterministicClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq = c.start
	c.calls = 0
}
