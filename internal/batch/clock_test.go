package batch

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClock_StartsAtZero(t *testing.T) {
	c := NewClock()
	assert.Equal(t, int64(0), c.Current())
	assert.Equal(t, int64(1), c.Next())
}

func TestClock_ContinuesFromStoredSeq(t *testing.T) {
	c := NewClockAt(41)
	assert.Equal(t, int64(42), c.Next())
	assert.Equal(t, int64(43), c.Next())
	assert.Equal(t, int64(43), c.Current())
}

func TestClock_ThreadSafe(t *testing.T) {
	c := NewClock()
	const goroutines = 50
	const callsPerGoroutine = 100

	var wg sync.WaitGroup
	seqs := make(chan int64, goroutines*callsPerGoroutine)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < callsPerGoroutine; j++ {
				seqs <- c.Next()
			}
		}()
	}
	wg.Wait()
	close(seqs)

	seen := make(map[int64]bool)
	for seq := range seqs {
		assert.False(t, seen[seq], "seq %d generated twice", seq)
		seen[seq] = true
	}
	assert.Len(t, seen, goroutines*callsPerGoroutine)
}
