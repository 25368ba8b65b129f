// Package medium is the transport boundary between a transmitting and a
// receiving session. Items are delivered whole and in order; nothing is lost
// or reordered.
package medium

import (
	"errors"
	"sync"
)

var ErrNoData = errors.New("medium: no data on line")

// Line is the narrow transport contract the session depends on.
type Line[E any] interface {
	// Transmit appends one item to the line.
	Transmit(item E) bool
	// Receive removes and returns the oldest item, or ErrNoData.
	Receive() (E, error)
	HasData() bool
}

// Cable is an in-memory FIFO Line.
type Cable[E any] struct {
	mu    sync.Mutex
	items []E
}

func NewCable[E any]() *Cable[E] {
	return &Cable[E]{}
}

func (c *Cable[E]) Transmit(item E) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
	return true
}

func (c *Cable[E]) Receive() (E, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero E
	if len(c.items) == 0 {
		return zero, ErrNoData
	}
	item := c.items[0]
	c.items[0] = zero
	c.items = c.items[1:]
	return item, nil
}

func (c *Cable[E]) HasData() bool {
	return c.Len() > 0
}

// Len returns the number of queued items.
func (c *Cable[E]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Drain discards every queued item and returns how many were dropped.
func (c *Cable[E]) Drain() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.items)
	c.items = nil
	return n
}
