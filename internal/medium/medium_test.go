package medium

import (
	"errors"
	"sync"
	"testing"
)

func TestCableFIFO(t *testing.T) {
	c := NewCable[string]()
	if c.HasData() {
		t.Fatalf("new cable must be empty")
	}
	for _, v := range []string{"a", "b", "c"} {
		if !c.Transmit(v) {
			t.Fatalf("transmit %q failed", v)
		}
	}
	if c.Len() != 3 {
		t.Fatalf("len=%d want 3", c.Len())
	}
	for _, want := range []string{"a", "b", "c"} {
		got, err := c.Receive()
		if err != nil {
			t.Fatalf("receive: %v", err)
		}
		if got != want {
			t.Fatalf("got %q want %q", got, want)
		}
	}
	if c.HasData() {
		t.Fatalf("cable should be empty")
	}
}

func TestCableReceiveEmpty(t *testing.T) {
	c := NewCable[[]byte]()
	if _, err := c.Receive(); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestCableDrain(t *testing.T) {
	c := NewCable[int]()
	c.Transmit(1)
	c.Transmit(2)
	if n := c.Drain(); n != 2 {
		t.Fatalf("drained %d want 2", n)
	}
	if c.HasData() {
		t.Fatalf("expected empty cable after drain")
	}
}

func TestCableConcurrentTransmit(t *testing.T) {
	c := NewCable[int]()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Transmit(base*100 + j)
			}
		}(i)
	}
	wg.Wait()
	if c.Len() != 800 {
		t.Fatalf("len=%d want 800", c.Len())
	}
}

var _ Line[string] = (*Cable[string])(nil)
