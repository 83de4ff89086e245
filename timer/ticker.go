package timer

import (
	"sync"
	"time"
)

// Ticker is a repeating callback that can be cancelled.
type Ticker interface {
	Stop()
}

// TickerFunc starts a Ticker that calls fn every period.
type TickerFunc func(period time.Duration, fn func()) Ticker

type ticker struct {
	t    *time.Ticker
	done chan struct{}
	once sync.Once
}

// NewTicker calls fn from its own goroutine every period until Stop is
// called. Ticks pending when Stop closes the ticker are dropped. Stop may be
// called any number of times.
func NewTicker(period time.Duration, fn func()) Ticker {
	t := &ticker{
		t:    time.NewTicker(period),
		done: make(chan struct{}),
	}

	go func() {
		for {
			select {
			case <-t.t.C:
				// A tick and Stop can be ready together.
				select {
				case <-t.done:
					return
				default:
				}

				fn()
			case <-t.done:
				return
			}
		}
	}()

	return t
}

func (t *ticker) Stop() {
	t.once.Do(func() {
		t.t.Stop()
		close(t.done)
	})
}
