package services

import (
	"sync/atomic"
	"time"
)

type Clock interface {
	Now() time.Time
}

// monotonicClock never hands out a timestamp earlier than one it already issued,
// even if the wall clock steps backwards.
type monotonicClock struct {
	last atomic.Int64
}

func NewClock() Clock { return &monotonicClock{} }

func (c *monotonicClock) Now() time.Time {
	for {
		now := time.Now().UTC().UnixNano()
		prev := c.last.Load()
		if now < prev {
			now = prev
		}
		if c.last.CompareAndSwap(prev, now) {
			return time.Unix(0, now).UTC()
		}
	}
}
