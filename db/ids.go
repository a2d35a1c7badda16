package db

import (
	"sync/atomic"
	"time"
)

// IDSequence hands out strictly increasing person identifiers, starting from
// the current Unix time in milliseconds. Values never repeat within the
// process lifetime.
type IDSequence struct {
	last atomic.Int64
}

// NewIDSequence creates a sequence whose first value is greater than both
// the current time in milliseconds and every id in existing.
func NewIDSequence(existing ...int64) *IDSequence {
	s := &IDSequence{}
	s.last.Store(time.Now().UnixMilli() - 1)
	for _, id := range existing {
		s.Observe(id)
	}
	return s
}

// Next returns a fresh identifier.
func (s *IDSequence) Next() int64 {
	return s.last.Add(1)
}

// Observe raises the sequence so that later values exceed id.
func (s *IDSequence) Observe(id int64) {
	for {
		cur := s.last.Load()
		if id <= cur || s.last.CompareAndSwap(cur, id) {
			return
		}
	}
}
