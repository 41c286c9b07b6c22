package sink

import (
	"sync"

	"github.com/omnioperator/omnilog/log"
)

// Ring is a Sink which retains the most recent records in memory, e.g. so that they may be attached to a crash report.
// Once full the oldest record is overwritten.
type Ring struct {
	lock sync.Mutex

	// head points to the oldest record.
	head  int
	count int
	items []log.Record
}

var _ log.Sink = (*Ring)(nil)

// NewRing creates a Ring which holds up to capacity records, a capacity less than one is treated as one.
func NewRing(capacity int) *Ring {
	return &Ring{items: make([]log.Record, max(capacity, 1))}
}

// Log implements log.Sink.
func (r *Ring) Log(rec log.Record) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.count < len(r.items) {
		r.items[(r.head+r.count)%len(r.items)] = rec
		r.count++

		return
	}

	r.items[r.head] = rec
	r.head = (r.head + 1) % len(r.items)
}

// Len returns the number of records currently held.
func (r *Ring) Len() int {
	r.lock.Lock()
	defer r.lock.Unlock()

	return r.count
}

// Records returns a copy of the retained records, oldest first.
func (r *Ring) Records() []log.Record {
	r.lock.Lock()
	defer r.lock.Unlock()

	records := make([]log.Record, 0, r.count)
	for i := 0; i < r.count; i++ {
		records = append(records, r.items[(r.head+i)%len(r.items)])
	}

	return records
}
