package log

// bufPool is a bounded pool of format buffers. Unlike the blocking free lists used elsewhere it never waits: when
// the pool is empty a new buffer is allocated and when it's full the buffer is left for the garbage collector, a log
// call must not block on another goroutine's log call.
//
// NOTE: Internally we use a channel as a buffer, this has the best performance when contention is low.
type bufPool struct {
	list chan []byte
	size int
}

// newBufPool creates a pool holding at most n buffers, each with capacity for size bytes.
func newBufPool(n, size int) *bufPool {
	return &bufPool{list: make(chan []byte, n), size: size}
}

// get borrows a zero length buffer.
func (p *bufPool) get() []byte {
	select {
	case b := <-p.list:
		return b[:0]
	default:
		return make([]byte, 0, p.size)
	}
}

// put returns a buffer to the pool, buffers which have grown beyond the pool size are dropped.
func (p *bufPool) put(b []byte) {
	if cap(b) > p.size {
		return
	}

	select {
	case p.list <- b:
	default:
	}
}
